// Package canon provides canonical JSON serialization and domain-separated
// hashing. It is the identity substrate for synthetic graph vertices:
// function-call and expression vertices are identified by hashing the
// canonical form of their defining tuples, so equal tuples always produce
// equal keys regardless of which row or session built them.
package canon

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// Marshal produces canonical JSON for hashing, following RFC 8785:
// object keys sorted by UTF-16 code units, NFC-normalized strings, no HTML
// escaping. Unlike strict RFC 8785 tooling it accepts floats (attribute
// values may be doubles) and renders them in shortest round-trip form.
//
// Accepted value types: nil, string, bool, int, int64, float64, []any, and
// map[string]any.
func Marshal(v any) ([]byte, error) {
	var b strings.Builder
	if err := marshal(&b, v); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func marshal(b *strings.Builder, v any) error {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		marshalString(b, val)
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case int:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		b.WriteString(strconv.FormatInt(val, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	case []any:
		b.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := marshal(b, elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		b.WriteByte(']')
	case map[string]any:
		b.WriteByte('{')
		keys := sortedKeys(val)
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			marshalString(b, k)
			b.WriteByte(':')
			if err := marshal(b, val[k]); err != nil {
				return fmt.Errorf("object[%q]: %w", k, err)
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
	return nil
}

// marshalString writes an NFC-normalized JSON string. Only control
// characters, backslash and quote are escaped; <, >, &, U+2028 and U+2029
// stay literal per RFC 8785.
func marshalString(b *strings.Builder, s string) {
	s = norm.NFC.String(s)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// sortedKeys returns map keys in RFC 8785 canonical order: UTF-16 code
// units, not UTF-8 bytes. The two orders differ for strings mixing BMP and
// supplementary-plane characters.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return compareUTF16(keys[i], keys[j]) < 0
	})
	return keys
}

func compareUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := len(a16)
	if len(b16) < n {
		n = len(b16)
	}
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	default:
		return 0
	}
}

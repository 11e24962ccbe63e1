package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalPrimitives(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"string", "hello", `"hello"`},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float", 2.5, "2.5"},
		{"float_shortest", 0.1, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshalSortsObjectKeys(t *testing.T) {
	got, err := Marshal(map[string]any{
		"b": 2,
		"a": 1,
		"c": 3,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, string(got))
}

func TestMarshalUTF16KeyOrder(t *testing.T) {
	// U+1D306 encodes as surrogate pair with first unit 0xD834, which
	// sorts before U+FB01 in UTF-16 code units but after it in UTF-8
	// bytes.
	got, err := Marshal(map[string]any{
		"\U0001D306": 1,
		"ﬁ":          2,
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"\U0001D306\":1,\"ﬁ\":2}", string(got))
}

func TestMarshalNestedDeterministic(t *testing.T) {
	in := map[string]any{
		"list": []any{"x", map[string]any{"k": "v"}, nil},
		"n":    int64(9),
	}
	first, err := Marshal(in)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Marshal(in)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestMarshalStringEscaping(t *testing.T) {
	got, err := Marshal("a\"b\\c\nd\x01")
	require.NoError(t, err)
	assert.Equal(t, `"a\"b\\c\nd\u0001"`, string(got))

	// HTML-significant characters stay literal.
	got, err = Marshal("<a>&b")
	require.NoError(t, err)
	assert.Equal(t, `"<a>&b"`, string(got))
}

func TestMarshalNFCNormalization(t *testing.T) {
	// "e" + combining acute normalizes to the precomposed form.
	decomposed, err := Marshal("é")
	require.NoError(t, err)
	precomposed, err := Marshal("é")
	require.NoError(t, err)
	assert.Equal(t, string(precomposed), string(decomposed))
}

func TestMarshalRejectsUnsupportedType(t *testing.T) {
	_, err := Marshal(struct{}{})
	assert.Error(t, err)
}

func TestHashWithDomainSeparation(t *testing.T) {
	data := []byte(`{"x":1}`)
	a := HashWithDomain(DomainFunctionCall, data)
	b := HashWithDomain(DomainExpression, data)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashWithDomain(DomainFunctionCall, data))
}

func TestHashValueStable(t *testing.T) {
	payload := map[string]any{
		"name":      "age",
		"arguments": []any{"c:entity:person#0x1"},
	}
	first, err := HashValue(DomainFunctionCall, payload)
	require.NoError(t, err)

	again, err := HashValue(DomainFunctionCall, payload)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

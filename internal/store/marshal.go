package store

import (
	"encoding/json"
	"fmt"

	"github.com/rowgraph/rowgraph/internal/answers"
	"github.com/rowgraph/rowgraph/internal/canon"
)

// marshalQuery converts a query structure to canonical JSON TEXT for
// storage, so recording the same query twice produces identical bytes.
func marshalQuery(q answers.QueryDoc) (string, error) {
	data, err := marshalCanonical(q)
	if err != nil {
		return "", fmt.Errorf("marshal query: %w", err)
	}
	return data, nil
}

// marshalBindings converts one row's bindings to canonical JSON TEXT.
func marshalBindings(row answers.RowDoc) (string, error) {
	data, err := marshalCanonical(row)
	if err != nil {
		return "", fmt.Errorf("marshal bindings: %w", err)
	}
	return data, nil
}

// marshalCanonical round-trips v through plain JSON values and re-encodes
// with canonical key ordering. Document values are strings throughout, so
// the float64 detour of json.Unmarshal loses nothing.
func marshalCanonical(v any) (string, error) {
	plain, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var generic any
	if err := json.Unmarshal(plain, &generic); err != nil {
		return "", err
	}
	data, err := canon.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// unmarshalQuery parses stored canonical JSON TEXT back into a query
// structure.
func unmarshalQuery(data string) (answers.QueryDoc, error) {
	var q answers.QueryDoc
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return answers.QueryDoc{}, fmt.Errorf("unmarshal query: %w", err)
	}
	return q, nil
}

// unmarshalBindings parses stored canonical JSON TEXT back into row
// bindings.
func unmarshalBindings(data string) (answers.RowDoc, error) {
	var row answers.RowDoc
	if err := json.Unmarshal([]byte(data), &row); err != nil {
		return nil, fmt.Errorf("unmarshal bindings: %w", err)
	}
	return row, nil
}

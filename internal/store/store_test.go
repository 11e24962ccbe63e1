package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowgraph/rowgraph/internal/answers"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testDocument() *answers.Document {
	name := "person"
	p := "p"
	return &answers.Document{
		Query: answers.QueryDoc{
			Variables: []string{"p"},
			Constraints: []answers.ConstraintDoc{
				{
					Kind:     "isa",
					Instance: &answers.VertexDoc{Var: &p},
					Type:     &answers.VertexDoc{Label: &name},
				},
			},
		},
		Rows: []answers.RowDoc{
			{"p": answers.ConceptDoc{Entity: &answers.InstanceDoc{Type: "person", IID: "0x1"}}},
			{"p": answers.ConceptDoc{Entity: &answers.InstanceDoc{Type: "person", IID: "0x2"}}},
		},
	}
}

func TestOpenAppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, s2.Close())
}

func TestRecordAndLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	doc := testDocument()

	id, err := s.RecordAnswerSet(ctx, "people", doc)
	require.NoError(t, err)
	assert.Positive(t, id)

	loaded, err := s.LoadAnswerSet(ctx, "people")
	require.NoError(t, err)

	assert.Equal(t, doc.Query.Variables, loaded.Query.Variables)
	require.Len(t, loaded.Query.Constraints, 1)
	assert.Equal(t, "isa", loaded.Query.Constraints[0].Kind)
	require.Len(t, loaded.Rows, 2)
	assert.Equal(t, "0x1", loaded.Rows[0]["p"].Entity.IID)
	assert.Equal(t, "0x2", loaded.Rows[1]["p"].Entity.IID)
}

func TestLoadedDocumentCompiles(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.RecordAnswerSet(ctx, "people", testDocument())
	require.NoError(t, err)

	loaded, err := s.LoadAnswerSet(ctx, "people")
	require.NoError(t, err)

	_, constraints, rows, err := loaded.Compile()
	require.NoError(t, err)
	assert.Len(t, constraints, 1)
	assert.Len(t, rows, 2)
}

func TestRecordDuplicateName(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.RecordAnswerSet(ctx, "people", testDocument())
	require.NoError(t, err)

	_, err = s.RecordAnswerSet(ctx, "people", testDocument())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateName))
}

func TestLoadUnknownName(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadAnswerSet(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestListAnswerSets(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	infos, err := s.ListAnswerSets(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)

	_, err = s.RecordAnswerSet(ctx, "beta", testDocument())
	require.NoError(t, err)
	_, err = s.RecordAnswerSet(ctx, "alpha", &answers.Document{})
	require.NoError(t, err)

	infos, err = s.ListAnswerSets(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	// Ordered by name, with per-set row counts.
	assert.Equal(t, "alpha", infos[0].Name)
	assert.Equal(t, 0, infos[0].RowCount)
	assert.Equal(t, "beta", infos[1].Name)
	assert.Equal(t, 2, infos[1].RowCount)
}

func TestDeleteAnswerSet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.RecordAnswerSet(ctx, "people", testDocument())
	require.NoError(t, err)

	require.NoError(t, s.DeleteAnswerSet(ctx, "people"))

	_, err = s.LoadAnswerSet(ctx, "people")
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	err = s.DeleteAnswerSet(ctx, "people")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestCanonicalQueryBytesStable(t *testing.T) {
	a, err := marshalQuery(testDocument().Query)
	require.NoError(t, err)
	b, err := marshalQuery(testDocument().Query)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

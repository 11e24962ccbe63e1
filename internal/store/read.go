package store

import (
	"context"
	"fmt"

	"github.com/rowgraph/rowgraph/internal/answers"
)

// SetInfo summarizes one recorded answer set for listings.
type SetInfo struct {
	ID        int64
	Name      string
	RowCount  int
	CreatedAt string
}

// LoadAnswerSet reads a recorded set by name and rebuilds the document.
// Rows come back in recording order (ORDER BY ordinal).
// Returns sql.ErrNoRows if the name is unknown.
func (s *Store) LoadAnswerSet(ctx context.Context, name string) (*answers.Document, error) {
	var id int64
	var queryJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, query FROM answer_sets WHERE name = ?
	`, name).Scan(&id, &queryJSON)
	if err != nil {
		return nil, fmt.Errorf("load answer set %q: %w", name, err)
	}

	query, err := unmarshalQuery(queryJSON)
	if err != nil {
		return nil, fmt.Errorf("load answer set %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT bindings FROM answer_rows
		WHERE set_id = ?
		ORDER BY ordinal ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("load answer set %q: query rows: %w", name, err)
	}
	defer rows.Close()

	doc := &answers.Document{Query: query, Rows: []answers.RowDoc{}}
	for rows.Next() {
		var bindingsJSON string
		if err := rows.Scan(&bindingsJSON); err != nil {
			return nil, fmt.Errorf("load answer set %q: scan row: %w", name, err)
		}
		row, err := unmarshalBindings(bindingsJSON)
		if err != nil {
			return nil, fmt.Errorf("load answer set %q: %w", name, err)
		}
		doc.Rows = append(doc.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load answer set %q: iterate rows: %w", name, err)
	}

	return doc, nil
}

// ListAnswerSets returns summaries of all recorded sets, ordered by name.
// Returns an empty slice (not nil) when the database holds no sets.
func (s *Store) ListAnswerSets(ctx context.Context) ([]SetInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.created_at, COUNT(r.id)
		FROM answer_sets s
		LEFT JOIN answer_rows r ON r.set_id = s.id
		GROUP BY s.id
		ORDER BY s.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list answer sets: %w", err)
	}
	defer rows.Close()

	infos := []SetInfo{}
	for rows.Next() {
		var info SetInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CreatedAt, &info.RowCount); err != nil {
			return nil, fmt.Errorf("list answer sets: scan: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list answer sets: iterate: %w", err)
	}

	return infos, nil
}

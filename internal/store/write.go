package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/rowgraph/rowgraph/internal/answers"
)

// ErrDuplicateName is returned when recording under a name that already
// exists in the database.
var ErrDuplicateName = errors.New("answer set name already recorded")

// RecordAnswerSet writes an answer-set document under the given name.
// The set and all of its rows are written in a single transaction; a
// partially-recorded set is never visible to readers.
//
// Returns ErrDuplicateName if the name is already taken.
func (s *Store) RecordAnswerSet(ctx context.Context, name string, doc *answers.Document) (id int64, err error) {
	queryJSON, err := marshalQuery(doc.Query)
	if err != nil {
		return 0, fmt.Errorf("record answer set: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("record answer set: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO answer_sets (name, query)
		VALUES (?, ?)
	`, name, queryJSON)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("record answer set %q: %w", name, ErrDuplicateName)
		}
		return 0, fmt.Errorf("record answer set: insert set: %w", err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record answer set: last insert id: %w", err)
	}

	for ordinal, row := range doc.Rows {
		bindingsJSON, err := marshalBindings(row)
		if err != nil {
			return 0, fmt.Errorf("record answer set: row %d: %w", ordinal, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO answer_rows (set_id, ordinal, bindings)
			VALUES (?, ?, ?)
		`, id, ordinal, bindingsJSON)
		if err != nil {
			return 0, fmt.Errorf("record answer set: insert row %d: %w", ordinal, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("record answer set: commit: %w", err)
	}

	return id, nil
}

// DeleteAnswerSet removes a recorded set and its rows (via cascade).
// Deleting a name that does not exist returns sql.ErrNoRows.
func (s *Store) DeleteAnswerSet(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM answer_sets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete answer set %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete answer set %q: rows affected: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete answer set %q: %w", name, sql.ErrNoRows)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

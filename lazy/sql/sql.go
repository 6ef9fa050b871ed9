// Package sql provides a source cursor over database/sql result sets and a
// sink that writes a cursor into a database.
//
// Rows are scanned one at a time as the cursor advances; the result set is
// closed when the cursor runs out, fails or is closed.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// ErrNilDB is returned when a nil database handle is passed.
var ErrNilDB = errors.New("sql: nil database handle")

// Scanner is a function that scans the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Querier runs queries. *sql.DB, *sql.Tx and *sql.Conn implement it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer runs statements. *sql.DB, *sql.Tx and *sql.Conn implement it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Query runs query and returns a cursor over its rows, each converted by scanner.
// A failing query is reported right away. Errors while iterating end the
// cursor and are reported by its Err method.
func Query[T any](ctx context.Context, db Querier, query string, scanner Scanner[T], args ...any) (*core.ReadCursor[T], error) {
	if isNil(db) {
		return nil, ErrNilDB
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sql: query: %w", err)
	}
	return FromRows(rows, scanner), nil
}

// FromRows creates a cursor over an open result set.
// The cursor takes ownership of rows and closes them.
func FromRows[T any](rows *sql.Rows, scanner Scanner[T]) *core.ReadCursor[T] {
	read := func() (T, error) {
		if !rows.Next() {
			var zero T
			if err := rows.Err(); err != nil {
				return zero, err
			}
			return zero, io.EOF
		}
		return scanner(rows)
	}
	return core.FromRead(read, rows.Close)
}

// ScanStrings is a Scanner that returns every column of the row as a string.
// NULL becomes the empty string.
func ScanStrings(rows *sql.Rows) ([]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	result := make([]string, len(cols))
	for i, v := range values {
		result[i] = v.String
	}
	return result, nil
}

// QueryStrings is Query with ScanStrings.
func QueryStrings(ctx context.Context, db Querier, query string, args ...any) (*core.ReadCursor[[]string], error) {
	return Query(ctx, db, query, ScanStrings, args...)
}

// ExecResult sums up the statements run by ExecEach.
type ExecResult struct {
	// Statements is how many statements succeeded.
	Statements   int
	LastInsertId int64
	RowsAffected int64
}

// ExecEach drains c, running query once per element with the arguments
// returned by binder. It stops at the first failing statement, leaving c on
// the element that failed.
func ExecEach[T any](ctx context.Context, db Execer, c core.Cursor[T], query string, binder func(T) []any) (ExecResult, error) {
	var total ExecResult
	if isNil(db) {
		return total, ErrNilDB
	}
	for c.HasMore() {
		res, err := db.ExecContext(ctx, query, binder(c.Current())...)
		if err != nil {
			return total, fmt.Errorf("sql: exec statement %d: %w", total.Statements+1, err)
		}
		total.Statements++
		if id, err := res.LastInsertId(); err == nil {
			total.LastInsertId = id
		}
		if n, err := res.RowsAffected(); err == nil {
			total.RowsAffected += n
		}
		c.Advance()
	}
	return total, nil
}

// Transaction runs fn within a transaction, committing if it returns nil
// and rolling back otherwise.
func Transaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	if db == nil {
		return ErrNilDB
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sql: begin: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sql: commit: %w", err)
	}
	return nil
}

func isNil(db any) bool {
	switch d := db.(type) {
	case nil:
		return true
	case *sql.DB:
		return d == nil
	case *sql.Tx:
		return d == nil
	case *sql.Conn:
		return d == nil
	}
	return false
}

// Package repository provides generic query and transaction helpers for the
// embedded sqlite store. Domain repositories supply SQL and a scan function;
// the helpers own the row iteration and transaction lifecycle.
package repository

import (
	"context"
	"database/sql"
)

// Querier is the read side of a connection. *sql.DB, *sql.Tx, and *sql.Conn
// all satisfy it, so repository methods run unchanged inside or outside a
// transaction.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Executor is the write side of a connection, satisfied by the same types
// as Querier.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Scanner abstracts row scanning so one ScanFunc serves both the single-row
// and multi-row helpers.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc converts one scanned row into a typed value. Each domain package
// defines scan functions for its own entities.
type ScanFunc[T any] func(Scanner) (T, error)

// WithTx runs fn inside a transaction and returns its result. The
// transaction is committed when fn succeeds and rolled back when it
// returns an error. sqlite serializes writers, so fn should stay short.
func WithTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	defer tx.Rollback()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, err
	}

	return result, nil
}

// QueryOne runs a query expected to yield exactly one row and scans it.
// A missing row surfaces as sql.ErrNoRows from the scan.
func QueryOne[T any](ctx context.Context, q Querier, query string, args []any, scan ScanFunc[T]) (T, error) {
	var zero T
	row := q.QueryRowContext(ctx, query, args...)
	result, err := scan(row)
	if err != nil {
		return zero, err
	}
	return result, nil
}

// QueryMany runs a query and scans every row. An empty result is an empty
// slice, never nil, so callers can serialize it directly.
func QueryMany[T any](ctx context.Context, q Querier, query string, args []any, scan ScanFunc[T]) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ExecExpectOne runs a statement that must affect exactly one row, the
// shape of every update and delete keyed by template id. Zero affected
// rows comes back as sql.ErrNoRows so callers can map it to a not-found.
func ExecExpectOne(ctx context.Context, e Executor, query string, args ...any) error {
	result, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

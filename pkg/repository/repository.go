// Package repository provides small helpers shared by database/sql repositories.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Querier is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// QueryOne runs a single-row query and scans the result with scan.
func QueryOne[T any](ctx context.Context, q Querier, query string, args []any, scan func(Scanner) (T, error)) (T, error) {
	return scan(q.QueryRowContext(ctx, query, args...))
}

// MapError translates driver errors into domain errors: sql.ErrNoRows to
// notFound, unique violations to duplicate, and check, not-null or
// character encoding violations to invalid. Other errors are returned
// unchanged.
func MapError(err, notFound, duplicate, invalid error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return duplicate
		case "23502", "23514", "22021":
			return invalid
		}
	}
	return err
}

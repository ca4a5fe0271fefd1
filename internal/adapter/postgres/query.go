package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// Get builds the query, runs it and scans exactly one row into T.
// No row maps to a not_found RemoteError.
func Get[T any](ctx context.Context, q Querier, query sq.Sqlizer, op string) (T, error) {
	var dst T
	sql, args, err := query.ToSql()
	if err != nil {
		return dst, fmt.Errorf("%s: build query: %w", op, err)
	}
	if err := pgxscan.Get(ctx, q, &dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return dst, MapError(pgx.ErrNoRows, op)
		}
		return dst, MapError(err, op)
	}
	return dst, nil
}

// Select builds the query, runs it and scans every row into a slice of T.
func Select[T any](ctx context.Context, q Querier, query sq.Sqlizer, op string) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}
	dst := []T{}
	if err := pgxscan.Select(ctx, q, &dst, sql, args...); err != nil {
		return nil, MapError(err, op)
	}
	return dst, nil
}

// Exec builds and runs a statement and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, query sq.Sqlizer, op string) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build query: %w", op, err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, MapError(err, op)
	}
	return tag.RowsAffected(), nil
}

// ExecOne is Exec for statements that must touch exactly one row.
func ExecOne(ctx context.Context, q Querier, query sq.Sqlizer, op string) error {
	n, err := Exec(ctx, q, query, op)
	if err != nil {
		return err
	}
	if n == 0 {
		return MapError(pgx.ErrNoRows, op)
	}
	return nil
}

package db

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// DBTX is the slice of the pgx API the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so every repository works on the
// pool directly and inside a unit of work.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"

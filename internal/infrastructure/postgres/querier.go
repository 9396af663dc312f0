package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier ist die gemeinsame Schnittstelle von *pgxpool.Pool und pgx.Tx.
// Repositories akzeptieren sie, damit dieselbe Implementierung direkt am Pool
// oder innerhalb einer Transaktion laufen kann.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

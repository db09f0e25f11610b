package pg

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn runs every statement on the transaction stored in ctx, or on the
// underlying pool when there is none.
type Conn struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func New(db trmpgx.Tr) *Conn {
	return &Conn{
		db:     db,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (c *Conn) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return c.getter.DefaultTrOrDB(ctx, c.db).Exec(ctx, sql, arguments...)
}

func (c *Conn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return c.getter.DefaultTrOrDB(ctx, c.db).Query(ctx, sql, args...)
}

func (c *Conn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return c.getter.DefaultTrOrDB(ctx, c.db).QueryRow(ctx, sql, args...)
}

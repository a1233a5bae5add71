package postgres

import "github.com/jackc/pgx/v5"

// fakeTx satisfies pgx.Tx only for context plumbing checks; its methods are never called.
type fakeTx struct {
	pgx.Tx
}

package sqlite

import (
	"context"
	"database/sql"

	"github.com/karrieremum/adminsvc/internal/admin/store"
)

// txStore is the transaction-scoped view of the store. Its repos run on
// the *sql.Tx instead of the pooled *sql.DB.
type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the outer DB
// stays open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op inside a transaction.
func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported. SAVEPOINTs could emulate them if
// a caller ever needs that.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users     { return &usersRepo{db: t.tx} }
func (t *txStore) Invites() store.Invites { return &invitesRepo{db: t.tx} }

// ApplyMigrations must run before any transaction starts.
func (t *txStore) ApplyMigrations() error { return nil }

package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/grantstore/internal/auth/store"
	"github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite/gen"
)

type txStore struct {
	tx  *sql.Tx
	q   *gen.Queries
	now func() time.Time
}

func newTx(tx *sql.Tx, now func() time.Time) *txStore {
	return &txStore{
		tx:  tx,
		q:   gen.New(tx),
		now: now,
	}
}

func (t *txStore) Commit() error {
	return store.Fault("commit", t.tx.Commit())
}

func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Clients() store.Clients           { return &clientsRepo{q: t.q} }
func (t *txStore) Approvals() store.Approvals       { return &approvalsRepo{q: t.q} }
func (t *txStore) AccessTokens() store.AccessTokens { return &accessTokensRepo{q: t.q, now: t.now} }
func (t *txStore) AuthorizeNonces() store.AuthorizeNonces {
	return &authorizeNoncesRepo{q: t.q}
}
func (t *txStore) AuthorizationCodes() store.AuthorizationCodes {
	return &authorizationCodesRepo{q: t.q, now: t.now}
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations are applied before starting a tx

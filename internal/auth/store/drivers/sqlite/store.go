package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store"
	"github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite/gen"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to stamp issue_time on codes and tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore opens a sqlite database. File DSNs should carry
// _pragma=foreign_keys(1) so every pooled connection enforces FKs; in-memory
// databases are pinned to a single connection so the pool shares one database.
func NewStore(dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if isMemoryDSN(dsn) {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return Open(db, opts...), nil
}

// Open wraps an existing pool. The caller keeps responsibility for its
// configuration; Close on the Store closes db.
func Open(db *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:  db,
		q:   gen.New(db),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, store.Fault("begin", err)
	}
	return newTx(tx, s.now), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback after a successful commit is a no-op returning sql.ErrTxDone.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Clients() store.Clients           { return &clientsRepo{q: s.q} }
func (s *Store) Approvals() store.Approvals       { return &approvalsRepo{q: s.q} }
func (s *Store) AccessTokens() store.AccessTokens { return &accessTokensRepo{q: s.q, now: s.now} }
func (s *Store) AuthorizeNonces() store.AuthorizeNonces {
	return &authorizeNoncesRepo{q: s.q}
}
func (s *Store) AuthorizationCodes() store.AuthorizationCodes {
	return &authorizationCodesRepo{q: s.q, now: s.now}
}

func mapNullString(ns sql.NullString) domain.Optional[string] {
	if ns.Valid {
		return domain.Some(ns.String)
	}
	return domain.None[string]()
}

func mapOptionalString(o domain.Optional[string]) sql.NullString {
	v, ok := o.Get()
	return sql.NullString{String: v, Valid: ok}
}

func mapClient(row gen.Client) domain.Client {
	return domain.Client{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		SecretHash:  mapNullString(row.Secret),
		RedirectURI: row.RedirectUri,
		Type:        domain.ClientType(row.Type),
	}
}

func mapApproval(row gen.Approval) domain.Approval {
	return domain.Approval{
		ClientID:        row.ClientID,
		ResourceOwnerID: row.ResourceOwnerID,
		Scope:           row.Scope,
	}
}

func mapAuthorizeNonce(row gen.AuthorizeNonce) domain.AuthorizeNonce {
	return domain.AuthorizeNonce{
		Nonce:           row.AuthorizeNonce,
		ResourceOwnerID: row.ResourceOwnerID,
		ClientID:        row.ClientID,
		ResponseType:    row.ResponseType,
		RedirectURI:     mapNullString(row.RedirectUri),
		Scope:           row.Scope,
		State:           row.State,
	}
}

func mapAuthorizationCode(row gen.AuthorizationCode) domain.AuthorizationCode {
	return domain.AuthorizationCode{
		Code:        row.AuthorizationCode,
		ClientID:    row.ClientID,
		RedirectURI: mapNullString(row.RedirectUri),
		IssueTime:   time.Unix(row.IssueTime, 0).UTC(),
		AccessToken: row.AccessToken,
	}
}

func mapAccessToken(row gen.AccessToken) domain.AccessToken {
	return domain.AccessToken{
		Token:                    row.AccessToken,
		ClientID:                 row.ClientID,
		ResourceOwnerID:          row.ResourceOwnerID,
		ResourceOwnerDisplayName: row.ResourceOwnerDisplayName,
		IssueTime:                time.Unix(row.IssueTime, 0).UTC(),
		ExpiresIn:                row.ExpiresIn,
		Scope:                    row.Scope,
	}
}

package store

import (
	"context"
	"time"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable, and so that
// a Tx can only ever hand out repos bound to that transaction.
type Store interface {
	Clients() Clients
	Approvals() Approvals
	AuthorizeNonces() AuthorizeNonces
	AuthorizationCodes() AuthorizationCodes
	AccessTokens() AccessTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// ListClients returns every registered client ordered by id.
	ListClients(ctx context.Context) ([]domain.Client, error)

	GetClient(ctx context.Context, id string) (domain.Client, error)

	// GetClientByRedirectURI returns the first client registered with uri.
	GetClientByRedirectURI(ctx context.Context, uri string) (domain.Client, error)

	AddClient(ctx context.Context, c domain.Client) error

	// UpdateClient overwrites every mutable column. changed is false when no
	// client with that id exists.
	UpdateClient(ctx context.Context, id string, c domain.Client) (changed bool, err error)

	// DeleteClient removes the client row only. Dependent rows must be
	// removed first; see service.ClientService.DeleteClient.
	DeleteClient(ctx context.Context, id string) (deleted bool, err error)
}

type Approvals interface {
	// AddApproval inserts a new approval. A second approval for the same
	// (client, owner) fails with ErrAlreadyExists.
	AddApproval(ctx context.Context, clientID, ownerID, scope string) error

	// UpdateApproval overwrites the scope. changed reports whether a row was
	// affected; zero rows is not an error.
	UpdateApproval(ctx context.Context, clientID, ownerID, scope string) (changed bool, err error)

	GetApproval(ctx context.Context, clientID, ownerID string) (domain.Approval, error)

	// ListApprovals returns the owner's approvals joined with their clients,
	// ordered by client id.
	ListApprovals(ctx context.Context, ownerID string) ([]domain.ApprovalSummary, error)

	DeleteApproval(ctx context.Context, clientID, ownerID string) (deleted bool, err error)

	DeleteApprovalsForClient(ctx context.Context, clientID string) (int64, error)
}

type AuthorizeNonces interface {
	StoreAuthorizeNonce(ctx context.Context, n domain.AuthorizeNonce) error

	// ConsumeAuthorizeNonce deletes the nonce matching all four fields in one
	// statement and returns the deleted row. A second call for the same nonce
	// returns ErrNotFound.
	ConsumeAuthorizeNonce(ctx context.Context, clientID, ownerID, scope, nonce string) (domain.AuthorizeNonce, error)

	DeleteAuthorizeNoncesForClient(ctx context.Context, clientID string) (int64, error)
}

type AuthorizationCodes interface {
	// StoreAuthorizationCode records a code bound to accessToken. The issue
	// time is taken from the store clock.
	StoreAuthorizationCode(
		ctx context.Context,
		code, clientID string,
		redirectURI domain.Optional[string],
		accessToken string,
	) error

	// GetAuthorizationCode is a non-destructive, null-aware lookup.
	GetAuthorizationCode(ctx context.Context, code string, redirectURI domain.Optional[string]) (domain.AuthorizationCode, error)

	// ConsumeAuthorizationCode deletes and returns the matching row in a single
	// statement. At most one concurrent caller can receive a given row; every
	// other caller gets ErrNotFound. Expiry is not checked here.
	ConsumeAuthorizationCode(ctx context.Context, code string, redirectURI domain.Optional[string]) (domain.AuthorizationCode, error)

	DeleteAuthorizationCodesForClient(ctx context.Context, clientID string) (int64, error)

	// DeleteAuthorizationCodesIssuedBefore is housekeeping for codes that were
	// never redeemed.
	DeleteAuthorizationCodesIssuedBefore(ctx context.Context, t time.Time) (int64, error)
}

type AccessTokens interface {
	// StoreAccessToken records a token; the issue time is taken from the store clock.
	StoreAccessToken(
		ctx context.Context,
		token, clientID, ownerID, displayName, scope string,
		expiresIn int64,
	) error

	// GetAccessToken returns the stored fields verbatim. It does not check expiry.
	GetAccessToken(ctx context.Context, token string) (domain.AccessToken, error)

	DeleteAccessTokensForClient(ctx context.Context, clientID string) (int64, error)
}

package sqlite

import (
	"context"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite/gen"
)

type authorizeNoncesRepo struct {
	q *gen.Queries
}

func (r *authorizeNoncesRepo) StoreAuthorizeNonce(ctx context.Context, n domain.AuthorizeNonce) error {
	return mapErr("nonces.store", r.q.StoreAuthorizeNonce(ctx, gen.StoreAuthorizeNonceParams{
		AuthorizeNonce:  n.Nonce,
		ResourceOwnerID: n.ResourceOwnerID,
		ClientID:        n.ClientID,
		ResponseType:    n.ResponseType,
		RedirectUri:     mapOptionalString(n.RedirectURI),
		Scope:           n.Scope,
		State:           n.State,
	}))
}

func (r *authorizeNoncesRepo) ConsumeAuthorizeNonce(
	ctx context.Context,
	clientID, ownerID, scope, nonce string,
) (domain.AuthorizeNonce, error) {
	row, err := r.q.ConsumeAuthorizeNonce(ctx, gen.ConsumeAuthorizeNonceParams{
		ClientID:        clientID,
		ResourceOwnerID: ownerID,
		Scope:           scope,
		AuthorizeNonce:  nonce,
	})
	if err != nil {
		return domain.AuthorizeNonce{}, mapErr("nonces.consume", err)
	}
	return mapAuthorizeNonce(row), nil
}

func (r *authorizeNoncesRepo) DeleteAuthorizeNoncesForClient(ctx context.Context, clientID string) (int64, error) {
	n, err := r.q.DeleteAuthorizeNoncesByClient(ctx, clientID)
	return n, mapErr("nonces.delete_for_client", err)
}

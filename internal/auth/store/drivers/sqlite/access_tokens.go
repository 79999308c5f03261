package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite/gen"
)

type accessTokensRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *accessTokensRepo) StoreAccessToken(
	ctx context.Context,
	token, clientID, ownerID, displayName, scope string,
	expiresIn int64,
) error {
	return mapErr("tokens.store", r.q.StoreAccessToken(ctx, gen.StoreAccessTokenParams{
		AccessToken:              token,
		ClientID:                 clientID,
		ResourceOwnerID:          ownerID,
		ResourceOwnerDisplayName: displayName,
		IssueTime:                r.now().Unix(),
		ExpiresIn:                expiresIn,
		Scope:                    scope,
	}))
}

func (r *accessTokensRepo) GetAccessToken(ctx context.Context, token string) (domain.AccessToken, error) {
	row, err := r.q.GetAccessToken(ctx, token)
	if err != nil {
		return domain.AccessToken{}, mapErr("tokens.get", err)
	}
	return mapAccessToken(row), nil
}

func (r *accessTokensRepo) DeleteAccessTokensForClient(ctx context.Context, clientID string) (int64, error) {
	n, err := r.q.DeleteAccessTokensByClient(ctx, clientID)
	return n, mapErr("tokens.delete_for_client", err)
}

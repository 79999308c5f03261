package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite/gen"
)

type authorizationCodesRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *authorizationCodesRepo) StoreAuthorizationCode(
	ctx context.Context,
	code, clientID string,
	redirectURI domain.Optional[string],
	accessToken string,
) error {
	return mapErr("codes.store", r.q.StoreAuthorizationCode(ctx, gen.StoreAuthorizationCodeParams{
		ClientID:          clientID,
		AuthorizationCode: code,
		RedirectUri:       mapOptionalString(redirectURI),
		IssueTime:         r.now().Unix(),
		AccessToken:       accessToken,
	}))
}

func (r *authorizationCodesRepo) GetAuthorizationCode(
	ctx context.Context,
	code string,
	redirectURI domain.Optional[string],
) (domain.AuthorizationCode, error) {
	row, err := r.q.GetAuthorizationCode(ctx, gen.GetAuthorizationCodeParams{
		AuthorizationCode: code,
		RedirectUri:       mapOptionalString(redirectURI),
	})
	if err != nil {
		return domain.AuthorizationCode{}, mapErr("codes.get", err)
	}
	return mapAuthorizationCode(row), nil
}

// ConsumeAuthorizationCode relies on DELETE ... RETURNING: the match and the
// removal are one statement, so sqlite's write lock serialises racing callers
// and only the first sees the row.
func (r *authorizationCodesRepo) ConsumeAuthorizationCode(
	ctx context.Context,
	code string,
	redirectURI domain.Optional[string],
) (domain.AuthorizationCode, error) {
	row, err := r.q.ConsumeAuthorizationCode(ctx, gen.ConsumeAuthorizationCodeParams{
		AuthorizationCode: code,
		RedirectUri:       mapOptionalString(redirectURI),
	})
	if err != nil {
		return domain.AuthorizationCode{}, mapErr("codes.consume", err)
	}
	return mapAuthorizationCode(row), nil
}

func (r *authorizationCodesRepo) DeleteAuthorizationCodesForClient(ctx context.Context, clientID string) (int64, error) {
	n, err := r.q.DeleteAuthorizationCodesByClient(ctx, clientID)
	return n, mapErr("codes.delete_for_client", err)
}

func (r *authorizationCodesRepo) DeleteAuthorizationCodesIssuedBefore(ctx context.Context, t time.Time) (int64, error) {
	n, err := r.q.DeleteAuthorizationCodesIssuedBefore(ctx, t.Unix())
	return n, mapErr("codes.delete_issued_before", err)
}

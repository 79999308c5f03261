package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store"
	"github.com/aussiebroadwan/grantstore/pkg/cryptox"
	"github.com/aussiebroadwan/grantstore/pkg/metricsx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

// GrantService redeems authorization codes for the access tokens they were
// issued with.
type GrantService struct {
	Store   store.Store
	Metrics *metricsx.Metrics

	// Now defaults to time.Now. Expiry is judged against it in whole seconds.
	Now func() time.Time
}

// TokenRequest is an authorization_code grant as presented at the token
// endpoint, after client credentials have been extracted.
type TokenRequest struct {
	ClientID     string
	ClientSecret string
	Code         string
	RedirectURI  domain.Optional[string]
}

func (s *GrantService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RedeemAuthorizationCode exchanges code for its access token exactly once.
//
// The code row is removed by a single conditional delete matching both the
// code and redirectURI (an absent redirectURI only matches codes stored
// without one). If the row has outlived domain.AuthorizationCodeTTL the
// removal is still committed, but the caller gets ErrCodeNotRedeemable, the
// same as for a code that was already redeemed or never existed.
//
// A code whose access token has vanished is a *store.FaultError wrapping
// store.ErrReferentialIntegrity and the deletion is rolled back. Any other
// storage failure is returned as is.
func (s *GrantService) RedeemAuthorizationCode(
	ctx context.Context,
	code string,
	redirectURI domain.Optional[string],
) (domain.AccessToken, error) {
	l := slogx.FromContext(ctx)

	var (
		token   domain.AccessToken
		expired bool
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		ac, err := tx.AuthorizationCodes().ConsumeAuthorizationCode(ctx, code, redirectURI)
		if err != nil {
			return err
		}

		if ac.Expired(s.now()) {
			expired = true
			return nil
		}

		token, err = tx.AccessTokens().GetAccessToken(ctx, ac.AccessToken)
		if errors.Is(err, store.ErrNotFound) {
			return store.Fault("codes.redeem", fmt.Errorf(
				"%w: authorization code for client %s references a missing access token",
				store.ErrReferentialIntegrity, ac.ClientID,
			))
		}
		return err
	})

	switch {
	case errors.Is(err, store.ErrNotFound):
		s.Metrics.ObserveRedemption(metricsx.OutcomeNotRedeemable)
		return domain.AccessToken{}, ErrCodeNotRedeemable
	case err != nil:
		s.Metrics.ObserveRedemption(metricsx.OutcomeFault)
		l.Error("authorization code redemption failed", slog.Any("error", err))
		return domain.AccessToken{}, err
	case expired:
		s.Metrics.ObserveRedemption(metricsx.OutcomeExpired)
		l.Info("expired authorization code presented")
		return domain.AccessToken{}, ErrCodeNotRedeemable
	}

	s.Metrics.ObserveRedemption(metricsx.OutcomeRedeemed)
	return token, nil
}

// ExchangeAuthorizationCode implements the authorization_code grant: it
// authenticates the client, redeems the code and checks the code was issued
// to that client.
//
// Returns ErrInvalidClient for unknown clients or bad credentials,
// ErrInvalidRequest when no code is given and ErrInvalidGrant (or
// ErrCodeNotRedeemable, which wraps it) when the code cannot be used.
func (s *GrantService) ExchangeAuthorizationCode(ctx context.Context, req TokenRequest) (domain.AccessToken, error) {
	l := slogx.FromContext(ctx)

	client, err := s.authenticateClient(ctx, req.ClientID, req.ClientSecret)
	if err != nil {
		return domain.AccessToken{}, err
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		return domain.AccessToken{}, ErrInvalidRequest
	}

	token, err := s.RedeemAuthorizationCode(ctx, code, req.RedirectURI)
	if err != nil {
		return domain.AccessToken{}, err
	}

	if token.ClientID != client.ID {
		l.Warn("authorization code presented by another client",
			slog.String("client_id", client.ID),
			slog.String("issued_to", token.ClientID),
		)
		return domain.AccessToken{}, ErrInvalidGrant
	}

	return token, nil
}

// IntrospectToken reports on an access token for a resource server (RFC
// 7662). The caller must authenticate as a confidential client. active is
// false for unknown and expired tokens alike; the token is only meaningful
// when active.
func (s *GrantService) IntrospectToken(ctx context.Context, clientID, clientSecret, token string) (t domain.AccessToken, active bool, err error) {
	client, err := s.authenticateClient(ctx, clientID, clientSecret)
	if err != nil {
		return domain.AccessToken{}, false, err
	}
	if !client.Confidential() {
		slogx.FromContext(ctx).Info("introspection by public client refused", slog.String("client_id", client.ID))
		return domain.AccessToken{}, false, ErrInvalidClient
	}

	t, err = s.Store.AccessTokens().GetAccessToken(ctx, token)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.AccessToken{}, false, nil
	case err != nil:
		return domain.AccessToken{}, false, err
	case t.Expired(s.now()):
		return domain.AccessToken{}, false, nil
	}
	return t, true, nil
}

// authenticateClient resolves clientID and, for confidential clients, checks
// secret. Unknown clients and bad secrets are both ErrInvalidClient.
func (s *GrantService) authenticateClient(ctx context.Context, clientID, secret string) (domain.Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return domain.Client{}, ErrInvalidClient
	}

	client, err := s.Store.Clients().GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrInvalidClient
		}
		return domain.Client{}, err
	}

	if hash, ok := client.SecretHash.Get(); ok {
		if secret == "" || cryptox.VerifySecret(secret, hash) != nil {
			slogx.FromContext(ctx).Info("client authentication failed", slog.String("client_id", clientID))
			return domain.Client{}, ErrInvalidClient
		}
	}
	return client, nil
}

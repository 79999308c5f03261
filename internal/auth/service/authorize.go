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
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

// DefaultAccessTokenTTL applies when AuthorizeService.AccessTokenTTL is unset.
const DefaultAccessTokenTTL = time.Hour

// AuthorizeService runs the authorization endpoint: it decides whether a
// request needs the resource owner's consent and issues an authorization
// code, together with the access token it will redeem for, once consent
// exists.
type AuthorizeService struct {
	Store          store.Store
	AccessTokenTTL time.Duration
}

// AuthorizeRequest is a validated-for-shape authorization request. The
// resource owner has already been authenticated upstream.
type AuthorizeRequest struct {
	ResponseType string
	ClientID     string
	RedirectURI  domain.Optional[string]
	Scope        string
	State        string

	ResourceOwnerID          string
	ResourceOwnerDisplayName string
}

// ConsentChallenge asks the resource owner to approve a client. Nonce must
// be echoed back in the Decision.
type ConsentChallenge struct {
	Nonce             string
	ClientID          string
	ClientName        string
	ClientDescription string
	Scope             string
}

// CodeGrant is where the user agent is sent once a code has been issued.
type CodeGrant struct {
	RedirectURI string
	Code        string
	State       string
}

// AuthorizeResult holds exactly one of Grant or Consent.
type AuthorizeResult struct {
	Grant   *CodeGrant
	Consent *ConsentChallenge
}

// Decision is the resource owner's answer to a ConsentChallenge.
type Decision struct {
	ClientID                 string
	Scope                    string
	Nonce                    string
	Approve                  bool
	ResourceOwnerID          string
	ResourceOwnerDisplayName string
}

// AccessDeniedError carries the redirect target for an access_denied error
// response when the resource owner rejects a request.
type AccessDeniedError struct {
	RedirectURI string
	State       string
}

func (e *AccessDeniedError) Error() string { return "access_denied" }

func (e *AccessDeniedError) Unwrap() error { return ErrAccessDenied }

func (s *AuthorizeService) tokenTTL() time.Duration {
	if s.AccessTokenTTL > 0 {
		return s.AccessTokenTTL
	}
	return DefaultAccessTokenTTL
}

// Begin validates req against the client registration. When the owner has
// already approved every requested scope a code is issued straight away;
// otherwise a nonce is stored and a ConsentChallenge returned.
//
// Returns ErrInvalidRequest for missing parameters or a redirect_uri that
// differs from the registered one, ErrInvalidClient for unknown clients,
// ErrUnsupportedResponseType and ErrInvalidScope.
func (s *AuthorizeService) Begin(ctx context.Context, req AuthorizeRequest) (AuthorizeResult, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(req.ClientID) == "" || strings.TrimSpace(req.ResourceOwnerID) == "" {
		return AuthorizeResult{}, ErrInvalidRequest
	}

	client, err := s.Store.Clients().GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthorizeResult{}, ErrInvalidClient
		}
		return AuthorizeResult{}, err
	}

	if uri, ok := req.RedirectURI.Get(); ok && uri != client.RedirectURI {
		l.Info("redirect_uri does not match registration", slog.String("client_id", client.ID))
		return AuthorizeResult{}, fmt.Errorf("%w: redirect_uri mismatch", ErrInvalidRequest)
	}
	if req.ResponseType != "code" {
		return AuthorizeResult{}, ErrUnsupportedResponseType
	}
	if strings.TrimSpace(req.Scope) == "" {
		return AuthorizeResult{}, ErrInvalidScope
	}

	approval, err := s.Store.Approvals().GetApproval(ctx, client.ID, req.ResourceOwnerID)
	switch {
	case err == nil && scopeCovers(approval.Scope, req.Scope):
		grant, err := s.issueCode(ctx, client, req.ResourceOwnerID, req.ResourceOwnerDisplayName, req.Scope, req.RedirectURI, req.State)
		if err != nil {
			return AuthorizeResult{}, err
		}
		return AuthorizeResult{Grant: &grant}, nil
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return AuthorizeResult{}, err
	}

	nonce, err := cryptox.NewNonce()
	if err != nil {
		return AuthorizeResult{}, err
	}

	err = s.Store.AuthorizeNonces().StoreAuthorizeNonce(ctx, domain.AuthorizeNonce{
		Nonce:           nonce,
		ResourceOwnerID: req.ResourceOwnerID,
		ClientID:        client.ID,
		ResponseType:    req.ResponseType,
		RedirectURI:     req.RedirectURI,
		Scope:           req.Scope,
		State:           req.State,
	})
	if err != nil {
		l.Error("failed to store authorize nonce", slog.Any("error", err))
		return AuthorizeResult{}, err
	}

	return AuthorizeResult{Consent: &ConsentChallenge{
		Nonce:             nonce,
		ClientID:          client.ID,
		ClientName:        client.Name,
		ClientDescription: client.Description,
		Scope:             req.Scope,
	}}, nil
}

// Decide completes a consent round trip. The nonce is consumed whatever the
// answer. On approval the scope is recorded as the owner's approval and a
// code issued; on rejection an *AccessDeniedError is returned.
func (s *AuthorizeService) Decide(ctx context.Context, d Decision) (CodeGrant, error) {
	l := slogx.FromContext(ctx)

	token, code, err := mintCodeAndToken()
	if err != nil {
		return CodeGrant{}, err
	}

	var grant CodeGrant
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.AuthorizeNonces().ConsumeAuthorizeNonce(ctx, d.ClientID, d.ResourceOwnerID, d.Scope, d.Nonce)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: unknown or reused nonce", ErrInvalidRequest)
			}
			return err
		}

		client, err := tx.Clients().GetClient(ctx, n.ClientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidClient
			}
			return err
		}

		if !d.Approve {
			// Commit so the nonce cannot be replayed, then report the denial.
			grant = CodeGrant{RedirectURI: n.RedirectURI.OrElse(client.RedirectURI), State: n.State}
			return nil
		}

		if err := grantApproval(ctx, tx.Approvals(), client.ID, d.ResourceOwnerID, d.Scope); err != nil {
			return err
		}

		grant, err = s.storeCodeAndToken(ctx, tx, client, d.ResourceOwnerID, d.ResourceOwnerDisplayName, d.Scope, n.RedirectURI, n.State, token, code)
		return err
	})
	if err != nil {
		return CodeGrant{}, err
	}

	if !d.Approve {
		l.Info("authorization denied by resource owner", slog.String("client_id", d.ClientID))
		return CodeGrant{}, &AccessDeniedError{RedirectURI: grant.RedirectURI, State: grant.State}
	}

	l.Info("authorization approved", slog.String("client_id", d.ClientID))
	return grant, nil
}

// issueCode mints a token and code and stores both in one transaction.
func (s *AuthorizeService) issueCode(
	ctx context.Context,
	client domain.Client,
	ownerID, displayName, scope string,
	redirectURI domain.Optional[string],
	state string,
) (CodeGrant, error) {
	token, code, err := mintCodeAndToken()
	if err != nil {
		return CodeGrant{}, err
	}

	var grant CodeGrant
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		grant, err = s.storeCodeAndToken(ctx, tx, client, ownerID, displayName, scope, redirectURI, state, token, code)
		return err
	})
	return grant, err
}

func (s *AuthorizeService) storeCodeAndToken(
	ctx context.Context,
	tx store.Tx,
	client domain.Client,
	ownerID, displayName, scope string,
	redirectURI domain.Optional[string],
	state, token, code string,
) (CodeGrant, error) {
	expiresIn := int64(s.tokenTTL() / time.Second)
	if err := tx.AccessTokens().StoreAccessToken(ctx, token, client.ID, ownerID, displayName, scope, expiresIn); err != nil {
		return CodeGrant{}, err
	}
	if err := tx.AuthorizationCodes().StoreAuthorizationCode(ctx, code, client.ID, redirectURI, token); err != nil {
		return CodeGrant{}, err
	}

	return CodeGrant{
		RedirectURI: redirectURI.OrElse(client.RedirectURI),
		Code:        code,
		State:       state,
	}, nil
}

func mintCodeAndToken() (token, code string, err error) {
	if token, err = cryptox.NewAccessToken(); err != nil {
		return "", "", err
	}
	if code, err = cryptox.NewAuthorizationCode(); err != nil {
		return "", "", err
	}
	return token, code, nil
}

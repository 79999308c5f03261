package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store"
	"github.com/aussiebroadwan/grantstore/pkg/cryptox"
	"github.com/aussiebroadwan/grantstore/pkg/idx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

type ClientService struct {
	Store store.Store
}

// ClientInput is the mutable part of a client registration. ID is only
// honoured on create; a ULID is generated when it is empty.
type ClientInput struct {
	ID          string
	Name        string
	Description string
	RedirectURI string
	Type        domain.ClientType
}

func (in ClientInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown client type %q", ErrInvalidRequest, in.Type)
	}
	u, err := url.Parse(in.RedirectURI)
	if err != nil || !u.IsAbs() || u.Fragment != "" {
		return fmt.Errorf("%w: redirect_uri must be an absolute URI without fragment", ErrInvalidRequest)
	}
	return nil
}

// CreateClient registers a client. Web applications are confidential and get
// a generated secret, returned here in plaintext once and stored only as a
// hash.
func (s *ClientService) CreateClient(ctx context.Context, in ClientInput) (client domain.Client, plaintextSecret string, err error) {
	l := slogx.FromContext(ctx)

	if err := in.validate(); err != nil {
		return domain.Client{}, "", err
	}

	client = domain.Client{
		ID:          strings.TrimSpace(in.ID),
		Name:        in.Name,
		Description: in.Description,
		RedirectURI: in.RedirectURI,
		Type:        in.Type,
	}
	if client.ID == "" {
		client.ID = idx.New().String()
	}

	if in.Type == domain.ClientTypeWebApplication {
		plaintextSecret, client.SecretHash, err = newClientSecret()
		if err != nil {
			l.Error("failed to generate client secret", "error", err)
			return domain.Client{}, "", err
		}
	}

	if err := s.Store.Clients().AddClient(ctx, client); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Client{}, "", ErrClientExists
		}
		l.Error("failed to create client", "error", err)
		return domain.Client{}, "", err
	}

	l.Info("client created", "client_id", client.ID, "type", client.Type, "confidential", client.Confidential())
	return client, plaintextSecret, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

func (s *ClientService) GetClient(ctx context.Context, id string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClient(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, ErrClientNotFound
	}
	return c, err
}

// UpdateClient replaces the client's registration. The secret is kept while
// the client stays confidential unless rotateSecret is set; a new plaintext
// secret is returned whenever one is generated.
func (s *ClientService) UpdateClient(
	ctx context.Context,
	id string,
	in ClientInput,
	rotateSecret bool,
) (client domain.Client, plaintextSecret string, err error) {
	if err := in.validate(); err != nil {
		return domain.Client{}, "", err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Clients().GetClient(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		client = domain.Client{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			RedirectURI: in.RedirectURI,
			Type:        in.Type,
			SecretHash:  existing.SecretHash,
		}

		switch {
		case in.Type != domain.ClientTypeWebApplication:
			client.SecretHash = domain.None[string]()
		case rotateSecret || !existing.Confidential():
			if plaintextSecret, client.SecretHash, err = newClientSecret(); err != nil {
				return err
			}
		}

		changed, err := tx.Clients().UpdateClient(ctx, id, client)
		if err != nil {
			return err
		}
		if !changed {
			return ErrClientNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Client{}, "", err
	}

	slogx.FromContext(ctx).Info("client updated", "client_id", id, "secret_rotated", plaintextSecret != "")
	return client, plaintextSecret, nil
}

// DeleteClient removes a client and everything issued to it, dependents
// first: approvals, access tokens, nonces, codes, then the client row. All
// of it happens in one transaction, so a failure at any step leaves the
// client intact. Deleting an unknown client reports false without error.
func (s *ClientService) DeleteClient(ctx context.Context, id string) (bool, error) {
	l := slogx.FromContext(ctx)

	var deleted bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Approvals().DeleteApprovalsForClient(ctx, id); err != nil {
			return err
		}
		if _, err := tx.AccessTokens().DeleteAccessTokensForClient(ctx, id); err != nil {
			return err
		}
		if _, err := tx.AuthorizeNonces().DeleteAuthorizeNoncesForClient(ctx, id); err != nil {
			return err
		}
		if _, err := tx.AuthorizationCodes().DeleteAuthorizationCodesForClient(ctx, id); err != nil {
			return err
		}

		var err error
		deleted, err = tx.Clients().DeleteClient(ctx, id)
		return err
	})
	if err != nil {
		l.Error("failed to delete client", "error", err, "client_id", id)
		return false, err
	}

	if deleted {
		l.Info("client deleted", "client_id", id)
	}
	return deleted, nil
}

func newClientSecret() (string, domain.Optional[string], error) {
	secret, err := cryptox.GenerateClientSecret()
	if err != nil {
		return "", domain.Optional[string]{}, err
	}
	hash, err := cryptox.HashSecret(secret)
	if err != nil {
		return "", domain.Optional[string]{}, err
	}
	return secret, domain.Some(hash), nil
}

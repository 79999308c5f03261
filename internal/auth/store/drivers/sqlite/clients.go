package sqlite

import (
	"context"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite/gen"
)

type clientsRepo struct {
	q *gen.Queries
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.q.ListClients(ctx)
	if err != nil {
		return nil, mapErr("clients.list", err)
	}

	clients := make([]domain.Client, len(rows))
	for i, row := range rows {
		clients[i] = mapClient(row)
	}
	return clients, nil
}

func (r *clientsRepo) GetClient(ctx context.Context, id string) (domain.Client, error) {
	row, err := r.q.GetClient(ctx, id)
	if err != nil {
		return domain.Client{}, mapErr("clients.get", err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) GetClientByRedirectURI(ctx context.Context, uri string) (domain.Client, error) {
	row, err := r.q.GetClientByRedirectURI(ctx, uri)
	if err != nil {
		return domain.Client{}, mapErr("clients.get_by_redirect_uri", err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) AddClient(ctx context.Context, c domain.Client) error {
	return mapErr("clients.add", r.q.AddClient(ctx, gen.AddClientParams{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Secret:      mapOptionalString(c.SecretHash),
		RedirectUri: c.RedirectURI,
		Type:        string(c.Type),
	}))
}

func (r *clientsRepo) UpdateClient(ctx context.Context, id string, c domain.Client) (bool, error) {
	n, err := r.q.UpdateClient(ctx, gen.UpdateClientParams{
		Name:        c.Name,
		Description: c.Description,
		Secret:      mapOptionalString(c.SecretHash),
		RedirectUri: c.RedirectURI,
		Type:        string(c.Type),
		ID:          id,
	})
	if err != nil {
		return false, mapErr("clients.update", err)
	}
	return n == 1, nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id string) (bool, error) {
	n, err := r.q.DeleteClient(ctx, id)
	if err != nil {
		return false, mapErr("clients.delete", err)
	}
	return n == 1, nil
}

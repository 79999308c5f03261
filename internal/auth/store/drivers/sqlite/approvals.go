package sqlite

import (
	"context"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite/gen"
)

type approvalsRepo struct {
	q *gen.Queries
}

func (r *approvalsRepo) AddApproval(ctx context.Context, clientID, ownerID, scope string) error {
	return mapErr("approvals.add", r.q.AddApproval(ctx, gen.AddApprovalParams{
		ClientID:        clientID,
		ResourceOwnerID: ownerID,
		Scope:           scope,
	}))
}

func (r *approvalsRepo) UpdateApproval(ctx context.Context, clientID, ownerID, scope string) (bool, error) {
	n, err := r.q.UpdateApproval(ctx, gen.UpdateApprovalParams{
		Scope:           scope,
		ClientID:        clientID,
		ResourceOwnerID: ownerID,
	})
	if err != nil {
		return false, mapErr("approvals.update", err)
	}
	return n == 1, nil
}

func (r *approvalsRepo) GetApproval(ctx context.Context, clientID, ownerID string) (domain.Approval, error) {
	row, err := r.q.GetApproval(ctx, gen.GetApprovalParams{
		ClientID:        clientID,
		ResourceOwnerID: ownerID,
	})
	if err != nil {
		return domain.Approval{}, mapErr("approvals.get", err)
	}
	return mapApproval(row), nil
}

func (r *approvalsRepo) ListApprovals(ctx context.Context, ownerID string) ([]domain.ApprovalSummary, error) {
	rows, err := r.q.ListApprovals(ctx, ownerID)
	if err != nil {
		return nil, mapErr("approvals.list", err)
	}

	out := make([]domain.ApprovalSummary, len(rows))
	for i, row := range rows {
		out[i] = domain.ApprovalSummary{
			ClientID:    row.ID,
			Scope:       row.Scope,
			Name:        row.Name,
			Description: row.Description,
			RedirectURI: row.RedirectUri,
		}
	}
	return out, nil
}

func (r *approvalsRepo) DeleteApproval(ctx context.Context, clientID, ownerID string) (bool, error) {
	n, err := r.q.DeleteApproval(ctx, gen.DeleteApprovalParams{
		ClientID:        clientID,
		ResourceOwnerID: ownerID,
	})
	if err != nil {
		return false, mapErr("approvals.delete", err)
	}
	return n == 1, nil
}

func (r *approvalsRepo) DeleteApprovalsForClient(ctx context.Context, clientID string) (int64, error) {
	n, err := r.q.DeleteApprovalsByClient(ctx, clientID)
	return n, mapErr("approvals.delete_for_client", err)
}

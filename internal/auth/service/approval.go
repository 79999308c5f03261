package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

// ApprovalService manages the standing consents resource owners have given
// to clients.
type ApprovalService struct {
	Store store.Store
}

func (s *ApprovalService) ListApprovals(ctx context.Context, ownerID string) ([]domain.ApprovalSummary, error) {
	return s.Store.Approvals().ListApprovals(ctx, ownerID)
}

// GrantApproval records scope as the owner's approval for clientID,
// replacing whatever scope was approved before.
func (s *ApprovalService) GrantApproval(ctx context.Context, clientID, ownerID, scope string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return grantApproval(ctx, tx.Approvals(), clientID, ownerID, scope)
	})
}

// RevokeApproval withdraws an approval. Tokens already issued stay valid
// until they expire.
func (s *ApprovalService) RevokeApproval(ctx context.Context, clientID, ownerID string) error {
	deleted, err := s.Store.Approvals().DeleteApproval(ctx, clientID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrApprovalNotFound
	}

	slogx.FromContext(ctx).Info("approval revoked", "client_id", clientID)
	return nil
}

// grantApproval picks between add and update itself: the store keeps at most
// one approval per (client, owner) and a second add is a fault.
func grantApproval(ctx context.Context, approvals store.Approvals, clientID, ownerID, scope string) error {
	_, err := approvals.GetApproval(ctx, clientID, ownerID)
	switch {
	case err == nil:
		_, err = approvals.UpdateApproval(ctx, clientID, ownerID, scope)
		return err
	case !errors.Is(err, store.ErrNotFound):
		return err
	}

	err = approvals.AddApproval(ctx, clientID, ownerID, scope)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrApprovalExists, err)
	case errors.Is(err, store.ErrReferentialIntegrity):
		return fmt.Errorf("%w: %w", ErrClientNotFound, err)
	}
	return err
}

// scopeCovers reports whether every space separated scope in requested is
// also present in granted.
func scopeCovers(granted, requested string) bool {
	have := make(map[string]struct{})
	for _, s := range strings.Fields(granted) {
		have[s] = struct{}{}
	}
	for _, s := range strings.Fields(requested) {
		if _, ok := have[s]; !ok {
			return false
		}
	}
	return true
}

package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/grantstore/internal/auth/service"
	"github.com/aussiebroadwan/grantstore/pkg/authsdk"
	"github.com/aussiebroadwan/grantstore/pkg/httpx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

// ApprovalsHandler lets a resource owner see and withdraw the approvals they
// have given. The owner is the subject of the bearer token.
type ApprovalsHandler struct {
	ApprovalService *service.ApprovalService
}

// HandleList handles GET /v1/approvals
//
//	@Summary		List approvals
//	@Description	Returns the clients the token's resource owner has approved, ordered by client id.
//	@Tags			Approvals
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.ListApprovalsResponse	"Approved clients"
//	@Failure		401	{object}	authsdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	authsdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	authsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/approvals [get].
func (h *ApprovalsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFromContext(ctx)

	approvals, err := h.ApprovalService.ListApprovals(ctx, p.Subject)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list approvals", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	response := authsdk.ListApprovalsResponse{
		Approvals: make([]authsdk.ApprovalInfo, len(approvals)),
	}
	for i, a := range approvals {
		response.Approvals[i] = authsdk.ApprovalInfo{
			ClientID:    a.ClientID,
			Scope:       a.Scope,
			Name:        a.Name,
			Description: a.Description,
			RedirectURI: a.RedirectURI,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleRevoke handles DELETE /v1/approvals/{client_id}
//
//	@Summary		Revoke approval
//	@Description	Withdraws the resource owner's approval for a client. Tokens already issued stay valid until they expire.
//	@Tags			Approvals
//	@Security		BearerAuth
//	@Param			client_id	path	string	true	"Client ID"
//	@Success		204			"Approval revoked"
//	@Failure		401			{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/approvals/{client_id} [delete].
func (h *ApprovalsHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := httpx.PrincipalFromContext(ctx)

	err := h.ApprovalService.RevokeApproval(ctx, r.PathValue("client_id"), p.Subject)
	switch {
	case errors.Is(err, service.ErrApprovalNotFound):
		authsdk.ErrNotFound.WithDescription("approval not found").WriteError(w)
	case err != nil:
		slogx.FromContext(ctx).Error("failed to revoke approval", "error", err)
		authsdk.ErrServerError.WriteError(w)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/grantstore/internal/voot/domain"
	"github.com/aussiebroadwan/grantstore/internal/voot/store"
	"github.com/aussiebroadwan/grantstore/pkg/httpx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

type Handlers struct {
	Storage store.Storage
}

// HandleGroups handles GET /groups/{uid}: the groups uid is a member of.
func (h *Handlers) HandleGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.Storage.IsMemberOf(ctx, r.PathValue("uid"), pageRequest(r))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list groups", "error", err)
		writeInternalError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandlePeople handles GET /people/{uid}/{gid}: the members of gid.
func (h *Handlers) HandlePeople(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.Storage.GetGroupMembers(ctx, r.PathValue("uid"), r.PathValue("gid"), pageRequest(r))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list group members", "error", err)
		writeInternalError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

func pageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	return domain.ParsePageRequest(q.Get("startIndex"), q.Get("count"))
}

func writeInternalError(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusInternalServerError, "internal_server_error", "storage failure")
}

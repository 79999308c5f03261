package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/service"
	"github.com/aussiebroadwan/grantstore/pkg/authsdk"
	"github.com/aussiebroadwan/grantstore/pkg/httpx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

// ClientsHandler handles all client management endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleCreate handles POST /v1/clients
//
//	@Summary		Register OAuth2 Client
//	@Description	Registers a client. Web applications are confidential and receive a generated secret, returned once in this response.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		AdminAuth
//	@Param			request	body		authsdk.ClientRequest	true	"Client registration"
//	@Success		201		{object}	authsdk.ClientInfo		"Registered client, with client_secret for web applications"
//	@Failure		400		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidRequest.WithDescription("invalid JSON in request body").WriteError(w)
		return
	}

	client, secret, err := h.ClientService.CreateClient(ctx, clientInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			authsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		case errors.Is(err, service.ErrClientExists):
			authsdk.ErrConflict.WithDescription("client id already registered").WriteError(w)
		default:
			log.Error("failed to create client", "error", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clientInfo(client, secret))
}

// HandleList handles GET /v1/clients
//
//	@Summary		List OAuth2 Clients
//	@Description	Returns all registered clients ordered by id. Secrets are never returned.
//	@Tags			Clients
//	@Produce		json
//	@Security		AdminAuth
//	@Success		200	{object}	authsdk.ListClientsResponse	"List of clients"
//	@Failure		401	{object}	authsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	authsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clients, err := h.ClientService.ListClients(ctx)
	if err != nil {
		log.Error("failed to list clients", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	response := authsdk.ListClientsResponse{
		Clients: make([]authsdk.ClientInfo, len(clients)),
	}
	for i, client := range clients {
		response.Clients[i] = clientInfo(client, "")
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet handles GET /v1/clients/{id}
//
//	@Summary		Get OAuth2 Client
//	@Tags			Clients
//	@Produce		json
//	@Security		AdminAuth
//	@Param			id	path		string					true	"Client ID"
//	@Success		200	{object}	authsdk.ClientInfo		"Client"
//	@Failure		401	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	client, err := h.ClientService.GetClient(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			authsdk.ErrNotFound.WithDescription("client not found").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to get client", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clientInfo(client, ""))
}

// HandleUpdate handles PUT /v1/clients/{id}
//
//	@Summary		Update OAuth2 Client
//	@Description	Replaces the registration. A client that becomes a web application, or sets rotate_secret, receives a new secret in the response.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		AdminAuth
//	@Param			id		path		string					true	"Client ID"
//	@Param			request	body		authsdk.ClientRequest	true	"Client registration"
//	@Success		200		{object}	authsdk.ClientInfo		"Updated client"
//	@Failure		400		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidRequest.WithDescription("invalid JSON in request body").WriteError(w)
		return
	}

	client, secret, err := h.ClientService.UpdateClient(ctx, r.PathValue("id"), clientInput(req), req.RotateSecret)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			authsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		case errors.Is(err, service.ErrClientNotFound):
			authsdk.ErrNotFound.WithDescription("client not found").WriteError(w)
		default:
			log.Error("failed to update client", "error", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clientInfo(client, secret))
}

// HandleDelete handles DELETE /v1/clients/{id}
//
//	@Summary		Delete OAuth2 Client
//	@Description	Deletes the client together with its approvals, access tokens, pending nonces and authorization codes.
//	@Tags			Clients
//	@Produce		json
//	@Security		AdminAuth
//	@Param			id	path	string	true	"Client ID"
//	@Success		204	"Client deleted successfully"
//	@Failure		401	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := r.PathValue("id")

	deleted, err := h.ClientService.DeleteClient(ctx, clientID)
	if err != nil {
		authsdk.ErrServerError.WriteError(w)
		return
	}
	if !deleted {
		authsdk.ErrNotFound.WithDescription("client not found").WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func clientInput(req authsdk.ClientRequest) service.ClientInput {
	return service.ClientInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		RedirectURI: req.RedirectURI,
		Type:        domain.ClientType(req.Type),
	}
}

func clientInfo(c domain.Client, secret string) authsdk.ClientInfo {
	return authsdk.ClientInfo{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		RedirectURI:  c.RedirectURI,
		Type:         string(c.Type),
		Confidential: c.Confidential(),
		ClientSecret: secret,
	}
}

package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/grantstore/internal/auth/service"
	"github.com/aussiebroadwan/grantstore/pkg/authsdk"
	"github.com/aussiebroadwan/grantstore/pkg/httpx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

// AuthorizeHandler processes OAuth2 authorization requests (authorization code flow).
// The resource owner is authenticated by a reverse proxy in front of this
// service, which asserts the identity in OwnerHeader.
type AuthorizeHandler struct {
	AuthorizeService *service.AuthorizeService
	OwnerHeader      string
	OwnerNameHeader  string
}

// HandleGet processes GET requests to the authorization endpoint.
//
//	@Summary		OAuth2 authorization endpoint (GET)
//	@Description	Starts the authorization code flow for the resource owner asserted by the proxy header.
//	@Description	If the owner already approved the requested scope for the client, a code is issued and the user agent redirected.
//	@Description	Otherwise a consent challenge is returned; answer it with POST /v1/oauth2/authorize.
//	@Tags			OAuth2
//	@Produce		json
//	@Param			response_type	query		string						true	"Must be 'code'"	default(code)
//	@Param			client_id		query		string						true	"OAuth2 client identifier"
//	@Param			redirect_uri	query		string						false	"Callback URI (must equal the registered redirect URI)"
//	@Param			scope			query		string						true	"Space-delimited list of scopes"
//	@Param			state			query		string						false	"Opaque value echoed on the redirect"
//	@Param			X-Remote-User	header		string						true	"Resource owner asserted by the proxy"
//	@Success		200				{object}	authsdk.ConsentChallenge	"Consent required"
//	@Success		302				{string}	string						"Redirect to redirect_uri with code and state"
//	@Failure		400				{object}	authsdk.ErrorResponse		"error, error_description"
//	@Failure		401				{object}	authsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/oauth2/authorize [get]
func (h *AuthorizeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ownerName, ok := h.owner(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "resource owner not authenticated")
		return
	}

	query := r.URL.Query()
	req := service.AuthorizeRequest{
		ResponseType:             query.Get("response_type"),
		ClientID:                 strings.TrimSpace(query.Get("client_id")),
		RedirectURI:              optionalParam(query, "redirect_uri"),
		Scope:                    strings.TrimSpace(query.Get("scope")),
		State:                    query.Get("state"),
		ResourceOwnerID:          ownerID,
		ResourceOwnerDisplayName: ownerName,
	}
	slogx.Annotate(ctx, "client_id", req.ClientID, "owner", ownerID)

	res, err := h.AuthorizeService.Begin(ctx, req)
	if err != nil {
		h.handleAuthorizeError(w, r, req, err)
		return
	}

	if res.Consent != nil {
		httpx.WriteJSON(w, http.StatusOK, authsdk.ConsentChallenge{
			Nonce:             res.Consent.Nonce,
			ClientID:          res.Consent.ClientID,
			ClientName:        res.Consent.ClientName,
			ClientDescription: res.Consent.ClientDescription,
			Scope:             res.Consent.Scope,
		})
		return
	}

	h.redirectWithCode(w, r, *res.Grant)
}

// HandlePost processes the resource owner's consent decision.
//
//	@Summary		OAuth2 authorization endpoint (POST)
//	@Description	Answers a consent challenge. The nonce is single use and must be presented with the same client_id and scope it was issued for.
//	@Description	On approval the scope is recorded for the client and a code issued; on rejection the user agent is redirected with error=access_denied.
//	@Tags			OAuth2
//	@Accept			application/x-www-form-urlencoded
//	@Param			client_id		formData	string					true	"OAuth2 client identifier"
//	@Param			scope			formData	string					true	"Scope from the consent challenge"
//	@Param			authorize_nonce	formData	string					true	"Nonce from the consent challenge"
//	@Param			decision		formData	string					true	"approve or reject"	Enums(approve, reject)
//	@Param			X-Remote-User	header		string					true	"Resource owner asserted by the proxy"
//	@Success		302				{string}	string					"Redirect to redirect_uri with code/state or error"
//	@Failure		400				{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		401				{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/oauth2/authorize [post]
func (h *AuthorizeHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ownerID, ownerName, ok := h.owner(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "resource owner not authenticated")
		return
	}

	if err := r.ParseForm(); err != nil {
		authsdk.ErrInvalidFormBody.WriteError(w)
		return
	}

	var approve bool
	switch r.PostForm.Get("decision") {
	case "approve":
		approve = true
	case "reject":
	default:
		authsdk.ErrInvalidRequest.WithDescription("decision must be approve or reject").WriteError(w)
		return
	}

	clientID := strings.TrimSpace(r.PostForm.Get("client_id"))
	slogx.Annotate(ctx, "client_id", clientID, "owner", ownerID)

	grant, err := h.AuthorizeService.Decide(ctx, service.Decision{
		ClientID:                 clientID,
		Scope:                    strings.TrimSpace(r.PostForm.Get("scope")),
		Nonce:                    r.PostForm.Get("authorize_nonce"),
		Approve:                  approve,
		ResourceOwnerID:          ownerID,
		ResourceOwnerDisplayName: ownerName,
	})

	var denied *service.AccessDeniedError
	switch {
	case errors.As(err, &denied):
		if u := buildErrorRedirect(denied.RedirectURI, denied.State, authsdk.ErrAccessDenied); u != "" {
			http.Redirect(w, r, u, http.StatusFound)
			return
		}
		authsdk.ErrAccessDenied.WriteError(w)
	case errors.Is(err, service.ErrInvalidRequest):
		authsdk.ErrInvalidRequest.WithDescription("unknown or reused authorize nonce").WriteError(w)
	case errors.Is(err, service.ErrInvalidClient), errors.Is(err, service.ErrClientNotFound):
		authsdk.NewOAuth2Error(http.StatusBadRequest, authsdk.ErrorCodeInvalidClient, "unknown client").WriteError(w)
	case errors.Is(err, service.ErrApprovalExists):
		authsdk.ErrConflict.WithDescription("approval changed concurrently, retry").WriteError(w)
	case err != nil:
		log.Error("authorize decision failed", "error", err)
		authsdk.ErrServerError.WriteError(w)
	default:
		h.redirectWithCode(w, r, grant)
	}
}

func (h *AuthorizeHandler) owner(r *http.Request) (id, name string, ok bool) {
	id = strings.TrimSpace(r.Header.Get(h.OwnerHeader))
	if id == "" {
		return "", "", false
	}
	name = strings.TrimSpace(r.Header.Get(h.OwnerNameHeader))
	if name == "" {
		name = id
	}
	return id, name, true
}

func (h *AuthorizeHandler) redirectWithCode(w http.ResponseWriter, r *http.Request, grant service.CodeGrant) {
	redirectURL, err := buildAuthorizeRedirect(grant.RedirectURI, grant.Code, grant.State)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to build redirect URL", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

func (h *AuthorizeHandler) handleAuthorizeError(w http.ResponseWriter, r *http.Request, req service.AuthorizeRequest, err error) {
	logger := slogx.FromContext(r.Context())

	// As per RFC 6749 section 4.1.2.1, an unknown client or a redirect_uri
	// that does not match the registration must not be redirected to.
	var oauthError *authsdk.OAuth2Error
	redirectable := false

	switch {
	case errors.Is(err, service.ErrInvalidClient):
		oauthError = authsdk.NewOAuth2Error(http.StatusBadRequest, authsdk.ErrorCodeInvalidClient, "unknown client")
	case errors.Is(err, service.ErrInvalidRequest):
		oauthError = authsdk.ErrInvalidRequest.WithDescription("missing client_id or redirect_uri does not match the registration")
	case errors.Is(err, service.ErrUnsupportedResponseType):
		oauthError, redirectable = authsdk.ErrUnsupportedResponseType, true
	case errors.Is(err, service.ErrInvalidScope):
		oauthError, redirectable = authsdk.ErrInvalidScope, true
	default:
		logger.Error("authorize request failed", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	if uri, ok := req.RedirectURI.Get(); ok && redirectable {
		if u := buildErrorRedirect(uri, req.State, oauthError); u != "" {
			http.Redirect(w, r, u, http.StatusFound)
			return
		}
	}

	logger.Debug("authorize request returned error response",
		slog.String("error_code", oauthError.Code),
		slog.String("client_id", req.ClientID),
	)
	oauthError.WriteError(w)
}

// buildAuthorizeRedirect constructs a redirect URL for a successful authorization.
func buildAuthorizeRedirect(baseURI, code, state string) (string, error) {
	u, err := url.Parse(baseURI)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("code", code)
	if state != "" {
		q.Set("state", state)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// buildErrorRedirect constructs a redirect URL for an OAuth2 error.
// It returns an empty string if the baseURI is invalid.
func buildErrorRedirect(baseURI, state string, oauthError *authsdk.OAuth2Error) string {
	u, err := url.Parse(baseURI)
	if err != nil || baseURI == "" {
		return ""
	}

	q := u.Query()
	q.Set("error", oauthError.Code)
	if oauthError.Description != "" {
		q.Set("error_description", oauthError.Description)
	}
	if state != "" {
		q.Set("state", state)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/grantstore/internal/auth/service"
	"github.com/aussiebroadwan/grantstore/pkg/authsdk"
	"github.com/aussiebroadwan/grantstore/pkg/httpx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

// IntrospectHandler serves POST /v1/oauth2/introspect following RFC 7662.
// Resource servers use it to learn whether an opaque access token is live
// and on whose behalf it was issued.
type IntrospectHandler struct {
	GrantService *service.GrantService
}

// ServeHTTP godoc
//
//	@Summary		OAuth2 Token Introspection Endpoint
//	@Description	Introspects an access token (RFC 7662). The caller authenticates as a confidential client, with HTTP basic or client_id/client_secret form fields.
//	@Description	Unknown and expired tokens both yield {"active":false}.
//	@Tags			OAuth2
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			token			formData	string							true	"The token to introspect"
//	@Param			token_type_hint	formData	string							false	"Only access_token is supported"	Enums(access_token)
//	@Param			client_id		formData	string							false	"Client identifier (when not using HTTP basic)"
//	@Param			client_secret	formData	string							false	"Client secret (when not using HTTP basic)"
//	@Success		200				{object}	authsdk.IntrospectionResponse	"Token introspection result"
//	@Failure		400				{object}	authsdk.ErrorResponse			"error, error_description"
//	@Failure		401				{object}	authsdk.ErrorResponse			"error, error_description"
//	@Failure		500				{object}	authsdk.ErrorResponse			"error, error_description"
//	@Header			200				{string}	Cache-Control					"no-store"
//	@Header			200				{string}	Pragma							"no-cache"
//	@Router			/v1/oauth2/introspect [post].
func (h *IntrospectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// 1. Ensure the right content-type
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		authsdk.ErrInvalidContentType.WriteError(w)
		return
	}

	// 2. Parse the form body
	if err := r.ParseForm(); err != nil {
		authsdk.ErrInvalidFormBody.WriteError(w)
		return
	}

	clientID, clientSecret, ok := clientCredentials(r, r.PostForm)
	if !ok {
		authsdk.ErrInvalidRequest.WithDescription("malformed client credentials").WriteError(w)
		return
	}
	slogx.Annotate(ctx, "client_id", clientID)

	token := strings.TrimSpace(r.PostForm.Get("token"))
	if token == "" {
		authsdk.ErrInvalidRequest.WithDescription("token is required").WriteError(w)
		return
	}

	// 3. Only access tokens exist here
	if hint := r.PostForm.Get("token_type_hint"); hint != "" && hint != "access_token" {
		writeInactiveResponse(w)
		return
	}

	t, active, err := h.GrantService.IntrospectToken(ctx, clientID, clientSecret, token)
	switch {
	case errors.Is(err, service.ErrInvalidClient):
		authsdk.ErrInvalidClient.WriteError(w)
		return
	case err != nil:
		log.Error("token introspection failed", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	case !active:
		writeInactiveResponse(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.IntrospectionResponse{
		Active:    true,
		Scope:     t.Scope,
		ClientID:  t.ClientID,
		Username:  t.ResourceOwnerDisplayName,
		TokenType: "bearer",
		Exp:       t.ExpiresAt().Unix(),
		Iat:       t.IssueTime.Unix(),
		Sub:       t.ResourceOwnerID,
	})
}

// writeInactiveResponse returns the minimal RFC 7662 response. Per the RFC
// nothing is revealed about why the token is inactive.
func writeInactiveResponse(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusOK, authsdk.IntrospectionResponse{Active: false})
}

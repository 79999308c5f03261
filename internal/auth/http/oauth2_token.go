package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/service"
	"github.com/aussiebroadwan/grantstore/pkg/authsdk"
	"github.com/aussiebroadwan/grantstore/pkg/httpx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

// TokenHandler serves POST /v1/oauth2/token
// Accepts application/x-www-form-urlencoded per the RFC 6749 framework.
type TokenHandler struct {
	GrantService *service.GrantService
}

// ServeHTTP godoc
//
//	@Summary		OAuth2 Token Endpoint
//	@Description	Redeems an authorization code for the access token issued with it. Each code can be redeemed once, within 600 seconds of issue.
//	@Description	Confidential clients authenticate with HTTP basic (preferred) or client_id/client_secret form fields; public clients send client_id.
//	@Tags			OAuth2
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			grant_type		formData	string					true	"Grant type"	Enums(authorization_code)
//	@Param			code			formData	string					true	"Authorization code"
//	@Param			redirect_uri	formData	string					false	"Redirect URI the code was bound to; omit only if the authorization request omitted it"
//	@Param			client_id		formData	string					false	"Client identifier (when not using HTTP basic)"
//	@Param			client_secret	formData	string					false	"Client secret (when not using HTTP basic)"
//	@Success		200				{object}	authsdk.TokenResponse	"access_token, token_type, expires_in, scope"
//	@Failure		400				{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		401				{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500				{object}	authsdk.ErrorResponse	"error, error_description"
//	@Header			200				{string}	Cache-Control			"no-store"
//	@Header			200				{string}	Pragma					"no-cache"
//	@Router			/v1/oauth2/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	// 3. Handle the grant type
	switch r.PostForm.Get("grant_type") {
	case "authorization_code":
		h.handleAuthorizationCodeGrant(w, r, r.PostForm)
	case "":
		authsdk.ErrInvalidRequest.WithDescription("grant_type is required").WriteError(w)
	default:
		authsdk.ErrUnsupportedGrantType.WriteError(w)
	}
}

func (h *TokenHandler) handleAuthorizationCodeGrant(
	w http.ResponseWriter,
	r *http.Request,
	form url.Values,
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID, clientSecret, ok := clientCredentials(r, form)
	if !ok {
		authsdk.ErrInvalidRequest.WithDescription("malformed client credentials").WriteError(w)
		return
	}
	slogx.Annotate(ctx, "client_id", clientID)

	token, err := h.GrantService.ExchangeAuthorizationCode(ctx, service.TokenRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Code:         strings.TrimSpace(form.Get("code")),
		RedirectURI:  optionalParam(form, "redirect_uri"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClient):
			authsdk.ErrInvalidClient.WriteError(w)
		case errors.Is(err, service.ErrInvalidRequest):
			authsdk.ErrInvalidRequest.WithDescription("code is required").WriteError(w)
		case errors.Is(err, service.ErrInvalidGrant):
			authsdk.ErrInvalidGrant.WriteError(w)
		default:
			log.Error("authorization_code grant failed", "error", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	response := authsdk.TokenResponse{
		AccessToken: token.Token,
		TokenType:   "bearer",
		ExpiresIn:   token.ExpiresIn,
		Scope:       token.Scope,
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// clientCredentials reads client authentication from HTTP basic (RFC 6749
// section 2.3.1, form-encoded id and secret) or else from the form body.
// Supplying both is rejected.
func clientCredentials(r *http.Request, form url.Values) (id, secret string, ok bool) {
	user, pass, basic := r.BasicAuth()
	if !basic {
		return strings.TrimSpace(form.Get("client_id")), form.Get("client_secret"), true
	}
	if form.Has("client_secret") {
		return "", "", false
	}

	id, err := url.QueryUnescape(user)
	if err != nil {
		return "", "", false
	}
	secret, err = url.QueryUnescape(pass)
	if err != nil {
		return "", "", false
	}
	if formID := form.Get("client_id"); formID != "" && formID != id {
		return "", "", false
	}
	return id, secret, true
}

// optionalParam is None only when key is absent. A present but empty
// parameter is Some("").
func optionalParam(values url.Values, key string) domain.Optional[string] {
	if !values.Has(key) {
		return domain.None[string]()
	}
	return domain.Some(values.Get(key))
}

package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	authhttp "github.com/aussiebroadwan/grantstore/internal/auth/http"
	"github.com/aussiebroadwan/grantstore/internal/auth/service"
	"github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/grantstore/pkg/authsdk"
	"github.com/aussiebroadwan/grantstore/pkg/cryptox"
	"github.com/aussiebroadwan/grantstore/pkg/metricsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminUser   = "admin"
	adminPass   = "hunter2"
	callbackURI = "https://client.example/cb"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "grantstore-http")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	t      *testing.T
	clock  *clock
	router *authhttp.Router
}

func newHarness(t *testing.T, opts ...func(*authhttp.Router)) *harness {
	t.Helper()

	c := &clock{t: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)}
	st, err := sqlite.NewStore(":memory:", sqlite.WithClock(c.Now))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := metricsx.New("grantstore_test")

	r := authhttp.NewRouter("test", st, metrics, logger)
	r.GrantService = &service.GrantService{Store: st, Metrics: metrics, Now: c.Now}
	r.AuthorizeService = &service.AuthorizeService{Store: st}
	r.ClientService = &service.ClientService{Store: st}
	r.ApprovalService = &service.ApprovalService{Store: st}
	r.AdminUser = adminUser
	r.AdminPass = adminPass
	r.Now = c.Now
	for _, opt := range opts {
		opt(r)
	}
	r.ApplyRoutes()

	return &harness{t: t, clock: c, router: r}
}

func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) admin(method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(h.t, err)
		rdr = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, path, rdr)
	req.SetBasicAuth(adminUser, adminPass)
	req.Header.Set("Content-Type", "application/json")
	return h.do(req)
}

func (h *harness) registerClient(clientType string) authsdk.ClientInfo {
	h.t.Helper()

	rec := h.admin(http.MethodPost, "/v1/clients", authsdk.ClientRequest{
		Name:        "Example",
		Description: "an example client",
		RedirectURI: callbackURI,
		Type:        clientType,
	})
	require.Equal(h.t, http.StatusCreated, rec.Code, rec.Body.String())

	var info authsdk.ClientInfo
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &info))
	return info
}

func (h *harness) authorize(query url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/oauth2/authorize?"+query.Encode(), nil)
	req.Header.Set(authhttp.DefaultOwnerHeader, "alice")
	req.Header.Set(authhttp.DefaultOwnerNameHeader, "Alice")
	return h.do(req)
}

func (h *harness) decide(form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/oauth2/authorize", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(authhttp.DefaultOwnerHeader, "alice")
	req.Header.Set(authhttp.DefaultOwnerNameHeader, "Alice")
	return h.do(req)
}

func (h *harness) token(form url.Values, clientID, secret string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/oauth2/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if secret != "" {
		req.SetBasicAuth(url.QueryEscape(clientID), url.QueryEscape(secret))
	}
	return h.do(req)
}

func (h *harness) introspect(form url.Values, clientID, secret string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/oauth2/introspect", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if clientID != "" {
		req.SetBasicAuth(url.QueryEscape(clientID), url.QueryEscape(secret))
	}
	return h.do(req)
}

func (h *harness) bearer(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return h.do(req)
}

// consentAndCode walks the consent screen and returns the issued code.
func (h *harness) consentAndCode(client authsdk.ClientInfo, query url.Values) string {
	h.t.Helper()

	rec := h.authorize(query)
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())

	var challenge authsdk.ConsentChallenge
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &challenge))
	assert.Equal(h.t, client.ID, challenge.ClientID)
	assert.Equal(h.t, "Example", challenge.ClientName)
	require.NotEmpty(h.t, challenge.Nonce)

	rec = h.decide(url.Values{
		"client_id":       {challenge.ClientID},
		"scope":           {challenge.Scope},
		"authorize_nonce": {challenge.Nonce},
		"decision":        {"approve"},
	})
	require.Equal(h.t, http.StatusFound, rec.Code, rec.Body.String())

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(h.t, err)
	assert.Equal(h.t, "client.example", loc.Host)
	assert.Equal(h.t, query.Get("state"), loc.Query().Get("state"))

	code := loc.Query().Get("code")
	require.NotEmpty(h.t, code)
	return code
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) authsdk.ErrorResponse {
	t.Helper()
	var body authsdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestAuthorizationCodeFlow(t *testing.T) {
	h := newHarness(t)
	client := h.registerClient("web_application")
	require.True(t, client.Confidential)
	require.NotEmpty(t, client.ClientSecret)

	query := url.Values{
		"response_type": {"code"},
		"client_id":     {client.ID},
		"redirect_uri":  {callbackURI},
		"scope":         {"read write"},
		"state":         {"xyz"},
	}
	code := h.consentAndCode(client, query)

	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {callbackURI},
	}
	rec := h.token(form, client.ID, client.ClientSecret)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var tok authsdk.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.Equal(t, "read write", tok.Scope)
	assert.Positive(t, tok.ExpiresIn)

	t.Run("code is single use", func(t *testing.T) {
		rec := h.token(form, client.ID, client.ClientSecret)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, authsdk.ErrorCodeInvalidGrant, decodeError(t, rec).Error)
	})

	t.Run("approved scope skips consent", func(t *testing.T) {
		rec := h.authorize(query)
		require.Equal(t, http.StatusFound, rec.Code, rec.Body.String())
		loc, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.NotEmpty(t, loc.Query().Get("code"))
		assert.Equal(t, "xyz", loc.Query().Get("state"))
	})

	t.Run("token lists approvals", func(t *testing.T) {
		rec := h.bearer(http.MethodGet, "/v1/approvals", tok.AccessToken)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var list authsdk.ListApprovalsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list.Approvals, 1)
		assert.Equal(t, client.ID, list.Approvals[0].ClientID)
		assert.Equal(t, "read write", list.Approvals[0].Scope)
		assert.Equal(t, callbackURI, list.Approvals[0].RedirectURI)
	})

	t.Run("revoke approval", func(t *testing.T) {
		rec := h.bearer(http.MethodDelete, "/v1/approvals/"+client.ID, tok.AccessToken)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = h.bearer(http.MethodDelete, "/v1/approvals/"+client.ID, tok.AccessToken)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = h.authorize(query)
		assert.Equal(t, http.StatusOK, rec.Code, "consent should be asked again")
	})

	t.Run("token is live through its last second", func(t *testing.T) {
		h.clock.Advance(time.Duration(tok.ExpiresIn) * time.Second)
		rec := h.bearer(http.MethodGet, "/v1/approvals", tok.AccessToken)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = h.introspect(url.Values{"token": {tok.AccessToken}}, client.ID, client.ClientSecret)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var res authsdk.IntrospectionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Active)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		h.clock.Advance(time.Second)
		rec := h.bearer(http.MethodGet, "/v1/approvals", tok.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "token expired")

		rec = h.introspect(url.Values{"token": {tok.AccessToken}}, client.ID, client.ClientSecret)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"active":false}`, rec.Body.String())
	})
}

// issueToken runs the full code flow for a fresh confidential client.
func (h *harness) issueToken(scope string) (authsdk.ClientInfo, authsdk.TokenResponse) {
	h.t.Helper()

	client := h.registerClient("web_application")
	code := h.consentAndCode(client, url.Values{
		"response_type": {"code"},
		"client_id":     {client.ID},
		"scope":         {scope},
	})
	rec := h.token(url.Values{
		"grant_type": {"authorization_code"},
		"code":       {code},
	}, client.ID, client.ClientSecret)
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())

	var tok authsdk.TokenResponse
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &tok))
	return client, tok
}

func TestIntrospect(t *testing.T) {
	h := newHarness(t)
	client, tok := h.issueToken("read write")

	t.Run("active token", func(t *testing.T) {
		rec := h.introspect(url.Values{"token": {tok.AccessToken}, "token_type_hint": {"access_token"}}, client.ID, client.ClientSecret)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		var res authsdk.IntrospectionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Active)
		assert.Equal(t, "read write", res.Scope)
		assert.Equal(t, client.ID, res.ClientID)
		assert.Equal(t, "alice", res.Sub)
		assert.Equal(t, "Alice", res.Username)
		assert.Equal(t, "bearer", res.TokenType)
		assert.Equal(t, h.clock.Now().Unix(), res.Iat)
		assert.Equal(t, res.Iat+tok.ExpiresIn, res.Exp)
	})

	t.Run("credentials in the form body", func(t *testing.T) {
		rec := h.introspect(url.Values{
			"token":         {tok.AccessToken},
			"client_id":     {client.ID},
			"client_secret": {client.ClientSecret},
		}, "", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"active":true`)
	})

	t.Run("another confidential client may introspect", func(t *testing.T) {
		other := h.registerClient("web_application")
		rec := h.introspect(url.Values{"token": {tok.AccessToken}}, other.ID, other.ClientSecret)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"active":true`)
	})

	t.Run("unknown token is inactive", func(t *testing.T) {
		rec := h.introspect(url.Values{"token": {"nope"}}, client.ID, client.ClientSecret)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"active":false}`, rec.Body.String())
	})

	t.Run("refresh_token hint is inactive", func(t *testing.T) {
		rec := h.introspect(url.Values{"token": {tok.AccessToken}, "token_type_hint": {"refresh_token"}}, client.ID, client.ClientSecret)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"active":false}`, rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		rec := h.introspect(url.Values{}, client.ID, client.ClientSecret)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, authsdk.ErrorCodeInvalidRequest, decodeError(t, rec).Error)
	})

	t.Run("wrong secret", func(t *testing.T) {
		rec := h.introspect(url.Values{"token": {tok.AccessToken}}, client.ID, "wrong")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, authsdk.ErrorCodeInvalidClient, decodeError(t, rec).Error)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("no credentials", func(t *testing.T) {
		rec := h.introspect(url.Values{"token": {tok.AccessToken}}, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("public client may not introspect", func(t *testing.T) {
		public := h.registerClient("native_application")
		rec := h.introspect(url.Values{"token": {tok.AccessToken}, "client_id": {public.ID}}, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, authsdk.ErrorCodeInvalidClient, decodeError(t, rec).Error)
	})
}

func TestApprovalsScopeGate(t *testing.T) {
	h := newHarness(t, func(r *authhttp.Router) {
		r.ApprovalsScopes = []string{"approvals"}
	})

	t.Run("token without the scope is forbidden", func(t *testing.T) {
		_, tok := h.issueToken("read write")
		rec := h.bearer(http.MethodGet, "/v1/approvals", tok.AccessToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, `Bearer error="insufficient_scope", scope="approvals"`, rec.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "insufficient_scope", decodeError(t, rec).Error)

		rec = h.bearer(http.MethodDelete, "/v1/approvals/whatever", tok.AccessToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("token with the scope is admitted", func(t *testing.T) {
		_, tok := h.issueToken("read approvals")
		rec := h.bearer(http.MethodGet, "/v1/approvals", tok.AccessToken)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("missing bearer is still a 401", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/v1/approvals", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthorizeErrors(t *testing.T) {
	h := newHarness(t)
	client := h.registerClient("native_application")

	t.Run("missing owner header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/oauth2/authorize?client_id="+client.ID, nil)
		rec := h.do(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown client is not redirected", func(t *testing.T) {
		rec := h.authorize(url.Values{
			"response_type": {"code"},
			"client_id":     {"nope"},
			"redirect_uri":  {callbackURI},
			"scope":         {"read"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Header().Get("Location"))
		assert.Equal(t, authsdk.ErrorCodeInvalidClient, decodeError(t, rec).Error)
	})

	t.Run("mismatched redirect_uri is not redirected", func(t *testing.T) {
		rec := h.authorize(url.Values{
			"response_type": {"code"},
			"client_id":     {client.ID},
			"redirect_uri":  {"https://evil.example/cb"},
			"scope":         {"read"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Header().Get("Location"))
		assert.Equal(t, authsdk.ErrorCodeInvalidRequest, decodeError(t, rec).Error)
	})

	t.Run("empty redirect_uri does not match the registration", func(t *testing.T) {
		rec := h.authorize(url.Values{
			"response_type": {"code"},
			"client_id":     {client.ID},
			"redirect_uri":  {""},
			"scope":         {"read"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Header().Get("Location"))
		assert.Equal(t, authsdk.ErrorCodeInvalidRequest, decodeError(t, rec).Error)
	})

	t.Run("unsupported response_type redirects", func(t *testing.T) {
		rec := h.authorize(url.Values{
			"response_type": {"token"},
			"client_id":     {client.ID},
			"redirect_uri":  {callbackURI},
			"scope":         {"read"},
			"state":         {"s1"},
		})
		require.Equal(t, http.StatusFound, rec.Code)
		loc, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "unsupported_response_type", loc.Query().Get("error"))
		assert.Equal(t, "s1", loc.Query().Get("state"))
	})

	t.Run("reject redirects with access_denied", func(t *testing.T) {
		rec := h.authorize(url.Values{
			"response_type": {"code"},
			"client_id":     {client.ID},
			"scope":         {"read"},
			"state":         {"s2"},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var challenge authsdk.ConsentChallenge
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &challenge))

		form := url.Values{
			"client_id":       {client.ID},
			"scope":           {"read"},
			"authorize_nonce": {challenge.Nonce},
			"decision":        {"reject"},
		}
		rec = h.decide(form)
		require.Equal(t, http.StatusFound, rec.Code)
		loc, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "access_denied", loc.Query().Get("error"))
		assert.Equal(t, "s2", loc.Query().Get("state"))

		// The nonce was consumed by the rejection.
		form.Set("decision", "approve")
		rec = h.decide(form)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad decision", func(t *testing.T) {
		rec := h.decide(url.Values{"decision": {"maybe"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTokenEndpointErrors(t *testing.T) {
	h := newHarness(t)
	client := h.registerClient("native_application")

	t.Run("missing grant_type", func(t *testing.T) {
		rec := h.token(url.Values{"code": {"x"}}, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, authsdk.ErrorCodeInvalidRequest, decodeError(t, rec).Error)
	})

	t.Run("unsupported grant_type", func(t *testing.T) {
		rec := h.token(url.Values{"grant_type": {"password"}}, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, authsdk.ErrorCodeUnsupportedGrantType, decodeError(t, rec).Error)
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/oauth2/token", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := h.do(req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("basic auth and form secret together", func(t *testing.T) {
		form := url.Values{
			"grant_type":    {"authorization_code"},
			"code":          {"x"},
			"client_secret": {"also"},
		}
		rec := h.token(form, "id", "secret")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, authsdk.ErrorCodeInvalidRequest, decodeError(t, rec).Error)
	})

	t.Run("empty redirect_uri is not an absent one", func(t *testing.T) {
		code := h.consentAndCode(client, url.Values{
			"response_type": {"code"},
			"client_id":     {client.ID},
			"scope":         {"read"},
		})

		form := url.Values{
			"grant_type":   {"authorization_code"},
			"code":         {code},
			"client_id":    {client.ID},
			"redirect_uri": {""},
		}
		rec := h.token(form, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, authsdk.ErrorCodeInvalidGrant, decodeError(t, rec).Error)
	})
}

func TestClientsAPI(t *testing.T) {
	h := newHarness(t)

	t.Run("requires admin credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
		rec := h.do(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
	})

	client := h.registerClient("user_agent_based_application")
	assert.False(t, client.Confidential)
	assert.Empty(t, client.ClientSecret)

	rec := h.admin(http.MethodGet, "/v1/clients/"+client.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.admin(http.MethodPut, "/v1/clients/"+client.ID, authsdk.ClientRequest{
		Name:        "Renamed",
		RedirectURI: callbackURI,
		Type:        "web_application",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated authsdk.ClientInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.Confidential)
	assert.NotEmpty(t, updated.ClientSecret)

	rec = h.admin(http.MethodGet, "/v1/clients", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list authsdk.ListClientsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Clients, 1)
	assert.Empty(t, list.Clients[0].ClientSecret)

	rec = h.admin(http.MethodPost, "/v1/clients", authsdk.ClientRequest{
		Name:        "Bad",
		RedirectURI: "not-absolute",
		Type:        "web_application",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.admin(http.MethodDelete, "/v1/clients/"+client.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.admin(http.MethodDelete, "/v1/clients/"+client.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.admin(http.MethodGet, "/v1/clients/"+client.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSystemEndpoints(t *testing.T) {
	h := newHarness(t)

	rec := h.do(httptest.NewRequest(http.MethodGet, "/livez", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var live authsdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &live))
	assert.Equal(t, "ok", live.Status)
	assert.Equal(t, "test", live.Version)
	assert.NotContains(t, live.Uptime, ".", "uptime is whole seconds")

	rec = h.do(httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var ready authsdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ready))
	require.NotNil(t, ready.Checks)
	assert.Equal(t, "ok", ready.Checks.Database)

	// Only API routes are instrumented.
	rec = h.admin(http.MethodGet, "/v1/clients", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "grantstore_test_http_requests_total")

	rec = h.do(httptest.NewRequest(http.MethodPost, "/livez", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

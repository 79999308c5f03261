package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/grantstore/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"a", "b", "handler"}, order)
}

func TestBasicAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := httpx.BasicAuth("VOOT Provider", "admin", "pw")(ok)

	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, `Basic realm="VOOT Provider"`, rec.Header().Get("WWW-Authenticate"))
		require.JSONEq(t, `{"error":"unauthorized","error_description":"authentication failed or missing"}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth("admin", "nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth("admin", "pw")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("disabled without user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.BasicAuth("realm", "", "")(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAuthnMiddleware(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	resolver := httpx.TokenResolverFunc(func(_ context.Context, token string) (httpx.Principal, error) {
		switch token {
		case "live":
			return httpx.Principal{Subject: "user1", ExpiresAt: now.Add(time.Minute)}, nil
		case "stale":
			return httpx.Principal{}, httpx.ErrExpiredToken
		case "broken":
			return httpx.Principal{}, errors.New("db down")
		}
		return httpx.Principal{}, httpx.ErrUnknownToken
	})

	var got httpx.Principal
	h := httpx.AuthnMiddleware(resolver)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = httpx.PrincipalFromContext(r.Context())
		}),
	)

	do := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/approvals", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := do("Bearer live")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user1", got.Subject)
	require.Equal(t, now.Add(time.Minute), got.ExpiresAt)

	rec = do("Bearer stale")
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "token expired")

	for _, authz := range []string{"", "Basic abc", "Bearer stale", "Bearer unknown"} {
		rec := do(authz)
		require.Equal(t, http.StatusUnauthorized, rec.Code, authz)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
	}

	require.Equal(t, http.StatusInternalServerError, do("Bearer broken").Code)
}

func TestRequireAnyScope(t *testing.T) {
	resolver := httpx.TokenResolverFunc(func(_ context.Context, token string) (httpx.Principal, error) {
		return httpx.Principal{Subject: "user1", Scope: token}, nil
	})
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	do := func(h http.Handler, scope string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/approvals", nil)
		req.Header.Set("Authorization", "Bearer "+scope)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	gated := httpx.Chain(ok, httpx.AuthnMiddleware(resolver), httpx.RequireAnyScope("approvals", "admin"))

	require.Equal(t, http.StatusNoContent, do(gated, "read approvals").Code)
	require.Equal(t, http.StatusNoContent, do(gated, "admin").Code)

	rec := do(gated, "read write")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, `Bearer error="insufficient_scope", scope="approvals admin"`, rec.Header().Get("WWW-Authenticate"))
	require.Contains(t, rec.Body.String(), "insufficient_scope")

	open := httpx.Chain(ok, httpx.AuthnMiddleware(resolver), httpx.RequireAnyScope())
	require.Equal(t, http.StatusNoContent, do(open, "read").Code)
}

package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

var (
	// ErrUnknownToken is returned by a TokenResolver for tokens it has never
	// issued.
	ErrUnknownToken = errors.New("unknown token")

	// ErrExpiredToken is returned by a TokenResolver for tokens past their
	// lifetime. The resolver owns the expiry rule.
	ErrExpiredToken = errors.New("token expired")
)

// TokenResolver looks up an opaque bearer token.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (Principal, error)
}

// TokenResolverFunc adapts a function to TokenResolver.
type TokenResolverFunc func(ctx context.Context, token string) (Principal, error)

func (f TokenResolverFunc) ResolveToken(ctx context.Context, token string) (Principal, error) {
	return f(ctx, token)
}

// AuthnMiddleware authenticates opaque bearer tokens through resolver. The
// principal is available downstream through PrincipalFromContext.
func AuthnMiddleware(resolver TokenResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

			p, err := resolver.ResolveToken(ctx, raw)
			switch {
			case errors.Is(err, ErrUnknownToken):
				writeBearerError(w, "unknown token")
				return
			case errors.Is(err, ErrExpiredToken):
				writeBearerError(w, "token expired")
				return
			case err != nil:
				log.Error("bearer token lookup failed", "error", err)
				WriteError(w, http.StatusInternalServerError, "server_error", "token lookup failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithPrincipal(ctx, p)))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}

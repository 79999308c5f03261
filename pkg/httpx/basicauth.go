package httpx

import (
	"crypto/subtle"
	"net/http"
	"strconv"
)

// BasicAuth guards a handler with a single HTTP basic credential. An empty
// user disables the check.
func BasicAuth(realm, user, pass string) Middleware {
	return func(next http.Handler) http.Handler {
		if user == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, p, ok := r.BasicAuth()
			if !ok || !constantTimeEqual(u, user) || !constantTimeEqual(p, pass) {
				w.Header().Set("WWW-Authenticate", "Basic realm="+strconv.Quote(realm))
				WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication failed or missing")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

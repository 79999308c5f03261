// Package http serves the VOOT group membership API.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/grantstore/internal/voot/store"
	"github.com/aussiebroadwan/grantstore/pkg/httpx"
	"github.com/aussiebroadwan/grantstore/pkg/metricsx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"
)

// DefaultServiceName is the basic auth realm when none is configured.
const DefaultServiceName = "VOOT Provider"

type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metricsx.Metrics
	storage      store.Storage

	// BasicUser and BasicPass guard the API when BasicUser is set.
	BasicUser   string
	BasicPass   string
	ServiceName string
}

func NewRouter(
	buildVersion string,
	storage store.Storage,
	metrics *metricsx.Metrics,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		middlewares:  []httpx.Middleware{slogx.HTTPMiddleware(logger)},
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		metrics:      metrics,
		storage:      storage,
		ServiceName:  DefaultServiceName,
	}
}

// ApplyRoutes registers the VOOT endpoints. Everything except the health
// and metrics endpoints sits behind basic auth, including the JSON 404 and
// 405 fallbacks.
func (r *Router) ApplyRoutes() {
	h := &Handlers{Storage: r.storage}

	secured := func(route string, next http.Handler) http.Handler {
		return r.metrics.Instrument(route, httpx.Chain(next,
			httpx.RateLimitByIP(httpx.PublicLimit),
			httpx.BasicAuth(r.ServiceName, r.BasicUser, r.BasicPass),
		))
	}

	r.Mux.Handle("GET /groups/{uid}", secured("GET /groups/{uid}", http.HandlerFunc(h.HandleGroups)))
	r.Mux.Handle("/groups/{uid}", secured("/groups/{uid}", httpx.MethodNotAllowed(http.MethodGet)))

	r.Mux.Handle("GET /people/{uid}/{gid}", secured("GET /people/{uid}/{gid}", http.HandlerFunc(h.HandlePeople)))
	r.Mux.Handle("/people/{uid}/{gid}", secured("/people/{uid}/{gid}", httpx.MethodNotAllowed(http.MethodGet)))

	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.storage))
	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}

	r.Mux.Handle("/", secured("/", httpx.NotFound()))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

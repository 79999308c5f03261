package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/grantstore/internal/auth/service"
	"github.com/aussiebroadwan/grantstore/internal/auth/store"
	"github.com/aussiebroadwan/grantstore/pkg/httpx"
	"github.com/aussiebroadwan/grantstore/pkg/metricsx"
	"github.com/aussiebroadwan/grantstore/pkg/slogx"

	_ "github.com/aussiebroadwan/grantstore/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	DefaultOwnerHeader     = "X-Remote-User"
	DefaultOwnerNameHeader = "X-Remote-User-Display-Name"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metricsx.Metrics

	store            store.Store
	GrantService     *service.GrantService
	AuthorizeService *service.AuthorizeService
	ClientService    *service.ClientService
	ApprovalService  *service.ApprovalService

	// AdminUser and AdminPass guard the client registry. An empty AdminUser
	// leaves it open, which only makes sense behind another gate.
	AdminUser string
	AdminPass string

	// OwnerHeader and OwnerNameHeader carry the resource owner identity
	// asserted by the authenticating reverse proxy.
	OwnerHeader     string
	OwnerNameHeader string

	// ApprovalsScopes, when set, are the scopes of which a bearer token
	// needs at least one to use the approvals API.
	ApprovalsScopes []string

	// Now is the clock bearer tokens are checked against.
	Now func() time.Time
}

func NewRouter(
	buildVersion string,
	st store.Store,
	metrics *metricsx.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:             http.NewServeMux(),
		buildVersion:    buildVersion,
		startTime:       time.Now(),
		store:           st,
		metrics:         metrics,
		logger:          logger,
		OwnerHeader:     DefaultOwnerHeader,
		OwnerNameHeader: DefaultOwnerNameHeader,
		Now:             time.Now,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOAuth2()
	r.registerApprovals()
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Grantstore Authorization Server API
//	@version		0.1.0
//	@description	OAuth2 authorization code grant with opaque access tokens. Authorization codes are single use and valid for 600 seconds.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/grantstore
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque access token. Format: "Bearer {token}".
//
//	@securityDefinitions.basic	AdminAuth
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h under pattern with per-route metrics.
func (r *Router) handle(pattern string, h http.Handler) {
	r.Mux.Handle(pattern, r.metrics.Instrument(pattern, h))
}

func (r *Router) registerOAuth2() {
	authorizeHandler := &AuthorizeHandler{
		AuthorizeService: r.AuthorizeService,
		OwnerHeader:      r.OwnerHeader,
		OwnerNameHeader:  r.OwnerNameHeader,
	}

	// GET /authorize - moderate rate limit (may store a nonce)
	r.handle("GET /v1/oauth2/authorize",
		httpx.Chain(http.HandlerFunc(authorizeHandler.HandleGet),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /authorize - consent decisions write approvals and codes
	r.handle("POST /v1/oauth2/authorize",
		httpx.Chain(http.HandlerFunc(authorizeHandler.HandlePost),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /token - strict rate limit by IP + client_id to slow secret guessing
	tokenHandler := &TokenHandler{GrantService: r.GrantService}
	r.handle("POST /v1/oauth2/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "client_id"),
		),
	)

	// POST /introspect (RFC 7662) - resource servers authenticate as
	// confidential clients, moderate limit
	introspectHandler := &IntrospectHandler{GrantService: r.GrantService}
	r.handle("POST /v1/oauth2/introspect",
		httpx.Chain(introspectHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerApprovals() {
	h := &ApprovalsHandler{ApprovalService: r.ApprovalService}
	authn := httpx.AuthnMiddleware(r.tokenResolver())
	authz := httpx.RequireAnyScope(r.ApprovalsScopes...)

	r.handle("GET /v1/approvals",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			authn,
			authz,
			httpx.RateLimitByUser(httpx.PublicLimit),
		),
	)
	r.handle("DELETE /v1/approvals/{client_id}",
		httpx.Chain(http.HandlerFunc(h.HandleRevoke),
			authn,
			authz,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}
	admin := httpx.BasicAuth("grantstore admin", r.AdminUser, r.AdminPass)

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.RateLimitByIP(httpx.StrictLimit),
			admin,
		)
	}

	r.handle("GET /v1/clients", secured(h.HandleList))
	r.handle("POST /v1/clients", secured(h.HandleCreate))
	r.handle("GET /v1/clients/{id}", secured(h.HandleGet))
	r.handle("PUT /v1/clients/{id}", secured(h.HandleUpdate))
	r.handle("DELETE /v1/clients/{id}", secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}

// tokenResolver looks bearer tokens up in the access token store and judges
// expiry with domain.AccessToken.Expired against r.Now.
func (r *Router) tokenResolver() httpx.TokenResolver {
	return httpx.TokenResolverFunc(func(ctx context.Context, token string) (httpx.Principal, error) {
		t, err := r.store.AccessTokens().GetAccessToken(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httpx.Principal{}, httpx.ErrUnknownToken
			}
			return httpx.Principal{}, err
		}
		slogx.Annotate(ctx, "client_id", t.ClientID, "owner", t.ResourceOwnerID)
		if t.Expired(r.Now()) {
			return httpx.Principal{}, httpx.ErrExpiredToken
		}
		return httpx.Principal{
			Subject:     t.ResourceOwnerID,
			DisplayName: t.ResourceOwnerDisplayName,
			ClientID:    t.ClientID,
			Scope:       t.Scope,
			ExpiresAt:   t.ExpiresAt(),
		}, nil
	})
}

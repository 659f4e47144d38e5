package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/karrieremum/adminsvc/internal/admin/metrics"
	"github.com/karrieremum/adminsvc/internal/admin/service"
	"github.com/karrieremum/adminsvc/internal/admin/store"
	"github.com/karrieremum/adminsvc/pkg/httpx"
	"github.com/karrieremum/adminsvc/pkg/jwtx"
	"github.com/karrieremum/adminsvc/pkg/slogx"

	_ "github.com/karrieremum/adminsvc/api/admin" // Swagger docs
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	metrics  metrics.Collector
	gatherer prometheus.Gatherer

	UsersService  *service.UsersService
	InviteService *service.InviteService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	collector metrics.Collector,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      collector,
		gatherer:     gatherer,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metricsMiddleware(r.metrics),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Admin Service API
//	@version		0.1.0
//	@description	Administrative surface for user management: list registered users and send email invitations to new ones.
//	@description
//	@description				Access tokens are issued by the auth service and verified here (EdDSA).
//
//	@contact.name				KARRIERE.MUM Team
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAdmin() {
	listHandler := &UsersListHandler{UsersService: r.UsersService}
	inviteHandler := &InviteCreateHandler{InviteService: r.InviteService}

	// GET /admin/users - lenient rate limit by user (panel refetches on demand)
	securedList := httpx.Chain(listHandler,
		httpx.AuthnMiddleware(r.verifier),   // verify JWT (iss/exp)
		httpx.RequireAnyScope("admin:read"), // enforce admin scope
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	// POST /admin/users/invite - moderate rate limit by user (sends mail)
	securedInvite := httpx.Chain(inviteHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("admin:write"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/admin/users", securedList)
	r.Mux.Handle("POST /v1/admin/users/invite", securedInvite)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", metrics.Handler(r.gatherer))
}

// metricsMiddleware records response status and latency for every request.
func metricsMiddleware(collector metrics.Collector) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, req)

			collector.RecordHTTPStatus(sw.status)
			collector.RecordRequestLatency(time.Since(start))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

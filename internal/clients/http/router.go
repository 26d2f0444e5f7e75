package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clientbook/internal/clients/service"
	"github.com/aussiebroadwan/clientbook/internal/clients/store"
	"github.com/aussiebroadwan/clientbook/pkg/httpx"
	"github.com/aussiebroadwan/clientbook/pkg/slogx"

	_ "github.com/aussiebroadwan/clientbook/api/clients" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	metrics      *Metrics

	// Rate limits for the /clients resource. Defaults come from httpx.
	ReadLimit  httpx.RateLimitConfig
	WriteLimit httpx.RateLimitConfig

	ClientService *service.ClientService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		metrics:      NewMetrics(),
		ReadLimit:    httpx.ReadLimit,
		WriteLimit:   httpx.WriteLimit,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(func(req *http.Request, v any) {
			slogx.FromContext(req.Context()).Error("panic serving request", "panic", fmt.Sprint(v))
		}),
		r.metrics.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerSystem()

	// Docs get a per-IP read budget separate from /clients.
	r.Mux.Handle("GET /swagger/", httpx.Chain(httpSwagger.Handler(), httpx.RateLimitByIP(r.ReadLimit)))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clientbook API
//	@version		0.1.0
//	@description	Client records: paged listing, income filter and CRUD over a single client table.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/clientbook
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	// One limiter for the whole resource, reads and writes counted apart.
	limit := httpx.RateLimitByMethod(r.ReadLimit, r.WriteLimit, httpx.IPKeyExtractor)
	handle := func(pattern string, fn http.HandlerFunc) {
		r.Mux.Handle(pattern, httpx.Chain(fn, limit))
	}

	handle("GET /clients", h.HandleList)
	handle("GET /clients/{$}", h.HandleList)
	handle("GET /clients/incomeGreaterThan", h.HandleListByIncome)
	handle("GET /clients/{id}", h.HandleGet)
	handle("POST /clients", h.HandleCreate)
	handle("PUT /clients/{id}", h.HandleUpdate)
	handle("DELETE /clients/{id}", h.HandleDelete)
}

func (r *Router) registerSystem() {
	// Probes and scrapes are not rate limited.
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}

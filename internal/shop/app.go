package shop

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ClothingShop/internal/catalog"
	"ClothingShop/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// SessionLimiter throttles session creation per client; nil disables it.
	SessionLimiter *kit.IPRateLimiter
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if s.Log == nil {
		s.Log = deps.Log
	}

	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, s, deps)
	setupRoutes(r, s, deps)

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, s *Server, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.RoutePattern))

	s.metrics = newShopMetrics(deps.Registry, s.Sessions)

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func setupRoutes(r *chi.Mux, s *Server, deps HTTPDeps) {
	r.Get("/healthz", healthz)
	r.Get("/readyz", s.readyz)

	r.Get("/home", s.home)
	r.Get("/productDetail/{productId}", s.productDetail)

	data := &catalog.Server{
		Resolver:  s.Resolver,
		Log:       s.Log,
		OnResolve: s.metrics.observeResolve,
	}
	r.Mount("/products", data.Routes())

	create := http.HandlerFunc(s.createSession)
	var createHandler http.Handler = create
	if deps.SessionLimiter != nil {
		createHandler = deps.SessionLimiter.Middleware(create)
	}

	r.Route("/sessions", func(rr chi.Router) {
		rr.Method(http.MethodPost, "/", createHandler)
		rr.Route("/{sessionId}", func(sr chi.Router) {
			sr.Get("/", s.getSession)
			sr.Delete("/", s.deleteSession)
			sr.Post("/navigate", s.navigate)
			sr.Post("/select/{productId}", s.selectProduct)
			sr.Post("/back", s.back)
			sr.Post("/tabs/{index}", s.selectTab)
		})
	})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopzo-app/shopzo-backend/api/controllers"
	"github.com/shopzo-app/shopzo-backend/api/middleware"
	addresssvc "github.com/shopzo-app/shopzo-backend/internal/address"
	authsvc "github.com/shopzo-app/shopzo-backend/internal/auth"
	cartsvc "github.com/shopzo-app/shopzo-backend/internal/cart"
	chatsvc "github.com/shopzo-app/shopzo-backend/internal/chat"
	productsvc "github.com/shopzo-app/shopzo-backend/internal/products"
	"github.com/shopzo-app/shopzo-backend/pkg/auth/session"
	"github.com/shopzo-app/shopzo-backend/pkg/config"
	"github.com/shopzo-app/shopzo-backend/pkg/db"
	"github.com/shopzo-app/shopzo-backend/pkg/logger"
	"github.com/shopzo-app/shopzo-backend/pkg/metrics"
)

// Deps collects everything the router needs wired in.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          db.Pinger
	SessionChecker session.AccessSessionChecker
	Registry       *prometheus.Registry

	AuthService    authsvc.Service
	CartService    cartsvc.Service
	ProductService productsvc.Service
	AddressService addresssvc.Service
	ChatService    chatsvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	httpMetrics := metrics.NewHTTPMetrics(registry)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(deps.AuthService, logg))
		r.Post("/login", controllers.AuthLogin(deps.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.CartService, logg))
			r.Post("/items", controllers.CartAddItem(deps.CartService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.ProductService, logg))
			r.Post("/", controllers.ProductCreate(deps.ProductService, logg))
			r.Get("/{productId}", controllers.ProductDetail(deps.ProductService, logg))
		})

		r.Route("/addresses", func(r chi.Router) {
			r.Get("/", controllers.AddressList(deps.AddressService, logg))
			r.Post("/", controllers.AddressCreate(deps.AddressService, logg))
			r.Delete("/{addressId}", controllers.AddressDelete(deps.AddressService, logg))
		})

		r.Post("/ai/chat", controllers.ChatAsk(deps.ChatService, logg))
	})

	return r
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reachly-hq/reachly-portal/api/controllers"
	authcontrollers "github.com/reachly-hq/reachly-portal/api/controllers/auth"
	"github.com/reachly-hq/reachly-portal/api/middleware"
	"github.com/reachly-hq/reachly-portal/internal/admin"
	internalauth "github.com/reachly-hq/reachly-portal/internal/auth"
	"github.com/reachly-hq/reachly-portal/internal/buyer"
	"github.com/reachly-hq/reachly-portal/internal/vendor"
	"github.com/reachly-hq/reachly-portal/pkg/auth/session"
	"github.com/reachly-hq/reachly-portal/pkg/config"
	"github.com/reachly-hq/reachly-portal/pkg/enums"
	"github.com/reachly-hq/reachly-portal/pkg/logger"
	"github.com/reachly-hq/reachly-portal/pkg/metrics"
	"github.com/reachly-hq/reachly-portal/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Redis       redis.Pinger
	Sessions    session.Checker
	HTTPMetrics *metrics.HTTPMetrics
	Registry    *prometheus.Registry

	Auth   internalauth.Service
	Admin  admin.Service
	Vendor vendor.Service
	Buyer  buyer.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.Redis, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", authcontrollers.Login(deps.Auth, logg))
		r.Post("/forgot-password", authcontrollers.ForgotPassword(deps.Auth, logg))
		r.Post("/reset-password/{token}", authcontrollers.ResetPassword(deps.Auth, logg))
		r.With(middleware.Auth(cfg.Session, deps.Sessions, logg)).
			Post("/logout", authcontrollers.Logout(deps.Auth, logg))
	})

	r.Get("/api/v1/catalog", controllers.Catalog())

	r.Route("/api/v1/vendors", func(r chi.Router) {
		r.Post("/", controllers.VendorRegister(deps.Vendor, logg))
		r.Get("/{email}", controllers.VendorPrefill(deps.Vendor, logg))
		r.Put("/{email}", controllers.VendorUpdate(deps.Vendor, logg))
	})

	r.Route("/api/v1/vendor", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Session, deps.Sessions, logg))
		r.Use(middleware.RequireRole(enums.AccountRoleVendor, logg))
		r.Get("/dashboard", controllers.VendorDashboard(deps.Vendor, logg))
		r.Post("/matches/{buyerEmail}/decision", controllers.VendorDecision(deps.Vendor, logg))
		r.Get("/export/matches.csv", controllers.VendorExportMatches(deps.Vendor, logg))
	})

	r.Route("/api/v1/buyer", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Session, deps.Sessions, logg))
		r.Use(middleware.RequireRole(enums.AccountRoleBuyer, logg))
		r.Get("/dashboard", controllers.BuyerDashboard(deps.Buyer, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Session, deps.Sessions, logg))
		r.Use(middleware.RequireRole(enums.AccountRoleAdmin, logg))
		r.Get("/overview", controllers.AdminOverview(deps.Admin, logg))
		r.Route("/vendors/{email}", func(r chi.Router) {
			r.Get("/", controllers.AdminVendorDetail(deps.Admin, logg))
			r.Post("/leads", controllers.AdminAddLeads(deps.Admin, logg))
		})
		r.Get("/buyers/{email}", controllers.AdminBuyerDetail(deps.Admin, logg))
		r.Post("/accounts/{email}/toggle-activation", controllers.AdminToggleActivation(deps.Admin, logg))
		r.Route("/export", func(r chi.Router) {
			r.Get("/vendors.csv", controllers.AdminExportVendors(deps.Admin, logg))
			r.Get("/buyers.csv", controllers.AdminExportBuyers(deps.Admin, logg))
		})
	})

	return r
}

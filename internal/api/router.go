package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ezycar/booking-api/internal/api/handlers"
	"github.com/ezycar/booking-api/internal/auth"
	"github.com/ezycar/booking-api/internal/config"
	"github.com/ezycar/booking-api/internal/metrics"
	"github.com/ezycar/booking-api/internal/middleware"
	"github.com/ezycar/booking-api/internal/models"
	"github.com/ezycar/booking-api/internal/services"
)

type RouterDeps struct {
	Cfg         config.Config
	TokenMgr    *auth.TokenManager
	UserSvc     *services.UserService
	ProviderSvc *services.ProviderService
	BookingSvc  *services.BookingService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	am := middleware.NewAuthMiddleware(d.TokenMgr)
	ah := handlers.NewAuthHandler(d.UserSvc, d.TokenMgr)
	ph := handlers.NewProvidersHandler(d.ProviderSvc)
	bh := handlers.NewBookingsHandler(d.BookingSvc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)

		r.Group(func(r chi.Router) {
			r.Use(am.Protect)

			r.Get("/auth/me", ah.Me)
			r.Get("/auth/logout", ah.Logout)

			r.Route("/providers", func(r chi.Router) {
				r.Get("/", ph.List)
				r.Get("/{id}", ph.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.Authorize(models.RoleAdmin))
					r.Post("/", ph.Create)
					r.Put("/{id}", ph.Update)
					r.Delete("/{id}", ph.Delete)
				})
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", bh.List)
				r.With(middleware.Authorize(models.RoleAdmin, models.RoleUser)).Post("/", bh.Create)
				r.With(middleware.Authorize(models.RoleAdmin, models.RoleUser)).Get("/myhistory", bh.MyHistory)
				r.Get("/{id}", bh.Get)
				r.Put("/{id}", bh.Update)
				r.Delete("/{id}", bh.Delete)
			})
		})
	})

	return r
}

// Package router assembles the HTTP surface: public catalog reads with
// optional identity, guarded account routes, admin-only management, and
// rate-limited capture forms.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ceylontrip/ceylontrip/internal/config"
	"github.com/ceylontrip/ceylontrip/internal/handler"
	"github.com/ceylontrip/ceylontrip/internal/middleware"
	"github.com/ceylontrip/ceylontrip/internal/middleware/metrics"
	"github.com/ceylontrip/ceylontrip/internal/middleware/ratelimiter"
)

func New(h *handler.Handler, auth *middleware.Auth, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chi_middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders(cfg.Public.SecureHeaders))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Public.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Brute-force protection on the credential and capture endpoints.
	// Keyed by client IP; authenticated admins bypass the bucket.
	loginLimiter := middleware.RateLimit(ratelimiter.PerMinute(10), middleware.GetIP)
	captureLimiter := middleware.RateLimit(ratelimiter.PerMinute(5), middleware.GetIP)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter).Post("/register", h.Register)
			r.With(loginLimiter).Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth())
				r.Get("/me", h.Me)
				r.Put("/me", h.UpdateMe)
			})
		})

		r.Route("/destinations", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.OptionalAuth())
				r.Get("/", h.Destinations)
				r.Get("/search/{query}", h.SearchDestinations)
				r.Get("/category/{category}", h.DestinationsByCategory)
				r.Get("/{id}", h.Destination)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin())
				r.Post("/", h.CreateDestination)
				r.Put("/{id}", h.UpdateDestination)
				r.Delete("/{id}", h.DeleteDestination)
			})
		})

		r.Route("/attractions", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.OptionalAuth())
				r.Get("/", h.Attractions)
				r.Get("/search/{query}", h.SearchAttractions)
				r.Get("/category/{category}", h.AttractionsByCategory)
				r.Get("/{id}", h.Attraction)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin())
				r.Post("/", h.CreateAttraction)
				r.Put("/{id}", h.UpdateAttraction)
				r.Delete("/{id}", h.DeleteAttraction)
			})
		})

		r.Route("/hotels", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.OptionalAuth())
				r.Get("/", h.Hotels)
				r.Get("/search/{query}", h.SearchHotels)
				r.Get("/location/{location}", h.HotelsByLocation)
				r.Get("/rating/{rating}", h.HotelsByRating)
				r.Get("/price/{min}/{max}", h.HotelsByPriceRange)
				r.Get("/{id}", h.Hotel)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin())
				r.Post("/", h.CreateHotel)
				r.Put("/{id}", h.UpdateHotel)
				r.Delete("/{id}", h.DeleteHotel)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.OptionalAuth())
				r.Get("/", h.Events)
				r.Get("/upcoming", h.UpcomingEvents)
				r.Get("/search/{query}", h.SearchEvents)
				r.Get("/category/{category}", h.EventsByCategory)
				r.Get("/{id}", h.Event)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin())
				r.Post("/", h.CreateEvent)
				r.Put("/{id}", h.UpdateEvent)
				r.Delete("/{id}", h.DeleteEvent)
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.With(captureLimiter).Post("/", h.SubmitContact)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin())
				r.Get("/", h.Contacts)
				r.Get("/{id}", h.Contact)
				r.Put("/{id}/status", h.UpdateContactStatus)
				r.Delete("/{id}", h.DeleteContact)
			})
		})

		r.Route("/newsletter", func(r chi.Router) {
			r.With(captureLimiter).Post("/subscribe", h.Subscribe)
			r.With(captureLimiter).Post("/unsubscribe", h.Unsubscribe)
			r.Get("/count", h.SubscriberCount)

			r.With(auth.RequireAdmin()).Get("/subscriptions", h.Subscriptions)
			r.With(auth.RequireAdmin()).Delete("/{id}", h.DeleteSubscription)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin())
			r.Get("/dashboard", h.Dashboard)
			r.Post("/dashboard/refresh", h.RefreshDashboard)
			r.Get("/users", h.Users)
			r.Put("/users/{id}", h.UpdateUser)
			r.Delete("/users/{id}", h.DeleteUser)
		})
	})

	return r
}

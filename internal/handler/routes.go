package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// NewRouter assembles the HTTP routes with their middleware stacks.
func NewRouter(h *Handler, logger *zerolog.Logger, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", h.Healthcheck)
	r.Get("/healthcheck", h.Healthcheck)

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/password-reset", h.RequestPasswordReset)
	r.Post("/password-reset/confirm", h.ConfirmPasswordReset)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Post("/convert", h.Convert)
		r.Get("/history", h.History)
		r.Post("/feedback", h.SubmitFeedback)

		r.Route("/admin/users/{id}", func(r chi.Router) {
			r.Delete("/", h.DeleteUser)
			r.Put("/admin", h.SetAdmin)
		})
	})

	return r
}

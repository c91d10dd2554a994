// Package router sets up all HTTP routes and middleware chains for the
// blog-api server. Reads are open; every mutating route passes the auth
// gate before its handler runs.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ViniciusMeireles/blog-api/internal/handlers"
	"github.com/ViniciusMeireles/blog-api/internal/middleware"
	"github.com/ViniciusMeireles/blog-api/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, auth *handlers.Auth, categories *handlers.Categories, posts *handlers.Posts, comments *handlers.Comments) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check, no auth.
	r.Get("/health", healthHandler)

	// Auth endpoints. The 2FA routes need a loaded session but not a
	// fully verified one, so they check it themselves.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", auth.Register)
		r.Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)
		r.Post("/2fa/setup", auth.TwoFASetup)
		r.Post("/2fa/verify", auth.TwoFAVerify)

		r.With(middleware.RequireAuth).Get("/me", auth.Me)
	})

	// Categories: writes gated.
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categories.List)
		r.Get("/{id}", categories.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/", categories.Create)
			r.Put("/{id}", categories.Update)
			r.Delete("/{id}", categories.Delete)
		})
	})

	// Posts: writes gated, plus explicit category assignment.
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", posts.List)
		r.Get("/{id}", posts.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/", posts.Create)
			r.Put("/{id}", posts.Update)
			r.Delete("/{id}", posts.Delete)
			r.Post("/{id}/categories/{categoryID}", posts.AttachCategory)
			r.Delete("/{id}/categories/{categoryID}", posts.DetachCategory)
		})
	})

	// Comments: writes gated.
	r.Route("/comments", func(r chi.Router) {
		r.Get("/", comments.List)
		r.Get("/{id}", comments.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/", comments.Create)
			r.Put("/{id}", comments.Update)
			r.Delete("/{id}", comments.Delete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

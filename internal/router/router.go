// Package router sets up all HTTP routes and middleware chains for the
// newswire API. Unmatched routes and disallowed methods both answer with
// the API's catch-all 404 body.
package router

import (
	"github.com/go-chi/chi/v5"

	"newswire/internal/handlers"
	"newswire/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up. writeLimiter guards the mutating routes.
func New(
	writeLimiter *middleware.RateLimiter,
	docs *handlers.Docs,
	topics *handlers.Topics,
	articles *handlers.Articles,
	comments *handlers.Comments,
	users *handlers.Users,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", docs.Endpoints)
		r.Get("/topics", topics.List)
		r.Get("/users", users.List)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articles.List)
			r.Get("/{article_id}", articles.Get)
			r.With(writeLimiter.Middleware).Patch("/{article_id}", articles.AdjustVotes)
			r.Get("/{article_id}/comments", comments.ListForArticle)
			r.With(writeLimiter.Middleware).Post("/{article_id}/comments", comments.Create)
		})

		r.With(writeLimiter.Middleware).Delete("/comments/{comment_id}", comments.Delete)
	})

	// Strict route table: anything else, wrong method included, is the
	// same 404.
	r.NotFound(handlers.RouteNotFound)
	r.MethodNotAllowed(handlers.RouteNotFound)

	return r
}

package stubserver

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the contract surface. Note there is no DELETE route on
// any entity; the real backend never grew one.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Post("/api/auth/login", handlers.auth.login())

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Get("/api/developers", handlers.developers.list())
		r.Get("/api/developers/{developerID}", handlers.developers.get())
		r.Post("/api/developers", handlers.developers.create())
		r.Put("/api/developers/{developerID}", handlers.developers.update())

		r.Get("/api/skill-areas", handlers.skillAreas.list())
		r.Get("/api/skill-areas/{skillAreaID}", handlers.skillAreas.get())
		r.Post("/api/skill-areas", handlers.skillAreas.create())

		r.Get("/api/projects", handlers.projects.list())
		r.Get("/api/projects/{projectID}", handlers.projects.get())
		r.Post("/api/projects", handlers.projects.create())
		r.Put("/api/projects/{projectID}", handlers.projects.update())

		r.Get("/api/project-categories", handlers.categories.list())
		r.Post("/api/project-categories", handlers.categories.create())
		r.Put("/api/project-categories/{categoryID}", handlers.categories.update())

		r.Post("/api/agent/query", handlers.agent.query())
		r.Post("/api/agent/analyze-project", handlers.agent.analyzeProject())
	})
}

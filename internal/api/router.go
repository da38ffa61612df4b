package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
//
// Paths carry no version prefix: they are the exact paths the deployed web
// clients call.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Liveness probe, fixed body, independent of store health.
	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	// Image gallery endpoints
	r.Route("/image-gallery", func(r chi.Router) {
		r.Get("/", s.handleListGalleryImages)
		r.Post("/", s.handleCreateGalleryImage)
		r.Delete("/{id}", s.handleDeleteGalleryImage)
	})

	// Listing endpoints
	r.Route("/agrodooth", func(r chi.Router) {
		r.Get("/", s.handleListListings)
		r.Post("/", s.handleCreateListing)
		r.Get("/{id}", s.handleGetListing)
		r.Delete("/{id}", s.handleDeleteListing)
	})

	// User endpoints
	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.handleListUsers)
		r.Post("/", s.handleCreateUser)
		r.Get("/{email}", s.handleGetUser)
		r.Get("/{email}/role", s.handleGetUserRole)
	})

	// Blog endpoints
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", s.handleListPosts)
		r.Post("/", s.handleCreatePost)
	})

	return r
}

// handleRoot returns a fixed plaintext liveness string.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Server is running")) //nolint:errcheck // Best-effort write to response
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}

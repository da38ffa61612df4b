package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/muktalchal/estate-api/internal/blog"
	"github.com/muktalchal/estate-api/internal/gallery"
	"github.com/muktalchal/estate-api/internal/infrastructure/config"
	"github.com/muktalchal/estate-api/internal/infrastructure/logging"
	"github.com/muktalchal/estate-api/internal/listing"
	"github.com/muktalchal/estate-api/internal/user"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Deps holds the dependencies required by the API server.
//
// Repositories are interfaces so tests can substitute in-memory doubles.
type Deps struct {
	Config   config.APIConfig
	Logger   *logging.Logger
	Users    user.Repository
	Listings listing.Repository
	Gallery  gallery.Repository
	Blogs    blog.Repository
	Version  string
}

// Server is the HTTP API server for the Estate API.
//
// It manages the HTTP listener, routes, and middleware. The server is created
// with New() and started with Start(). All methods are safe for concurrent use.
type Server struct {
	cfg      config.APIConfig
	logger   *logging.Logger
	users    user.Repository
	listings listing.Repository
	gallery  gallery.Repository
	blogs    blog.Repository
	version  string
	server   *http.Server
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Users == nil || deps.Listings == nil || deps.Gallery == nil || deps.Blogs == nil {
		return nil, fmt.Errorf("all repositories are required")
	}

	return &Server{
		cfg:      deps.Config,
		logger:   deps.Logger,
		users:    deps.Users,
		listings: deps.Listings,
		gallery:  deps.Gallery,
		blogs:    deps.Blogs,
		version:  deps.Version,
	}, nil
}

// Start begins listening for HTTP connections.
//
// It builds the router and launches the HTTP listener in a background
// goroutine. The server can be stopped with Close().
func (s *Server) Start(_ context.Context) error {
	router := s.buildRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           router,
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete,
// then forcefully closes remaining connections.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

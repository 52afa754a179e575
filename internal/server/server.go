// Package server wires the handlers into a chi router and manages the
// HTTP server lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/jmcdev/cryptomark-api/internal/config"
	"github.com/jmcdev/cryptomark-api/internal/handler"
)

// Handlers groups the HTTP handlers the server routes to.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Bookmark *handler.BookmarkHandler
	Market   *handler.MarketHandler
	Health   *handler.HealthHandler
}

// Server manages the HTTP server and routes.
type Server struct {
	router *chi.Mux
	server *http.Server
	logger *zerolog.Logger
}

// New creates the HTTP server with the full middleware chain and route set.
func New(cfg *config.Config, logger *zerolog.Logger, handlers Handlers) *Server {
	s := &Server{logger: logger}

	s.router = s.setupRoutes(cfg, handlers)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes(cfg *config.Config, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/signup", h.Auth.Signup)
	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)

	r.Get("/users", h.User.ListUsers)
	r.Put("/users/{id}", h.User.UpdateUser)
	r.Delete("/users/{id}", h.User.DeleteUser)

	r.Post("/bookmark", h.Bookmark.AddBookmark)
	r.Delete("/bookmark", h.Bookmark.RemoveBookmark)
	r.Get("/bookmarks/{email}", h.Bookmark.ListBookmarks)

	r.Get("/home", h.Market.Home)
	r.Get("/health", h.Health.Health)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

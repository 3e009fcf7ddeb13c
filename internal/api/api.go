// Package api exposes the leaderboard and statistics endpoints over
// HTTP. Handlers parse and validate request parameters, delegate the
// computation to core and translate typed errors into status codes.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jordanopensource/topcontrib/internal/contract"
)

// Server wires the router, the store and the snapshot cache together.
type Server struct {
	router *chi.Mux
	cfg    *contract.Config
	store  contract.Store
	users  contract.UserSnapshot
	now    func() time.Time
}

// New assembles the server and registers all routes.
func New(cfg *contract.Config, store contract.Store, users contract.UserSnapshot) *Server {
	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		store:  store,
		users:  users,
		now:    time.Now,
	}
	s.routes()
	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/healthcheck", s.handleHealthcheck)

		r.Get("/users", s.handleListUsers)
		r.Get("/users/{username}", s.handleGetUser)
		r.Get("/users/{username}/commits", s.handleGetUserCommits)

		r.Get("/orgs", s.handleListOrganizations)
		r.Get("/orgs/{username}", s.handleGetOrganization)
		r.Get("/orgs/{username}/repos", s.handleGetOrganizationRepos)

		r.Get("/contributions", s.handleContributions)

		r.Get("/stats/users", s.handleUserStats)
		r.Get("/stats/orgs", s.handleOrganizationStats)
		r.Get("/stats/contributions", s.handleContributionStats)
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, envelope{
			"success": false,
			"message": fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path),
		})
	})
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests
// before returning.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Serving on http://localhost:%d", s.cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}
	return nil
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"message": "I'm alive, freedom!!!!"})
}

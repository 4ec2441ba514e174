// Package handler implements the HTTP boundary through which the rendering
// layer receives the homepage view model.
// All handlers are methods on Server; they are split into files by resource.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trilhabr/home-aggregator/internal/domain"
)

// HomeServicer builds the homepage view model.
// Defining the interface here, in the consumer package, lets handler tests
// inject a double without any upstream or cache.
type HomeServicer interface {
	Home(ctx context.Context) domain.ViewModel
}

// Server holds the dependencies shared by every handler.
type Server struct {
	home HomeServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(home HomeServicer) *Server {
	return &Server{home: home}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil)
}

// Routes registers every endpoint on a new chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	if s.home != nil {
		r.Get("/home", s.GetHome)
	}
	return r
}

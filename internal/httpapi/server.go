// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package httpapi is the user-facing HTTP interface: CRUD over
// namespaces/documents, the query endpoint, bearer-token auth, and
// multipart upload. Grounded on
// fbrzx-airplane-chat/internal/server/server.go's chi-router-plus-CORS
// shape and writeJSON/writeError helpers.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/service"
)

// maxUploadBytes is the request body ceiling across every route, per
// spec.md §4.8.
const maxUploadBytes = 64 << 20

// Server wires HTTP handlers to the control plane's service core.
type Server struct {
	cfg     Config
	router  http.Handler
	svc     *service.Service
	version string
	logger  hclog.Logger
}

// Config carries the server's own settings, distinct from the process
// config so tests can construct a Server directly.
type Config struct {
	AllowedOrigins []string
}

// New constructs a Server with the provided dependencies.
func New(cfg Config, svc *service.Service, version string, logger hclog.Logger) *Server {
	logger = logger.Named("httpapi")

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{cfg: cfg, router: mux, svc: svc, version: version, logger: logger}

	mux.Get("/", s.handleVersion)

	mux.Group(func(r chi.Router) {
		r.Use(s.requireBearer)
		r.Post("/namespaces", s.handleCreateNamespace)
		r.Delete("/namespaces/{name}", s.handleRemoveNamespace)
		r.Post("/namespaces/{name}/documents", s.handleUploadDocument)
		r.Get("/namespaces/{name}/documents/{id}", s.handleGetDocument)
		r.Delete("/namespaces/{name}/documents/{id}", s.handleRemoveDocument)
		r.Post("/namespaces/{name}/queries", s.handleQuery)
	})

	return s
}

// ServeHTTP exposes the router so Server satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

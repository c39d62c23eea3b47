// Package server exposes the packing engine over HTTP.
//
// The server is a thin adapter: request bodies are decoded into engine
// types, validated, and handed to pkg/pack. Responses for identical pack
// requests are memoized through pkg/cache keyed by a SHA-256 digest of
// the request body.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/contextpack/contextpack/pkg/cache"
)

// DefaultCacheTTL is how long memoized pack responses stay valid.
const DefaultCacheTTL = 15 * time.Minute

// Server holds the shared dependencies for all HTTP handlers.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	root   string // directory served by the tree endpoint
	ttl    time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithCache sets the response cache. Defaults to a null cache.
func WithCache(c cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// WithRoot sets the directory exposed by the tree endpoint.
// An empty root disables the endpoint.
func WithRoot(dir string) Option {
	return func(s *Server) { s.root = dir }
}

// WithCacheTTL overrides the memoization TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Server) { s.ttl = ttl }
}

// New creates a Server with the given logger and options.
func New(logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		logger: logger,
		cache:  cache.NewNullCache(),
		ttl:    DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/pack", s.handlePack)
	r.Get("/api/tree", s.handleTree)

	return r
}

// logRequests logs one line per request with method, path, status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Package server serves the rendered portfolio page, its content document,
// and its assets, with optional live reload.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/site"
)

// LiveReloadPath is the websocket endpoint announcing new revisions.
const LiveReloadPath = "/livereload"

// Config holds server configuration.
type Config struct {
	Port       int
	StaticDir  string // directory served under /assets/; empty to disable
	AllowAll   bool   // allow all CORS origins
	LiveReload bool   // inject the reload client and serve LiveReloadPath
}

// Server is the folio development and preview server.
type Server struct {
	cfg    Config
	store  *site.Store
	logger *zap.Logger
	hub    *hub
	router chi.Router

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for requests and render failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a server reading page inputs from store.
func New(cfg Config, store *site.Store, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		store:  store,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = newHub(store, s.logger)
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{revisionHeader},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handlePage)
	r.Get("/index.html", s.handlePage)
	r.Get("/"+site.ContentFile, s.handleContent)
	r.Get("/assets/js/folio.js", s.handleBehaviorScript)

	if s.cfg.StaticDir != "" {
		r.Handle("/assets/*", http.FileServer(http.Dir(s.cfg.StaticDir)))
	}

	if s.cfg.LiveReload {
		r.Get(LiveReloadPath, s.hub.serveWS)
	}

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Addr returns the bound address once Start is listening, or "".
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start begins listening on the configured port and blocks until the
// server stops. It returns nil after Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.cfg.Port, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln.
func (s *Server) Serve(ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.mu.Lock()
	s.listener = ln
	s.httpServer = httpServer
	s.mu.Unlock()

	s.logger.Info("folio server listening", zap.String("addr", ln.Addr().String()))
	if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown closes live reload connections and gracefully shuts down the
// server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.closeAll()
	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()
	if httpServer != nil {
		return httpServer.Shutdown(ctx)
	}
	return nil
}

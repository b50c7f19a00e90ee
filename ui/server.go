// Package ui is the HTTP presentation layer: a JSON API over pipeline
// snapshots plus a small embedded dashboard page. Handlers never compute
// domain results themselves; they fetch a snapshot (cached by content
// fingerprint), slice it with the query's filter, and render.
package ui

import (
	"context"
	"embed"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adlens/internal/pipeline"
)

//go:embed static
var staticFiles embed.FS

// Server serves the dashboard and API.
type Server struct {
	router   *chi.Mux
	pipeline *pipeline.Pipeline
	cache    *pipeline.Cache
	http     *http.Server
}

// NewServer wires the router over a pipeline and its snapshot cache.
func NewServer(p *pipeline.Pipeline, cache *pipeline.Cache) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		pipeline: p,
		cache:    cache,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/meta", s.handleMeta)
		r.Get("/summary", s.handleSummary)
		r.Get("/timeseries", s.handleTimeseries)
		r.Get("/platform-spend", s.handlePlatformSpend)
		r.Get("/campaigns/top", s.handleTopCampaigns)
		r.Get("/channels", s.handleChannels)
		r.Get("/correlation", s.handleCorrelation)
		r.Get("/marketing", s.handleMarketing)
		r.Get("/merged", s.handleMerged)
		r.Post("/cache/invalidate", s.handleInvalidate)
	})

	s.router.Handle("/static/*", http.FileServer(http.FS(staticFiles)))
	s.router.Get("/", s.handleIndex)
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until the context is cancelled, then drains in-flight
// requests before returning.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Server] listening on %s", addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Printf("[Server] shutting down")
		return s.http.Shutdown(shutdownCtx)
	}
}

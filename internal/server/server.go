// Package server exposes conflict detection over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/joywang0926/course-gantt-app/internal/config"
	"github.com/joywang0926/course-gantt-app/internal/logging"
)

// Server is a thin wrapper over chi and http.Server.
type Server struct {
	cfg  *config.Configuration
	mux  *chi.Mux
	srv  *http.Server
	bind *binder
	log  zerolog.Logger
}

// New builds the router and registers the routes.
func New(cfg *config.Configuration) *Server {
	s := &Server{
		cfg:  cfg,
		mux:  chi.NewRouter(),
		bind: newBinder(),
		log:  logging.GetLogger("http"),
	}

	s.mux.Use(chimw.RequestID)
	s.mux.Use(chimw.Recoverer)
	s.mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS", "GET", "PUT"},
		AllowedHeaders: []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "Accept", "Origin", "Cache-Control", "X-Requested-With"},
	}))
	s.mux.Use(s.accessLog)

	s.mux.Get("/healthz", handleGetHealth)
	s.mux.Post("/conflicts", s.handlePostConflicts)

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.mux }

// Addr returns the listening address.
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.srv.Addr).Msg("http listening")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info().Msg("http shutting down")
		return s.srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("request_id", chimw.GetReqID(r.Context())).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("bytes", ww.BytesWritten()).
			Msg("request done")
	})
}

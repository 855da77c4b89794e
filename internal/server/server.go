// Package server exposes the matching engine over HTTP. Serialization here
// is presentation only; batch semantics live in internal/matching.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentmatch/internal/matching"
	"talentmatch/internal/store"
)

// BatchRunner runs the matching batch for one job.
type BatchRunner interface {
	RunBatch(ctx context.Context, jobID, ownerID uuid.UUID) (*matching.BatchSummary, error)
}

// MatchReader reads persisted matches for the GET surface.
type MatchReader interface {
	ListMatchesForJob(ctx context.Context, jobID uuid.UUID) ([]*store.StoredMatch, error)
}

// Server is the HTTP front for the matching engine.
type Server struct {
	httpServer *http.Server
	runner     BatchRunner
	matches    MatchReader
	logger     *zap.Logger
}

// Config holds server configuration.
type Config struct {
	Listen string
}

// New creates a server wired to the provided runner and match reader.
func New(cfg Config, runner BatchRunner, matches MatchReader, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		runner:  runner,
		matches: matches,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/jobs/{id}/match", s.handleRunMatching)
	mux.HandleFunc("GET /api/jobs/{id}/matches", s.handleListMatches)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:        cfg.Listen,
		Handler:     s.withLogging(mux),
		ReadTimeout: 30 * time.Second,
		// A batch run holds the request open for the whole candidate loop.
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start listens until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	s.logger.Info("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("encoding json response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

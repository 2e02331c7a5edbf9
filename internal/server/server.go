// Package server wires the ledger HTTP API: routes, middleware chain and
// the listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/fairscan/internal/config"
	"github.com/iudanet/fairscan/internal/models"
	"github.com/iudanet/fairscan/internal/server/handlers"
	"github.com/iudanet/fairscan/internal/server/middleware"
)

const (
	healthPath      = "/api/v1/health"
	shutdownTimeout = 5 * time.Second
)

// Store is everything the HTTP API needs from storage
type Store interface {
	handlers.AttendanceStorage
	handlers.ScanLogStorage
	handlers.QuestionnaireStorage
	handlers.Pinger
}

// QuestionnaireSaver записывает анкеты из seed-файла
type QuestionnaireSaver interface {
	SaveQuestionnaire(ctx context.Context, q *models.Questionnaire) error
}

// Server is the ledger HTTP server
type Server struct {
	logger     *slog.Logger
	limiter    *middleware.RateLimiter
	httpServer *http.Server
}

// New builds the server. Call Close to release the rate limiter.
func New(cfg config.Server, store Store, logger *slog.Logger, version string) *Server {
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, logger)

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	s := &Server{
		logger:  logger,
		limiter: limiter,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(logger, store, jwtConfig, limiter, version),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func newRouter(logger *slog.Logger, store Store, jwtConfig handlers.JWTConfig, limiter *middleware.RateLimiter, version string) http.Handler {
	healthHandler := handlers.NewHealthHandler(logger, store, version)
	attendanceHandler := handlers.NewAttendanceHandler(logger, store)
	scanLogHandler := handlers.NewScanLogHandler(logger, store)
	questionnaireHandler := handlers.NewQuestionnaireHandler(logger, store)

	auth := middleware.AuthMiddleware(logger, jwtConfig)
	rateLimit := middleware.RateLimitMiddleware(limiter, logger)

	// Лимит считается по user_id, поэтому RateLimit стоит после Auth
	protected := func(h http.HandlerFunc) http.Handler {
		return auth(rateLimit(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)
	mux.Handle("GET /api/v1/events/{eventID}/attendance/{userID}", protected(attendanceHandler.Exists))
	mux.Handle("PUT /api/v1/events/{eventID}/attendance/{userID}", protected(attendanceHandler.Create))
	mux.Handle("POST /api/v1/scanlog", protected(scanLogHandler.Append))
	mux.Handle("GET /api/v1/scanlog", protected(scanLogHandler.List))
	mux.Handle("GET /api/v1/questionnaires/{questionnaireID}", protected(questionnaireHandler.Get))

	var handler http.Handler = mux
	handler = middleware.RecoveryMiddleware(logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{healthPath})(handler)
	return handler
}

// Handler returns the root handler with the full middleware chain
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe listens on the configured address and serves until ctx is done
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	// Serve возвращает ErrServerClosed сразу после начала Shutdown
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}

// Close stops background workers
func (s *Server) Close() {
	s.limiter.Stop()
}

// SeedQuestionnaires stores questionnaires loaded from the seed file.
// Existing questionnaires with the same ID are replaced.
func SeedQuestionnaires(ctx context.Context, saver QuestionnaireSaver, qs []*models.Questionnaire) error {
	for _, q := range qs {
		if err := saver.SaveQuestionnaire(ctx, q); err != nil {
			return fmt.Errorf("failed to save questionnaire %q: %w", q.ID, err)
		}
	}
	return nil
}

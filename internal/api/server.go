package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/orbinite/gids/internal/chat"
	"github.com/orbinite/gids/internal/configstore"
)

const (
	// DefaultAddr is the default address for the HTTP server.
	DefaultAddr = "127.0.0.1:8080"

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout = 10 * time.Second

	// ReadHeaderTimeout is the timeout for reading request headers.
	// This prevents Slowloris attacks (CWE-400).
	ReadHeaderTimeout = 10 * time.Second

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout = 30 * time.Second

	// WriteTimeout is the maximum duration for writing the response.
	// Model completions can take a while, so this is generous.
	WriteTimeout = 3 * time.Minute

	// IdleTimeout is the maximum time to wait for the next request on
	// keep-alive connections.
	IdleTimeout = 120 * time.Second

	// DefaultRequestTimeout bounds a single chat completion.
	DefaultRequestTimeout = 2 * time.Minute
)

// ServerConfig carries the knobs the HTTP layer needs.
type ServerConfig struct {
	// AdminPassword is the shared admin secret. Empty means admin access
	// is unconfigured: authentication fails with a server error rather
	// than a denial.
	AdminPassword string

	// MaxKnowledgeBytes caps knowledge base writes. 0 = unlimited.
	MaxKnowledgeBytes int

	// RequestTimeout bounds a single chat completion.
	// Zero means DefaultRequestTimeout.
	RequestTimeout time.Duration

	// CORSOrigins lists allowed origins. Empty disables CORS.
	CORSOrigins []string

	// TrustProxy trusts X-Forwarded-For for the client IP in request
	// logs. Only enable behind a proxy that strips the header from
	// client traffic.
	TrustProxy bool
}

// Server is the HTTP server for the assistant's REST API.
type Server struct {
	mux    *http.ServeMux
	cfg    ServerConfig
	logger *slog.Logger

	health *HealthHandler
	chat   *ChatHandler
	admin  *AdminHandler
}

// NewServer creates an HTTP server with all routes registered.
func NewServer(store configstore.Store, generator chat.Generator, cfg ServerConfig, logger *slog.Logger) (*Server, error) {
	if store == nil {
		return nil, errors.New("api: store is required")
	}
	if generator == nil {
		return nil, errors.New("api: generator is required")
	}
	if logger == nil {
		return nil, errors.New("api: logger is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	mux := http.NewServeMux()

	s := &Server{
		mux:    mux,
		cfg:    cfg,
		logger: logger,
		health: NewHealthHandler(store),
		chat:   NewChatHandler(store, generator, cfg.RequestTimeout, logger),
		admin:  NewAdminHandler(store, cfg.AdminPassword, cfg.MaxKnowledgeBytes, logger),
	}

	s.health.RegisterRoutes(mux)
	s.chat.RegisterRoutes(mux)
	s.admin.RegisterRoutes(mux)

	return s, nil
}

// Handler returns the HTTP handler with middleware applied.
// Middleware order: recovery → request ID → logging → security headers → CORS.
// The chain is wrapped in otelhttp so every request carries a server span;
// with tracing disabled the global provider is a no-op and this costs
// nothing.
func (s *Server) Handler() http.Handler {
	h := chain(s.mux,
		recoveryMiddleware(s.logger),
		requestIDMiddleware(),
		loggingMiddleware(s.logger, s.cfg.TrustProxy),
		securityHeadersMiddleware(),
		corsMiddleware(s.cfg.CORSOrigins),
	)
	return otelhttp.NewHandler(h, "gids.http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// Run starts the HTTP server and blocks until the context is cancelled.
// It handles graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

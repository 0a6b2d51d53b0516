package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/TornBot_Go/docs"
	"github.com/osse101/TornBot_Go/internal/handler"
	"github.com/osse101/TornBot_Go/internal/logger"
	"github.com/osse101/TornBot_Go/internal/metrics"
)

// Options carries everything the admin HTTP surface depends on
type Options struct {
	Port           int
	APIKey         string
	Version        string
	TrustedProxies []string
	Store          handler.Pinger
	Leaderboard    handler.LeaderboardService
	Keys           handler.KeyResolver
}

// Server is the admin HTTP surface: health, metrics and leaderboard/sync endpoints
type Server struct {
	httpServer *http.Server
	limiter    *IPRateLimiter
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	limiter := NewIPRateLimiter(RequestsPerSecond, RequestBurst)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, limiter),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		limiter: limiter,
	}
}

// NewRouter builds the chi router. Middleware runs outermost first.
func NewRouter(opts Options, limiter *IPRateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, NewFailedAuthDetector()))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Store))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/leaderboard", handler.HandleGetLeaderboard(opts.Leaderboard))
		r.Post("/sync", handler.HandleSync(opts.Leaderboard, opts.Keys))
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Probes and scrapes are too noisy to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. It also prunes idle per-IP limiters.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(LimiterIdleTTL / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.limiter.Prune(time.Now().Add(-LimiterIdleTTL))
			case <-done:
				return
			}
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

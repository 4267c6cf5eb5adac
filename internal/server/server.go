package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Outfitter_Go/internal/auth"
	"github.com/osse101/Outfitter_Go/internal/catalog"
	"github.com/osse101/Outfitter_Go/internal/character"
	"github.com/osse101/Outfitter_Go/internal/database"
	"github.com/osse101/Outfitter_Go/internal/economy"
	"github.com/osse101/Outfitter_Go/internal/handler"
	"github.com/osse101/Outfitter_Go/internal/logger"
	"github.com/osse101/Outfitter_Go/internal/metrics"
)

// Options configures the HTTP listener and its abuse limits
type Options struct {
	Port            int
	TrustedProxies  []string
	MaxRequestBytes int64
	RateLimit       int
	RateLimitWindow time.Duration
}

// Services are the application services exposed over HTTP
type Services struct {
	Auth       auth.Service
	Characters character.Service
	Economy    economy.Service
	Catalog    catalog.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services) *Server {
	detector := NewSuspiciousActivityDetector(opts.RateLimit, opts.RateLimitWindow)
	maxBytes := opts.MaxRequestBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxRequestBytes
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           newRouter(opts.TrustedProxies, maxBytes, detector, dbPool, svc),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ReadTimeout:       DefaultReadTimeout,
			WriteTimeout:      DefaultWriteTimeout,
			IdleTimeout:       DefaultIdleTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func newRouter(trustedProxies []string, maxBytes int64, detector *SuspiciousActivityDetector, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(chimw.Recoverer)
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, ErrMsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed)
	})

	// Ops routes (unversioned, public)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	requireBearer := BearerAuthMiddleware(svc.Auth, trustedProxies, detector)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/signup", handler.HandleSignup(svc.Auth))
			r.Post("/login", handler.HandleLogin(svc.Auth))
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(svc.Catalog))
			r.Get("/{"+handler.ParamItemCode+"}", handler.HandleGetItem(svc.Catalog))
		})

		r.Route("/characters", func(r chi.Router) {
			r.With(requireBearer).Post("/", handler.HandleCreateCharacter(svc.Characters))

			r.Route("/{"+handler.ParamCharacterID+"}", func(r chi.Router) {
				// Equipment is visible to anyone
				r.Get("/equipment", handler.HandleGetEquipment(svc.Economy))

				r.Group(func(r chi.Router) {
					r.Use(requireBearer)

					r.Get("/", handler.HandleGetCharacter(svc.Characters))
					r.Delete("/", handler.HandleDeleteCharacter(svc.Characters))
					r.Post("/reward", handler.HandleReward(svc.Economy))
					r.Post("/buy", handler.HandleBuy(svc.Economy))
					r.Post("/sell", handler.HandleSell(svc.Economy))
					r.Post("/equip", handler.HandleEquip(svc.Economy))
					r.Post("/unequip", handler.HandleUnequip(svc.Economy))
					r.Get("/inventory", handler.HandleGetInventory(svc.Economy))
				})
			})
		})
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

func isQuietPath(path string) bool {
	return slices.ContainsFunc(QuietPaths, func(prefix string) bool {
		return strings.HasPrefix(path, prefix)
	})
}

// redactHeaders copies h with credentials replaced
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

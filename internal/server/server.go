package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hollyoak/GrazeGarden_Go/internal/database"
	"github.com/hollyoak/GrazeGarden_Go/internal/economy"
	"github.com/hollyoak/GrazeGarden_Go/internal/garden"
	"github.com/hollyoak/GrazeGarden_Go/internal/handler"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
	"github.com/hollyoak/GrazeGarden_Go/internal/metrics"
	"github.com/hollyoak/GrazeGarden_Go/internal/reward"
	"github.com/hollyoak/GrazeGarden_Go/internal/session"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	sessionService session.Service
	gardenService  garden.Service
	economyService economy.Service
	rewardService  reward.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, sessionService session.Service, gardenService garden.Service, economyService economy.Service, rewardService reward.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	sessionHandler := handler.NewSessionHandler(sessionService)
	gardenHandler := handler.NewGardenHandler(gardenService)
	economyHandler := handler.NewEconomyHandler(economyService)
	statsHandler := handler.NewStatsHandler(rewardService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Post("/start", sessionHandler.HandleStart)
			r.Get("/active", sessionHandler.HandleGetActive)
			r.Post("/complete", sessionHandler.HandleComplete)
			r.Post("/cancel", sessionHandler.HandleCancel)
		})

		r.Get("/garden", gardenHandler.HandleGetGrid)
		r.Route("/garden", func(r chi.Router) {
			r.Post("/place", gardenHandler.HandlePlaceItem)
			r.Post("/remove", gardenHandler.HandleRemoveItem)
		})

		r.Route("/item", func(r chi.Router) {
			r.Post("/acquire", economyHandler.HandleAcquireItem)
			r.Post("/sell", economyHandler.HandleSellItem)
			r.Post("/upgrade", economyHandler.HandleUpgradeItem)
			r.Get("/affordability", economyHandler.HandleCanAfford)
		})

		r.Get("/inventory", economyHandler.HandleGetInventory)

		r.Get("/stats", statsHandler.HandleGetStats)
		r.Get("/achievements", statsHandler.HandleGetAchievements)
		r.Get("/rewards/history", statsHandler.HandleGetHistory)
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		sessionService: sessionService,
		gardenService:  gardenService,
		economyService: economyService,
		rewardService:  rewardService,
	}
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
		statusCode:     http.StatusOK, // default status
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
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mjdigitalmedia/agency-api/internal/config"
	"github.com/mjdigitalmedia/agency-api/internal/database"
	"github.com/mjdigitalmedia/agency-api/internal/http/handler"
	"github.com/mjdigitalmedia/agency-api/internal/http/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	authMiddleware   *middleware.AuthMiddleware
	rateLimiter      *middleware.RateLimiter
	authHandler      *handler.AuthHandler
	leadHandler      *handler.LeadHandler
	dashboardHandler *handler.DashboardHandler
	portfolioHandler *handler.PortfolioHandler
	videoHandler     *handler.VideoHandler
	inquiryHandler   *handler.InquiryHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	leadHandler *handler.LeadHandler,
	dashboardHandler *handler.DashboardHandler,
	portfolioHandler *handler.PortfolioHandler,
	videoHandler *handler.VideoHandler,
	inquiryHandler *handler.InquiryHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		authMiddleware:   authMiddleware,
		rateLimiter:      rateLimiter,
		authHandler:      authHandler,
		leadHandler:      leadHandler,
		dashboardHandler: dashboardHandler,
		portfolioHandler: portfolioHandler,
		videoHandler:     videoHandler,
		inquiryHandler:   inquiryHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		status := http.StatusOK
		overall := "healthy"
		if !allHealthy {
			status = http.StatusServiceUnavailable
			overall = "unhealthy"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": overall,
			"checks": checks,
		})
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes (no auth required)
		r.Post("/auth/login", rt.authHandler.Login)
		r.Post("/leads", rt.inquiryHandler.NotifyLead)
		r.Post("/contact", rt.inquiryHandler.NotifyContact)

		// The intake form posts anonymously; reading and managing leads is
		// admin-only. Public and guarded methods share the /clients subrouter
		// so neither registration shadows the other.
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", rt.leadHandler.CreateLead)

			r.Group(func(r chi.Router) {
				r.Use(rt.authMiddleware.Authenticate)

				r.Get("/", rt.leadHandler.ListLeads)
				r.Get("/{id}", rt.leadHandler.GetLead)
				r.Patch("/{id}", rt.leadHandler.UpdateLead)
				r.Delete("/{id}", rt.leadHandler.DeleteLead)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/public", rt.portfolioHandler.ListPublicProjects)

			r.Group(func(r chi.Router) {
				r.Use(rt.authMiddleware.Authenticate)

				r.Get("/", rt.portfolioHandler.ListProjects)
				r.Post("/", rt.portfolioHandler.CreateProject)
				r.Get("/{id}", rt.portfolioHandler.GetProject)
				r.Patch("/{id}", rt.portfolioHandler.UpdateProject)
				r.Delete("/{id}", rt.portfolioHandler.DeleteProject)
			})
		})

		r.Route("/youtube-videos", func(r chi.Router) {
			r.Get("/public", rt.videoHandler.ListPublicVideos)

			r.Group(func(r chi.Router) {
				r.Use(rt.authMiddleware.Authenticate)

				r.Get("/", rt.videoHandler.ListVideos)
				r.Post("/import", rt.videoHandler.ImportVideos)
				r.Patch("/{id}", rt.videoHandler.UpdateVideo)
			})
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			r.Get("/auth/me", rt.authHandler.Me)
			r.Get("/stats", rt.dashboardHandler.GetStats)
		})
	})

	return r
}

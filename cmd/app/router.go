package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pathwise/internal/api/controllers"
	"pathwise/pkg/config"
	"pathwise/pkg/metrics"
	"pathwise/pkg/middleware"
	"pathwise/pkg/utils"
)

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	tokens *utils.SessionTokens,
	tripController *controllers.TripController,
	pageController *controllers.PageController) *gin.Engine {

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.TraceIDHeader},
		ExposeHeaders:    []string{middleware.TraceIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r, cfg, m, tokens, tripController, pageController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	m *metrics.Metrics,
	tokens *utils.SessionTokens,
	tripController *controllers.TripController,
	pageController *controllers.PageController) {

	r.GET("/", pageController.IndexHandler)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	limited := middleware.RateLimitMiddleware(middleware.NewLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	api := r.Group("/api", middleware.SessionMiddleware(tokens))
	api.GET("/location", tripController.DetectLocationHandler)

	trips := api.Group("/trips")
	trips.POST("/generate", limited, tripController.GenerateTripHandler)
	trips.POST("/refine", limited, tripController.RefineTripHandler)
	trips.GET("/session", tripController.GetSessionHandler)
	trips.DELETE("/session", tripController.EndSessionHandler)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"storage-sizing/internal/api/handlers"
	"storage-sizing/internal/api/middleware"
	"storage-sizing/internal/data"
	"storage-sizing/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	logger := logging.New(os.Stderr,
		logging.LevelFromString(os.Getenv("LOG_LEVEL")),
		logging.FormatFromString(os.Getenv("LOG_FORMAT")))

	cacheTTL := time.Hour
	if raw := os.Getenv("RESULT_CACHE_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			logger.Error("invalid RESULT_CACHE_TTL", "value", raw, "error", err)
			os.Exit(1)
		}
		cacheTTL = d
	}

	var origins []string
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := data.NewResultCache(cacheTTL)
	go cache.Run(ctx, cacheTTL/4)

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS(origins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	curveDir := data.DefaultCurveDir()
	optimizeHandler := handlers.NewOptimizeHandler(curveDir, cache, logger)
	curveHandler := handlers.NewCurveHandler(curveDir, logger)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cached_results": cache.Len()})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/optimize", optimizeHandler.Optimize)
		api.GET("/optimize/:id/costs", optimizeHandler.GetCosts)
		api.POST("/threshold", optimizeHandler.Threshold)
		api.POST("/compare", optimizeHandler.Compare)

		api.GET("/curves", curveHandler.ListCurves)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": handlers.CodeNotFound, "message": "Not found"}})
	})

	// Start server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("starting API server", "addr", srv.Addr, "curve_dir", curveDir, "cache_ttl", cacheTTL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

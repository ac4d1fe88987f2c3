package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	httpapi "github.com/Prashgeek/TenWeather/internal/api/http"
	"github.com/Prashgeek/TenWeather/internal/config"
	"github.com/Prashgeek/TenWeather/internal/location"
	"github.com/Prashgeek/TenWeather/internal/providers"
	"github.com/Prashgeek/TenWeather/internal/scheduler"
	"github.com/Prashgeek/TenWeather/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory cache for ranked searches and the reverse-lookup pool.
	cache := store.NewMemoryCache(cfg.CacheMaxEntries, cfg.CacheMaxAge)

	// Outbound Open-Meteo clients (backoff + circuit breaker inside).
	geocoder := providers.NewGeocodingClient(httpClient, cfg.GeocodingBaseURL)
	forecaster := providers.NewForecastClient(httpClient, cfg.ForecastBaseURL)

	// Core service composing geocoding, ranking and reverse lookup.
	locations := location.NewService(geocoder, cache, cfg.Priority)

	// Warm the reverse-lookup pool so the first coordinate lookup does not
	// pay the provider round trip. Best-effort.
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if pool := locations.RefreshPool(warmCtx); len(pool) == 0 {
		log.Println("reverse-lookup pool warm-up returned no candidates")
	}
	warmCancel()

	// Scheduler keeps the pool fresh in the background.
	sched := scheduler.New(cfg.PoolRefreshInterval, locations)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "tenweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// CORS allowlist from FRONTEND_URL; credentials cannot be combined
	// with a wildcard origin.
	corsCfg := cors.Config{
		AllowOrigins:     strings.Join(cfg.FrontendOrigins, ","),
		AllowCredentials: true,
	}
	if slices.Contains(cfg.FrontendOrigins, "*") {
		corsCfg = cors.Config{AllowOrigins: "*"}
	}
	app.Use(cors.New(corsCfg))

	// Health endpoints
	started := time.Now()
	app.Get("/_healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(started).Seconds(),
		})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":        true,
			"message":   "Weather API backend is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"availableEndpoints": []string{
				"GET /api/geocode?q=cityname",
				"GET /api/locations?q=cityname",
				"GET /api/reverse-geocode?lat=value&lon=value",
				"GET /api/weather?lat=value&lon=value",
			},
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, locations, forecaster)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

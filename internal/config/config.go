package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Prashgeek/TenWeather/internal/location"
)

type AppConfig struct {
	Port string

	// FrontendOrigins is the CORS allowlist; "*" allows any origin.
	FrontendOrigins []string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// Priority is the country whose geocoding results rank first.
	Priority location.Priority

	// Search cache retention.
	CacheMaxEntries int
	CacheMaxAge     time.Duration

	// PoolRefreshInterval controls how often the reverse-lookup candidate
	// pool is refreshed in the background.
	PoolRefreshInterval time.Duration

	// Provider base URL overrides, used for tests and self-hosted mirrors.
	// Empty means the public Open-Meteo endpoints.
	GeocodingBaseURL string
	ForecastBaseURL  string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "4000")

	rawFrontend := getenvDefault("FRONTEND_URL", "http://localhost:5173,http://127.0.0.1:5173")
	for _, origin := range strings.Split(rawFrontend, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.FrontendOrigins = append(cfg.FrontendOrigins, origin)
		}
	}

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	cfg.Priority = location.IndiaPriority()
	if code := os.Getenv("PRIORITY_COUNTRY_CODE"); code != "" {
		cfg.Priority.Code = code
	}
	if name := os.Getenv("PRIORITY_COUNTRY_NAME"); name != "" {
		cfg.Priority.Name = name
	}

	cfg.CacheMaxEntries = getenvInt("CACHE_MAX_ENTRIES", 256)

	maxAge, err := getenvDuration("CACHE_MAX_AGE", "10m")
	if err != nil {
		return nil, err
	}
	cfg.CacheMaxAge = maxAge

	refresh, err := getenvDuration("POOL_REFRESH_INTERVAL", "30m")
	if err != nil {
		return nil, err
	}
	cfg.PoolRefreshInterval = refresh

	cfg.GeocodingBaseURL = os.Getenv("GEOCODING_BASE_URL")
	cfg.ForecastBaseURL = os.Getenv("FORECAST_BASE_URL")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// Package config loads pipeline settings from the environment over defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Source registry
	SourcesPath       string // YAML list of built-in sources
	CustomSourcesPath string // JSON store for user-added sources

	// Fetching
	FetchTimeout time.Duration // explicit per-source HTTP timeout
	MaxBodyBytes int64         // cap on one feed document

	// Freshness cache
	CacheTTL time.Duration

	// Deduplication
	DedupeThreshold float64 // Jaccard similarity above which a title is a duplicate
	MaxArticles     int     // per-category cap after dedup, most recent first

	// Story clustering
	ClusterThreshold float64       // Jaccard similarity above which articles may cluster
	ClusterWindow    time.Duration // max publish-time distance from the anchor

	// App settings
	Debug          bool
	MonitoringPort string
}

// The similarity thresholds and the clustering window are tuning constants
// inherited from production use. They have no documented derivation; change
// them through the environment, not here.
const (
	defaultDedupeThreshold  = 0.85
	defaultClusterThreshold = 0.70
	defaultClusterWindow    = 4 * time.Hour
	defaultCacheTTL         = 1 * time.Hour
	defaultMaxArticles      = 100
	defaultFetchTimeout     = 15 * time.Second
	defaultMaxBodyBytes     = 10 << 20 // 10 MiB
)

func Load() (*Config, error) {
	cfg := &Config{
		SourcesPath:       "configs/sources.yaml",
		CustomSourcesPath: "custom_sources.json",
		FetchTimeout:      defaultFetchTimeout,
		MaxBodyBytes:      defaultMaxBodyBytes,
		CacheTTL:          defaultCacheTTL,
		DedupeThreshold:   defaultDedupeThreshold,
		MaxArticles:       defaultMaxArticles,
		ClusterThreshold:  defaultClusterThreshold,
		ClusterWindow:     defaultClusterWindow,
		MonitoringPort:    "8080",
	}

	cfg.SourcesPath = getEnvOrDefault("NEWSLENS_SOURCES_PATH", cfg.SourcesPath)
	cfg.CustomSourcesPath = getEnvOrDefault("NEWSLENS_CUSTOM_SOURCES_PATH", cfg.CustomSourcesPath)
	cfg.MonitoringPort = getEnvOrDefault("MONITORING_PORT", cfg.MonitoringPort)

	cfg.FetchTimeout = getEnvDurationOrDefault("NEWSLENS_FETCH_TIMEOUT", cfg.FetchTimeout)
	cfg.CacheTTL = getEnvDurationOrDefault("NEWSLENS_CACHE_TTL", cfg.CacheTTL)
	cfg.ClusterWindow = getEnvDurationOrDefault("NEWSLENS_CLUSTER_WINDOW", cfg.ClusterWindow)

	cfg.MaxArticles = getEnvIntOrDefault("NEWSLENS_MAX_ARTICLES", cfg.MaxArticles)

	cfg.DedupeThreshold = getEnvFloatOrDefault("NEWSLENS_DEDUPE_THRESHOLD", cfg.DedupeThreshold)
	cfg.ClusterThreshold = getEnvFloatOrDefault("NEWSLENS_CLUSTER_THRESHOLD", cfg.ClusterThreshold)

	if os.Getenv("NEWSLENS_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.SourcesPath == "" {
		return fmt.Errorf("sources path is required")
	}
	if c.DedupeThreshold <= 0 || c.DedupeThreshold > 1 {
		return fmt.Errorf("dedupe threshold must be in (0,1], got %v", c.DedupeThreshold)
	}
	if c.ClusterThreshold <= 0 || c.ClusterThreshold > 1 {
		return fmt.Errorf("cluster threshold must be in (0,1], got %v", c.ClusterThreshold)
	}
	if c.MaxArticles <= 0 {
		return fmt.Errorf("max articles must be positive, got %d", c.MaxArticles)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %v", c.CacheTTL)
	}
	if c.ClusterWindow <= 0 {
		return fmt.Errorf("cluster window must be positive, got %v", c.ClusterWindow)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// RateLimitConfig bounds requests per client IP.
type RateLimitConfig struct {
	Capacity      int `yaml:"capacity"`
	WindowSeconds int `yaml:"window_seconds"`
}

// Window returns the refill window as a duration.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// Config holds application configuration.
type Config struct {
	Port                string          `yaml:"port"`
	LogLevel            string          `yaml:"log_level"`
	RedisAddr           string          `yaml:"redis_addr"`
	PostgresDSN         string          `yaml:"postgres_dsn"`
	CacheTTLSeconds     int             `yaml:"cache_ttl_seconds"`
	MaxSimulationMonths int             `yaml:"max_simulation_months"`
	RateLimit           RateLimitConfig `yaml:"rate_limit"`
}

// CacheTTL returns the report cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Load builds the configuration from defaults, an optional YAML file
// named by PLANNER_CONFIG, and environment overrides, in that order.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                "8080",
		LogLevel:            "info",
		CacheTTLSeconds:     3600,
		MaxSimulationMonths: 1200,
		RateLimit: RateLimitConfig{
			Capacity:      5,
			WindowSeconds: 60,
		},
	}

	if path := os.Getenv("PLANNER_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.PostgresDSN = getEnv("POSTGRES_DSN", cfg.PostgresDSN)
	cfg.MaxSimulationMonths = getEnvInt("MAX_SIMULATION_MONTHS", cfg.MaxSimulationMonths)

	if cfg.MaxSimulationMonths <= 0 {
		return nil, fmt.Errorf("max_simulation_months must be positive, got %d", cfg.MaxSimulationMonths)
	}
	if cfg.RateLimit.Capacity <= 0 || cfg.RateLimit.WindowSeconds <= 0 {
		return nil, fmt.Errorf("rate limit capacity and window must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal
	}
	return parsed
}

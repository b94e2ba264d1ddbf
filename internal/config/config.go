package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the backend server configuration.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	RedisURL    string

	JWTSecret   string
	JWTExpiry   time.Duration
	BcryptCost  int
	AnalysisURL string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	LogLevel  string
	LogFormat string
}

// AnalysisConfig holds the analysis service configuration.
type AnalysisConfig struct {
	Port     string
	RedisURL string

	HistoryLimit int
	HistoryTTL   time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads the backend configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AnalysisURL:   getEnv("ANALYSIS_URL", "http://localhost:5000"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters, got %d", len(cfg.JWTSecret))
	}

	expiry, err := parseDuration("JWT_EXPIRY", "24h")
	if err != nil {
		return nil, err
	}
	cfg.JWTExpiry = expiry

	cost, err := parseInt("BCRYPT_COST", "10")
	if err != nil {
		return nil, err
	}
	if cost < 4 || cost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cost)
	}
	cfg.BcryptCost = cost

	return cfg, nil
}

// LoadAnalysis reads the analysis service configuration from the environment.
func LoadAnalysis() (*AnalysisConfig, error) {
	cfg := &AnalysisConfig{
		Port:      getEnv("PORT", "5000"),
		RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	limit, err := parseInt("HISTORY_LIMIT", "500")
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, fmt.Errorf("HISTORY_LIMIT must be positive, got %d", limit)
	}
	cfg.HistoryLimit = limit

	ttl, err := parseDuration("HISTORY_TTL", "24h")
	if err != nil {
		return nil, err
	}
	cfg.HistoryTTL = ttl

	return cfg, nil
}

func parseInt(key, defaultValue string) (int, error) {
	raw := getEnv(key, defaultValue)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	raw := getEnv(key, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like \"24h\": %w", key, err)
	}
	return d, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

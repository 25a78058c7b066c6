package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Satellite data provider
	ProviderBaseURL         string        `env:"PROVIDER_BASE_URL"`
	ProviderProjectID       string        `env:"PROVIDER_PROJECT_ID"`
	ProviderCredentialsPath string        `env:"PROVIDER_CREDENTIALS_PATH"`
	ProviderTimeout         time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"30s"`
	ProviderMaxRetries      int           `env:"PROVIDER_MAX_RETRIES" envDefault:"3"`
	ProviderBaseDelay       time.Duration `env:"PROVIDER_BASE_DELAY" envDefault:"1s"`

	// Scheduler
	SchedulerInterval     time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"1h"`
	SchedulerWorkers      int           `env:"SCHEDULER_WORKERS" envDefault:"4"`
	SchedulerLookbackDays int           `env:"SCHEDULER_LOOKBACK_DAYS" envDefault:"30"`

	// Alerting
	AnomalyMinSamples int     `env:"ANOMALY_MIN_SAMPLES" envDefault:"5"`
	AnomalySigma      float64 `env:"ANOMALY_SIGMA" envDefault:"2"`
	// Relative distance from a threshold at which severity escalates
	SeverityMediumBand   float64 `env:"SEVERITY_MEDIUM_BAND" envDefault:"0.1"`
	SeverityHighBand     float64 `env:"SEVERITY_HIGH_BAND" envDefault:"0.25"`
	SeverityCriticalBand float64 `env:"SEVERITY_CRITICAL_BAND" envDefault:"0.5"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig loads configuration from environment variables and a .env file.
func LoadConfig() (*Config, error) {
	// Load variables from a .env file when one is present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		ProviderBaseURL:         os.Getenv("PROVIDER_BASE_URL"),
		ProviderProjectID:       os.Getenv("PROVIDER_PROJECT_ID"),
		ProviderCredentialsPath: os.Getenv("PROVIDER_CREDENTIALS_PATH"),
		ProviderTimeout:         getEnvAsDuration("PROVIDER_TIMEOUT", 30*time.Second),
		ProviderMaxRetries:      getEnvAsInt("PROVIDER_MAX_RETRIES", 3),
		ProviderBaseDelay:       getEnvAsDuration("PROVIDER_BASE_DELAY", time.Second),
		SchedulerInterval:       getEnvAsDuration("SCHEDULER_INTERVAL", time.Hour),
		SchedulerWorkers:        getEnvAsInt("SCHEDULER_WORKERS", 4),
		SchedulerLookbackDays:   getEnvAsInt("SCHEDULER_LOOKBACK_DAYS", 30),
		AnomalyMinSamples:       getEnvAsInt("ANOMALY_MIN_SAMPLES", 5),
		AnomalySigma:            getEnvAsFloat("ANOMALY_SIGMA", 2),
		SeverityMediumBand:      getEnvAsFloat("SEVERITY_MEDIUM_BAND", 0.1),
		SeverityHighBand:        getEnvAsFloat("SEVERITY_HIGH_BAND", 0.25),
		SeverityCriticalBand:    getEnvAsFloat("SEVERITY_CRITICAL_BAND", 0.5),
		WebhookURL:              os.Getenv("WEBHOOK_URL"),
		WebhookSecret:           os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:          getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:       getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:        getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Load API keys
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the value of an environment variable as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns the value of an environment variable as float64 or a default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the value of an environment variable as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

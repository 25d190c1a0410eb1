package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Scoring modes. Only one scoring source of truth is active per deployment.
const (
	// ScoringModeSessions derives scores from recorded session placements.
	ScoringModeSessions = "sessions"
	// ScoringModeLegacy uses the stored, directly adjusted player score.
	ScoringModeLegacy = "legacy"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	HTTP          HTTPConfig          `yaml:"http"`
	Scoring       ScoringConfig       `yaml:"scoring"`
	Sessions      SessionsConfig      `yaml:"sessions"`
	Validation    ValidationConfig    `yaml:"validation"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN         string `yaml:"dsn" env:"DATABASE_URL"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
}

// HTTPConfig holds the HTTP listener configuration.
type HTTPConfig struct {
	Port            string        `yaml:"port" env:"PORT"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
	// RateLimit is requests per second per client IP on mutating routes. 0 disables it.
	RateLimit float64 `yaml:"rate_limit" env:"HTTP_RATE_LIMIT"`
	RateBurst int     `yaml:"rate_burst" env:"HTTP_RATE_BURST"`
	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP. Enable only
	// behind a proxy that overwrites those headers; otherwise clients choose their
	// own rate limit bucket.
	TrustProxy bool `yaml:"trust_proxy" env:"HTTP_TRUST_PROXY"`
}

// ScoringConfig selects how player scores are produced.
type ScoringConfig struct {
	Mode string `yaml:"mode" env:"SCORING_MODE"`
}

// SessionsConfig holds session recording options.
type SessionsConfig struct {
	// StrictPlacements requires placements to be a permutation of 1..4 with distinct players.
	StrictPlacements bool `yaml:"strict_placements" env:"SESSIONS_STRICT_PLACEMENTS"`
}

// ValidationConfig holds input limits.
type ValidationConfig struct {
	MaxNameLength int `yaml:"max_name_length" env:"MAX_NAME_LENGTH"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	LogLevel        string  `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat       string  `yaml:"log_format" env:"LOG_FORMAT"` // json|text
	Environment     string  `yaml:"environment" env:"ENV"`
	MetricsAddress  string  `yaml:"metrics_address" env:"METRICS_ADDRESS"`
	OTLPEndpoint    string  `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT"`
	OTLPInsecure    bool    `yaml:"otlp_insecure" env:"OTLP_INSECURE"`
	TempoSampleRate float64 `yaml:"tempo_sample_rate" env:"TEMPO_SAMPLE_RATE"`
}

// LoadConfig loads the configuration from a YAML file and overlays environment variables.
// A missing file is not an error; the environment alone is then used.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %q: %w", filename, err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config with every optional value set.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.HTTP.Port == "" {
		c.HTTP.Port = "3000"
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if c.HTTP.RateLimit > 0 && c.HTTP.RateBurst <= 0 {
		c.HTTP.RateBurst = 10
	}
	c.Scoring.Mode = strings.ToLower(strings.TrimSpace(c.Scoring.Mode))
	if c.Scoring.Mode == "" {
		c.Scoring.Mode = ScoringModeSessions
	}
	if c.Validation.MaxNameLength <= 0 {
		c.Validation.MaxNameLength = 100
	}
	if c.Observability.LogLevel == "" {
		c.Observability.LogLevel = "info"
	}
	if c.Observability.LogFormat == "" {
		c.Observability.LogFormat = "json"
	}
	if c.Observability.TempoSampleRate <= 0 {
		c.Observability.TempoSampleRate = 0.1
	}
}

// Validate reports configuration that cannot be started with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Postgres.DSN) == "" {
		return errors.New("postgres dsn not set (config postgres.dsn or DATABASE_URL)")
	}
	switch c.Scoring.Mode {
	case ScoringModeSessions, ScoringModeLegacy:
	default:
		return fmt.Errorf("invalid scoring mode %q: want %q or %q", c.Scoring.Mode, ScoringModeSessions, ScoringModeLegacy)
	}
	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("invalid http rate limit %v", c.HTTP.RateLimit)
	}
	return nil
}

// LegacyScoring reports whether the stored-score model is active.
func (c *Config) LegacyScoring() bool {
	return c.Scoring.Mode == ScoringModeLegacy
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.HTTP.Port
}

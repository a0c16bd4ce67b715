package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"booking-backend/internal/schedule"
)

// Environment selects deployment-wide policy, most importantly whether
// CAPTCHA verification fails open or closed when no secret is configured.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Scheduling SchedulingConfig `yaml:"scheduling"`
	Graph      GraphConfig      `yaml:"graph"`
	Turnstile  TurnstileConfig  `yaml:"turnstile"`
	SpamGuard  SpamGuardConfig  `yaml:"spam_guard"`
	Business   BusinessConfig   `yaml:"business"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	Environment     string  `yaml:"environment"`
	FrontendOrigin  string  `yaml:"frontend_origin"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`

	Env Environment `yaml:"-"` // parsed from Environment at load
}

// SchedulingConfig holds the availability parameters.
type SchedulingConfig struct {
	Timezone      string                       `yaml:"timezone"`
	BusinessHours map[int][]schedule.TimeRange `yaml:"business_hours"`

	Location *time.Location         `yaml:"-"` // resolved from Timezone
	Hours    schedule.BusinessHours `yaml:"-"` // resolved from BusinessHours
}

// GraphConfig holds the MS365 tenant application credentials. Every field
// can be overridden from the environment (MS365_TENANT_ID,
// MS365_CLIENT_ID, MS365_CLIENT_SECRET, MS365_USER_EMAIL).
type GraphConfig struct {
	TenantID     string `yaml:"tenant_id"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	UserEmail    string `yaml:"user_email"`
}

// TurnstileConfig holds the CAPTCHA secret (override: TURNSTILE_SECRET_KEY).
type TurnstileConfig struct {
	SecretKey string `yaml:"secret_key"`
}

// SpamGuardConfig holds the fixed-window rate-limit parameters.
type SpamGuardConfig struct {
	MaxRequests   int `yaml:"max_requests"`
	WindowMinutes int `yaml:"window_minutes"`
	SweepMinutes  int `yaml:"sweep_minutes"`
}

// BusinessConfig holds branding used in emails and confirmations.
type BusinessConfig struct {
	Name    string `yaml:"name"`
	SiteURL string `yaml:"site_url"`
}

// WorkerPoolConfig holds the configuration for the email worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// Load reads the configuration from the given path and applies defaults,
// environment overrides, and validation.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 3001
	}
	if cfg.Server.FrontendOrigin == "" {
		cfg.Server.FrontendOrigin = "http://localhost:5173"
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	switch cfg.Server.Environment {
	case "", string(EnvProduction):
		// Unset defaults to production so CAPTCHA policy fails closed.
		cfg.Server.Env = EnvProduction
	case string(EnvDevelopment):
		cfg.Server.Env = EnvDevelopment
	default:
		return nil, fmt.Errorf("unknown server.environment %q", cfg.Server.Environment)
	}

	if cfg.Scheduling.Timezone == "" {
		cfg.Scheduling.Timezone = "America/New_York"
	}
	loc, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Scheduling.Timezone, err)
	}
	cfg.Scheduling.Location = loc

	if len(cfg.Scheduling.BusinessHours) == 0 {
		cfg.Scheduling.Hours = schedule.DefaultBusinessHours()
	} else {
		hours := make(schedule.BusinessHours, len(cfg.Scheduling.BusinessHours))
		for day, ranges := range cfg.Scheduling.BusinessHours {
			if day < 0 || day > 6 {
				return nil, fmt.Errorf("business_hours: invalid weekday %d", day)
			}
			hours[time.Weekday(day)] = ranges
		}
		if err := hours.Validate(); err != nil {
			return nil, fmt.Errorf("business_hours: %w", err)
		}
		cfg.Scheduling.Hours = hours
	}

	envOverride(&cfg.Graph.TenantID, "MS365_TENANT_ID")
	envOverride(&cfg.Graph.ClientID, "MS365_CLIENT_ID")
	envOverride(&cfg.Graph.ClientSecret, "MS365_CLIENT_SECRET")
	envOverride(&cfg.Graph.UserEmail, "MS365_USER_EMAIL")
	envOverride(&cfg.Turnstile.SecretKey, "TURNSTILE_SECRET_KEY")

	if cfg.SpamGuard.MaxRequests <= 0 {
		cfg.SpamGuard.MaxRequests = 5
	}
	if cfg.SpamGuard.WindowMinutes <= 0 {
		cfg.SpamGuard.WindowMinutes = 15
	}
	if cfg.SpamGuard.SweepMinutes <= 0 {
		cfg.SpamGuard.SweepMinutes = 5
	}

	if cfg.Business.Name == "" {
		cfg.Business.Name = "Consultation Booking"
	}
	if cfg.Business.SiteURL == "" {
		cfg.Business.SiteURL = cfg.Server.FrontendOrigin
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}

	return &cfg, nil
}

// Package config reads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Metrics  MetricsConfig
	Sessions SessionConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
	Token   string
}

type SessionConfig struct {
	TTL           time.Duration
	Max           int
	SweepInterval time.Duration
	// RateLimit is the number of sessions one client may open per minute.
	RateLimit int
}

func Load() (*Config, error) {
	var errs []error

	cfg := &Config{
		Server: ServerConfig{
			Port:            getenv("PORT", "8080"),
			ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &errs),
		},
		Log: LogConfig{
			Level: getenv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Enabled: getenvBool("METRICS_ENABLED", true, &errs),
			Token:   os.Getenv("METRICS_TOKEN"),
		},
		Sessions: SessionConfig{
			TTL:           getenvDuration("SESSION_TTL", 30*time.Minute, &errs),
			Max:           getenvInt("SESSION_MAX", 10000, &errs),
			SweepInterval: getenvDuration("SESSION_SWEEP_INTERVAL", time.Minute, &errs),
			RateLimit:     getenvInt("SESSION_RATE_LIMIT", 30, &errs),
		},
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Sessions.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Sessions.SweepInterval <= 0 {
		return errors.New("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.Sessions.Max < 0 {
		return errors.New("SESSION_MAX must not be negative")
	}
	if c.Sessions.RateLimit <= 0 {
		return errors.New("SESSION_RATE_LIMIT must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int, errs *[]error) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", k, err))
		return def
	}
	return n
}

func getenvBool(k string, def bool, errs *[]error) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", k, err))
		return def
	}
	return b
}

func getenvDuration(k string, def time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", k, err))
		return def
	}
	return d
}

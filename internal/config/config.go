// Package config provides runtime configuration values for the storefront binaries.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// Config holds configuration knobs for the HTTP server and the CLI client.
type Config struct {
	Port            int
	APIBase         string
	LogLevel        string
	Env             string
	StrictQty       bool
	ShutdownTimeout time.Duration
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durenv(key string, def time.Duration) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Load collects configuration from the environment with defaults; flags in args win over env.
func Load(name string, args []string) (Config, error) {
	cfg := Config{
		Port:            atoienv("PORT", 5000),
		APIBase:         getenv("STOREFRONT_API_BASE", "http://localhost:5000"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		Env:             getenv("APP_ENV", "prod"),
		StrictQty:       boolenv("STOREFRONT_STRICT_QTY", false),
		ShutdownTimeout: durenv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP port to listen on")
	fs.StringVar(&cfg.APIBase, "api-base", cfg.APIBase, "base URL of the storefront API")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "dev or prod")
	fs.BoolVar(&cfg.StrictQty, "strict-qty", cfg.StrictQty, "reject quantities below 1")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("fs.Parse: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port[%d] is out of range", cfg.Port)
	}

	return cfg, nil
}

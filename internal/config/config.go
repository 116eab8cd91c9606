// Package config loads the two configuration shapes the module needs: a
// godotenv + environment-variable config for the CLI, and a YAML file for
// the HTTP server, modeled on kestfor-CrackHash's Config/Validate pattern.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CLI holds the environment-driven settings the solve/serve commands read
// on top of their explicit flags. A missing .env file is ignored: values
// then come from the process environment, or their defaults if unset.
type CLI struct {
	LogLevel string
}

// LoadCLI loads a .env file if present (ignoring its absence) and reads
// LOG_LEVEL from the environment.
func LoadCLI() *CLI {
	_ = godotenv.Load()
	return &CLI{LogLevel: getEnv("LOG_LEVEL", "info")}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// HTTPConfig configures the HTTP listener.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// AuthConfig configures JWT signing and the single bootstrap admin account.
type AuthConfig struct {
	JWTSecret     string        `yaml:"jwtSecret"`
	TokenTTL      time.Duration `yaml:"tokenTTL"`
	AdminUsername string        `yaml:"adminUsername"`
	AdminPassword string        `yaml:"adminPassword"`
}

// HistoryConfig configures the run-history SQLite store.
type HistoryConfig struct {
	DSN           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrationsDir"`
}

// JobsConfig configures the in-memory job table.
type JobsConfig struct {
	ResultTTL time.Duration `yaml:"resultTTL"`
}

// Server is the top-level `serve` command configuration, loaded from YAML.
type Server struct {
	HTTP    *HTTPConfig    `yaml:"http"`
	Auth    *AuthConfig    `yaml:"auth"`
	History *HistoryConfig `yaml:"history"`
	Jobs    *JobsConfig    `yaml:"jobs"`
}

// Validate enforces the required sub-configs are present and sane,
// mirroring kestfor-CrackHash's Config.Validate.
func (c *Server) Validate() error {
	if c.HTTP == nil {
		return fmt.Errorf("http config is required")
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("http.port must be positive")
	}
	if c.Auth == nil {
		return fmt.Errorf("auth config is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwtSecret is required")
	}
	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("auth.adminUsername and auth.adminPassword are required")
	}
	if c.History == nil {
		return fmt.Errorf("history config is required")
	}
	if c.History.DSN == "" {
		return fmt.Errorf("history.dsn is required")
	}
	if c.Jobs == nil {
		return fmt.Errorf("jobs config is required")
	}
	return nil
}

// LoadServer reads and validates a YAML server config from path, applying
// environment overrides for secrets that should not live in a committed
// file (PORT, JWT_SECRET, ADMIN_USERNAME, ADMIN_PASSWORD).
func LoadServer(path string) (*Server, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Server{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Server) {
	if v := os.Getenv("PORT"); v != "" && cfg.HTTP != nil {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = port
		}
	}
	if cfg.Auth == nil {
		return
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		cfg.Auth.AdminUsername = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Auth.AdminPassword = v
	}
}

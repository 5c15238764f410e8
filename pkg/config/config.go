// Package config provides configuration handling for pipecheck.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the application configuration
type Config struct {
	// Server configuration for the validation service
	Server ServerConfig `json:"server"`

	// Catalog configuration for node-type lookups
	Catalog CatalogConfig `json:"catalog"`

	// Logging configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Host to bind to
	Host string `json:"host"`

	// Port to listen on
	Port int `json:"port"`
}

// CatalogConfig contains schema-catalog settings
type CatalogConfig struct {
	// URL is the base URL of the catalog service
	URL string `json:"url"`

	// Token is the bearer token for catalog requests
	Token string `json:"token"`

	// CacheTTLSeconds is how long catalog entries stay cached
	CacheTTLSeconds int `json:"cache_ttl_seconds"`

	// Cache selects the cache backend
	Cache string `json:"cache"` // "memory", "redis"

	// Redis configuration (when Cache is "redis")
	Redis RedisConfig `json:"redis"`
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	// Addr is the redis host:port
	Addr string `json:"addr"`

	// Password for the redis server
	Password string `json:"password"`

	// DB is the redis database number
	DB int `json:"db"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	// Level is the logging level
	Level string `json:"level"` // "debug", "info", "warn", "error"

	// Format is the log format
	Format string `json:"format"` // "json", "text"
}

// LoadConfig loads the configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Catalog: CatalogConfig{
			CacheTTLSeconds: 300,
			Cache:           "memory",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
	cfg.applyEnv()
	return cfg
}

// applyEnv overrides settings from environment variables. A .env file, if
// present, is loaded by the entry points before this runs.
func (c *Config) applyEnv() {
	if v := os.Getenv("PIPECHECK_CATALOG_URL"); v != "" {
		c.Catalog.URL = v
	}
	if v := os.Getenv("PIPECHECK_CATALOG_TOKEN"); v != "" {
		c.Catalog.Token = v
	}
	if v := os.Getenv("PIPECHECK_REDIS_ADDR"); v != "" {
		c.Catalog.Redis.Addr = v
	}
	if v := os.Getenv("PIPECHECK_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("PIPECHECK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

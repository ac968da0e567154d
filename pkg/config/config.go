package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all SDK configuration. The catalog, commerce and auth
// base URLs are kept distinct on purpose: the backend currently routes
// sibling resource groups through different hosts, and the client must
// not unify them until the infrastructure does.
type Config struct {
	CatalogBaseURL    string        `json:"catalog_base_url"`
	CommerceBaseURL   string        `json:"commerce_base_url"`
	AuthBaseURL       string        `json:"auth_base_url"`
	BypassHeaderName  string        `json:"bypass_header_name"`
	BypassHeaderValue string        `json:"bypass_header_value"`
	RequestTimeout    time.Duration `json:"request_timeout"`
	RedisURL          string        `json:"redis_url"`
	Environment       string        `json:"environment"`
	LogLevel          string        `json:"log_level"`
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	config := &Config{
		CatalogBaseURL:    getEnv("CATALOG_API_BASE_URL", ""),
		CommerceBaseURL:   getEnv("COMMERCE_API_BASE_URL", ""),
		AuthBaseURL:       getEnv("AUTH_API_BASE_URL", ""),
		BypassHeaderName:  getEnv("BYPASS_HEADER_NAME", "ngrok-skip-browser-warning"),
		BypassHeaderValue: getEnv("BYPASS_HEADER_VALUE", "true"),
		RequestTimeout:    time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		RedisURL:          getEnv("REDIS_URL", ""),
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []string

	if c.CatalogBaseURL == "" {
		errs = append(errs, "CATALOG_API_BASE_URL is required")
	}
	if c.CommerceBaseURL == "" {
		errs = append(errs, "COMMERCE_API_BASE_URL is required")
	}
	if c.AuthBaseURL == "" {
		errs = append(errs, "AUTH_API_BASE_URL is required")
	}

	for _, u := range []string{c.CatalogBaseURL, c.CommerceBaseURL, c.AuthBaseURL} {
		if u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			errs = append(errs, fmt.Sprintf("base URL %q must start with http:// or https://", u))
		}
	}

	if c.RequestTimeout <= 0 {
		errs = append(errs, "REQUEST_TIMEOUT_SECONDS must be positive")
	}

	validEnvs := []string{"development", "staging", "production"}
	if !contains(validEnvs, c.Environment) {
		errs = append(errs, fmt.Sprintf("ENVIRONMENT must be one of: %s", strings.Join(validEnvs, ", ")))
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// BypassHeader returns the tunnel-bypass header as a one-entry map,
// or an empty map when the header is disabled by blanking its name.
func (c *Config) BypassHeader() map[string]string {
	if c.BypassHeaderName == "" {
		return map[string]string{}
	}
	return map[string]string{c.BypassHeaderName: c.BypassHeaderValue}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer with a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

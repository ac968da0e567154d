package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		CatalogBaseURL:    "https://catalog.example.com/api",
		CommerceBaseURL:   "https://commerce.example.com/api",
		AuthBaseURL:       "https://auth.example.com",
		BypassHeaderName:  "ngrok-skip-browser-warning",
		BypassHeaderValue: "true",
		RequestTimeout:    30 * time.Second,
		Environment:       "development",
		LogLevel:          "info",
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_API_BASE_URL", "https://catalog.example.com")
	t.Setenv("COMMERCE_API_BASE_URL", "https://commerce.example.com")
	t.Setenv("AUTH_API_BASE_URL", "https://auth.example.com")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.BypassHeaderName != "ngrok-skip-browser-warning" {
		t.Errorf("Expected default bypass header name, got %q", config.BypassHeaderName)
	}
	if config.BypassHeaderValue != "true" {
		t.Errorf("Expected default bypass header value, got %q", config.BypassHeaderValue)
	}
	if config.RequestTimeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %v", config.RequestTimeout)
	}
	if config.Environment != "development" || config.LogLevel != "info" {
		t.Errorf("Expected default environment/log level, got %s/%s", config.Environment, config.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_API_BASE_URL", "https://catalog.example.com")
	t.Setenv("COMMERCE_API_BASE_URL", "https://commerce.example.com")
	t.Setenv("AUTH_API_BASE_URL", "https://auth.example.com")
	t.Setenv("BYPASS_HEADER_NAME", "X-Gateway-Skip")
	t.Setenv("BYPASS_HEADER_VALUE", "1")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "error")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.BypassHeaderName != "X-Gateway-Skip" || config.BypassHeaderValue != "1" {
		t.Error("Expected bypass header override")
	}
	if config.RequestTimeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", config.RequestTimeout)
	}
	if !config.IsProduction() {
		t.Error("Expected production environment")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	config := &Config{
		Environment: "space",
		LogLevel:    "loud",
	}

	err := config.Validate()
	if err == nil {
		t.Fatal("Expected validation to fail")
	}

	msg := err.Error()
	for _, want := range []string{
		"CATALOG_API_BASE_URL is required",
		"COMMERCE_API_BASE_URL is required",
		"AUTH_API_BASE_URL is required",
		"REQUEST_TIMEOUT_SECONDS must be positive",
		"ENVIRONMENT must be one of",
		"LOG_LEVEL must be one of",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected error to mention %q, got: %s", want, msg)
		}
	}
}

func TestValidate_RejectsBadScheme(t *testing.T) {
	config := validConfig()
	config.CatalogBaseURL = "ftp://catalog.example.com"

	if err := config.Validate(); err == nil {
		t.Error("Expected scheme validation to fail")
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Expected valid config, got: %v", err)
	}
}

func TestBypassHeader(t *testing.T) {
	config := validConfig()

	headers := config.BypassHeader()
	if headers["ngrok-skip-browser-warning"] != "true" {
		t.Errorf("Expected bypass header map, got %v", headers)
	}

	config.BypassHeaderName = ""
	if len(config.BypassHeader()) != 0 {
		t.Error("Expected empty map when header name is blank")
	}
}

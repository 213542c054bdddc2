package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: "https://analyzer.example.com"
  token: "test-token"
  timeout_seconds: 30
poll:
  interval_ms: 250
  max_attempts: 10
log:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://analyzer.example.com" {
		t.Errorf("Expected base URL from file, got %s", cfg.API.BaseURL)
	}
	if cfg.API.Token != "test-token" {
		t.Errorf("Expected token from file, got %s", cfg.API.Token)
	}
	if cfg.API.RequestTimeout() != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.API.RequestTimeout())
	}
	if cfg.Poll.Interval() != 250*time.Millisecond {
		t.Errorf("Expected 250ms interval, got %v", cfg.Poll.Interval())
	}
	if cfg.Poll.MaxAttempts != 10 {
		t.Errorf("Expected 10 attempts, got %d", cfg.Poll.MaxAttempts)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("Expected default base URL, got %s", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 60 {
		t.Errorf("Expected default timeout 60s, got %d", cfg.API.TimeoutSeconds)
	}
	if cfg.Poll.Interval() != 500*time.Millisecond {
		t.Errorf("Expected default interval 500ms, got %v", cfg.Poll.Interval())
	}
	if cfg.Poll.MaxAttempts != 60 {
		t.Errorf("Expected default 60 attempts, got %d", cfg.Poll.MaxAttempts)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Unexpected default log config: %+v", cfg.Log)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LEGALSCAN_API_BASE_URL", "https://env.example.com")
	t.Setenv("LEGALSCAN_POLL_MAX_ATTEMPTS", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("Expected env base URL, got %s", cfg.API.BaseURL)
	}
	if cfg.Poll.MaxAttempts != 5 {
		t.Errorf("Expected env max attempts 5, got %d", cfg.Poll.MaxAttempts)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "api: [not a mapping")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadValidation(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: "not-a-url"
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for bad base URL")
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, `
log:
  level: "verbose"
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for unknown log level")
	}
}

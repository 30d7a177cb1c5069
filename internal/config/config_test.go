package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TASKAPP_BASE_URL", "TASKAPP_LOG_LEVEL", "TASKAPP_LOG_FILE", "TASKAPP_TOAST_DURATION",
		"TASKAPP_HTTP_TIMEOUT", "TASKAPP_SERVE_ADDR", "TASKAPP_SERVE_DATA_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info level, got %q", cfg.LogLevel)
	}
	if cfg.ToastDuration != 5*time.Second {
		t.Errorf("expected 5s toast duration, got %s", cfg.ToastDuration)
	}
	if cfg.HTTPTimeout != 0 {
		t.Errorf("expected no timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.ServeAddr != ":3000" {
		t.Errorf("expected :3000, got %q", cfg.ServeAddr)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKAPP_BASE_URL", "http://localhost:9000/data")
	t.Setenv("TASKAPP_TOAST_DURATION", "2s")
	t.Setenv("TASKAPP_HTTP_TIMEOUT", "10s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "http://localhost:9000/data" {
		t.Errorf("expected env base URL, got %q", cfg.BaseURL)
	}
	if cfg.ToastDuration != 2*time.Second {
		t.Errorf("expected 2s, got %s", cfg.ToastDuration)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s, got %s", cfg.HTTPTimeout)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "TASKAPP_BASE_URL=http://127.0.0.1:3000/data\nTASKAPP_LOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("TASKAPP_BASE_URL")
		os.Unsetenv("TASKAPP_LOG_LEVEL")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "http://127.0.0.1:3000/data" {
		t.Errorf("expected dotenv base URL, got %q", cfg.BaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug level, got %q", cfg.LogLevel)
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKAPP_BASE_URL", "ftp://example.com/data")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for non-http base URL")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "https://x.test/data", ToastDuration: time.Second}, false},
		{"empty base URL", Config{ToastDuration: time.Second}, true},
		{"missing host", Config{BaseURL: "http:///data", ToastDuration: time.Second}, true},
		{"zero toast", Config{BaseURL: "https://x.test/data"}, true},
		{"negative timeout", Config{BaseURL: "https://x.test/data", ToastDuration: time.Second, HTTPTimeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

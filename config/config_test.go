package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Port != "8080" || cfg.App.Env != "development" {
		t.Errorf("App = %+v", cfg.App)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	want := SessionConfig{Backend: SessionBackendMemory, TTL: 24 * time.Hour, CookieName: "estatehub_session"}
	if cfg.Session != want {
		t.Errorf("Session = %+v, want %+v", cfg.Session, want)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"*"}) {
		t.Errorf("CORS = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadEnvFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nSESSION_BACKEND=redis\nSESSION_TTL=30m\nREDIS_DB=2\nCORS_ALLOWED_ORIGINS=https://a.example, https://b.example\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("APP_PORT", "7070")

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Port != "7070" {
		t.Errorf("environment should win over .env, got port %q", cfg.App.Port)
	}
	if cfg.Session.Backend != SessionBackendRedis || cfg.Session.TTL != 30*time.Minute {
		t.Errorf("Session = %+v", cfg.Session)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d", cfg.Redis.DB)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("CORS = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SESSION_TTL", "soon"},
		{"SESSION_TTL", "-1h"},
		{"SESSION_BACKEND", "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := load(filepath.Join(t.TempDir(), ".env")); err == nil {
				t.Errorf("expected an error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "STORAGE_BACKEND", "SQLITE_PATH", "FIREBASE_PROJECT_ID",
		"GOOGLE_APPLICATION_CREDENTIALS", "FIREBASE_AUTH", "DEFAULT_AVATAR", "TELEMETRY_INTERVAL",
		"ADMIN_RESOLVE_POLICY", "STORE_QUOTA_BYTES", "STORE_MAX_CLIENTS", "STORE_CLIENT_IDLE",
		"COOKIE_SAMESITE", "COOKIE_MAX_AGE", "COOKIE_SECURE",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.StorageBackend != BackendMemory {
		t.Fatalf("unexpected backend: %s", cfg.StorageBackend)
	}
	if cfg.DefaultAvatar != "./images/default-avatar.svg" {
		t.Fatalf("unexpected avatar: %s", cfg.DefaultAvatar)
	}
	if cfg.TelemetryInterval != 30*time.Second {
		t.Fatalf("unexpected interval: %s", cfg.TelemetryInterval)
	}
	if cfg.AdminResolvePolicy != PolicyOverwrite {
		t.Fatalf("unexpected policy: %s", cfg.AdminResolvePolicy)
	}
	if cfg.StoreQuotaBytes != 5<<20 {
		t.Fatalf("unexpected quota: %d", cfg.StoreQuotaBytes)
	}
	if cfg.StoreMaxClients != 10000 || cfg.StoreClientIdle != 24*time.Hour {
		t.Fatalf("unexpected client bounds: %d %s", cfg.StoreMaxClients, cfg.StoreClientIdle)
	}
	if cfg.Cookie.SameSite != http.SameSiteLaxMode || cfg.Cookie.Secure {
		t.Fatalf("unexpected cookie config: %+v", cfg.Cookie)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("expected no origins, got %v", cfg.AllowedOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("TELEMETRY_INTERVAL", "5s")
	t.Setenv("ADMIN_RESOLVE_POLICY", "preserve")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_SAMESITE", "strict")
	t.Setenv("STORE_MAX_CLIENTS", "50")
	t.Setenv("STORE_CLIENT_IDLE", "1h")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.StorageBackend != BackendSQLite || cfg.SQLitePath != "/tmp/x.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.TelemetryInterval != 5*time.Second {
		t.Fatalf("unexpected interval: %s", cfg.TelemetryInterval)
	}
	if cfg.AdminResolvePolicy != PolicyPreserve {
		t.Fatalf("unexpected policy: %s", cfg.AdminResolvePolicy)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if cfg.StoreMaxClients != 50 || cfg.StoreClientIdle != time.Hour {
		t.Fatalf("unexpected client bounds: %d %s", cfg.StoreMaxClients, cfg.StoreClientIdle)
	}
	if !cfg.Cookie.Secure || cfg.Cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("unexpected cookie config: %+v", cfg.Cookie)
	}
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"backend", "STORAGE_BACKEND", "redis"},
		{"policy", "ADMIN_RESOLVE_POLICY", "merge"},
		{"interval", "TELEMETRY_INTERVAL", "soon"},
		{"negative interval", "TELEMETRY_INTERVAL", "-1s"},
		{"quota", "STORE_QUOTA_BYTES", "lots"},
		{"max clients", "STORE_MAX_CLIENTS", "many"},
		{"negative max clients", "STORE_MAX_CLIENTS", "-1"},
		{"client idle", "STORE_CLIENT_IDLE", "forever"},
		{"samesite", "COOKIE_SAMESITE", "sometimes"},
		{"firestore without project", "STORAGE_BACKEND", "firestore"},
		{"auth without project", "FIREBASE_AUTH", "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := loadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("AGRIC_TEST_VALUE=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("AGRIC_TEST_VALUE", "")
	os.Unsetenv("AGRIC_TEST_VALUE")
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("load env file: %v", err)
	}
	if got := os.Getenv("AGRIC_TEST_VALUE"); got != "from-dotenv" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}

func TestGetEnvBoolFallsBackOnGarbage(t *testing.T) {
	t.Setenv("AGRIC_BOOL", "maybe")
	if !getEnvBool("AGRIC_BOOL", true) {
		t.Fatalf("expected fallback true")
	}
}

func TestParseCSVTrimsValues(t *testing.T) {
	got := parseCSV("a, b,, ,c")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected values: %v", got)
	}
}

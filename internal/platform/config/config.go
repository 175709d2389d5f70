package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendMemory    = "memory"
	BackendSQLite    = "sqlite"
	BackendFirestore = "firestore"
)

// Admin resolve policies selectable with ADMIN_RESOLVE_POLICY.
const (
	PolicyOverwrite = "overwrite"
	PolicyPreserve  = "preserve"
)

const (
	defaultPort              = "8080"
	defaultAvatar            = "./images/default-avatar.svg"
	defaultSQLitePath        = "agric-empower.db"
	defaultTelemetryInterval = 30 * time.Second
	defaultQuotaBytes        = 5 << 20
	defaultMaxClients        = 10000
	defaultClientIdle        = 24 * time.Hour
)

// Config is the process configuration. It is built once in main and handed
// to each component explicitly.
type Config struct {
	Port           string
	AllowedOrigins []string

	StorageBackend  string
	SQLitePath      string
	StoreQuotaBytes int
	// StoreMaxClients and StoreClientIdle bound the memory backend.
	StoreMaxClients int
	StoreClientIdle time.Duration

	FirebaseProjectID            string
	GoogleApplicationCredentials string
	FirebaseAuth                 bool

	DefaultAvatar      string
	TelemetryInterval  time.Duration
	AdminResolvePolicy string

	Cookie CookieConfig
}

// CookieConfig controls the client cookie.
type CookieConfig struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:                         getEnv("PORT", defaultPort),
		AllowedOrigins:               parseCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		StorageBackend:               strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		SQLitePath:                   getEnv("SQLITE_PATH", defaultSQLitePath),
		FirebaseProjectID:            os.Getenv("FIREBASE_PROJECT_ID"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirebaseAuth:                 getEnvBool("FIREBASE_AUTH", false),
		DefaultAvatar:                getEnv("DEFAULT_AVATAR", defaultAvatar),
		AdminResolvePolicy:           strings.ToLower(getEnv("ADMIN_RESOLVE_POLICY", PolicyOverwrite)),
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendSQLite:
	case BackendFirestore:
		if cfg.FirebaseProjectID == "" {
			return Config{}, errors.New("FIREBASE_PROJECT_ID must be set for the firestore backend")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	if cfg.FirebaseAuth && cfg.FirebaseProjectID == "" {
		return Config{}, errors.New("FIREBASE_PROJECT_ID must be set when FIREBASE_AUTH is enabled")
	}

	switch cfg.AdminResolvePolicy {
	case PolicyOverwrite, PolicyPreserve:
	default:
		return Config{}, fmt.Errorf("unknown ADMIN_RESOLVE_POLICY %q", cfg.AdminResolvePolicy)
	}

	interval, err := time.ParseDuration(getEnv("TELEMETRY_INTERVAL", defaultTelemetryInterval.String()))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TELEMETRY_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return Config{}, errors.New("TELEMETRY_INTERVAL must be positive")
	}
	cfg.TelemetryInterval = interval

	quota, err := strconv.Atoi(getEnv("STORE_QUOTA_BYTES", strconv.Itoa(defaultQuotaBytes)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid STORE_QUOTA_BYTES: %w", err)
	}
	cfg.StoreQuotaBytes = quota

	maxClients, err := strconv.Atoi(getEnv("STORE_MAX_CLIENTS", strconv.Itoa(defaultMaxClients)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid STORE_MAX_CLIENTS: %w", err)
	}
	if maxClients < 0 {
		return Config{}, errors.New("STORE_MAX_CLIENTS must not be negative")
	}
	cfg.StoreMaxClients = maxClients

	idle, err := time.ParseDuration(getEnv("STORE_CLIENT_IDLE", defaultClientIdle.String()))
	if err != nil {
		return Config{}, fmt.Errorf("invalid STORE_CLIENT_IDLE: %w", err)
	}
	if idle < 0 {
		return Config{}, errors.New("STORE_CLIENT_IDLE must not be negative")
	}
	cfg.StoreClientIdle = idle

	sameSite, err := parseSameSite(getEnv("COOKIE_SAMESITE", "lax"))
	if err != nil {
		return Config{}, err
	}
	maxAge, err := strconv.Atoi(getEnv("COOKIE_MAX_AGE", "31536000"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid COOKIE_MAX_AGE: %w", err)
	}
	cfg.Cookie = CookieConfig{
		Secure:   getEnvBool("COOKIE_SECURE", false),
		SameSite: sameSite,
		MaxAge:   maxAge,
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(value string) []string {
	parts := strings.Split(value, ",")
	var results []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func parseSameSite(value string) (http.SameSite, error) {
	switch strings.ToLower(value) {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return http.SameSiteDefaultMode, fmt.Errorf("invalid COOKIE_SAMESITE %q", value)
	}
}

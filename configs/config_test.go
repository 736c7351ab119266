package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	// point godotenv at a file that does not exist
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" || cfg.DBSource != "cafe.db" {
		t.Errorf("DB = %s %s", cfg.DBDriver, cfg.DBSource)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if !cfg.UsesDefaultSecret() {
		t.Error("expected the default session secret")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.test,https://b.test")
	t.Setenv("PAGE_SIZE", "500")
	t.Setenv("STAFF_LOGIN", "barista")
	t.Setenv("SEED_DEMO", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBDriver != "postgres" {
		t.Errorf("got port %q driver %q", cfg.Port, cfg.DBDriver)
	}
	if cfg.UsesDefaultSecret() {
		t.Error("secret should come from env")
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.PageSize != 20 {
		t.Errorf("PageSize = %d, want clamp to 20", cfg.PageSize)
	}
	if cfg.Seed.StaffLogin != "barista" || !cfg.Seed.Demo {
		t.Errorf("Seed = %+v", cfg.Seed)
	}
}

func TestLoadConfigDotEnvDoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=7000\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "7001")
	// Setenv registers the restore; unset so the file value applies
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "7001" {
		t.Errorf("Port = %q, env must win", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want value from file", cfg.LogLevel)
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger("debug", "console"); err != nil {
		t.Errorf("console logger: %v", err)
	}
	if _, err := NewLogger("loud", "json"); err == nil {
		t.Error("expected bad level error")
	}
	if _, err := NewLogger("info", "xml"); err == nil {
		t.Error("expected bad format error")
	}
}

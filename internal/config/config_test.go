package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("DISCORD_BOT_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.MigrationsPath != "migrations" {
		t.Errorf("MigrationsPath = %q, want migrations", cfg.MigrationsPath)
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %q, want en", cfg.DefaultLocale)
	}
	if !strings.HasPrefix(cfg.DatabaseURL, "postgres://") {
		t.Errorf("DatabaseURL = %q, want local postgres default", cfg.DatabaseURL)
	}
}

func TestLoadRejectsBadDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "://missing-scheme")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed DATABASE_URL")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "local" || cfg.Server.Port != "8080" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Quiz.TTL != 10*time.Minute || cfg.Redis.TTL != 10*time.Minute {
		t.Fatalf("unexpected ttl defaults quiz=%v redis=%v", cfg.Quiz.TTL, cfg.Redis.TTL)
	}
	if cfg.Quiz.DefaultSet != "basics" {
		t.Fatalf("unexpected default set %q", cfg.Quiz.DefaultSet)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: "9090"
redis:
  addr: "localhost:6379"
  ttl: 30s
quiz:
  ttl: 1m
  default_set: capitals
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("POSTGRES_URL", "postgres://quiz@localhost/quizdb")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Redis.TTL != 30*time.Second || cfg.Quiz.TTL != time.Minute {
		t.Fatalf("unexpected durations redis=%v quiz=%v", cfg.Redis.TTL, cfg.Quiz.TTL)
	}
	if cfg.Postgres.URL != "postgres://quiz@localhost/quizdb" {
		t.Fatalf("env override missing, got %q", cfg.Postgres.URL)
	}
	if cfg.Env != "production" || cfg.Quiz.DefaultSet != "capitals" {
		t.Fatalf("unexpected env=%q default_set=%q", cfg.Env, cfg.Quiz.DefaultSet)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed file")
	}
}

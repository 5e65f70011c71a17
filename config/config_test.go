package config

import (
	"net/url"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "NODE_ENV", "PORT", "DATABASE_URL",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"SEED_DEMO_DATA", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Env != "development" {
		t.Fatalf("expected development env, got %q", cfg.Env)
	}
	if cfg.Port != "3001" {
		t.Fatalf("expected port 3001, got %q", cfg.Port)
	}
	if !cfg.SeedDemoData {
		t.Fatal("expected demo seed enabled outside production")
	}
	if len(cfg.CORSAllowOrigins) != 1 || cfg.CORSAllowOrigins[0] != "*" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowOrigins)
	}
}

func TestLoad_NodeEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "production")

	cfg := Load()
	if !cfg.IsProduction() {
		t.Fatalf("expected production from NODE_ENV, got %q", cfg.Env)
	}
	if cfg.SeedDemoData {
		t.Fatal("expected demo seed disabled in production by default")
	}
}

func TestLoad_SeedOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_DEMO_DATA", "true")

	if cfg := Load(); !cfg.SeedDemoData {
		t.Fatal("expected explicit SEED_DEMO_DATA to win")
	}
}

func TestLoad_CORSList(t *testing.T) {
	clearEnv(t)
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://app.numberwise.nl ,")

	cfg := Load()
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://app.numberwise.nl" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowOrigins)
	}
}

func TestDSN_DiscreteFields(t *testing.T) {
	cfg := &Config{
		Env:        "production",
		DBHost:     "db.internal",
		DBPort:     "6432",
		DBUser:     "dash",
		DBPassword: "p@ss word",
		DBName:     "numberwise",
	}

	u, err := url.Parse(cfg.DSN())
	if err != nil {
		t.Fatalf("parse DSN: %v", err)
	}
	if u.Hostname() != "db.internal" || u.Port() != "6432" {
		t.Fatalf("unexpected host: %s", u.Host)
	}
	if pw, _ := u.User.Password(); pw != "p@ss word" {
		t.Fatalf("password not preserved: %q", pw)
	}
	if u.Path != "/numberwise" {
		t.Fatalf("unexpected path: %s", u.Path)
	}
	if got := u.Query().Get("sslmode"); got != "require" {
		t.Fatalf("expected sslmode=require, got %q", got)
	}
}

func TestDSN_DatabaseURL(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		url     string
		sslmode string
	}{
		{"development adds disable", "development", "postgres://u:p@localhost:5432/db", "disable"},
		{"production adds require", "production", "postgres://u:p@db:5432/db", "require"},
		{"explicit sslmode kept", "production", "postgres://u:p@db:5432/db?sslmode=verify-full", "verify-full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Env: tt.env, DatabaseURL: tt.url}
			u, err := url.Parse(cfg.DSN())
			if err != nil {
				t.Fatalf("parse DSN: %v", err)
			}
			if got := u.Query().Get("sslmode"); got != tt.sslmode {
				t.Fatalf("expected sslmode=%s, got %q", tt.sslmode, got)
			}
		})
	}
}

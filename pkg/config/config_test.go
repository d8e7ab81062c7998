package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if !cfg.App.IsDev() {
		t.Fatal("expected dev env by default")
	}
	if cfg.Catalog.FetchTimeout != 10*time.Second {
		t.Fatalf("unexpected fetch timeout %v", cfg.Catalog.FetchTimeout)
	}
	if cfg.Session.MaxSessions != 10000 {
		t.Fatalf("unexpected max sessions %d", cfg.Session.MaxSessions)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_APP_ENV", "prod")
	t.Setenv("STOREFRONT_CATALOG_SOURCE_URL", "https://cdn.example.com/data/products.json")
	t.Setenv("STOREFRONT_SESSION_IDLE_TTL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatal("expected prod env")
	}
	if cfg.Catalog.SourceURL != "https://cdn.example.com/data/products.json" {
		t.Fatalf("unexpected source url %q", cfg.Catalog.SourceURL)
	}
	if cfg.Session.IdleTTL != 5*time.Minute {
		t.Fatalf("unexpected idle ttl %v", cfg.Session.IdleTTL)
	}
}

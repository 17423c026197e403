package config

import "testing"

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/x")
	t.Setenv("PORT", "")
	t.Setenv("PUBLIC_PROJECT_LIMIT", "")
	t.Setenv("FRONTEND_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.PublicProjectLimit != 10 {
		t.Errorf("expected default public project limit 10, got %d", cfg.PublicProjectLimit)
	}
}

func TestLoad_PublicLimitDisabled(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/x")
	t.Setenv("PUBLIC_PROJECT_LIMIT", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PublicProjectLimit != 0 {
		t.Errorf("expected cap disabled (0), got %d", cfg.PublicProjectLimit)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/x")
	t.Setenv("PUBLIC_PROJECT_LIMIT", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PublicProjectLimit != 10 {
		t.Errorf("expected fallback 10 for unparseable limit, got %d", cfg.PublicProjectLimit)
	}
}

package config

import "testing"

func TestLoadDefault(t *testing.T) {
	t.Setenv("TRAILFOOD_ENV", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("expected development, got %q", cfg.Env)
	}
	if !cfg.Debug || cfg.Testing {
		t.Errorf("unexpected flags: %+v", cfg)
	}
	if cfg.DBPath == "" || cfg.DBPath == ":memory:" {
		t.Errorf("expected file-backed database, got %q", cfg.DBPath)
	}
}

func TestLoadTesting(t *testing.T) {
	cfg, err := Load(EnvTesting)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != ":memory:" {
		t.Errorf("expected in-memory database, got %q", cfg.DBPath)
	}
	if !cfg.Testing {
		t.Error("expected testing flag")
	}
}

func TestLoadProductionOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "/var/lib/trailfood/foods.sqlite3")

	cfg, err := Load(EnvProduction)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/var/lib/trailfood/foods.sqlite3" {
		t.Errorf("expected DATABASE_URL override, got %q", cfg.DBPath)
	}
	if cfg.Debug {
		t.Error("expected debug off in production")
	}
}

func TestLoadFromEnvVar(t *testing.T) {
	t.Setenv("TRAILFOOD_ENV", EnvTesting)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != EnvTesting {
		t.Errorf("expected testing from TRAILFOOD_ENV, got %q", cfg.Env)
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("staging"); err == nil {
		t.Error("expected error for unknown environment")
	}
}

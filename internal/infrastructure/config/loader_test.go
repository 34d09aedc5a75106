package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
	if cfg.Preferences.DefaultDirection != "auto" {
		t.Errorf("default direction = %q, want auto", cfg.Preferences.DefaultDirection)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if cfg.History.Backend != "sqlite" {
		t.Errorf("history backend = %q, want sqlite", cfg.History.Backend)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "preferences:\n  default_direction: to-bash\n"
	if err := os.WriteFile(path, []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Preferences.DefaultDirection != "to-bash" {
		t.Errorf("direction = %q, want to-bash", cfg.Preferences.DefaultDirection)
	}
	if cfg.Execution.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d, want hydrated default 30", cfg.Execution.TimeoutSeconds)
	}
	if cfg.History.RetainDays != 90 {
		t.Errorf("retain days = %d, want hydrated default 90", cfg.History.RetainDays)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

package config_test

import (
	"os"
	"testing"

	"taskflow/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "TASKFLOW_DEBUG", "TASKFLOW_QUIET", "TASKFLOW_SEED", "TASKFLOW_TODAY")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Seed {
		t.Error("expected seed enabled by default")
	}
	if cfg.Debug || cfg.Quiet {
		t.Errorf("expected debug and quiet off, got %+v", cfg)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TASKFLOW_DEBUG", "true")
	t.Setenv("TASKFLOW_SEED", "false")
	t.Setenv("TASKFLOW_TODAY", "2025-06-01")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Debug {
		t.Error("expected debug on")
	}
	if cfg.Seed {
		t.Error("expected seed off")
	}
	if cfg.Today != "2025-06-01" {
		t.Errorf("expected today 2025-06-01, got %q", cfg.Today)
	}
}

func TestLoad_InvalidToday(t *testing.T) {
	t.Setenv("TASKFLOW_TODAY", "June 1st")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("TASKFLOW_SEED", "maybe")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for malformed bool")
	}
}

// unsetEnv removes keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

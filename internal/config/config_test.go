package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		old, had := os.LookupEnv(key)
		_ = os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(key, old)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, "TABGEN_LOG_LEVEL", "TABGEN_ROWS", "TABGEN_SEED")
	chdirTemp(t)

	cfg := Load()
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
	if cfg.Rows != 100 {
		t.Fatalf("expected default rows, got %d", cfg.Rows)
	}
	if cfg.Seed != nil {
		t.Fatalf("expected nil seed, got %d", *cfg.Seed)
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	clearEnv(t, "TABGEN_LOG_LEVEL", "TABGEN_ROWS", "TABGEN_SEED")
	chdirTemp(t)

	_ = os.Setenv("TABGEN_LOG_LEVEL", "debug")
	_ = os.Setenv("TABGEN_ROWS", "250")
	_ = os.Setenv("TABGEN_SEED", "42")

	cfg := Load()
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug, got %q", cfg.LogLevel)
	}
	if cfg.Rows != 250 {
		t.Fatalf("expected 250, got %d", cfg.Rows)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Fatalf("expected seed 42, got %#v", cfg.Seed)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t, "TABGEN_LOG_LEVEL", "TABGEN_ROWS", "TABGEN_SEED")
	d := chdirTemp(t)

	content := "TABGEN_LOG_LEVEL=warn\nTABGEN_ROWS=7\n# comment\nTABGEN_SEED=9\n"
	if err := os.WriteFile(filepath.Join(d, ".env"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected TABGEN_LOG_LEVEL from .env, got %q", cfg.LogLevel)
	}
	if cfg.Rows != 7 {
		t.Fatalf("expected TABGEN_ROWS from .env, got %d", cfg.Rows)
	}
	if cfg.Seed == nil || *cfg.Seed != 9 {
		t.Fatalf("expected TABGEN_SEED from .env, got %#v", cfg.Seed)
	}
}

func TestLoad_EnvironmentWinsOverDotEnv(t *testing.T) {
	clearEnv(t, "TABGEN_LOG_LEVEL", "TABGEN_ROWS", "TABGEN_SEED")
	d := chdirTemp(t)

	if err := os.WriteFile(filepath.Join(d, ".env"), []byte("TABGEN_LOG_LEVEL=warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_ = os.Setenv("TABGEN_LOG_LEVEL", "error")

	cfg := Load()
	if cfg.LogLevel != "error" {
		t.Fatalf("environment should win, got %q", cfg.LogLevel)
	}
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	d := t.TempDir()
	if err := os.Chdir(d); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	return d
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.MaxResults != 50 {
		t.Errorf("expected max_results 50, got %d", cfg.Server.MaxResults)
	}
	if cfg.Server.MinPrefix != 2 {
		t.Errorf("expected min_prefix 2, got %d", cfg.Server.MinPrefix)
	}
	if cfg.Server.MaxCandidates != 200 {
		t.Errorf("expected max_candidates 200, got %d", cfg.Server.MaxCandidates)
	}
	if cfg.Server.MaxActions != 10 {
		t.Errorf("expected max_actions 10, got %d", cfg.Server.MaxActions)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if cfg.Server.MaxResults != 50 {
		t.Errorf("expected default max_results, got %d", cfg.Server.MaxResults)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file at %s: %v", path, err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	want := DefaultConfig()
	want.Server.MaxResults = 7
	want.Dict.Dir = "/tmp/words"
	if err := SaveConfig(want, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.Server.MaxResults != 7 {
		t.Errorf("expected max_results 7, got %d", got.Server.MaxResults)
	}
	if got.Dict.Dir != "/tmp/words" {
		t.Errorf("expected dict dir %q, got %q", "/tmp/words", got.Dict.Dir)
	}
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[server]\nmax_results = 5\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.MaxResults != 5 {
		t.Errorf("expected max_results 5, got %d", cfg.Server.MaxResults)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Server.MinPrefix != 2 {
		t.Errorf("expected min_prefix 2, got %d", cfg.Server.MinPrefix)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if cfg.Server.MaxResults != 50 {
		t.Errorf("expected defaults on error, got max_results %d", cfg.Server.MaxResults)
	}
}

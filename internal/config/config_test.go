package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_ExplicitFile(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
default_agents:
  - claude
  - codex
theme: light
analytics:
  enabled: true
  user_id: abc-123
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	Init()
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.DefaultAgents) != 2 || cfg.DefaultAgents[0] != "claude" {
		t.Errorf("DefaultAgents = %v", cfg.DefaultAgents)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if !cfg.Analytics.Enabled || cfg.Analytics.UserID != "abc-123" {
		t.Errorf("Analytics = %+v", cfg.Analytics)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	reset(t)
	Init()
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	reset(t)
	t.Chdir(t.TempDir())

	Init()
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want default 1", cfg.Version)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want default dark", cfg.Theme)
	}
	if len(cfg.DefaultAgents) == 0 {
		t.Error("DefaultAgents should default to all supported agents")
	}
	if cfg.Analytics.Enabled {
		t.Error("analytics must default to disabled")
	}
}

func TestEffectiveStoreDir(t *testing.T) {
	cfg := &Config{}
	if cfg.EffectiveStoreDir() == "" {
		t.Error("default store dir should not be empty")
	}

	cfg.StoreDir = "/tmp/custom"
	if got := cfg.EffectiveStoreDir(); got != "/tmp/custom" {
		t.Errorf("EffectiveStoreDir() = %q, want override", got)
	}
}

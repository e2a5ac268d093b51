package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default %+v differs from DefaultSnakeConfig %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default fails validation: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte(`
grid:
  width: 30
  height: 20
timing:
  tick_interval_ms: 100
snake:
  initial_length: 5
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}

	if cfg.Grid.Width != 30 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %dx%d, expected 30x20", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Timing.TickIntervalMs != 100 {
		t.Errorf("tick_interval_ms = %d, expected 100", cfg.Timing.TickIntervalMs)
	}
	if cfg.Snake.InitialLength != 5 {
		t.Errorf("initial_length = %d, expected 5", cfg.Snake.InitialLength)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	content := []byte(`
grid:
  width: 0
  height: 20
timing:
  tick_interval_ms: 100
snake:
  initial_length: 3
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject a zero-width grid")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *SnakeConfig) {}, false},
		{"zero width", func(c *SnakeConfig) { c.Grid.Width = 0 }, true},
		{"negative height", func(c *SnakeConfig) { c.Grid.Height = -5 }, true},
		{"zero tick interval", func(c *SnakeConfig) { c.Timing.TickIntervalMs = 0 }, true},
		{"zero initial length", func(c *SnakeConfig) { c.Snake.InitialLength = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGameConfigConversion(t *testing.T) {
	cfg := DefaultSnakeConfig()
	gc := cfg.GameConfig()

	if gc.Width != 60 || gc.Height != 25 {
		t.Errorf("game grid = %dx%d, expected 60x25", gc.Width, gc.Height)
	}
	if gc.TickInterval != 150*time.Millisecond {
		t.Errorf("tick interval = %v, expected 150ms", gc.TickInterval)
	}
	if gc.InitialLength != 3 {
		t.Errorf("initial length = %d, expected 3", gc.InitialLength)
	}
	if err := gc.Validate(); err != nil {
		t.Errorf("converted game config fails validation: %v", err)
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hideseek.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v\nexpected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, `
grid:
  size: 6
pacing:
  tick_delay: 20ms
storage:
  backend: sqlite
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Size != 6 {
		t.Errorf("Grid.Size = %d, expected 6", cfg.Grid.Size)
	}
	if cfg.Pacing.TickDelay != 20*time.Millisecond {
		t.Errorf("TickDelay = %v, expected 20ms", cfg.Pacing.TickDelay)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %q", cfg.Storage.Backend)
	}
	// Untouched keys keep defaults
	if cfg.Grid.Obstacles != 5 || cfg.Match.MaxTicks != 90 || cfg.Storage.DBPath != Default().Storage.DBPath {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	path := writeConfig(t, "grid: [not, a, map")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() of invalid YAML error = %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "grid:\n  size: 6\n")
	t.Setenv("HIDESEEK_GRID_SIZE", "12")
	t.Setenv("HIDESEEK_PACING_TICK_DELAY", "5ms")
	t.Setenv("HIDESEEK_PLAYERS_BUILTIN", "false")
	t.Setenv("HIDESEEK_SEED", "42")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Size != 12 {
		t.Errorf("Grid.Size = %d, expected env value 12", cfg.Grid.Size)
	}
	if cfg.Pacing.TickDelay != 5*time.Millisecond {
		t.Errorf("TickDelay = %v", cfg.Pacing.TickDelay)
	}
	if cfg.Players.Builtin {
		t.Error("Players.Builtin should be overridden to false")
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	path := writeConfig(t, "seed: 1\n")
	t.Setenv("HIDESEEK_GRID_SIZE", "ten")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Errorf("Load() error = %v, expected env parse failure", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"no obstacles", func(c *Config) { c.Grid.Obstacles = 0 }, true},
		{"sqlite", func(c *Config) { c.Storage.Backend = BackendSQLite }, true},
		{"zero grid", func(c *Config) { c.Grid.Size = 0 }, false},
		{"negative obstacles", func(c *Config) { c.Grid.Obstacles = -1 }, false},
		{"zero hiding ticks", func(c *Config) { c.Match.HidingTicks = 0 }, false},
		{"zero max ticks", func(c *Config) { c.Match.MaxTicks = 0 }, false},
		{"negative delay", func(c *Config) { c.Pacing.TickDelay = -time.Second }, false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, false},
		{"file without log", func(c *Config) { c.Storage.LogPath = "" }, false},
		{"sqlite without db", func(c *Config) {
			c.Storage.Backend = BackendSQLite
			c.Storage.DBPath = ""
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

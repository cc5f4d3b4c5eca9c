package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	st, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if st.Mode != arena.Wrap || st.Collisions || st.Paused {
		t.Errorf("default settings = %+v; want wrap, no collisions, running", st)
	}
}

func TestLoadConfig_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "arena.json", `{"width": 640, "numAgents": 25, "boundaryMode": "bounce", "collisions": true, "seed": 7}`},
		{"yaml", "arena.yaml", "width: 640\nnumAgents: 25\nboundaryMode: bounce\ncollisions: true\nseed: 7\n"},
		{"yml", "arena.yml", "width: 640\nnumAgents: 25\nboundaryMode: bounce\ncollisions: true\nseed: 7\n"},
		{"toml", "arena.toml", "width = 640\nnumAgents = 25\nboundaryMode = \"bounce\"\ncollisions = true\nseed = 7\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, tt.file, tt.content), "")
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Width != 640 || cfg.NumAgents != 25 || cfg.BoundaryMode != "bounce" || !cfg.Collisions || cfg.Seed != 7 {
				t.Errorf("LoadConfig() = %+v", cfg)
			}
			// untouched fields keep their defaults
			if cfg.Height != 500 || cfg.AgentRadius != 10 || cfg.TPS != 25 {
				t.Errorf("defaults lost: height %v radius %v tps %v", cfg.Height, cfg.AgentRadius, cfg.TPS)
			}
		})
	}
}

func TestLoadConfig_SchemaRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", `{"widht": 640}`},
		{"bad enum", `{"boundaryMode": "sticky"}`},
		{"wrong type", `{"numAgents": "many"}`},
		{"negative radius", `{"agentRadius": -2}`},
		{"tps too high", `{"tps": 120}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "bad.json", tt.content), "")
			if err == nil || !strings.Contains(err.Error(), "validation failed") {
				t.Errorf("LoadConfig() error = %v; want a schema validation error", err)
			}
		})
	}
}

func TestLoadConfig_ExplicitSchema(t *testing.T) {
	schema := writeFile(t, "schema.json", `{"type": "object", "required": ["width"]}`)
	if _, err := LoadConfig(writeFile(t, "c.json", `{"height": 100}`), schema); err == nil {
		t.Error("LoadConfig() accepted a document missing a required field")
	}
	if _, err := LoadConfig(writeFile(t, "c.json", `{"width": 100}`), schema); err != nil {
		t.Errorf("LoadConfig() error = %v", err)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"), ""); err == nil {
		t.Error("LoadConfig() on a missing file should fail")
	}
	if _, err := LoadConfig(writeFile(t, "c.ini", "width=1"), ""); err == nil {
		t.Error("LoadConfig() on an unknown extension should fail")
	}
	if _, err := LoadConfig(writeFile(t, "c.json", "{"), ""); err == nil {
		t.Error("LoadConfig() on broken JSON should fail")
	}
	// passes the schema, fails the semantic check
	_, err := LoadConfig(writeFile(t, "c.json", `{"behavior": "brownian", "dt": 1, "maxTurn": 7}`), "")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig() error = %v; want ErrInvalidConfig", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative padding", func(c *Config) { c.Padding = -1 }},
		{"zero vmax", func(c *Config) { c.VMax = 0 }},
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative depth", func(c *Config) { c.HistoryDepth = -1 }},
		{"tps zero", func(c *Config) { c.TPS = 0 }},
		{"bad mode", func(c *Config) { c.BoundaryMode = "sticky" }},
		{"bad index", func(c *Config) { c.CollisionIndex = "octree" }},
		{"bad behavior", func(c *Config) { c.Behavior = "swarm" }},
		{"turn too large", func(c *Config) { c.Behavior = "flocking"; c.MaxTurn = 1000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestClampTPS(t *testing.T) {
	for in, want := range map[int]int{-5: 1, 0: 1, 25: 25, 60: 60, 65: 60} {
		if got := ClampTPS(in); got != want {
			t.Errorf("ClampTPS(%d) = %d; want %d", in, got, want)
		}
	}
}

func TestLoadConfig_ShippedConfigs(t *testing.T) {
	for _, name := range []string{"arena.json", "arena.yaml", "arena.toml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadConfig(filepath.Join("..", "..", "configs", name), "")
			if err != nil {
				t.Fatalf("LoadConfig(%s) error = %v", name, err)
			}
			if _, err := New(cfg); err != nil {
				t.Errorf("New() with %s error = %v", name, err)
			}
		})
	}
}

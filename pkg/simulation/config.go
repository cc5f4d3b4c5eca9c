package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/arena"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/collision"
	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/geometry"
)

// ErrInvalidConfig wraps every semantic validation failure.
var ErrInvalidConfig = errors.New("invalid config")

//go:embed config.schema.json
var defaultSchema string

const defaultSchemaURL = "config.schema.json"

type Config struct {
	// Arena
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`

	// Population
	NumAgents   int     `json:"numAgents"`
	AgentRadius float64 `json:"agentRadius"`
	VMax        float64 `json:"vMax"`
	Dt          float64 `json:"dt"`

	// Boundary and collisions
	BoundaryMode   string `json:"boundaryMode"`   // wrap | bounce
	Collisions     bool   `json:"collisions"`     // disabled by default
	CollisionIndex string `json:"collisionIndex"` // pairwise | grid

	// History
	HistoryDepth int  `json:"historyDepth"`
	Recording    bool `json:"recording"`

	// Run control
	Steps int64  `json:"steps"` // 0 runs forever
	Seed  uint64 `json:"seed"`  // 0 picks a random seed
	TPS   int    `json:"tps"`

	// Behavior
	Behavior      string  `json:"behavior"` // none | brownian | flocking
	BrownianSigma float64 `json:"brownianSigma"`
	MaxTurn       float64 `json:"maxTurn"` // bound on |dtheta|

	// Flocking parameters (matching pkg/behavior/boid.go)
	VisualRange      float64 `json:"visualRange"`
	ProtectedRange   float64 `json:"protectedRange"`
	AlignFactor      float64 `json:"alignFactor"`
	CohesionFactor   float64 `json:"cohesionFactor"`
	SeparationFactor float64 `json:"separationFactor"`
	TurnGain         float64 `json:"turnGain"`
}

func DefaultConfig() *Config {
	f := behavior.DefaultFlocking()
	return &Config{
		Width:            500,
		Height:           500,
		Padding:          30,
		NumAgents:        10,
		AgentRadius:      10,
		VMax:             1,
		Dt:               0.05,
		BoundaryMode:     "wrap",
		Collisions:       false,
		CollisionIndex:   "pairwise",
		HistoryDepth:     30,
		Recording:        false,
		Steps:            0,
		Seed:             0,
		TPS:              25,
		Behavior:         "none",
		BrownianSigma:    5,
		MaxTurn:          f.MaxTurn,
		VisualRange:      f.VisualRange,
		ProtectedRange:   f.ProtectedRange,
		AlignFactor:      f.AlignFactor,
		CohesionFactor:   f.CohesionFactor,
		SeparationFactor: f.SeparationFactor,
		TurnGain:         f.TurnGain,
	}
}

// LoadConfig reads a JSON, YAML or TOML file (chosen by extension), validates the
// document against the JSON schema and decodes it over DefaultConfig.
// An empty schemaFile uses the embedded schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := compileSchema(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	doc, err := decodeDocument(filepath.Ext(configFile), raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", configFile, err)
	}

	// 3. Validate, on the JSON form so every format sees the same types
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compileSchema(schemaFile string) (*jsonschema.Schema, error) {
	if schemaFile != "" {
		return jsonschema.Compile(schemaFile)
	}
	return jsonschema.CompileString(defaultSchemaURL, defaultSchema)
}

func decodeDocument(ext string, raw []byte) (map[string]interface{}, error) {
	doc := map[string]interface{}{}
	switch strings.ToLower(ext) {
	case ".json", "":
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.Decode(string(raw), &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q", ext)
	}
	return doc, nil
}

// Validate checks the constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: arena must be positive, got %vx%v", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: padding must be non-negative, got %v", ErrInvalidConfig, c.Padding)
	}
	if c.AgentRadius <= 0 {
		return fmt.Errorf("%w: agentRadius must be positive, got %v", ErrInvalidConfig, c.AgentRadius)
	}
	if c.VMax <= 0 {
		return fmt.Errorf("%w: vMax must be positive, got %v", ErrInvalidConfig, c.VMax)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %v", ErrInvalidConfig, c.Dt)
	}
	if c.NumAgents < 0 || c.HistoryDepth < 0 || c.Steps < 0 {
		return fmt.Errorf("%w: numAgents, historyDepth and steps must be non-negative", ErrInvalidConfig)
	}
	if c.TPS < 1 || c.TPS > MaxTPS {
		return fmt.Errorf("%w: tps must be in [1, %d], got %d", ErrInvalidConfig, MaxTPS, c.TPS)
	}
	if _, err := arena.ParseMode(c.BoundaryMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := collision.NewDetector(c.CollisionIndex); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	kind, err := behavior.Parse(c.Behavior)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if kind != behavior.KindNone && (c.MaxTurn <= 0 || c.Dt*c.MaxTurn >= geometry.TwoPi) {
		return fmt.Errorf("%w: dt*maxTurn must be in (0, 2Pi), got %v", ErrInvalidConfig, c.Dt*c.MaxTurn)
	}
	return nil
}

// Settings derives the initial per-tick settings.
func (c *Config) Settings() (Settings, error) {
	mode, err := arena.ParseMode(c.BoundaryMode)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Mode:         mode,
		Collisions:   c.Collisions,
		Recording:    c.Recording,
		HistoryDepth: c.HistoryDepth,
	}, nil
}

// Arena returns the arena described by the config.
func (c *Config) Arena() arena.Arena {
	return arena.New(c.Width, c.Height, c.Padding)
}

func (c *Config) newBehavior(seed uint64) (behavior.Behavior, error) {
	kind, err := behavior.Parse(c.Behavior)
	if err != nil {
		return nil, err
	}
	switch kind {
	case behavior.KindBrownian:
		return behavior.NewBrownian(c.BrownianSigma, c.MaxTurn, seed), nil
	case behavior.KindFlocking:
		return behavior.Flocking{
			VisualRange:      c.VisualRange,
			ProtectedRange:   c.ProtectedRange,
			AlignFactor:      c.AlignFactor,
			CohesionFactor:   c.CohesionFactor,
			SeparationFactor: c.SeparationFactor,
			TurnGain:         c.TurnGain,
			MaxTurn:          c.MaxTurn,
		}, nil
	default:
		return behavior.None{}, nil
	}
}

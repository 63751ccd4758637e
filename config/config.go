// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Energy    EnergyConfig    `yaml:"energy"`
	Mutation  MutationConfig  `yaml:"mutation"`
	Agent     AgentConfig     `yaml:"agent"`
	Events    EventsConfig    `yaml:"events"`
	Stats     StatsConfig     `yaml:"stats"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds grid dimensions and initial seeding.
type WorldConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	InitialFill float64 `yaml:"initial_fill"` // fraction of cells seeded with agents
}

// EnergyConfig holds the energy economics of the tick engine.
type EnergyConfig struct {
	Base           float64 `yaml:"base"`             // reference energy scale
	MoveCost       float64 `yaml:"move_cost"`        // flat cost of relocating one cell
	GiveWayPenalty float64 `yaml:"give_way_penalty"` // paid by an agent that forfeits a contested move
	ReproduceCost  float64 `yaml:"reproduce_cost"`   // paid by the initiating parent
	KillBonus      float64 `yaml:"kill_bonus"`       // gained by a fight winner

	// Metabolic cost per tick = metabolic_base + mobility*metabolic_mobility + strength*metabolic_strength
	MetabolicBase     float64 `yaml:"metabolic_base"`
	MetabolicMobility float64 `yaml:"metabolic_mobility"`
	MetabolicStrength float64 `yaml:"metabolic_strength"`

	// Starting energy = base * (initial_min_factor + u*initial_spread_factor), u uniform
	InitialMinFactor    float64 `yaml:"initial_min_factor"`
	InitialSpreadFactor float64 `yaml:"initial_spread_factor"`

	// Child energy = child_factor * (parentA + parentB)
	ChildFactor float64 `yaml:"child_factor"`
}

// MutationConfig holds mutation parameters.
type MutationConfig struct {
	Rate      float64 `yaml:"rate"`      // per-trait trigger probability
	Magnitude float64 `yaml:"magnitude"` // uniform noise half-width
}

// AgentConfig holds per-agent lifecycle parameters.
type AgentConfig struct {
	MaxAge           int     `yaml:"max_age"`
	GiveWayInitScale float64 `yaml:"give_way_init_scale"` // giving way is less common in founders
}

// EventsConfig holds the global perturbation schedule.
type EventsConfig struct {
	Period          int     `yaml:"period"`            // ticks between global events
	MeteorMinRadius int     `yaml:"meteor_min_radius"` // half-width of the culled square
	MeteorMaxRadius int     `yaml:"meteor_max_radius"`
	DroughtMinDrain float64 `yaml:"drought_min_drain"` // per-agent energy loss range
	DroughtMaxDrain float64 `yaml:"drought_max_drain"`
	LogSize         int     `yaml:"log_size"` // bounded rolling event log length
}

// StatsConfig holds parameters for the read-only statistics surface.
type StatsConfig struct {
	ColorBuckets int `yaml:"color_buckets"` // bins per channel for the dominant-color query
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
	PerfWindow  int `yaml:"perf_window"`  // ticks in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MateCost        float64 // occupant's share of a reproduction (two thirds of reproduce_cost)
	FightEnergyNorm float64 // energy divisor in the fight score (base * 1.5)
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.MateCost = c.Energy.ReproduceCost / 1.5
	c.Derived.FightEnergyNorm = c.Energy.Base * 1.5

	if c.Events.LogSize < 1 {
		c.Events.LogSize = 64
	}
	if c.Stats.ColorBuckets < 2 {
		c.Stats.ColorBuckets = 8
	}
	if c.Telemetry.StatsWindow < 1 {
		c.Telemetry.StatsWindow = 500
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 256
	}
}

// Refresh recomputes derived values after programmatic modification of the
// config, e.g. by the parameter-search tool.
func (c *Config) Refresh() {
	c.computeDerived()
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

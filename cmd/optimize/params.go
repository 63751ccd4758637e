package main

import (
	"github.com/aquintela/pixelife/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
// Bounds bracket the defaults wide enough for the search to matter without
// leaving the regime where the engine's rules make sense.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "initial_fill", Path: "world.initial_fill", Min: 0.02, Max: 0.40, Default: 0.12},
			{Name: "move_cost", Path: "energy.move_cost", Min: 0.2, Max: 3.0, Default: 1.0},
			{Name: "reproduce_cost", Path: "energy.reproduce_cost", Min: 10.0, Max: 60.0, Default: 30.0},
			{Name: "kill_bonus", Path: "energy.kill_bonus", Min: 10.0, Max: 80.0, Default: 40.0},
			{Name: "metabolic_base", Path: "energy.metabolic_base", Min: 0.05, Max: 0.5, Default: 0.2},
			{Name: "metabolic_mobility", Path: "energy.metabolic_mobility", Min: 0.1, Max: 1.0, Default: 0.5},
			{Name: "metabolic_strength", Path: "energy.metabolic_strength", Min: 0.1, Max: 1.0, Default: 0.3},
			{Name: "mutation_rate", Path: "mutation.rate", Min: 0.01, Max: 0.30, Default: 0.08},
			{Name: "mutation_magnitude", Path: "mutation.magnitude", Min: 0.02, Max: 0.40, Default: 0.12},
			{Name: "drought_max_drain", Path: "events.drought_max_drain", Min: 5.0, Max: 40.0, Default: 20.0},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	v := pv.Clamp(values)

	cfg.World.InitialFill = v[0]
	cfg.Energy.MoveCost = v[1]
	cfg.Energy.ReproduceCost = v[2]
	cfg.Energy.KillBonus = v[3]
	cfg.Energy.MetabolicBase = v[4]
	cfg.Energy.MetabolicMobility = v[5]
	cfg.Energy.MetabolicStrength = v[6]
	cfg.Mutation.Rate = v[7]
	cfg.Mutation.Magnitude = v[8]
	cfg.Events.DroughtMaxDrain = v[9]

	cfg.Refresh()
}

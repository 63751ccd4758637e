package main

import (
	"math"
	"testing"

	"github.com/aquintela/pixelife/config"
)

func TestParamVector_NormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()

	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))

	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("param %s: %v -> %v after round trip", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestParamVector_DefaultsWithinBounds(t *testing.T) {
	pv := NewParamVector()
	for _, spec := range pv.Specs {
		if spec.Default < spec.Min || spec.Default > spec.Max {
			t.Errorf("param %s: default %v outside [%v,%v]", spec.Name, spec.Default, spec.Min, spec.Max)
		}
	}
}

func TestParamVector_Clamp(t *testing.T) {
	pv := NewParamVector()

	over := make([]float64, pv.Dim())
	for i := range over {
		over[i] = 1e9
	}
	for i, v := range pv.Clamp(over) {
		if v != pv.Specs[i].Max {
			t.Errorf("param %s clamped to %v, want max %v", pv.Specs[i].Name, v, pv.Specs[i].Max)
		}
	}

	under := make([]float64, pv.Dim())
	for i := range under {
		under[i] = -1e9
	}
	for i, v := range pv.Clamp(under) {
		if v != pv.Specs[i].Min {
			t.Errorf("param %s clamped to %v, want min %v", pv.Specs[i].Name, v, pv.Specs[i].Min)
		}
	}
}

func TestApplyToConfig_RefreshesDerived(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	pv := NewParamVector()
	values := pv.DefaultVector()
	values[2] = 45.0 // reproduce_cost
	pv.ApplyToConfig(cfg, values)

	if cfg.Energy.ReproduceCost != 45.0 {
		t.Errorf("reproduce cost = %v, want 45", cfg.Energy.ReproduceCost)
	}
	want := 45.0 / 1.5
	if math.Abs(cfg.Derived.MateCost-want) > 1e-9 {
		t.Errorf("mate cost = %v, want %v recomputed from the applied vector", cfg.Derived.MateCost, want)
	}
}

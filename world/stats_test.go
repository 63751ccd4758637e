package world

import (
	"math"
	"testing"

	"github.com/aquintela/pixelife/components"
)

func TestDominantColorCluster_PicksLargestBucket(t *testing.T) {
	cfg := testConfig(t)
	w := New(Options{Width: 10, Height: 10, InitialFill: 0, Seed: 1, Config: cfg})

	red := components.NewGenome(1, 0, 0, 0.5, 0.5, 0, 0)
	blue := components.NewGenome(0, 0, 1, 0.5, 0.5, 0, 0)
	w.spawn(0, 0, red, 100)
	w.spawn(1, 0, red, 100)
	w.spawn(2, 0, red, 100)
	w.spawn(0, 1, blue, 100)
	w.spawn(1, 1, blue, 100)

	dom, ok := w.DominantColorCluster()
	if !ok {
		t.Fatal("DominantColorCluster reported no cluster for a live population")
	}
	if dom.Count != 3 {
		t.Errorf("dominant count = %d, want 3", dom.Count)
	}
	if dom.R != 1 || dom.G != 0 || dom.B != 0 {
		t.Errorf("dominant color = (%v,%v,%v), want (1,0,0)", dom.R, dom.G, dom.B)
	}
}

func TestDominantColorCluster_NearbyShadesShareABucket(t *testing.T) {
	cfg := testConfig(t)
	w := New(Options{Width: 10, Height: 10, InitialFill: 0, Seed: 1, Config: cfg})

	// With eight bins per channel, 0.90 and 0.95 land in the same bucket
	// while 0.10 does not.
	w.spawn(0, 0, components.NewGenome(0.90, 0, 0, 0, 0, 0, 0), 100)
	w.spawn(1, 0, components.NewGenome(0.95, 0, 0, 0, 0, 0, 0), 100)
	w.spawn(2, 0, components.NewGenome(0.10, 0, 0, 0, 0, 0, 0), 100)

	dom, ok := w.DominantColorCluster()
	if !ok {
		t.Fatal("no cluster reported")
	}
	if dom.Count != 2 {
		t.Errorf("dominant count = %d, want the two close shades grouped", dom.Count)
	}
}

func TestDominantColorCluster_Empty(t *testing.T) {
	cfg := testConfig(t)
	w := New(Options{Width: 10, Height: 10, InitialFill: 0, Seed: 1, Config: cfg})

	if _, ok := w.DominantColorCluster(); ok {
		t.Error("DominantColorCluster must report ok=false with nobody alive")
	}
}

func TestTraitAverages_Means(t *testing.T) {
	cfg := testConfig(t)
	w := New(Options{Width: 10, Height: 10, InitialFill: 0, Seed: 1, Config: cfg})

	w.spawn(0, 0, components.NewGenome(0.5, 0.5, 0.5, 0.2, 0.4, 0.6, 0), 100)
	w.spawn(1, 0, components.NewGenome(0.5, 0.5, 0.5, 0.6, 0.8, 0.2, 0), 100)

	avg := w.TraitAverages()
	if math.Abs(avg.Strength-0.4) > 1e-9 {
		t.Errorf("avg strength = %v, want 0.4", avg.Strength)
	}
	if math.Abs(avg.Mobility-0.6) > 1e-9 {
		t.Errorf("avg mobility = %v, want 0.6", avg.Mobility)
	}
	if math.Abs(avg.Cooperation-0.4) > 1e-9 {
		t.Errorf("avg cooperation = %v, want 0.4", avg.Cooperation)
	}
}

func TestEnergyValues(t *testing.T) {
	cfg := testConfig(t)
	w := New(Options{Width: 10, Height: 10, InitialFill: 0, Seed: 1, Config: cfg})

	if got := w.EnergyValues(); len(got) != 0 {
		t.Errorf("EnergyValues on an empty world = %v, want none", got)
	}

	genome := components.NewGenome(0.5, 0.5, 0.5, 0.5, 0.5, 0, 0)
	w.spawn(0, 0, genome, 10)
	w.spawn(1, 0, genome, 30)

	values := w.EnergyValues()
	if len(values) != 2 {
		t.Fatalf("EnergyValues returned %d values, want 2", len(values))
	}
	sum := values[0] + values[1]
	if math.Abs(sum-40) > 1e-9 {
		t.Errorf("energy sum = %v, want 40", sum)
	}
}

func TestColorBinning(t *testing.T) {
	tests := []struct {
		v       float64
		buckets int
		want    int
	}{
		{0, 8, 0},
		{0.124, 8, 0},
		{0.125, 8, 1},
		{0.5, 8, 4},
		{0.99, 8, 7},
		{1, 8, 8},
	}
	for _, tt := range tests {
		if got := colorBin(tt.v, tt.buckets); got != tt.want {
			t.Errorf("colorBin(%v, %d) = %d, want %d", tt.v, tt.buckets, got, tt.want)
		}
	}

	if got := binColor(8, 8); got != 1 {
		t.Errorf("binColor(8, 8) = %v, want 1", got)
	}
	if got := binColor(0, 8); got != 0 {
		t.Errorf("binColor(0, 8) = %v, want 0", got)
	}
}

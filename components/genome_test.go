package components

import (
	"math"
	"testing"
)

func TestNewGenome_ClampsTraits(t *testing.T) {
	g := NewGenome(-0.5, 1.5, 0.3, 2.0, -1.0, 0.7, 1.1)

	want := Genome{
		ColorR:      0,
		ColorG:      1,
		ColorB:      0.3,
		Strength:    1,
		Mobility:    0,
		Cooperation: 0.7,
		GiveWay:     1,
	}
	if g != want {
		t.Errorf("NewGenome = %+v, want %+v", g, want)
	}
}

func TestTraits_RoundTrip(t *testing.T) {
	g := NewGenome(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7)
	got := FromTraits(g.Traits())
	if got != g {
		t.Errorf("FromTraits(Traits()) = %+v, want %+v", got, g)
	}
}

func TestTraits_FixedOrder(t *testing.T) {
	g := NewGenome(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7)
	tr := g.Traits()
	want := [TraitCount]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	if tr != want {
		t.Errorf("Traits() = %v, want %v", tr, want)
	}
}

func TestColorSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b Genome
		want float64
	}{
		{
			"identical colors",
			NewGenome(0.5, 0.5, 0.5, 0, 0, 0, 0),
			NewGenome(0.5, 0.5, 0.5, 1, 1, 1, 1),
			1.0,
		},
		{
			"orthogonal colors",
			NewGenome(1, 0, 0, 0, 0, 0, 0),
			NewGenome(0, 1, 0, 0, 0, 0, 0),
			0.0,
		},
		{
			"scaled colors still aligned",
			NewGenome(0.2, 0.4, 0.6, 0, 0, 0, 0),
			NewGenome(0.1, 0.2, 0.3, 0, 0, 0, 0),
			1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.ColorSimilarity(tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("ColorSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorSimilarity_InRange(t *testing.T) {
	// Black against anything must not divide by zero and must stay in [0,1].
	black := NewGenome(0, 0, 0, 0, 0, 0, 0)
	white := NewGenome(1, 1, 1, 0, 0, 0, 0)

	got := black.ColorSimilarity(white)
	if got < 0 || got > 1 {
		t.Errorf("ColorSimilarity = %v, want value in [0,1]", got)
	}
}

func TestMetabolicCost(t *testing.T) {
	g := NewGenome(0, 0, 0, 0.5, 0.8, 0, 0)
	got := MetabolicCost(g, 0.2, 0.5, 0.3)
	want := 0.2 + 0.8*0.5 + 0.5*0.3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("MetabolicCost = %v, want %v", got, want)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package world

import (
	"testing"

	"github.com/aquintela/pixelife/components"
)

func TestGlobalEvent_FiresExactlyOnPeriod(t *testing.T) {
	cfg := testConfig(t)
	cfg.Events.Period = 100

	w := New(Options{Width: 20, Height: 20, InitialFill: 0.2, Seed: 31, Config: cfg})

	for i := 0; i < 99; i++ {
		w.Step()
	}
	if got := w.RecentEvents(10); got != nil {
		t.Fatalf("event log = %v before the period elapsed, want empty", got)
	}

	w.Step()
	if got := w.RecentEvents(10); len(got) != 1 {
		t.Fatalf("event log holds %d entries at the period boundary, want 1", len(got))
	}

	for i := 0; i < 100; i++ {
		w.Step()
	}
	if got := w.RecentEvents(10); len(got) != 2 {
		t.Errorf("event log holds %d entries after two periods, want 2", len(got))
	}
	checkConsistent(t, w)
}

func TestGlobalEvent_EmptyWorldStillFires(t *testing.T) {
	cfg := testConfig(t)
	cfg.Events.Period = 50

	w := New(Options{Width: 10, Height: 10, InitialFill: 0, Seed: 1, Config: cfg})
	for i := 0; i < 50; i++ {
		w.Step()
	}
	if got := w.RecentEvents(10); len(got) != 1 {
		t.Errorf("event log holds %d entries, want 1 even with nobody alive", len(got))
	}

	// The simulation keeps running afterwards.
	w.Step()
	if w.Tick() != 51 {
		t.Errorf("tick = %d, want 51", w.Tick())
	}
}

func TestMeteor_CullsAndStaysConsistent(t *testing.T) {
	cfg := testConfig(t)
	w := New(Options{Width: 30, Height: 30, InitialFill: 0.5, Seed: 37, Config: cfg})

	before := w.Population()
	w.meteorEvent()

	if w.Population() > before {
		t.Errorf("population grew from %d to %d during a meteor", before, w.Population())
	}
	checkConsistent(t, w)

	if got := w.RecentEvents(1); len(got) != 1 {
		t.Fatal("meteor did not log an event entry")
	}
}

func TestMeteor_SurvivesFullCull(t *testing.T) {
	cfg := testConfig(t)
	// A radius covering the whole grid removes every agent.
	cfg.Events.MeteorMinRadius = 50
	cfg.Events.MeteorMaxRadius = 50

	w := New(Options{Width: 10, Height: 10, InitialFill: 1.0, Seed: 41, Config: cfg})
	if w.Population() != 100 {
		t.Fatalf("population = %d, want 100", w.Population())
	}

	w.meteorEvent()
	if w.Population() != 0 {
		t.Errorf("population = %d after a grid-wide meteor, want 0", w.Population())
	}
	checkConsistent(t, w)

	w.Step()
	if w.Tick() != 1 {
		t.Error("stepping after a full cull must still advance the tick")
	}
}

func TestDrought_DrainsEveryAgentInRange(t *testing.T) {
	cfg := testConfig(t)
	w := New(Options{Width: 10, Height: 10, InitialFill: 0, Seed: 43, Config: cfg})

	genome := components.NewGenome(0.5, 0.5, 0.5, 0.5, 0.5, 0, 0)
	w.spawn(1, 1, genome, 100)
	w.spawn(5, 5, genome, 80)
	w.spawn(8, 2, genome, 60)

	before := map[uint64]float64{}
	w.ForEachAgent(func(v AgentView) { before[v.ID] = v.Energy })

	w.droughtEvent()

	w.ForEachAgent(func(v AgentView) {
		drain := before[v.ID] - v.Energy
		if drain < cfg.Events.DroughtMinDrain || drain > cfg.Events.DroughtMaxDrain {
			t.Errorf("agent %d drained by %v, want within [%v,%v]",
				v.ID, drain, cfg.Events.DroughtMinDrain, cfg.Events.DroughtMaxDrain)
		}
	})

	// Drained agents are not removed by the event itself.
	if w.Population() != 3 {
		t.Errorf("population = %d right after the drought, want 3", w.Population())
	}
}

func TestDrought_VictimsDieOnTheirNextTurn(t *testing.T) {
	cfg := testConfig(t)
	w := New(Options{Width: 10, Height: 10, InitialFill: 0, Seed: 47, Config: cfg})

	genome := components.NewGenome(0.5, 0.5, 0.5, 0, 0, 0, 0)
	w.spawn(3, 3, genome, 1) // any drain pushes this one below zero

	w.droughtEvent()
	if w.Population() != 1 {
		t.Fatal("the drought itself must not remove agents")
	}

	w.Step()
	if w.Population() != 0 {
		t.Errorf("population = %d, want the drained agent gone on its next turn", w.Population())
	}
}

package world

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/aquintela/pixelife/telemetry"
)

// fireGlobalEvent triggers exactly one of the two mutually exclusive global
// perturbations, chosen with equal probability.
func (w *World) fireGlobalEvent() {
	if w.rng.Float64() < 0.5 {
		w.meteorEvent()
	} else {
		w.droughtEvent()
	}
}

// meteorEvent culls every agent inside a randomly centered, randomly sized
// square region. The victims are removed immediately: the sweep is already
// committed when global events fire.
func (w *World) meteorEvent() {
	cx := w.rng.Intn(w.grid.Width())
	cy := w.rng.Intn(w.grid.Height())
	minR := w.cfg.Events.MeteorMinRadius
	maxR := w.cfg.Events.MeteorMaxRadius
	radius := minR + w.rng.Intn(maxR-minR+1)

	x0, x1 := cx-radius, cx+radius
	y0, y1 := cy-radius, cy+radius
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= w.grid.Width() {
		x1 = w.grid.Width() - 1
	}
	if y1 >= w.grid.Height() {
		y1 = w.grid.Height() - 1
	}

	killed := 0
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			e := w.grid.At(x, y)
			if e == (ecs.Entity{}) {
				continue
			}
			w.grid.Set(x, y, ecs.Entity{})
			w.ecs.RemoveEntity(e)
			w.population--
			killed++
			w.collector.RecordDeath(telemetry.DeathCulled)
		}
	}

	w.logEvent(fmt.Sprintf("tick %d: meteor strike at (%d,%d) radius %d, %d agents destroyed",
		w.tick, cx, cy, radius, killed))
	w.collector.RecordGlobalEvent()
	slog.Info("global event",
		"kind", "meteor",
		"tick", w.tick,
		"center_x", cx,
		"center_y", cy,
		"radius", radius,
		"killed", killed,
	)
}

// droughtEvent drains a random amount of energy from every live agent. The
// drained agents are not removed here even if they drop below zero; they
// die at the start of their next turn.
func (w *World) droughtEvent() {
	minDrain := w.cfg.Events.DroughtMinDrain
	maxDrain := w.cfg.Events.DroughtMaxDrain

	query := w.filter.Query()
	for query.Next() {
		agent, _ := query.Get()
		agent.Energy -= minDrain + w.rng.Float64()*(maxDrain-minDrain)
	}

	w.logEvent(fmt.Sprintf("tick %d: drought, population-wide energy drain", w.tick))
	w.collector.RecordGlobalEvent()
	slog.Info("global event", "kind", "drought", "tick", w.tick)
}

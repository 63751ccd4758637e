// Package world implements the tick-update engine: the spatial grid, the
// live-agent arena, interaction resolution, genetics-driven reproduction, and
// the periodic global-event scheduler.
package world

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/aquintela/pixelife/components"
	"github.com/aquintela/pixelife/config"
	"github.com/aquintela/pixelife/genetics"
	"github.com/aquintela/pixelife/telemetry"
)

// Options configures a World at construction time. Zero Width/Height and a
// negative InitialFill fall back to the loaded config.
type Options struct {
	Width       int
	Height      int
	InitialFill float64
	Seed        int64

	// Config overrides the global configuration for this world. Used by
	// tools that run many isolated simulations side by side.
	Config *config.Config
}

// birth is a reproduction queued during a sweep, materialized at commit time
// only if its target cell is still empty.
type birth struct {
	x, y   int
	genome components.Genome
	energy float64
}

// removal is an agent marked dead during a sweep, destroyed at commit time.
type removal struct {
	entity ecs.Entity
	cause  telemetry.DeathCause
}

// World owns the grid, the live-agent arena, and the shared random source.
// It is single-threaded: Step must not be called reentrantly or from more
// than one goroutine.
type World struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	ecs       *ecs.World
	mapper    *ecs.Map2[components.Agent, components.Genome]
	filter    *ecs.Filter2[components.Agent, components.Genome]
	agentMap  *ecs.Map1[components.Agent]
	genomeMap *ecs.Map1[components.Genome]

	grid *Grid

	tick       int
	mutations  int // mutation count of the current tick
	population int
	nextID     uint64

	events []string

	collector *telemetry.Collector

	// per-tick scratch, reused to keep the sweep allocation-free
	snapshot []ecs.Entity
	dead     []removal
	births   []birth
	nbuf     []Point
}

// New constructs a world from the loaded config, seeds the RNG, and fills
// the grid with random founder agents.
func New(opts Options) *World {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	if opts.Width <= 0 {
		opts.Width = cfg.World.Width
	}
	if opts.Height <= 0 {
		opts.Height = cfg.World.Height
	}
	if opts.InitialFill < 0 {
		opts.InitialFill = cfg.World.InitialFill
	}

	w := &World{
		cfg:  cfg,
		opts: opts,
	}
	w.init()
	return w
}

// init builds the arena, grid and RNG from scratch and seeds the population.
// Shared by New and Reset so a reset world replays a fresh construction.
func (w *World) init() {
	ecsWorld := ecs.NewWorld()

	w.ecs = ecsWorld
	w.rng = rand.New(rand.NewSource(w.opts.Seed))
	w.mapper = ecs.NewMap2[components.Agent, components.Genome](ecsWorld)
	w.filter = ecs.NewFilter2[components.Agent, components.Genome](ecsWorld)
	w.agentMap = ecs.NewMap1[components.Agent](ecsWorld)
	w.genomeMap = ecs.NewMap1[components.Genome](ecsWorld)
	w.grid = NewGrid(w.opts.Width, w.opts.Height)

	w.tick = 0
	w.mutations = 0
	w.population = 0
	w.nextID = 0
	w.events = w.events[:0]

	w.seed()
}

// seed fills the fraction of cells given by InitialFill with founder agents.
func (w *World) seed() {
	e := &w.cfg.Energy
	for x := 0; x < w.grid.Width(); x++ {
		for y := 0; y < w.grid.Height(); y++ {
			if w.rng.Float64() >= w.opts.InitialFill {
				continue
			}
			genome := genetics.Random(w.rng, w.cfg.Agent.GiveWayInitScale)
			energy := e.Base * (e.InitialMinFactor + w.rng.Float64()*e.InitialSpreadFactor)
			w.spawn(x, y, genome, energy)
		}
	}
}

// spawn creates a live agent at (x,y). The cell must be empty.
func (w *World) spawn(x, y int, genome components.Genome, energy float64) ecs.Entity {
	w.nextID++
	agent := components.Agent{
		ID:     w.nextID,
		X:      x,
		Y:      y,
		Energy: energy,
		Alive:  true,
	}
	entity := w.mapper.NewEntity(&agent, &genome)
	w.grid.Set(x, y, entity)
	w.population++
	return entity
}

// Reset discards all state and reseeds identically to construction.
func (w *World) Reset() {
	w.init()
}

// SetCollector attaches a telemetry collector. Pass nil to detach; the
// engine records nothing in that case.
func (w *World) SetCollector(c *telemetry.Collector) {
	w.collector = c
}

// Tick returns the number of completed ticks.
func (w *World) Tick() int { return w.tick }

// Population returns the number of live agents.
func (w *World) Population() int { return w.population }

// MutationCount returns how many offspring mutated during the current tick.
func (w *World) MutationCount() int { return w.mutations }

// Width returns the grid width in cells.
func (w *World) Width() int { return w.grid.Width() }

// Height returns the grid height in cells.
func (w *World) Height() int { return w.grid.Height() }

// Seed returns the RNG seed the world was constructed with.
func (w *World) Seed() int64 { return w.opts.Seed }

// RecentEvents returns up to n event-log entries, newest last.
func (w *World) RecentEvents(n int) []string {
	if n <= 0 || len(w.events) == 0 {
		return nil
	}
	if n > len(w.events) {
		n = len(w.events)
	}
	tail := w.events[len(w.events)-n:]
	out := make([]string, n)
	copy(out, tail)
	return out
}

// logEvent appends one line to the bounded rolling event log.
func (w *World) logEvent(line string) {
	w.events = append(w.events, line)
	if max := w.cfg.Events.LogSize; len(w.events) > max {
		w.events = w.events[len(w.events)-max:]
	}
}

// ColorAt returns the display color of the occupant of (x,y). ok is false
// for an empty cell.
func (w *World) ColorAt(x, y int) (r, g, b float64, ok bool) {
	e := w.grid.At(x, y)
	if e == (ecs.Entity{}) {
		return 0, 0, 0, false
	}
	genome := w.genomeMap.Get(e)
	r, g, b = genome.Color()
	return r, g, b, true
}

// AgentView is a read-only snapshot of one live agent, for the rendering
// collaborator and for tests.
type AgentView struct {
	ID     uint64
	X, Y   int
	Energy float64
	Age    int
	Genome components.Genome
}

// ForEachAgent calls fn for every live agent. The iteration order is the
// arena's, not the grid's; callers must not mutate the world from fn.
func (w *World) ForEachAgent(fn func(AgentView)) {
	query := w.filter.Query()
	for query.Next() {
		agent, genome := query.Get()
		fn(AgentView{
			ID:     agent.ID,
			X:      agent.X,
			Y:      agent.Y,
			Energy: agent.Energy,
			Age:    agent.Age,
			Genome: *genome,
		})
	}
}

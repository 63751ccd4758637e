package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/aquintela/pixelife/config"
	"github.com/aquintela/pixelife/telemetry"
	"github.com/aquintela/pixelife/world"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Use config stats window if not overridden by CLI
	window := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		window = *statsWindow
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	collector := telemetry.NewCollector()
	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)

	w := world.New(world.Options{
		Width:       cfg.World.Width,
		Height:      cfg.World.Height,
		InitialFill: cfg.World.InitialFill,
		Seed:        rngSeed,
	})
	w.SetCollector(collector)

	slog.Info("starting simulation",
		"seed", rngSeed,
		"width", w.Width(),
		"height", w.Height(),
		"population", w.Population(),
		"stats_window", window,
		"max_ticks", *maxTicks,
	)

	for *maxTicks == 0 || w.Tick() < *maxTicks {
		perf.StartTick()
		w.Step()
		perf.EndTick()

		if w.Tick()%window != 0 {
			continue
		}

		sample := telemetry.Sample{
			Population:   w.Population(),
			EnergyValues: w.EnergyValues(),
		}
		avgs := w.TraitAverages()
		sample.AvgStrength = avgs.Strength
		sample.AvgMobility = avgs.Mobility
		sample.AvgCooperation = avgs.Cooperation
		if dom, ok := w.DominantColorCluster(); ok {
			sample.DominantR = dom.R
			sample.DominantG = dom.G
			sample.DominantB = dom.B
			sample.DominantCount = dom.Count
		}

		stats := collector.Flush(w.Tick(), sample)
		if *logStats {
			stats.LogStats()
			slog.Info("perf", "tick", w.Tick(), "timing", perf.Stats())
		}
		if err := out.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
			os.Exit(1)
		}

		if w.Population() == 0 {
			slog.Info("population extinct", "tick", w.Tick())
			break
		}
	}

	slog.Info("simulation finished",
		"tick", w.Tick(),
		"population", w.Population(),
		"events", w.RecentEvents(4),
	)
}

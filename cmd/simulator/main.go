package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/udisondev/squadsim/internal/config"
	"github.com/udisondev/squadsim/internal/data"
	"github.com/udisondev/squadsim/internal/db"
	"github.com/udisondev/squadsim/internal/game/sim"
)

const ConfigPath = "config/simulator.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("SQUADSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("squadsim starting", "config", cfgPath, "log_level", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if err := data.Load(); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	setups, err := cfg.Setups()
	if err != nil {
		return fmt.Errorf("building setups: %w", err)
	}
	for i := range setups {
		setups[i].Logger = slog.Default().With("loadout", setups[i].Name)
	}

	slog.Info("running loadouts",
		"count", len(setups),
		"duration", cfg.Duration(),
		"crit_mode", cfg.CritMode,
		"parallelism", cfg.Parallelism)

	start := time.Now()
	results, err := sim.RunAll(ctx, setups, cfg.Parallelism)
	if err != nil {
		return fmt.Errorf("running loadouts: %w", err)
	}
	slog.Info("loadouts finished", "elapsed", time.Since(start))

	for i, r := range results {
		logResult(r)
		if p, ok := setups[i].Policy.(interface{ Err() error }); ok && p.Err() != nil {
			slog.Warn("rotation script failed, kit decided instead", "loadout", r.Name, "err", p.Err())
		}
	}

	if !cfg.Database.Enabled() {
		return nil
	}
	return store(ctx, cfg, results)
}

func logResult(r *sim.Result) {
	s := r.Summary
	slog.Info("result",
		"loadout", r.Name,
		"total", fmt.Sprintf("%.0f", s.Total),
		"dps", fmt.Sprintf("%.1f", s.DPS),
		"events", s.Events)
	for _, a := range s.ByActor {
		slog.Info("actor",
			"loadout", r.Name,
			"slot", a.Index,
			"name", a.Name,
			"damage", fmt.Sprintf("%.0f", a.Damage),
			"share", fmt.Sprintf("%.1f%%", a.Share*100))
	}
	for kind, dmg := range s.ByKind {
		slog.Debug("kind", "loadout", r.Name, "kind", kind, "damage", fmt.Sprintf("%.0f", dmg))
	}
	for reaction, n := range s.Reactions {
		slog.Debug("reaction", "loadout", r.Name, "reaction", reaction, "count", n)
	}
}

// store persists every result keyed by its input fingerprint.
func store(ctx context.Context, cfg config.Simulation, results []*sim.Result) error {
	database, err := db.Open(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("opening result store: %w", err)
	}
	defer database.Close()
	slog.Info("result store connected", "driver", database.Driver())

	runs := database.Runs()
	for _, r := range results {
		l, ok := cfg.Loadout(r.Name)
		if !ok {
			return fmt.Errorf("no loadout for result %q", r.Name)
		}
		canonical, err := l.Canonical(cfg)
		if err != nil {
			return err
		}
		fp := db.Fingerprint(canonical)

		prev, err := runs.ListByFingerprint(ctx, fp)
		if err != nil {
			return fmt.Errorf("listing previous runs: %w", err)
		}
		for _, p := range prev {
			if p.Total != r.Summary.Total {
				slog.Warn("result differs from a stored run with the same inputs",
					"loadout", r.Name, "run_id", p.ID, "stored_total", p.Total, "total", r.Summary.Total)
			}
		}

		id, err := runs.SaveRun(ctx, fp, r)
		if err != nil {
			return fmt.Errorf("storing %q: %w", r.Name, err)
		}
		slog.Info("stored run", "loadout", r.Name, "id", id, "fingerprint", fp[:12], "previous", len(prev))
	}
	return nil
}

// parseLogLevel maps a config level to slog. Unknown values fall back to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelquest/internal/catalog"
	"github.com/vovakirdan/pixelquest/internal/config"
	"github.com/vovakirdan/pixelquest/internal/engine"
	"github.com/vovakirdan/pixelquest/internal/reveal"
	"github.com/vovakirdan/pixelquest/internal/storage"
)

// app bundles everything a command needs.
type app struct {
	cfg     config.Config
	store   *storage.Store
	slot    *storage.Slot
	engine  *engine.Engine
	logger  *log.Logger
	logFile *os.File
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixelquest",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// loadConfigOrExit loads the config and applies the global flag overrides.
func loadConfigOrExit() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("loading config: %v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagSlot != "" {
		cfg.Storage.Slot = flagSlot
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// openApp loads config, opens storage and restores the slot's progress.
// When toFile is set, logs go to the configured log file instead of stderr.
func openApp(toFile bool) *app {
	cfg := loadConfigOrExit()
	a := &app{cfg: cfg}

	var w io.Writer = os.Stderr
	if toFile {
		w = io.Discard
		if cfg.Log.File != "" {
			if f, err := openLogFile(cfg.Log.File); err == nil {
				a.logFile = f
				w = f
			}
		}
	}
	a.logger = newLogger(w, cfg.Log.Level)

	curve, err := cfg.Game.Curve()
	if err != nil {
		fatalf("building level curve: %v", err)
	}

	catalogPath := cfg.Game.CatalogPath
	if catalogPath != "" {
		if catalogPath, err = config.ExpandPath(catalogPath); err != nil {
			fatalf("resolving catalog path: %v", err)
		}
	}
	cat, err := catalog.Load(catalogPath, curve.MaxLevel())
	if err != nil {
		fatalf("loading artwork catalog: %v", err)
	}

	a.store, err = storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatalf("opening progress database: %v", err)
	}
	a.slot = a.store.Slot(cfg.Storage.Slot)

	opts := []engine.Option{
		engine.WithPersister(a.slot),
		engine.WithRewards(cfg.Game.Rewards()),
		engine.WithLogger(a.logger),
	}
	if flagSeed != 0 {
		opts = append(opts, engine.WithSource(reveal.NewSeededSource(flagSeed)))
	}
	a.engine = engine.New(curve, cat, opts...)

	if err := a.engine.Load(a.slot); err != nil {
		a.logger.Error("progress could not be loaded, starting fresh", "slot", cfg.Storage.Slot, "err", err)
	}

	a.logger.Debug("ready", "db", cfg.Storage.DBPath, "slot", cfg.Storage.Slot, "artworks", cat.Len())
	return a
}

func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Close releases the database and log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing database", "err", err)
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

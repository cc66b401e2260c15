package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pentix/internal/config"
	"github.com/vovakirdan/pentix/internal/core"
	"github.com/vovakirdan/pentix/internal/games/pentix"
	"github.com/vovakirdan/pentix/internal/storage"
)

var (
	flagSaveBackend string
	flagSavePath    string
)

// newLogger builds the CLI logger. Interactive commands pass toStderr=false:
// without --log-file their logs are discarded so they do not draw over the
// alternate screen. The game package logs through the same logger.
func newLogger(toStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		path, err := core.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pentix",
		Level:           level,
	})
	pentix.SetLogger(logger)
	return logger, closeFn, nil
}

// runtimeConfig sizes the game to the terminal and applies the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openStore opens the scores database. Failure is not fatal for play: the
// game runs without scores (and without the sqlite save backend).
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openSaves picks the snapshot store from the game config, overridden by
// --save-backend and --save-path. It returns nil when saving is unavailable.
func openSaves(store *storage.Store, logger *log.Logger) core.SnapshotStore {
	cfg, err := config.LoadPentix(flagConfig)
	if err != nil {
		logger.Warn("using default save settings", "err", err)
		cfg = config.DefaultPentixConfig()
	}

	backend := cfg.Saves.Backend
	if flagSaveBackend != "" {
		backend = flagSaveBackend
	}
	path := cfg.Saves.Path
	if flagSavePath != "" {
		path = flagSavePath
	}

	switch backend {
	case config.BackendSQLite:
		if store == nil {
			logger.Warn("sqlite save backend without a database, saving disabled")
			return nil
		}
		return store
	case config.BackendFile:
		files, err := storage.NewFileStore(path)
		if err != nil {
			logger.Warn("saving disabled", "err", err)
			return nil
		}
		return files
	default:
		logger.Warn("unknown save backend, saving disabled", "backend", backend)
		return nil
	}
}

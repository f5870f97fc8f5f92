package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/highscore"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Game flags shared by play, window and serve.
var (
	flagConfig     string
	flagDifficulty string
	flagCoins      string
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagCoins, "coins", "", "Coin spawn policy: timed, anchored")
}

// app holds everything a command needs to build games.
type app struct {
	cfg     config.JumperConfig
	logger  *log.Logger
	scores  highscore.Store
	history *storage.Store // nil when the database could not be opened
	logOut  io.Closer
}

// newLogger builds the logger. Without --log-file, logs go to fallback.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out := fallback
	var closer io.Closer
	if flagLogFile != "" {
		path, err := highscore.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the YAML config and applies the command-line overrides.
func loadConfig() (config.JumperConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagCoins != "" {
		cfg.Coins.Policy = flagCoins
	}
	if flagBackend != "" {
		cfg.Persistence.Backend = flagBackend
	}
	if flagHighScores != "" {
		cfg.Persistence.Path = flagHighScores
	}
	return cfg, cfg.Validate()
}

// openApp loads the config, the logger and both stores.
// logFallback receives logs when --log-file is not given.
func openApp(logFallback io.Writer, prefix string) (*app, error) {
	logger, logOut, err := newLogger(logFallback, prefix)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		closeQuietly(logOut)
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, logOut: logOut}

	// Run history is optional; the game works without it
	history, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history database", "path", flagDBPath, "error", err)
	} else {
		a.history = history
	}

	scores, err := openScores(cfg.Persistence, history)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.scores = scores
	logger.Debug("high scores loaded", "backend", cfg.Persistence.Backend, "count", len(scores.Load()))

	return a, nil
}

// openScores opens the configured high-score backend.
func openScores(p config.PersistenceConfig, history *storage.Store) (highscore.Store, error) {
	switch p.Backend {
	case config.BackendGdata:
		store, err := highscore.OpenGdata("jumper")
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendSQLite:
		if history == nil {
			return nil, fmt.Errorf("sqlite backend needs the database at %s", flagDBPath)
		}
		return history, nil
	default:
		store, err := highscore.NewFileStore(p.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// factory returns a constructor for games sharing this app's stores.
func (a *app) factory() func(sched jumper.Scheduler) *jumper.Game {
	return func(sched jumper.Scheduler) *jumper.Game {
		opts := []jumper.Option{
			jumper.WithScheduler(sched),
			jumper.WithStore(a.scores),
			jumper.WithLogger(a.logger),
		}
		if a.history != nil {
			opts = append(opts, jumper.WithRecorder(a.history))
		}
		if flagSeed != 0 {
			opts = append(opts, jumper.WithSeed(flagSeed))
		}
		return jumper.New(a.cfg, opts...)
	}
}

// Close releases the database and the log file.
func (a *app) Close() {
	if a.history != nil {
		closeQuietly(a.history)
	}
	closeQuietly(a.logOut)
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/capitalz/internal/app"
	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/config"
	"github.com/abhisek/capitalz/internal/session"
	"github.com/abhisek/capitalz/internal/stats"
	"github.com/abhisek/capitalz/internal/store"
)

// env is everything a command needs, built from config and flags.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *store.Store
	catalogs *catalog.Registry
	stats    *stats.Store
	orch     *session.Orchestrator
}

// openEnv loads configuration, opens the store and builds the services.
// Logs are written to logOut.
func openEnv(cmd *cobra.Command, logOut io.Writer) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	logger := cfg.NewLogger(logOut)

	reg := catalog.Builtin()
	if cfg.Catalog != "" {
		if err := registerCustom(reg, cfg.Catalog, logger); err != nil {
			return nil, err
		}
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(dbPath, store.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", "path", dbPath)

	st := stats.New(db, reg, stats.WithLogger(logger))
	return &env{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		catalogs: reg,
		stats:    st,
		orch:     session.NewOrchestrator(reg, st, session.WithLogger(logger)),
	}, nil
}

func (e *env) Close() error {
	return e.db.Close()
}

// registerCustom imports path as the Custom quiz type.
func registerCustom(reg *catalog.Registry, path string, logger *slog.Logger) error {
	res, err := catalog.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	for _, s := range res.Skipped {
		logger.Warn("catalog row skipped", "file", path, "row", s.Row, "reason", s.Reason)
	}
	if err := reg.Register(res.Definition); err != nil {
		return fmt.Errorf("register catalog: %w", err)
	}
	logger.Info("custom catalog loaded", "file", path,
		"items", len(res.Definition.Items), "skipped", len(res.Skipped))
	return nil
}

// appRequest carries command-specific overrides for the TUI.
type appRequest struct {
	quizType  catalog.QuizType
	questions int
	category  string
	startQuiz bool
}

// openLogFile opens the TUI log file in the data directory.
func openLogFile() (*os.File, error) {
	dir, err := store.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "capitalz.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, req appRequest) error {
	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	e, err := openEnv(cmd, logFile)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := app.Options{
		Catalogs:      e.catalogs,
		Stats:         e.stats,
		Orchestrator:  e.orch,
		QuizType:      e.cfg.QuizType,
		Questions:     e.cfg.Questions,
		Logger:        e.logger,
		StartQuiz:     req.startQuiz,
		StartCategory: req.category,
	}
	if req.quizType != "" {
		opts.QuizType = req.quizType
	}
	if req.questions > 0 {
		opts.Questions = req.questions
	}
	return app.Run(opts)
}

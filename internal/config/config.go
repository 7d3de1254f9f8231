package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/session"
)

// Environment variables read by Load.
const (
	EnvDB        = "CAPITALZ_DB"
	EnvQuestions = "CAPITALZ_QUESTIONS"
	EnvQuizType  = "CAPITALZ_QUIZ_TYPE"
	EnvCatalog   = "CAPITALZ_CATALOG"
	EnvLogLevel  = "CAPITALZ_LOG_LEVEL"
)

type Config struct {
	DBPath    string           // empty means store.DefaultDBPath
	Questions int              // default session size
	QuizType  catalog.QuizType // quiz type preselected on the home screen
	Catalog   string           // optional custom catalog file (.xlsx or .csv)
	LogLevel  slog.Level
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:    os.Getenv(EnvDB),
		Questions: session.DefaultQuestionCount,
		QuizType:  catalog.DefaultQuizType,
		Catalog:   os.Getenv(EnvCatalog),
		LogLevel:  slog.LevelInfo,
	}

	if v := os.Getenv(EnvQuestions); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: %s=%q is not a positive integer", EnvQuestions, v)
		}
		cfg.Questions = n
	}

	if v := os.Getenv(EnvQuizType); v != "" {
		qt, err := ParseQuizType(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvQuizType, err)
		}
		cfg.QuizType = qt
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// ParseQuizType accepts a quiz type by its name or a short alias
// (capitals, states, flags, custom), case-insensitively.
func ParseQuizType(v string) (catalog.QuizType, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	switch s {
	case "capitals", "countries", strings.ToLower(string(catalog.CountryCapitals)):
		return catalog.CountryCapitals, nil
	case "states", "us", strings.ToLower(string(catalog.USStateCapitals)):
		return catalog.USStateCapitals, nil
	case "flags", strings.ToLower(string(catalog.CountryFlags)):
		return catalog.CountryFlags, nil
	case "custom", strings.ToLower(string(catalog.Custom)):
		return catalog.Custom, nil
	}
	return "", fmt.Errorf("%w: %q", catalog.ErrUnknownQuizType, v)
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(v string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", v)
	}
	return lvl, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

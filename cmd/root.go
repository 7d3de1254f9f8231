package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/capitalz/internal/config"
	"github.com/abhisek/capitalz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "capitalz",
	Short: "Geography quiz for the terminal",
	Long:  "Capitalz is a terminal quiz on world capitals, US state capitals and flags that keeps asking what you get wrong.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, appRequest{})
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CAPITALZ_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Custom quiz catalog (.xlsx or .csv, overrides CAPITALZ_CATALOG)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides CAPITALZ_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(weakestCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CAPITALZ_DB (via config), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// applyFlags lets persistent flags override the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		cfg.Catalog = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		lvl, err := config.ParseLevel(v)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}
	return nil
}

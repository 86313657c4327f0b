// Command vntrhmm bakes tandem-repeat read-matcher models and decodes reads against them.
// The cobra command tree and config-then-run wiring follows
// jinterlante1206-AleutianLocal's cmd/aleutian (cli_commands.go + main.go).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/berntpopp/adVNTR/internal/config"
	"github.com/berntpopp/adVNTR/internal/runstore"
)

var (
	cfgFile string
	dbPath  string
	v       = viper.New()
	cfg     config.Config
	logger  *slog.Logger
	store   *runstore.Store
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vntrhmm",
	Short: "Bake and decode tandem-repeat profile-HMM read matchers",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v, cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}

		level := slog.LevelInfo
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			level = slog.LevelInfo
		}
		var handler slog.Handler
		opts := &slog.HandlerOptions{Level: level}
		if cfg.LogFormat == "json" {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}
		logger = slog.New(handler)

		if cfg.DBPath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
				return fmt.Errorf("create db directory: %w", err)
			}
		}
		store, err = runstore.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open run store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a vntrhmm config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the run-history sqlite database (overrides config)")
	rootCmd.AddCommand(bakeCmd, viterbiCmd, forwardCmd, subseqCmd, sanityCmd, estimateRepeatCmd, historyCmd, watchCmd, locateCmd)
}

func newRunID() string {
	return uuid.NewString()
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/berntpopp/adVNTR/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [model-definition.yaml]",
	Short: "Watch a model definition and rebake from scratch whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		rebake := func() {
			m, def, duration, err := loadAndBake(path)
			if err != nil {
				logger.Error("rebake failed", "path", path, "error", err)
				return
			}
			logger.Info("rebaked model", "name", def.Name, "states", len(m.States), "duration_ms", duration.Milliseconds())
		}

		rebake()

		stop, err := watch.OnChange(path, watchDebounce, rebake)
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		defer stop()

		fmt.Printf("watching %s (debounce=%s), press Ctrl+C to stop\n", path, watchDebounce)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "debounce window before a rebake fires")
}

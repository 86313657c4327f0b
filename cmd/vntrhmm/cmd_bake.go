package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/berntpopp/adVNTR/hmm"
	"github.com/berntpopp/adVNTR/internal/metrics"
	"github.com/berntpopp/adVNTR/internal/modeldef"
	"github.com/berntpopp/adVNTR/internal/runstore"
)

var bakeCmd = &cobra.Command{
	Use:   "bake [model-definition.yaml]",
	Short: "Load a model definition and bake it, reporting the resulting state count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, def, duration, err := loadAndBake(args[0])
		if err != nil {
			return err
		}
		logger.Info("baked model", "name", def.Name, "states", len(m.States), "duration_ms", duration.Milliseconds())
		fmt.Printf("baked %q: %d states across %d sub-models (%s)\n", def.Name, len(m.States), len(m.SubModels), duration)

		if err := store.Record(context.Background(), runstore.RunRecord{
			ID:         newRunID(),
			Kind:       "bake",
			ModelName:  def.Name,
			DurationMS: duration.Milliseconds(),
			CreatedAt:  time.Now(),
		}); err != nil {
			logger.Warn("record bake run", "error", err)
		}
		return nil
	},
}

// loadAndBake loads the model definition at path, builds and bakes the model with the
// configured repeat-band pass count, and reports how long baking took.
func loadAndBake(path string) (*hmm.Model, modeldef.ModelDefinition, time.Duration, error) {
	def, err := modeldef.Load(path)
	if err != nil {
		return nil, def, 0, fmt.Errorf("load model definition: %w", err)
	}

	var m *hmm.Model
	start := time.Now()
	metrics.ObserveBake(func() {
		m, err = modeldef.BuildReadMatcher(def, hmm.WithRepeatBandPasses(cfg.RepeatBandPasses))
	})
	duration := time.Since(start)
	if err != nil {
		return nil, def, duration, fmt.Errorf("build read matcher: %w", err)
	}
	return m, def, duration, nil
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/berntpopp/adVNTR/hmm"
	"github.com/berntpopp/adVNTR/internal/metrics"
	"github.com/berntpopp/adVNTR/internal/runstore"
)

var viterbiCmd = &cobra.Command{
	Use:   "viterbi [model-definition.yaml] [read.txt]",
	Short: "Bake a model and run the Viterbi decoder against a read",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, def, _, err := loadAndBake(args[0])
		if err != nil {
			return err
		}
		seq, err := readSequenceFile(args[1])
		if err != nil {
			return fmt.Errorf("read sequence: %w", err)
		}

		var logp float64
		var path hmm.Path
		start := time.Now()
		decodeErr := metrics.ObserveDecode("viterbi", func() error {
			logp, path, err = m.Viterbi(seq)
			return err
		})
		duration := time.Since(start)
		if decodeErr != nil {
			return fmt.Errorf("viterbi decode: %w", decodeErr)
		}

		query, states := hmm.PathToAlignment(seq, path)
		fmt.Printf("logp=%g path_len=%d\n%s\n%s\n", logp, len(path), query, states)

		pathLen := len(path)
		recordDecode(def.Name, "viterbi", len(seq), &logp, &pathLen, duration)
		return nil
	},
}

var forwardCmd = &cobra.Command{
	Use:   "forward [model-definition.yaml] [read.txt]",
	Short: "Bake a model and compute the total forward log-probability of a read",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, def, _, err := loadAndBake(args[0])
		if err != nil {
			return err
		}
		seq, err := readSequenceFile(args[1])
		if err != nil {
			return fmt.Errorf("read sequence: %w", err)
		}

		var logp float64
		start := time.Now()
		decodeErr := metrics.ObserveDecode("forward", func() error {
			logp, err = m.LogProbability(seq)
			return err
		})
		duration := time.Since(start)
		if decodeErr != nil {
			return fmt.Errorf("forward decode: %w", decodeErr)
		}

		fmt.Printf("logp=%g\n", logp)
		recordDecode(def.Name, "forward", len(seq), &logp, nil, duration)
		return nil
	},
}

var subseqCmd = &cobra.Command{
	Use:   "subseq [model-definition.yaml] [read.txt] [unit-id]",
	Short: "Run Viterbi confined to a single repeat unit's state band",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, def, _, err := loadAndBake(args[0])
		if err != nil {
			return err
		}
		seq, err := readSequenceFile(args[1])
		if err != nil {
			return fmt.Errorf("read sequence: %w", err)
		}
		unitID := args[2]

		var path hmm.Path
		var scored float64
		start := time.Now()
		decodeErr := metrics.ObserveDecode("subseq", func() error {
			_, path, err = m.SubseqViterbi(seq, unitID)
			if err != nil {
				return err
			}
			scored, _, err = m.SubseqViterbiScored(seq, unitID)
			return err
		})
		duration := time.Since(start)
		if decodeErr != nil {
			return fmt.Errorf("subseq decode: %w", decodeErr)
		}

		fmt.Printf("scored_logp=%g path_len=%d\n", scored, len(path))
		pathLen := len(path)
		recordDecode(def.Name, "subseq", len(seq), &scored, &pathLen, duration)
		return nil
	},
}

var sanityCmd = &cobra.Command{
	Use:   "sanity [model-definition.yaml]",
	Short: "Bake a model and report any states whose outgoing transitions don't sum to 1",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, _, err := loadAndBake(args[0])
		if err != nil {
			return err
		}
		violations := m.CheckSanityOfTransitionProb(true)
		if len(violations) == 0 {
			fmt.Println("all transition distributions sum to 1")
			return nil
		}
		for _, v := range violations {
			fmt.Printf("%s/%s: sum=%g\n", v.SubModel, v.State, v.Sum)
		}
		return fmt.Errorf("%d sanity violation(s)", len(violations))
	},
}

func recordDecode(modelName, kind string, seqLen int, logp *float64, pathLen *int, duration time.Duration) {
	if err := store.Record(context.Background(), runstore.RunRecord{
		ID:             newRunID(),
		Kind:           kind,
		ModelName:      modelName,
		SequenceLength: seqLen,
		LogProbability: logp,
		PathLength:     pathLen,
		DurationMS:     duration.Milliseconds(),
		CreatedAt:      time.Now(),
	}); err != nil {
		logger.Warn("record decode run", "kind", kind, "error", err)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berntpopp/adVNTR/internal/locate"
)

var (
	locateK            int
	locateMinMatchLen  int
	locateStride       int
	locateMaxErrors    int
	locateOverlapThreh float64
	locateInverted     bool
)

var locateCmd = &cobra.Command{
	Use:   "locate [read.txt] [flank-pattern.txt]",
	Short: "Find anchors of a flank pattern within a read via seed-and-extend",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		read, err := readSequenceFile(args[0])
		if err != nil {
			return fmt.Errorf("read sequence: %w", err)
		}
		pattern, err := readSequenceFile(args[1])
		if err != nil {
			return fmt.Errorf("read pattern: %w", err)
		}

		var anchors []locate.Anchor
		if locateInverted {
			anchors = locate.FindFlankAnchorsInverted(read, pattern, locateK, locateMinMatchLen, locateStride, locateMaxErrors)
		} else {
			anchors = locate.FindFlankAnchors(read, pattern, locateK, locateMinMatchLen, locateStride, locateMaxErrors)
		}
		anchors = locate.FilterAnchors(anchors, locateOverlapThreh)

		fmt.Printf("read GC content=%.3f pattern GC content=%.3f\n",
			locate.GCContent(read), locate.GCContent(pattern))

		if len(anchors) == 0 {
			fmt.Println("no anchors found")
			return nil
		}
		for _, a := range anchors {
			fmt.Printf("read[%d:%d] pattern[%d:%d] score=%g identity=%g inverted=%t\n",
				a.ReadStart, a.ReadEnd, a.PatternStart, a.PatternEnd, a.Score, a.Identity, a.Inverted)
		}
		return nil
	},
}

func init() {
	locateCmd.Flags().IntVar(&locateK, "k", 11, "k-mer seed length")
	locateCmd.Flags().IntVar(&locateMinMatchLen, "min-match-len", 15, "minimum extended match length")
	locateCmd.Flags().IntVar(&locateStride, "stride", 4, "seed scan stride")
	locateCmd.Flags().IntVar(&locateMaxErrors, "max-errors", 3, "maximum mismatches/indels tolerated during extension")
	locateCmd.Flags().Float64Var(&locateOverlapThreh, "overlap-threshold", 0.5, "fraction of overlap above which a lower-scoring anchor is dropped")
	locateCmd.Flags().BoolVar(&locateInverted, "inverted", false, "search for the reverse complement of the pattern")
}

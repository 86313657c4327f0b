package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berntpopp/adVNTR/internal/repeatunit"
)

var estimateRepeatCmd = &cobra.Command{
	Use:   "estimate-repeat [read.txt]",
	Short: "Estimate the dominant tandem-repeat unit within a raw read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := readSequenceFile(args[0])
		if err != nil {
			return fmt.Errorf("read sequence: %w", err)
		}
		unit := repeatunit.EstimateRepeatUnit(seq)
		if unit.Unit == "" {
			fmt.Println("no tandem repeat found")
			return nil
		}
		fmt.Printf("unit=%s copies=%d inverted=%t\n", unit.Unit, unit.Copies, unit.Inverted)
		return nil
	},
}

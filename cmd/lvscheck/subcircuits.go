package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/opencircuit/lvscheck/verify"
)

func newSubcircuitsCmd(logger func() logr.Logger) *cobra.Command {
	var layoutPath, patternNetPath string

	cmd := &cobra.Command{
		Use:   "subcircuits --layout <cif-file> --pattern <netlist-file>",
		Short: "find every occurrence of a pattern subcircuit within a layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			layout, pattern, err := loadGraphs(layoutPath, patternNetPath, log)
			if err != nil {
				return err
			}

			result := verify.FindSubcircuits(pattern, layout, verify.WithLogger(log))
			fmt.Fprintf(cmd.OutOrStdout(), "%d instance(s) found (%.4fs)\n", len(result.Instances), result.ElapsedSeconds)
			for i, nodeIDs := range result.Instances {
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %v\n", i, nodeIDs)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&layoutPath, "layout", "", "path to a CIF-like layout file")
	cmd.Flags().StringVar(&patternNetPath, "pattern", "", "path to a netlist file describing the pattern subcircuit")
	_ = cmd.MarkFlagRequired("layout")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

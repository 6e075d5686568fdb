package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/opencircuit/lvscheck/verify"
)

func newVerifyCmd(logger func() logr.Logger) *cobra.Command {
	var layoutPath, netPath, graphOutPath string

	cmd := &cobra.Command{
		Use:   "verify --layout <cif-file> --netlist <netlist-file>",
		Short: "check a layout against a schematic netlist for equivalence",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			layout, schematicGraph, err := loadGraphs(layoutPath, netPath, log)
			if err != nil {
				return err
			}

			result := verify.Verify(layout, schematicGraph, verify.WithLogger(log))
			if err := maybeExportGraph(graphOutPath, layout); err != nil {
				return err
			}

			if result.Equivalent {
				fmt.Fprintf(cmd.OutOrStdout(), "equivalent (%.4fs)\n", result.ElapsedSeconds)

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "NOT equivalent (%.4fs); discrepant layout node ids: %v\n",
				result.ElapsedSeconds, result.DiscrepantLayoutNodeIDs)
			os.Exit(1)

			return nil
		},
	}

	cmd.Flags().StringVar(&layoutPath, "layout", "", "path to a CIF-like layout file")
	cmd.Flags().StringVar(&netPath, "netlist", "", "path to a netlist file")
	cmd.Flags().StringVar(&graphOutPath, "graph-out", "", "optional path to write the extracted layout graph as JSON")
	_ = cmd.MarkFlagRequired("layout")
	_ = cmd.MarkFlagRequired("netlist")

	return cmd
}

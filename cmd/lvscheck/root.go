package main

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
)

// newRootCmd assembles the lvscheck command tree. Logging verbosity is
// the one global flag every subcommand shares; everything else (input
// paths, output path) is local to its subcommand.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "lvscheck",
		Short:         "layout-versus-schematic verifier",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable info-level logging")

	logger := func() logr.Logger {
		if verbose {
			return funcr.New(func(prefix, args string) {
				if prefix != "" {
					os.Stderr.WriteString(prefix + ": " + args + "\n")

					return
				}
				os.Stderr.WriteString(args + "\n")
			}, funcr.Options{LogCaller: funcr.None, Verbosity: 1})
		}

		return logr.Discard()
	}

	root.AddCommand(newVerifyCmd(logger))
	root.AddCommand(newSubcircuitsCmd(logger))

	return root
}

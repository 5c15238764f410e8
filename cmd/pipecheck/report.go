package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gatewerk/pipecheck/pkg/report"
)

// reportCmd runs every check and renders the full result. Exit code is 0
// iff there are zero errors; warnings never affect it.
func reportCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		jsonOut bool
		useCat  bool
	)

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Comprehensive validation report for a pipeline document",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			opts := report.Options{}
			if useCat {
				cat, err := buildCatalog(cfg)
				if err != nil {
					fmt.Fprintf(os.Stderr, "catalog unavailable: %v\n", err)
					os.Exit(2)
				}
				opts.Catalog = cat
			}

			rep, err := report.File(cmd.Context(), args[0], opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(2)
			}

			if jsonOut {
				if err := rep.WriteJSON(os.Stdout); err != nil {
					fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
					os.Exit(2)
				}
			} else {
				report.Printer{Verbose: verbose, Quiet: quiet}.Print(os.Stdout, rep)
			}

			if rep.Status == report.StatusFail {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Emit per-check progress lines")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the structured report as JSON")
	cmd.Flags().BoolVar(&useCat, "catalog", false, "Also verify node types against the schema catalog")

	return cmd
}

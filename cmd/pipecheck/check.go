package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gatewerk/pipecheck/pkg/validate"
)

// checkCmd is the pre-commit gate: silent on success, one diagnostic line
// and exit code 1 on the first failure.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Fast structural check of a pipeline document",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
				os.Exit(1)
			}

			if err := validate.Fast(data); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
				os.Exit(1)
			}
		},
	}
}

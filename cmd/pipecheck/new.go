package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gatewerk/pipecheck/pkg/generate"
)

// newCmd generates a well-formed pipeline document. Nodes are given as
// repeated --node flags of the form "class-id" or "class-id:version", with
// an optional output count suffix "class-id:version:outputs".
func newCmd() *cobra.Command {
	var (
		author  string
		purpose string
		nodes   []string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a pipeline document",
		Run: func(cmd *cobra.Command, args []string) {
			if len(nodes) == 0 {
				fmt.Fprintln(os.Stderr, "at least one --node is required")
				os.Exit(2)
			}

			builder := generate.NewBuilder(author, purpose)
			for _, spec := range nodes {
				classID, version, outputs, err := parseNodeSpec(spec)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%v\n", err)
					os.Exit(2)
				}
				builder.AddBranchingNode(classID, version, outputs)
			}

			data, err := builder.Marshal()
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(2)
			}

			if outPath == "" {
				fmt.Print(string(data))
				return
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write document: %v\n", err)
				os.Exit(2)
			}
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Pipeline author")
	cmd.Flags().StringVar(&purpose, "purpose", "", "Pipeline purpose")
	cmd.Flags().StringArrayVar(&nodes, "node", nil, "Node spec: class-id[:version[:outputs]]")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func parseNodeSpec(spec string) (classID string, version, outputs int, err error) {
	parts := strings.Split(spec, ":")
	classID = parts[0]
	version = 1
	outputs = 1
	if classID == "" {
		return "", 0, 0, fmt.Errorf("invalid node spec '%s': empty class id", spec)
	}
	if len(parts) > 1 {
		if version, err = strconv.Atoi(parts[1]); err != nil {
			return "", 0, 0, fmt.Errorf("invalid node spec '%s': bad version", spec)
		}
	}
	if len(parts) > 2 {
		if outputs, err = strconv.Atoi(parts[2]); err != nil {
			return "", 0, 0, fmt.Errorf("invalid node spec '%s': bad output count", spec)
		}
	}
	if len(parts) > 3 {
		return "", 0, 0, fmt.Errorf("invalid node spec '%s'", spec)
	}
	return classID, version, outputs, nil
}

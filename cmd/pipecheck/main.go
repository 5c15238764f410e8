// Package main provides the pipecheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gatewerk/pipecheck/pkg/config"
)

// Version information
const (
	AppName    = "pipecheck"
	AppVersion = "0.1.0"
)

var (
	// Global flags
	configPath string

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pipecheck",
		Short: "Pipeline document validator",
		Long:  "Validates and generates pipeline configuration documents before they are committed",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load environment variables from .env file
			_ = godotenv.Load()

			if configPath != "" {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
					os.Exit(2)
				}
				cfg = loaded
			} else {
				cfg = config.DefaultConfig()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", AppName, AppVersion)
		},
	}

	rootCmd.AddCommand(checkCmd(), reportCmd(), newCmd(), catalogCmd(), versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/cli"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mechconfig",
	Short: "Validate and inspect chemical mechanism configurations",
	Long: `Mechconfig parses chemical mechanism configuration files (species, phases,
reactions and aerosol models) and reports every defect it finds.

Supported document generations:
  - legacy CAMP documents (camp-data / camp-files)
  - version 1.x documents
  - version 2.x documents, which add models and phase species properties

Errors carry the file, line and column of the offending node, and a
suggested fix where one can be inferred.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// The report already lists each failure.
		var failed *cli.ValidationFailedError
		if !errors.As(err, &failed) || verbose {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "mechconfig.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Package cli implements the dgaconf command line tool for working with
// calculation manifests: validating, resolving, diffing and scaffolding
// them, and watching them for changes.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/viennacmp/dga/slogger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:          "dgaconf",
	Short:        "Work with dynamical vertex approximation calculation manifests",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Log level to use (debug, info, warn, error)")
}

func newLogger() slogger.Logger {
	return slogger.New(slogger.LevelFromString(logLevel))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

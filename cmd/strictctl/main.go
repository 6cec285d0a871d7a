// Package main provides the strictctl CLI for inspecting, validating, and
// converting strict container snapshot files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfig string
	flagJSON   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "strictctl",
	Short: "Inspect and validate strict container snapshots",
	Long: `Strictctl works with snapshot files of type-restricted containers:
it validates that stored items still satisfy the recorded allow-list,
prints container contents, and converts between ordered and keyed shapes.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .strictctl.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(convertCmd)
}

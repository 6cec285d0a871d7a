// The check command validates a snapshot file: the container is
// restored, which re-validates every stored item against the recorded
// allow-list.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strictly/pkg/strict"
)

// checkResult is the --json output of the check command.
type checkResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a container snapshot",
	Long: `Restore the snapshot in FILE and report whether every stored item
still satisfies the recorded allow-list. Exits 1 when the snapshot is
invalid and 2 when the file cannot be read.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read snapshot: %s\n", err)
		os.Exit(exitSysError)
	}

	_, restoreErr := strict.Restore(data)

	if jsonOutput() {
		res := checkResult{File: path, Valid: restoreErr == nil}
		if restoreErr != nil {
			res.Error = restoreErr.Error()
		}
		out, err := json.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else if restoreErr == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid: %s\n", path, restoreErr)
	}

	if restoreErr != nil {
		os.Exit(exitUserError)
	}
	return nil
}

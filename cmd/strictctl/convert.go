// The convert command turns an ordered snapshot into a keyed one and
// back, preserving the allow-list.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strictly/pkg/strict"
)

var flagConvertOut string

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Convert between ordered and keyed snapshots",
	Long: `Convert the snapshot in FILE: an ordered container (list, stack,
queue) becomes a keyed collection with indices as keys; a keyed
container becomes a list when its keys are list-shaped. The allow-list
carries over. The converted snapshot is written to stdout or -o FILE.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&flagConvertOut, "output", "o", "", "write the converted snapshot to this file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read snapshot: %s\n", err)
		os.Exit(exitSysError)
	}

	c, err := strict.Restore(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "restore snapshot: %s\n", err)
		os.Exit(exitUserError)
	}

	converted, err := convertContainer(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "convert: %s\n", err)
		os.Exit(exitUserError)
	}

	out, err := strict.Snapshot(converted)
	if err != nil {
		return fmt.Errorf("snapshot converted container: %w", err)
	}

	if flagConvertOut != "" {
		if err := os.WriteFile(flagConvertOut, out, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write snapshot: %s\n", err)
			os.Exit(exitSysError)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// convertContainer maps each container shape to its counterpart.
func convertContainer(c any) (any, error) {
	switch v := c.(type) {
	case *strict.Stack:
		return v.ToCollection(), nil
	case *strict.Queue:
		return v.ToCollection(), nil
	case *strict.List:
		return v.ToCollection(), nil
	case *strict.Array:
		return v.ToList()
	case *strict.Collection:
		return v.ToList()
	default:
		return nil, fmt.Errorf("unsupported container %T", c)
	}
}

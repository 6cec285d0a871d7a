// The show command prints a snapshot's kind, allow-list, and contents.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/strictly/pkg/strict"
)

// showEntry is one container entry in the --json output of show. Key is
// nil for ordered containers, so a keyed entry under an empty string key
// still carries a "key" field.
type showEntry struct {
	Key   *string `json:"key,omitempty"`
	Value any     `json:"value"`
}

// showResult is the --json output of the show command.
type showResult struct {
	Kind         string      `json:"kind"`
	AllowedTypes []string    `json:"allowed_types"`
	Count        int         `json:"count"`
	Entries      []showEntry `json:"entries"`
}

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a container snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
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

	res := describe(c)

	if jsonOutput() {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "kind:    %s\n", res.Kind)
	types := "(unrestricted)"
	if len(res.AllowedTypes) > 0 {
		types = strings.Join(res.AllowedTypes, ", ")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "allowed: %s\n", types)
	fmt.Fprintf(cmd.OutOrStdout(), "count:   %d\n", res.Count)
	for _, e := range res.Entries {
		if e.Key != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", *e.Key, e.Value)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  %v\n", e.Value)
		}
	}
	return nil
}

// describe flattens a restored container into the show output record.
func describe(c any) showResult {
	switch v := c.(type) {
	case *strict.Stack:
		return orderedResult(strict.ContainerStack, v.AllowedTypes(), v.ToSlice())
	case *strict.Queue:
		return orderedResult(strict.ContainerQueue, v.AllowedTypes(), v.ToSlice())
	case *strict.List:
		return orderedResult(strict.ContainerList, v.AllowedTypes(), v.ToSlice())
	case *strict.Array:
		return keyedResult(strict.ContainerArray, v.AllowedTypes(), v.Keys(), v.Values())
	case *strict.Collection:
		return keyedResult(strict.ContainerCollection, v.AllowedTypes(), v.Keys(), v.Values())
	default:
		return showResult{Kind: fmt.Sprintf("%T", c)}
	}
}

func orderedResult(kind string, types []string, items []any) showResult {
	res := showResult{Kind: kind, AllowedTypes: types, Count: len(items)}
	for _, v := range items {
		res.Entries = append(res.Entries, showEntry{Value: v})
	}
	return res
}

func keyedResult(kind string, types []string, keys []strict.Key, values []any) showResult {
	res := showResult{Kind: kind, AllowedTypes: types, Count: len(keys)}
	for i, k := range keys {
		name := k.String()
		res.Entries = append(res.Entries, showEntry{Key: &name, Value: values[i]})
	}
	return res
}

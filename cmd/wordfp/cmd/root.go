/*
Package cmd implements the sub-commands of the wordfp command line tool.

Every sub-command reads a word list from a file and prints the result of one
of the word utilities to standard output.
*/
package cmd

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'wordfp.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("wordfp.cmd")
}

// traceKeys are the tracers which are configured by flag --trace.
var traceKeys = []string{"wordfp.cmd", "wordfp.words", "wordfp.multiset"}

// NewRootCommand creates the wordfp command together with all of its sub-commands.
func NewRootCommand() *cobra.Command {
	var traceLevel string
	root := &cobra.Command{
		Use:   "wordfp",
		Short: "Utilities for lists of words",
		Long: `wordfp reads whitespace-separated words from a file and counts,
deduplicates, filters or sorts them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseTraceLevel(traceLevel)
			if err != nil {
				return err
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&traceLevel, "trace", "error", "trace level (error, info, debug)")
	root.AddCommand(
		newCountCommand(),
		newDedupCommand(),
		newLengthCommand(),
		newMultisetCommand(),
		newPalindromeCommand(),
		newPalindromesCommand(),
	)
	return root
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch s {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

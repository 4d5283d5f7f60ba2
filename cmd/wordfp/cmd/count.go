package cmd

import (
	"fmt"

	"github.com/npillmayer/wordfp/words"
	"github.com/spf13/cobra"
)

func newCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count FILE",
		Short: "Count the occurrences of each word",
		Long: `Count the occurrences of each word in FILE. Prints one line per
distinct word, sorted by word, followed by the total number of words.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := words.ReadWords(args[0])
			if err != nil {
				return err
			}
			freq := words.CountWords(wl)
			out := cmd.OutOrStdout()
			for _, w := range freq.Words() {
				fmt.Fprintf(out, "%s %d\n", w, freq[w])
			}
			fmt.Fprintf(out, "total %d\n", freq.Total())
			return nil
		},
	}
}

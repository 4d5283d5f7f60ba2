package cmd

import (
	"fmt"

	"github.com/npillmayer/wordfp/words"
	"github.com/spf13/cobra"
)

func newMultisetCommand() *cobra.Command {
	var byLength bool
	c := &cobra.Command{
		Use:   "multiset FILE",
		Short: "Print all words in sorted order, keeping duplicates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := words.ReadWords(args[0])
			if err != nil {
				return err
			}
			cmp := words.Lexicographic
			if byLength {
				cmp = words.ByLength
			}
			fmt.Fprintln(cmd.OutOrStdout(), words.Render(wl, cmp))
			return nil
		},
	}
	c.Flags().BoolVar(&byLength, "by-length", false, "order by length first, then lexicographically")
	return c
}

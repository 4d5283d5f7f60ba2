package cmd

import (
	"fmt"

	"github.com/npillmayer/wordfp/words"
	"github.com/spf13/cobra"
)

func newLengthCommand() *cobra.Command {
	var n int
	c := &cobra.Command{
		Use:   "length FILE",
		Short: "Count the words of a given length",
		Long: `Count the words in FILE which consist of exactly --length characters.
A negative length matches no word.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := words.ReadWords(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), words.CountLength(wl, n))
			return nil
		},
	}
	c.Flags().IntVarP(&n, "length", "n", 0, "number of characters a word must have")
	return c
}

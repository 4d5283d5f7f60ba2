package cmd

import (
	"fmt"

	"github.com/npillmayer/wordfp/words"
	"github.com/spf13/cobra"
)

func newDedupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dedup FILE",
		Short: "Print the distinct words, sorted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := words.ReadWords(args[0])
			if err != nil {
				return err
			}
			distinct := words.Deduplicate(wl)
			tracer().Debugf("%d words, %d distinct", len(wl), len(distinct))
			for _, w := range distinct {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

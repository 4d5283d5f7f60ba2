package cmd

import (
	"fmt"

	"github.com/npillmayer/wordfp/words"
	"github.com/spf13/cobra"
)

func newPalindromeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome PHRASE...",
		Short: "Check if phrases are palindromes",
		Long: `Check each PHRASE argument for being a palindrome, ignoring case and
everything but letters. Prints true or false for each of them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, phrase := range args {
				fmt.Fprintln(cmd.OutOrStdout(), words.IsPalindrome(phrase))
			}
			return nil
		},
	}
}

func newPalindromesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palindromes FILE",
		Short: "Print the words of a file which are palindromes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := words.ReadWords(args[0])
			if err != nil {
				return err
			}
			for _, w := range wl {
				if words.IsPalindrome(w) {
					fmt.Fprintln(cmd.OutOrStdout(), w)
				}
			}
			return nil
		},
	}
}

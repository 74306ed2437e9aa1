package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passgen/pkg/phonetic"
)

func newPhoneticCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phonetic WORD...",
		Short: "Spell words with the NATO phonetic alphabet",
		Example: `  passgen phonetic Xk9
  XRAY kilo 9`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, word := range args {
				if _, err := fmt.Fprintln(out, phonetic.Encode(word)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

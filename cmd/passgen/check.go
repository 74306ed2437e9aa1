package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passgen/pkg/passgen"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check TEMPLATE",
		Short: "Compile a template and print its instructions",
		Long: `check validates a template without generating anything.

Template syntax:
  l v c d h o b a * !   draw from a character class
  .X                    force lowercase for the next character
  :X                    force uppercase for the next character
  -X                    emit X literally
  anything else         emitted as is`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := passgen.Compile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, in := range prog.Instructions() {
				if _, err := fmt.Fprintf(out, "%d\t%s\n", i, in); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/exprtree"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), exprtree.Grammar)
			return err
		},
	}
}

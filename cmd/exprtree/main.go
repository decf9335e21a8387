package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("exprtree")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose int
		s       settings
	)
	rootCmd := &cobra.Command{
		Use:          "exprtree",
		Short:        "Parse arithmetic expressions into syntax trees",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more (repeat for debug output)")
	rootCmd.PersistentFlags().StringVarP(&s.format, "format", "f", "tree", "output format: tree, text, or json")
	rootCmd.PersistentFlags().StringVar(&s.mark, "decimal", ".", "decimal marker in numeric literals")

	rootCmd.AddCommand(newParseCmd(&s))
	rootCmd.AddCommand(newReplCmd(&s))
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}

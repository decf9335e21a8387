package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zephyrtronium/exprtree"
)

func newParseCmd(s *settings) *cobra.Command {
	var inname string

	cmd := &cobra.Command{
		Use:   "parse [expression...]",
		Short: "Parse expressions and print their trees",
		Long: `Parse each argument as an expression and print its tree.
With no arguments, or with --in, parse each line of the input instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.options()
			if err != nil {
				return err
			}
			emit, err := s.printer()
			if err != nil {
				return err
			}

			srcs := args
			if inname != "" || len(args) == 0 {
				lines, err := readLines(cmd.InOrStdin(), inname)
				if err != nil {
					return err
				}
				srcs = append(srcs, lines...)
			}

			out := cmd.OutOrStdout()
			for _, src := range srcs {
				n := exprtree.Parse(src, opts...)
				log.Debugf("%q: %d children, %d operators", src, n.Len(), n.NumOperators())
				if err := emit(out, n); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			log.Infof("parsed %d expressions", len(srcs))
			return nil
		},
	}

	cmd.Flags().StringVar(&inname, "in", "", `input file, one expression per line ("-" for stdin)`)

	return cmd
}

// readLines reads the non-blank lines of the named file, or of stdin if the
// name is empty or "-".
func readLines(stdin io.Reader, inname string) ([]string, error) {
	in := stdin
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	var lines []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		lines = append(lines, scan.Text())
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

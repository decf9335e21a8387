package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/zephyrtronium/exprtree"
)

const (
	historyFile = ".exprtree_history"
	prompt      = "> "
)

func newReplCmd(s *settings) *cobra.Command {
	var nohist bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse expressions interactively",
		Long: `Read expressions from the terminal and print the tree of each one.
Ctrl+C cancels the current line, Ctrl+D or :quit exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.options()
			if err != nil {
				return err
			}
			emit, err := s.printer()
			if err != nil {
				return err
			}

			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			hist := ""
			if !nohist {
				hist = historyPath()
				loadHistory(ln, hist)
			}

			out := cmd.OutOrStdout()
			for {
				line, err := ln.Prompt(prompt)
				if err != nil {
					if errors.Is(err, liner.ErrPromptAborted) {
						continue
					}
					if errors.Is(err, io.EOF) {
						break
					}
					return fmt.Errorf("read input: %w", err)
				}
				src := strings.TrimSpace(line)
				if src == ":quit" {
					break
				}
				if src == "" {
					continue
				}
				ln.AppendHistory(line)
				if err := emit(out, exprtree.Parse(line, opts...)); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			if hist != "" {
				saveHistory(ln, hist)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&nohist, "no-history", false, "do not read or write the history file")

	return cmd
}

// historyPath returns the location of the history file, or the empty string
// if there is no home directory.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Debugf("no home directory for history: %v", err)
		return ""
	}
	return filepath.Join(home, historyFile)
}

func loadHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warningf("open history: %v", err)
		}
		return
	}
	defer f.Close()
	if _, err := ln.ReadHistory(f); err != nil {
		log.Warningf("read history: %v", err)
	}
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Warningf("create history: %v", err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Warningf("write history: %v", err)
	}
}

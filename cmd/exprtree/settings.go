package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/exprtree"
)

// settings are the flags shared by every subcommand.
type settings struct {
	format string
	mark   string
}

// options converts the settings to parse options.
func (s *settings) options() (opts []exprtree.ParseOption, err error) {
	if s.mark == "." {
		return nil, nil
	}
	r, sz := utf8.DecodeRuneInString(s.mark)
	if sz == 0 || sz != len(s.mark) {
		return nil, fmt.Errorf("decimal marker must be a single character, not %q", s.mark)
	}
	defer func() {
		// DecimalMarker panics on markers that collide with syntax.
		if p := recover(); p != nil {
			opts, err = nil, fmt.Errorf("invalid decimal marker: %v", p)
		}
	}()
	return []exprtree.ParseOption{exprtree.DecimalMarker(r)}, nil
}

// printer returns the function that writes a tree in the configured format.
func (s *settings) printer() (func(io.Writer, *exprtree.Node) error, error) {
	switch s.format {
	case "tree":
		return writeTree, nil
	case "text":
		return writeText, nil
	case "json":
		return writeJSON, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", s.format)
	}
}

func writeText(w io.Writer, n *exprtree.Node) error {
	_, err := fmt.Fprintln(w, n)
	return err
}

func writeJSON(w io.Writer, n *exprtree.Node) error {
	return json.NewEncoder(w).Encode(n)
}

// writeTree writes one line per node, indented by depth.
func writeTree(w io.Writer, n *exprtree.Node) error {
	var b strings.Builder
	fmttree(&b, n, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func fmttree(b *strings.Builder, n *exprtree.Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n.Negated() {
		b.WriteByte('-')
	}
	b.WriteString(n.Kind().String())
	if n.Text() != "" {
		b.WriteByte(' ')
		b.WriteString(n.Text())
	}
	if n.NumOperators() > 0 {
		fmt.Fprintf(b, " %q", n.Operators())
	}
	b.WriteByte('\n')
	for _, c := range n.Children() {
		fmttree(b, c, depth+1)
	}
}

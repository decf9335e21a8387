package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "tree",
			args: []string{"parse", "A+B*C"},
			want: "Scope [\"+\"]\n  Variable A\n  Scope [\"*\"]\n    Variable B\n    Variable C\n",
		},
		{
			name: "text",
			args: []string{"parse", "-f", "text", "1+-((2))", "7vari"},
			want: "1+-2\n7 vari\n",
		},
		{
			name: "json",
			args: []string{"parse", "--format", "json", "--", "-x"},
			want: `{"kind":"Scope","text":"","negated":false,"operators":[],"children":[{"kind":"Variable","text":"x","negated":true,"operators":[],"children":[]}]}` + "\n",
		},
		{
			name:  "stdin",
			stdin: "a+b\n\n  \nf()\n",
			args:  []string{"parse", "-f", "text"},
			want:  "a+b\nf()\n",
		},
		{
			name: "decimal",
			args: []string{"parse", "-f", "text", "--decimal", ",", "f(1,5)"},
			want: "f(1,5)\n",
		},
		{
			name: "negated-call",
			args: []string{"parse", "--", "-test()"},
			want: "Scope\n  -Function test\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := run(t, c.stdin, c.args...)
			if err != nil {
				t.Fatalf("%v failed: %v", c.args, err)
			}
			if got != c.want {
				t.Errorf("%v:\n\twant %q\n\tgot  %q", c.args, c.want, got)
			}
		})
	}
}

func TestParseCmdFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs.txt")
	if err := os.WriteFile(name, []byte("x*y\n5+6++7+\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "", "parse", "-f", "text", "--in", name)
	if err != nil {
		t.Fatal(err)
	}
	if want := "x*y\n5+6++7+\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestParseCmdErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"format", []string{"parse", "-f", "xml", "x"}},
		{"decimal-long", []string{"parse", "--decimal", "..", "x"}},
		{"decimal-empty", []string{"parse", "--decimal=", "x"}},
		{"decimal-reserved", []string{"parse", "--decimal=-", "x"}},
		{"missing-file", []string{"parse", "--in", filepath.Join(os.TempDir(), "exprtree-does-not-exist")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := run(t, "", c.args...); err == nil {
				t.Errorf("%v succeeded", c.args)
			}
		})
	}
}

func TestGrammarCmd(t *testing.T) {
	got, err := run(t, "", "grammar")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Expression =") {
		t.Errorf("grammar output lacks start production:\n%s", got)
	}
}

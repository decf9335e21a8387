package exprtree

import _ "embed"

// Grammar is an EBNF description of the expressions Parse understands, in
// the notation of golang.org/x/exp/ebnf. The start production is
// "Expression". Letters and digits stand for the full Unicode classes that
// Parse accepts, and "." for the configured decimal marker.
//
//go:embed grammar.ebnf
var Grammar string

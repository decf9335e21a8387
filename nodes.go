package exprtree

import (
	"encoding/json"
	"strings"
)

// Kind is the kind of a node in a parsed expression.
type Kind int8

const (
	// Scope is a sequence of operands joined by operators. The root of every
	// parse is a Scope, as are parenthesized groups, groups of operands bound
	// by higher precedence operators, and compound function arguments.
	Scope Kind = iota
	// Constant is a numeric literal. Its text is exactly as written.
	Constant
	// Variable is a name that is not followed by an open parenthesis.
	Variable
	// Function is a name followed by an open parenthesis. Its children are
	// its arguments.
	Function
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind
//go:generate go mod tidy

// Operator is an operator symbol as written in the expression. Runs of
// operator characters form a single symbol, so "++" and "*%" are operators.
type Operator string

// Raises returns whether op binds tighter than the operators that are not
// *, / or %. Only the exact symbols "*", "/" and "%" do.
func (op Operator) Raises() bool {
	switch op {
	case "*", "/", "%":
		return true
	default:
		return false
	}
}

// Node is a node in a parsed expression. Nodes are immutable.
//
// The operators of a node are the operator tokens encountered while the node
// was open, in order. A node with n children usually has n-1 operators, but
// trailing operators are kept and juxtaposed operands have no operator
// between them, so any count is possible.
type Node struct {
	kind     Kind
	text     string
	neg      bool
	children []*Node
	ops      []Operator
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Text returns the literal text of a Constant, Variable, or Function node.
// For Scope nodes, the result is the empty string.
func (n *Node) Text() string {
	return n.text
}

// Negated returns whether a unary minus applies to the node.
func (n *Node) Negated() bool {
	return n.neg
}

// Len returns the number of children of the node.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i'th child of the node. Panics if i is out of range.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns a copy of the node's children in order.
func (n *Node) Children() []*Node {
	return append([]*Node{}, n.children...)
}

// NumOperators returns the number of operators recorded in the node.
func (n *Node) NumOperators() int {
	return len(n.ops)
}

// Operator returns the i'th operator of the node. Panics if i is out of
// range.
func (n *Node) Operator(i int) Operator {
	return n.ops[i]
}

// Operators returns a copy of the node's operators in order.
func (n *Node) Operators() []Operator {
	return append([]Operator{}, n.ops...)
}

// String renders the minimal textual form of the expression rooted at n.
// Parsing the result with the same options produces the same tree for any
// tree parsed from well-formed input: balanced parentheses, commas only
// between the arguments of a call, and each operator written after an
// operand.
func (n *Node) String() string {
	var b strings.Builder
	if n.kind == Scope && !n.neg {
		n.fmtbody(&b)
	} else {
		n.fmt(&b)
	}
	return b.String()
}

// fmt writes n as an operand.
func (n *Node) fmt(b *strings.Builder) {
	if n.neg {
		b.WriteByte('-')
	}
	switch n.kind {
	case Scope:
		if !n.neg && len(n.children) == 1 && len(n.ops) > 0 {
			// Only a group left open by a trailing operator, as in a+b*, has a
			// single operand. Brackets would unwrap it.
			n.fmtbody(b)
			return
		}
		b.WriteByte('(')
		n.fmtbody(b)
		b.WriteByte(')')
	case Constant, Variable:
		b.WriteString(n.text)
	case Function:
		b.WriteString(n.text)
		b.WriteByte('(')
		for i, arg := range n.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if arg.kind == Scope && !arg.neg {
				// Compound arguments are scopes in their own right.
				arg.fmtbody(b)
				continue
			}
			arg.fmt(b)
		}
		if k := len(n.children); k > 0 {
			if last := n.children[k-1]; last.kind == Scope && !last.neg && len(last.children) == 0 {
				// An empty last argument is only kept before a separator.
				b.WriteByte(',')
			}
		}
		b.WriteByte(')')
	default:
		panic("exprtree: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// fmtbody writes the operands and operators of a scope without brackets.
func (n *Node) fmtbody(b *strings.Builder) {
	k := 0
	for i, c := range n.children {
		if i > 0 {
			if k < len(n.ops) {
				b.WriteString(string(n.ops[k]))
				k++
			} else {
				b.WriteByte(' ')
			}
		}
		c.fmt(b)
	}
	for _, op := range n.ops[k:] {
		b.WriteString(string(op))
	}
}

type jsonNode struct {
	Kind      string     `json:"kind"`
	Text      string     `json:"text"`
	Negated   bool       `json:"negated"`
	Operators []Operator `json:"operators"`
	Children  []*Node    `json:"children"`
}

// MarshalJSON encodes the tree rooted at n as nested JSON objects.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNode{
		Kind:      n.kind.String(),
		Text:      n.text,
		Negated:   n.neg,
		Operators: n.ops,
		Children:  n.children,
	})
}

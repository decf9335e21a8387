package exprtree

import (
	"strings"
	"unicode"
)

// Parse parses an expression into a tree. The given options are applied in
// order.
//
// Parse accepts any input. The root of the result is always a Scope; for
// empty or all-whitespace input it has no children and no operators.
func Parse(src string, opts ...ParseOption) *Node {
	ctx := defaultctx()
	for _, opt := range opts {
		ctx = opt.parseOption(ctx)
	}
	if strings.TrimSpace(src) == "" {
		return &Node{kind: Scope, children: []*Node{}, ops: []Operator{}}
	}
	p := parser{
		cursor: cursor{src: src},
		mark:   ctx.mark,
		stack:  []*pnode{{kind: Scope}},
	}
	p.run()
	return p.finish()
}

// parser holds the state of one parse. The context stack always holds the
// root scope at the bottom, and the root is never popped until the input is
// exhausted.
type parser struct {
	cursor
	// mark is the decimal marker.
	mark rune
	// stack is the stack of open contexts.
	stack []*pnode
	// neg is the pending unary negation for the next operand or group.
	neg bool
}

func (p *parser) run() {
	for {
		r, ok := p.peek()
		if !ok {
			return
		}
		switch {
		case r == '(':
			p.skip()
			p.push(&pnode{kind: Scope, paren: true, neg: p.neg})
			p.neg = false
		case r == ')':
			p.skip()
			p.closeparen()
		case r == ',':
			p.skip()
			if p.top().raised {
				p.close()
			}
			p.closearg()
			p.push(&pnode{kind: Scope, fn: true})
		case r == '-':
			p.skip()
			p.minus()
		case isopchar(r):
			p.operator(Operator(p.scanWhile(isopchar)))
		case p.isnum(r):
			p.operand(&pnode{kind: Constant, text: p.scanWhile(p.isnum)})
		case unicode.IsSpace(r):
			p.skip()
		default:
			p.name(p.scanWhile(isnamechar))
		}
	}
}

// finish closes every open context and converts the tree.
func (p *parser) finish() *Node {
	for len(p.stack) > 1 {
		p.close()
	}
	return p.stack[0].freeze()
}

func (p *parser) isnum(r rune) bool {
	return r == p.mark || unicode.IsDigit(r)
}

func (p *parser) top() *pnode {
	return p.stack[len(p.stack)-1]
}

func (p *parser) push(n *pnode) {
	p.stack = append(p.stack, n)
}

// drop removes the top context and returns it. It returns nil instead of
// removing the root.
func (p *parser) drop() *pnode {
	k := len(p.stack) - 1
	if k == 0 {
		return nil
	}
	n := p.stack[k]
	p.stack[k] = nil
	p.stack = p.stack[:k]
	return n
}

// close attaches the top context to the one beneath it.
func (p *parser) close() {
	if n := p.drop(); n != nil {
		p.top().add(n)
	}
}

// unwrap replaces the top context, which must have exactly one child, with
// that child and returns it. The child keeps its own negation.
func (p *parser) unwrap() *pnode {
	if len(p.stack) == 1 {
		return nil
	}
	c := p.drop().pop()
	p.top().add(c)
	return c
}

// closearg finishes the argument on top of the stack. Single operands are
// attached directly; anything else is kept as a compound argument.
func (p *parser) closearg() {
	if len(p.top().children) == 1 {
		p.unwrap()
		return
	}
	p.close()
}

// endcall finishes the last argument of a call and then the call itself.
func (p *parser) endcall() {
	if len(p.top().children) == 0 {
		// No argument was written, as in f() or f(a,).
		p.drop()
	} else {
		p.closearg()
	}
	p.close()
}

// closeparen handles a ')'. A group holding a single operand is replaced by
// that operand, which takes the group's negation in place of its own. When a
// raised group sits directly on an argument container, the ')' ends the whole
// call, so operators after it belong to the scope around the call.
func (p *parser) closeparen() {
	if len(p.stack) == 1 {
		return
	}
	if p.top().raised {
		p.close()
		if !p.top().container() {
			// The raised group was inside a parenthesized group, which now
			// has at least the raised group and the operand before it.
			p.close()
			return
		}
	}
	if p.top().container() {
		p.endcall()
		return
	}
	if top := p.top(); len(top.children) == 1 {
		neg := top.neg
		p.unwrap().neg = neg
		return
	}
	p.close()
}

// minus handles a '-', which is unary when no operand has been seen since the
// last operator.
func (p *parser) minus() {
	top := p.top()
	if len(top.ops) == len(top.children) {
		p.neg = !p.neg
		return
	}
	if top.raised {
		p.close()
	}
	p.top().addOp("-")
}

func (p *parser) operator(op Operator) {
	if !op.Raises() && p.top().raised {
		p.close()
	}
	top := p.top()
	if !raises(top, op) {
		top.addOp(op)
		return
	}
	r := &pnode{kind: Scope, raised: true}
	r.add(top.pop())
	r.addOp(op)
	p.push(r)
}

// raises returns whether op opens a raised group in n. It does when op is
// one of *, / or % following any other operator, and there is an operand to
// pull into the group.
func raises(n *pnode, op Operator) bool {
	k := len(n.ops) - 1
	return op.Raises() && k >= 0 && !n.ops[k].Raises() && len(n.children) > 0
}

func (p *parser) operand(n *pnode) {
	n.neg = p.neg
	p.neg = false
	p.top().add(n)
}

// name handles an identifier, which is a function if an open parenthesis
// follows immediately.
func (p *parser) name(text string) {
	if r, ok := p.peek(); !ok || r != '(' {
		p.operand(&pnode{kind: Variable, text: text})
		return
	}
	p.skip()
	p.push(&pnode{kind: Function, text: text, neg: p.neg, fn: true})
	p.push(&pnode{kind: Scope, fn: true})
	p.neg = false
}

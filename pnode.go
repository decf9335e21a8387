package exprtree

// pnode is a node under construction. Each pnode is either on the parser's
// context stack or owned by exactly one parent.
type pnode struct {
	kind Kind
	text string
	neg  bool

	// paren marks a context opened by a bare open parenthesis.
	paren bool
	// fn marks a function context or an argument container. Containers are
	// the fn contexts with kind Scope.
	fn bool
	// raised marks a context opened to bind *, / or % tighter than the
	// operator before it.
	raised bool

	children []*pnode
	ops      []Operator
}

func (n *pnode) add(c *pnode) {
	n.children = append(n.children, c)
}

func (n *pnode) addOp(op Operator) {
	n.ops = append(n.ops, op)
}

// pop removes and returns the last child of n. Panics with a *StackError if n
// has no children.
func (n *pnode) pop() *pnode {
	k := len(n.children) - 1
	if k < 0 {
		panic(&StackError{Op: "pop child", Kind: n.kind})
	}
	c := n.children[k]
	n.children[k] = nil
	n.children = n.children[:k]
	return c
}

// container returns whether n collects a single function argument.
func (n *pnode) container() bool {
	return n.fn && n.kind == Scope && !n.paren
}

// freeze converts the tree rooted at n to immutable nodes.
func (n *pnode) freeze() *Node {
	r := Node{
		kind:     n.kind,
		text:     n.text,
		neg:      n.neg,
		children: make([]*Node, len(n.children)),
		ops:      make([]Operator, len(n.ops)),
	}
	for i, c := range n.children {
		r.children[i] = c.freeze()
	}
	copy(r.ops, n.ops)
	return &r
}

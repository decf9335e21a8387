// Package exprtree parses arithmetic expressions into syntax trees without
// evaluating them.
//
// The grammar is deliberately permissive. "A+B*C" is a scope of A and a
// nested scope B*C, because *, / and % bind tighter than whatever operator
// came before them. "7vari" is two operands with no operator between them.
// "5+6++7+" keeps both the concatenated operator "++" and the trailing "+".
// Any string parses to some tree; nothing is ever rejected.
//
// Parse returns an immutable *Node. Its String method renders the minimal
// textual form of the tree, which parses back to the same structure.
package exprtree

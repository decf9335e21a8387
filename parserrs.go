package exprtree

// StackError is the panic value raised when the parser's context stack
// reaches a state that no input can produce. It indicates a bug in the
// parser rather than a problem with the input, so Parse never returns it.
type StackError struct {
	// Op is the stack operation that failed.
	Op string
	// Kind is the kind of the context the operation was applied to.
	Kind Kind
}

func (err *StackError) Error() string {
	return "exprtree: cannot " + err.Op + " of " + err.Kind.String() + " context"
}

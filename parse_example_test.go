package exprtree_test

import (
	"fmt"

	"github.com/zephyrtronium/exprtree"
)

func ExampleParse() {
	n := exprtree.Parse("A+B*C")
	fmt.Println(n.Operators(), n.Len())
	fmt.Println(n.Child(1).Kind(), n.Child(1).Operators())
	fmt.Println(n)

	// Output:
	// [+] 2
	// Scope [*]
	// A+(B*C)
}

func ExampleParse_function() {
	n := exprtree.Parse("-test(C-D, E*6)")
	f := n.Child(0)
	fmt.Println(f.Kind(), f.Text(), f.Negated(), f.Len())
	for _, arg := range f.Children() {
		fmt.Println(arg.Kind(), arg.Operators(), arg)
	}

	// Output:
	// Function test true 2
	// Scope [-] C-D
	// Scope [*] E*6
}

func ExampleDecimalMarker() {
	n := exprtree.Parse("f(1,5)", exprtree.DecimalMarker(','))
	fmt.Println(n.Child(0).Len(), n.Child(0).Child(0).Text())

	// Output:
	// 1 1,5
}

package exprtree

import "testing"

func TestCharClasses(t *testing.T) {
	cases := []struct {
		r        rune
		op, resv bool
		name     bool
	}{
		{'+', true, false, false},
		{'/', true, false, false},
		{'*', true, false, false},
		{'%', true, false, false},
		{'-', false, true, false},
		{'(', false, true, false},
		{')', false, true, false},
		{',', false, true, false},
		{' ', false, false, false},
		{'\n', false, false, false},
		{' ', false, false, false},
		{'a', false, false, true},
		{'0', false, false, true},
		{'.', false, false, true},
		{'_', false, false, true},
		{'^', false, false, true},
		{'π', false, false, true},
	}
	for _, c := range cases {
		if got := isopchar(c.r); got != c.op {
			t.Errorf("isopchar(%q) = %t, want %t", c.r, got, c.op)
		}
		if got := isreserved(c.r); got != c.resv {
			t.Errorf("isreserved(%q) = %t, want %t", c.r, got, c.resv)
		}
		if got := isnamechar(c.r); got != c.name {
			t.Errorf("isnamechar(%q) = %t, want %t", c.r, got, c.name)
		}
	}
}

func TestCursor(t *testing.T) {
	cases := []struct {
		src  string
		f    func(rune) bool
		want string
		next rune
	}{
		{"++x", isopchar, "++", 'x'},
		{"*/%+-", isopchar, "*/%+", '-'},
		{"x", isopchar, "", 'x'},
		{"abc(", isnamechar, "abc", '('},
		{"a1.b c", isnamechar, "a1.b", ' '},
		{"πr²-", isnamechar, "πr²", '-'},
	}
	for _, c := range cases {
		cur := cursor{src: c.src}
		if got := cur.scanWhile(c.f); got != c.want {
			t.Errorf("scanning %q: want %q, got %q", c.src, c.want, got)
		}
		r, ok := cur.peek()
		if !ok || r != c.next {
			t.Errorf("scanning %q: want next %q, got %q (%t)", c.src, c.next, r, ok)
		}
	}

	cur := cursor{src: "aπ"}
	cur.skip()
	cur.skip()
	if r, ok := cur.peek(); ok {
		t.Errorf("peek at end returned %q", r)
	}
	if s := cur.scanWhile(isnamechar); s != "" {
		t.Errorf("scan at end returned %q", s)
	}
}

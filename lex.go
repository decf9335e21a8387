package exprtree

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// OperatorChars contains the runes which form operator symbols. A run of
// consecutive operator characters is a single operator.
//
// '-' is not among them. A minus is either unary negation or subtraction,
// depending on what precedes it, and it never joins a longer symbol.
const OperatorChars = "+/*%"

// ReservedChars contains the runes with fixed structural meaning. They end
// names and are never part of an operator.
const ReservedChars = "(),-"

func isopchar(r rune) bool {
	return strings.ContainsRune(OperatorChars, r)
}

func isreserved(r rune) bool {
	return strings.ContainsRune(ReservedChars, r)
}

// isnamechar returns whether r can continue a variable or function name.
// Digits can; only the first rune of a token decides between names and
// numbers.
func isnamechar(r rune) bool {
	return !isopchar(r) && !isreserved(r) && !unicode.IsSpace(r)
}

// cursor reads runes from a string front to back.
type cursor struct {
	src string
	pos int
}

// peek returns the next rune without consuming it. The second result is
// false at the end of the input.
func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r, true
}

// skip consumes one rune.
func (c *cursor) skip() {
	_, sz := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += sz
}

// scanWhile consumes the longest run of runes satisfying f and returns it.
func (c *cursor) scanWhile(f func(rune) bool) string {
	start := c.pos
	for c.pos < len(c.src) {
		r, sz := utf8.DecodeRuneInString(c.src[c.pos:])
		if !f(r) {
			break
		}
		c.pos += sz
	}
	return c.src[start:c.pos]
}

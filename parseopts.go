package exprtree

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the settings for one parse.
type parsectx struct {
	// mark is the decimal marker within numeric literals.
	mark rune
}

func defaultctx() parsectx {
	return parsectx{mark: '.'}
}

type markopt rune

// DecimalMarker sets the character that separates the integer and fraction
// parts of numeric literals. The default is '.'. Panics if r is whitespace,
// a digit, an operator character, a parenthesis, or '-'.
//
// A comma is allowed. Commas still separate function arguments wherever a
// new token begins, but within a number they continue the literal, so
// "f(1,5)" is a call with the single argument "1,5".
func DecimalMarker(r rune) ParseOption {
	if unicode.IsSpace(r) || unicode.IsDigit(r) || isopchar(r) || r == '(' || r == ')' || r == '-' {
		panic("exprtree: cannot use " + strconv.QuoteRune(r) + " as decimal marker")
	}
	return markopt(r)
}

func (o markopt) parseOption(p parsectx) parsectx {
	p.mark = rune(o)
	return p
}

package increment

import (
	"regexp"
	"strconv"
)

// Base is the radix of a literal.
type Base int

// Supported bases.
const (
	Base2  Base = 2
	Base8  Base = 8
	Base10 Base = 10
	Base16 Base = 16
)

// String returns the radix in decimal.
func (b Base) String() string {
	return strconv.Itoa(int(b))
}

// Signed reports whether literals in this base may be negative.
func (b Base) Signed() bool {
	return b == Base10
}

// Pattern is the lexical classification of a literal.
type Pattern struct {
	Base Base

	// Prefix is the marker before the digits ("0x", "16'h", or "").
	// It is copied to the output unchanged.
	Prefix string
}

type matcher struct {
	base Base
	re   *regexp.Regexp
}

// matchers are tried in order; the first one that matches wins.
// Hex comes first so that the 'h width form beats the decimal fallback.
var matchers = []matcher{
	{base: Base16, re: regexp.MustCompile(`^(?:0x|[0-9]*'h)`)},
	{base: Base10, re: regexp.MustCompile(`^[0-9]*'d`)},
	{base: Base8, re: regexp.MustCompile(`^0o`)},
	{base: Base2, re: regexp.MustCompile(`^(?:0b|[0-9]*'b)`)},
}

// recognize classifies a separator-free token.
func recognize(text string) Pattern {
	for _, m := range matchers {
		if prefix := m.re.FindString(text); prefix != "" {
			return Pattern{Base: m.base, Prefix: prefix}
		}
	}
	return Pattern{Base: Base10}
}

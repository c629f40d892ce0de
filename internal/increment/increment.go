package increment

import (
	"math"
	"math/big"
	"strings"
	"unicode/utf8"
)

// Options configures literal recognition.
type Options struct {
	// Separator is the digit grouping rune. Zero means DefaultSeparator.
	Separator rune
}

func (o Options) separator() rune {
	if o.Separator == 0 {
		return DefaultSeparator
	}
	return o.Separator
}

// Number is a recognized integer literal.
type Number struct {
	Pattern

	// Digits is the literal without prefix and separators. Decimal digits
	// keep their sign.
	Digits string

	// Separators holds the right-to-left rune offsets of the separators in
	// the original token.
	Separators []int

	value    *big.Int
	original string
	sep      rune
}

// Value returns a copy of the parsed value.
func (n *Number) Value() *big.Int {
	return new(big.Int).Set(n.value)
}

// Text returns the original token.
func (n *Number) Text() string {
	return n.original
}

// Parse recognizes text as an integer literal.
func Parse(text string, opts Options) (*Number, error) {
	sep := opts.separator()
	stripped, offsets, err := stripSeparators(text, sep)
	if err != nil {
		return nil, err
	}

	pat := recognize(stripped)
	if !strings.HasPrefix(text, pat.Prefix) {
		// A separator inside the prefix, e.g. 0_x10.
		return nil, ErrMalformedSeparator
	}

	digits := stripped[len(pat.Prefix):]
	value, err := parseMagnitude(digits, pat.Base)
	if err != nil {
		return nil, err
	}

	return &Number{
		Pattern:    pat,
		Digits:     digits,
		Separators: offsets,
		value:      value,
		original:   text,
		sep:        sep,
	}, nil
}

// Add returns the spelling of the literal after adding amount.
// The Number itself is not modified.
func (n *Number) Add(amount int64) string {
	next := saturatingAdd(n.value, amount, n.Base)
	width := targetWidth(n.Digits, n.value, next, n.Base)
	body := render(next, n.Base, styleOf(n.Digits, n.Base, width))

	out := regroup([]rune(n.Prefix+body), n.Separators, utf8.RuneCountInString(n.Prefix),
		strings.HasPrefix(body, "-"), utf8.RuneCountInString(n.original), n.sep)
	return string(out)
}

// Step parses text and adds amount, reporting why text was rejected.
func Step(text string, amount int64, opts Options) (string, error) {
	n, err := Parse(text, opts)
	if err != nil {
		return "", err
	}
	return n.Add(amount), nil
}

// Increment adds amount to the integer literal text.
//
// It returns false when text is not a literal this package understands; the
// caller should then leave the text alone.
func Increment(text string, amount int64) (string, bool) {
	out, err := Step(text, amount, Options{})
	if err != nil {
		return "", false
	}
	return out, true
}

// Negate returns -a for turning an increment into a decrement. It
// saturates at math.MaxInt64 since -math.MinInt64 overflows.
func Negate(a int64) int64 {
	if a == math.MinInt64 {
		return math.MaxInt64
	}
	return -a
}

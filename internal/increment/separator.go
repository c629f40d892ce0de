package increment

import (
	"strings"
	"unicode/utf8"
)

// DefaultSeparator is the digit grouping character.
const DefaultSeparator = '_'

// stripSeparators removes every sep from text.
//
// The returned offsets count runes from the right end of text (0 is the last
// rune) and are ascending, so they can be replayed onto a longer or shorter
// rendering of the same literal.
func stripSeparators(text string, sep rune) (string, []int, error) {
	if text == "" {
		return "", nil, ErrEmptyToken
	}
	s := string(sep)
	if strings.HasPrefix(text, s) || strings.HasSuffix(text, s) {
		return "", nil, ErrMalformedSeparator
	}

	var offsets []int
	rtl := 0
	for end := len(text); end > 0; rtl++ {
		r, size := utf8.DecodeLastRuneInString(text[:end])
		if r == sep {
			offsets = append(offsets, rtl)
		}
		end -= size
	}
	if len(offsets) == 0 {
		return text, nil, nil
	}

	return strings.ReplaceAll(text, s, ""), offsets, nil
}

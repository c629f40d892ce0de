package increment

import (
	"unicode"
	"unicode/utf8"
)

// Span is a half-open byte range within a line.
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Edit replaces Span with Text.
type Edit struct {
	Span Span
	Text string
}

// Apply returns line with the edit applied.
func (e Edit) Apply(line string) string {
	return line[:e.Span.Start] + e.Text + line[e.Span.End:]
}

// Locate finds the literal under the byte offset in line, or the first one
// after it on the same line.
//
// A minus sign directly before a decimal literal is included unless it
// follows a word character ("a-1" is a subtraction, "(-1" is a literal).
func Locate(line string, offset int, opts Options) (Span, bool) {
	sep := opts.separator()
	runes := []rune(line)
	starts := runeStarts(runes)

	cur := runeAt(starts, offset)
	for cur < len(runes) {
		if !isLiteralRune(runes[cur], sep) {
			next := nextDigit(runes, cur)
			if next < 0 {
				return Span{}, false
			}
			cur = next
		}

		start, end := cur, cur+1
		for start > 0 && isLiteralRune(runes[start-1], sep) {
			start--
		}
		for end < len(runes) && isLiteralRune(runes[end], sep) {
			end++
		}

		if s, e, ok := widestLiteral(runes, start, cur, end, opts); ok {
			return Span{Start: starts[s], End: starts[e]}, true
		}
		cur = end
	}
	return Span{}, false
}

// IncrementAt steps the literal found by Locate.
func IncrementAt(line string, offset int, amount int64, opts Options) (Edit, bool) {
	span, ok := Locate(line, offset, opts)
	if !ok {
		return Edit{}, false
	}
	text, err := Step(line[span.Start:span.End], amount, opts)
	if err != nil {
		return Edit{}, false
	}
	return Edit{Span: span, Text: text}, true
}

// maxLiteralLen bounds the rune length of a literal Locate considers. It
// fits a fully grouped 128-digit binary literal with a width prefix.
const maxLiteralLen = 512

// widestLiteral returns the widest sub-run of runes[start:end] that covers
// cur and parses as a literal. Earlier starts win over later ones.
//
// Each start is tried with the prefix it recognizes, then as a plain
// decimal ("0x" alone reads as "0"). The end comes from one scan over the
// digits of that base; a run longer than maxLiteralLen is not a literal.
func widestLiteral(runes []rune, start, cur, end int, opts Options) (int, int, bool) {
	sep := opts.separator()
	for s := max(start, cur-maxLiteralLen+1); s <= cur; s++ {
		limit := min(end, s+maxLiteralLen)
		pat := recognize(string(runes[s:prefixWindow(runes, s, limit)]))
		candidates := []Pattern{pat}
		if pat.Prefix != "" {
			candidates = append(candidates, Pattern{Base: Base10})
		}

		for _, p := range candidates {
			e, ok := digitsEnd(runes, s+utf8.RuneCountInString(p.Prefix), limit, p.Base, sep)
			if !ok || e <= cur {
				continue
			}
			n, err := Parse(string(runes[s:e]), opts)
			if err != nil {
				continue
			}
			if n.Base == Base10 && n.Prefix == "" && s > 0 && runes[s-1] == '-' &&
				(s == 1 || !isWordRune(runes[s-2])) {
				return s - 1, e, true
			}
			return s, e, true
		}
	}
	return 0, 0, false
}

// prefixWindow returns the end of the runes that can hold a base prefix
// starting at s: a run of decimal digits plus two more runes.
func prefixWindow(runes []rune, s, limit int) int {
	i := s
	for i < limit && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	return min(i+2, limit)
}

// digitsEnd returns the end of the digits of base starting at from,
// scanning up to limit. Separators are skipped but never end the run.
// It reports false when the run continues past limit.
func digitsEnd(runes []rune, from, limit int, base Base, sep rune) (int, bool) {
	last := from
	for i := from; i < limit; i++ {
		r := runes[i]
		switch {
		case r == sep:
		case isBaseDigit(r, base):
			last = i + 1
		default:
			return last, true
		}
	}
	if limit < len(runes) && (runes[limit] == sep || isBaseDigit(runes[limit], base)) {
		return last, false
	}
	return last, true
}

func isBaseDigit(r rune, base Base) bool {
	return r < utf8.RuneSelf && isDigit(byte(r), base)
}

// runeStarts returns the byte offset of every rune plus the total length.
func runeStarts(runes []rune) []int {
	starts := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		starts[i] = off
		off += utf8.RuneLen(r)
	}
	starts[len(runes)] = off
	return starts
}

// runeAt returns the index of the rune containing the byte offset.
func runeAt(starts []int, offset int) int {
	if offset <= 0 {
		return 0
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] > offset {
			return i - 1
		}
	}
	return len(starts) - 1
}

func nextDigit(runes []rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] >= '0' && runes[i] <= '9' {
			return i
		}
	}
	return -1
}

// isLiteralRune reports whether r can appear inside a literal.
func isLiteralRune(r rune, sep rune) bool {
	switch {
	case r == sep, r == '\'':
		return true
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

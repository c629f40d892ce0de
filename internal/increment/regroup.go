package increment

import "slices"

// regroup puts separators back into a rendered literal.
//
// offsets are the right-to-left rune offsets recorded by stripSeparators.
// prefixLen is the rune length of the base prefix and signed reports a
// leading '-' after it. A separator is never placed inside the prefix or
// between the sign and the first digit; one directly after the prefix is
// kept. originalLen is the rune length of the original token.
func regroup(text []rune, offsets []int, prefixLen int, signed bool, originalLen int, sep rune) []rune {
	if len(offsets) == 0 {
		return text
	}

	digitStart := prefixLen
	if signed {
		digitStart++
	}

	for _, rtl := range offsets {
		idx := len(text) - rtl
		if idx <= 0 || idx < prefixLen || (signed && idx == digitStart) {
			continue
		}
		text = slices.Insert(text, idx, sep)
	}

	if len(text) <= originalLen {
		return text
	}

	// The literal grew: repeat the spacing of the two leftmost groups (or
	// the only group) up to the first digit.
	spacing := offsets[0]
	if n := len(offsets); n >= 2 {
		spacing = offsets[n-1] - offsets[n-2] - 1
	}
	if spacing <= 0 {
		return text
	}

	idx := slices.Index(text, sep)
	if idx < 0 {
		return text
	}
	for idx-digitStart > spacing {
		idx -= spacing
		text = slices.Insert(text, idx, sep)
	}
	return text
}

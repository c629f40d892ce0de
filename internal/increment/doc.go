// Package increment steps integer literals in place.
//
// Given the text under a cursor or selection and a signed amount, the
// package returns the literal's new spelling. The base, prefix, digit case,
// zero padding and digit grouping of the original are kept wherever the new
// value allows it.
//
// # Supported Literals
//
//   - Decimal: 42, -7, 007, 1_000_000, 8'd255
//   - Hexadecimal: 0xff, 0xFF_FF, 'h1f, 16'h00FF
//   - Octal: 0o755
//   - Binary: 0b1010, 'b0110, 128'b0000_0001
//
// Decimal literals may go negative. Binary, octal and hexadecimal literals
// never do: their arithmetic floors at zero. All arithmetic saturates at the
// 128-bit boundary of the literal's sign policy (signed for decimal,
// unsigned otherwise), so stepping never wraps.
//
// # Separators
//
// A single grouping separator (underscore by default) may appear between
// digits but not at either end of the token. Separators are put back at the
// same distance from the right end after the value changes; when the value
// grows past the original width, the grouping is extended leftwards:
//
//	999_999 + 1              -> 1_000_000
//	0b11111111_11111111 + 1  -> 0b1_00000000_00000000
//
// # Usage
//
// The editor-facing entry point mirrors a command that may do nothing:
//
//	if text, ok := increment.Increment(selected, count); ok {
//	    replaceSelection(text)
//	}
//
// Step returns the rejection reason instead of a boolean, Locate finds the
// literal under or after a cursor, and StepAll steps every selection of a
// multi-cursor edit concurrently.
package increment

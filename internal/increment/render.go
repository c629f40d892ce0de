package increment

import (
	"math/big"
	"strings"
)

// renderStyle captures the spelling choices taken from the original digits.
type renderStyle struct {
	width int
	pad   bool
	upper bool
}

// styleOf derives the rendering style of the original digits.
//
// Decimal is padded only when the original was (a leading 0 or -0); other
// bases always pad to the original width. Hex goes upper case only when the
// original holds strictly more upper case letters than lower case ones.
func styleOf(digits string, base Base, width int) renderStyle {
	style := renderStyle{width: width, pad: true}
	if base == Base10 {
		style.pad = strings.HasPrefix(digits, "0") || strings.HasPrefix(digits, "-0")
	}
	if base == Base16 {
		var lower, upper int
		for i := 0; i < len(digits); i++ {
			switch c := digits[i]; {
			case c >= 'a' && c <= 'z':
				lower++
			case c >= 'A' && c <= 'Z':
				upper++
			}
		}
		style.upper = upper > lower
	}
	return style
}

// render spells v in base. The sign counts toward the padded width, and the
// width is a floor: a value with more digits renders wider.
func render(v *big.Int, base Base, style renderStyle) string {
	digits := new(big.Int).Abs(v).Text(int(base))
	if style.upper {
		digits = strings.ToUpper(digits)
	}

	var sign string
	if v.Sign() < 0 {
		sign = "-"
	}
	if style.pad {
		if n := style.width - len(sign) - len(digits); n > 0 {
			digits = strings.Repeat("0", n) + digits
		}
	}
	return sign + digits
}

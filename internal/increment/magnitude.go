package increment

import (
	"math/big"
	"strings"
)

// 128-bit bounds. Decimal literals use the signed range, every other base the
// unsigned one.
var (
	one         = big.NewInt(1)
	zero        = big.NewInt(0)
	maxSigned   = new(big.Int).Sub(new(big.Int).Lsh(one, 127), one)
	minSigned   = new(big.Int).Neg(new(big.Int).Lsh(one, 127))
	maxUnsigned = new(big.Int).Sub(new(big.Int).Lsh(one, 128), one)
)

// maxDigits is the longest run of significant digits that can fit the
// 128-bit range of each base.
var maxDigits = map[Base]int{
	Base2:  128,
	Base8:  43,
	Base10: 39,
	Base16: 32,
}

// bounds returns the inclusive value range of base. The results are shared
// and must not be modified.
func bounds(base Base) (lo, hi *big.Int) {
	if base.Signed() {
		return minSigned, maxSigned
	}
	return zero, maxUnsigned
}

// isDigit reports whether c is a valid digit in base.
func isDigit(c byte, base Base) bool {
	switch {
	case c >= '0' && c <= '9':
		return int(c-'0') < int(base)
	case c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return base == Base16
	}
	return false
}

// parseMagnitude parses prefix-free, separator-free digits. Only decimal
// digits may carry a sign.
func parseMagnitude(digits string, base Base) (*big.Int, error) {
	body := digits
	if base.Signed() && body != "" && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if body == "" {
		return nil, ErrUnrecognizedDigits
	}
	for i := 0; i < len(body); i++ {
		if !isDigit(body[i], base) {
			return nil, ErrUnrecognizedDigits
		}
	}

	if len(strings.TrimLeft(body, "0")) > maxDigits[base] {
		return nil, ErrOutOfRange
	}

	v, ok := new(big.Int).SetString(digits, int(base))
	if !ok {
		return nil, ErrUnrecognizedDigits
	}
	lo, hi := bounds(base)
	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return nil, ErrOutOfRange
	}
	return v, nil
}

// saturatingAdd returns v+amount clamped to the range of base. For the
// unsigned bases this is also the zero floor.
func saturatingAdd(v *big.Int, amount int64, base Base) *big.Int {
	sum := new(big.Int).Add(v, big.NewInt(amount))
	lo, hi := bounds(base)
	switch {
	case sum.Cmp(lo) < 0:
		return sum.Set(lo)
	case sum.Cmp(hi) > 0:
		return sum.Set(hi)
	}
	return sum
}

// targetWidth is the digit count the rendering is padded to. Crossing zero
// moves a decimal literal's sign in or out of the field.
func targetWidth(digits string, before, after *big.Int, base Base) int {
	width := len(digits)
	if !base.Signed() {
		return width
	}
	switch {
	case before.Sign() < 0 && after.Sign() >= 0:
		width--
	case before.Sign() >= 0 && after.Sign() < 0:
		width++
	}
	return width
}

package increment

import "errors"

// Rejection reasons. Increment folds all of them into its boolean result;
// none of them is fatal.
var (
	// ErrEmptyToken indicates the token has no characters.
	ErrEmptyToken = errors.New("increment: empty token")

	// ErrMalformedSeparator indicates a separator at either end of the token,
	// or inside its base prefix.
	ErrMalformedSeparator = errors.New("increment: separator at token boundary")

	// ErrUnrecognizedDigits indicates characters outside the recognized base,
	// or no digits at all after the prefix.
	ErrUnrecognizedDigits = errors.New("increment: invalid digits for base")

	// ErrOutOfRange indicates a literal that does not fit the 128-bit range
	// of its base.
	ErrOutOfRange = errors.New("increment: literal out of range")
)

package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrInvalidSetting indicates a setting with a value of the wrong type or
	// outside its allowed range.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrUnsupportedFormat indicates a config file extension with no loader.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

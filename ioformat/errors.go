package ioformat

import "errors"

// Sentinel errors for the text input formats.
var (
	// ErrMalformedLine indicates a line that could not be parsed into the
	// expected field count, or whose numeric fields failed to parse.
	ErrMalformedLine = errors.New("ioformat: malformed line")

	// ErrEmptyLine indicates a line with no fields at all after splitting on
	// the recognized separators.
	ErrEmptyLine = errors.New("ioformat: empty line")
)

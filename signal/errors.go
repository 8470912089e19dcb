package signal

import "errors"

// Sentinel errors for signal construction and parsing. Callers must use
// errors.Is to branch on these; messages are not part of the contract.
var (
	// ErrInvalidEncoding indicates a (low, high, strong) triple that is not
	// one of the six permitted codes (strong/weak high/low, Z, ignored).
	ErrInvalidEncoding = errors.New("signal: invalid (low, high, strong) encoding")

	// ErrStringTooWide indicates a parsed glyph string has more characters
	// than the target lane width can hold.
	ErrStringTooWide = errors.New("signal: glyph string wider than lane width")

	// ErrUnknownGlyph indicates an unrecognized rune in a parsed string.
	ErrUnknownGlyph = errors.New("signal: unknown glyph")
)

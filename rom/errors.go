package rom

import "errors"

// Sentinel errors returned by Parse. Use errors.Is to test for a
// specific failure; Parse wraps these with positional context via
// fmt.Errorf's %w verb, the same way nesrom.New wraps read failures.
var (
	// ErrInvalidMagic is returned when the first four bytes are not
	// "NES\x1A".
	ErrInvalidMagic = errors.New("rom: invalid magic bytes")

	// ErrUnsupportedFormat is returned when flags7 bits 2-3 are not
	// zero, as in a NES 2.0 header. Only iNES 1.0 is supported.
	ErrUnsupportedFormat = errors.New("rom: unsupported format")

	// ErrUnexpectedEOF is returned when the input ends before the
	// header, trainer, PRG-ROM, or CHR-ROM regions it describes are
	// fully present.
	ErrUnexpectedEOF = errors.New("rom: unexpected end of input")
)

package core

import "errors"

// ErrUnknownPin is returned when a pin identifier does not correspond
// to any pin on the target hardware.
var ErrUnknownPin = errors.New("unknown pin identifier")

// PinID identifies a data line by its platform pin number.
type PinID uint8

// Line is a resolved, validated data line. Implementations hold the
// raw port and mask so the pulse methods run with no lookups and no
// failure path; they trust the line completely.
type Line interface {
	// ConfigureOutput sets the line's direction register for output.
	ConfigureOutput()

	// Write drives the line high (true) or low (false).
	Write(level bool)

	// SendZero emits one logical-0 pulse: high for the short hold
	// time, then low for the rest of the bit period. Fixed
	// instruction count, nothing variable-latency inside.
	SendZero()

	// SendOne emits one logical-1 pulse: same total period as
	// SendZero, long high hold time.
	SendOne()
}

// LineDriver is the abstract pin-resolution interface that core code
// uses. Platform-specific implementations handle the register
// mapping.
type LineDriver interface {
	// Resolve validates an identifier and returns its live line.
	// Returns ErrUnknownPin when the identifier names no real pin.
	Resolve(pin PinID) (Line, error)
}

// Global singleton used by core code.
var lineDriver LineDriver

// SetLineDriver is called by target-specific code to register its driver.
func SetLineDriver(d LineDriver) {
	lineDriver = d
}

// MustLine returns the configured driver or panics if missing.
func MustLine() LineDriver {
	if lineDriver == nil {
		panic("line driver not configured")
	}
	return lineDriver
}

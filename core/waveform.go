package core

// WS2812B wire timing for the 800kHz data rate. A bit occupies a
// fixed period; only the high-time split inside that period
// distinguishes a 0 from a 1.
const (
	// BitPeriodNanos is the total duration of one bit slot, identical
	// for 0 and 1 bits.
	BitPeriodNanos = 1250

	// ZeroHighNanos is the nominal high time encoding a 0 bit (T0H).
	ZeroHighNanos = 400

	// OneHighNanos is the nominal high time encoding a 1 bit (T1H).
	OneHighNanos = 800

	// PulseToleranceNanos is the datasheet tolerance on high times.
	PulseToleranceNanos = 150

	// InterBitMarginMicros is held after every bit on top of the
	// pulse's own period. The pulse primitives do not account for the
	// byte/bit loop overhead around them; the margin keeps bit-to-bit
	// spacing safe regardless of that overhead. The value was derived
	// for a 16MHz AVR and must be re-derived from measured pulses
	// when porting to a new backend.
	InterBitMarginMicros = 1

	// LatchMicros is the idle-low period after the last bit of a
	// frame. The datasheet minimum is 50us; anything shorter and the
	// string treats the next frame as a continuation of this one.
	LatchMicros = 50
)

// LatchNanos is LatchMicros in nanoseconds, for timestamp math.
const LatchNanos = LatchMicros * 1000

// CyclesFromNanos converts a duration to CPU cycles at the given
// clock, rounding to nearest. Targets use this to derive the
// instruction counts behind their pulse primitives.
func CyclesFromNanos(clockHz uint32, ns uint32) uint32 {
	return uint32((uint64(clockHz)*uint64(ns) + 500000000) / 1000000000)
}

// BitFromHighTime classifies a recorded pulse by its high time.
// Returns the decoded bit and whether the high time falls within
// tolerance of either nominal encoding.
func BitFromHighTime(highNs uint32) (bit uint8, ok bool) {
	switch {
	case highNs >= ZeroHighNanos-PulseToleranceNanos && highNs <= ZeroHighNanos+PulseToleranceNanos:
		return 0, true
	case highNs >= OneHighNanos-PulseToleranceNanos && highNs <= OneHighNanos+PulseToleranceNanos:
		return 1, true
	}
	return 0, false
}

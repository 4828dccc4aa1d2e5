// Package sim is an in-memory backend for strand transmission tests.
// It implements the core line and delay interfaces over a virtual
// nanosecond clock, recording every level transition and emitted
// pulse so tests can assert on the exact waveform a frame produces.
package sim

import (
	"neostrand/core"
)

// Event is one recorded line-state transition.
type Event struct {
	AtNanos uint64
	Level   bool
}

// Pulse is one recorded bit pulse.
type Pulse struct {
	StartNanos  uint64
	HighNanos   uint32
	PeriodNanos uint32
}

// Driver implements core.LineDriver and core.DelayDriver against
// virtual hardware. The zero value is not usable; use New.
type Driver struct {
	maxPin core.PinID
	clock  uint64
	lines  map[core.PinID]*Line
}

var (
	_ core.LineDriver  = (*Driver)(nil)
	_ core.DelayDriver = (*Driver)(nil)
)

// New returns a driver that resolves identifiers 0 through maxPin.
func New(maxPin core.PinID) *Driver {
	return &Driver{
		maxPin: maxPin,
		lines:  make(map[core.PinID]*Line),
	}
}

// Install registers the driver for both the line and the delay
// singletons, replacing whatever was registered before.
func (d *Driver) Install() {
	core.SetLineDriver(d)
	core.SetDelayDriver(d)
}

// Resolve returns the virtual line for pin, creating it on first use.
func (d *Driver) Resolve(pin core.PinID) (core.Line, error) {
	if pin > d.maxPin {
		return nil, core.ErrUnknownPin
	}
	line, ok := d.lines[pin]
	if !ok {
		line = &Line{driver: d}
		d.lines[pin] = line
	}
	return line, nil
}

// Micros advances the virtual clock.
func (d *Driver) Micros(us uint32) {
	d.clock += uint64(us) * 1000
}

// Now returns the virtual clock in nanoseconds.
func (d *Driver) Now() uint64 {
	return d.clock
}

// Line returns the virtual line for pin, or nil if nothing ever
// resolved it.
func (d *Driver) Line(pin core.PinID) *Line {
	return d.lines[pin]
}

// TotalEvents counts recorded transitions across every line. Failed
// resolutions create no line, so a rejected operation leaves this at
// zero.
func (d *Driver) TotalEvents() int {
	n := 0
	for _, l := range d.lines {
		n += len(l.events)
	}
	return n
}

// Line is one virtual data line.
type Line struct {
	driver *Driver

	output bool
	level  bool

	events []Event
	pulses []Pulse
}

var _ core.Line = (*Line)(nil)

// ConfigureOutput marks the line as an output.
func (l *Line) ConfigureOutput() {
	l.output = true
}

// Write records a level transition at the current virtual time.
func (l *Line) Write(level bool) {
	l.transition(level)
}

// SendZero records one ideal logical-0 pulse.
func (l *Line) SendZero() {
	l.pulse(core.ZeroHighNanos)
}

// SendOne records one ideal logical-1 pulse.
func (l *Line) SendOne() {
	l.pulse(core.OneHighNanos)
}

// pulse records a bit pulse with nominal timing: rise now, fall after
// highNs, line low until the bit period completes.
func (l *Line) pulse(highNs uint32) {
	start := l.driver.clock
	l.transition(true)
	l.driver.clock = start + uint64(highNs)
	l.transition(false)
	l.driver.clock = start + core.BitPeriodNanos
	l.pulses = append(l.pulses, Pulse{
		StartNanos:  start,
		HighNanos:   highNs,
		PeriodNanos: core.BitPeriodNanos,
	})
}

func (l *Line) transition(level bool) {
	l.level = level
	l.events = append(l.events, Event{AtNanos: l.driver.clock, Level: level})
}

// Output reports whether the line was configured as an output.
func (l *Line) Output() bool {
	return l.output
}

// Level returns the line's current state.
func (l *Line) Level() bool {
	return l.level
}

// Events returns every recorded transition in order.
func (l *Line) Events() []Event {
	return l.events
}

// Pulses returns every recorded bit pulse in order.
func (l *Line) Pulses() []Pulse {
	return l.pulses
}

// Bits classifies every recorded pulse by high time. The second
// result is false when some pulse fits neither encoding; the slice
// then holds the bits decoded before it.
func (l *Line) Bits() ([]uint8, bool) {
	bits := make([]uint8, 0, len(l.pulses))
	for _, p := range l.pulses {
		bit, ok := core.BitFromHighTime(p.HighNanos)
		if !ok {
			return bits, false
		}
		bits = append(bits, bit)
	}
	return bits, true
}

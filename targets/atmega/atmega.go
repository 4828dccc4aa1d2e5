//go:build avr

// Package atmega drives WS2812B data lines on the ATmega328P.
//
// Pin identifiers follow the Arduino Uno numbering: digital 0-7 on
// PORTD, 8-13 on PORTB, and A0-A5 as 14-19 on PORTC. Anything above
// 19 resolves to nothing.
package atmega

import (
	"device/avr"
	"runtime/volatile"

	"neostrand/core"
)

// clockHz is the CPU clock the pulse and delay cycle counts assume.
// Boards running the 328P at other speeds need their own counts.
const clockHz = 16000000

// line is one resolved data line: the PORT and DDR registers plus the
// bit mask selecting the pin within them.
type line struct {
	port *volatile.Register8
	ddr  *volatile.Register8
	mask uint8
}

// Driver implements core.LineDriver for the ATmega328P.
type Driver struct{}

var _ core.LineDriver = Driver{}

// Resolve maps an Arduino Uno pin number to its port registers.
func (Driver) Resolve(pin core.PinID) (core.Line, error) {
	switch {
	case pin <= 7:
		return &line{port: avr.PORTD, ddr: avr.DDRD, mask: uint8(1) << pin}, nil
	case pin <= 13:
		return &line{port: avr.PORTB, ddr: avr.DDRB, mask: uint8(1) << (pin - 8)}, nil
	case pin <= 19:
		return &line{port: avr.PORTC, ddr: avr.DDRC, mask: uint8(1) << (pin - 14)}, nil
	}
	return nil, core.ErrUnknownPin
}

// ConfigureOutput sets the pin's DDR bit.
func (l *line) ConfigureOutput() {
	l.ddr.SetBits(l.mask)
}

// Write drives the pin, read-modify-write on the port register.
func (l *line) Write(level bool) {
	if level {
		l.port.SetBits(l.mask)
	} else {
		l.port.ClearBits(l.mask)
	}
}

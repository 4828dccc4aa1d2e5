//go:build avr

package atmega

import "device"

// Pulse timing at 16MHz, 62.5ns per cycle. A port store takes two
// cycles, so the high phase of a zero is store + 4 nops = 6 cycles
// (375ns) and of a one store + 11 nops = 13 cycles (812.5ns), both
// inside the 150ns datasheet tolerance. The counts hold only while
// the stores and nops stay back to back; re-check the disassembly
// whenever the toolchain changes, because a spill or call inserted
// into the high phase shifts every bit.
//
// The low tail of each bit is finished by the caller's inter-bit
// margin. WS2812B latches only after 50us of low, so a stretched low
// phase is harmless while a stretched high phase is not. Both port
// bytes are computed before the pulse starts for the same reason.

// SendZero emits one logical-0 pulse.
func (l *line) SendZero() {
	high := l.port.Get() | l.mask
	low := l.port.Get() &^ l.mask
	l.port.Set(high)
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	l.port.Set(low)
}

// SendOne emits one logical-1 pulse.
func (l *line) SendOne() {
	high := l.port.Get() | l.mask
	low := l.port.Get() &^ l.mask
	l.port.Set(high)
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	device.Asm("nop")
	l.port.Set(low)
}

//go:build avr

package atmega

import (
	"device"

	"neostrand/core"
)

// Delay implements core.DelayDriver with a calibrated busy loop.
type Delay struct{}

var _ core.DelayDriver = Delay{}

// Micros blocks for at least us microseconds. One iteration is
// roughly 16 cycles at 16MHz: twelve nops plus the 32-bit decrement,
// compare and branch. The loop only ever overshoots, which every
// caller tolerates since margins and latch periods are minimums.
func (Delay) Micros(us uint32) {
	for ; us > 0; us-- {
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
		device.Asm("nop")
	}
}

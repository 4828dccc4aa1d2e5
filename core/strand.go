package core

// Strand is a handle to one WS2812B data line. It carries only the
// pin identifier and is resolved to a live line on each operation, so
// copying a Strand is free and safe. A Strand holds no resources and
// needs no teardown.
type Strand struct {
	Pin PinID
}

// New returns a handle for the given data line. Construction cannot
// fail; the identifier is validated when the handle is first used.
func New(pin PinID) Strand {
	return Strand{Pin: pin}
}

// Init prepares the data line for transmission: output direction,
// idle low. Returns false, touching no hardware, when the handle's
// identifier names no real pin.
func (s Strand) Init() bool {
	line, err := MustLine().Resolve(s.Pin)
	if err != nil {
		return false
	}
	line.ConfigureOutput()
	line.Write(false)
	return true
}

// Upload transmits one frame. Colors are sent in buffer order, each
// as green, red, blue, most significant bit first. After the last bit
// the line stays low for the latch period, so the next Upload starts
// a fresh frame. Returns false, transmitting nothing, when the
// handle's identifier names no real pin; once transmission starts it
// always completes and returns true.
//
// Upload blocks for the whole transmission and must not be
// preempted: a pulse stretched mid-bit corrupts the rest of the
// frame, and the string has no way to resynchronize. Callers running
// with interrupts enabled wrap the call in Critical.
func (s Strand) Upload(frame []RGB) bool {
	line, err := MustLine().Resolve(s.Pin)
	if err != nil {
		return false
	}
	delay := MustDelay()
	for _, color := range frame {
		for _, b := range color.WireBytes() {
			for mask := byte(0x80); mask != 0; mask >>= 1 {
				if b&mask != 0 {
					line.SendOne()
				} else {
					line.SendZero()
				}
				delay.Micros(InterBitMarginMicros)
			}
		}
	}
	delay.Micros(LatchMicros)
	return true
}

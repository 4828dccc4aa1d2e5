//go:build rp2040

package pio

// WS2812B transmission offloaded to the RP2040's PIO block.
// The state machine replays the usual four instruction sideset loop,
// ten cycles per bit:
//
//	0: out    x, 1   side 0 [2]   ; low tail of the previous bit
//	1: jmp    !x, 3  side 1 [1]   ; every bit starts high
//	2: jmp    0      side 1 [4]   ; 1-bit stays high five more cycles
//	3: nop           side 0 [4]   ; 0-bit drops low instead
//
// Clocked at 800kHz times ten, each cycle is 125ns: a 0 bit holds
// high 250ns, a 1 bit 875ns, every bit 1250ns total. Those land
// inside the part's decoding thresholds and match what the core's
// waveform classifier accepts. Once the state machine is running the
// CPU only feeds the FIFO, so nothing here is timing-critical and no
// interrupt masking is needed.

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"neostrand/core"
)

const (
	ws2812bOrigin       = -1
	ws2812bWrapTarget   = 0
	ws2812bWrap         = 3
	ws2812bCyclesPerBit = 10
)

var ws2812bInstructions = []uint16{
	//     .wrap_target
	0x6221, //  0: out    x, 1            side 0 [2]
	0x1123, //  1: jmp    !x, 3           side 1 [1]
	0x1400, //  2: jmp    0               side 1 [4]
	0xa442, //  3: nop                    side 0 [4]
	//     .wrap
}

func ws2812bProgramDefaultConfig(offset uint8) rp2pio.StateMachineConfig {
	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset+ws2812bWrapTarget, offset+ws2812bWrap)
	cfg.SetSidesetParams(1, false, false)
	return cfg
}

// Device drives one strand through a claimed PIO state machine.
type Device struct {
	sm     rp2pio.StateMachine
	offset uint8
}

// New loads the program, binds it to pin and starts the state
// machine with the line idling low.
func New(sm rp2pio.StateMachine, pin machine.Pin) (*Device, error) {
	sm.TryClaim() // SM should be claimed beforehand, we just guarantee it's claimed.

	const pixelFreq = 800 * machine.KHz
	whole, frac, err := rp2pio.ClkDivFromFrequency(pixelFreq*ws2812bCyclesPerBit, machine.CPUFrequency())
	if err != nil {
		return nil, err
	}

	Pio := sm.PIO()
	offset, err := Pio.AddProgram(ws2812bInstructions, ws2812bOrigin)
	if err != nil {
		return nil, err
	}

	pin.Configure(machine.PinConfig{Mode: Pio.PinMode()})
	sm.SetPindirsConsecutive(pin, 1, true)

	cfg := ws2812bProgramDefaultConfig(offset)
	cfg.SetSidesetPins(pin)
	cfg.SetClkDivIntFrac(whole, frac)
	// We only use Tx FIFO, so we set the join to Tx.
	cfg.SetFIFOJoin(rp2pio.FifoJoinTx)
	cfg.SetOutShift(false, true, 24)

	sm.Init(offset, cfg)
	sm.SetEnabled(true)

	return &Device{sm: sm, offset: offset}, nil
}

// WriteColors queues one frame, blocking while the FIFO is full.
// Returns once every pixel is queued; the trailing bits drain on
// their own, and the strand latches after the line then idles low
// for the latch period. Callers pacing frames slower than that need
// no extra delay.
func (d *Device) WriteColors(frame []core.RGB) {
	for _, c := range frame {
		for d.sm.IsTxFIFOFull() {
		}
		d.sm.TxPut(packGRB(c))
	}
}

// packGRB packs a color into the word the program shifts out:
// green, red, blue from the top bit down, low byte unused.
func packGRB(c core.RGB) uint32 {
	return uint32(c.G)<<24 | uint32(c.R)<<16 | uint32(c.B)<<8
}

//go:build rp2040

// RP2040 strand demo: cycles a short strand through a few colors
// using the PIO backend. The state machine owns the waveform, so the
// loop here only paces frames and nothing is timing-critical.
package main

import (
	"machine"
	"time"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"neostrand/core"
	"neostrand/targets/pio"
)

const (
	dataPin   = machine.GPIO2
	numPixels = 8
)

var cycle = []core.RGB{
	{R: 255},
	{G: 255},
	{B: 255},
	{R: 255, G: 128, B: 1},
	{},
}

func main() {
	// Sleep to catch prints.
	time.Sleep(2 * time.Second)

	sm, err := rp2pio.PIO0.ClaimStateMachine()
	if err != nil {
		panic(err.Error())
	}
	dev, err := pio.New(sm, dataPin)
	if err != nil {
		panic(err.Error())
	}
	println("strand running on pin", int(dataPin))

	frame := make([]core.RGB, numPixels)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	step := 0
	for range ticker.C {
		for i := range frame {
			frame[i] = cycle[(step+i)%len(cycle)]
		}
		step++
		dev.WriteColors(frame)
	}
}

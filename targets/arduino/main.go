//go:build avr

// Arduino Uno strand firmware: decodes frame packets from the UART
// and drives one WS2812B data line. The peer is the tool in
// host/cmd/neostrand-host.
package main

import (
	"machine"

	"neostrand/core"
	"neostrand/ledframe"
	"neostrand/targets/atmega"
)

const (
	// dataPin is Uno digital 6, PORTD bit 6.
	dataPin = core.PinID(6)

	// maxPixels bounds the frame buffer. 128 pixels is 384 bytes of
	// the 328P's 2KB of RAM.
	maxPixels = 128

	baudRate = 115200
)

func main() {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: baudRate})

	core.SetLineDriver(atmega.Driver{})
	core.SetDelayDriver(atmega.Delay{})

	strand := core.New(dataPin)
	if !strand.Init() {
		println("strand init failed: bad data pin")
		for {
		}
	}
	println("strand ready on pin", int(dataPin))

	dec := ledframe.NewDecoder(reader{uart}, maxPixels)
	for {
		typ, err := dec.Next()
		if err != nil {
			nakFor(uart, err)
			continue
		}

		switch typ {
		case ledframe.TypePing, ledframe.TypeInit:
			ledframe.WriteAck(uart)

		case ledframe.TypeClear:
			px := dec.Pixels()
			for i := range px {
				px[i] = core.RGB{}
			}
			send(uart, strand, px)

		case ledframe.TypeFrame:
			send(uart, strand, dec.Pixels())
		}
	}
}

// send uploads one frame with interrupts masked and replies only
// after the strand has latched. Acking late is what paces the host:
// bytes arriving during the upload would be dropped, and an ack-paced
// host never sends any.
func send(uart *machine.UART, strand core.Strand, px []core.RGB) {
	ok := false
	core.Critical(func() {
		ok = strand.Upload(px)
	})
	if ok {
		ledframe.WriteAck(uart)
	} else {
		ledframe.WriteNak(uart, ledframe.NakStrand)
	}
}

// nakFor reports a decode failure. Read errors get no reply; the
// host times out and the decoder resyncs on the next packet.
func nakFor(uart *machine.UART, err error) {
	switch err {
	case ledframe.ErrBadCRC:
		ledframe.WriteNak(uart, ledframe.NakBadCRC)
	case ledframe.ErrBadType:
		ledframe.WriteNak(uart, ledframe.NakBadType)
	case ledframe.ErrTooLong:
		ledframe.WriteNak(uart, ledframe.NakBadLength)
	}
}

// reader adapts the UART to io.ByteReader with a blocking read.
type reader struct {
	uart *machine.UART
}

func (r reader) ReadByte() (byte, error) {
	for r.uart.Buffered() == 0 {
	}
	return r.uart.ReadByte()
}

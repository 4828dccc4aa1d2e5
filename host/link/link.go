// Package link runs one control session with a device flashed with
// the strand firmware: packets out, acks back, one command in flight
// at a time. Pacing on the ack is what keeps a long frame from
// overrunning the device's receive buffer while it transmits.
package link

import (
	"errors"
	"fmt"
	"io"
	"time"

	"neostrand/core"
	"neostrand/host/serial"
	"neostrand/ledframe"
)

// ErrTimeout is returned when the device does not reply in time.
var ErrTimeout = errors.New("link: device reply timed out")

// replyTimeout bounds the wait for an ack. A frame upload blocks the
// device for its transmission plus latch, all well under this.
const replyTimeout = 2 * time.Second

// Link is a connection to a device running the strand firmware.
type Link struct {
	port  serial.Port
	count uint16
}

// Connect opens the serial device and waits out the reset that
// opening the port triggers on Arduino-style boards.
func Connect(device string, baud int) (*Link, error) {
	cfg := serial.DefaultConfig(device)
	if baud != 0 {
		cfg.Baud = baud
	}

	port, err := serial.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}

	// Asserting DTR resets the board; give the firmware time to boot
	// before the first packet.
	time.Sleep(2 * time.Second)

	return &Link{port: port}, nil
}

// Close closes the serial port.
func (l *Link) Close() error {
	if l.port != nil {
		return l.port.Close()
	}
	return nil
}

// Count returns the pixel count from the last successful Init.
func (l *Link) Count() uint16 {
	return l.count
}

// Ping round-trips an empty packet.
func (l *Link) Ping() error {
	if err := ledframe.WritePing(l.port); err != nil {
		return err
	}
	return l.awaitAck()
}

// Init announces the strand length. The device sizes its frame
// buffer and blanks it; the count sticks for every following Frame.
func (l *Link) Init(count uint16) error {
	if err := ledframe.WriteInit(l.port, count); err != nil {
		return err
	}
	if err := l.awaitAck(); err != nil {
		return err
	}
	l.count = count
	return nil
}

// Frame sends one full frame and waits for the post-latch ack.
func (l *Link) Frame(pixels []core.RGB) error {
	if len(pixels) != int(l.count) {
		return fmt.Errorf("link: frame has %d pixels, device initialized for %d", len(pixels), l.count)
	}
	if err := ledframe.WriteFrame(l.port, pixels); err != nil {
		return err
	}
	return l.awaitAck()
}

// Clear blanks the strand.
func (l *Link) Clear() error {
	if err := ledframe.WriteClear(l.port); err != nil {
		return err
	}
	return l.awaitAck()
}

// awaitAck reads the device's reply to the packet just sent.
func (l *Link) awaitAck() error {
	return ledframe.ReadReply(deadlineReader{port: l.port, deadline: time.Now().Add(replyTimeout)})
}

// deadlineReader adapts a polling serial port to io.ByteReader.
// The port's own read timeout keeps each poll short; the deadline
// bounds the total wait.
type deadlineReader struct {
	port     serial.Port
	deadline time.Time
}

func (r deadlineReader) ReadByte() (byte, error) {
	var one [1]byte
	for {
		n, err := r.port.Read(one[:])
		if n > 0 {
			return one[0], nil
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
		if time.Now().After(r.deadline) {
			return 0, ErrTimeout
		}
	}
}

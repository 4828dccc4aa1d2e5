// Package ledframe is the serial framing shared by the host tool and
// the strand firmware.
//
// Host to device, multi-byte values little-endian:
//
//	0x7E  sync
//	type  one byte
//	payload
//	crc16 over type and payload
//
// Payloads: Init carries the pixel count (uint16), Frame carries
// count r,g,b triplets in strand order, Clear and Ping are empty. A
// Frame's length on the wire is governed by the device's current
// count, so a host always sends Init before the first Frame.
//
// Device to host: a single Ack byte, or a Nak byte followed by a
// reason code. The device acknowledges a Frame only after the strand
// has latched, so a host that waits for each ack never overruns the
// device's receive buffer.
package ledframe

import (
	"errors"
	"fmt"
	"io"

	"neostrand/core"
)

// Sync opens every host-to-device packet.
const Sync = 0x7E

// Packet types.
const (
	TypeInit  = 0x01
	TypeFrame = 0x02
	TypeClear = 0x03
	TypePing  = 0x04
)

// Device replies.
const (
	Ack = 0x06
	Nak = 0x15
)

// Nak reason codes.
const (
	NakBadCRC    = 0x01
	NakBadType   = 0x02
	NakBadLength = 0x03
	NakStrand    = 0x04
)

var (
	ErrBadCRC  = errors.New("ledframe: checksum mismatch")
	ErrBadType = errors.New("ledframe: unknown packet type")
	ErrTooLong = errors.New("ledframe: pixel count exceeds buffer")
)

// writePacket frames one packet: sync, type, payload, checksum.
func writePacket(w io.Writer, typ byte, payload []byte) error {
	buf := make([]byte, 0, len(payload)+4)
	buf = append(buf, Sync, typ)
	buf = append(buf, payload...)
	crc := CRC16(buf[1:])
	buf = append(buf, byte(crc), byte(crc>>8))
	_, err := w.Write(buf)
	return err
}

// WriteInit announces the strand length. The device sizes its frame
// buffer from this and rejects counts beyond its capacity.
func WriteInit(w io.Writer, count uint16) error {
	return writePacket(w, TypeInit, []byte{byte(count), byte(count >> 8)})
}

// WriteFrame sends one full frame, r,g,b per pixel in strand order.
// The strand reorders each pixel to the wire's GRB during
// transmission; this layer never does.
func WriteFrame(w io.Writer, pixels []core.RGB) error {
	payload := make([]byte, 0, 3*len(pixels))
	for _, p := range pixels {
		payload = append(payload, p.R, p.G, p.B)
	}
	return writePacket(w, TypeFrame, payload)
}

// WriteClear asks the device to blank the strand.
func WriteClear(w io.Writer) error {
	return writePacket(w, TypeClear, nil)
}

// WritePing checks that the device is alive and in sync.
func WritePing(w io.Writer) error {
	return writePacket(w, TypePing, nil)
}

// WriteAck reports success for the packet just processed.
func WriteAck(w io.ByteWriter) error {
	return w.WriteByte(Ack)
}

// WriteNak reports failure with a reason code.
func WriteNak(w io.ByteWriter, code byte) error {
	if err := w.WriteByte(Nak); err != nil {
		return err
	}
	return w.WriteByte(code)
}

// DeviceError is a nak reason reported by the device.
type DeviceError byte

func (e DeviceError) Error() string {
	switch byte(e) {
	case NakBadCRC:
		return "device rejected packet: bad checksum"
	case NakBadType:
		return "device rejected packet: unknown type"
	case NakBadLength:
		return "device rejected packet: pixel count too large"
	case NakStrand:
		return "device rejected packet: strand transmission failed"
	}
	return "device rejected packet"
}

// ReadReply consumes one device reply. Returns nil for an ack, a
// DeviceError for a nak.
func ReadReply(r io.ByteReader) error {
	b, err := r.ReadByte()
	if err != nil {
		return err
	}
	switch b {
	case Ack:
		return nil
	case Nak:
		code, err := r.ReadByte()
		if err != nil {
			return err
		}
		return DeviceError(code)
	}
	return fmt.Errorf("ledframe: unexpected reply byte 0x%02x", b)
}

// Decoder reads packets off a byte stream on the device side. A
// Frame's payload length comes from the preceding Init, so the
// decoder carries that count between packets. The pixel buffer is
// allocated once, up front; the decode loop itself never allocates.
type Decoder struct {
	r     io.ByteReader
	buf   []core.RGB
	count uint16
}

// NewDecoder returns a decoder accepting Init counts up to maxPixels.
func NewDecoder(r io.ByteReader, maxPixels uint16) *Decoder {
	return &Decoder{
		r:   r,
		buf: make([]core.RGB, maxPixels),
	}
}

// Pixels returns the current frame: count pixels backed by the
// decoder's buffer, holding the most recent Frame payload.
func (d *Decoder) Pixels() []core.RGB {
	return d.buf[:d.count]
}

// Next reads one packet and returns its type once its checksum
// verifies. An Init's count only takes effect after verification; a
// Frame rejected by checksum leaves stale bytes in the buffer until
// the host retries it, which is fine because a rejected Frame is
// never uploaded. Bytes before the sync are skipped, so the decoder
// resynchronizes itself after line noise or a length mismatch.
func (d *Decoder) Next() (byte, error) {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == Sync {
			break
		}
	}

	typ, err := d.r.ReadByte()
	if err != nil {
		return 0, err
	}
	crc := crc16Update(0xFFFF, typ)

	switch typ {
	case TypeInit:
		lo, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}
		hi, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}
		crc = crc16Update(crc16Update(crc, lo), hi)
		if err := d.checkCRC(crc); err != nil {
			return 0, err
		}
		count := uint16(lo) | uint16(hi)<<8
		if int(count) > len(d.buf) {
			return 0, ErrTooLong
		}
		d.count = count
		for i := range d.buf[:count] {
			d.buf[i] = core.RGB{}
		}
		return typ, nil

	case TypeFrame:
		for i := 0; i < int(d.count); i++ {
			r, err := d.r.ReadByte()
			if err != nil {
				return 0, err
			}
			g, err := d.r.ReadByte()
			if err != nil {
				return 0, err
			}
			b, err := d.r.ReadByte()
			if err != nil {
				return 0, err
			}
			crc = crc16Update(crc16Update(crc16Update(crc, r), g), b)
			d.buf[i] = core.RGB{R: r, G: g, B: b}
		}
		if err := d.checkCRC(crc); err != nil {
			return 0, err
		}
		return typ, nil

	case TypeClear, TypePing:
		if err := d.checkCRC(crc); err != nil {
			return 0, err
		}
		return typ, nil
	}

	return 0, ErrBadType
}

// checkCRC consumes the trailing checksum and compares.
func (d *Decoder) checkCRC(crc uint16) error {
	lo, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	hi, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	if uint16(lo)|uint16(hi)<<8 != crc {
		return ErrBadCRC
	}
	return nil
}

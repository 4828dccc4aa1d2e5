package ledframe

import "testing"

func TestCRC16Empty(t *testing.T) {
	if got := CRC16(nil); got != 0xFFFF {
		t.Errorf("CRC16(nil) = 0x%04X, want 0xFFFF", got)
	}
}

func TestCRC16Deterministic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	if CRC16(data) != CRC16(data) {
		t.Errorf("same input produced different checksums")
	}
}

func TestCRC16DetectsChange(t *testing.T) {
	a := CRC16([]byte{0x01, 0x02, 0x03})
	b := CRC16([]byte{0x01, 0x02, 0x04})
	if a == b {
		t.Errorf("single-byte change not reflected: both 0x%04X", a)
	}
}

func TestCRC16MatchesUpdate(t *testing.T) {
	data := []byte{TypeFrame, 0xAA, 0x55, 0x00, 0xFF}
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = crc16Update(crc, b)
	}
	if got := CRC16(data); got != crc {
		t.Errorf("slice and incremental checksums differ: 0x%04X vs 0x%04X", got, crc)
	}
}

package ledframe

// CRC16 calculates the checksum that trails every packet, over the
// type and payload bytes. Same polynomial arrangement as the Klipper
// MCU protocol, cheap enough for byte-at-a-time use on an AVR.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = crc16Update(crc, b)
	}
	return crc
}

// crc16Update folds one byte into a running checksum.
func crc16Update(crc uint16, b byte) uint16 {
	b = b ^ uint8(crc&0xFF)
	b = b ^ (b << 4)
	b16 := uint16(b)
	return (b16<<8 | crc>>8) ^ (b16 >> 4) ^ (b16 << 3)
}

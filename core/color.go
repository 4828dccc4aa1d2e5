package core

// RGB is one pixel's color. Channels are 8-bit and pass through to
// the wire verbatim; no clamping or gamma is applied.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// WireBytes returns the color in transmission order. WS2812B pixels
// expect green first, then red, then blue, regardless of how the
// color was constructed.
func (c RGB) WireBytes() [3]byte {
	return [3]byte{c.G, c.R, c.B}
}

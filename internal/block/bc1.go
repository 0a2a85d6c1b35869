package block

// bc1SelBits maps the shared analyzer Selector directly onto BC1's 2-bit
// palette index: 0=endpoint0, 1=endpoint1, 2=(2c0+c1)/3, 3=(c0+2c1)/3. The
// analyzer's enumeration already matches this order.
var bc1SelBits = [4]uint32{0, 1, 2, 3}

// PackBC1 quantizes a tile Summary to an 8-byte BC1 (DXT1) block. maxRGB is
// always placed in the higher-valued endpoint slot (bytes 0..1) with its
// green low bit forced to 1, guaranteeing endpoint0 >= endpoint1 under
// RGB565 numeric ordering, and endpoint0 > endpoint1 (4-interpolant opaque
// mode) whenever the two differ, without a runtime comparison. When both
// endpoints quantize to the same value (a solid white tile, for example)
// every selector is written as 0, so no pixel reads the index that a BC1
// decoder treats as transparent for equal endpoints.
func PackBC1(s Summary) [8]byte {
	e0 := quantize565(s.MaxRGB) | 0x0020 // force G low bit (bit 5) to 1
	e1 := quantize565(s.MinRGB)

	var sel uint32
	for n := 0; n < 16; n++ {
		x, y := n%4, n/4
		sel |= bc1SelBits[s.Sel[n]] << (2 * (4*y + x))
	}
	if e0 == e1 {
		sel = 0
	}

	var out [8]byte
	out[0] = byte(e0)
	out[1] = byte(e0 >> 8)
	out[2] = byte(e1)
	out[3] = byte(e1 >> 8)
	out[4] = byte(sel)
	out[5] = byte(sel >> 8)
	out[6] = byte(sel >> 16)
	out[7] = byte(sel >> 24)
	return out
}

// quantize565 truncates an 8-bit RGB triple to RGB565 by dropping the low
// bits of each channel (top-bits truncation, no rounding).
func quantize565(rgb [3]uint8) uint32 {
	r5 := uint32(rgb[0]) >> 3
	g6 := uint32(rgb[1]) >> 2
	b5 := uint32(rgb[2]) >> 3
	return r5<<11 | g6<<5 | b5
}

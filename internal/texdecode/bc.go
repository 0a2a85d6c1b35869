package texdecode

// unpack565 expands a little-endian RGB565 endpoint to RGB888 by high-bit
// replication, returning the expanded color and the raw 16-bit value (the
// raw value is what BC1 compares to pick 4-interpolant vs punchthrough
// mode).
func unpack565(lo, hi byte) (rgb [3]uint8, raw int) {
	v := int(lo) | int(hi)<<8
	r5 := uint8(v>>11) & 0x1F
	g6 := uint8(v>>5) & 0x3F
	b5 := uint8(v) & 0x1F
	rgb[0] = (r5 << 3) | (r5 >> 2)
	rgb[1] = (g6 << 2) | (g6 >> 4)
	rgb[2] = (b5 << 3) | (b5 >> 2)
	return rgb, v
}

// DecodeBC1 decodes one 8-byte BC1 (DXT1) block to 16 RGBA8 pixels, writing
// 4 rows of 16 bytes at dstRow0, dstRow0+rowStride, ... dstRow0+3*rowStride.
func DecodeBC1(src []byte, dstRow0 []byte, rowStride int) {
	decodeColorBlock(src, dstRow0, rowStride, true)
}

// DecodeBC3 decodes one 16-byte BC3 (DXT5) block: an 8-byte alpha block
// followed by an 8-byte BC1-style color block (always 4-interpolant mode,
// regardless of endpoint ordering).
func DecodeBC3(src []byte, dstRow0 []byte, rowStride int) {
	decodeColorBlock(src[8:16], dstRow0, rowStride, false)
	decodeAlphaDxt5(src[:8], dstRow0, rowStride)
}

// decodeColorBlock implements the shared BC1/BC3-color decode path. When
// isDXT1 is true and endpoint0 <= endpoint1 numerically, index 3 decodes to
// transparent black (BC1's punchthrough-alpha mode); otherwise all four
// palette entries are opaque interpolations.
func decodeColorBlock(src []byte, dstRow0 []byte, rowStride int, isDXT1 bool) {
	c0, raw0 := unpack565(src[0], src[1])
	c1, raw1 := unpack565(src[2], src[3])
	punchthrough := isDXT1 && raw0 <= raw1

	var palette [4][4]uint8 // [index][R,G,B,A]
	for ch := 0; ch < 3; ch++ {
		palette[0][ch] = c0[ch]
		palette[1][ch] = c1[ch]
		if punchthrough {
			palette[2][ch] = uint8((int(c0[ch]) + int(c1[ch])) / 2)
			palette[3][ch] = 0
		} else {
			palette[2][ch] = uint8((2*int(c0[ch]) + int(c1[ch])) / 3)
			palette[3][ch] = uint8((int(c0[ch]) + 2*int(c1[ch])) / 3)
		}
	}
	palette[0][3], palette[1][3], palette[2][3] = 255, 255, 255
	if punchthrough {
		palette[3][3] = 0
	} else {
		palette[3][3] = 255
	}

	for y := 0; y < 4; y++ {
		packed := src[4+y]
		row := dstRow0[y*rowStride:]
		for x := 0; x < 4; x++ {
			idx := (packed >> (2 * uint(x))) & 0x3
			copy(row[x*4:x*4+4], palette[idx][:])
		}
	}
}

// decodeAlphaDxt5 decodes an 8-byte BC3/DXT5 alpha block and writes each
// pixel's alpha channel into dstRow0 at the given row stride.
func decodeAlphaDxt5(src []byte, dstRow0 []byte, rowStride int) {
	a0, a1 := int(src[0]), int(src[1])

	var codes [8]uint8
	codes[0], codes[1] = uint8(a0), uint8(a1)
	if a0 <= a1 {
		for i := 1; i < 5; i++ {
			codes[1+i] = uint8(((5-i)*a0 + i*a1) / 5)
		}
		codes[6] = 0
		codes[7] = 255
	} else {
		for i := 1; i < 7; i++ {
			codes[1+i] = uint8(((7-i)*a0 + i*a1) / 7)
		}
	}

	// 48 bits of 3-bit indices, little-endian within each 3-byte group.
	var indices [16]uint8
	for group := 0; group < 2; group++ {
		value := int(src[2+group*3]) | int(src[3+group*3])<<8 | int(src[4+group*3])<<16
		for j := 0; j < 8; j++ {
			indices[group*8+j] = uint8((value >> uint(3*j)) & 0x7)
		}
	}

	for y := 0; y < 4; y++ {
		row := dstRow0[y*rowStride:]
		for x := 0; x < 4; x++ {
			row[x*4+3] = codes[indices[y*4+x]]
		}
	}
}

package block

// PackETC1S quantizes a tile Summary to an 8-byte ETC1S block: ETC1's
// differential mode forced to zero delta and equal sub-block codewords, the
// "simplified" subset basis-style transcoders expect.
//
// The reference encoder builds the rgb+control word and the selector word
// as native little-endian uint32 values, while the decoder side of the
// same format reconstructs its working words from the wire bytes in
// big-endian order (the standard ETC1 wire convention). Both conventions
// are reproduced here exactly rather than re-derived, so the two halves
// stay bit-compatible the way the original pairing is.
func PackETC1S(s Summary) [8]byte {
	r5x8 := uint32(s.BaseRGB[0]) &^ 0x07 // top 5 bits of R, bottom 3 (dR) left zero
	g5x8 := uint32(s.BaseRGB[1]) &^ 0x07
	b5x8 := uint32(s.BaseRGB[2]) &^ 0x07

	cw := chooseCodeword(int(s.BrightRangeHalf))
	ctrl := uint32(cw)<<5 | uint32(cw)<<2 | 1<<1 | 1 // cw1:3 cw2:3 diff:1 flip:1

	var out [8]byte
	out[0] = byte(r5x8)
	out[1] = byte(g5x8)
	out[2] = byte(b5x8)
	out[3] = byte(ctrl)

	// Per-pixel selector planes: bitNumber remaps the tile's row-major
	// pixel order onto ETC1's column-major addressing. lsb accumulates
	// into the selector word's high half, msb into its low half.
	var lsbPlane, msbPlane uint32
	for n := 0; n < 16; n++ {
		bit := etcRemapIndex[n]
		lsbPlane |= etcLSBRemap[s.Sel[n]] << bit
		msbPlane |= etcMSBRemap[s.Sel[n]] << bit
	}
	v := lsbPlane<<16 | msbPlane
	out[4] = byte(v)
	out[5] = byte(v >> 8)
	out[6] = byte(v >> 16)
	out[7] = byte(v >> 24)

	return out
}

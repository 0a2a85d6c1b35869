package texdecode

import (
	"github.com/texblock/goofytex/internal/bitfield"
	"github.com/texblock/goofytex/internal/clip"
)

// blockWords reconstructs the two big-endian 32-bit halves of an 8-byte
// ETC1/ETC2 color block: part1 conventionally holds bits 63..32 of the
// block, part2 holds bits 31..0.
func blockWords(src []byte) (part1, part2 uint32) {
	part1 = uint32(src[0])<<24 | uint32(src[1])<<16 | uint32(src[2])<<8 | uint32(src[3])
	part2 = uint32(src[4])<<24 | uint32(src[5])<<16 | uint32(src[6])<<8 | uint32(src[7])
	return part1, part2
}

// DecodeETC1 decodes one 8-byte ETC1 color block. ETC1 has no superset
// modes, but the bit layout that signals ETC2's T-mode/H-mode/planar modes
// is an overflow of ETC1's differential-mode delta field, so a correct ETC1
// decoder and the ETC2 color-block dispatch are the same function: a
// conformant ETC1 stream simply never triggers the overflow branches.
func DecodeETC1(src []byte, dstRow0 []byte, rowStride int) {
	part1, part2 := blockWords(src)
	decodeETCColorBlock(part1, part2, dstRow0, rowStride)
}

// DecodeETC2 decodes one 16-byte ETC2 block: an 8-byte EAC alpha block
// followed by an 8-byte color block dispatched across differential,
// individual, T-mode, H-mode, and planar sub-modes.
func DecodeETC2(src []byte, dstRow0 []byte, rowStride int) {
	decodeEACAlpha(src[:8], dstRow0, rowStride)
	part1, part2 := blockWords(src[8:16])
	decodeETCColorBlock(part1, part2, dstRow0, rowStride)
}

// decodeETCColorBlock dispatches on the differential-mode bit (bit 33 of
// the conceptual 64-bit block) and, within differential mode, on whether
// the derived second endpoint overflows its 5-bit range -- the ETC2
// signaling mechanism for T-mode, H-mode, and planar mode.
func decodeETCColorBlock(part1, part2 uint32, dstRow0 []byte, rowStride int) {
	diffBit := bitfield.GetHigh(part1, 1, 33)
	if diffBit == 0 {
		decodeDiffFlip(part1, part2, dstRow0, rowStride, false)
		return
	}

	color1 := [3]int8{
		int8(bitfield.GetHigh(part1, 5, 63)),
		int8(bitfield.GetHigh(part1, 5, 55)),
		int8(bitfield.GetHigh(part1, 5, 47)),
	}
	diff := [3]int8{
		signExtend3(int8(bitfield.GetHigh(part1, 3, 58))),
		signExtend3(int8(bitfield.GetHigh(part1, 3, 50))),
		signExtend3(int8(bitfield.GetHigh(part1, 3, 42))),
	}
	red := int(color1[0]) + int(diff[0])
	green := int(color1[1]) + int(diff[1])
	blue := int(color1[2]) + int(diff[2])

	switch {
	case red < 0 || red > 31:
		p1, p2 := unstuff59bits(part1, part2)
		decodeTMode(p1, p2, dstRow0, rowStride)
	case green < 0 || green > 31:
		p1, p2 := unstuff58bits(part1, part2)
		decodeHMode(p1, p2, dstRow0, rowStride)
	case blue < 0 || blue > 31:
		p1, p2 := unstuff57bits(part1, part2)
		decodePlanarMode(p1, p2, dstRow0, rowStride)
	default:
		decodeDiffFlip(part1, part2, dstRow0, rowStride, true)
	}
}

// signExtend5 sign-extends a 5-bit two's-complement value held in the low
// 5 bits of an int8.
func signExtend5(v int8) int8 { return (v << 3) >> 3 }

// signExtend3 sign-extends a 3-bit two's-complement value held in the low
// 3 bits of an int8, per the shift-left-5-then-arithmetic-shift-right-5
// trick for bit-2-as-sign.
func signExtend3(v int8) int8 { return (v << 5) >> 5 }

// decodeDiffFlip decodes ETC1's individual mode (isDiff=false, 4-bit
// endpoints nibble-replicated to 8 bits) and differential mode (isDiff=true,
// 5-bit base + signed 3-bit delta, shift-left-3-plus-top-bit-replication
// expansion). Both share identical pixel addressing and modifier lookup;
// only endpoint extraction differs.
func decodeDiffFlip(part1, part2 uint32, dstRow0 []byte, rowStride int, isDiff bool) {
	flip := bitfield.GetHigh(part1, 1, 32)

	var avgColor1, avgColor2 [3]uint8
	if isDiff {
		c1 := [3]int8{
			signExtend5(int8(bitfield.GetHigh(part1, 5, 63))),
			signExtend5(int8(bitfield.GetHigh(part1, 5, 55))),
			signExtend5(int8(bitfield.GetHigh(part1, 5, 47))),
		}
		d := [3]int8{
			signExtend3(int8(bitfield.GetHigh(part1, 3, 58))),
			signExtend3(int8(bitfield.GetHigh(part1, 3, 50))),
			signExtend3(int8(bitfield.GetHigh(part1, 3, 42))),
		}
		for c := 0; c < 3; c++ {
			v1 := uint8(c1[c]) & 0x1F
			avgColor1[c] = (v1 << 3) | (v1 >> 2)
			v2 := uint8(int8(c1[c])+d[c]) & 0x1F
			avgColor2[c] = (v2 << 3) | (v2 >> 2)
		}
	} else {
		n0 := [3]uint8{
			uint8(bitfield.GetHigh(part1, 4, 63)),
			uint8(bitfield.GetHigh(part1, 4, 55)),
			uint8(bitfield.GetHigh(part1, 4, 47)),
		}
		n1 := [3]uint8{
			uint8(bitfield.GetHigh(part1, 4, 59)),
			uint8(bitfield.GetHigh(part1, 4, 51)),
			uint8(bitfield.GetHigh(part1, 4, 43)),
		}
		for c := 0; c < 3; c++ {
			avgColor1[c] = n0[c]<<4 | n0[c]
			avgColor2[c] = n1[c]<<4 | n1[c]
		}
	}

	table1 := bitfield.GetHigh(part1, 3, 39) << 1
	table2 := bitfield.GetHigh(part1, 3, 36) << 1

	pixelMSB := bitfield.Get(part2, 16, 31)
	pixelLSB := bitfield.Get(part2, 16, 15)

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			var inFirstSubblock bool
			if flip == 0 {
				inFirstSubblock = x < 2
			} else {
				inFirstSubblock = y < 2
			}
			shift := uint(4*x + y)
			idx := (pixelMSB>>shift)&1<<1 | (pixelLSB>>shift)&1
			idx = uint32(unscramble[idx])

			base := avgColor2
			table := table2
			if inFirstSubblock {
				base = avgColor1
				table = table1
			}

			off := y*rowStride + x*4
			for c := 0; c < 3; c++ {
				dstRow0[off+c] = clip.Byte(int(base[c]) + etcModifier[table][idx])
			}
			dstRow0[off+3] = 255
		}
	}
}

// decodeTMode decodes ETC2's T-mode block (already unstuffed to the 59-bit
// layout): two 12-bit RGB444 endpoints, a distance index, and a 2-bit
// per-pixel selector choosing among {c0, c1+d, c1, c1-d}.
func decodeTMode(part1, part2 uint32, dstRow0 []byte, rowStride int) {
	rgb444 := [2][3]uint8{
		{uint8(bitfield.GetHigh(part1, 4, 58)), uint8(bitfield.GetHigh(part1, 4, 54)), uint8(bitfield.GetHigh(part1, 4, 50))},
		{uint8(bitfield.GetHigh(part1, 4, 46)), uint8(bitfield.GetHigh(part1, 4, 42)), uint8(bitfield.GetHigh(part1, 4, 38))},
	}
	distIdx := uint8(bitfield.GetHigh(part1, 3, 34))
	colors := expand444(rgb444)
	d := thDistance[distIdx]

	// PATTERN_T palette: C1=colors[0], C2=colors[1]+d, C3=colors[1], C4=colors[1]-d.
	var palette [4][3]uint8
	palette[0] = colors[0]
	for c := 0; c < 3; c++ {
		palette[1][c] = clip.Byte(int(colors[1][c]) + int(d))
		palette[3][c] = clip.Byte(int(colors[1][c]) - int(d))
	}
	palette[2] = colors[1]

	writeSelectorBlock(part2, palette, dstRow0, rowStride)
}

// decodeHMode decodes ETC2's H-mode block (already unstuffed to the 58-bit
// layout): two 12-bit endpoints, a distance index whose LSB is folded in
// from endpoint ordering, and a selector choosing among
// {c0+d, c0-d, c1+d, c1-d}.
func decodeHMode(part1, part2 uint32, dstRow0 []byte, rowStride int) {
	rgb444 := [2][3]uint8{
		{uint8(bitfield.GetHigh(part1, 4, 57)), uint8(bitfield.GetHigh(part1, 4, 53)), uint8(bitfield.GetHigh(part1, 4, 49))},
		{uint8(bitfield.GetHigh(part1, 4, 45)), uint8(bitfield.GetHigh(part1, 4, 41)), uint8(bitfield.GetHigh(part1, 4, 37))},
	}
	col0 := bitfield.GetHigh(part1, 12, 57)
	col1 := bitfield.GetHigh(part1, 12, 45)
	distIdx := bitfield.GetHigh(part1, 2, 33) << 1
	if col0 >= col1 {
		distIdx |= 1
	}
	colors := expand444(rgb444)
	d := thDistance[distIdx]

	// PATTERN_H palette: C1=c0+d, C2=c0-d, C3=c1+d, C4=c1-d.
	var palette [4][3]uint8
	for c := 0; c < 3; c++ {
		palette[0][c] = clip.Byte(int(colors[0][c]) + int(d))
		palette[1][c] = clip.Byte(int(colors[0][c]) - int(d))
		palette[2][c] = clip.Byte(int(colors[1][c]) + int(d))
		palette[3][c] = clip.Byte(int(colors[1][c]) - int(d))
	}

	writeSelectorBlock(part2, palette, dstRow0, rowStride)
}

// writeSelectorBlock reads the 2-bit-per-pixel selector plane shared by
// T-mode and H-mode (high bit at shift+16, low bit at shift, shift=4x+y)
// and writes the selected palette entry for each pixel.
func writeSelectorBlock(part2 uint32, palette [4][3]uint8, dstRow0 []byte, rowStride int) {
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			shift := uint(4*x + y)
			idx := bitfield.Get(part2, 1, int(shift)+16)<<1 | bitfield.Get(part2, 1, int(shift))
			off := y*rowStride + x*4
			copy(dstRow0[off:off+3], palette[idx][:])
			dstRow0[off+3] = 255
		}
	}
}

// expand444 extends a pair of RGB444 endpoints to RGB888 by 4-bit
// replication (identical to nibble replication: v<<4|v).
func expand444(rgb444 [2][3]uint8) [2][3]uint8 {
	var out [2][3]uint8
	for i := 0; i < 2; i++ {
		for c := 0; c < 3; c++ {
			v := rgb444[i][c] & 0xF
			out[i][c] = v<<4 | v
		}
	}
	return out
}

// decodePlanarMode decodes ETC2's planar block (already unstuffed to the
// 57-bit layout): three RGB676/RGB777-ish anchor colors O, H, V defining a
// bilinear color plane across the 4x4 tile.
func decodePlanarMode(part1, part2 uint32, dstRow0 []byte, rowStride int) {
	colorO := [3]uint8{uint8(bitfield.GetHigh(part1, 6, 63)), uint8(bitfield.GetHigh(part1, 7, 57)), uint8(bitfield.GetHigh(part1, 6, 50))}
	colorH := [3]uint8{uint8(bitfield.GetHigh(part1, 6, 44)), uint8(bitfield.GetHigh(part1, 7, 38)), uint8(bitfield.Get(part2, 6, 31))}
	colorV := [3]uint8{uint8(bitfield.Get(part2, 6, 25)), uint8(bitfield.Get(part2, 7, 19)), uint8(bitfield.Get(part2, 6, 12))}

	expandPlanar := func(c *[3]uint8) {
		c[0] = (c[0] << 2) | (c[0] >> 4)
		c[1] = (c[1] << 1) | (c[1] >> 6)
		c[2] = (c[2] << 2) | (c[2] >> 4)
	}
	expandPlanar(&colorO)
	expandPlanar(&colorH)
	expandPlanar(&colorV)

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			off := y*rowStride + x*4
			for c := 0; c < 3; c++ {
				v := (x*(int(colorH[c])-int(colorO[c])) + y*(int(colorV[c])-int(colorO[c])) + 4*int(colorO[c]) + 2) >> 2
				dstRow0[off+c] = clip.Byte(v)
			}
			dstRow0[off+3] = 255
		}
	}
}

// unstuff59bits rearranges the raw differential-mode overflow bits into
// T-mode's 59-bit layout (red0-top-bits, the two endpoints, distance, and
// the diff/flip bits relocated).
func unstuff59bits(word1, word2 uint32) (uint32, uint32) {
	out1 := word1 >> 1
	bitfield.PutHigh(&out1, word1, 1, 32)
	r0a := bitfield.GetHigh(word1, 2, 60)
	bitfield.PutHigh(&out1, r0a, 2, 58)
	bitfield.PutHigh(&out1, 0, 5, 63)
	return out1, word2
}

// unstuff58bits rearranges the raw differential-mode overflow bits into
// H-mode's 58-bit layout.
func unstuff58bits(word1, word2 uint32) (uint32, uint32) {
	part0 := bitfield.GetHigh(word1, 7, 62)
	part1 := bitfield.GetHigh(word1, 2, 52)
	part2 := bitfield.GetHigh(word1, 16, 49)
	part3 := bitfield.GetHigh(word1, 1, 32)
	var out1 uint32
	bitfield.PutHigh(&out1, part0, 7, 57)
	bitfield.PutHigh(&out1, part1, 2, 50)
	bitfield.PutHigh(&out1, part2, 16, 48)
	bitfield.PutHigh(&out1, part3, 1, 32)
	return out1, word2
}

// unstuff57bits rearranges the raw differential-mode overflow bits into
// planar mode's 57-bit layout.
func unstuff57bits(word1, word2 uint32) (uint32, uint32) {
	ro := bitfield.GetHigh(word1, 6, 62)
	go1 := bitfield.GetHigh(word1, 1, 56)
	go2 := bitfield.GetHigh(word1, 6, 54)
	bo1 := bitfield.GetHigh(word1, 1, 48)
	bo2 := bitfield.GetHigh(word1, 2, 44)
	bo3 := bitfield.GetHigh(word1, 3, 41)
	rh1 := bitfield.GetHigh(word1, 5, 38)
	rh2 := bitfield.GetHigh(word1, 1, 32)
	gh := bitfield.Get(word2, 7, 31)
	bh := bitfield.Get(word2, 6, 24)
	rv := bitfield.Get(word2, 6, 18)
	gv := bitfield.Get(word2, 7, 12)
	bv := bitfield.Get(word2, 6, 5)

	var out1, out2 uint32
	bitfield.PutHigh(&out1, ro, 6, 63)
	bitfield.PutHigh(&out1, go1, 1, 57)
	bitfield.PutHigh(&out1, go2, 6, 56)
	bitfield.PutHigh(&out1, bo1, 1, 50)
	bitfield.PutHigh(&out1, bo2, 2, 49)
	bitfield.PutHigh(&out1, bo3, 3, 47)
	bitfield.PutHigh(&out1, rh1, 5, 44)
	bitfield.PutHigh(&out1, rh2, 1, 39)
	bitfield.PutHigh(&out1, gh, 7, 38)
	bitfield.Put(&out2, bh, 6, 31)
	bitfield.Put(&out2, rv, 6, 25)
	bitfield.Put(&out2, gv, 7, 19)
	bitfield.Put(&out2, bv, 6, 12)
	return out1, out2
}

// decodeEACAlpha decodes the ETC2-EAC 8-byte alpha block preceding a color
// block: a base value, a multiplier and table-index nibble pair, and 48
// bits of 3-bit selectors packed big-endian across the remaining 6 bytes.
func decodeEACAlpha(src []byte, dstRow0 []byte, rowStride int) {
	base := int(src[0])
	mult := int(src[1]>>4) & 0xF
	table := int(src[1]) & 0xF

	bit, byteIdx := 0, 2
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			var index int
			for b := 0; b < 3; b++ {
				frompos := 7 - bit
				topos := 2 - b
				if frompos > topos {
					index |= ((1 << uint(frompos)) & int(src[byteIdx])) >> uint(frompos-topos)
				} else {
					index |= ((1 << uint(frompos)) & int(src[byteIdx])) << uint(topos-frompos)
				}
				bit++
				if bit > 7 {
					bit = 0
					byteIdx++
				}
			}
			val := base + eacAlphaTable[table][index]*mult
			off := y*rowStride + x*4
			dstRow0[off+3] = clip.Byte(val)
		}
	}
}

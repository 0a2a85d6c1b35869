// Package texdecode implements the block decoder for BC1, BC3, ETC1, and
// ETC2 (differential, individual, T-mode, H-mode, and planar sub-modes).
// It decodes both self-produced blocks (for round-trip verification) and
// arbitrary third-party compressed data.
package texdecode

// unscramble maps a raw 2-bit (MSB,LSB) selector pair to the ordered index
// into the ETC intensity modifier table.
var unscramble = [4]int{2, 3, 1, 0}

// etcModifier holds the signed {-L,-S,+S,+L} modifier tuple for each of the
// 8 ETC intensity codewords, doubled to 16 rows because callers index it
// with the 3-bit codeword shifted left by one (cw<<1).
var etcModifier = [16][4]int{
	{-8, -2, 2, 8}, {-8, -2, 2, 8},
	{-17, -5, 5, 17}, {-17, -5, 5, 17},
	{-29, -9, 9, 29}, {-29, -9, 9, 29},
	{-42, -13, 13, 42}, {-42, -13, 13, 42},
	{-60, -18, 18, 60}, {-60, -18, 18, 60},
	{-80, -24, 24, 80}, {-80, -24, 24, 80},
	{-106, -33, 33, 106}, {-106, -33, 33, 106},
	{-183, -47, 47, 183}, {-183, -47, 47, 183},
}

// thDistance is the 3-bit distance table shared by T-mode and H-mode.
var thDistance = [8]uint8{3, 6, 11, 16, 23, 32, 41, 64}

// eacAlphaTable is the ETC2-EAC alpha modifier table: 16 rows selected by
// the 4-bit table index, 8 signed modifiers selected by the 3-bit selector.
var eacAlphaTable = [16][8]int{
	{-3, -6, -9, -15, 2, 5, 8, 14},
	{-3, -7, -10, -13, 2, 6, 9, 12},
	{-2, -5, -8, -13, 1, 4, 7, 12},
	{-2, -4, -6, -13, 1, 3, 5, 12},
	{-3, -6, -8, -12, 2, 5, 7, 11},
	{-3, -7, -9, -11, 2, 6, 8, 10},
	{-4, -7, -8, -11, 3, 6, 7, 10},
	{-3, -5, -8, -11, 2, 4, 7, 10},
	{-2, -6, -8, -10, 1, 5, 7, 9},
	{-2, -5, -8, -10, 1, 4, 7, 9},
	{-2, -4, -8, -10, 1, 3, 7, 9},
	{-2, -5, -7, -10, 1, 4, 6, 9},
	{-3, -4, -7, -10, 2, 3, 6, 9},
	{-1, -2, -3, -10, 0, 1, 2, 9},
	{-4, -6, -8, -9, 3, 5, 7, 8},
	{-3, -5, -7, -9, 2, 4, 6, 8},
}

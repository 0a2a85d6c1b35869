// Package block implements the per-tile analysis and format packers shared
// by the BC1 and ETC1S encoders: one analysis pass over a 4x4 RGBA8 tile
// feeds both format-specific bit packers.
package block

// Selector is the analyzer's shared four-state per-pixel classification,
// mapped to format-specific bit patterns at pack time.
type Selector uint8

const (
	SelBrightest Selector = 0 // pixel luma above midLuma by at least the threshold
	SelDarkest   Selector = 1 // pixel luma below midLuma by at least the threshold
	SelNearBright Selector = 2 // above midLuma, within the threshold
	SelNearDark   Selector = 3 // below midLuma, within the threshold
)

// intensityL and intensityS hold the large/small modifier magnitudes for
// each of the 8 ETC intensity codewords.
var intensityL = [8]int{8, 17, 29, 42, 60, 80, 106, 183}
var intensityS = [8]int{2, 5, 9, 13, 18, 24, 33, 47}

// cwThreshold is the encoder's codeword-selection table, compared against
// brightRangeHalf (half of the clamped brightness range, already rounded
// to a byte) rather than the published intensityL magnitudes or the full
// range — do not "correct" these to look like intensityL.
var cwThreshold = [7]int{10, 21, 36, 52, 75, 90, 126}

// chooseCodeword returns the smallest cw in 0..7 such that brightRangeHalf
// fits under cwThreshold[cw], or 7 if it exceeds every threshold.
func chooseCodeword(brightRangeHalf int) uint8 {
	for cw, t := range cwThreshold {
		if brightRangeHalf <= t {
			return uint8(cw)
		}
	}
	return 7
}

// etcRemapIndex maps a tile pixel index n = y*4+x (row-major, x fast axis)
// to its bit position within the 16-bit selector planes as PackETC1S
// accumulates them. ETC1's natural addressing is column-major
// top-to-bottom (bit 4x+y), which does not coincide with the tile's
// row-major storage order; because PackETC1S stores each plane
// little-endian while ETC1 reads it big-endian, the two bytes of each plane
// are also swapped, giving bit 4*((x+2)%4)+y.
var etcRemapIndex = [16]uint32{
	0x8, 0xC, 0x0, 0x4,
	0x9, 0xD, 0x1, 0x5,
	0xA, 0xE, 0x2, 0x6,
	0xB, 0xF, 0x3, 0x7,
}

// etcLSBRemap and etcMSBRemap convert a Selector into the ETC sign/magnitude
// selector pair: MSB is the modifier's sign bit (1 = negative), LSB chooses
// small-vs-large magnitude (1 = large).
var etcLSBRemap = [4]uint32{1, 1, 0, 0}
var etcMSBRemap = [4]uint32{0, 1, 0, 1}

package block

// Tile is a 4x4 block of RGBA8 pixels gathered from an input image, indexed
// (x,y) with x the fast axis. The encoder ignores the alpha channel.
type Tile struct {
	R, G, B [16]uint8 // pixel n = y*4+x
}

// Gather reads a 4x4 tile out of a row-major RGBA8 buffer. rowOffset is the
// byte offset of the tile's top-left pixel; the four rows are strideBytes
// apart and each supplies 16 bytes (4 pixels x 4 channels).
func Gather(src []byte, rowOffset, strideBytes int) Tile {
	var t Tile
	for y := 0; y < 4; y++ {
		row := src[rowOffset+y*strideBytes:]
		for x := 0; x < 4; x++ {
			n := y*4 + x
			t.R[n] = row[x*4+0]
			t.G[n] = row[x*4+1]
			t.B[n] = row[x*4+2]
		}
	}
	return t
}

// Summary is the transient per-tile analysis shared by both format packers.
type Summary struct {
	MinRGB, MaxRGB, AvgRGB, BaseRGB [3]uint8
	BrightRangeHalf                 uint8
	Sel                             [16]Selector
}

// Analyze runs the shared tile analysis: min/max/avg RGB, a luminance
// midpoint and dynamic range, a brightness-corrected base color, and a
// per-pixel selector classifying each texel against the midpoint and a
// quantization threshold. minBrightnessRange is the format-dependent floor
// applied to the luma range (8 for BC1, 16 for ETC1S).
func Analyze(t Tile, minBrightnessRange float64) Summary {
	var minC, maxC [3]int
	var sumC [3]int
	minC[0], minC[1], minC[2] = 255, 255, 255

	for n := 0; n < 16; n++ {
		px := [3]int{int(t.R[n]), int(t.G[n]), int(t.B[n])}
		for c := 0; c < 3; c++ {
			if px[c] < minC[c] {
				minC[c] = px[c]
			}
			if px[c] > maxC[c] {
				maxC[c] = px[c]
			}
			sumC[c] += px[c]
		}
	}

	var avgC [3]int
	for c := 0; c < 3; c++ {
		avgC[c] = (sumC[c] + 8) >> 4
	}

	maxY := luma(maxC[0], maxC[1], maxC[2])
	minY := luma(minC[0], minC[1], minC[2])
	rng := maxY - minY
	if rng < minBrightnessRange {
		rng = minBrightnessRange
	}
	midY := (maxY + minY) / 2
	threshold := 0.375 * rng

	avgY := luma(avgC[0], avgC[1], avgC[2])
	shift := midY - avgY
	var baseC [3]int
	for c := 0; c < 3; c++ {
		baseC[c] = int(clampRound(float64(avgC[c]) + shift))
	}

	var sum Summary
	for c := 0; c < 3; c++ {
		sum.MinRGB[c] = uint8(minC[c])
		sum.MaxRGB[c] = uint8(maxC[c])
		sum.AvgRGB[c] = uint8(clampRound(float64(avgC[c])))
		sum.BaseRGB[c] = uint8(baseC[c])
	}
	half := clampRound(rng / 2)
	if half > 127 {
		half = 127
	}
	sum.BrightRangeHalf = uint8(half)

	for n := 0; n < 16; n++ {
		py := luma(int(t.R[n]), int(t.G[n]), int(t.B[n]))
		diff := py - midY
		switch {
		case diff > 0 && diff >= threshold:
			sum.Sel[n] = SelBrightest
		case diff > 0:
			sum.Sel[n] = SelNearBright
		case diff <= 0 && -diff >= threshold:
			sum.Sel[n] = SelDarkest
		default:
			sum.Sel[n] = SelNearDark
		}
	}

	return sum
}

// clampRound rounds to the nearest integer and clamps to [0,255].
func clampRound(v float64) float64 {
	r := v
	if r >= 0 {
		r = float64(int(r + 0.5))
	} else {
		r = float64(int(r - 0.5))
	}
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return r
}

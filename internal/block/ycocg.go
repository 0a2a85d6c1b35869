package block

// YCoCg is a reversible luma/chroma decomposition of an RGB triple. It is
// not used by the hot path (the packers work directly in RGB), but is kept
// for debugging color math: converting a tile's corner colors to YCoCg and
// back is a cheap sanity check that base/avg/min/max arithmetic hasn't
// drifted outside the RGB cube.
type YCoCg struct {
	Y, Co, Cg float64
}

// ToYCoCg converts an RGB triple to its YCoCg representation.
func ToYCoCg(r, g, b float64) YCoCg {
	co := r - b
	tmp := b + co/2
	cg := g - tmp
	y := tmp + cg/2
	return YCoCg{Y: y, Co: co, Cg: cg}
}

// ToRGB converts a YCoCg value back to an RGB triple. Round-tripping
// through ToYCoCg/ToRGB recovers the original components exactly, modulo
// floating-point rounding.
func (c YCoCg) ToRGB() (r, g, b float64) {
	tmp := c.Y - c.Cg/2
	g = c.Cg + tmp
	b = tmp - c.Co/2
	r = b + c.Co
	return r, g, b
}

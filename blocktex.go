package blocktex

import (
	"errors"
	"image"
	"image/color"

	"github.com/texblock/goofytex/internal/texdecode"
)

// ErrWidthNotMultipleOf4 is returned by the whole-image compressors when the
// source width is not a multiple of 4.
var ErrWidthNotMultipleOf4 = errors.New("blocktex: width not a multiple of 4")

// ErrHeightNotMultipleOf4 is returned by the whole-image compressors when
// the source height is not a multiple of 4.
var ErrHeightNotMultipleOf4 = errors.New("blocktex: height not a multiple of 4")

// Format selects which block format a compressed buffer holds.
type Format int8

const (
	// FormatBC1 is DXT1: two RGB565 endpoints and 16 2-bit selectors per
	// 4x4 tile, 8 bytes/tile.
	FormatBC1 Format = iota
	// FormatETC1S is ETC1's differential-mode, zero-delta, equal-codeword
	// subset, 8 bytes/tile.
	FormatETC1S
)

// BytesPerBlock returns the wire size of one compressed tile for f. Both
// formats supported by the encoder use 8 bytes/tile; BC3 and ETC2, which
// only the decoder half of this package understands, use 16.
func (f Format) BytesPerBlock() int { return 8 }

// Options selects the target block Format for a whole-image compression.
// The codec is fixed-rate by design (there is no quality/effort knob to
// expose): Options exists only to choose which of the two wire formats a
// CompressBC1/CompressETC1S-equivalent call should target when driven
// generically.
type Options struct {
	Format Format
}

// Image is a read-only view over a buffer of BC1 or ETC1S compressed
// tiles. It implements image.Image directly, decoding the owning tile on
// each At call, so compressed data can be handed to the standard image
// ecosystem (image/draw, png.Encode, ...) without a bulk decompression
// pass.
type Image struct {
	format        Format
	width, height int
	strideTiles   int
	data          []byte
}

// NewImage wraps a compressed buffer produced by CompressBC1 or
// CompressETC1S. width and height are the uncompressed pixel dimensions
// and must be multiples of 4; data must hold at least
// (width/4)*(height/4)*format.BytesPerBlock() bytes.
func NewImage(format Format, width, height int, data []byte) (*Image, error) {
	if width%4 != 0 {
		return nil, ErrWidthNotMultipleOf4
	}
	if height%4 != 0 {
		return nil, ErrHeightNotMultipleOf4
	}
	tilesX := width / 4
	tilesY := height / 4
	want := tilesX * tilesY * format.BytesPerBlock()
	if len(data) < want {
		return nil, errors.New("blocktex: compressed buffer too small for image dimensions")
	}
	return &Image{format: format, width: width, height: height, strideTiles: tilesX, data: data}, nil
}

// ColorModel implements image.Image.
func (im *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (im *Image) Bounds() image.Rectangle { return image.Rect(0, 0, im.width, im.height) }

// At implements image.Image, decoding the single tile covering (x, y) and
// returning its pixel. Repeated calls within the same tile repeat the
// decode; callers scanning a whole image should prefer DecompressBC1 or
// DecompressETC1.
func (im *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= im.width || y >= im.height {
		return color.RGBA{}
	}
	tx, ty := x/4, y/4
	bpb := im.format.BytesPerBlock()
	off := bpb * (ty*im.strideTiles + tx)
	block := im.data[off : off+bpb]

	var tile [16 * 4]byte
	switch im.format {
	case FormatBC1:
		texdecode.DecodeBC1(block, tile[:], 16)
	case FormatETC1S:
		texdecode.DecodeETC1(block, tile[:], 16)
	}
	px := (y%4)*16 + (x%4)*4
	return color.RGBA{R: tile[px], G: tile[px+1], B: tile[px+2], A: tile[px+3]}
}

package blocktex

import "github.com/texblock/goofytex/internal/texdecode"

// DecodeBC1 decodes one 8-byte BC1 block to 16 RGBA8 pixels at dstRow0,
// rowStride bytes apart per row.
func DecodeBC1(src []byte, dstRow0 []byte, rowStride int) {
	texdecode.DecodeBC1(src, dstRow0, rowStride)
}

// DecodeBC3 decodes one 16-byte BC3 (DXT5) block to 16 RGBA8 pixels.
func DecodeBC3(src []byte, dstRow0 []byte, rowStride int) {
	texdecode.DecodeBC3(src, dstRow0, rowStride)
}

// DecodeETC1 decodes one 8-byte ETC1 block to 16 RGBA8 pixels.
func DecodeETC1(src []byte, dstRow0 []byte, rowStride int) {
	texdecode.DecodeETC1(src, dstRow0, rowStride)
}

// DecodeETC2 decodes one 16-byte ETC2 block (8-byte EAC alpha followed by
// an 8-byte color block) to 16 RGBA8 pixels.
func DecodeETC2(src []byte, dstRow0 []byte, rowStride int) {
	texdecode.DecodeETC2(src, dstRow0, rowStride)
}

// DecompressBC1 decodes a whole width x height BC1-compressed buffer into a
// row-major RGBA8 buffer at the given destination stride.
func DecompressBC1(dst []byte, src []byte, width, height, dstStrideBytes int) {
	decompress(dst, src, width, height, dstStrideBytes, 8, texdecode.DecodeBC1)
}

// DecompressBC3 decodes a whole width x height BC3-compressed buffer.
func DecompressBC3(dst []byte, src []byte, width, height, dstStrideBytes int) {
	decompress(dst, src, width, height, dstStrideBytes, 16, texdecode.DecodeBC3)
}

// DecompressETC1 decodes a whole width x height ETC1-compressed buffer.
func DecompressETC1(dst []byte, src []byte, width, height, dstStrideBytes int) {
	decompress(dst, src, width, height, dstStrideBytes, 8, texdecode.DecodeETC1)
}

// DecompressETC2 decodes a whole width x height ETC2-compressed buffer.
func DecompressETC2(dst []byte, src []byte, width, height, dstStrideBytes int) {
	decompress(dst, src, width, height, dstStrideBytes, 16, texdecode.DecodeETC2)
}

func decompress(dst, src []byte, width, height, dstStrideBytes, bytesPerTile int, decodeBlock func([]byte, []byte, int)) {
	tilesX := width / 4
	tilesY := height / 4
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			block := src[(ty*tilesX+tx)*bytesPerTile:]
			dstOff := ty*4*dstStrideBytes + tx*16
			decodeBlock(block[:bytesPerTile], dst[dstOff:], dstStrideBytes)
		}
	}
}

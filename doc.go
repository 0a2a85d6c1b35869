// Package blocktex implements a fast, fixed-rate GPU texture block
// compressor and decoder.
//
// The encoder derives one per-tile analysis from each 4x4 RGBA8 block of an
// image and packs it into both BC1 (DXT1) and ETC1S (the simplified ETC1
// subset used by basis-style transcoders), trading exhaustive endpoint
// search for roughly an order of magnitude of speed. The decoder covers the
// wider family actually seen in the wild: BC1, BC3 (DXT5), ETC1, and full
// ETC2 (T-mode, H-mode, planar mode, and EAC alpha), since compressed data
// handed to the decoder need not have come from this encoder.
//
// Basic usage for encoding:
//
//	n, err := blocktex.CompressBC1(dst, src, width, height, stride)
//
// Basic usage for decoding a single block:
//
//	blocktex.DecodeBC1(block, dstRow0, rowStride)
package blocktex

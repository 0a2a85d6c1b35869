package blocktex

import (
	"sync"

	"github.com/texblock/goofytex/internal/block"
)

// CompressBC1 compresses a width x height RGBA8 image at src (row stride
// strideBytes) into BC1 blocks at dst, row-major, 8 bytes per tile. Returns
// the number of bytes written.
func CompressBC1(dst, src []byte, width, height, strideBytes int) (int, error) {
	return compress(dst, src, width, height, strideBytes, packBC1)
}

// CompressETC1S compresses a width x height RGBA8 image at src (row stride
// strideBytes) into ETC1S blocks at dst, row-major, 8 bytes per tile.
// Returns the number of bytes written.
func CompressETC1S(dst, src []byte, width, height, strideBytes int) (int, error) {
	return compress(dst, src, width, height, strideBytes, packETC1S)
}

// packBC1 and packETC1S close over the format-dependent analyzer floor and
// packer so compress/compressRows stay format-agnostic.
func packBC1(t block.Tile) [8]byte {
	return block.PackBC1(block.Analyze(t, 8))
}

func packETC1S(t block.Tile) [8]byte {
	return block.PackETC1S(block.Analyze(t, 16))
}

func compress(dst, src []byte, width, height, strideBytes int, pack func(block.Tile) [8]byte) (int, error) {
	if width%4 != 0 {
		return 0, ErrWidthNotMultipleOf4
	}
	if height%4 != 0 {
		return 0, ErrHeightNotMultipleOf4
	}
	tilesX, tilesY := width/4, height/4
	n := compressRows(dst, src, 0, tilesY, tilesX, strideBytes, pack)
	return n, nil
}

// compressRows packs tile rows [rowStart, rowEnd) into dst, returning the
// number of bytes written. It is the unit of work shared by the serial and
// parallel entry points, so a row-strip worker and the single-threaded path
// produce byte-identical output.
func compressRows(dst, src []byte, rowStart, rowEnd, tilesX, strideBytes int, pack func(block.Tile) [8]byte) int {
	n := 0
	for ty := rowStart; ty < rowEnd; ty++ {
		rowOffset := ty * 4 * strideBytes
		for tx := 0; tx < tilesX; tx++ {
			t := block.Gather(src, rowOffset+tx*16, strideBytes)
			out := pack(t)
			copy(dst[(ty*tilesX+tx)*8:], out[:])
			n += 8
		}
	}
	return n
}

// CompressBC1Parallel is CompressBC1 partitioned into disjoint row-strips
// and dispatched across workers goroutines. Tiles neither read nor write
// state outside their own input and output slices, so each worker's writes
// never race; output is byte-identical to CompressBC1 regardless of
// workers.
func CompressBC1Parallel(dst, src []byte, width, height, strideBytes, workers int) (int, error) {
	return compressParallel(dst, src, width, height, strideBytes, workers, packBC1)
}

// CompressETC1SParallel is CompressETC1S partitioned into disjoint
// row-strips and dispatched across workers goroutines.
func CompressETC1SParallel(dst, src []byte, width, height, strideBytes, workers int) (int, error) {
	return compressParallel(dst, src, width, height, strideBytes, workers, packETC1S)
}

func compressParallel(dst, src []byte, width, height, strideBytes, workers int, pack func(block.Tile) [8]byte) (int, error) {
	if width%4 != 0 {
		return 0, ErrWidthNotMultipleOf4
	}
	if height%4 != 0 {
		return 0, ErrHeightNotMultipleOf4
	}
	tilesX, tilesY := width/4, height/4
	if workers < 1 {
		workers = 1
	}
	if workers > tilesY {
		workers = tilesY
	}
	if workers <= 1 || tilesY == 0 {
		n := compressRows(dst, src, 0, tilesY, tilesX, strideBytes, pack)
		return n, nil
	}

	rowsPerWorker := (tilesY + workers - 1) / workers
	var wg sync.WaitGroup
	counts := make([]int, workers)
	for w := 0; w < workers; w++ {
		rowStart := w * rowsPerWorker
		rowEnd := rowStart + rowsPerWorker
		if rowEnd > tilesY {
			rowEnd = tilesY
		}
		if rowStart >= rowEnd {
			continue
		}
		wg.Add(1)
		go func(w, rowStart, rowEnd int) {
			defer wg.Done()
			counts[w] = compressRows(dst, src, rowStart, rowEnd, tilesX, strideBytes, pack)
		}(w, rowStart, rowEnd)
	}
	wg.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

package pep

import (
	"github.com/deepteams/pep/internal/arith"
	"github.com/deepteams/pep/internal/palette"
	"github.com/deepteams/pep/internal/ppm"
	"github.com/deepteams/pep/internal/reformat"
)

// Compress builds a palette and coded payload from pixels (width*height
// 32-bit colors in inFmt, row-major), producing an Image whose palette is
// stored in outFmt. Per spec.md §3, a null/empty buffer or a zero
// dimension returns an empty Image and ErrInvalidInput rather than a
// partial result.
func Compress(pixels []uint32, width, height int, inFmt, outFmt reformat.Format) (Image, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return Image{}, ErrInvalidInput
	}

	pal, indices := palette.Build(pixels, inFmt, outFmt)
	bitsPerIndex := palette.BitsPerIndex(len(pal))
	packed := palette.Pack(indices, bitsPerIndex)
	maxSymbols := palette.MaxByte(packed)

	model := ppm.Acquire()
	defer ppm.Release(model)

	enc := arith.NewEncoder(len(packed))
	for _, sym := range packed {
		model.EncodeSymbol(enc, sym)
	}
	payload := enc.Flush()

	return Image{
		Width:       width,
		Height:      height,
		Format:      outFmt,
		ColorBits:   8,
		Palette:     pal,
		PaletteSize: len(pal),
		MaxSymbols:  int(maxSymbols),
		Payload:     payload,
	}, nil
}

package pep

import (
	"github.com/deepteams/pep/internal/arith"
	"github.com/deepteams/pep/internal/palette"
	"github.com/deepteams/pep/internal/pool"
	"github.com/deepteams/pep/internal/ppm"
	"github.com/deepteams/pep/internal/reformat"
)

// Decompress expands img back into a pixel raster in outFmt. When
// transparentFirstColor is set, the alpha byte of palette[0] is cleared
// before expansion, so every pixel coded against index 0 comes out with
// zero alpha while every other pixel is untouched (spec.md §3, §8).
func Decompress(img Image, outFmt reformat.Format, transparentFirstColor bool) ([]uint32, error) {
	if len(img.Payload) == 0 {
		return nil, ErrEmptyImage
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, ErrInvalidInput
	}
	if img.PaletteSize < 1 || img.PaletteSize > len(img.Palette) {
		return nil, ErrInvalidInput
	}

	pal := img.Palette[:img.PaletteSize]
	first := pal[0]
	if transparentFirstColor {
		first = reformat.ClearAlpha(first, img.Format)
	}

	bitsPerIndex := palette.BitsPerIndex(img.PaletteSize)
	count := img.Width * img.Height
	perByte := palette.IndicesPerByte(bitsPerIndex)
	numPacked := (count + perByte - 1) / perByte

	model := ppm.Acquire()
	defer ppm.Release(model)

	dec := arith.NewDecoder(img.Payload)
	packed := pool.Get(numPacked)
	defer pool.Put(packed)
	for i := range packed {
		packed[i] = model.DecodeSymbol(dec, img.MaxSymbols)
	}

	indices := palette.Unpack(packed, bitsPerIndex, count)

	pixels := make([]uint32, count)
	for i, idx := range indices {
		c := pal[idx]
		if idx == 0 {
			c = first
		}
		pixels[i] = reformat.Reformat(c, img.Format, outFmt)
	}
	return pixels, nil
}

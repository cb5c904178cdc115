// Package palette builds first-seen color palettes from a pixel raster and
// packs the resulting palette indices into byte-aligned symbols for the PPM
// coder.
//
// The scan-and-dedup pattern mirrors the color cache of the teacher's VP8L
// encoder (internal/lossless/colorcache.go in the source tree this package
// was adapted from): both maintain a small ordered table of recently or
// previously seen colors and fall back to a sentinel when the table is full.
package palette

import "github.com/deepteams/pep/internal/reformat"

// MaxSize is the largest palette the builder will ever produce. The builder
// stops adding new entries once it would reach 256, reserving index 255.
const MaxSize = 255

// Build scans pixels (in inFmt, reading order) and returns the palette
// (colors reformatted to outFmt, first-seen order) together with one
// palette index per pixel.
//
// Runs of identical raw pixel values are coalesced without a palette probe,
// matching the reference algorithm's last_pixel shortcut. A color that
// cannot fit in the palette (because it would be the 256th distinct color)
// is coerced to index 0.
func Build(pixels []uint32, inFmt, outFmt reformat.Format) (pal []uint32, indices []byte) {
	if len(pixels) == 0 {
		return nil, nil
	}
	indices = make([]byte, len(pixels))
	pal = make([]uint32, 0, MaxSize)

	var lastPixel uint32
	haveLast := false

	for i, raw := range pixels {
		if haveLast && raw == lastPixel {
			indices[i] = indices[i-1]
			continue
		}
		haveLast = true
		lastPixel = raw

		c := reformat.Reformat(raw, inFmt, outFmt)
		idx := indexOf(pal, c)
		if idx < 0 {
			if len(pal)+1 < 256 {
				pal = append(pal, c)
				idx = len(pal) - 1
			} else {
				idx = 0
			}
		}
		indices[i] = byte(idx)
	}
	return pal, indices
}

func indexOf(pal []uint32, c uint32) int {
	for i, p := range pal {
		if p == c {
			return i
		}
	}
	return -1
}

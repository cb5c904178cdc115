package pep

import (
	"errors"

	"github.com/deepteams/pep/internal/reformat"
)

// Image is the in-memory descriptor produced by Compress and consumed by
// Serialize/Decompress, matching spec.md §3's PepImage.
type Image struct {
	Width, Height int
	Format        reformat.Format
	// ColorBits selects the palette-quantization mode used by Serialize:
	// 1, 2, 4, or 8 bits per channel. It affects only serialization, never
	// compression or decompression, and defaults to 8 (no quantization)
	// when an Image is produced by Compress.
	ColorBits int
	// Palette holds PaletteSize entries in Format's channel order.
	Palette     []uint32
	PaletteSize int
	// MaxSymbols is the largest packed-symbol byte value actually present
	// in the coded payload; the decoder's frequency-table scan is bounded
	// by it (internal/ppm.Table.find).
	MaxSymbols int
	// Payload is the arithmetic-coded packed-symbol stream. An Image with
	// an empty Payload is invalid and must not be serialized.
	Payload []byte
}

var (
	// ErrInvalidInput covers null/empty pixel buffers and zero dimensions
	// passed to Compress.
	ErrInvalidInput = errors.New("pep: invalid input dimensions or buffer")
	// ErrEmptyImage is returned by Serialize when called on an Image whose
	// Payload is empty (spec.md §3: "a PepImage with empty payload is
	// invalid and must not be serialized").
	ErrEmptyImage = errors.New("pep: image has no payload")
)

// Free releases img's payload and palette, zeroing both fields. It mirrors
// the explicit free() lifecycle step of spec.md §5 rather than relying on
// the garbage collector to reclaim the (potentially large) coded payload
// promptly — the same reasoning behind the teacher's pool.Put calls for
// scratch buffers it is done with.
func Free(img *Image) {
	if img == nil {
		return
	}
	img.Payload = nil
	img.Palette = nil
	img.Width, img.Height, img.MaxSymbols, img.PaletteSize = 0, 0, 0, 0
}

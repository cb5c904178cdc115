package pep

import "github.com/deepteams/pep/internal/container"

// Serialize encodes img into a self-contained byte container (spec.md
// §4.6), quantizing the palette to img.ColorBits bits per channel. An
// Image with an empty payload is rejected rather than silently producing
// a malformed container.
func Serialize(img Image) ([]byte, error) {
	if len(img.Payload) == 0 {
		return nil, ErrEmptyImage
	}
	h := container.Header{
		Format:      img.Format,
		ColorBits:   img.ColorBits,
		PaletteSize: img.PaletteSize,
		Width:       img.Width,
		Height:      img.Height,
		MaxSymbols:  img.MaxSymbols,
		Palette:     img.Palette,
		Payload:     img.Payload,
	}
	return container.Write(h)
}

// Deserialize parses a byte container produced by Serialize back into an
// Image. Malformed input (truncated header, zero geometry, a zero
// palette_size byte whose first palette entry is also zero, empty payload)
// is reported as an error rather than a partially populated Image. A zero
// palette_size byte with a non-zero first entry is read as 256 entries.
func Deserialize(data []byte) (Image, error) {
	h, err := container.Read(data)
	if err != nil {
		return Image{}, err
	}
	return Image{
		Width:       h.Width,
		Height:      h.Height,
		Format:      h.Format,
		ColorBits:   h.ColorBits,
		Palette:     h.Palette,
		PaletteSize: h.PaletteSize,
		MaxSymbols:  h.MaxSymbols,
		Payload:     h.Payload,
	}, nil
}

package container

// Write serializes h into the byte layout from spec.md §4.6. The coder
// itself is infallible (spec.md §7); Write fails only for a Header that
// doesn't fit the container: zero or oversized geometry, an empty payload,
// a palette size outside 1..256, or an unsupported ColorBits.
func Write(h Header) ([]byte, error) {
	if h.Width <= 0 || h.Height <= 0 {
		return nil, ErrZeroDimension
	}
	if h.Width > MaxDimension || h.Height > MaxDimension {
		return nil, ErrDimensionTooLarge
	}
	if len(h.Payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if h.PaletteSize < 1 || h.PaletteSize > 256 {
		return nil, ErrBadPaletteSize
	}

	cbCode, err := colorBitsCode(h.ColorBits)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 8+PaletteByteSize(h.PaletteSize, h.ColorBits)+len(h.Payload))

	out = append(out, byte(h.Format)&0x07|(cbCode<<3))
	// A palette of exactly 256 entries truncates to 0 here, the same
	// uint8_t wraparound PEP.original.h's pep_serialize relies on; Read
	// undoes it by treating a 0 byte as 256 when palette[0] is non-zero.
	out = append(out, byte(h.PaletteSize))

	geom := uint32(h.Width)<<12 | uint32(h.Height)
	out = append(out, byte(geom>>16), byte(geom>>8), byte(geom))

	out = putUvarint(out, uint32(len(h.Payload)))

	out = append(out, byte(h.MaxSymbols))

	out = append(out, EncodePalette(h.Palette, h.ColorBits)...)
	out = append(out, h.Payload...)

	return out, nil
}

package container

import "github.com/deepteams/pep/internal/reformat"

// Read parses a byte-exact PEP container, as written by Write. Malformed
// input (truncated header, zero geometry, empty payload) returns an error
// and a zero Header.
//
// A palette_size byte of 0 is not itself malformed: spec.md §4.6 documents
// it as encoding 256 entries, matching PEP.original.h's pep_serialize
// (palette_size is a uint8_t, so a 256-entry palette wraps to 0 on the
// wire). Read disambiguates the genuinely-malformed case — a zero byte with
// no palette data behind it — by checking whether the decoded palette[0]
// is non-zero before committing to the 256 interpretation.
func Read(data []byte) (Header, error) {
	if len(data) < 6 {
		return Header{}, ErrTruncated
	}

	formatByte := data[0]
	h := Header{
		Format: reformat.Format(formatByte & 0x07),
	}
	cb, err := colorBitsFromCode((formatByte >> 3) & 0x03)
	if err != nil {
		return Header{}, err
	}
	h.ColorBits = cb

	rawPaletteSize := int(data[1])

	geom := uint32(data[2])<<16 | uint32(data[3])<<8 | uint32(data[4])
	h.Width = int(geom >> 12)
	h.Height = int(geom & 0xFFF)
	if h.Width == 0 || h.Height == 0 {
		return Header{}, ErrZeroDimension
	}

	rest := data[5:]
	payloadLen, n, ok := getUvarint(rest)
	if !ok {
		return Header{}, ErrTruncated
	}
	rest = rest[n:]

	if len(rest) < 1 {
		return Header{}, ErrTruncated
	}
	h.MaxSymbols = int(rest[0])
	rest = rest[1:]

	paletteSize := rawPaletteSize
	if paletteSize == 0 {
		peekLen := PaletteByteSize(1, cb)
		if len(rest) < peekLen {
			return Header{}, ErrBadPaletteSize
		}
		first := DecodePalette(rest[:peekLen], cb, 1)
		if first == nil || first[0] == 0 {
			return Header{}, ErrBadPaletteSize
		}
		paletteSize = 256
	}
	h.PaletteSize = paletteSize

	palBytes := PaletteByteSize(paletteSize, cb)
	if len(rest) < palBytes {
		return Header{}, ErrTruncated
	}
	pal := DecodePalette(rest[:palBytes], cb, paletteSize)
	if pal == nil {
		return Header{}, ErrTruncated
	}
	h.Palette = pal
	rest = rest[palBytes:]

	if uint32(len(rest)) < payloadLen {
		return Header{}, ErrTruncated
	}
	if payloadLen == 0 {
		return Header{}, ErrEmptyPayload
	}
	h.Payload = append([]byte(nil), rest[:payloadLen]...)

	return h, nil
}

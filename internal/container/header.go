package container

import "github.com/deepteams/pep/internal/reformat"

// Header is the full set of fields a PEP container carries outside the
// coded payload itself.
type Header struct {
	Format      reformat.Format
	ColorBits   int // 1, 2, 4, or 8
	PaletteSize int // 1..256 (256 is stored on the wire as a 0 byte)
	Width       int
	Height      int
	MaxSymbols  int
	Palette     []uint32 // PaletteSize entries, in Format's channel order
	Payload     []byte
}

func colorBitsCode(cb int) (byte, error) {
	switch cb {
	case 1:
		return 0, nil
	case 2:
		return 1, nil
	case 4:
		return 2, nil
	case 8:
		return 3, nil
	default:
		return 0, ErrBadColorBits
	}
}

func colorBitsFromCode(code byte) (int, error) {
	switch code {
	case 0:
		return 1, nil
	case 1:
		return 2, nil
	case 2:
		return 4, nil
	case 3:
		return 8, nil
	default:
		return 0, ErrBadColorBits // unreachable: code is masked to 2 bits
	}
}

// putUvarint appends n encoded as a LEB128-style varint (continuation bit
// 0x80) to buf, returning the extended slice.
func putUvarint(buf []byte, n uint32) []byte {
	for n >= 0x80 {
		buf = append(buf, byte(n)|0x80)
		n >>= 7
	}
	return append(buf, byte(n))
}

// getUvarint reads a LEB128-style varint from the front of buf, returning
// the value, the number of bytes consumed, and false if the varint runs
// past maxLEB128Bytes without terminating or runs off the end of buf.
//
// The 5-byte bound guards against the unbounded-continuation-byte hazard
// spec.md §9 calls out in the reference BMP length decoder.
func getUvarint(buf []byte) (value uint32, n int, ok bool) {
	for n = 0; n < maxLEB128Bytes; n++ {
		if n >= len(buf) {
			return 0, 0, false
		}
		b := buf[n]
		value |= uint32(b&0x7F) << uint(7*n)
		if b&0x80 == 0 {
			return value, n + 1, true
		}
	}
	return 0, 0, false
}

// Package container serializes a PEP image descriptor (geometry, channel
// format, palette-quantization mode, palette, and coded payload) into the
// flat byte layout described in spec.md §4.6, and parses it back.
//
// The header/palette split and the explicit error-on-malformed-input
// discipline follow the teacher's RIFF container parser (internal/container
// in the source tree this package was adapted from): both separate "parse
// the fixed header" from "walk the variable-length body", and both refuse
// to guess past truncated or zero-sized fields.
package container

import "errors"

// Errors returned by Read and Write. Write fails only for a Header whose
// fields don't fit the container (the coder itself never fails; see
// spec.md §7); ErrDimensionTooLarge comes from Write alone.
var (
	ErrTruncated     = errors.New("pep: truncated container")
	ErrZeroDimension = errors.New("pep: zero width or height")
	ErrEmptyPayload  = errors.New("pep: empty payload")
	ErrDimensionTooLarge = errors.New("pep: width or height exceeds container limit (4095)")
	ErrBadPaletteSize = errors.New("pep: palette size outside 1..256, or palette_size byte and palette[0] both zero")
	ErrBadColorBits  = errors.New("pep: unsupported color_bits value")
)

// MaxDimension is the largest width or height the container's packed
// 12-bit geometry field can represent.
const MaxDimension = 0xFFF

// maxLEB128Bytes bounds the payload-length varint per spec.md §9's
// undefined-behavior note: a malformed stream must never make the reader
// scan an unbounded number of continuation bytes.
const maxLEB128Bytes = 5

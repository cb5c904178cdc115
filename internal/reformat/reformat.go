// Package reformat converts 32-bit pixel colors between the four channel
// orders PEP understands: RGBA, BGRA, ABGR, and ARGB.
package reformat

// Format tags a 32-bit color's channel order. The zero value is RGBA.
type Format uint8

const (
	RGBA Format = iota
	BGRA
	ABGR
	ARGB
)

// String returns the format's short name, the same name Parse accepts.
func (f Format) String() string {
	switch f {
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	case ABGR:
		return "ABGR"
	case ARGB:
		return "ARGB"
	default:
		return "invalid"
	}
}

// Parse maps a format name back to its Format value.
func Parse(name string) (Format, bool) {
	switch name {
	case "RGBA":
		return RGBA, true
	case "BGRA":
		return BGRA, true
	case "ABGR":
		return ABGR, true
	case "ARGB":
		return ARGB, true
	default:
		return 0, false
	}
}

// Channel identities, independent of byte position.
const (
	chanR = iota
	chanG
	chanB
	chanA
)

// order[f] gives the channel identity occupying each of the four byte
// positions (most significant byte first) for format f.
var order = [4][4]int{
	RGBA: {chanR, chanG, chanB, chanA},
	BGRA: {chanB, chanG, chanR, chanA},
	ABGR: {chanA, chanB, chanG, chanR},
	ARGB: {chanA, chanR, chanG, chanB},
}

// Reformat maps a 32-bit color from one channel order to another. It is the
// identity when from == to. The mapping is a pure byte permutation: no
// allocation, no error path.
func Reformat(c uint32, from, to Format) uint32 {
	if from == to {
		return c
	}
	bytes := [4]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)}
	var chans [4]byte
	for pos, ch := range order[from] {
		chans[ch] = bytes[pos]
	}
	var out uint32
	for pos, ch := range order[to] {
		out |= uint32(chans[ch]) << uint(8*(3-pos))
	}
	return out
}

// AlphaBytePos returns the byte offset (0 = most significant) of the alpha
// channel within a color encoded in format f. Used by transparent_first_color
// handling, which must clear only the alpha byte regardless of format.
func AlphaBytePos(f Format) int {
	for pos, ch := range order[f] {
		if ch == chanA {
			return pos
		}
	}
	return 3
}

// ClearAlpha zeroes the alpha byte of c, which is encoded in format f.
func ClearAlpha(c uint32, f Format) uint32 {
	shift := uint(8 * (3 - AlphaBytePos(f)))
	return c &^ (0xFF << shift)
}

package reformat

import "testing"

var allFormats = []Format{RGBA, BGRA, ABGR, ARGB}

func TestReformatIdentity(t *testing.T) {
	for _, f := range allFormats {
		c := uint32(0x11223344)
		if got := Reformat(c, f, f); got != c {
			t.Errorf("Reformat(%x, %s, %s) = %x, want %x", c, f, f, got, c)
		}
	}
}

// TestReformatInvolution exercises all 16 ordered (from, to) pairs and
// checks that reformatting there and back reproduces the original color.
func TestReformatInvolution(t *testing.T) {
	colors := []uint32{0x00000000, 0xFFFFFFFF, 0x01020304, 0xAABBCCDD, 0x7F000001}
	for _, a := range allFormats {
		for _, b := range allFormats {
			for _, c := range colors {
				got := Reformat(Reformat(c, a, b), b, a)
				if got != c {
					t.Errorf("Reformat(Reformat(%08x, %s, %s), %s, %s) = %08x, want %08x",
						c, a, b, b, a, got, c)
				}
			}
		}
	}
}

func TestReformatKnownPairs(t *testing.T) {
	// 0xRRGGBBAA in RGBA should become 0xBBGGRRAA in BGRA, 0xAABBGGRR in
	// ABGR, and 0xAARRGGBB in ARGB.
	rgba := uint32(0x11223344) // R=11 G=22 B=33 A=44
	tests := []struct {
		to   Format
		want uint32
	}{
		{RGBA, 0x11223344},
		{BGRA, 0x33221144},
		{ABGR, 0x44332211},
		{ARGB, 0x44112233},
	}
	for _, tt := range tests {
		if got := Reformat(rgba, RGBA, tt.to); got != tt.want {
			t.Errorf("Reformat(%08x, RGBA, %s) = %08x, want %08x", rgba, tt.to, got, tt.want)
		}
	}
}

func TestAlphaBytePos(t *testing.T) {
	tests := []struct {
		f    Format
		want int
	}{
		{RGBA, 3},
		{BGRA, 3},
		{ABGR, 0},
		{ARGB, 0},
	}
	for _, tt := range tests {
		if got := AlphaBytePos(tt.f); got != tt.want {
			t.Errorf("AlphaBytePos(%s) = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestClearAlpha(t *testing.T) {
	tests := []struct {
		f Format
		c uint32
	}{
		{RGBA, 0x112233FF},
		{BGRA, 0x112233FF},
		{ABGR, 0xFF112233},
		{ARGB, 0xFF112233},
	}
	for _, tt := range tests {
		got := ClearAlpha(tt.c, tt.f)
		pos := AlphaBytePos(tt.f)
		shift := uint(8 * (3 - pos))
		if (got>>shift)&0xFF != 0 {
			t.Errorf("ClearAlpha(%08x, %s): alpha byte not cleared, got %08x", tt.c, tt.f, got)
		}
		// All other bytes must be untouched.
		mask := uint32(0xFFFFFFFF) &^ (0xFF << shift)
		if got&mask != tt.c&mask {
			t.Errorf("ClearAlpha(%08x, %s) = %08x, changed non-alpha bytes", tt.c, tt.f, got)
		}
	}
}

func TestParse(t *testing.T) {
	for _, f := range allFormats {
		got, ok := Parse(f.String())
		if !ok || got != f {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, true)", f.String(), got, ok, f)
		}
	}
	if _, ok := Parse("XYZW"); ok {
		t.Errorf("Parse(%q) unexpectedly succeeded", "XYZW")
	}
}

package palette

import (
	"testing"

	"github.com/deepteams/pep/internal/reformat"
)

func TestBuildFirstSeenOrder(t *testing.T) {
	pixels := []uint32{0xAA, 0xBB, 0xAA, 0xCC, 0xBB, 0xAA}
	pal, indices := Build(pixels, reformat.RGBA, reformat.RGBA)
	wantPal := []uint32{0xAA, 0xBB, 0xCC}
	if len(pal) != len(wantPal) {
		t.Fatalf("palette = %v, want %v", pal, wantPal)
	}
	for i, c := range wantPal {
		if pal[i] != c {
			t.Errorf("palette[%d] = %x, want %x", i, pal[i], c)
		}
	}
	wantIdx := []byte{0, 1, 0, 2, 1, 0}
	for i, idx := range wantIdx {
		if indices[i] != idx {
			t.Errorf("indices[%d] = %d, want %d", i, indices[i], idx)
		}
	}
}

func TestBuildReconstructsPixels(t *testing.T) {
	// Palette construction must preserve enough information that expanding
	// palette[indices[i]] reproduces the original raster (spec.md §8).
	pixels := make([]uint32, 0, 64)
	for i := 0; i < 64; i++ {
		pixels = append(pixels, uint32(i%5)) // 5 distinct colors, repeating
	}
	pal, indices := Build(pixels, reformat.RGBA, reformat.RGBA)
	for i, raw := range pixels {
		got := pal[indices[i]]
		if got != raw {
			t.Fatalf("pixel %d: palette[indices[%d]] = %x, want %x", i, i, got, raw)
		}
	}
}

func TestBuildRunSkipping(t *testing.T) {
	// A long run of identical raw pixels must not be searched repeatedly;
	// functionally this should just produce one palette entry.
	pixels := make([]uint32, 1000)
	for i := range pixels {
		pixels[i] = 0x42
	}
	pal, indices := Build(pixels, reformat.RGBA, reformat.RGBA)
	if len(pal) != 1 || pal[0] != 0x42 {
		t.Fatalf("palette = %v, want [0x42]", pal)
	}
	for i, idx := range indices {
		if idx != 0 {
			t.Fatalf("indices[%d] = %d, want 0", i, idx)
		}
	}
}

func TestBuildCapsAt255(t *testing.T) {
	pixels := make([]uint32, 300)
	for i := range pixels {
		pixels[i] = uint32(i) // 300 distinct colors
	}
	pal, indices := Build(pixels, reformat.RGBA, reformat.RGBA)
	if len(pal) != 255 {
		t.Fatalf("len(palette) = %d, want 255", len(pal))
	}
	// The 256th distinct color onward (index 255 in the source, 0-based)
	// must be coerced to palette index 0.
	if indices[255] != 0 {
		t.Errorf("indices[255] = %d, want 0 (coerced)", indices[255])
	}
}

func TestBuildEmpty(t *testing.T) {
	pal, indices := Build(nil, reformat.RGBA, reformat.RGBA)
	if pal != nil || indices != nil {
		t.Errorf("Build(nil) = (%v, %v), want (nil, nil)", pal, indices)
	}
}

func TestBuildCrossFormat(t *testing.T) {
	// RGBA 0x11223344 (R=11 G=22 B=33 A=44) read in, stored as BGRA.
	pixels := []uint32{0x11223344}
	pal, _ := Build(pixels, reformat.RGBA, reformat.BGRA)
	want := uint32(0x33221144)
	if pal[0] != want {
		t.Errorf("palette[0] = %08x, want %08x", pal[0], want)
	}
}

func TestBitsPerIndex(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 4}, {16, 4}, {17, 8}, {255, 8},
	}
	for _, tt := range tests {
		if got := BitsPerIndex(tt.size); got != tt.want {
			t.Errorf("BitsPerIndex(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, bpi := range []int{1, 2, 4, 8} {
		maxIdx := byte(1<<uint(bpi) - 1)
		indices := make([]byte, 37) // deliberately not a multiple of indices-per-byte
		for i := range indices {
			indices[i] = byte(i) & maxIdx
		}
		packed := Pack(indices, bpi)
		wantBytes := (len(indices) + IndicesPerByte(bpi) - 1) / IndicesPerByte(bpi)
		if len(packed) != wantBytes {
			t.Fatalf("bpi=%d: len(packed) = %d, want %d", bpi, len(packed), wantBytes)
		}
		got := Unpack(packed, bpi, len(indices))
		for i, idx := range indices {
			if got[i] != idx {
				t.Fatalf("bpi=%d: Unpack[%d] = %d, want %d", bpi, i, got[i], idx)
			}
		}
	}
}

func TestMaxByte(t *testing.T) {
	if got := MaxByte(nil); got != 0 {
		t.Errorf("MaxByte(nil) = %d, want 0", got)
	}
	if got := MaxByte([]byte{3, 255, 1}); got != 255 {
		t.Errorf("MaxByte = %d, want 255", got)
	}
}

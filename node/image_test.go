package node

import (
	"bytes"
	"testing"
)

func TestNormalizePixelOutOfRangeIsBlack(t *testing.T) {
	cases := []int{-1, 5, 255, -100}
	for _, v := range cases {
		if got := NormalizePixel(v); got != Black {
			t.Errorf("NormalizePixel(%d) = %v, want Black", v, got)
		}
	}
	for v := int(Black); v <= int(Red); v++ {
		if got := NormalizePixel(v); got != Pixel(v) {
			t.Errorf("NormalizePixel(%d) = %v, want %v", v, got, Pixel(v))
		}
	}
}

func TestPixelValueMonotonicOutsideRed(t *testing.T) {
	// Black < DarkGrey < LightGrey < White in perceptual brightness; Red
	// sits out of that order (a saturated hue, not a grey step), matching
	// the reference engine's precomputed table.
	if !(Black.Value() < DarkGrey.Value() && DarkGrey.Value() < LightGrey.Value() && LightGrey.Value() < White.Value()) {
		t.Fatalf("grey ramp must be monotonically increasing: %d %d %d %d",
			Black.Value(), DarkGrey.Value(), LightGrey.Value(), White.Value())
	}
}

func TestPixelRGBMatchesPalette(t *testing.T) {
	r, g, b := White.RGB()
	if r != 0xFD || g != 0xFD || b != 0xFD {
		t.Fatalf("White.RGB() = (%x,%x,%x), want (fd,fd,fd)", r, g, b)
	}
	r, g, b = Black.RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("Black.RGB() = (%x,%x,%x), want (0,0,0)", r, g, b)
	}
}

func TestImageWritePNMHeaderAndBody(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(0, 0, Black)
	img.Set(1, 0, Red)

	var buf bytes.Buffer
	if err := img.WritePNM(&buf); err != nil {
		t.Fatalf("WritePNM failed: %v", err)
	}

	want := "P6 2 1 255\n" + string([]byte{0, 0, 0, 0xC1, 0x0B, 0x0B})
	if buf.String() != want {
		t.Fatalf("WritePNM output = %q, want %q", buf.String(), want)
	}
}

func TestImageEqualAndFill(t *testing.T) {
	a := NewImage(2, 2)
	b := NewImage(2, 2)
	if !a.Equal(b) {
		t.Fatalf("two freshly constructed images should be equal")
	}
	a.Set(1, 1, Red)
	if a.Equal(b) {
		t.Fatalf("images should differ after Set")
	}
	a.fill(Black)
	if !a.Equal(b) {
		t.Fatalf("images should be equal again after fill(Black)")
	}
}

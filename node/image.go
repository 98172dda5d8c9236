package node

import (
	"fmt"
	"io"
	"strings"
)

// Pixel is one of the five palette colors a TIS-100-style image output can
// draw, matching tis_pixel::color from the original engine. Values outside
// [0,4] normalize to Black (a poke with a garbage color value must not
// panic or corrupt the canvas).
type Pixel uint8

const (
	Black Pixel = iota
	DarkGrey
	LightGrey
	White
	Red
)

// paletteRGB holds the fixed RGB triple backing each palette entry, taken
// from the reference engine's screenshot-sampled color table rather than
// the game's own (darker) in-shader float constants.
var paletteRGB = [5][3]uint8{
	Black:     {0x00, 0x00, 0x00},
	DarkGrey:  {0x46, 0x46, 0x46},
	LightGrey: {0x9C, 0x9C, 0x9C},
	White:     {0xFD, 0xFD, 0xFD},
	Red:       {0xC1, 0x0B, 0x0B},
}

// paletteValue is the sRGB luminance of each palette entry, precomputed
// since the underlying pow() isn't available as a compile-time constant;
// see Value's doc comment for the formula these were derived from.
var paletteValue = [5]uint8{0, 142, 205, 254, 122}

// RGB returns p's fixed display color as an (r,g,b) byte triple.
func (p Pixel) RGB() (r, g, b uint8) {
	c := paletteRGB[NormalizePixel(int(p))]
	return c[0], c[1], c[2]
}

// Value returns p's perceptual brightness: the luminance weights
// (0.2126 R + 0.7152 G + 0.0722 B) applied directly to p's RGB bytes
// scaled to [0,1] (no linearization first), passed through the sRGB
// encoding curve, scaled by 255 and truncated (DarkGrey's 0x46 gives 142).
// WritePNM uses it nowhere
// directly (PNM is full RGB), but it's the grayscale a terminal preview
// or a brightness-based comparison would key off instead of the raw
// palette index.
func (p Pixel) Value() uint8 {
	return paletteValue[NormalizePixel(int(p))]
}

// NormalizePixel clamps an arbitrary integer color code into a valid
// Pixel, defaulting out-of-range values to Black.
func NormalizePixel(v int) Pixel {
	if v < int(Black) || v > int(Red) {
		return Black
	}
	return Pixel(v)
}

// Glyph renders p as the single character the original's text dump used,
// handy for readable test-failure diffs.
func (p Pixel) Glyph() rune {
	switch p {
	case Black:
		return ' '
	case DarkGrey:
		return '░'
	case LightGrey:
		return '▒'
	case White:
		return '█'
	case Red:
		return '#'
	default:
		return '?'
	}
}

// Image is a fixed-size grid of Pixel, row-major.
type Image struct {
	Width, Height int
	Pixels        []Pixel
}

// NewImage returns a w*h image filled with Black.
func NewImage(w, h int) Image {
	return Image{Width: w, Height: h, Pixels: make([]Pixel, w*h)}
}

func (img *Image) At(x, y int) Pixel {
	return img.Pixels[y*img.Width+x]
}

func (img *Image) Set(x, y int, p Pixel) {
	img.Pixels[y*img.Width+x] = p
}

func (img *Image) fill(p Pixel) {
	for i := range img.Pixels {
		img.Pixels[i] = p
	}
}

// WritePNM writes img as a binary PPM (P6) file: header "P6 W H 255\n"
// followed by one RGB triple per pixel, row-major, matching the
// reference engine's pnm::image<tis_pixel>::write. Callers that want a
// PNM dump of a graded run's received/expected images (spec's "optional
// image pipeline") can use this directly; nothing in the grading path
// calls it, since image validation compares Pixel values, not bytes.
func (img Image) WritePNM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P6 %d %d 255\n", img.Width, img.Height); err != nil {
		return err
	}
	buf := make([]byte, 0, len(img.Pixels)*3)
	for _, p := range img.Pixels {
		r, g, b := p.RGB()
		buf = append(buf, r, g, b)
	}
	_, err := w.Write(buf)
	return err
}

// Equal reports whether two images have matching dimensions and content.
func (img Image) Equal(o Image) bool {
	if img.Width != o.Width || img.Height != o.Height {
		return false
	}
	for i := range img.Pixels {
		if img.Pixels[i] != o.Pixels[i] {
			return false
		}
	}
	return true
}

// Text renders the image as lines of glyphs, one rune per pixel.
func (img Image) Text() string {
	var b strings.Builder
	b.Grow(img.Height * (img.Width + 1))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			b.WriteRune(img.At(x, y).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

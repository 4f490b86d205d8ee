package pixelkernel

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is one 8-bit per channel pixel.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

func Gray(v uint8) RGB {
	return RGB{v, v, v}
}

// Channel selects one component of an RGB pixel.
type Channel int

const (
	R Channel = iota
	G
	B
)

func (c Channel) String() string {
	switch c {
	case R:
		return "R"
	case G:
		return "G"
	case B:
		return "B"
	default:
		return "?"
	}
}

func (c RGB) channel(ch Channel) uint8 {
	switch ch {
	case G:
		return c.G
	case B:
		return c.B
	default:
		return c.R
	}
}

// Buffer is a width×height grid of RGB pixels stored interleaved, row-major.
// Every operation in this package returns a fresh Buffer and never aliases its input.
type Buffer struct {
	w, h int
	pix  []uint8 // len = w*h*3
}

// NewBuffer returns a black buffer of the given size.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidArg("NewBuffer", "size %dx%d must be positive", width, height)
	}
	return newBuffer(width, height), nil
}

func newBuffer(w, h int) *Buffer {
	return &Buffer{w: w, h: h, pix: make([]uint8, w*h*3)}
}

// FromImage copies img into a new Buffer. Alpha is divided out; fully
// transparent pixels become black.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, invalidArg("FromImage", "empty image bounds %v", bounds)
	}
	buf := newBuffer(w, h)
	for y := range h {
		for x := range w {
			c, _ := colorful.MakeColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			r, g, b := c.Clamped().RGB255()
			buf.set(x, y, RGB{r, g, b})
		}
	}
	return buf, nil
}

// Image renders the buffer as an opaque RGBA image, or returns nil for a nil
// or empty buffer.
func (b *Buffer) Image() *image.RGBA {
	if b.empty() {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, b.w, b.h))
	for y := range b.h {
		for x := range b.w {
			c := b.at(x, y)
			img.SetRGBA(x, y, color.RGBA{c.R, c.G, c.B, 255})
		}
	}
	return img
}

func (b *Buffer) Width() int {
	if b == nil {
		return 0
	}
	return b.w
}

func (b *Buffer) Height() int {
	if b == nil {
		return 0
	}
	return b.h
}

func (b *Buffer) empty() bool {
	return b == nil || b.w <= 0 || b.h <= 0
}

func (b *Buffer) inside(x, y int) bool {
	return b != nil && x >= 0 && x < b.w && y >= 0 && y < b.h
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) (RGB, error) {
	if !b.inside(x, y) {
		return RGB{}, outOfBounds("At", x, y, b.Width(), b.Height())
	}
	return b.at(x, y), nil
}

// Set stores c at (x, y).
func (b *Buffer) Set(x, y int, c RGB) error {
	if !b.inside(x, y) {
		return outOfBounds("Set", x, y, b.Width(), b.Height())
	}
	b.set(x, y, c)
	return nil
}

// Clone returns a deep copy, or nil for a nil buffer.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	out := &Buffer{w: b.w, h: b.h, pix: make([]uint8, len(b.pix))}
	copy(out.pix, b.pix)
	return out
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.w != o.w || b.h != o.h {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

func pixOffset(w, x, y int) int {
	return (y*w + x) * 3
}

func (b *Buffer) at(x, y int) RGB {
	off := pixOffset(b.w, x, y)
	return RGB{b.pix[off], b.pix[off+1], b.pix[off+2]}
}

func (b *Buffer) set(x, y int, c RGB) {
	off := pixOffset(b.w, x, y)
	b.pix[off] = c.R
	b.pix[off+1] = c.G
	b.pix[off+2] = c.B
}

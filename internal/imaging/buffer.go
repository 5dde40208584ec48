package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrOutOfBounds is returned by Buffer accessors for coordinates outside the
// buffer.
var ErrOutOfBounds = errors.New("coordinates outside image bounds")

// Buffer is an owned, mutable grid of RGBA pixels.
//
// The zero value is not usable; create buffers with NewBuffer, Open or Clone.
type Buffer struct {
	img *image.NRGBA
}

// NewBuffer copies img into a new Buffer. The source image is never
// referenced after the call returns, and the buffer's origin is (0,0).
func NewBuffer(img image.Image) *Buffer {
	return &Buffer{img: imaging.Clone(img)}
}

// Bounds returns the buffer's rectangle.
func (b *Buffer) Bounds() image.Rectangle {
	return b.img.Rect
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{img: imaging.Clone(b.img)}
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) (Pixel, error) {
	if !(image.Point{X: x, Y: y}.In(b.img.Rect)) {
		return Pixel{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	i := b.img.PixOffset(x, y)
	s := b.img.Pix[i : i+4 : i+4]
	return Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}, nil
}

// Set writes p at (x, y).
func (b *Buffer) Set(x, y int, p Pixel) error {
	if !(image.Point{X: x, Y: y}.In(b.img.Rect)) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	i := b.img.PixOffset(x, y)
	s := b.img.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
	return nil
}

// CountChanged returns how many pixels differ between b and other.
// Both buffers must have the same bounds.
func (b *Buffer) CountChanged(other *Buffer) (int, error) {
	if b.img.Rect != other.img.Rect {
		return 0, fmt.Errorf("buffer bounds differ: %v vs %v", b.img.Rect, other.img.Rect)
	}

	changed := 0
	for y := b.img.Rect.Min.Y; y < b.img.Rect.Max.Y; y++ {
		for x := b.img.Rect.Min.X; x < b.img.Rect.Max.X; x++ {
			i := b.img.PixOffset(x, y)
			j := other.img.PixOffset(x, y)
			p, q := b.img.Pix[i:i+4:i+4], other.img.Pix[j:j+4:j+4]
			if p[0] != q[0] || p[1] != q[1] || p[2] != q[2] || p[3] != q[3] {
				changed++
			}
		}
	}
	return changed, nil
}

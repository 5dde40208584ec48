package imaging

import (
	"errors"
	"fmt"
	"image"
)

// ErrRegionOutOfBounds is returned when a non-empty region does not fit
// inside the buffer it is applied to.
var ErrRegionOutOfBounds = errors.New("region outside image bounds")

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
//
// A region with X1 >= X2 or Y1 >= Y2 is empty and covers no pixels.
type Region struct {
	X1 int // Left edge X coordinate (inclusive)
	Y1 int // Top edge Y coordinate (inclusive)
	X2 int // Right edge X coordinate (exclusive)
	Y2 int // Bottom edge Y coordinate (exclusive)
}

// FullRegion returns the region covering all of bounds.
func FullRegion(bounds image.Rectangle) Region {
	return Region{X1: bounds.Min.X, Y1: bounds.Min.Y, X2: bounds.Max.X, Y2: bounds.Max.Y}
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool {
	return r.X1 >= r.X2 || r.Y1 >= r.Y2
}

// Overlaps reports whether r and o share at least one pixel.
func (r Region) Overlaps(o Region) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Rect().Overlaps(o.Rect())
}

// Validate checks that the region fits inside bounds. Empty regions are
// always valid since iterating them touches nothing.
func (r Region) Validate(bounds image.Rectangle) error {
	if r.Empty() {
		return nil
	}
	// Empty is checked first: image.Rect swaps inverted corners.
	if !r.Rect().In(bounds) {
		return fmt.Errorf("%w: region (%d,%d)-(%d,%d), image (%d,%d)-(%d,%d)",
			ErrRegionOutOfBounds, r.X1, r.Y1, r.X2, r.Y2,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

package recolor

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/region-recolor/internal/imaging"
)

var (
	// ErrInvalidBoost is returned when a red boost parameter is not greater than 1.0.
	ErrInvalidBoost = errors.New("boost parameter must be greater than 1.0")

	// ErrDegenerateLog is returned when a channel value plus the boost parameter
	// equals 1, making it an invalid logarithm base.
	ErrDegenerateLog = errors.New("logarithm base is 1")
)

// Transform rewrites a single pixel. It returns the pixel unchanged when its
// condition does not hold. Alpha is never modified.
type Transform func(p imaging.Pixel) (imaging.Pixel, error)

// RedIntensify returns a Transform that boosts red where red dominates green
// and blue on a logarithmic scale. Smaller boost values give a stronger
// effect; boost must be greater than 1.0.
//
// # Algorithm
//
// For each pixel (r, g, b, a):
//
//	rg = log(r+boost) / log(g+boost)
//	rb = log(r+boost) / log(b+boost)
//	c  = (rg + rb) / 2
//
// If c >= 1 and r != 0, red becomes r*c clamped to [0, 255] and truncated to
// 8 bits. Green, blue and alpha are unchanged.
//
// The transform is not idempotent: applying it twice compounds the boost.
func RedIntensify(boost float64) (Transform, error) {
	if !(boost > 1.0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBoost, boost)
	}

	return func(p imaging.Pixel) (imaging.Pixel, error) {
		baseG := float64(p.G) + boost
		baseB := float64(p.B) + boost
		if baseG == 1.0 || baseB == 1.0 {
			return p, fmt.Errorf("%w: pixel %v %s, boost %v", ErrDegenerateLog, p, p.Hex(), boost)
		}

		num := math.Log(float64(p.R) + boost)
		rg := num / math.Log(baseG)
		rb := num / math.Log(baseB)
		c := (rg + rb) / 2.0

		if c >= 1.0 && p.R != 0 {
			p.R = uint8(clamp(float64(p.R)*c, 0.0, 255.0))
		}
		return p, nil
	}, nil
}

// BlackMask replaces pixels where red exceeds green with gray at the blue level.
func BlackMask(p imaging.Pixel) (imaging.Pixel, error) {
	if p.R > p.G {
		p.R, p.G = p.B, p.B
	}
	return p, nil
}

// GreenSwap swaps red and green where red exceeds green.
func GreenSwap(p imaging.Pixel) (imaging.Pixel, error) {
	if p.R > p.G {
		p.R, p.G = p.G, p.R
	}
	return p, nil
}

// WhiteMask replaces pixels where red exceeds green with gray at the red level.
func WhiteMask(p imaging.Pixel) (imaging.Pixel, error) {
	if p.R > p.G {
		p.G, p.B = p.R, p.R
	}
	return p, nil
}

// ApplyRegion runs t over every pixel of region in buf, in place.
// Iteration is column-major: x in [X1,X2), then y in [Y1,Y2).
//
// The region is validated against the buffer first, so an out-of-range
// region fails before any pixel is written. The first Transform error aborts
// the call and leaves earlier pixels already rewritten.
func ApplyRegion(buf *imaging.Buffer, region imaging.Region, t Transform) error {
	if err := region.Validate(buf.Bounds()); err != nil {
		return err
	}

	for x := region.X1; x < region.X2; x++ {
		for y := region.Y1; y < region.Y2; y++ {
			p, err := buf.At(x, y)
			if err != nil {
				return err
			}
			q, err := t(p)
			if err != nil {
				return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			q.A = p.A
			if q != p {
				if err := buf.Set(x, y, q); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Apply runs t over the whole buffer when regions is empty, and otherwise once
// per region in order. Overlapping regions receive the transform once per
// region that covers them.
func Apply(buf *imaging.Buffer, regions []imaging.Region, t Transform) error {
	if len(regions) == 0 {
		return ApplyRegion(buf, imaging.FullRegion(buf.Bounds()), t)
	}

	for _, r := range regions {
		if err := ApplyRegion(buf, r, t); err != nil {
			return fmt.Errorf("region %v: %w", r, err)
		}
	}
	return nil
}

// clamp restricts a value to the range [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

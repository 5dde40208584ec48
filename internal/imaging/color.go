package imaging

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is one RGBA sample with 8-bit components.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
//
// Color components are stored non-premultiplied, so R, G and B keep their
// values regardless of alpha.
type Pixel struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
	A uint8 // Alpha/opacity component (0-255)
}

// Hex returns the pixel color as "#rrggbb". Alpha is excluded.
func (p Pixel) Hex() string {
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}.Hex()
}

// String formats the pixel as "(r,g,b,a)".
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", p.R, p.G, p.B, p.A)
}

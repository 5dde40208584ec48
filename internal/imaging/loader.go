package imaging

import (
	"fmt"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Open loads an image file and converts it to an RGBA Buffer.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, and GIF.
//
// Returns:
//   - *Buffer: The decoded image as non-premultiplied RGBA, regardless of the
//     file's native color model (paletted, grayscale, 16-bit, ...). 16-bit
//     channels are reduced to 8 bits.
//   - error: Non-nil if the file cannot be opened or decoded.
func Open(path string) (*Buffer, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return NewBuffer(img), nil
}

// Save encodes the buffer to path. The format is chosen from the file
// extension (".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp").
func (b *Buffer) Save(path string) error {
	if err := imaging.Save(b.img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

// OutputPath derives a sibling file name for a variant of source by inserting
// sep and name before the extension.
//
// # Example
//
//	OutputPath("img/terminator.png", "_", "red") // "img/terminator_red.png"
//	OutputPath("terminator.png", "-", "white")   // "terminator-white.png"
func OutputPath(source, sep, name string) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	// Leading dots never start an extension: ".png" and "..png" have none.
	if strings.TrimLeft(strings.TrimSuffix(base, ext), ".") == "" {
		ext = ""
	}
	return strings.TrimSuffix(source, ext) + sep + name + ext
}

// Package imaging provides the pixel buffer and file I/O used by the recolor
// pipeline.
//
// Images are held as 8-bit, non-premultiplied RGBA buffers. A Buffer owns its
// pixel data exclusively: Clone produces an independent deep copy, so the
// variants derived from one source never alias each other.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (X1,Y1) is inclusive (top-left), (X2,Y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// Buffers are not safe for concurrent mutation. The recolor pipeline gives
// each variant its own Buffer and never shares one between goroutines.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside buffer bounds (ErrOutOfBounds)
//   - Regions that do not fit inside the buffer (ErrRegionOutOfBounds)
//   - File I/O errors during loading or saving
//   - Decoding and encoding errors
package imaging

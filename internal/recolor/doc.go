// Package recolor implements region-limited per-pixel color transforms and the
// pipeline that turns one source image into four recolored variants.
//
// # Transforms
//
//   - RedIntensify: logarithmic red boost where red dominates green and blue
//   - BlackMask: gray at the blue level where red exceeds green
//   - GreenSwap: swap red and green where red exceeds green
//   - WhiteMask: gray at the red level where red exceeds green
//
// Every transform leaves alpha untouched and reads only the pixel it rewrites,
// so visiting order across pixels does not matter.
//
// # Regions
//
// Apply runs a transform over the whole image when no regions are given, and
// once per region otherwise. Regions may overlap; pixels in an overlap are
// transformed once per covering region, which compounds RedIntensify.
//
// # Variants
//
// Process writes <stem><sep>red, black, green and white next to the source.
// See Config for the boost schedule and output naming.
package recolor

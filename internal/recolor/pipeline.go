package recolor

import (
	"fmt"

	"github.com/ironsheep/region-recolor/internal/imaging"
)

// Logger is the subset of *log.Logger used by the pipeline.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Variant names, in output order.
const (
	VariantRed   = "red"
	VariantBlack = "black"
	VariantGreen = "green"
	VariantWhite = "white"
)

// Rendered is one transformed variant held in memory.
type Rendered struct {
	Name   string
	Buffer *imaging.Buffer

	// Changed counts pixels that differ from the buffer the variant was
	// cloned from.
	Changed int
}

// Output describes one written variant file.
type Output struct {
	Variant string `json:"variant"`
	Path    string `json:"path"`
	Changed int    `json:"changed_pixels"`
}

// Result summarizes a Process run.
type Result struct {
	Source  string   `json:"source"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Outputs []Output `json:"outputs"`
}

// Render produces the four variants of src without touching the filesystem.
// src itself is never modified.
//
// The red and black variants are cloned from src. When cfg.PreBoost is set,
// a working copy of src is red-intensified with it first and the green and
// white variants are cloned from that copy; otherwise they are cloned from
// src as well.
func Render(src *imaging.Buffer, cfg Config, logger Logger) ([]Rendered, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, pair := range cfg.overlaps() {
		logger.Printf("regions %v and %v overlap; transforms compound there",
			cfg.Regions[pair[0]], cfg.Regions[pair[1]])
	}

	red, err := RedIntensify(cfg.Boost)
	if err != nil {
		return nil, err
	}

	base := src
	if cfg.PreBoost != 0 {
		pre, err := RedIntensify(cfg.PreBoost)
		if err != nil {
			return nil, err
		}
		base = src.Clone()
		if err := Apply(base, cfg.Regions, pre); err != nil {
			return nil, fmt.Errorf("pre-boost: %w", err)
		}
	}

	steps := []struct {
		name   string
		origin *imaging.Buffer
		t      Transform
	}{
		{VariantRed, src, red},
		{VariantBlack, src, BlackMask},
		{VariantGreen, base, GreenSwap},
		{VariantWhite, base, WhiteMask},
	}

	rendered := make([]Rendered, 0, len(steps))
	for _, s := range steps {
		buf := s.origin.Clone()
		if err := Apply(buf, cfg.Regions, s.t); err != nil {
			return nil, fmt.Errorf("%s variant: %w", s.name, err)
		}
		changed, err := s.origin.CountChanged(buf)
		if err != nil {
			return nil, err
		}
		logSamples(logger, s.name, s.origin, buf, cfg.Regions)
		rendered = append(rendered, Rendered{Name: s.name, Buffer: buf, Changed: changed})
	}
	return rendered, nil
}

// logSamples logs the top-left pixel of each region before and after a
// variant's transform.
func logSamples(logger Logger, name string, before, after *imaging.Buffer, regions []imaging.Region) {
	if len(regions) == 0 {
		regions = []imaging.Region{imaging.FullRegion(before.Bounds())}
	}
	for _, r := range regions {
		if r.Empty() {
			continue
		}
		p, err := before.At(r.X1, r.Y1)
		if err != nil {
			continue
		}
		q, err := after.At(r.X1, r.Y1)
		if err != nil {
			continue
		}
		logger.Printf("%s variant: region %v sample (%d,%d) %s -> %s",
			name, r, r.X1, r.Y1, p.Hex(), q.Hex())
	}
}

// Process loads cfg.SourcePath, renders the four variants and saves each one
// next to the source. The first error aborts the run; files already written
// are left in place.
func Process(cfg Config, logger Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src, err := imaging.Open(cfg.SourcePath)
	if err != nil {
		return nil, err
	}
	bounds := src.Bounds()
	logger.Printf("loaded %s (%dx%d), %d region(s)", cfg.SourcePath, bounds.Dx(), bounds.Dy(), len(cfg.Regions))

	rendered, err := Render(src, cfg, logger)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Source:  cfg.SourcePath,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Outputs: make([]Output, 0, len(rendered)),
	}
	for _, r := range rendered {
		path := imaging.OutputPath(cfg.SourcePath, cfg.Separator, r.Name)
		if err := r.Buffer.Save(path); err != nil {
			return nil, err
		}
		logger.Printf("wrote %s: %d pixel(s) changed", path, r.Changed)
		result.Outputs = append(result.Outputs, Output{Variant: r.Name, Path: path, Changed: r.Changed})
	}
	return result, nil
}

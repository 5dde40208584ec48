package recolor

import (
	"fmt"
	"sort"

	"github.com/ironsheep/region-recolor/internal/imaging"
)

// DefaultSource is the image processed when no path is given.
const DefaultSource = "terminator.png"

// Region sets for the two known resolutions of the default source. Each set
// covers the eyes of the subject.
var regionSets = map[string][]imaging.Region{
	"240": {
		{X1: 60, Y1: 90, X2: 110, Y2: 125},
		{X1: 128, Y1: 90, X2: 178, Y2: 125},
	},
	"960": {
		{X1: 240, Y1: 360, X2: 440, Y2: 500},
		{X1: 512, Y1: 360, X2: 712, Y2: 500},
	},
	"full": nil,
}

// Config describes one recolor run. Treat it as immutable: the With methods
// return modified copies.
type Config struct {
	// SourcePath is the image to read. Outputs are written next to it.
	SourcePath string

	// Regions limits every transform to these rectangles. Empty means the
	// whole image.
	Regions []imaging.Region

	// Separator joins the source stem and the variant name in output file
	// names: "_" gives "terminator_red.png", "-" gives "terminator-red.png".
	Separator string

	// Boost is the RedIntensify parameter for the red output. Must be > 1.
	Boost float64

	// PreBoost, when non-zero, is applied with RedIntensify to the source
	// before the green and white variants are derived from it. The red and
	// black variants always start from the unmodified source.
	PreBoost float64
}

var presets = map[string]Config{
	"underscore": {
		Separator: "_",
		Boost:     25.0,
	},
	"hyphen": {
		Separator: "-",
		Boost:     5.0,
		PreBoost:  25.0,
	},
}

// DefaultConfig returns the "underscore" preset on DefaultSource with the
// 240px region set.
func DefaultConfig() Config {
	cfg, _ := Preset("underscore")
	return cfg
}

// Preset returns the named configuration with DefaultSource and the 240px
// region set.
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	cfg.SourcePath = DefaultSource
	cfg.Regions = cloneRegions(regionSets["240"])
	return cfg, nil
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	return sortedKeys(presets)
}

// RegionSet returns a copy of the named region set ("240", "960", "full").
func RegionSet(name string) ([]imaging.Region, error) {
	set, ok := regionSets[name]
	if !ok {
		return nil, fmt.Errorf("unknown region set %q (available: %v)", name, sortedKeys(regionSets))
	}
	return cloneRegions(set), nil
}

// WithSource returns a copy of c reading from path.
func (c Config) WithSource(path string) Config {
	c.Regions = cloneRegions(c.Regions)
	c.SourcePath = path
	return c
}

// WithRegions returns a copy of c limited to regions.
func (c Config) WithRegions(regions []imaging.Region) Config {
	c.Regions = cloneRegions(regions)
	return c
}

// Validate checks the configuration before any file is touched.
func (c Config) Validate() error {
	if c.SourcePath == "" {
		return fmt.Errorf("source path is empty")
	}
	if c.Separator == "" {
		return fmt.Errorf("output separator is empty")
	}
	if !(c.Boost > 1.0) {
		return fmt.Errorf("red boost: %w: got %v", ErrInvalidBoost, c.Boost)
	}
	if c.PreBoost != 0 && !(c.PreBoost > 1.0) {
		return fmt.Errorf("pre-boost: %w: got %v", ErrInvalidBoost, c.PreBoost)
	}
	return nil
}

// overlaps returns the index pairs of configured regions that share pixels.
func (c Config) overlaps() [][2]int {
	var pairs [][2]int
	for i := range c.Regions {
		for j := i + 1; j < len(c.Regions); j++ {
			if c.Regions[i].Overlaps(c.Regions[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

func cloneRegions(regions []imaging.Region) []imaging.Region {
	if len(regions) == 0 {
		return nil
	}
	out := make([]imaging.Region, len(regions))
	copy(out, regions)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

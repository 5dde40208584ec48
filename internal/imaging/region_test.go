package imaging

import (
	"errors"
	"image"
	"testing"
)

func TestFullRegion(t *testing.T) {
	r := FullRegion(image.Rect(0, 0, 240, 180))
	want := Region{0, 0, 240, 180}
	if r != want {
		t.Errorf("FullRegion = %v, want %v", r, want)
	}
	if r.Rect() != image.Rect(0, 0, 240, 180) {
		t.Errorf("Rect() = %v", r.Rect())
	}
}

func TestRegion_Empty(t *testing.T) {
	tests := []struct {
		region Region
		want   bool
	}{
		{Region{0, 0, 10, 10}, false},
		{Region{5, 5, 5, 10}, true},
		{Region{5, 5, 10, 5}, true},
		{Region{10, 0, 5, 10}, true},
	}
	for _, tt := range tests {
		if got := tt.region.Empty(); got != tt.want {
			t.Errorf("%v.Empty() = %v, want %v", tt.region, got, tt.want)
		}
	}
}

func TestRegion_Overlaps(t *testing.T) {
	eyeLeft := Region{60, 90, 110, 125}
	eyeRight := Region{128, 90, 178, 125}

	tests := []struct {
		name string
		a, b Region
		want bool
	}{
		{"disjoint eyes", eyeLeft, eyeRight, false},
		{"same region", eyeLeft, eyeLeft, true},
		{"touching edges", Region{0, 0, 10, 10}, Region{10, 0, 20, 10}, false},
		{"one pixel shared", Region{0, 0, 10, 10}, Region{9, 9, 20, 20}, true},
		{"contained", Region{0, 0, 100, 100}, Region{10, 10, 20, 20}, true},
		{"empty never overlaps", Region{0, 0, 100, 100}, Region{10, 10, 10, 20}, false},
		{"inverted never overlaps", Region{0, 0, 10, 10}, Region{10, 10, 0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegion_Validate(t *testing.T) {
	bounds := image.Rect(0, 0, 240, 180)

	valid := []Region{
		{0, 0, 240, 180},
		{60, 90, 110, 125},
		{239, 179, 240, 180},
		{300, 300, 300, 400}, // empty, never iterated
		{500, 500, 0, 0},     // inverted, never iterated
	}
	for _, r := range valid {
		if err := r.Validate(bounds); err != nil {
			t.Errorf("Validate(%v) unexpected error: %v", r, err)
		}
	}

	invalid := []Region{
		{-1, 0, 10, 10},
		{0, -1, 10, 10},
		{0, 0, 241, 10},
		{0, 0, 10, 181},
		{240, 360, 440, 500},
	}
	for _, r := range invalid {
		if err := r.Validate(bounds); !errors.Is(err, ErrRegionOutOfBounds) {
			t.Errorf("Validate(%v) = %v, want ErrRegionOutOfBounds", r, err)
		}
	}
}

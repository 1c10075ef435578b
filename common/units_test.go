package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestUnitConversionRoundTrip(t *testing.T) {
	cases := []cp.Vector{
		{X: 0, Y: 0},
		{X: 16, Y: 32},
		{X: 3.5, Y: -7.25},
		{X: 1234.567, Y: 0.001},
	}
	for _, v := range cases {
		back := ToPixels(ToMapUnits(v))
		if !near(back.X, v.X) || !near(back.Y, v.Y) {
			t.Errorf("raw round trip %v -> %v", v, back)
		}
		again := ToMapUnits(ToPixels(v))
		if !near(again.X, v.X) || !near(again.Y, v.Y) {
			t.Errorf("unit round trip %v -> %v", v, again)
		}
	}
}

func TestToPixelsScale(t *testing.T) {
	got := ToPixels(cp.Vector{X: 1, Y: 2})
	if got.X != 16 || got.Y != 32 {
		t.Fatalf("expected (16,32), got %v", got)
	}

	unchanged := ToPixelsScaled(cp.Vector{X: 3, Y: 4}, 0)
	if unchanged.X != 3 || unchanged.Y != 4 {
		t.Fatalf("zero scale should leave position untouched, got %v", unchanged)
	}
}

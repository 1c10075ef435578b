package common

import "github.com/jakecoffman/cp"

// ToMapUnits converts a raw pixel position to map units.
func ToMapUnits(raw cp.Vector) cp.Vector {
	return raw.Mult(UnitScale)
}

// ToPixels converts a map unit position to raw pixels. A non-positive scale
// leaves the position untouched.
func ToPixels(units cp.Vector) cp.Vector {
	return ToPixelsScaled(units, UnitScale)
}

// ToPixelsScaled converts using an explicit unit scale.
func ToPixelsScaled(units cp.Vector, scale float64) cp.Vector {
	if scale <= 0 {
		return units
	}
	return cp.Vector{X: units.X / scale, Y: units.Y / scale}
}

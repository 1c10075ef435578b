package common

const (
	// BaseWidth and BaseHeight are the launcher's default window size.
	BaseWidth  = 800
	BaseHeight = 600

	// TileSize is the pixel size of one map unit.
	TileSize = 16

	// UnitScale converts raw pixels to map units (16 pixels = 1 unit).
	UnitScale = 1.0 / TileSize
)

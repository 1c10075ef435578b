package levels

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
	"github.com/milk9111/bludbourne/common"
)

// Named object layers a map may carry. Every one of them is optional.
const (
	CollisionLayer = "MAP_COLLISION_LAYER"
	SpawnsLayer    = "MAP_SPAWNS_LAYER"
	PortalLayer    = "MAP_PORTAL_LAYER"

	// PlayerStart names spawn markers on the spawns layer.
	PlayerStart = "PLAYER_START"
)

// LoadFromFS parses a TMX map. Tilesets are resolved relative to the map's
// directory inside fsys.
func LoadFromFS(fsys fs.FS, name string) (*tiled.Map, error) {
	m, err := tiled.LoadFile(path.Clean(name), tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return m, nil
}

// Loader adapts LoadFromFS to the asset manager's loader signature.
func Loader(fsys fs.FS, name string) (any, error) {
	return LoadFromFS(fsys, name)
}

// ObjectLayer returns the object group called name, or nil.
func ObjectLayer(m *tiled.Map, name string) *tiled.ObjectGroup {
	if m == nil {
		return nil
	}
	for _, og := range m.ObjectGroups {
		if og != nil && og.Name == name {
			return og
		}
	}
	return nil
}

// IsRect reports whether o is a plain rectangle object (not an ellipse,
// polygon, polyline or tile object).
func IsRect(o *tiled.Object) bool {
	if o == nil {
		return false
	}
	return o.Ellipse == nil && len(o.Polygons) == 0 && len(o.PolyLines) == 0 && o.GID == 0
}

// Rect returns o's rectangle in raw pixels.
func Rect(o *tiled.Object) common.Rect {
	return common.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Rects returns every rectangle object on layer, in layer order.
func Rects(layer *tiled.ObjectGroup) []common.Rect {
	if layer == nil {
		return nil
	}
	out := make([]common.Rect, 0, len(layer.Objects))
	for _, o := range layer.Objects {
		if IsRect(o) {
			out = append(out, Rect(o))
		}
	}
	return out
}

// PixelSize returns the map's dimensions in raw pixels.
func PixelSize(m *tiled.Map) (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.Width * m.TileWidth, m.Height * m.TileHeight
}

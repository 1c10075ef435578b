package levels

import (
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Render rasterises the visible tile layers of m into a single image at raw
// pixel scale.
func Render(fsys fs.FS, m *tiled.Map) (*ebiten.Image, error) {
	if m == nil {
		return nil, fmt.Errorf("levels: render: nil map")
	}
	r, err := render.NewRendererWithFileSystem(m, fsys)
	if err != nil {
		return nil, fmt.Errorf("levels: renderer: %w", err)
	}
	if err := r.RenderVisibleLayers(); err != nil {
		return nil, fmt.Errorf("levels: render layers: %w", err)
	}
	return ebiten.NewImageFromImage(r.Result), nil
}

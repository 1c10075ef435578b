package screen

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bludbourne/assets"
	"github.com/milk9111/bludbourne/config"
	"github.com/milk9111/bludbourne/obj"
	"github.com/milk9111/bludbourne/prefabs"
)

// Screen is one full-window state of the game. The driver calls Show once
// before the first Update, then Update/Draw every tick until Hide.
type Screen interface {
	Show() error
	Update(dt float64) error
	Draw(dst *ebiten.Image)
	Resize(width, height int)
	Pause()
	Resume()
	Hide()
	Dispose()
}

// Context carries the services shared by screens. It is owned by the game
// driver.
type Context struct {
	Config *config.Config
	Assets *assets.Manager
	Maps   *obj.MapManager
	Player *prefabs.PlayerSpec
	Logger *slog.Logger

	// Input defaults to the keyboard and first gamepad.
	Input obj.DirectionSource

	// ShowOverlay draws FPS and state text; ShowHitboxes outlines boxes.
	ShowOverlay  bool
	ShowHitboxes bool
}

func (c *Context) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

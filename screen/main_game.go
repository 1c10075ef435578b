package screen

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bludbourne/common"
	"github.com/milk9111/bludbourne/levels"
	"github.com/milk9111/bludbourne/obj"
	"github.com/milk9111/bludbourne/prefabs"
	"golang.org/x/image/colornames"
)

var defaultHitboxColor = color.NRGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xc0}

// MainGameScreen walks the player around the active map, rejecting moves into
// the collision layer and switching maps through the portal layer.
type MainGameScreen struct {
	ctx *Context

	player     *obj.Entity
	controller *obj.PlayerController
	camera     *obj.Camera
	transition *obj.Transition

	// portalsArmed is false from the tick a portal fires until the player's
	// current box is clear of every portal.
	portalsArmed bool
	paused       bool

	mapImage *ebiten.Image
	mapDirty bool

	log *slog.Logger
}

func NewMainGameScreen(ctx *Context) *MainGameScreen {
	return &MainGameScreen{
		ctx:          ctx,
		portalsArmed: true,
		log:          ctx.logger().With("component", "MainGameScreen"),
	}
}

// Show builds the player and places it on the current map's spawn.
func (s *MainGameScreen) Show() error {
	if s.ctx.Player == nil {
		return errors.New("screen: show: no player spec")
	}
	if s.ctx.Maps == nil || s.ctx.Assets == nil {
		return errors.New("screen: show: missing map or asset manager")
	}

	cfg := s.ctx.Config
	s.camera = obj.NewCamera(cfg.Window.Width, cfg.Window.Height, cfg.Camera.ViewportWidth, cfg.Camera.ViewportHeight)
	s.transition = obj.NewTransition(cfg.Transition.FadeFrames)

	s.player = obj.NewEntity(s.ctx.Player, s.ctx.Assets, s.ctx.logger())
	s.controller = obj.NewPlayerController(s.player, s.ctx.Input)

	if s.ctx.Maps.CurrentMap() == nil {
		s.log.Debug("no map loaded; the world is empty")
	}
	s.player.Init(s.ctx.Maps.PlayerStartUnitScaled())
	s.bindMap()

	s.log.Info("main game screen shown", "map", s.ctx.Maps.CurrentMapName())
	return nil
}

// Update runs one tick: camera follow, move prediction, portal test on the
// committed box, then collision test on the predicted box.
func (s *MainGameScreen) Update(dt float64) error {
	if s.paused || s.player == nil {
		return nil
	}

	s.updateCamera()

	s.controller.Update(dt)
	s.player.Update(dt)

	if !s.updatePortalLayerActivation() {
		if !s.isCollisionWithMapLayer(s.player.BoundingBox()) {
			s.player.SetNextPositionToCurrent()
		}
	}

	s.transition.Update()
	return nil
}

func (s *MainGameScreen) updateCamera() {
	x, y := s.playerCenter()
	s.camera.Update(x, y)
}

// playerCenter returns the center of the player's frame in raw pixels.
func (s *MainGameScreen) playerCenter() (float64, float64) {
	pos := common.ToPixels(s.player.SpritePosition())
	w, h := s.player.FrameSize()
	return pos.X + w/2, pos.Y + h/2
}

// isCollisionWithMapLayer reports whether box overlaps any rectangle on the
// collision layer.
func (s *MainGameScreen) isCollisionWithMapLayer(box common.Rect) bool {
	layer := s.ctx.Maps.CollisionLayer()
	if layer == nil {
		return false
	}
	for _, o := range layer.Objects {
		if levels.IsRect(o) && box.Intersects(levels.Rect(o)) {
			return true
		}
	}
	return false
}

// updatePortalLayerActivation switches maps when the player's committed box
// overlaps a portal. Only the first overlapping portal counts. It returns
// true when the map changed.
func (s *MainGameScreen) updatePortalLayerActivation() bool {
	layer := s.ctx.Maps.PortalLayer()
	if layer == nil {
		s.portalsArmed = true
		return false
	}

	box := s.player.CurrentBoundingBox()
	for _, o := range layer.Objects {
		if !levels.IsRect(o) || !box.Intersects(levels.Rect(o)) {
			continue
		}
		if !s.portalsArmed {
			return false
		}
		s.portalsArmed = false
		return s.enterPortal(o.Name)
	}

	s.portalsArmed = true
	return false
}

func (s *MainGameScreen) enterPortal(destination string) bool {
	if destination == "" {
		s.log.Debug("portal has no destination", "map", s.ctx.Maps.CurrentMapName())
		return false
	}

	source := s.ctx.Maps.CurrentMapName()
	s.ctx.Maps.SetClosestStartPositionFromScaledUnits(s.player.CurrentPosition())

	if err := s.ctx.Maps.LoadMap(destination); err != nil {
		s.log.Debug("portal destination unavailable", "from", source, "to", destination, "error", err)
		return false
	}

	s.player.Init(s.ctx.Maps.PlayerStartUnitScaled())
	s.bindMap()
	s.transition.Start(destination)
	s.log.Info("map changed", "from", source, "to", destination)
	return true
}

// bindMap points the camera and renderer at the active map.
func (s *MainGameScreen) bindMap() {
	w, h := levels.PixelSize(s.ctx.Maps.CurrentMap())
	s.camera.SetWorldBounds(w, h)
	s.camera.Update(s.playerCenter())
	s.mapDirty = true
}

// HandleFileChange reacts to an edited asset while running with -watch.
// A changed map or tileset reloads the active map in place; a changed prefab
// reapplies the player's tuning.
func (s *MainGameScreen) HandleFileChange(path string) {
	if s.player == nil {
		return
	}
	switch {
	case prefabs.IsMapFile(path):
		if filepath.Ext(path) == ".tmx" && filepath.Base(path) != filepath.Base(s.ctx.Maps.CurrentMapPath()) {
			return
		}
		pos := s.player.CurrentPosition()
		if err := s.ctx.Maps.ReloadCurrent(); err != nil {
			s.log.Debug("map reload failed", "path", path, "error", err)
			return
		}
		s.player.Init(pos)
		s.bindMap()
		s.log.Info("map reloaded", "map", s.ctx.Maps.CurrentMapName())
	case filepath.Base(path) == prefabs.PlayerFile:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			s.log.Debug("player spec reload failed", "error", err)
			return
		}
		s.ctx.Player = spec
		s.player.SetVelocity(cp.Vector{X: spec.Velocity.X, Y: spec.Velocity.Y})
		s.player.SetBoundingBoxSize(spec.Hitbox.WidthReduction, spec.Hitbox.HeightReduction)
		s.log.Info("player spec reloaded")
	}
}

func (s *MainGameScreen) Draw(dst *ebiten.Image) {
	dst.Fill(colornames.Black)
	if s.player == nil {
		return
	}

	if s.mapDirty {
		s.renderMap()
	}

	zoom := s.camera.Zoom()
	left, top := s.camera.ViewTopLeft()

	if s.mapImage != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-left, -top)
		op.GeoM.Scale(zoom, zoom)
		dst.DrawImage(s.mapImage, op)
	}

	if frame := s.player.Frame(); frame != nil {
		pos := common.ToPixels(s.player.SpritePosition())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X-left, pos.Y-top)
		op.GeoM.Scale(zoom, zoom)
		dst.DrawImage(frame, op)
	}

	if s.ctx.ShowHitboxes {
		s.drawHitboxes(dst)
	}
	if s.ctx.ShowOverlay {
		ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.2f  map: %s  state: %s  dir: %s",
			ebiten.ActualFPS(), s.ctx.Maps.CurrentMapName(), s.player.State(), s.player.Direction()))
	}

	s.transition.Draw(dst)
}

func (s *MainGameScreen) renderMap() {
	s.mapDirty = false
	if s.mapImage != nil {
		s.mapImage.Deallocate()
		s.mapImage = nil
	}
	m := s.ctx.Maps.CurrentMap()
	if m == nil {
		return
	}
	img, err := levels.Render(s.ctx.Assets.FS(), m)
	if err != nil {
		s.log.Debug("map render failed", "map", s.ctx.Maps.CurrentMapName(), "error", err)
		return
	}
	s.mapImage = img
}

func (s *MainGameScreen) drawHitboxes(dst *ebiten.Image) {
	var clr color.Color = defaultHitboxColor
	if s.ctx.Player.Hitbox.DebugColor.Color != nil {
		clr = s.ctx.Player.Hitbox.DebugColor.Color
	}

	stroke := func(r common.Rect, c color.Color) {
		x, y := s.camera.WorldToScreen(r.X, r.Y)
		zoom := s.camera.Zoom()
		vector.StrokeRect(dst, float32(x), float32(y), float32(r.Width*zoom), float32(r.Height*zoom), 1, c, false)
	}

	for _, r := range levels.Rects(s.ctx.Maps.CollisionLayer()) {
		stroke(r, colornames.Yellow)
	}
	for _, r := range levels.Rects(s.ctx.Maps.PortalLayer()) {
		stroke(r, colornames.Cyan)
	}
	stroke(s.player.CurrentBoundingBox(), clr)
}

func (s *MainGameScreen) Resize(width, height int) {
	if s.camera == nil {
		return
	}
	s.camera.SetupViewport(width, height)
	if s.player != nil {
		s.camera.Update(s.playerCenter())
	}
}

func (s *MainGameScreen) Pause() {
	s.paused = true
	s.log.Debug("paused")
}

func (s *MainGameScreen) Resume() {
	s.paused = false
	s.log.Debug("resumed")
}

func (s *MainGameScreen) Paused() bool { return s.paused }

func (s *MainGameScreen) Hide() {
	s.log.Debug("hidden")
}

// Dispose unloads the player's sprite sheet and the active map.
func (s *MainGameScreen) Dispose() {
	if s.player != nil {
		s.player.Dispose()
	}
	s.ctx.Maps.Dispose()
	if s.mapImage != nil {
		s.mapImage.Deallocate()
		s.mapImage = nil
	}
	if s.transition != nil {
		s.transition.Dispose()
	}
}

// Player exposes the entity for the driver and tests.
func (s *MainGameScreen) Player() *obj.Entity { return s.player }

package obj

import (
	"math"

	"github.com/milk9111/bludbourne/common"
)

// Camera centers the view on a world coordinate (raw pixels) and scales the
// world by Zoom. The viewport is sized in map units and letterboxed to the
// window's aspect ratio.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int

	// viewport size in map units
	viewportW float64
	viewportH float64
	// virtual size requested by configuration, in map units
	virtualW float64
	virtualH float64

	zoom float64

	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera for a window of screenW x screenH pixels that
// shows roughly viewportW x viewportH map units.
func NewCamera(screenW, screenH int, viewportW, viewportH float64) *Camera {
	c := &Camera{virtualW: viewportW, virtualH: viewportH}
	c.SetupViewport(screenW, screenH)
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetupViewport fits the virtual viewport to the window. The shorter relative
// axis keeps its virtual size and the other axis grows to match the window's
// aspect ratio.
func (c *Camera) SetupViewport(screenW, screenH int) {
	if screenW <= 0 || screenH <= 0 || c.virtualW <= 0 || c.virtualH <= 0 {
		return
	}
	c.screenW = screenW
	c.screenH = screenH

	physW := float64(screenW)
	physH := float64(screenH)
	aspect := c.virtualW / c.virtualH
	physAspect := physW / physH

	if physAspect >= aspect {
		c.viewportW = c.virtualH * physAspect
		c.viewportH = c.virtualH
	} else {
		c.viewportW = c.virtualW
		c.viewportH = c.virtualW / physAspect
	}

	c.zoom = physW / (c.viewportW * common.TileSize)
}

// ViewportSize returns the visible area in map units.
func (c *Camera) ViewportSize() (float64, float64) {
	return c.viewportW, c.viewportH
}

// ScreenSize returns the window size the viewport was fitted to.
func (c *Camera) ScreenSize() (int, int) {
	return c.screenW, c.screenH
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// Zoom returns screen pixels per world pixel.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// WorldToScreen maps a world pixel coordinate to window pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	left, top := c.ViewTopLeft()
	return (x - left) * c.zoom, (y - top) * c.zoom
}

// Update locks the camera onto the target world coordinate.
func (c *Camera) Update(targetX, targetY float64) {
	c.PosX = targetX
	c.PosY = targetY
	c.settle()
}

// settle snaps the position to the 1/zoom grid so source texels land on whole
// screen pixels, then clamps it to the world bounds.
func (c *Camera) settle() {
	if c.zoom == 0 {
		return
	}
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom

	halfW := float64(c.screenW) / c.zoom / 2.0
	halfH := float64(c.screenH) / c.zoom / 2.0
	c.PosX = clampAxis(c.PosX, halfW, c.worldW)
	c.PosY = clampAxis(c.PosY, halfH, c.worldH)
}

// clampAxis keeps a half-view of size half inside [0, world]. A world smaller
// than the view is centered.
func clampAxis(pos, half, world float64) float64 {
	if world <= 0 {
		return pos
	}
	lo, hi := half, world-half
	if hi < lo {
		return world / 2.0
	}
	return common.Clamp(pos, lo, hi)
}

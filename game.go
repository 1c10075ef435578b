package main

import (
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bludbourne/prefabs"
	"github.com/milk9111/bludbourne/screen"
)

// fileChangeHandler is implemented by screens that support hot reload.
type fileChangeHandler interface {
	HandleFileChange(path string)
}

type Game struct {
	ctx    *screen.Context
	screen screen.Screen

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	watcher *prefabs.Watcher

	width  int
	height int

	log *slog.Logger
}

func NewGame(ctx *screen.Context, watcher *prefabs.Watcher) *Game {
	g := &Game{
		ctx:     ctx,
		watcher: watcher,
		width:   ctx.Config.Window.Width,
		height:  ctx.Config.Window.Height,
		log:     ctx.Logger.With("component", "Game"),
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// SetScreen hides the current screen and shows s in its place.
func (g *Game) SetScreen(s screen.Screen) error {
	if g.screen != nil {
		g.screen.Hide()
	}
	if err := s.Show(); err != nil {
		return err
	}
	s.Resize(g.width, g.height)
	g.screen = s
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if !ebiten.IsFocused() && !g.paused {
		g.setPaused(true)
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.screen == nil {
		return nil
	}
	return g.screen.Update(1.0 / float64(ebiten.TPS()))
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if g.screen == nil {
		return
	}
	if paused {
		g.screen.Pause()
	} else {
		g.screen.Resume()
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	handler, ok := g.screen.(fileChangeHandler)
	for _, path := range g.watcher.Drain() {
		g.log.Debug("file changed", "path", path)
		if ok {
			handler.HandleFileChange(path)
		}
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.Warn("watcher error", "error", err)
	default:
	}
}

func (g *Game) Draw(dst *ebiten.Image) {
	if g.screen != nil {
		g.screen.Draw(dst)
	}
	if g.paused {
		g.pauseUI.Draw(dst)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		if g.screen != nil {
			g.screen.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// Dispose releases the screen and every cached asset.
func (g *Game) Dispose() {
	if g.screen != nil {
		g.screen.Hide()
		g.screen.Dispose()
		g.screen = nil
	}
	g.ctx.Assets.Clear()
	g.log.Info("game disposed")
}

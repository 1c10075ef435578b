package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bludbourne/common"
	"golang.org/x/image/colornames"
)

// Transition fades the screen in from black after a map change. It is purely
// visual; the world keeps updating while it runs.
type Transition struct {
	Active   bool
	Frames   int
	Duration int
	Target   string

	overlay *ebiten.Image
}

func NewTransition(duration int) *Transition {
	if duration < 1 {
		duration = 1
	}
	return &Transition{Duration: duration}
}

// Start begins a fade into target. A running fade restarts from black.
func (t *Transition) Start(target string) {
	t.Active = true
	t.Frames = 0
	t.Target = target
}

// Update advances the fade by one tick.
func (t *Transition) Update() {
	if !t.Active {
		return
	}
	t.Frames++
	if t.Frames >= t.Duration {
		t.Active = false
		t.Frames = 0
		t.Target = ""
	}
}

// Alpha returns the overlay opacity, 1 at the start of the fade and 0 once
// it has finished.
func (t *Transition) Alpha() float64 {
	if !t.Active {
		return 0
	}
	progress := common.Clamp(float64(t.Frames)/float64(t.Duration), 0, 1)
	return common.Lerp(1, 0, progress)
}

// Draw draws the fade overlay onto the provided screen.
func (t *Transition) Draw(screen *ebiten.Image) {
	alpha := t.Alpha()
	if alpha <= 0 {
		return
	}
	if t.overlay == nil {
		t.overlay = ebiten.NewImage(1, 1)
		t.overlay.Fill(colornames.Black)
	}

	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(t.overlay, op)
}

// Dispose releases the overlay image.
func (t *Transition) Dispose() {
	if t.overlay != nil {
		t.overlay.Deallocate()
		t.overlay = nil
	}
}

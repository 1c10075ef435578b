package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation is a clip of equally timed frames cut from a sprite sheet.
// Frames are laid out left-to-right, top-to-bottom. The clip holds no clock
// of its own: callers sample it with a running state time.
type Animation struct {
	Sheet         *ebiten.Image
	FrameW        int
	FrameH        int
	FrameCount    int
	Cols          int
	FrameDuration float64
	Loop          bool

	startIndex int
	frames     []*ebiten.Image
}

// NewAnimationRow creates a clip that starts at the given row (0-based) and
// reads frameCount frames left-to-right. A nil sheet yields a clip with
// timing but no images.
func NewAnimationRow(sheet *ebiten.Image, frameW, frameH, row, frameCount int, frameDuration float64, loop bool) *Animation {
	a := &Animation{
		Sheet:         sheet,
		FrameW:        frameW,
		FrameH:        frameH,
		FrameCount:    frameCount,
		FrameDuration: frameDuration,
		Loop:          loop,
	}
	if sheet == nil || frameW <= 0 || frameH <= 0 {
		return a
	}
	bounds := sheet.Bounds()
	a.Cols = bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	if a.Cols <= 0 || rows <= 0 {
		return a
	}
	if row < 0 {
		row = 0
	}
	a.startIndex = row * a.Cols
	maxFrames := a.Cols*rows - a.startIndex
	if a.FrameCount <= 0 || a.FrameCount > maxFrames {
		a.FrameCount = maxFrames
	}
	a.buildFrames()
	return a
}

// buildFrames slices the sheet into individual frames starting at
// a.startIndex.
func (a *Animation) buildFrames() {
	if a == nil || a.Sheet == nil || a.FrameCount <= 0 {
		return
	}
	a.frames = make([]*ebiten.Image, a.FrameCount)
	for i := 0; i < a.FrameCount; i++ {
		idx := a.startIndex + i
		col := idx % a.Cols
		row := idx / a.Cols
		sx := col * a.FrameW
		sy := row * a.FrameH
		r := image.Rect(sx, sy, sx+a.FrameW, sy+a.FrameH)
		a.frames[i] = a.Sheet.SubImage(r).(*ebiten.Image)
	}
}

// KeyFrameIndex returns the frame shown at stateTime seconds.
func (a *Animation) KeyFrameIndex(stateTime float64) int {
	if a == nil || a.FrameCount <= 1 || a.FrameDuration <= 0 {
		return 0
	}
	n := int(stateTime / a.FrameDuration)
	if n < 0 {
		n = 0
	}
	if a.Loop {
		return n % a.FrameCount
	}
	if n >= a.FrameCount {
		return a.FrameCount - 1
	}
	return n
}

// KeyFrame returns the image shown at stateTime seconds, or nil when the clip
// has no images.
func (a *Animation) KeyFrame(stateTime float64) *ebiten.Image {
	return a.Frame(a.KeyFrameIndex(stateTime))
}

// Frame returns frame i, or nil.
func (a *Animation) Frame(i int) *ebiten.Image {
	if a == nil || i < 0 || i >= len(a.frames) {
		return nil
	}
	return a.frames[i]
}

// Duration returns the length of one pass through the clip.
func (a *Animation) Duration() float64 {
	if a == nil {
		return 0
	}
	return float64(a.FrameCount) * a.FrameDuration
}

// Size returns the frame width/height.
func (a *Animation) Size() (int, int) { return a.FrameW, a.FrameH }

package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// stickDeadZone is the left stick deflection below which the stick is ignored.
const stickDeadZone = 0.3

// DirectionSource reports the direction the player is asking to walk.
type DirectionSource interface {
	// Direction returns the requested direction and whether any movement
	// input is active.
	Direction() (Direction, bool)
}

// KeyboardInput reads arrows/WASD and the first gamepad's left stick. When
// several directions are held, left wins over right, right over up, and up
// over down.
type KeyboardInput struct{}

func (KeyboardInput) Direction() (Direction, bool) {
	left := ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	up := ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	down := ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS)

	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]
		sx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sy := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || sx < -stickDeadZone
		right = right || sx > stickDeadZone
		up = up || sy < -stickDeadZone
		down = down || sy > stickDeadZone
	}

	return pickDirection(left, right, up, down)
}

func pickDirection(left, right, up, down bool) (Direction, bool) {
	switch {
	case left:
		return DirLeft, true
	case right:
		return DirRight, true
	case up:
		return DirUp, true
	case down:
		return DirDown, true
	default:
		return DirDown, false
	}
}

// PlayerController turns input into a predicted move for the entity. It never
// commits the move; the caller does after the collision test.
type PlayerController struct {
	entity *Entity
	input  DirectionSource
}

func NewPlayerController(entity *Entity, input DirectionSource) *PlayerController {
	if input == nil {
		input = KeyboardInput{}
	}
	return &PlayerController{entity: entity, input: input}
}

// Update sets the entity walking toward the requested direction, or idle when
// there is no input.
func (pc *PlayerController) Update(dt float64) {
	dir, active := pc.input.Direction()
	if !active {
		pc.entity.SetState(StateIdle)
		return
	}
	pc.entity.SetState(StateWalking)
	pc.entity.SetDirection(dir, dt)
	pc.entity.CalculateNextPosition(dir, dt)
}

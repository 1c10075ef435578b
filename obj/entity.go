package obj

import (
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bludbourne/assets"
	"github.com/milk9111/bludbourne/common"
	"github.com/milk9111/bludbourne/component"
	"github.com/milk9111/bludbourne/prefabs"
)

// Direction is one of the four compass directions an entity can face.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// State is the entity's animation state.
type State int

const (
	StateIdle State = iota
	StateWalking
)

func (s State) String() string {
	if s == StateWalking {
		return "walking"
	}
	return "idle"
}

// frameTimeWrap bounds the animation clock.
const frameTimeWrap = 5.0

// Entity is the player character. Positions are kept in map units; the
// bounding box is in raw pixels so it can be tested against map objects.
type Entity struct {
	id       string
	velocity cp.Vector

	currentDirection  Direction
	previousDirection Direction
	state             State
	frameTime         float64

	// nextPosition is where the entity will be if the pending move is committed.
	nextPosition    cp.Vector
	currentPosition cp.Vector
	// spritePosition is where the frame is drawn, in map units.
	spritePosition cp.Vector

	walk         [4]*component.Animation
	currentFrame *ebiten.Image
	frameIndex   int

	frameW, frameH  float64
	widthReduction  float64
	heightReduction float64
	boundingBox     common.Rect

	spritePath string
	assets     *assets.Manager
	log        *slog.Logger
}

// NewEntity builds the player from spec, loading its sprite sheet through am.
// A sheet that fails to load leaves the entity without images; movement and
// collision still work.
func NewEntity(spec *prefabs.PlayerSpec, am *assets.Manager, logger *slog.Logger) *Entity {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Entity{
		id:                uuid.NewString(),
		velocity:          cp.Vector{X: spec.Velocity.X, Y: spec.Velocity.Y},
		currentDirection:  DirLeft,
		previousDirection: DirUp,
		state:             StateIdle,
		frameW:            float64(spec.Sprite.FrameW),
		frameH:            float64(spec.Sprite.FrameH),
		widthReduction:    spec.Hitbox.WidthReduction,
		heightReduction:   spec.Hitbox.HeightReduction,
		spritePath:        spec.Sprite.Image,
		assets:            am,
		log:               logger.With("component", "Entity"),
	}

	am.Load(e.spritePath, assets.KindTexture)
	sheet, ok := assets.Get[*ebiten.Image](am, e.spritePath)
	if !ok {
		e.log.Debug("sprite sheet unavailable", "path", e.spritePath)
	}
	e.loadAnimations(sheet, spec)
	e.selectFrame(0)
	return e
}

func (e *Entity) loadAnimations(sheet *ebiten.Image, spec *prefabs.PlayerSpec) {
	dirs := map[string]Direction{"down": DirDown, "left": DirLeft, "right": DirRight, "up": DirUp}
	for name, dir := range dirs {
		def := spec.Animation.Walk[name]
		e.walk[dir] = component.NewAnimationRow(
			sheet,
			spec.Sprite.FrameW,
			spec.Sprite.FrameH,
			def.Row,
			def.FrameCount,
			spec.Animation.FrameDuration,
			spec.Animation.Loop,
		)
	}
}

// ID returns the entity's unique id.
func (e *Entity) ID() string { return e.id }

// Init places the entity at start, in map units, with no pending move.
func (e *Entity) Init(start cp.Vector) {
	e.log.Debug("player init", "x", start.X, "y", start.Y)
	e.currentPosition = start
	e.nextPosition = start
	e.spritePosition = start
}

// Update advances the animation clock and rebuilds the bounding box around
// the predicted position.
func (e *Entity) Update(dt float64) {
	e.frameTime = math.Mod(e.frameTime+dt, frameTimeWrap)
	e.SetBoundingBoxSize(e.widthReduction, e.heightReduction)
}

// SetBoundingBoxSize rebuilds the bounding box from the next position,
// shrinking the frame by the given fractions. A fraction outside (0,1)
// keeps the full frame dimension. The box is anchored to the bottom of the
// frame.
func (e *Entity) SetBoundingBoxSize(widthReduced, heightReduced float64) {
	e.widthReduction = widthReduced
	e.heightReduction = heightReduced
	e.boundingBox = e.boxAt(e.nextPosition)
	if e.boundingBox.Width == 0 || e.boundingBox.Height == 0 {
		e.log.Debug("bounding box is empty", "width", e.boundingBox.Width, "height", e.boundingBox.Height)
	}
}

func (e *Entity) boxAt(pos cp.Vector) common.Rect {
	width := reducedSize(e.frameW, e.widthReduction)
	height := reducedSize(e.frameH, e.heightReduction)
	raw := common.ToPixels(pos)
	return common.Rect{
		X:      raw.X,
		Y:      raw.Y + e.frameH - height,
		Width:  width,
		Height: height,
	}
}

func reducedSize(full, fraction float64) float64 {
	keep := 1.0 - fraction
	if keep > 0 && keep < 1 {
		return full * keep
	}
	return full
}

// BoundingBox returns the box computed by the last Update, placed at the
// predicted position.
func (e *Entity) BoundingBox() common.Rect { return e.boundingBox }

// CurrentBoundingBox returns the same box placed at the committed position.
func (e *Entity) CurrentBoundingBox() common.Rect { return e.boxAt(e.currentPosition) }

// CalculateNextPosition predicts where a move in direction over dt seconds
// would land. The current position is not changed.
func (e *Entity) CalculateNextPosition(direction Direction, dt float64) {
	step := e.velocity.Mult(dt)
	next := e.currentPosition

	switch direction {
	case DirLeft:
		next.X -= step.X
	case DirRight:
		next.X += step.X
	case DirUp:
		next.Y -= step.Y
	case DirDown:
		next.Y += step.Y
	}

	e.nextPosition = next
}

// SetNextPositionToCurrent commits the predicted position.
func (e *Entity) SetNextPositionToCurrent() {
	e.SetCurrentPosition(e.nextPosition)
}

// SetCurrentPosition moves the entity and its sprite to pos, in map units.
func (e *Entity) SetCurrentPosition(pos cp.Vector) {
	e.spritePosition = pos
	e.currentPosition = pos
}

// SetDirection faces the entity toward direction and picks the walking frame
// for the current animation time.
func (e *Entity) SetDirection(direction Direction, dt float64) {
	e.previousDirection = e.currentDirection
	e.currentDirection = direction
	e.selectFrame(e.walk[direction].KeyFrameIndex(e.frameTime))
}

// SetState switches between idle and walking. Idling shows the standing frame
// of the facing direction.
func (e *Entity) SetState(state State) {
	e.state = state
	if state == StateIdle {
		e.selectFrame(0)
	}
}

func (e *Entity) selectFrame(i int) {
	e.frameIndex = i
	e.currentFrame = e.walk[e.currentDirection].Frame(i)
}

// SetVelocity replaces the movement speed, in map units per second.
func (e *Entity) SetVelocity(v cp.Vector) { e.velocity = v }

func (e *Entity) Velocity() cp.Vector           { return e.velocity }
func (e *Entity) State() State                  { return e.state }
func (e *Entity) Direction() Direction          { return e.currentDirection }
func (e *Entity) PreviousDirection() Direction  { return e.previousDirection }
func (e *Entity) CurrentPosition() cp.Vector    { return e.currentPosition }
func (e *Entity) NextPosition() cp.Vector       { return e.nextPosition }
func (e *Entity) SpritePosition() cp.Vector     { return e.spritePosition }
func (e *Entity) Frame() *ebiten.Image          { return e.currentFrame }
func (e *Entity) FrameIndex() int               { return e.frameIndex }
func (e *Entity) FrameTime() float64            { return e.frameTime }
func (e *Entity) FrameSize() (float64, float64) { return e.frameW, e.frameH }

// Dispose releases the sprite sheet.
func (e *Entity) Dispose() {
	e.assets.Unload(e.spritePath)
}

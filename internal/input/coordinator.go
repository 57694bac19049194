// Package input translates raw pointer and hardware-controller events into
// semantic operations on the atom: grab-and-move, pinch/squeeze scale,
// drag/twist rotate and tap-to-select. It owns all gesture state and applies
// pending manipulation once per frame from Update.
package input

import (
	"github.com/chewxy/math32"

	"github.com/Mo-Salah9/webar-atom/internal/atom"
)

// Target is the surface the coordinator manipulates: picking queries plus the
// transform and selection operations of the placed atom. The application
// shell implements it; tests use a mock.
type Target interface {
	// PickParticleScreen returns the particle kind under a screen point.
	PickParticleScreen(x, y float32) (atom.Kind, bool)
	// HitsAtomScreen reports whether a screen point's ray touches the atom.
	HitsAtomScreen(x, y float32) bool
	// PickParticleRay and HitsAtomRay are the world-ray equivalents used by
	// hardware controllers.
	PickParticleRay(origin, dir [3]float32) (atom.Kind, bool)
	HitsAtomRay(origin, dir [3]float32) bool

	Position() [3]float32
	SetPosition(p [3]float32)
	Scale() float32
	SetScale(s float32)
	RotationY() float32
	SetRotationY(yaw float32)

	// TapParticle is a screen tap on a recognized particle: toggles the
	// highlight and routes the kind to the lesson panel.
	TapParticle(kind atom.Kind)
	// TapMiss is a screen tap on empty space ("no target" feedback).
	TapMiss()
	// ToggleHighlight is the controller-trigger selection of a particle.
	ToggleHighlight(kind atom.Kind)
}

// Scale clamp shared by pinch and two-controller squeeze.
const (
	MinScale = 0.1
	MaxScale = 5.0
)

// Tap classification window: a down/up pair within both limits is a tap.
const (
	tapMaxSeconds = 0.25
	tapMaxDistPx  = 8.0
)

// yawPerPixel is the drag-rotation sensitivity.
const yawPerPixel = 0.011

// PointerPhase is the lifecycle phase of a pointer event.
type PointerPhase uint8

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is one unified pointer (touch or mouse) event with a stable
// per-gesture identifier and screen coordinates in pixels.
type PointerEvent struct {
	ID    int
	Phase PointerPhase
	X, Y  float32
}

// pointerMode is the sticky classification made at pointer-down.
type pointerMode uint8

const (
	modeNone   pointerMode = iota // down on empty space: no transform
	modeRotate                    // down on the atom: drag rotates yaw
	modeMulti                     // absorbed into a two-pointer gesture
)

type pointerState struct {
	id             int
	startX, startY float32
	x, y           float32
	age            float32
	mode           pointerMode
}

type handState struct {
	origin, dir [3]float32
	known       bool
	selecting   bool
	squeezing   bool
}

// Coordinator multiplexes the input modalities onto one shared gesture state.
// All methods run on the frame goroutine; events mutate state and Update
// applies the live gesture to the target once per tick.
type Coordinator struct {
	target Target

	pointers []*pointerState

	rotating       bool
	rotateStartYaw float32

	pinching        bool
	pinchStartDist  float32
	pinchStartAngle float32
	pinchStartScale float32
	pinchStartYaw   float32

	hands [2]handState

	grabbing      bool
	grabHand      int
	grabStartCtl  [3]float32
	grabStartAtom [3]float32

	squeezing         bool
	squeezeStartDist  float32
	squeezeStartScale float32
}

// NewCoordinator returns a coordinator manipulating the given target.
func NewCoordinator(target Target) *Coordinator {
	return &Coordinator{target: target}
}

// Rotating reports whether a single-pointer rotation gesture is live.
func (c *Coordinator) Rotating() bool { return c.rotating }

// Pinching reports whether a two-pointer pinch/twist gesture is live.
func (c *Coordinator) Pinching() bool { return c.pinching }

// Grabbing reports whether a controller grab is live.
func (c *Coordinator) Grabbing() bool { return c.grabbing }

// ActivePointers returns the live pointer count.
func (c *Coordinator) ActivePointers() int { return len(c.pointers) }

// Reset drops all gesture and pointer state back to neutral. Called on
// session end.
func (c *Coordinator) Reset() {
	c.pointers = nil
	c.rotating = false
	c.pinching = false
	c.grabbing = false
	c.squeezing = false
	c.hands = [2]handState{}
}

// Pointer feeds one pointer event into the gesture machine.
func (c *Coordinator) Pointer(ev PointerEvent) {
	switch ev.Phase {
	case PointerDown:
		c.pointerDown(ev)
	case PointerMove:
		if p := c.pointer(ev.ID); p != nil {
			p.x, p.y = ev.X, ev.Y
		}
	case PointerUp:
		c.pointerUp(ev, true)
	case PointerCancel:
		c.pointerUp(ev, false)
	}
}

func (c *Coordinator) pointer(id int) *pointerState {
	for _, p := range c.pointers {
		if p.id == id {
			return p
		}
	}
	return nil
}

func (c *Coordinator) pointerDown(ev PointerEvent) {
	if c.pointer(ev.ID) != nil {
		return // duplicate down for a live id
	}
	p := &pointerState{id: ev.ID, startX: ev.X, startY: ev.Y, x: ev.X, y: ev.Y}
	c.pointers = append(c.pointers, p)

	switch len(c.pointers) {
	case 1:
		// Sticky classification: rotate only when the press ray touches the
		// atom. A press on empty space never turns into a transform.
		if c.target.HitsAtomScreen(ev.X, ev.Y) {
			p.mode = modeRotate
			c.rotating = true
			c.rotateStartYaw = c.target.RotationY()
		}
	case 2:
		// A second pointer always supersedes single-pointer rotation, and
		// rotation does not resume when the gesture drops back to one.
		c.rotating = false
		for _, q := range c.pointers {
			q.mode = modeMulti
		}
		a, b := c.pointers[0], c.pointers[1]
		c.pinching = true
		c.pinchStartDist = pointerDist(a, b)
		c.pinchStartAngle = pointerAngle(a, b)
		c.pinchStartScale = c.target.Scale()
		c.pinchStartYaw = c.target.RotationY()
	default:
		// Third and later pointers join the multi gesture but are ignored.
		p.mode = modeMulti
	}
}

func (c *Coordinator) pointerUp(ev PointerEvent, evalTap bool) {
	p := c.pointer(ev.ID)
	if p == nil {
		return
	}
	p.x, p.y = ev.X, ev.Y
	c.removePointer(ev.ID)

	// Dropping below two pointers cancels pinch/twist; the interaction ends
	// rather than degrading back into rotation.
	if len(c.pointers) < 2 && c.pinching {
		c.pinching = false
	}

	if len(c.pointers) > 0 {
		return
	}
	// Last pointer released: evaluate tap and return to neutral.
	c.rotating = false
	if evalTap && p.mode != modeMulti && isTap(p) {
		if kind, ok := c.target.PickParticleScreen(p.x, p.y); ok {
			c.target.TapParticle(kind)
		} else {
			c.target.TapMiss()
		}
	}
}

func (c *Coordinator) removePointer(id int) {
	for i, p := range c.pointers {
		if p.id == id {
			c.pointers = append(c.pointers[:i], c.pointers[i+1:]...)
			return
		}
	}
}

func isTap(p *pointerState) bool {
	if p.age > tapMaxSeconds {
		return false
	}
	dx := p.x - p.startX
	dy := p.y - p.startY
	return math32.Sqrt(dx*dx+dy*dy) <= tapMaxDistPx
}

func pointerDist(a, b *pointerState) float32 {
	dx := b.x - a.x
	dy := b.y - a.y
	return math32.Sqrt(dx*dx + dy*dy)
}

func pointerAngle(a, b *pointerState) float32 {
	return math32.Atan2(b.y-a.y, b.x-a.x)
}

// Update advances gesture timers and applies the pending manipulation for
// this frame, in a fixed order: controller grab, controller squeeze scale,
// then pointer gestures.
func (c *Coordinator) Update(dt float32) {
	for _, p := range c.pointers {
		p.age += dt
	}

	if c.grabbing {
		h := c.hands[c.grabHand]
		d := [3]float32{
			h.origin[0] - c.grabStartCtl[0],
			h.origin[1] - c.grabStartCtl[1],
			h.origin[2] - c.grabStartCtl[2],
		}
		c.target.SetPosition([3]float32{
			c.grabStartAtom[0] + d[0],
			c.grabStartAtom[1] + d[1],
			c.grabStartAtom[2] + d[2],
		})
	}

	if c.squeezing && c.squeezeStartDist > 0 {
		ratio := handDist(c.hands[0], c.hands[1]) / c.squeezeStartDist
		c.target.SetScale(ClampScale(c.squeezeStartScale * ratio))
	}

	if c.rotating {
		if p := c.firstPointer(modeRotate); p != nil {
			c.target.SetRotationY(c.rotateStartYaw + (p.x-p.startX)*yawPerPixel)
		}
	}

	if c.pinching && len(c.pointers) >= 2 && c.pinchStartDist > 0 {
		a, b := c.pointers[0], c.pointers[1]
		ratio := pointerDist(a, b) / c.pinchStartDist
		c.target.SetScale(ClampScale(c.pinchStartScale * ratio))
		twist := pointerAngle(a, b) - c.pinchStartAngle
		c.target.SetRotationY(c.pinchStartYaw + twist)
	}
}

func (c *Coordinator) firstPointer(mode pointerMode) *pointerState {
	for _, p := range c.pointers {
		if p.mode == mode {
			return p
		}
	}
	return nil
}

// ClampScale clamps a gesture scale to the supported range.
func ClampScale(s float32) float32 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

func handDist(a, b handState) float32 {
	dx := b.origin[0] - a.origin[0]
	dy := b.origin[1] - a.origin[1]
	dz := b.origin[2] - a.origin[2]
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

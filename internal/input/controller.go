package input

// ControllerEventType distinguishes 6-DoF controller events.
type ControllerEventType uint8

const (
	// ControllerPose is the continuous per-frame pose update for one hand.
	ControllerPose ControllerEventType = iota
	// ControllerSelectStart / End is the trigger button.
	ControllerSelectStart
	ControllerSelectEnd
	// ControllerSqueezeStart / End is the grip button.
	ControllerSqueezeStart
	ControllerSqueezeEnd
)

// ControllerEvent is one hardware 6-DoF controller event. Hand is 0 or 1.
// Origin and Dir describe the controller's pointing ray in world space.
type ControllerEvent struct {
	Hand        int
	Type        ControllerEventType
	Origin, Dir [3]float32
}

// ControllerSource delivers controller events each frame. Absence of any
// implementation is the "capability absent" state: the controller path stays
// dormant and every other modality keeps working.
type ControllerSource interface {
	Poll() []ControllerEvent
}

// Controller feeds one hardware controller event into the gesture machine.
func (c *Coordinator) Controller(ev ControllerEvent) {
	if ev.Hand < 0 || ev.Hand >= len(c.hands) {
		return
	}
	h := &c.hands[ev.Hand]
	switch ev.Type {
	case ControllerPose:
		h.origin, h.dir = ev.Origin, ev.Dir
		h.known = true

	case ControllerSelectStart:
		h.origin, h.dir = ev.Origin, ev.Dir
		h.known = true
		h.selecting = true
		// A trigger on a specific particle selects it; a trigger anywhere
		// else on the atom starts a rigid grab.
		if kind, ok := c.target.PickParticleRay(ev.Origin, ev.Dir); ok {
			c.target.ToggleHighlight(kind)
			return
		}
		if !c.grabbing && c.target.HitsAtomRay(ev.Origin, ev.Dir) {
			c.grabbing = true
			c.grabHand = ev.Hand
			c.grabStartCtl = ev.Origin
			c.grabStartAtom = c.target.Position()
		}

	case ControllerSelectEnd:
		h.selecting = false
		if c.grabbing && c.grabHand == ev.Hand {
			c.grabbing = false
		}

	case ControllerSqueezeStart:
		h.origin, h.dir = ev.Origin, ev.Dir
		h.known = true
		h.squeezing = true
		if c.hands[0].squeezing && c.hands[1].squeezing && !c.squeezing {
			c.squeezing = true
			c.squeezeStartDist = handDist(c.hands[0], c.hands[1])
			c.squeezeStartScale = c.target.Scale()
		}

	case ControllerSqueezeEnd:
		h.squeezing = false
		if c.squeezing {
			c.squeezing = false
		}
	}
}

// Package placement tracks the real-world surface cursor: while the user is
// looking for a spot it follows the latest surface hit each frame, and once
// the atom is placed it goes away until the session restarts.
package placement

import (
	"github.com/chewxy/math32"

	"github.com/Mo-Salah9/webar-atom/internal/logger"
)

// Hit is one surface hit-test result in world coordinates.
type Hit struct {
	Pos [3]float32
}

// HitSource yields the surface hits for the current frame. The first hit is
// authoritative. Sources are attached asynchronously after session start and
// may not exist yet when the tracker updates; the tracker reads defensively.
type HitSource interface {
	Hits() []Hit
}

// Phase is the tracker's lifecycle state.
type Phase uint8

const (
	// Searching: no source yet, or the source reported no hits last frame.
	Searching Phase = iota
	// Tracking: the cursor follows a live hit pose.
	Tracking
	// Placed: placement confirmed; the cursor is hidden permanently and no
	// further surface queries are issued until the session restarts.
	Placed
)

func (p Phase) String() string {
	switch p {
	case Searching:
		return "searching"
	case Tracking:
		return "tracking"
	case Placed:
		return "placed"
	}
	return "unknown"
}

// Pulse animation applied to the cursor's displayed transform only; the
// underlying tracked pose is never scaled.
const (
	pulseRate = 3.2
	pulseAmp  = 0.12
)

// Tracker maintains the single placement cursor's pose and visibility.
type Tracker struct {
	log *logger.Logger

	phase   Phase
	src     HitSource
	pose    [3]float32
	visible bool
	elapsed float32
}

// NewTracker returns a tracker in the Searching phase. log may be nil.
func NewTracker(log *logger.Logger) *Tracker {
	return &Tracker{log: log}
}

// AttachSource installs the surface hit source. Called from the async setup
// callback; takes effect on the next Update. Ignored once placed.
func (t *Tracker) AttachSource(src HitSource) {
	if t.phase == Placed {
		return
	}
	t.src = src
}

// SourceFailed records that surface-query setup failed. The cursor stays
// hidden for the rest of the session; there is no retry.
func (t *Tracker) SourceFailed(err error) {
	t.src = nil
	t.visible = false
	if t.log != nil && err != nil {
		t.log.Log("surface hit-test unavailable: " + err.Error())
	}
}

// Update polls the source for this frame's hits. While Searching/Tracking the
// cursor pose follows the first hit and the cursor is visible; with no hits
// (or no source yet) it is hidden. Once Placed, Update does nothing.
func (t *Tracker) Update(dt float32) {
	if t.phase == Placed {
		return
	}
	t.elapsed += dt
	if t.src == nil {
		t.visible = false
		t.phase = Searching
		return
	}
	hits := t.src.Hits()
	if len(hits) == 0 {
		t.visible = false
		t.phase = Searching
		return
	}
	t.pose = hits[0].Pos
	t.visible = true
	t.phase = Tracking
}

// Cursor returns the tracked cursor pose and whether it should be drawn.
func (t *Tracker) Cursor() ([3]float32, bool) {
	return t.pose, t.visible
}

// CursorScale returns the pulsing display scale for the visible cursor.
// Returns 1 when the cursor is hidden.
func (t *Tracker) CursorScale() float32 {
	if !t.visible {
		return 1
	}
	return 1 + pulseAmp*math32.Sin(t.elapsed*pulseRate)
}

// Confirm finalizes placement at the current cursor pose. It succeeds only
// while the cursor is visible and nothing is placed yet; afterwards the
// cursor is hidden permanently and surface queries stop.
func (t *Tracker) Confirm() ([3]float32, bool) {
	if t.phase == Placed || !t.visible {
		return [3]float32{}, false
	}
	t.phase = Placed
	t.visible = false
	t.src = nil
	return t.pose, true
}

// Phase returns the current lifecycle phase.
func (t *Tracker) Phase() Phase { return t.phase }

// Reset returns the tracker to Searching and drops the source subscription.
// Called when the session ends or restarts.
func (t *Tracker) Reset() {
	t.phase = Searching
	t.src = nil
	t.visible = false
	t.elapsed = 0
}

package app

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Mo-Salah9/webar-atom/internal/atom"
	"github.com/Mo-Salah9/webar-atom/internal/input"
)

// The application is the gesture coordinator's target and the sequencer's
// model. Every method tolerates the pre-placement state (nil model).

// screenRay unprojects a screen point through the live camera.
func (a *Application) screenRay(x, y float32) (origin, dir [3]float32) {
	v := a.scn.View()
	return v.ScreenRay(x, y, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// PickParticleScreen returns the particle kind under a screen point.
func (a *Application) PickParticleScreen(x, y float32) (atom.Kind, bool) {
	if a.model == nil {
		return 0, false
	}
	origin, dir := a.screenRay(x, y)
	return a.PickParticleRay(origin, dir)
}

// HitsAtomScreen reports whether a screen point's ray touches the atom.
func (a *Application) HitsAtomScreen(x, y float32) bool {
	if a.model == nil {
		return false
	}
	origin, dir := a.screenRay(x, y)
	return a.model.HitsBounds(origin, dir)
}

// PickParticleRay returns the particle kind hit by a world ray.
func (a *Application) PickParticleRay(origin, dir [3]float32) (atom.Kind, bool) {
	if a.model == nil {
		return 0, false
	}
	p, ok := a.model.PickParticle(origin, dir)
	if !ok {
		return 0, false
	}
	return p.Kind, true
}

// HitsAtomRay reports whether a world ray touches the atom's bounds.
func (a *Application) HitsAtomRay(origin, dir [3]float32) bool {
	return a.model != nil && a.model.HitsBounds(origin, dir)
}

// Position returns the model position, or zero before placement.
func (a *Application) Position() [3]float32 {
	if a.model == nil {
		return [3]float32{}
	}
	return a.model.Position()
}

// SetPosition moves the model.
func (a *Application) SetPosition(p [3]float32) {
	if a.model != nil {
		a.model.SetPosition(p[0], p[1], p[2])
	}
}

// Scale returns the model scale, or 1 before placement.
func (a *Application) Scale() float32 {
	if a.model == nil {
		return 1
	}
	return a.model.Scale()
}

// SetScale rescales the model.
func (a *Application) SetScale(s float32) {
	if a.model != nil {
		a.model.SetScale(s)
	}
}

// RotationY returns the model yaw.
func (a *Application) RotationY() float32 {
	if a.model == nil {
		return 0
	}
	return a.model.RotationY()
}

// SetRotationY turns the model.
func (a *Application) SetRotationY(yaw float32) {
	if a.model != nil {
		a.model.SetRotationY(yaw)
	}
}

// TapParticle toggles the tapped particle's highlight and routes its kind to
// the lesson panel's contextual text.
func (a *Application) TapParticle(kind atom.Kind) {
	if a.model == nil {
		return
	}
	a.model.ToggleHighlight(kind)
	a.seq.Inspect(kind)
}

// TapMiss confirms placement before the atom exists; afterwards it clears any
// highlight and gives no-target feedback, a buzz plus a transient message.
func (a *Application) TapMiss() {
	if a.model == nil {
		if pos, ok := a.tracker.Confirm(); ok {
			a.place(pos)
		}
		return
	}
	a.model.ClearHighlights()
	a.sound.PlayNoTarget()
	a.overlay.Toast(toastNoTarget)
}

// ToggleHighlight is the controller-trigger selection path.
func (a *Application) ToggleHighlight(kind atom.Kind) {
	if a.model != nil {
		a.model.ToggleHighlight(kind)
	}
}

// The sequencer's model surface, forwarded to the live atom.

func (a *Application) HighlightKind(k atom.Kind) {
	if a.model != nil {
		a.model.HighlightKind(k)
	}
}

func (a *Application) ClearHighlights() {
	if a.model != nil {
		a.model.ClearHighlights()
	}
}

func (a *Application) SetEmphasis(k atom.Kind) {
	if a.model != nil {
		a.model.SetEmphasis(k)
	}
}

func (a *Application) ClearEmphasis() {
	if a.model != nil {
		a.model.ClearEmphasis()
	}
}

func (a *Application) SuppressShells(suppress bool) {
	if a.model != nil {
		a.model.SuppressShells(suppress)
	}
}

// routeMouse feeds the left mouse button to the coordinator as pointer 0,
// unless the press started on an overlay button, which consumes the whole
// press/release pair.
func (a *Application) routeMouse() {
	pos := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if id := a.overlay.Click(pos.X, pos.Y); id != "" {
			a.uiCaptured = true
			a.handleButton(id)
		} else {
			a.uiCaptured = false
			a.coord.Pointer(input.PointerEvent{ID: 0, Phase: input.PointerDown, X: pos.X, Y: pos.Y})
		}
		return
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if !a.uiCaptured {
			a.coord.Pointer(input.PointerEvent{ID: 0, Phase: input.PointerUp, X: pos.X, Y: pos.Y})
		}
		a.uiCaptured = false
		return
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && !a.uiCaptured {
		a.coord.Pointer(input.PointerEvent{ID: 0, Phase: input.PointerMove, X: pos.X, Y: pos.Y})
	}
}

// routeWheel maps the mouse wheel to the pinch-scale clamp, a desktop stand-in
// for the two-finger gesture.
func (a *Application) routeWheel() {
	if a.model == nil {
		return
	}
	wheel := rl.GetMouseWheelMove()
	if wheel == 0 {
		return
	}
	a.SetScale(input.ClampScale(a.Scale() * (1 + wheel*wheelZoomStep)))
}

// routeControllers drains the optional hardware controller feed.
func (a *Application) routeControllers() {
	if a.controllers == nil {
		return
	}
	for _, ev := range a.controllers.Poll() {
		a.coord.Controller(ev)
	}
}

// handleButton dispatches an overlay button press by node ID.
func (a *Application) handleButton(id string) {
	switch {
	case id == "nav-next":
		a.seq.Next()
	case id == "nav-prev":
		a.seq.Prev()
	case strings.HasPrefix(id, "token-"):
		if i, err := strconv.Atoi(id[len("token-"):]); err == nil {
			a.game.SelectToken(i)
		}
	case strings.HasPrefix(id, "slot-"):
		if i, err := strconv.Atoi(id[len("slot-"):]); err == nil {
			a.game.ClickSlot(i)
		}
	}
}

// Package atom owns the 3D representation of the teaching atom: nucleus
// particles, electrons, orbit guides and glow shells. It animates them, applies
// highlight-by-kind with exact material restore, and exposes the aggregate
// transform the gesture layer manipulates. It is renderer-agnostic; the render
// package reads its state each frame.
package atom

import "github.com/chewxy/math32"

// Atom is the single aggregate instance placed in the scene. At most one
// exists at a time; it is created on first placement and disposed when the
// session ends.
type Atom struct {
	Nucleons  []*Particle
	Electrons []*Particle
	Guides    []*Guide
	Shells    []*Shell

	pos   [3]float32
	scale float32
	yaw   float32

	nucleusSpin float32

	highlightOn   bool
	highlightKind Kind

	emphasisOn    bool
	emphasisKind  Kind
	emphasisPhase float32

	shellsSuppressed bool
	disposed         bool
}

// New builds the full atom with deterministic rest positions: the fixed
// 13-point nucleon cluster (Fibonacci-sphere fallback for overflow), orbit
// guides per shell, electrons spread evenly around their shell with speed
// inversely related to the shell radius, and two translucent glow shells.
func New() *Atom {
	a := &Atom{scale: 1}

	for i := 0; i < nucleonCount; i++ {
		k := Neutron
		if i%2 == 0 && i/2 < ProtonCount {
			k = Proton
		}
		site := nucleonSite(i, nucleonCount)
		p := &Particle{
			Kind:   k,
			Rest:   site,
			Pos:    site,
			Radius: 0.11,
			Phase:  float32(i) * 0.73,
			Mat:    Material{Color: baseColor(k), Opacity: 1},
		}
		a.Nucleons = append(a.Nucleons, p)
	}

	ei := 0
	for gi, spec := range electronShells {
		a.Guides = append(a.Guides, &Guide{
			Radius: spec.radius,
			Incl:   spec.incl,
			Mat:    Material{Color: guideColor, Opacity: 0.45},
		})
		for j := 0; j < spec.electrons; j++ {
			e := &Particle{
				Kind:   Electron,
				Radius: 0.05,
				Orbit:  gi,
				Angle:  2 * math32.Pi * float32(j) / float32(spec.electrons),
				Speed:  baseOrbitSpeed / spec.radius,
				Wobble: float32(ei) * 1.17,
				Mat:    Material{Color: baseColor(Electron), Opacity: 1},
			}
			e.Pos = a.electronLocal(e)
			a.Electrons = append(a.Electrons, e)
			ei++
		}
	}

	a.Shells = []*Shell{
		{Radius: 0.34, Mat: Material{Color: shellColor, Opacity: 0.18}},
		{Radius: 1.05, Mat: Material{Color: shellColor, Opacity: 0.06}},
	}
	return a
}

// SetPosition sets the aggregate world position.
func (a *Atom) SetPosition(x, y, z float32) { a.pos = [3]float32{x, y, z} }

// Position returns the aggregate world position.
func (a *Atom) Position() [3]float32 { return a.pos }

// SetScale sets the uniform aggregate scale. Bounds are the caller's job.
func (a *Atom) SetScale(s float32) { a.scale = s }

// Scale returns the uniform aggregate scale.
func (a *Atom) Scale() float32 { return a.scale }

// SetRotationY sets the aggregate yaw in radians.
func (a *Atom) SetRotationY(angle float32) { a.yaw = angle }

// RotationY returns the aggregate yaw in radians.
func (a *Atom) RotationY() float32 { return a.yaw }

// NucleusSpin returns the accumulated slow self-rotation of the nucleus
// cluster, applied to nucleon local positions on top of the aggregate yaw.
func (a *Atom) NucleusSpin() float32 { return a.nucleusSpin }

// SuppressShells hides or restores the nucleus glow shells. Scenes use this
// during proton/neutron emphasis so the shells do not double-render behind
// the enlarged nucleons.
func (a *Atom) SuppressShells(suppress bool) { a.shellsSuppressed = suppress }

// ShellsSuppressed reports whether the glow shells are hidden.
func (a *Atom) ShellsSuppressed() bool { return a.shellsSuppressed }

// Dispose releases the instance's particles and guides. Safe to call exactly
// once per instance; later calls are no-ops.
func (a *Atom) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	a.Nucleons = nil
	a.Electrons = nil
	a.Guides = nil
	a.Shells = nil
}

// Disposed reports whether Dispose has run.
func (a *Atom) Disposed() bool { return a.disposed }

// forEachMaterial visits every material in the model.
func (a *Atom) forEachMaterial(fn func(m *Material)) {
	for _, p := range a.Nucleons {
		fn(&p.Mat)
	}
	for _, p := range a.Electrons {
		fn(&p.Mat)
	}
	for _, g := range a.Guides {
		fn(&g.Mat)
	}
	for _, s := range a.Shells {
		fn(&s.Mat)
	}
}

// dimmedOpacity is the fixed low opacity applied to everything outside the
// keep-set: dimmed but not invisible, hue preserved.
const dimmedOpacity = 0.15

// HighlightKind makes every particle of the given kind fully opaque in its
// bright variant and dims every other material to a fixed low opacity. An
// unrecognized kind matches nothing, so everything dims; that is the defined
// fallback, not an error. Only one keep-set is live at a time: a previous
// highlight is fully restored before the new one is applied, so repeated
// calls never compound the dimming.
func (a *Atom) HighlightKind(k Kind) {
	if a.highlightOn {
		a.ClearHighlights()
	}
	bright := brightColor(k)
	for _, p := range a.Nucleons {
		if p.Kind == k {
			p.Mat.emphasize(bright)
		} else {
			p.Mat.dim(dimmedOpacity)
		}
	}
	for _, p := range a.Electrons {
		if p.Kind == k {
			p.Mat.emphasize(bright)
		} else {
			p.Mat.dim(dimmedOpacity)
		}
	}
	for _, g := range a.Guides {
		g.Mat.dim(dimmedOpacity)
	}
	for _, s := range a.Shells {
		s.Mat.dim(dimmedOpacity)
	}
	a.highlightOn = true
	a.highlightKind = k
}

// ClearHighlights restores every material to its pre-highlight snapshot.
// Idempotent; a no-op if nothing is highlighted.
func (a *Atom) ClearHighlights() {
	if !a.highlightOn {
		return
	}
	a.forEachMaterial(func(m *Material) { m.restore() })
	a.highlightOn = false
}

// ToggleHighlight highlights the kind, or clears the highlight when the same
// kind is already live (press-again-to-clear semantics).
func (a *Atom) ToggleHighlight(k Kind) {
	if a.highlightOn && a.highlightKind == k {
		a.ClearHighlights()
		return
	}
	a.HighlightKind(k)
}

// HighlightedKind returns the live keep-set kind, if any.
func (a *Atom) HighlightedKind() (Kind, bool) {
	return a.highlightKind, a.highlightOn
}

// SetEmphasis starts the enlarged pulsing animation for nucleons of the given
// kind (used by the proton and neutron lesson scenes).
func (a *Atom) SetEmphasis(k Kind) {
	a.emphasisOn = true
	a.emphasisKind = k
	a.emphasisPhase = 0
}

// ClearEmphasis stops any kind-specific emphasis pulse.
func (a *Atom) ClearEmphasis() {
	a.emphasisOn = false
}

// EmphasisScale returns the display scale multiplier for a particle: the
// pulsing enlargement when its kind is emphasized, 1 otherwise.
func (a *Atom) EmphasisScale(p *Particle) float32 {
	if !a.emphasisOn || p.Kind != a.emphasisKind {
		return 1
	}
	return emphasisBaseScale + emphasisPulseAmp*math32.Sin(a.emphasisPhase)
}

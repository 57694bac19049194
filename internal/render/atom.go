package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Mo-Salah9/webar-atom/internal/atom"
)

const rad2deg = 180 / math32.Pi

// cursor ring sizing, relative to the atom's default footprint.
const cursorRadius = 0.25
const cursorDotRadius = 0.02

// tint converts a model material to a raylib draw color, folding opacity into
// alpha.
func tint(m atom.Material) rl.Color {
	a := m.Opacity
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return rl.NewColor(m.Color.R, m.Color.G, m.Color.B, uint8(a*float32(m.Color.A)))
}

// DrawAtom draws the full model: nucleons, electrons with trails, orbit
// guides, and (unless suppressed) the translucent glow shells. Translucent
// geometry draws last so it blends over the particles. Must be called between
// BeginMode3D and EndMode3D, after SetView.
func (r *Renderer) DrawAtom(a *atom.Atom) {
	if a == nil || a.Disposed() {
		return
	}
	r.ensureSphere("particle", sphereRings, sphereSlices)
	r.ensureSphere("shell", shellRings, shellSlices)

	for _, p := range a.Nucleons {
		d := 2 * p.Radius * a.Scale() * a.EmphasisScale(p)
		r.drawSphere("particle", a.WorldPosition(p), d, tint(p.Mat))
	}
	for _, e := range a.Electrons {
		r.drawTrail(a, e)
		d := 2 * e.Radius * a.Scale() * a.EmphasisScale(e)
		r.drawSphere("particle", a.WorldPosition(e), d, tint(e.Mat))
	}
	for _, g := range a.Guides {
		r.drawGuide(a, g)
	}
	if !a.ShellsSuppressed() {
		for _, s := range a.Shells {
			pos := a.Position()
			r.drawSphere("shell", pos, 2*s.Radius*a.Scale(), tint(s.Mat))
		}
	}
}

// guideDashes is the number of dash segments per orbit ring. Dashes make the
// slow self-rotation of the guides visible; guideDashFill is the lit fraction
// of each segment.
const guideDashes = 36
const guideDashFill = 0.62

// guideDashPoints appends the local-space endpoints of each dash of a ring in
// the XZ plane, rotated by spin about the ring's axis.
func guideDashPoints(radius, spin float32, dst [][2][3]float32) [][2][3]float32 {
	step := 2 * math32.Pi / guideDashes
	for i := 0; i < guideDashes; i++ {
		a0 := spin + float32(i)*step
		a1 := a0 + step*guideDashFill
		s0, c0 := math32.Sincos(a0)
		s1, c1 := math32.Sincos(a1)
		dst = append(dst, [2][3]float32{
			{c0 * radius, 0, s0 * radius},
			{c1 * radius, 0, s1 * radius},
		})
	}
	return dst
}

// drawGuide draws one orbit ring: a dashed circle in the atom's XZ plane,
// spun by the guide's own rotation, tilted by its inclination, then yawed,
// scaled and translated with the atom. The tilt sign matches the electron
// orbit math so electrons ride their ring.
func (r *Renderer) drawGuide(a *atom.Atom, g *atom.Guide) {
	pos := a.Position()
	col := tint(g.Mat)
	rl.PushMatrix()
	rl.Translatef(pos[0], pos[1], pos[2])
	rl.Rotatef(a.RotationY()*rad2deg, 0, 1, 0)
	rl.Rotatef(-g.Incl*rad2deg, 1, 0, 0)
	r.dashBuf = guideDashPoints(g.Radius*a.Scale(), g.Spin, r.dashBuf[:0])
	for _, d := range r.dashBuf {
		rl.DrawLine3D(
			rl.NewVector3(d[0][0], d[0][1], d[0][2]),
			rl.NewVector3(d[1][0], d[1][1], d[1][2]),
			col,
		)
	}
	rl.PopMatrix()
}

// drawTrail draws an electron's recent path as line segments whose alpha
// ramps up toward the newest point.
func (r *Renderer) drawTrail(a *atom.Atom, e *atom.Particle) {
	r.trailBuf = e.Trail.Points(r.trailBuf[:0])
	n := len(r.trailBuf)
	if n < 2 {
		return
	}
	base := tint(e.Mat)
	prev := a.WorldPoint(r.trailBuf[0])
	for i := 1; i < n; i++ {
		cur := a.WorldPoint(r.trailBuf[i])
		c := base
		c.A = uint8(float32(base.A) * 0.6 * float32(i) / float32(n))
		rl.DrawLine3D(
			rl.NewVector3(prev[0], prev[1], prev[2]),
			rl.NewVector3(cur[0], cur[1], cur[2]),
			c,
		)
		prev = cur
	}
}

// DrawCursor draws the placement reticle flat on the surface: an outer ring
// plus a center dot, both scaled by the tracker's pulse.
func (r *Renderer) DrawCursor(pos [3]float32, scale float32) {
	r.ensureSphere("particle", sphereRings, sphereSlices)
	center := rl.NewVector3(pos[0], pos[1]+0.002, pos[2])
	ring := rl.NewColor(255, 255, 255, 230)
	rl.DrawCircle3D(center, cursorRadius*scale, rl.NewVector3(1, 0, 0), 90, ring)
	rl.DrawCircle3D(center, cursorRadius*scale*0.92, rl.NewVector3(1, 0, 0), 90, rl.NewColor(255, 255, 255, 120))
	r.drawSphere("particle", pos, 2*cursorDotRadius*scale, ring)
}

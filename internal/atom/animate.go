package atom

import "github.com/chewxy/math32"

// Animation rates. All angles are radians, all rates per second.
const (
	nucleusSpinRate  = 0.12
	guideSpinRate    = 0.25
	nucleonJitterHz  = 4.0
	nucleonJitterAmp = 0.008
	nucleonSpinRate  = 0.8
	electronWobble   = 0.02
	wobbleFreq       = 3.0

	emphasisBaseScale = 1.45
	emphasisPulseAmp  = 0.2
	emphasisPulseRate = 5.0
)

// Advance steps all animation state by dt seconds: nucleon jitter and self
// rotation, electron orbital motion with wobble and trail append, slow self
// rotation of orbit guides and the whole nucleus, and the emphasis pulse.
func (a *Atom) Advance(dt float32) {
	if a.disposed {
		return
	}
	a.nucleusSpin += nucleusSpinRate * dt
	if a.emphasisOn {
		a.emphasisPhase += emphasisPulseRate * dt
	}

	for _, p := range a.Nucleons {
		p.Phase += nucleonJitterHz * dt
		p.Spin += nucleonSpinRate * dt
		// Per-axis phase offsets make the jitter look pseudo-random while
		// staying deterministic and centered on the rest position.
		p.Pos[0] = p.Rest[0] + nucleonJitterAmp*math32.Sin(p.Phase)
		p.Pos[1] = p.Rest[1] + nucleonJitterAmp*math32.Sin(p.Phase*1.31+2.1)
		p.Pos[2] = p.Rest[2] + nucleonJitterAmp*math32.Sin(p.Phase*0.77+4.2)
	}

	for _, g := range a.Guides {
		g.Spin += guideSpinRate * dt
	}

	for _, e := range a.Electrons {
		e.Angle += e.Speed * dt
		e.Pos = a.electronLocal(e)
		e.Trail.Push(e.Pos)
	}
}

// electronLocal computes an electron's local position from its orbital angle
// on its guide, plus a small sinusoidal wobble.
func (a *Atom) electronLocal(e *Particle) [3]float32 {
	g := a.Guides[e.Orbit]
	r := g.Radius
	sinA, cosA := math32.Sincos(e.Angle)
	sinI, cosI := math32.Sincos(g.Incl)
	w := electronWobble * math32.Sin(e.Angle*wobbleFreq+e.Wobble)
	return [3]float32{
		cosA*r + w,
		sinA*r*sinI + w,
		sinA*r*cosI - w,
	}
}

// WorldPosition maps a particle's local position through the nucleus spin
// (nucleons only), aggregate yaw, uniform scale and translation.
func (a *Atom) WorldPosition(p *Particle) [3]float32 {
	local := p.Pos
	if p.Kind != Electron {
		local = rotateY(local, a.nucleusSpin)
	}
	local = rotateY(local, a.yaw)
	return [3]float32{
		local[0]*a.scale + a.pos[0],
		local[1]*a.scale + a.pos[1],
		local[2]*a.scale + a.pos[2],
	}
}

// WorldPoint maps an atom-local point through yaw, scale and translation,
// skipping the nucleus spin. The renderer uses it for orbit guides and
// electron trail points.
func (a *Atom) WorldPoint(local [3]float32) [3]float32 {
	local = rotateY(local, a.yaw)
	return [3]float32{
		local[0]*a.scale + a.pos[0],
		local[1]*a.scale + a.pos[1],
		local[2]*a.scale + a.pos[2],
	}
}

// BoundingRadius returns the world-space radius enclosing the whole model,
// used for coarse "does this ray touch the atom" checks.
func (a *Atom) BoundingRadius() float32 {
	max := float32(0)
	for _, s := range electronShells {
		if s.radius > max {
			max = s.radius
		}
	}
	return (max + 0.1) * a.scale
}

func rotateY(v [3]float32, angle float32) [3]float32 {
	s, c := math32.Sincos(angle)
	return [3]float32{v[0]*c + v[2]*s, v[1], -v[0]*s + v[2]*c}
}

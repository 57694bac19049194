package atom

import "github.com/chewxy/math32"

// pickPadding widens particle pick spheres a little beyond their display
// radius so small electrons remain tappable.
const pickPadding = 1.6

// PickParticle returns the particle nearest along the ray whose pick sphere
// the ray enters, if any. origin and dir are world-space; dir need not be
// normalized.
func (a *Atom) PickParticle(origin, dir [3]float32) (*Particle, bool) {
	var best *Particle
	bestT := float32(math32.MaxFloat32)
	check := func(p *Particle) {
		r := p.Radius * pickPadding * a.scale
		if t, ok := raySphere(origin, dir, a.WorldPosition(p), r); ok && t < bestT {
			bestT = t
			best = p
		}
	}
	for _, p := range a.Nucleons {
		check(p)
	}
	for _, p := range a.Electrons {
		check(p)
	}
	return best, best != nil
}

// HitsBounds reports whether the ray touches the atom's bounding sphere.
func (a *Atom) HitsBounds(origin, dir [3]float32) bool {
	_, ok := raySphere(origin, dir, a.pos, a.BoundingRadius())
	return ok
}

// raySphere returns the nearest non-negative ray parameter at which the ray
// enters the sphere, if it does.
func raySphere(origin, dir, center [3]float32, radius float32) (float32, bool) {
	ox := origin[0] - center[0]
	oy := origin[1] - center[1]
	oz := origin[2] - center[2]
	aa := dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2]
	if aa == 0 {
		return 0, false
	}
	b := 2 * (ox*dir[0] + oy*dir[1] + oz*dir[2])
	c := ox*ox + oy*oy + oz*oz - radius*radius
	disc := b*b - 4*aa*c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := (-b - sq) / (2 * aa)
	if t < 0 {
		t = (-b + sq) / (2 * aa)
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

package atom

// Kind identifies which of the three particle families a particle belongs to.
type Kind uint8

const (
	Proton Kind = iota
	Neutron
	Electron
	kindCount
)

// String returns the lowercase display name ("proton", "neutron", "electron").
// Unknown kinds return "unknown"; they are valid input everywhere and simply
// match no particle.
func (k Kind) String() string {
	switch k {
	case Proton:
		return "proton"
	case Neutron:
		return "neutron"
	case Electron:
		return "electron"
	}
	return "unknown"
}

// Color is an RGBA color with 8-bit channels. The render layer converts it to
// its framework type; the model never imports the renderer.
type Color struct {
	R, G, B, A uint8
}

// Material is the visual state of one drawable piece of the model. Opacity is
// kept separate from Color.A so a highlight pass can dim a material while
// preserving its hue, and restore both byte-for-byte afterwards.
type Material struct {
	Color       Color
	Opacity     float32
	Highlighted bool

	snap      materialSnap
	snapTaken bool
}

type materialSnap struct {
	color   Color
	opacity float32
}

// dim forces the material to the given opacity, preserving hue, after
// snapshotting the original state on first touch.
func (m *Material) dim(opacity float32) {
	m.snapshot()
	m.Opacity = opacity
	m.Highlighted = false
}

// emphasize forces the material fully opaque with the given bright color,
// after snapshotting the original state on first touch.
func (m *Material) emphasize(c Color) {
	m.snapshot()
	m.Color = c
	m.Opacity = 1
	m.Highlighted = true
}

func (m *Material) snapshot() {
	if m.snapTaken {
		return
	}
	m.snap = materialSnap{color: m.Color, opacity: m.Opacity}
	m.snapTaken = true
}

// restore puts the material back to its snapshot, if one was taken.
func (m *Material) restore() {
	if !m.snapTaken {
		return
	}
	m.Color = m.snap.color
	m.Opacity = m.snap.opacity
	m.Highlighted = false
	m.snapTaken = false
}

// TrailLen is the fixed capacity of an electron's position trail.
const TrailLen = 24

// Trail is a fixed-length ring buffer of recent electron positions. The
// oldest point is overwritten once the buffer is full.
type Trail struct {
	pts  [TrailLen][3]float32
	head int
	n    int
}

// Push appends a position, overwriting the oldest when full.
func (t *Trail) Push(p [3]float32) {
	t.pts[t.head] = p
	t.head = (t.head + 1) % TrailLen
	if t.n < TrailLen {
		t.n++
	}
}

// Len returns the number of stored points.
func (t *Trail) Len() int { return t.n }

// Points appends the stored positions to dst, oldest first, and returns dst.
func (t *Trail) Points(dst [][3]float32) [][3]float32 {
	start := t.head - t.n
	if start < 0 {
		start += TrailLen
	}
	for i := 0; i < t.n; i++ {
		dst = append(dst, t.pts[(start+i)%TrailLen])
	}
	return dst
}

// Particle is one proton, neutron or electron. Particles are owned exclusively
// by the Atom that built them and are never shared between instances.
//
// Nucleons animate around Rest with a sinusoidal jitter plus a constant self
// rotation. Electrons ignore Rest and derive Pos from their orbital angle on
// the guide they were assigned to.
type Particle struct {
	Kind Kind
	Mat  Material

	// Rest position in atom-local coordinates (nucleons).
	Rest [3]float32
	// Pos is the live animated local position.
	Pos [3]float32
	// Radius is the display/picking radius in local units.
	Radius float32

	// Nucleon animation state.
	Phase float32 // jitter phase, accumulates with dt
	Spin  float32 // self-rotation angle

	// Electron animation state.
	Orbit  int     // index into the atom's orbit guides
	Angle  float32 // current orbital angle
	Speed  float32 // angular speed, rad/s
	Wobble float32 // per-electron wobble phase offset

	Trail Trail // electrons only
}

// Guide is a purely visual orbit ring: radius, inclination and a material.
// It has no identity beyond grouping electrons visually.
type Guide struct {
	Radius float32
	Incl   float32 // inclination, radians
	Spin   float32 // slow self-rotation angle
	Mat    Material
}

// Shell is a translucent glow sphere wrapped around the nucleus.
type Shell struct {
	Radius float32
	Mat    Material
}

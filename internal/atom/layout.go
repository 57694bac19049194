package atom

import (
	"github.com/chewxy/math32"
)

// Nucleus composition and electron shell layout of the displayed atom
// (carbon-13: 6 protons, 7 neutrons, 6 electrons over two shells).
const (
	ProtonCount   = 6
	NeutronCount  = 7
	ElectronCount = 6
	nucleonCount  = ProtonCount + NeutronCount
)

// nucleonSpacing is the center distance between packed nucleons.
const nucleonSpacing = 0.21

// nucleonSites is the hand-placed arrangement for the first 13 nucleons:
// one center sphere and twelve around it (cuboctahedral packing). Values are
// unit offsets, scaled by nucleonSpacing when the cluster is built.
var nucleonSites = [13][3]float32{
	{0, 0, 0},
	{1, 0, 0}, {-1, 0, 0},
	{0.5, 0.866, 0}, {-0.5, 0.866, 0},
	{0.5, -0.866, 0}, {-0.5, -0.866, 0},
	{0.5, 0.289, 0.816}, {-0.5, 0.289, 0.816},
	{0, -0.577, 0.816},
	{0.5, -0.289, -0.816}, {-0.5, -0.289, -0.816},
	{0, 0.577, -0.816},
}

// nucleonSite returns the local rest position of nucleon i out of n. The first
// len(nucleonSites) use the hand-placed cluster; any overflow falls back to a
// Fibonacci-sphere distribution so arbitrary isotopes still pack evenly.
func nucleonSite(i, n int) [3]float32 {
	if i < len(nucleonSites) {
		s := nucleonSites[i]
		return [3]float32{s[0] * nucleonSpacing, s[1] * nucleonSpacing, s[2] * nucleonSpacing}
	}
	phi := math32.Acos(-1 + 2*float32(i)/float32(n))
	theta := math32.Sqrt(float32(n)*math32.Pi) * phi
	r := float32(nucleonSpacing * 1.9)
	return [3]float32{
		r * math32.Cos(theta) * math32.Sin(phi),
		r * math32.Sin(theta) * math32.Sin(phi),
		r * math32.Cos(phi),
	}
}

// shellSpec describes one orbit guide and how many electrons ride it.
type shellSpec struct {
	radius    float32
	incl      float32
	electrons int
}

// electronShells is the fixed shell configuration. Inner shells orbit faster:
// angular speed is baseOrbitSpeed scaled by 1/radius.
var electronShells = []shellSpec{
	{radius: 0.62, incl: 0.35, electrons: 2},
	{radius: 0.95, incl: -0.55, electrons: 4},
}

const baseOrbitSpeed = 0.9 // rad/s at radius 1

// Base colors. Highlight colors are the brighter variants applied to the
// keep-set; dimmed particles keep their base hue at reduced opacity.
var (
	protonColor    = Color{R: 214, G: 69, B: 65, A: 255}
	neutronColor   = Color{R: 110, G: 116, B: 128, A: 255}
	electronColor  = Color{R: 59, G: 134, B: 255, A: 255}
	guideColor     = Color{R: 136, G: 160, B: 190, A: 255}
	shellColor     = Color{R: 90, G: 140, B: 230, A: 255}
	protonBright   = Color{R: 255, G: 96, B: 80, A: 255}
	neutronBright  = Color{R: 190, G: 198, B: 214, A: 255}
	electronBright = Color{R: 96, G: 170, B: 255, A: 255}
)

// brightColor returns the keep-set highlight color for a kind.
func brightColor(k Kind) Color {
	switch k {
	case Proton:
		return protonBright
	case Neutron:
		return neutronBright
	case Electron:
		return electronBright
	}
	return Color{R: 255, G: 255, B: 255, A: 255}
}

func baseColor(k Kind) Color {
	switch k {
	case Proton:
		return protonColor
	case Neutron:
		return neutronColor
	case Electron:
		return electronColor
	}
	return Color{R: 255, G: 255, B: 255, A: 255}
}

package atom

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestNewComposition(t *testing.T) {
	a := New()
	protons, neutrons := 0, 0
	for _, p := range a.Nucleons {
		switch p.Kind {
		case Proton:
			protons++
		case Neutron:
			neutrons++
		default:
			t.Fatalf("nucleon with kind %v", p.Kind)
		}
	}
	if protons != ProtonCount || neutrons != NeutronCount {
		t.Errorf("nucleus composition: got %d protons, %d neutrons; want %d, %d",
			protons, neutrons, ProtonCount, NeutronCount)
	}
	if len(a.Electrons) != ElectronCount {
		t.Errorf("electrons: got %d, want %d", len(a.Electrons), ElectronCount)
	}
	if len(a.Guides) != len(electronShells) {
		t.Errorf("guides: got %d, want %d", len(a.Guides), len(electronShells))
	}
	if a.Scale() != 1 {
		t.Errorf("initial scale: got %v, want 1", a.Scale())
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(), New()
	for i := range a.Nucleons {
		if a.Nucleons[i].Rest != b.Nucleons[i].Rest {
			t.Fatalf("nucleon %d rest differs between instances", i)
		}
	}
	for i := range a.Electrons {
		if a.Electrons[i].Angle != b.Electrons[i].Angle {
			t.Fatalf("electron %d initial angle differs between instances", i)
		}
	}
}

// Overflow nucleons beyond the hand-placed cluster must fall back to the
// Fibonacci-sphere formula and stay on its shell radius.
func TestNucleonSiteOverflow(t *testing.T) {
	const n = 20
	seen := make(map[[3]float32]bool)
	for i := len(nucleonSites); i < n; i++ {
		s := nucleonSite(i, n)
		if seen[s] {
			t.Errorf("overflow site %d duplicates an earlier site", i)
		}
		seen[s] = true
		r := math32.Sqrt(s[0]*s[0] + s[1]*s[1] + s[2]*s[2])
		want := float32(nucleonSpacing * 1.9)
		if math32.Abs(r-want) > 1e-4 {
			t.Errorf("overflow site %d radius: got %v, want %v", i, r, want)
		}
	}
}

func TestInnerShellOrbitsFaster(t *testing.T) {
	a := New()
	var inner, outer *Particle
	for _, e := range a.Electrons {
		if e.Orbit == 0 {
			inner = e
		} else {
			outer = e
		}
	}
	if inner == nil || outer == nil {
		t.Fatal("expected electrons on both shells")
	}
	if inner.Speed <= outer.Speed {
		t.Errorf("inner shell speed %v not greater than outer %v", inner.Speed, outer.Speed)
	}
}

// snapshotMaterials copies every material's externally visible state.
func snapshotMaterials(a *Atom) []Material {
	var out []Material
	a.forEachMaterial(func(m *Material) {
		out = append(out, Material{Color: m.Color, Opacity: m.Opacity, Highlighted: m.Highlighted})
	})
	return out
}

func TestHighlightThenClearRestoresExactly(t *testing.T) {
	for _, k := range []Kind{Proton, Neutron, Electron} {
		t.Run(k.String(), func(t *testing.T) {
			a := New()
			before := snapshotMaterials(a)
			a.HighlightKind(k)
			a.ClearHighlights()
			after := snapshotMaterials(a)
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("material %d not restored: before %+v, after %+v", i, before[i], after[i])
				}
			}
		})
	}
}

func TestHighlightKeepSet(t *testing.T) {
	a := New()
	a.HighlightKind(Proton)
	for _, p := range a.Nucleons {
		if p.Kind == Proton {
			if p.Mat.Opacity != 1 || !p.Mat.Highlighted {
				t.Errorf("proton not fully highlighted: %+v", p.Mat)
			}
		} else if p.Mat.Opacity != dimmedOpacity {
			t.Errorf("neutron opacity: got %v, want %v", p.Mat.Opacity, dimmedOpacity)
		}
	}
	for _, e := range a.Electrons {
		if e.Mat.Opacity != dimmedOpacity {
			t.Errorf("electron opacity: got %v, want %v", e.Mat.Opacity, dimmedOpacity)
		}
		if e.Mat.Color != electronColor {
			t.Errorf("dimmed electron hue changed: %+v", e.Mat.Color)
		}
	}
	for _, g := range a.Guides {
		if g.Mat.Opacity != dimmedOpacity {
			t.Errorf("guide opacity: got %v, want %v", g.Mat.Opacity, dimmedOpacity)
		}
	}
}

// Switching the highlighted kind must restore first, then reapply: no
// additive dimming and no visual leakage from the previous keep-set.
func TestHighlightSwitchNoLeakage(t *testing.T) {
	a := New()
	before := snapshotMaterials(a)
	a.HighlightKind(Proton)
	a.HighlightKind(Electron)
	for _, p := range a.Nucleons {
		if p.Mat.Opacity != dimmedOpacity {
			t.Errorf("nucleon opacity after switch: got %v, want %v", p.Mat.Opacity, dimmedOpacity)
		}
		if p.Mat.Color != baseColor(p.Kind) {
			t.Errorf("nucleon hue leaked from previous highlight: %+v", p.Mat.Color)
		}
	}
	a.ClearHighlights()
	after := snapshotMaterials(a)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("material %d not restored after switching highlights", i)
		}
	}
}

// An unrecognized kind matches no particle; everything dims. Defined
// fallback, not an error.
func TestHighlightUnknownKindDimsEverything(t *testing.T) {
	a := New()
	a.HighlightKind(Kind(99))
	a.forEachMaterial(func(m *Material) {
		if m.Opacity != dimmedOpacity {
			t.Errorf("material opacity: got %v, want %v", m.Opacity, dimmedOpacity)
		}
	})
	a.ClearHighlights()
}

func TestClearHighlightsIdempotent(t *testing.T) {
	a := New()
	before := snapshotMaterials(a)
	a.ClearHighlights() // nothing highlighted: no-op
	a.HighlightKind(Neutron)
	a.ClearHighlights()
	a.ClearHighlights()
	after := snapshotMaterials(a)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("material %d changed by repeated ClearHighlights", i)
		}
	}
}

func TestToggleHighlight(t *testing.T) {
	a := New()
	a.ToggleHighlight(Proton)
	if k, on := a.HighlightedKind(); !on || k != Proton {
		t.Fatalf("after first toggle: kind %v on %v", k, on)
	}
	a.ToggleHighlight(Proton)
	if _, on := a.HighlightedKind(); on {
		t.Fatal("second toggle of same kind should clear the highlight")
	}
	a.ToggleHighlight(Proton)
	a.ToggleHighlight(Neutron)
	if k, on := a.HighlightedKind(); !on || k != Neutron {
		t.Fatalf("toggling a different kind should switch: kind %v on %v", k, on)
	}
}

func TestAdvanceJitterStaysNearRest(t *testing.T) {
	a := New()
	for i := 0; i < 600; i++ {
		a.Advance(1.0 / 60)
	}
	for i, p := range a.Nucleons {
		for ax := 0; ax < 3; ax++ {
			d := math32.Abs(p.Pos[ax] - p.Rest[ax])
			if d > nucleonJitterAmp*1.01 {
				t.Errorf("nucleon %d axis %d drifted %v from rest", i, ax, d)
			}
		}
	}
}

func TestAdvanceSpinsGuides(t *testing.T) {
	a := New()
	a.Advance(2.0)
	for i, g := range a.Guides {
		if g.Spin != guideSpinRate*2.0 {
			t.Errorf("guide %d spin: got %v, want %v", i, g.Spin, guideSpinRate*2.0)
		}
	}
}

func TestAdvanceElectronTrail(t *testing.T) {
	a := New()
	e := a.Electrons[0]
	if e.Trail.Len() != 0 {
		t.Fatalf("fresh trail length: got %d", e.Trail.Len())
	}
	for i := 0; i < TrailLen+5; i++ {
		a.Advance(1.0 / 60)
	}
	if e.Trail.Len() != TrailLen {
		t.Errorf("trail length after overflow: got %d, want %d", e.Trail.Len(), TrailLen)
	}
	pts := e.Trail.Points(nil)
	if len(pts) != TrailLen {
		t.Fatalf("Points returned %d entries", len(pts))
	}
	if pts[len(pts)-1] != e.Pos {
		t.Error("newest trail point does not match current position")
	}
}

func TestTrailRingOverwritesOldest(t *testing.T) {
	var tr Trail
	for i := 0; i < TrailLen+3; i++ {
		tr.Push([3]float32{float32(i), 0, 0})
	}
	pts := tr.Points(nil)
	if pts[0][0] != 3 {
		t.Errorf("oldest point: got %v, want 3", pts[0][0])
	}
	if pts[len(pts)-1][0] != float32(TrailLen+2) {
		t.Errorf("newest point: got %v, want %d", pts[len(pts)-1][0], TrailLen+2)
	}
}

func TestDisposeOnce(t *testing.T) {
	a := New()
	a.Dispose()
	if !a.Disposed() {
		t.Fatal("Disposed() false after Dispose")
	}
	if len(a.Nucleons) != 0 || len(a.Electrons) != 0 {
		t.Error("particles not released")
	}
	a.Dispose()  // second call must be a no-op
	a.Advance(1) // and animation must not panic on a disposed instance
}

func TestEmphasisScale(t *testing.T) {
	a := New()
	p := a.Nucleons[0]
	if s := a.EmphasisScale(p); s != 1 {
		t.Fatalf("scale without emphasis: got %v, want 1", s)
	}
	a.SetEmphasis(p.Kind)
	s := a.EmphasisScale(p)
	if s < emphasisBaseScale-emphasisPulseAmp || s > emphasisBaseScale+emphasisPulseAmp {
		t.Errorf("emphasis scale %v outside pulse range", s)
	}
	var other *Particle
	for _, n := range a.Nucleons {
		if n.Kind != p.Kind {
			other = n
			break
		}
	}
	if s := a.EmphasisScale(other); s != 1 {
		t.Errorf("non-emphasized kind scaled: got %v", s)
	}
	a.ClearEmphasis()
	if s := a.EmphasisScale(p); s != 1 {
		t.Errorf("scale after ClearEmphasis: got %v, want 1", s)
	}
}

func TestWorldPositionTransform(t *testing.T) {
	a := New()
	a.SetPosition(1, 2, 3)
	a.SetScale(2)
	p := &Particle{Kind: Electron, Pos: [3]float32{1, 0, 0}}
	w := a.WorldPosition(p)
	want := [3]float32{3, 2, 3}
	for i := range want {
		if math32.Abs(w[i]-want[i]) > 1e-5 {
			t.Fatalf("world position: got %v, want %v", w, want)
		}
	}
	a.SetRotationY(math32.Pi / 2)
	w = a.WorldPosition(p)
	// Yaw by +90° maps +X to -Z (right-handed, Y up).
	want = [3]float32{1, 2, 1}
	for i := range want {
		if math32.Abs(w[i]-want[i]) > 1e-5 {
			t.Fatalf("rotated world position: got %v, want %v", w, want)
		}
	}
}

func TestPickParticleNearest(t *testing.T) {
	a := New()
	// Ray from +Z straight at the nucleus center hits the center nucleon.
	p, ok := a.PickParticle([3]float32{0, 0, 5}, [3]float32{0, 0, -1})
	if !ok {
		t.Fatal("expected a pick along the nucleus axis")
	}
	if p.Kind == Electron {
		t.Errorf("picked %v instead of a nucleon", p.Kind)
	}
	if _, ok := a.PickParticle([3]float32{0, 0, 5}, [3]float32{0, 1, 0}); ok {
		t.Error("ray pointing away from the atom should miss")
	}
}

func TestHitsBounds(t *testing.T) {
	a := New()
	a.SetPosition(0, 1, 0)
	if !a.HitsBounds([3]float32{0, 1, 5}, [3]float32{0, 0, -1}) {
		t.Error("centered ray should hit bounds")
	}
	if a.HitsBounds([3]float32{0, 10, 5}, [3]float32{0, 0, -1}) {
		t.Error("offset ray should miss bounds")
	}
}

func TestRotateYHandedness(t *testing.T) {
	v := rotateY([3]float32{0, 0, 1}, math32.Pi/2)
	// +Z rotated by +90° around Y lands on +X.
	if math32.Abs(v[0]-1) > 1e-5 || math32.Abs(v[2]) > 1e-5 {
		t.Errorf("rotateY(+Z, 90°): got %v, want (1,0,0)", v)
	}
}

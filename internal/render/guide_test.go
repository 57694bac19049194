package render

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestGuideDashPointsLieOnRing(t *testing.T) {
	pts := guideDashPoints(2, 0, nil)
	if len(pts) != guideDashes {
		t.Fatalf("dash count: got %d, want %d", len(pts), guideDashes)
	}
	for i, d := range pts {
		for _, p := range d {
			if r := math32.Hypot(p[0], p[2]); math32.Abs(r-2) > 1e-4 {
				t.Fatalf("dash %d endpoint off ring: radius %v", i, r)
			}
			if p[1] != 0 {
				t.Fatalf("dash %d endpoint off plane: y=%v", i, p[1])
			}
		}
	}
}

// The dash pattern must turn with the guide's accumulated spin, so the slow
// ring rotation is visible on screen.
func TestGuideDashPointsRotateWithSpin(t *testing.T) {
	const spin = 0.3
	base := guideDashPoints(1, 0, nil)
	spun := guideDashPoints(1, spin, nil)
	for i := range base {
		a0 := math32.Atan2(base[i][0][2], base[i][0][0])
		a1 := math32.Atan2(spun[i][0][2], spun[i][0][0])
		diff := a1 - a0
		for diff < 0 {
			diff += 2 * math32.Pi
		}
		if math32.Abs(diff-spin) > 1e-4 {
			t.Fatalf("dash %d rotated by %v, want %v", i, diff, spin)
		}
	}
}

package scene

import "github.com/chewxy/math32"

// View is a camera snapshot as plain vectors, so ray math stays independent
// of raylib types and testable.
type View struct {
	Position [3]float32
	Target   [3]float32
	Up       [3]float32
	FovyDeg  float32 // vertical field of view, degrees
}

// basis returns the camera's normalized forward, right and up vectors.
func (v View) basis() (forward, right, up [3]float32) {
	forward = normalize(sub(v.Target, v.Position))
	right = normalize(cross(forward, v.Up))
	up = cross(right, forward)
	return forward, right, up
}

// ScreenRay unprojects a pixel to a world-space ray through the camera.
// x,y are pixel coordinates with the origin at the top-left.
func (v View) ScreenRay(x, y, screenW, screenH float32) (origin, dir [3]float32) {
	forward, right, up := v.basis()
	tanF := math32.Tan(v.FovyDeg * math32.Pi / 360)
	aspect := screenW / screenH
	ndcX := 2*x/screenW - 1
	ndcY := 1 - 2*y/screenH
	dir = normalize(add(forward, add(
		scale(right, ndcX*tanF*aspect),
		scale(up, ndcY*tanF),
	)))
	return v.Position, dir
}

// CenterRay is the ray through the middle of the view.
func (v View) CenterRay() (origin, dir [3]float32) {
	forward, _, _ := v.basis()
	return v.Position, forward
}

// IntersectGround intersects a ray with the Y=0 plane. Rays parallel to the
// plane or pointing away from it miss.
func IntersectGround(origin, dir [3]float32) ([3]float32, bool) {
	const eps = 1e-6
	if dir[1] > -eps {
		return [3]float32{}, false
	}
	t := -origin[1] / dir[1]
	if t < 0 {
		return [3]float32{}, false
	}
	return [3]float32{
		origin[0] + dir[0]*t,
		0,
		origin[2] + dir[2]*t,
	}, true
}

func sub(a, b [3]float32) [3]float32 { return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func add(a, b [3]float32) [3]float32 { return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func scale(a [3]float32, s float32) [3]float32 {
	return [3]float32{a[0] * s, a[1] * s, a[2] * s}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(a [3]float32) [3]float32 {
	n := math32.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	if n == 0 {
		return a
	}
	return scale(a, 1/n)
}

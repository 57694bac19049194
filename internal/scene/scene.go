// Package scene owns the 3D viewpoint: a handheld-style camera orbited with
// the keyboard, a panorama backdrop, the detected-surface grid, and the
// view-center surface probe the placement tracker polls.
package scene

import (
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Mo-Salah9/webar-atom/internal/placement"
)

const (
	gridExtent     = 6
	gridStep       = 1
	gridMinorAlpha = 50
	gridMajorAlpha = 110
	skyboxScale    = 1000
)

// Camera orbit limits. Pitch is kept below horizontal so the view always
// looks down at the surface, like a device held over a table.
const (
	orbitYawSpeed   = 1.4 // rad/s
	orbitPitchSpeed = 0.9
	orbitZoomSpeed  = 2.0 // m/s
	minPitch        = 0.12
	maxPitch        = 1.35
	minDistance     = 0.8
	maxDistance     = 8.0
)

// Surface detection: the probe reports nothing for the first moments after
// startup, and only when the view-center ray meets the floor within range.
const (
	detectWarmupSeconds = 1.5
	maxHitDistance      = 10.0
)

// skyboxPaths are tried in order so the backdrop is found whether run from
// repo root or cmd/atomview. Assets live under assets/skybox/.
var skyboxPaths = []string{
	"assets/skybox/room.png",
	"assets/skybox/room.jpg",
	"../../assets/skybox/room.png",
	"../../assets/skybox/room.jpg",
}

// Scene holds the 3D camera and draws the world backdrop. The camera orbits a
// point on the floor; moving it is the desktop stand-in for walking around
// with a device.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	yaw      float32 // orbit angle around Y
	pitch    float32 // elevation angle above the floor
	distance float32
	elapsed  float32

	// Backdrop: optional equirectangular panorama drawn first in 3D mode.
	skyboxTex       rl.Texture2D
	skyboxMesh      rl.Mesh
	skyboxMtl       rl.Material
	skyboxLoaded    bool
	skyboxPending   bool   // true = path known, GPU load deferred until first Draw (after window/GL exists)
	skyboxPath      string // set when pending; used to load texture on first frame
	skyboxShader    rl.Shader
	skyboxCamPosLoc int32
	skyboxTexLoc    int32
}

// New returns a scene with the camera looking down at the origin from a
// standing viewpoint. Grid is visible by default until the model is placed.
func New() *Scene {
	s := &Scene{
		yaw:         math32.Pi / 2,
		pitch:       0.55,
		distance:    2.6,
		GridVisible: true,
	}
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 55
	s.Camera.Projection = rl.CameraPerspective
	s.applyOrbit()
	s.findSkybox()
	return s
}

// applyOrbit recomputes the camera position from yaw/pitch/distance.
func (s *Scene) applyOrbit() {
	sy, cy := math32.Sincos(s.yaw)
	sp, cp := math32.Sincos(s.pitch)
	s.Camera.Position = rl.NewVector3(
		s.Camera.Target.X+cy*cp*s.distance,
		s.Camera.Target.Y+sp*s.distance,
		s.Camera.Target.Z+sy*cp*s.distance,
	)
}

// Update moves the camera from keyboard input: A/D or arrows orbit, W/S or
// arrows tilt, R/F zoom. The mouse stays free for gestures and the overlay.
// allowInput is false while the console owns the keyboard.
func (s *Scene) Update(dt float32, allowInput bool) {
	s.elapsed += dt
	if !allowInput {
		return
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		s.yaw -= orbitYawSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		s.yaw += orbitYawSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		s.pitch += orbitPitchSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		s.pitch -= orbitPitchSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyR) {
		s.distance -= orbitZoomSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyF) {
		s.distance += orbitZoomSpeed * dt
	}
	s.pitch = clamp(s.pitch, minPitch, maxPitch)
	s.distance = clamp(s.distance, minDistance, maxDistance)
	s.applyOrbit()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View returns the camera as plain vectors for the ray math.
func (s *Scene) View() View {
	return View{
		Position: [3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z},
		Target:   [3]float32{s.Camera.Target.X, s.Camera.Target.Y, s.Camera.Target.Z},
		Up:       [3]float32{s.Camera.Up.X, s.Camera.Up.Y, s.Camera.Up.Z},
		FovyDeg:  s.Camera.Fovy,
	}
}

// Hits implements the placement hit source: the view-center ray intersected
// with the floor plane, within range, after the detection warmup. Empty while
// the surface is not "found".
func (s *Scene) Hits() []placement.Hit {
	if s.elapsed < detectWarmupSeconds {
		return nil
	}
	v := s.View()
	origin, dir := v.CenterRay()
	pos, ok := IntersectGround(origin, dir)
	if !ok {
		return nil
	}
	dx := pos[0] - origin[0]
	dy := pos[1] - origin[1]
	dz := pos[2] - origin[2]
	if dx*dx+dy*dy+dz*dz > maxHitDistance*maxHitDistance {
		return nil
	}
	return []placement.Hit{{Pos: pos}}
}

// SetGridVisible sets whether the detected-surface grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Elapsed returns seconds since the scene was created.
func (s *Scene) Elapsed() float32 { return s.elapsed }

// findSkybox picks the first existing panorama path. GPU loading is deferred
// to ensureSkyboxLoaded (called from Draw) so it runs after the window/OpenGL
// context exists.
func (s *Scene) findSkybox() {
	for _, p := range skyboxPaths {
		cleaned := filepath.Clean(p)
		if _, err := os.Stat(cleaned); err == nil {
			s.skyboxPath = cleaned
			s.skyboxPending = true
			return
		}
	}
}

// ensureSkyboxLoaded runs the first time we Draw with a pending skybox; it
// loads texture, mesh, material and shader after the GL context exists.
func (s *Scene) ensureSkyboxLoaded() {
	if !s.skyboxPending || s.skyboxPath == "" {
		return
	}
	path := s.skyboxPath
	s.skyboxPending = false
	s.skyboxPath = ""

	s.skyboxTex = rl.LoadTexture(path)
	if !rl.IsTextureValid(s.skyboxTex) {
		return
	}
	shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.skyboxTex)
		return
	}
	s.skyboxMesh = rl.GenMeshCube(1, 1, 1)
	s.skyboxMtl = rl.LoadMaterialDefault()
	s.skyboxMtl.Shader = shader
	s.skyboxCamPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
	s.skyboxTexLoc = rl.GetShaderLocation(shader, "skybox")
	s.skyboxShader = shader
	s.skyboxLoaded = true
}

// Equirectangular backdrop shader: samples a 2D panorama by view direction.
const (
	equirectVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	equirectFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D skybox;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(skybox, vec2(u, v));
}
`
)

// DrawBackdrop renders the panorama and, when visible, the surface grid.
// Call between BeginMode3D and EndMode3D, before the model.
func (s *Scene) DrawBackdrop() {
	s.ensureSkyboxLoaded()
	if s.skyboxLoaded {
		drawSkybox(s)
	}
	if s.GridVisible {
		drawSurfaceGrid()
	}
}

// drawSkybox draws the panorama as a large cube centered on the camera.
func drawSkybox(s *Scene) {
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	pos := s.Camera.Position
	scale := rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale)
	trans := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	transform := rl.MatrixMultiply(scale, trans)
	if s.skyboxCamPosLoc >= 0 {
		camPos := []float32{pos.X, pos.Y, pos.Z}
		rl.SetShaderValueV(s.skyboxMtl.Shader, s.skyboxCamPosLoc, camPos, rl.ShaderUniformVec3, 1)
	}
	if s.skyboxTexLoc >= 0 {
		rl.SetShaderValueTexture(s.skyboxMtl.Shader, s.skyboxTexLoc, s.skyboxTex)
	}
	rl.DrawMesh(s.skyboxMesh, s.skyboxMtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

// drawSurfaceGrid draws the detected-floor grid on the XZ plane.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawSurfaceGrid() {
	minor := rl.NewColor(140, 170, 200, gridMinorAlpha)
	major := rl.NewColor(170, 200, 230, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridStep {
		c := minor
		if x == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridStep {
		c := minor
		if z == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}

// Unload releases the backdrop's GPU resources.
func (s *Scene) Unload() {
	if !s.skyboxLoaded {
		return
	}
	rl.UnloadMesh(&s.skyboxMesh)
	rl.UnloadTexture(s.skyboxTex)
	rl.UnloadShader(s.skyboxShader)
	s.skyboxLoaded = false
}

// Package render draws the atom model and placement cursor with raylib. It
// reads model state each frame and owns all GPU resources: meshes are created
// lazily on first use so allocation happens after the window/OpenGL context
// exists.
package render

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds mesh and material for one mesh kind. Created lazily on first draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Renderer caches meshes and the lighting shader and tracks the per-frame
// view state needed for shading.
type Renderer struct {
	cache    map[string]cached
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame

	trailBuf [][3]float32    // scratch for electron trails, reused across frames
	dashBuf  [][2][3]float32 // scratch for orbit guide dashes

	// err records the first shader compile failure; Warmup reports it.
	err error
}

// New returns a renderer with no GPU resources yet.
func New() *Renderer {
	return &Renderer{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call
// once per frame before drawing so lit meshes get correct shading.
func (r *Renderer) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// sphereRings and sphereSlices control sphere mesh resolution. Particles are
// small on screen, so a modest tessellation is enough.
const sphereRings = 16
const sphereSlices = 16

// glow shells are large and translucent, so they get a smoother mesh.
const shellRings = 24
const shellSlices = 24

// ensureSphere creates a unit-diameter sphere mesh under the given key with
// the lit shader attached.
func (r *Renderer) ensureSphere(key string, rings, slices int) {
	if _, ok := r.cache[key]; ok {
		return
	}
	// Radius 0.5 so diameter = 1; draw scale is then the world diameter.
	mesh := rl.GenMeshSphere(0.5, rings, slices)
	mtl := rl.LoadMaterialDefault()
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if rl.IsShaderValid(shader) {
		mtl.Shader = shader
	} else if r.err == nil {
		r.err = errors.New("lit shader failed to compile")
	}
	r.cache[key] = cached{mesh: mesh, mtl: mtl}
}

// Warmup creates the shared meshes and shader eagerly so a broken render
// pipeline surfaces at startup instead of on the first draw. Needs a live GL
// context.
func (r *Renderer) Warmup() error {
	r.ensureSphere("particle", sphereRings, sphereSlices)
	r.ensureSphere("shell", shellRings, shellSlices)
	return r.err
}

// drawSphere draws a cached sphere at position with uniform scale (the world
// diameter) and a per-draw tint. Alpha below 255 renders translucent.
func (r *Renderer) drawSphere(key string, position [3]float32, diameter float32, tint rl.Color) {
	c, ok := r.cache[key]
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	if diameter == 0 {
		diameter = 1
	}
	scaleM := rl.MatrixScale(diameter, diameter, diameter)
	transM := rl.MatrixTranslate(position[0], position[1], position[2])
	rl.DrawMesh(c.mesh, c.mtl, rl.MatrixMultiply(scaleM, transM))
}

// Unload releases GPU resources. Call once when the window is closing.
func (r *Renderer) Unload() {
	for key, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadShader(c.mtl.Shader)
		delete(r.cache, key)
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// defaultLightColor is a soft warm-white for the directional light.
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

// defaultLightIntensity scales the directional diffuse (0–1).
const defaultLightIntensity = float32(0.75)

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(48.0)

// defaultSpecularStrength scales specular contribution (0–1).
const defaultSpecularStrength = float32(0.35)

// setLitShaderUniforms sets viewPos, lightDir, ambient, light color/intensity, and specular on the given shader (cgo-safe: local arrays).
func (r *Renderer) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-composer/internal/lighting"
)

// maxPointLights must match MAX_POINT_LIGHTS in the fragment shader.
const maxPointLights = 8

// Lit shader: ambient + hemisphere + up to maxPointLights point lights with
// distance falloff + one directional light. Same vertex attributes as raylib
// meshes: vertexPosition, vertexTexCoord, vertexNormal.
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
#define MAX_POINT_LIGHTS 8
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 ambientColor;
uniform float ambientIntensity;
uniform vec3 hemiSky;
uniform vec3 hemiGround;
uniform float hemiIntensity;
uniform float pointCount;
uniform vec3 pointPos[MAX_POINT_LIGHTS];
uniform vec3 pointColor[MAX_POINT_LIGHTS];
uniform float pointIntensity[MAX_POINT_LIGHTS];
uniform float pointFalloff[MAX_POINT_LIGHTS];
uniform float pointExponent[MAX_POINT_LIGHTS];
uniform vec3 dirPos;
uniform vec3 dirColor;
uniform float dirIntensity;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 lit = ambientColor * ambientIntensity;
  float hemiMix = N.y * 0.5 + 0.5;
  lit += mix(hemiGround, hemiSky, hemiMix) * hemiIntensity;
  for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
    if (float(i) >= pointCount) { break; }
    vec3 toLight = pointPos[i] - fragPosition;
    float dist = length(toLight);
    vec3 L = toLight / max(dist, 0.0001);
    float NdotL = max(dot(N, L), 0.0);
    float atten = 1.0 / (1.0 + pow(dist / max(pointFalloff[i], 0.0001), pointExponent[i]));
    lit += pointColor[i] * pointIntensity[i] * NdotL * atten;
  }
  vec3 Ld = normalize(dirPos);
  lit += dirColor * dirIntensity * max(dot(N, Ld), 0.0);
  finalColor = vec4(tint.rgb * lit, tint.a);
}
`
)

// lightUniforms caches shader locations for the rig uniforms so they are
// looked up once, not per frame.
type lightUniforms struct {
	shader rl.Shader

	ambientColor, ambientIntensity   int32
	hemiSky, hemiGround, hemiIntensity int32
	pointCount                        int32
	pointPos, pointColor              [maxPointLights]int32
	pointIntensity, pointFalloff      [maxPointLights]int32
	pointExponent                     [maxPointLights]int32
	dirPos, dirColor, dirIntensity    int32
}

func newLightUniforms() lightUniforms {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	u := lightUniforms{shader: sh}
	u.ambientColor = rl.GetShaderLocation(sh, "ambientColor")
	u.ambientIntensity = rl.GetShaderLocation(sh, "ambientIntensity")
	u.hemiSky = rl.GetShaderLocation(sh, "hemiSky")
	u.hemiGround = rl.GetShaderLocation(sh, "hemiGround")
	u.hemiIntensity = rl.GetShaderLocation(sh, "hemiIntensity")
	u.pointCount = rl.GetShaderLocation(sh, "pointCount")
	for i := 0; i < maxPointLights; i++ {
		u.pointPos[i] = rl.GetShaderLocation(sh, fmt.Sprintf("pointPos[%d]", i))
		u.pointColor[i] = rl.GetShaderLocation(sh, fmt.Sprintf("pointColor[%d]", i))
		u.pointIntensity[i] = rl.GetShaderLocation(sh, fmt.Sprintf("pointIntensity[%d]", i))
		u.pointFalloff[i] = rl.GetShaderLocation(sh, fmt.Sprintf("pointFalloff[%d]", i))
		u.pointExponent[i] = rl.GetShaderLocation(sh, fmt.Sprintf("pointExponent[%d]", i))
	}
	u.dirPos = rl.GetShaderLocation(sh, "dirPos")
	u.dirColor = rl.GetShaderLocation(sh, "dirColor")
	u.dirIntensity = rl.GetShaderLocation(sh, "dirIntensity")
	return u
}

func setVec3(sh rl.Shader, loc int32, v [3]float32) {
	if loc >= 0 {
		arr := []float32{v[0], v[1], v[2]}
		rl.SetShaderValueV(sh, loc, arr, rl.ShaderUniformVec3, 1)
	}
}

func setFloat(sh rl.Shader, loc int32, v float32) {
	if loc >= 0 {
		rl.SetShaderValue(sh, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

// apply pushes the combined room and furniture rigs into the shader. A nil
// room rig (preset off, or no room loaded) zeroes the point and hemisphere
// terms; the furniture rig always contributes ambient and directional.
func (u *lightUniforms) apply(room *lighting.Rig, furniture lighting.Rig) {
	ambient := furniture.Ambient
	if room != nil {
		// Room ambient dominates when present; furniture ambient still fills.
		ambient = room.Ambient
		ambient.Intensity += furniture.Ambient.Intensity * 0.25
	}
	setVec3(u.shader, u.ambientColor, ambient.Color)
	setFloat(u.shader, u.ambientIntensity, ambient.Intensity)

	if room != nil && room.Hemisphere != nil {
		setVec3(u.shader, u.hemiSky, room.Hemisphere.SkyColor)
		setVec3(u.shader, u.hemiGround, room.Hemisphere.GroundColor)
		setFloat(u.shader, u.hemiIntensity, room.Hemisphere.Intensity)
	} else {
		setFloat(u.shader, u.hemiIntensity, 0)
	}

	n := 0
	if room != nil {
		for _, p := range room.Points {
			if n >= maxPointLights {
				break
			}
			setVec3(u.shader, u.pointPos[n], p.Position)
			setVec3(u.shader, u.pointColor[n], p.Color)
			setFloat(u.shader, u.pointIntensity[n], p.Intensity)
			setFloat(u.shader, u.pointFalloff[n], p.FalloffDistance)
			setFloat(u.shader, u.pointExponent[n], p.FalloffExponent)
			n++
		}
	}
	setFloat(u.shader, u.pointCount, float32(n))

	if d := furniture.Directional; d != nil {
		setVec3(u.shader, u.dirPos, d.Position)
		setVec3(u.shader, u.dirColor, d.Color)
		setFloat(u.shader, u.dirIntensity, d.Intensity)
	} else {
		setFloat(u.shader, u.dirIntensity, 0)
	}
}

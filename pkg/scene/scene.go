// Package scene defines the scene graph snapshot read by the renderer:
// objects, lights, camera, and engine configuration.
package scene

import (
	"math"

	"github.com/facetlab/facet/pkg/math3d"
	"github.com/facetlab/facet/pkg/mesh"
)

// Object is a single parametric solid placed in the scene.
// The renderer treats objects as read-only snapshots; only the
// owning Store mutates them between frames.
type Object struct {
	ID       string
	Name     string
	Kind     mesh.Kind
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler angles in radians
	Scale    math3d.Vec3
	Material Material
	Visible  bool
	Locked   bool // blocks editor transforms, ignored by the renderer
}

// Material holds the surface appearance of an object. Only Color is
// consumed by the render core; the shading coefficients are carried
// for editor round-tripping.
type Material struct {
	Color    string // #rrggbb hex, or any CSS color passed through unlit
	Ambient  float64
	Diffuse  float64
	Specular float64
}

// Camera positions the viewer. Position.Z doubles as the dolly
// distance and Position.X/Y are the pan offset; the renderer reads
// both, falling back to the Config defaults when Z or FOV is unset.
// Near and Far are advisory only, the projector enforces its own
// floor.
type Camera struct {
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler angles in radians
	FOV      float64
	Near     float64
	Far      float64
}

// LightKind selects the light contribution model.
type LightKind string

// Supported light kinds.
const (
	LightAmbient     LightKind = "ambient"
	LightDirectional LightKind = "directional"
)

// Light is immutable per render call.
type Light struct {
	Kind      LightKind
	Color     string
	Intensity float64
	Direction math3d.Vec3 // world space, directional only
}

// Scene is the snapshot handed to the renderer each frame.
type Scene struct {
	Objects    []Object
	Lights     []Light
	Camera     Camera
	SelectedID string
}

// Config carries the engine constants the renderer needs beyond the
// scene itself.
type Config struct {
	FOV            float64 // projection strength, > 0
	CameraDistance float64 // default dolly distance
	LightDirection math3d.Vec3
	LightIntensity float64
	AmbientLevel   float64
}

// DefaultConfig returns the engine defaults used by the viewer.
func DefaultConfig() Config {
	return Config{
		FOV:            800,
		CameraDistance: 500,
		LightDirection: math3d.V3(0.5, 1, 0.75).Normalize(),
		LightIntensity: 0.8,
		AmbientLevel:   0.4,
	}
}

// DefaultLights builds the standard two-light rig from the config.
func DefaultLights(cfg Config) []Light {
	return []Light{
		{Kind: LightAmbient, Color: "#ffffff", Intensity: cfg.AmbientLevel},
		{Kind: LightDirectional, Color: "#ffffff", Intensity: cfg.LightIntensity, Direction: cfg.LightDirection},
	}
}

// FlatLights returns a single full ambient light, the "unlit" rig the
// editor toggles to.
func FlatLights() []Light {
	return []Light{
		{Kind: LightAmbient, Color: "#ffffff", Intensity: 1},
	}
}

// DefaultCamera returns a camera dollied back to the config distance,
// pitched down slightly toward the origin.
func DefaultCamera(cfg Config) Camera {
	return Camera{
		Position: math3d.V3(0, 0, cfg.CameraDistance),
		Rotation: math3d.V3(-0.3, math.Pi/6, 0),
		FOV:      cfg.FOV,
		Near:     10,
		Far:      5000,
	}
}

// Package mesh generates object-local face lists for the parametric
// primitive kinds. Every generator is a pure function of (size, time):
// identical inputs produce identical face lists, which is what lets the
// pipeline regenerate meshes each frame without caching.
package mesh

import "github.com/facetlab/facet/pkg/math3d"

// DefaultSize is the intrinsic extent of generated primitives; object
// scale multiplies on top of it.
const DefaultSize = 100.0

// Kind identifies a primitive generator.
type Kind string

// Primitive kinds.
const (
	KindBox         Kind = "box"
	KindSphere      Kind = "sphere"
	KindCylinder    Kind = "cylinder"
	KindTorus       Kind = "torus"
	KindCone        Kind = "cone"
	KindPyramid     Kind = "pyramid"
	KindMetaballs   Kind = "metaballs"
	KindFluidBlob   Kind = "fluidBlob"
	KindCloudVolume Kind = "cloudVolume"
)

// Kinds lists every recognized primitive kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindBox, KindSphere, KindCylinder, KindTorus, KindCone,
		KindPyramid, KindMetaballs, KindFluidBlob, KindCloudVolume,
	}
}

// Animated reports whether the kind's geometry depends on the time
// parameter.
func (k Kind) Animated() bool {
	switch k {
	case KindMetaballs, KindFluidBlob, KindCloudVolume:
		return true
	}
	return false
}

// Face is an ordered planar loop of 3 or 4 object-local vertices.
// Color is an optional per-face base color; when empty the owning
// object's material color applies. The loop order fixes the raw
// normal sign via (v1-v0)×(v2-v0).
type Face struct {
	Vertices []math3d.Vec3
	Color    string
}

type generator func(size, t float64) []Face

var generators = map[Kind]generator{
	KindBox:         Box,
	KindSphere:      Sphere,
	KindCylinder:    Cylinder,
	KindTorus:       Torus,
	KindCone:        Cone,
	KindPyramid:     Pyramid,
	KindMetaballs:   Metaballs,
	KindFluidBlob:   FluidBlob,
	KindCloudVolume: CloudVolume,
}

// Generate produces the face list for a primitive kind. Unrecognized
// kinds fall back to the box generator.
func Generate(kind Kind, size, t float64) []Face {
	gen, ok := generators[kind]
	if !ok {
		gen = Box
	}
	return gen(size, t)
}

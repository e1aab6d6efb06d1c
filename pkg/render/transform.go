// Package render implements the geometry-to-pixels pipeline: object and
// camera transforms, backface culling, lighting, perspective projection,
// and painter's-algorithm depth ordering. Everything here is a pure
// function over read-only snapshots; the renderer never mutates the
// scene and allocates a fresh result each call.
package render

import (
	"github.com/facetlab/facet/pkg/math3d"
	"github.com/facetlab/facet/pkg/scene"
)

// TransformPoint maps an object-local point to world space. The order
// is fixed: componentwise scale, then the X-Y-Z Euler rotation, then
// translation.
func TransformPoint(p, position, rotation, scl math3d.Vec3) math3d.Vec3 {
	return p.Mul(scl).RotateEuler(rotation).Add(position)
}

// WorldToCamera maps a world-space point into camera space: the camera
// pan offset (X/Y only; Z is the dolly distance consumed by the
// projector) is subtracted, then the camera's Euler rotation applied.
func WorldToCamera(p math3d.Vec3, cam scene.Camera) math3d.Vec3 {
	return p.Sub(math3d.V3(cam.Position.X, cam.Position.Y, 0)).RotateEuler(cam.Rotation)
}

// transformFace runs every vertex of a local-space loop through the
// object and camera transforms in one pass.
func transformFace(verts []math3d.Vec3, obj scene.Object, cam scene.Camera) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(verts))
	for i, v := range verts {
		out[i] = WorldToCamera(TransformPoint(v, obj.Position, obj.Rotation, obj.Scale), cam)
	}
	return out
}

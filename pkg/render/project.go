package render

import "github.com/facetlab/facet/pkg/math3d"

// MinDepth is the floor on the effective projection depth. Clamping
// here keeps the scale finite as a vertex approaches the camera plane
// instead of diverging to infinity.
const MinDepth = 10.0

// Project perspective-divides a camera-space vertex into screen space.
// The effective depth is the camera-space Z shifted by the dolly
// distance; screen Y is flipped because screen coordinates grow
// downward. No clipping happens here: out-of-frame points are emitted
// as-is and left to the drawing surface to crop.
func Project(v math3d.Vec3, width, height int, fov, cameraDistance float64) math3d.Vec2 {
	depth := v.Z + cameraDistance
	scale := fov / MinDepth
	if depth > MinDepth {
		scale = fov / depth
	}
	return math3d.V2(
		v.X*scale+float64(width)/2,
		-v.Y*scale+float64(height)/2,
	)
}

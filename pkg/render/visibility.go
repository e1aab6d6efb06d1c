package render

import "github.com/facetlab/facet/pkg/math3d"

// CullEpsilon is the slack on the backface test. A strictly positive
// value keeps near-edge-on faces from dropping out at grazing angles,
// which would open visible seams between adjacent faces of the curved
// primitives under perspective distortion.
const CullEpsilon = 0.15

// Normal returns the face normal from the first three vertices of the
// loop, normalized. Degenerate faces (fewer than 3 vertices, or a
// zero-area corner) yield the {0,0,1} fallback instead of failing.
//
// The sign follows the generator winding, which every primitive in
// pkg/mesh guarantees to be outward. An earlier revision re-oriented
// normals at runtime against the object center; that heuristic breaks
// on the concave volumetric kinds, so the winding is the single source
// of truth now.
func Normal(verts []math3d.Vec3) math3d.Vec3 {
	if len(verts) < 3 {
		return math3d.V3(0, 0, 1)
	}
	n := verts[1].Sub(verts[0]).Cross(verts[2].Sub(verts[0])).Normalize()
	if n == math3d.Zero3() {
		return math3d.V3(0, 0, 1)
	}
	return n
}

// Centroid returns the arithmetic mean of the vertex loop.
func Centroid(verts []math3d.Vec3) math3d.Vec3 {
	if len(verts) == 0 {
		return math3d.Zero3()
	}
	var sum math3d.Vec3
	for _, v := range verts {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(verts)))
}

// Visible reports whether a camera-space face survives backface
// culling. The eye sits at {0,0,-cameraDistance} under the projector's
// depth convention; a face is kept iff the angle between its outward
// normal and the view ray clears the epsilon slack. The boundary is
// inclusive: dot == CullEpsilon keeps the face.
func Visible(normal, centroid math3d.Vec3, cameraDistance float64) bool {
	view := centroid.Sub(math3d.V3(0, 0, -cameraDistance)).Normalize()
	return normal.Dot(view) <= CullEpsilon
}

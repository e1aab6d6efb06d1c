package render

import "github.com/facetlab/facet/pkg/math3d"

// HitTest finds the object under a screen point. Faces come in painter
// order (back to front), so the scan runs from the end to honor
// occlusion. Returns the front-most owning object ID.
func HitTest(faces []ProjectedFace, x, y float64) (string, bool) {
	for i := len(faces) - 1; i >= 0; i-- {
		if pointInPolygon(faces[i].Points, x, y) {
			return faces[i].ObjectID, true
		}
	}
	return "", false
}

// pointInPolygon is an even-odd crossing test.
func pointInPolygon(points []math3d.Vec2, x, y float64) bool {
	if len(points) < 3 {
		return false
	}
	inside := false
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		if (a.Y <= y) == (b.Y <= y) {
			continue
		}
		t := (y - a.Y) / (b.Y - a.Y)
		if x < a.X+t*(b.X-a.X) {
			inside = !inside
		}
	}
	return inside
}

package render

import (
	"sort"

	"github.com/facetlab/facet/pkg/math3d"
	"github.com/facetlab/facet/pkg/mesh"
	"github.com/facetlab/facet/pkg/scene"
)

// ProjectedFace is one screen-space polygon ready for the drawing
// surface. Faces are created fresh each call and never mutated; the
// consumer paints them strictly in slice order to realize the
// painter's algorithm.
type ProjectedFace struct {
	// CameraVerts holds the camera-space vertex loop the polygon was
	// projected from.
	CameraVerts []math3d.Vec3
	// Points is the 2D screen polygon (same loop order, >= 3 points).
	Points []math3d.Vec2
	// Color is the final lit CSS-compatible color string.
	Color string
	// Depth is the camera-space Z of the face centroid, the painter's
	// sort key.
	Depth float64
	// Intensity is the accumulated light intensity in [0, 1].
	Intensity float64
	// ObjectID names the owning scene object.
	ObjectID string
	// Selected mirrors the scene's selected-object id at render time.
	Selected bool
}

// Render runs the full pipeline over a scene snapshot and returns the
// depth-ordered polygon list for one frame. animationTime only feeds
// the time-parameterized mesh kinds. The function is pure: identical
// inputs yield identical output, and no input is mutated.
func Render(s scene.Scene, cfg scene.Config, width, height int, animationTime float64) []ProjectedFace {
	// The camera snapshot wins over the engine defaults: Position.Z is
	// the live dolly distance and FOV the live projection strength.
	// Zero values mean the scene never set them, so the config fills in.
	dist := s.Camera.Position.Z
	if dist == 0 {
		dist = cfg.CameraDistance
	}
	fov := s.Camera.FOV
	if fov <= 0 {
		fov = cfg.FOV
	}

	var out []ProjectedFace

	for _, obj := range s.Objects {
		if !obj.Visible {
			// Skipping generation entirely is an optimization the
			// contract allows: invisible objects contribute nothing.
			continue
		}

		faces := mesh.Generate(obj.Kind, mesh.DefaultSize, animationTime)
		for _, f := range faces {
			verts := transformFace(f.Vertices, obj, s.Camera)
			normal := Normal(verts)
			centroid := Centroid(verts)
			if !Visible(normal, centroid, dist) {
				continue
			}

			intensity := Intensity(normal, s.Lights, s.Camera.Rotation)
			base := f.Color
			if base == "" {
				base = obj.Material.Color
			}

			points := make([]math3d.Vec2, len(verts))
			for i, v := range verts {
				points[i] = Project(v, width, height, fov, dist)
			}

			out = append(out, ProjectedFace{
				CameraVerts: verts,
				Points:      points,
				Color:       ApplyLighting(base, intensity),
				Depth:       centroid.Z,
				Intensity:   intensity,
				ObjectID:    obj.ID,
				Selected:    obj.ID == s.SelectedID,
			})
		}
	}

	// Painter's order: farthest first. Larger effective depth is
	// farther under the projector's convention, so sort descending by
	// centroid Z. The sort must be stable so co-depth faces keep their
	// generation order and don't flicker between frames.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})

	return out
}

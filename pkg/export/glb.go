// Package export writes scene geometry to binary glTF so models built
// in the editor can travel to external tools.
package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/facetlab/facet/pkg/mesh"
	"github.com/facetlab/facet/pkg/render"
	"github.com/facetlab/facet/pkg/scene"
)

const fallbackColor = "#808080"

// WriteGLB generates every visible object at animation time t, bakes
// the object transform into world-space vertices, and saves the lot as
// a .glb file. Face colors ride along as COLOR_0 vertex attributes.
func WriteGLB(path string, s scene.Scene, t float64) error {
	doc, err := BuildDocument(s, t)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}

// BuildDocument assembles the glTF document for a scene snapshot. One
// mesh and one node per visible object, triangulated with a fan per
// face loop.
func BuildDocument(s scene.Scene, t float64) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "facet"

	exported := 0
	for _, obj := range s.Objects {
		if !obj.Visible {
			continue
		}

		positions, colors, indices := flatten(obj, t)
		if len(positions) == 0 {
			continue
		}

		posAcc := modeler.WritePosition(doc, positions)
		colAcc := modeler.WriteColor(doc, colors)
		idxAcc := modeler.WriteIndices(doc, indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: obj.Name,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(idxAcc),
				Attributes: gltf.PrimitiveAttributes{
					gltf.POSITION: posAcc,
					gltf.COLOR_0:  colAcc,
				},
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: obj.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
		exported++
	}

	if exported == 0 {
		return nil, fmt.Errorf("no visible objects to export")
	}
	return doc, nil
}

// flatten generates and triangulates one object. Vertices are emitted
// per face (no sharing) so each loop keeps its flat color.
func flatten(obj scene.Object, t float64) ([][3]float32, [][4]uint8, []uint32) {
	faces := mesh.Generate(obj.Kind, mesh.DefaultSize, t)

	var positions [][3]float32
	var colors [][4]uint8
	var indices []uint32

	for _, f := range faces {
		if len(f.Vertices) < 3 {
			continue
		}
		base := uint32(len(positions))
		rgba := faceRGBA(f, obj)
		for _, v := range f.Vertices {
			w := render.TransformPoint(v, obj.Position, obj.Rotation, obj.Scale)
			positions = append(positions, [3]float32{float32(w.X), float32(w.Y), float32(w.Z)})
			colors = append(colors, rgba)
		}
		// Fan triangulation keeps the loop's outward winding, which
		// matches glTF's CCW front faces.
		for i := 2; i < len(f.Vertices); i++ {
			indices = append(indices, base, base+uint32(i-1), base+uint32(i))
		}
	}
	return positions, colors, indices
}

func faceRGBA(f mesh.Face, obj scene.Object) [4]uint8 {
	hex := f.Color
	if hex == "" {
		hex = obj.Material.Color
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallbackColor)
	}
	r, g, b := c.RGB255()
	return [4]uint8{r, g, b, 255}
}

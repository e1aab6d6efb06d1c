package main

import (
	"github.com/facetlab/facet/pkg/math3d"
	"github.com/facetlab/facet/pkg/mesh"
	"github.com/facetlab/facet/pkg/scene"
)

// demoStore seeds a starter scene so the viewer has something on screen
// before the first object is added.
func demoStore() *scene.Store {
	st := scene.NewStore(scene.DefaultConfig())

	add := func(kind mesh.Kind, name string, pos math3d.Vec3) {
		st.AddObject(kind, name)
		st.TranslateSelected(pos, math3d.AxisNone)
	}

	add(mesh.KindBox, "crate", math3d.V3(-140, 0, 0))
	add(mesh.KindSphere, "orb", math3d.V3(0, 0, -60))
	add(mesh.KindTorus, "ring", math3d.V3(140, 0, 0))
	add(mesh.KindMetaballs, "goo", math3d.V3(0, 140, 60))

	return st
}

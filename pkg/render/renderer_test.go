package render

import (
	"math"
	"testing"

	"github.com/facetlab/facet/pkg/math3d"
	"github.com/facetlab/facet/pkg/mesh"
	"github.com/facetlab/facet/pkg/scene"
)

func testConfig() scene.Config {
	return scene.Config{FOV: 800, CameraDistance: 500}
}

func boxObject(id string, color string) scene.Object {
	return scene.Object{
		ID:       id,
		Kind:     mesh.KindBox,
		Scale:    math3d.One3(),
		Material: scene.Material{Color: color},
		Visible:  true,
	}
}

func frontCamera() scene.Camera {
	return scene.Camera{Position: math3d.V3(0, 0, 500)}
}

func ambientOnly() []scene.Light {
	return []scene.Light{{Kind: scene.LightAmbient, Color: "#ffffff", Intensity: 1}}
}

// A single box viewed dead-on: the face turned toward the camera
// survives, the far face is culled, and the four side faces graze the
// view at dot ≈ 0.0995, inside the epsilon slack, so they survive too.
func TestRenderSingleBoxHeadOn(t *testing.T) {
	s := scene.Scene{
		Objects: []scene.Object{boxObject("box", "#ffffff")},
		Lights:  ambientOnly(),
		Camera:  frontCamera(),
	}

	out := Render(s, testConfig(), 800, 600, 0)

	if len(out) != 5 {
		t.Fatalf("rendered %d faces, want 5 (facing face plus four grazing sides)", len(out))
	}
	for i, f := range out {
		if f.Intensity != 1 {
			t.Errorf("face %d intensity = %v, want 1", i, f.Intensity)
		}
		if f.Color != "rgb(255,255,255)" {
			t.Errorf("face %d color = %q, want full-brightness white", i, f.Color)
		}
		if f.ObjectID != "box" {
			t.Errorf("face %d owner = %q", i, f.ObjectID)
		}
		if len(f.Points) != 4 {
			t.Errorf("face %d has %d screen points", i, len(f.Points))
		}
	}

	// The facing face is nearest, so the painter's order puts it last,
	// and its centroid projects to the viewport center.
	front := out[len(out)-1]
	var cx, cy float64
	for _, p := range front.Points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(front.Points))
	cy /= float64(len(front.Points))
	if math.Abs(cx-400) > 2 || math.Abs(cy-300) > 2 {
		t.Errorf("front face centroid projected to (%v, %v), want near (400, 300)", cx, cy)
	}
}

func TestRenderInvisibleObjectsContributeNothing(t *testing.T) {
	a := boxObject("a", "#ff0000")
	b := boxObject("b", "#00ff00")
	a.Visible = false
	b.Visible = false

	s := scene.Scene{
		Objects: []scene.Object{a, b},
		Lights:  ambientOnly(),
		Camera:  frontCamera(),
	}

	if out := Render(s, testConfig(), 800, 600, 0); len(out) != 0 {
		t.Errorf("rendered %d faces, want 0 for an all-invisible scene", len(out))
	}
}

func TestRenderOutputCountSumsVisibleObjects(t *testing.T) {
	a := boxObject("a", "#ff0000")
	b := boxObject("b", "#00ff00")
	b.Visible = false
	c := boxObject("c", "#0000ff")
	c.Position = math3d.V3(200, 0, 0)

	s := scene.Scene{
		Objects: []scene.Object{a, b, c},
		Lights:  ambientOnly(),
		Camera:  frontCamera(),
	}

	single := Render(scene.Scene{
		Objects: []scene.Object{a},
		Lights:  ambientOnly(),
		Camera:  frontCamera(),
	}, testConfig(), 800, 600, 0)
	offset := Render(scene.Scene{
		Objects: []scene.Object{c},
		Lights:  ambientOnly(),
		Camera:  frontCamera(),
	}, testConfig(), 800, 600, 0)

	out := Render(s, testConfig(), 800, 600, 0)
	if len(out) != len(single)+len(offset) {
		t.Errorf("combined scene rendered %d faces, want %d", len(out), len(single)+len(offset))
	}
	for _, f := range out {
		if f.ObjectID == "b" {
			t.Error("invisible object leaked faces into the output")
		}
	}
}

// Two identical boxes produce pairwise co-depth faces; the stable sort
// must keep the first object's face ahead of the second's within every
// equal-depth group, frame after frame.
func TestRenderDepthSortStable(t *testing.T) {
	s := scene.Scene{
		Objects: []scene.Object{boxObject("first", "#ffffff"), boxObject("second", "#ffffff")},
		Lights:  ambientOnly(),
		Camera:  frontCamera(),
	}

	out := Render(s, testConfig(), 800, 600, 0)

	for i := 1; i < len(out); i++ {
		if out[i].Depth > out[i-1].Depth+eps {
			t.Fatalf("faces %d and %d out of depth order: %v before %v", i-1, i, out[i-1].Depth, out[i].Depth)
		}
		if out[i].Depth == out[i-1].Depth &&
			out[i-1].ObjectID == "second" && out[i].ObjectID == "first" {
			t.Fatalf("stable sort violated at %d: second-object face overtook first-object face at depth %v", i, out[i].Depth)
		}
	}
}

func TestRenderSelectionFlag(t *testing.T) {
	s := scene.Scene{
		Objects:    []scene.Object{boxObject("a", "#ffffff"), boxObject("b", "#ffffff")},
		Lights:     ambientOnly(),
		Camera:     frontCamera(),
		SelectedID: "b",
	}

	out := Render(s, testConfig(), 800, 600, 0)
	for _, f := range out {
		if f.Selected != (f.ObjectID == "b") {
			t.Errorf("face of %q has Selected=%v", f.ObjectID, f.Selected)
		}
	}
}

func TestRenderDoesNotMutateScene(t *testing.T) {
	obj := boxObject("a", "#ffffff")
	obj.Position = math3d.V3(1, 2, 3)
	s := scene.Scene{
		Objects: []scene.Object{obj},
		Lights:  ambientOnly(),
		Camera:  frontCamera(),
	}

	_ = Render(s, testConfig(), 800, 600, 0)

	if !vecNear(s.Objects[0].Position, math3d.V3(1, 2, 3)) {
		t.Error("Render mutated an input object")
	}
	if s.Lights[0].Intensity != 1 {
		t.Error("Render mutated an input light")
	}
}

func TestRenderDeterministic(t *testing.T) {
	st := scene.Scene{
		Objects: []scene.Object{
			boxObject("a", "#ff0000"),
			{ID: "m", Kind: mesh.KindMetaballs, Scale: math3d.One3(), Material: scene.Material{Color: "#3498db"}, Visible: true},
		},
		Lights: ambientOnly(),
		Camera: frontCamera(),
	}

	a := Render(st, testConfig(), 800, 600, 1.5)
	b := Render(st, testConfig(), 800, 600, 1.5)

	if len(a) != len(b) {
		t.Fatalf("repeated renders differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Depth != b[i].Depth || a[i].Color != b[i].Color || a[i].ObjectID != b[i].ObjectID {
			t.Fatalf("repeated renders diverge at face %d", i)
		}
	}
}

// frontFaceWidth renders a lone box dead-on at the given dolly
// distance and measures the projected width of the nearest face.
func frontFaceWidth(t *testing.T, cam scene.Camera) float64 {
	t.Helper()
	s := scene.Scene{
		Objects: []scene.Object{boxObject("box", "#ffffff")},
		Lights:  ambientOnly(),
		Camera:  cam,
	}
	out := Render(s, testConfig(), 800, 600, 0)
	if len(out) == 0 {
		t.Fatal("nothing rendered")
	}
	front := out[len(out)-1]
	minX, maxX := front.Points[0].X, front.Points[0].X
	for _, p := range front.Points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}
	return maxX - minX
}

// Dollying the camera must change the projection: the wheel and the
// store mutate Camera.Position.Z, and the renderer reads it as the
// live camera distance.
func TestRenderDollyChangesProjection(t *testing.T) {
	near := frontFaceWidth(t, scene.Camera{Position: math3d.V3(0, 0, 200)})
	far := frontFaceWidth(t, scene.Camera{Position: math3d.V3(0, 0, 2000)})

	if near == far {
		t.Fatalf("projected width %v unchanged by dolly from 200 to 2000", near)
	}
	if near <= far {
		t.Errorf("near dolly width %v not larger than far dolly width %v", near, far)
	}

	// Front face at Z 200: depth = -50 + 200 = 150, scale = 800/150,
	// so the 100-unit face spans 100 * 800/150 pixels.
	want := 100 * 800.0 / 150
	if math.Abs(near-want) > 1e-9 {
		t.Errorf("near dolly width = %v, want %v", near, want)
	}
}

// An unset camera (zero Position.Z, zero FOV) falls back to the config
// defaults, so it renders identically to a camera set to those values.
func TestRenderCameraDefaultsFromConfig(t *testing.T) {
	implicit := frontFaceWidth(t, scene.Camera{})
	explicit := frontFaceWidth(t, scene.Camera{
		Position: math3d.V3(0, 0, testConfig().CameraDistance),
		FOV:      testConfig().FOV,
	})
	if implicit != explicit {
		t.Errorf("zero camera width %v differs from config-default camera width %v", implicit, explicit)
	}
}

// Camera.FOV overrides the config projection strength when set.
func TestRenderCameraFOVOverride(t *testing.T) {
	base := frontFaceWidth(t, scene.Camera{Position: math3d.V3(0, 0, 500)})
	wide := frontFaceWidth(t, scene.Camera{Position: math3d.V3(0, 0, 500), FOV: 1600})

	if math.Abs(wide-2*base) > 1e-9 {
		t.Errorf("doubling FOV scaled width from %v to %v, want exactly double", base, wide)
	}
}

func BenchmarkRenderBoxScene(b *testing.B) {
	s := scene.Scene{
		Objects: []scene.Object{boxObject("a", "#ff0000"), boxObject("b", "#00ff00"), boxObject("c", "#0000ff")},
		Lights:  ambientOnly(),
		Camera:  frontCamera(),
	}
	cfg := testConfig()

	for b.Loop() {
		_ = Render(s, cfg, 800, 600, 0)
	}
}

func BenchmarkRenderMetaballs(b *testing.B) {
	s := scene.Scene{
		Objects: []scene.Object{{ID: "m", Kind: mesh.KindMetaballs, Scale: math3d.One3(), Material: scene.Material{Color: "#3498db"}, Visible: true}},
		Lights:  ambientOnly(),
		Camera:  frontCamera(),
	}
	cfg := testConfig()

	for b.Loop() {
		_ = Render(s, cfg, 800, 600, 1.5)
	}
}

package mesh

import (
	"math"
	"reflect"
	"testing"

	"github.com/facetlab/facet/pkg/math3d"
)

func faceNormal(f Face) math3d.Vec3 {
	v0, v1, v2 := f.Vertices[0], f.Vertices[1], f.Vertices[2]
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}

func faceCentroid(f Face) math3d.Vec3 {
	var sum math3d.Vec3
	for _, v := range f.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(f.Vertices)))
}

func TestBox(t *testing.T) {
	const size = 100.0
	faces := Box(size, 0)

	if len(faces) != 6 {
		t.Fatalf("Box emitted %d faces, want 6", len(faces))
	}
	for i, f := range faces {
		if len(f.Vertices) != 4 {
			t.Errorf("face %d has %d vertices, want 4", i, len(f.Vertices))
		}
		for _, v := range f.Vertices {
			for _, c := range []float64{v.X, v.Y, v.Z} {
				if math.Abs(math.Abs(c)-size/2) > 1e-12 {
					t.Errorf("face %d vertex coordinate %v, want magnitude %v", i, c, size/2)
				}
			}
		}
	}
}

// Outward winding is the source of truth for the cull stage: every
// solid generator must emit faces whose raw normal points away from
// the object center.
func TestSolidWindingOutward(t *testing.T) {
	kinds := []Kind{KindBox, KindSphere, KindCylinder, KindTorus, KindCone, KindPyramid}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			for i, f := range Generate(kind, 100, 0) {
				c := faceCentroid(f)
				outward := c
				if kind == KindTorus {
					// For a torus "outward" means away from the tube
					// core, not the object origin.
					core := math3d.V3(c.X, 0, c.Z).Normalize().Scale(50)
					outward = c.Sub(core)
				}
				if faceNormal(f).Dot(outward.Normalize()) <= 0 {
					t.Errorf("face %d normal %v points inward (centroid %v)", i, faceNormal(f), c)
				}
			}
		})
	}
}

func TestSphereFaceCounts(t *testing.T) {
	faces := Sphere(100, 0)

	want := defaultSegments * defaultSegments
	if len(faces) != want {
		t.Fatalf("Sphere emitted %d faces, want %d", len(faces), want)
	}
	tris, quads := 0, 0
	for _, f := range faces {
		switch len(f.Vertices) {
		case 3:
			tris++
		case 4:
			quads++
		default:
			t.Fatalf("unexpected face arity %d", len(f.Vertices))
		}
		if f.Color == "" {
			t.Fatal("sphere faces must carry the gradient color")
		}
	}
	if tris != 2*defaultSegments {
		t.Errorf("polar triangles = %d, want %d", tris, 2*defaultSegments)
	}
	if quads != (defaultSegments-2)*defaultSegments {
		t.Errorf("interior quads = %d, want %d", quads, (defaultSegments-2)*defaultSegments)
	}
}

func TestGenerateFallback(t *testing.T) {
	got := Generate(Kind("hyperdonut"), 80, 0)
	want := Box(80, 0)

	if !reflect.DeepEqual(got, want) {
		t.Error("unknown kind should fall back to the box generator")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			a := Generate(kind, 100, 1.25)
			b := Generate(kind, 100, 1.25)
			if !reflect.DeepEqual(a, b) {
				t.Error("identical inputs must produce identical face lists")
			}
		})
	}
}

func TestAnimatedKindsMove(t *testing.T) {
	for _, kind := range []Kind{KindMetaballs, KindFluidBlob, KindCloudVolume} {
		t.Run(string(kind), func(t *testing.T) {
			if !kind.Animated() {
				t.Fatalf("%s should report Animated", kind)
			}
			a := Generate(kind, 100, 0)
			b := Generate(kind, 100, 2.5)
			if reflect.DeepEqual(a, b) {
				t.Error("time-parameterized geometry did not change with t")
			}
		})
	}
}

func TestMetaballsSurfaceCells(t *testing.T) {
	faces := Metaballs(100, 0)

	if len(faces) == 0 {
		t.Fatal("metaballs emitted no surface cells")
	}
	for i, f := range faces {
		if len(f.Vertices) != 4 {
			t.Fatalf("face %d has %d vertices, want quads only", i, len(f.Vertices))
		}
		for _, v := range f.Vertices {
			if math.Abs(v.X) > 50+1e-9 || math.Abs(v.Y) > 50+1e-9 || math.Abs(v.Z) > 50+1e-9 {
				t.Errorf("face %d vertex %v escapes the sampling volume", i, v)
			}
		}
	}
}

func BenchmarkMetaballs(b *testing.B) {
	for b.Loop() {
		_ = Metaballs(100, 1.5)
	}
}

func BenchmarkSphere(b *testing.B) {
	for b.Loop() {
		_ = Sphere(100, 0)
	}
}

package mesh

import (
	"math"

	"github.com/facetlab/facet/pkg/math3d"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Default tessellation density for the curved primitives.
const defaultSegments = 16

func quad(a, b, c, d math3d.Vec3) Face {
	return Face{Vertices: []math3d.Vec3{a, b, c, d}}
}

func tri(a, b, c math3d.Vec3) Face {
	return Face{Vertices: []math3d.Vec3{a, b, c}}
}

// Box emits the 6 quads of an axis-aligned cube. The winding below is
// hand-verified to face outward, so no runtime correction is needed.
func Box(size, _ float64) []Face {
	h := size / 2
	v := [8]math3d.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}

	return []Face{
		quad(v[4], v[5], v[6], v[7]), // front  +z
		quad(v[1], v[0], v[3], v[2]), // back   -z
		quad(v[5], v[1], v[2], v[6]), // right  +x
		quad(v[0], v[4], v[7], v[3]), // left   -x
		quad(v[3], v[7], v[6], v[2]), // top    +y
		quad(v[0], v[1], v[5], v[4]), // bottom -y
	}
}

// Sphere tessellates a latitude/longitude grid. Interior cells emit
// quads, the polar bands emit triangle fans. Face colors grade hue by
// longitude and lightness by latitude; the gradient is cosmetic and
// plays no part in shading.
func Sphere(size, _ float64) []Face {
	r := size / 2
	rows, cols := defaultSegments, defaultSegments

	point := func(i, j int) math3d.Vec3 {
		theta := math.Pi * float64(i) / float64(rows)
		phi := 2 * math.Pi * float64(j) / float64(cols)
		return math3d.V3(
			r*math.Sin(theta)*math.Cos(phi),
			r*math.Cos(theta),
			r*math.Sin(theta)*math.Sin(phi),
		)
	}
	shade := func(i, j int) string {
		hue := 360 * float64(j) / float64(cols)
		light := 0.35 + 0.35*float64(i)/float64(rows)
		return colorful.Hsl(hue, 0.55, light).Hex()
	}

	var faces []Face
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p00 := point(i, j)
			p01 := point(i, j+1)
			p10 := point(i+1, j)
			p11 := point(i+1, j+1)

			switch {
			case i == 0:
				// p00 and p01 coincide at the pole; fan from it.
				f := tri(p00, p11, p10)
				f.Color = shade(i, j)
				faces = append(faces, f)
			case i == rows-1:
				f := tri(p00, p01, p10)
				f.Color = shade(i, j)
				faces = append(faces, f)
			default:
				f := quad(p00, p01, p11, p10)
				f.Color = shade(i, j)
				faces = append(faces, f)
			}
		}
	}
	return faces
}

// Cylinder emits side quads per angular segment plus triangle-fan caps
// sharing a center vertex.
func Cylinder(size, _ float64) []Face {
	r := size / 2
	h := size / 2
	segs := defaultSegments
	top := math3d.V3(0, h, 0)
	bot := math3d.V3(0, -h, 0)

	var faces []Face
	for i := 0; i < segs; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segs)
		a1 := 2 * math.Pi * float64(i+1) / float64(segs)
		x0, z0 := r*math.Cos(a0), r*math.Sin(a0)
		x1, z1 := r*math.Cos(a1), r*math.Sin(a1)

		p0b := math3d.V3(x0, -h, z0)
		p1b := math3d.V3(x1, -h, z1)
		p0t := math3d.V3(x0, h, z0)
		p1t := math3d.V3(x1, h, z1)

		faces = append(faces,
			quad(p0b, p0t, p1t, p1b),
			tri(top, p1t, p0t),
			tri(bot, p0b, p1b),
		)
	}
	return faces
}

// Torus sweeps a minor circle around the major radius. The vertex
// order runs the tube loop before the main loop: the naive main-loop-
// major order faces inward, so the reversed order here is a required
// winding fix, not a stylistic choice.
func Torus(size, _ float64) []Face {
	major := size / 2
	minor := size / 6
	segs := defaultSegments

	point := func(i, j int) math3d.Vec3 {
		u := 2 * math.Pi * float64(i) / float64(segs)
		v := 2 * math.Pi * float64(j) / float64(segs)
		ring := major + minor*math.Cos(v)
		return math3d.V3(
			ring*math.Cos(u),
			minor*math.Sin(v),
			ring*math.Sin(u),
		)
	}

	var faces []Face
	for i := 0; i < segs; i++ {
		for j := 0; j < segs; j++ {
			faces = append(faces, quad(
				point(i, j),
				point(i, j+1),
				point(i+1, j+1),
				point(i+1, j),
			))
		}
	}
	return faces
}

// Cone emits side triangles from a base ring to the apex plus a
// triangle-fan base cap. There is no top cap.
func Cone(size, _ float64) []Face {
	r := size / 2
	h := size / 2
	segs := defaultSegments
	apex := math3d.V3(0, h, 0)
	bot := math3d.V3(0, -h, 0)

	var faces []Face
	for i := 0; i < segs; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segs)
		a1 := 2 * math.Pi * float64(i+1) / float64(segs)
		p0b := math3d.V3(r*math.Cos(a0), -h, r*math.Sin(a0))
		p1b := math3d.V3(r*math.Cos(a1), -h, r*math.Sin(a1))

		faces = append(faces,
			tri(p1b, p0b, apex),
			tri(bot, p0b, p1b),
		)
	}
	return faces
}

// Pyramid is the quad-base analogue of Cone: four side triangles and a
// square base.
func Pyramid(size, _ float64) []Face {
	a := size / 2
	apex := math3d.V3(0, a, 0)
	base := [4]math3d.Vec3{
		{X: -a, Y: -a, Z: -a},
		{X: a, Y: -a, Z: -a},
		{X: a, Y: -a, Z: a},
		{X: -a, Y: -a, Z: a},
	}

	faces := make([]Face, 0, 5)
	for i := 0; i < 4; i++ {
		b0 := base[i]
		b1 := base[(i+1)%4]
		faces = append(faces, tri(b1, b0, apex))
	}
	faces = append(faces, quad(base[0], base[1], base[2], base[3]))
	return faces
}

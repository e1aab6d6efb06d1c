package mesh

import (
	"math"

	"github.com/facetlab/facet/pkg/math3d"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Field-sampling parameters shared by the volumetric kinds. The grid
// scan is O(gridCells³) per object per frame and deliberately uncached;
// determinism wins over speed here.
const (
	gridCells      = 12
	fieldThreshold = 1.0
	puffRows       = 6
	puffCols       = 8
)

type blob struct {
	center math3d.Vec3
	radius float64
}

// metaballBlobs places the moving field sources for time t.
func metaballBlobs(size, t float64) []blob {
	const k = 4
	blobs := make([]blob, k)
	for i := range blobs {
		phase := 2 * math.Pi * float64(i) / k
		blobs[i] = blob{
			center: math3d.V3(
				0.22*size*math.Sin(1.1*t+phase),
				0.18*size*math.Cos(0.9*t+2*phase),
				0.22*size*math.Sin(0.7*t+phase+1.3),
			),
			radius: size * (0.13 + 0.03*float64(i%2)),
		}
	}
	return blobs
}

// fieldAt sums the classic inverse-square metaball contribution of
// every blob at p.
func fieldAt(p math3d.Vec3, blobs []blob) float64 {
	sum := 0.0
	for _, b := range blobs {
		d := p.Sub(b.center).LenSq()
		if d < 1e-6 {
			d = 1e-6
		}
		sum += b.radius * b.radius / d
	}
	return sum
}

// Metaballs approximates the isosurface of a moving sum-of-blobs
// field. A coarse grid is scanned; any cell whose corner samples
// straddle the threshold emits a single quad oriented along the axis
// of largest central-difference gradient. This is a visual proxy, not
// marching cubes: cells yield at most one axis-aligned quad.
func Metaballs(size, t float64) []Face {
	blobs := metaballBlobs(size, t)
	half := size / 2
	cell := size / gridCells

	// Corner samples on the (gridCells+1)^3 lattice.
	const n = gridCells + 1
	samples := make([]float64, n*n*n)
	at := func(i, j, k int) float64 { return samples[(i*n+j)*n+k] }
	corner := func(i, j, k int) math3d.Vec3 {
		return math3d.V3(
			-half+float64(i)*cell,
			-half+float64(j)*cell,
			-half+float64(k)*cell,
		)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				samples[(i*n+j)*n+k] = fieldAt(corner(i, j, k), blobs)
			}
		}
	}

	var faces []Face
	for i := 0; i < gridCells; i++ {
		for j := 0; j < gridCells; j++ {
			for k := 0; k < gridCells; k++ {
				inside, outside := false, false
				for c := 0; c < 8; c++ {
					v := at(i+(c&1), j+(c>>1&1), k+(c>>2&1))
					if v < fieldThreshold {
						inside = true
					} else {
						outside = true
					}
				}
				if !inside || !outside {
					continue
				}
				center := corner(i, j, k).Add(math3d.V3(cell/2, cell/2, cell/2))
				faces = append(faces, surfaceQuad(center, cell/2, fieldGradient(center, cell, blobs), metaballShade(center, size)))
			}
		}
	}
	return faces
}

// fieldGradient estimates the field gradient at p by central
// differences with step h.
func fieldGradient(p math3d.Vec3, h float64, blobs []blob) math3d.Vec3 {
	return math3d.V3(
		fieldAt(p.Add(math3d.V3(h, 0, 0)), blobs)-fieldAt(p.Sub(math3d.V3(h, 0, 0)), blobs),
		fieldAt(p.Add(math3d.V3(0, h, 0)), blobs)-fieldAt(p.Sub(math3d.V3(0, h, 0)), blobs),
		fieldAt(p.Add(math3d.V3(0, 0, h)), blobs)-fieldAt(p.Sub(math3d.V3(0, 0, h)), blobs),
	)
}

// surfaceQuad builds one axis-aligned quad at center, perpendicular to
// the dominant gradient axis. The field grows toward the interior, so
// the outward direction is the negated gradient; the winding follows it.
func surfaceQuad(c math3d.Vec3, s float64, grad math3d.Vec3, color string) Face {
	out := grad.Negate()
	abs := out.Abs()

	var f Face
	switch {
	case abs.X >= abs.Y && abs.X >= abs.Z:
		f = quad(
			math3d.V3(c.X, c.Y-s, c.Z-s),
			math3d.V3(c.X, c.Y+s, c.Z-s),
			math3d.V3(c.X, c.Y+s, c.Z+s),
			math3d.V3(c.X, c.Y-s, c.Z+s),
		)
		if out.X < 0 {
			f = reverse(f)
		}
	case abs.Y >= abs.Z:
		f = quad(
			math3d.V3(c.X-s, c.Y, c.Z-s),
			math3d.V3(c.X-s, c.Y, c.Z+s),
			math3d.V3(c.X+s, c.Y, c.Z+s),
			math3d.V3(c.X+s, c.Y, c.Z-s),
		)
		if out.Y < 0 {
			f = reverse(f)
		}
	default:
		f = quad(
			math3d.V3(c.X-s, c.Y-s, c.Z),
			math3d.V3(c.X+s, c.Y-s, c.Z),
			math3d.V3(c.X+s, c.Y+s, c.Z),
			math3d.V3(c.X-s, c.Y+s, c.Z),
		)
		if out.Z < 0 {
			f = reverse(f)
		}
	}
	f.Color = color
	return f
}

func reverse(f Face) Face {
	out := Face{Color: f.Color, Vertices: make([]math3d.Vec3, len(f.Vertices))}
	for i, v := range f.Vertices {
		out.Vertices[len(f.Vertices)-1-i] = v
	}
	return out
}

func metaballShade(c math3d.Vec3, size float64) string {
	h := 190 + 120*math3d.Clamp(c.Y/size+0.5, 0, 1)
	return colorful.Hsl(h, 0.5, 0.55).Hex()
}

// FluidBlob renders a cluster of time-phased sphere puffs, a visual
// proxy for a fluid particle simulation.
func FluidBlob(size, t float64) []Face {
	const k = 5
	var faces []Face
	for i := 0; i < k; i++ {
		phase := 2 * math.Pi * float64(i) / k
		center := math3d.V3(
			0.18*size*math.Sin(1.3*t+phase),
			0.12*size*math.Sin(1.7*t+2*phase),
			0.18*size*math.Cos(1.1*t+phase),
		)
		r := size * (0.16 + 0.05*math.Sin(2*t+3*phase))
		light := 0.45 + 0.08*float64(i)/k
		faces = append(faces, puff(center, math3d.V3(r, r, r), colorful.Hsl(210, 0.65, light).Hex())...)
	}
	return faces
}

// CloudVolume renders a drifting ring of flattened ellipsoid puffs.
func CloudVolume(size, t float64) []Face {
	const k = 6
	var faces []Face
	for i := 0; i < k; i++ {
		phase := 2 * math.Pi * float64(i) / k
		center := math3d.V3(
			0.24*size*math.Cos(phase+0.15*t),
			0.08*size*math.Sin(0.8*t+phase),
			0.24*size*math.Sin(phase+0.15*t),
		)
		r := size * (0.2 + 0.06*math.Sin(0.6*t+phase))
		light := 0.78 + 0.06*math.Sin(phase)
		faces = append(faces, puff(center, math3d.V3(r, 0.55*r, r), colorful.Hsl(215, 0.1, light).Hex())...)
	}
	return faces
}

// puff emits a low-resolution ellipsoid at an offset, sharing the
// sphere grid layout and winding.
func puff(offset, radii math3d.Vec3, color string) []Face {
	point := func(i, j int) math3d.Vec3 {
		theta := math.Pi * float64(i) / float64(puffRows)
		phi := 2 * math.Pi * float64(j) / float64(puffCols)
		return math3d.V3(
			radii.X*math.Sin(theta)*math.Cos(phi),
			radii.Y*math.Cos(theta),
			radii.Z*math.Sin(theta)*math.Sin(phi),
		).Add(offset)
	}

	var faces []Face
	for i := 0; i < puffRows; i++ {
		for j := 0; j < puffCols; j++ {
			p00 := point(i, j)
			p01 := point(i, j+1)
			p10 := point(i+1, j)
			p11 := point(i+1, j+1)

			var f Face
			switch {
			case i == 0:
				f = tri(p00, p11, p10)
			case i == puffRows-1:
				f = tri(p00, p01, p10)
			default:
				f = quad(p00, p01, p11, p10)
			}
			f.Color = color
			faces = append(faces, f)
		}
	}
	return faces
}

package math3d

import "math"

// RotateX rotates the vector about the X axis through the origin
// (right-handed, angle in radians).
func (a Vec3) RotateX(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		a.X,
		a.Y*c - a.Z*s,
		a.Y*s + a.Z*c,
	}
}

// RotateY rotates the vector about the Y axis through the origin.
func (a Vec3) RotateY(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		a.X*c + a.Z*s,
		a.Y,
		-a.X*s + a.Z*c,
	}
}

// RotateZ rotates the vector about the Z axis through the origin.
func (a Vec3) RotateZ(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		a.X*c - a.Y*s,
		a.X*s + a.Y*c,
		a.Z,
	}
}

// RotateEuler applies the three axis rotations in the fixed order
// X, then Y, then Z. The order is part of the contract: Euler
// composition is not commutative and every transform in the pipeline
// relies on this exact sequence.
func (a Vec3) RotateEuler(r Vec3) Vec3 {
	return a.RotateX(r.X).RotateY(r.Y).RotateZ(r.Z)
}

// Axis names a set of axes a vector may be constrained to.
type Axis string

// Axis sets accepted by ConstrainAxis.
const (
	AxisNone Axis = "none"
	AxisX    Axis = "x"
	AxisY    Axis = "y"
	AxisZ    Axis = "z"
	AxisXY   Axis = "xy"
	AxisXZ   Axis = "xz"
	AxisYZ   Axis = "yz"
)

// ConstrainAxis zeroes every component outside the named axis set.
// AxisNone (and any unrecognized name) passes the vector through
// unconstrained.
func (a Vec3) ConstrainAxis(axis Axis) Vec3 {
	switch axis {
	case AxisX:
		return Vec3{a.X, 0, 0}
	case AxisY:
		return Vec3{0, a.Y, 0}
	case AxisZ:
		return Vec3{0, 0, a.Z}
	case AxisXY:
		return Vec3{a.X, a.Y, 0}
	case AxisXZ:
		return Vec3{a.X, 0, a.Z}
	case AxisYZ:
		return Vec3{0, a.Y, a.Z}
	default:
		return a
	}
}

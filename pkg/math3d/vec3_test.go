package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps &&
		math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Z-b.Z) < eps
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
	}{
		{"unit x", V3(1, 0, 0)},
		{"diagonal", V3(1, 1, 1)},
		{"tiny", V3(1e-8, 2e-8, -3e-8)},
		{"large", V3(1e8, -2e8, 5e8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.in.Normalize()
			if math.Abs(n.Len()-1) > eps {
				t.Errorf("Normalize(%v).Len() = %v, want 1", tc.in, n.Len())
			}
		})
	}

	t.Run("zero vector", func(t *testing.T) {
		if got := Zero3().Normalize(); got != Zero3() {
			t.Errorf("Normalize(zero) = %v, want zero", got)
		}
	})
}

func TestArithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	if got := a.Add(b); !vecNear(got, V3(5, -3, 9)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !vecNear(got, V3(-3, 7, -3)) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); !vecNear(got, V3(4, -10, 18)) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Div(V3(2, 4, 3)); !vecNear(got, V3(0.5, 0.5, 1)) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Scale(2); !vecNear(got, V3(2, 4, 6)) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); math.Abs(got-12) > eps {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestCross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z := V3(0, 0, 1)

	if got := x.Cross(y); !vecNear(got, z) {
		t.Errorf("x × y = %v, want %v", got, z)
	}
	if got := y.Cross(x); !vecNear(got, z.Negate()) {
		t.Errorf("y × x = %v, want %v", got, z.Negate())
	}
	if got := x.Cross(x); !vecNear(got, Zero3()) {
		t.Errorf("x × x = %v, want zero", got)
	}
}

func TestLerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, -20, 30)

	if got := a.Lerp(b, 0); !vecNear(got, a) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !vecNear(got, b) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); !vecNear(got, V3(5, -10, 15)) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := Lerp(2, 4, 0.25); math.Abs(got-2.5) > eps {
		t.Errorf("scalar Lerp = %v, want 2.5", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v, want 0.5", got)
	}
	if got := V3(-2, 0.5, 9).Clamp(0, 1); !vecNear(got, V3(0, 0.5, 1)) {
		t.Errorf("Vec3.Clamp = %v", got)
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		step float64
		want Vec3
	}{
		{"quarter grid", V3(1.1, 2.6, -0.4), 0.5, V3(1, 2.5, -0.5)},
		{"integer grid", V3(3.4, 3.5, 3.6), 1, V3(3, 4, 4)},
		{"zero step passthrough", V3(1.23, 4.56, 7.89), 0, V3(1.23, 4.56, 7.89)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Snap(tc.step); !vecNear(got, tc.want) {
				t.Errorf("Snap(%v, %v) = %v, want %v", tc.in, tc.step, got, tc.want)
			}
		})
	}
}

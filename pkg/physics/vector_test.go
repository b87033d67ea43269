package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecNear(a, b Vector3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVector3_AddSubScale(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: -4, Y: 5, Z: 0.5}

	if got := a.Add(b); !vecNear(got, Vector3{X: -3, Y: 7, Z: 3.5}, epsilon) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !vecNear(got, Vector3{X: 5, Y: -3, Z: 2.5}, epsilon) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); !vecNear(got, Vector3{X: 2, Y: 4, Z: 6}, epsilon) {
		t.Errorf("Scale = %v", got)
	}
}

func TestVector3_Length(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want float64
	}{
		{"zero", Vector3{}, 0},
		{"unit x", Vector3{X: 1}, 1},
		{"pythagorean", Vector3{X: 3, Y: 4, Z: 0}, 5},
		{"3d", Vector3{X: 2, Y: 3, Z: 6}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Length() = %f, want %f", got, tt.want)
			}
			if got := tt.v.LengthSquared(); math.Abs(got-tt.want*tt.want) > epsilon {
				t.Errorf("LengthSquared() = %f, want %f", got, tt.want*tt.want)
			}
		})
	}
}

func TestVector3_Normalize(t *testing.T) {
	v := Vector3{X: 0, Y: 3, Z: 4}
	n := v.Normalize()
	if math.Abs(n.Length()-1) > epsilon {
		t.Errorf("normalized length = %f, want 1", n.Length())
	}
	if !vecNear(n, Vector3{Y: 0.6, Z: 0.8}, epsilon) {
		t.Errorf("Normalize() = %v", n)
	}
}

func TestVector3_Normalize_Zero(t *testing.T) {
	// Documented guard: the zero vector maps to the zero vector, no NaNs.
	n := Vector3{}.Normalize()
	if !vecNear(n, Vector3{}, 0) {
		t.Errorf("Normalize(zero) = %v, want zero", n)
	}
	if !n.IsFinite() {
		t.Error("Normalize(zero) produced non-finite components")
	}
}

func TestVector3_DotCross(t *testing.T) {
	x := Vector3{X: 1}
	y := Vector3{Y: 1}
	z := Vector3{Z: 1}

	if got := x.Dot(y); got != 0 {
		t.Errorf("x.Dot(y) = %f, want 0", got)
	}
	if got := x.Cross(y); !vecNear(got, z, epsilon) {
		t.Errorf("x.Cross(y) = %v, want %v", got, z)
	}
	if got := y.Cross(x); !vecNear(got, z.Neg(), epsilon) {
		t.Errorf("y.Cross(x) = %v, want %v", got, z.Neg())
	}
}

func TestVector3_Distance(t *testing.T) {
	a := Vector3{X: 1, Y: 1, Z: 1}
	b := Vector3{X: 1, Y: 1, Z: 5}
	if got := a.Distance(b); math.Abs(got-4) > epsilon {
		t.Errorf("Distance = %f, want 4", got)
	}
}

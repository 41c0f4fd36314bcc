package math

import (
	gomath "math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("zero vector normalized to %v, want zero", zero)
	}
}

func TestVec3IsFinite(t *testing.T) {
	nan := float32(gomath.NaN())
	inf := float32(gomath.Inf(1))

	cases := []struct {
		v    Vec3
		want bool
	}{
		{Vec3{1, 2, 3}, true},
		{Vec3{}, true},
		{Vec3{nan, 0, 0}, false},
		{Vec3{0, inf, 0}, false},
		{Vec3{0, 0, -inf}, false},
	}
	for _, c := range cases {
		if got := c.v.IsFinite(); got != c.want {
			t.Errorf("IsFinite(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestQuatRotateVec3(t *testing.T) {
	// 90 degrees around Z maps +X to +Y.
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, gomath.Pi/2)
	got := q.RotateVec3(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if got.Sub(want).Length() > 1e-5 {
		t.Errorf("RotateVec3 = %v, want %v", got, want)
	}
}

func TestQuatRotatePreservesLength(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 1, 0}.Normalize(), 0.7)
	v := Vec3{2, -1, 3}
	got := q.RotateVec3(v).Length()
	want := v.Length()
	if diff := got - want; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("rotated length = %v, want %v", got, want)
	}
}

func TestQuatMulComposesRotations(t *testing.T) {
	qz := QuatFromAxisAngle(Vec3{0, 0, 1}, gomath.Pi/2)
	qx := QuatFromAxisAngle(Vec3{1, 0, 0}, gomath.Pi/2)

	// Apply qz then qx: +X -> +Y -> +Z.
	combined := qx.Mul(qz)
	got := combined.RotateVec3(Vec3{1, 0, 0})
	want := Vec3{0, 0, 1}
	if got.Sub(want).Length() > 1e-5 {
		t.Errorf("composed rotation = %v, want %v", got, want)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Identity()
	v := Vec3{1, 2, 3}
	if got := m.TransformVec3(v); got != v {
		t.Errorf("Identity().TransformVec3(%v) = %v", v, got)
	}
}

func TestMat4LookAtOrigin(t *testing.T) {
	// Camera at +Z looking at origin: origin maps in front of the camera
	// (negative view-space Z).
	view := LookAt(Vec3{0, 0, 10}, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformVec3(Vec3{})
	if got.Z >= 0 {
		t.Errorf("origin in view space = %v, want negative Z", got)
	}
}

func TestMat4MulTranslate(t *testing.T) {
	a := Translate(1, 0, 0)
	b := Translate(0, 2, 0)
	got := a.Mul(b).TransformVec3(Vec3{})
	want := Vec3{1, 2, 0}
	if got != want {
		t.Errorf("composed translation = %v, want %v", got, want)
	}
}

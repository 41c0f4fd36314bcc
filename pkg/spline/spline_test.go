package spline

import (
	"errors"
	"testing"

	"github.com/Faultbox/coastermesh/pkg/math"
)

func TestCatmullRomPassesThroughControlPoints(t *testing.T) {
	pts := []math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 0},
		{X: 3, Y: 2, Z: 1},
		{X: 4, Y: 0, Z: 2},
	}
	c, err := NewCatmullRom(pts, false)
	if err != nil {
		t.Fatal(err)
	}

	segs := float32(len(pts) - 1)
	for i, p := range pts {
		got := c.PointAt(float32(i) / segs)
		if got.Sub(p).Length() > 1e-5 {
			t.Errorf("PointAt(%d/%v) = %v, want %v", i, segs, got, p)
		}
	}
}

func TestCatmullRomEndpoints(t *testing.T) {
	pts := []math.Vec3{{X: -2}, {X: 0, Y: 1}, {X: 2}}
	c, err := NewCatmullRom(pts, false)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.PointAt(0); got.Sub(pts[0]).Length() > 1e-6 {
		t.Errorf("PointAt(0) = %v, want %v", got, pts[0])
	}
	if got := c.PointAt(1); got.Sub(pts[2]).Length() > 1e-6 {
		t.Errorf("PointAt(1) = %v, want %v", got, pts[2])
	}
}

func TestCatmullRomTangentMatchesFiniteDifference(t *testing.T) {
	pts := []math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 1, Z: 0},
		{X: 3, Y: 3, Z: 2},
		{X: 5, Y: 2, Z: 4},
		{X: 6, Y: 0, Z: 5},
	}
	c, err := NewCatmullRom(pts, false)
	if err != nil {
		t.Fatal(err)
	}

	const h = 1e-3
	for _, tt := range []float32{0.1, 0.3, 0.55, 0.72, 0.9} {
		analytic := c.TangentAt(tt)
		numeric := c.PointAt(tt + h).Sub(c.PointAt(tt - h)).Normalize()
		if analytic.Sub(numeric).Length() > 1e-2 {
			t.Errorf("t=%v: analytic tangent %v vs numeric %v", tt, analytic, numeric)
		}
	}
}

func TestCatmullRomTangentIsUnit(t *testing.T) {
	pts := []math.Vec3{{X: 0}, {X: 1, Y: 1}, {X: 2, Z: 1}, {X: 3, Y: -1}}
	c, err := NewCatmullRom(pts, false)
	if err != nil {
		t.Fatal(err)
	}
	for tt := float32(0); tt <= 1; tt += 0.05 {
		l := c.TangentAt(tt).Length()
		if l < 1-1e-5 || l > 1+1e-5 {
			t.Errorf("TangentAt(%v).Length() = %v", tt, l)
		}
	}
}

func TestCatmullRomClosedWraps(t *testing.T) {
	pts := []math.Vec3{
		{X: 1, Z: 0},
		{X: 0, Z: 1},
		{X: -1, Z: 0},
		{X: 0, Z: -1},
	}
	c, err := NewCatmullRom(pts, true)
	if err != nil {
		t.Fatal(err)
	}

	if !c.Closed() {
		t.Fatal("Closed() = false")
	}
	// t=0 and t=1 meet at the same point with the same tangent.
	if diff := c.PointAt(0).Sub(c.PointAt(1)).Length(); diff > 1e-5 {
		t.Errorf("closed spline endpoints differ by %v", diff)
	}
	if diff := c.TangentAt(0).Sub(c.TangentAt(1)).Length(); diff > 1e-4 {
		t.Errorf("closed spline end tangents differ by %v", diff)
	}
}

func TestCatmullRomDropsDuplicatePoints(t *testing.T) {
	pts := []math.Vec3{{X: 0}, {X: 0}, {X: 1}, {X: 1}, {X: 2}}
	c, err := NewCatmullRom(pts, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(c.points); got != 3 {
		t.Errorf("kept %d points, want 3", got)
	}
}

func TestCatmullRomTooFewPoints(t *testing.T) {
	for _, pts := range [][]math.Vec3{
		nil,
		{{X: 1}},
		{{X: 1}, {X: 1}}, // duplicates collapse to one
	} {
		_, err := NewCatmullRom(pts, false)
		if !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("NewCatmullRom(%v): err = %v, want ErrTooFewPoints", pts, err)
		}
	}
}

func TestLine(t *testing.T) {
	l := Line{From: math.Vec3{}, To: math.Vec3{Z: 10}}

	if got := l.PointAt(0.5); got != (math.Vec3{Z: 5}) {
		t.Errorf("PointAt(0.5) = %v, want {0 0 5}", got)
	}
	if got := l.TangentAt(0.3); got != (math.Vec3{Z: 1}) {
		t.Errorf("TangentAt(0.3) = %v, want {0 0 1}", got)
	}
}

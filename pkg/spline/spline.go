// Package spline provides parametric 3D curves that satisfy the
// track.Curve contract: point and unit-tangent queries over t in [0,1].
package spline

import (
	"errors"
	"fmt"

	"github.com/Faultbox/coastermesh/pkg/math"
)

// ErrTooFewPoints is returned when a spline is built from fewer than two
// distinct control points.
var ErrTooFewPoints = errors.New("spline: need at least 2 distinct control points")

// CatmullRom is a Catmull-Rom spline through its control points, with
// uniform parameterization per segment. The curve passes through every
// control point; a closed spline wraps the last point back to the first.
type CatmullRom struct {
	points []math.Vec3
	closed bool
}

// NewCatmullRom builds a spline through the given points. Duplicate
// adjacent points are dropped (they would produce zero-length tangents).
func NewCatmullRom(points []math.Vec3, closed bool) (*CatmullRom, error) {
	pts := make([]math.Vec3, 0, len(points))
	for _, p := range points {
		if len(pts) > 0 && p.Sub(pts[len(pts)-1]).Length() < 1e-7 {
			continue
		}
		pts = append(pts, p)
	}
	if closed && len(pts) > 1 && pts[len(pts)-1].Sub(pts[0]).Length() < 1e-7 {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewPoints, len(pts))
	}
	return &CatmullRom{points: pts, closed: closed}, nil
}

// Closed reports whether the spline wraps around.
func (c *CatmullRom) Closed() bool {
	return c.closed
}

// segment locates the control quad and local parameter for t.
func (c *CatmullRom) segment(t float32) (p0, p1, p2, p3 math.Vec3, u float32) {
	n := len(c.points)
	segs := n - 1
	if c.closed {
		segs = n
	}

	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	s := t * float32(segs)
	i := int(s)
	if i >= segs {
		i = segs - 1
	}
	u = s - float32(i)

	at := func(j int) math.Vec3 {
		if c.closed {
			return c.points[((j%n)+n)%n]
		}
		if j < 0 {
			// Phantom point mirroring the first segment.
			return c.points[0].Scale(2).Sub(c.points[1])
		}
		if j >= n {
			return c.points[n-1].Scale(2).Sub(c.points[n-2])
		}
		return c.points[j]
	}

	return at(i - 1), at(i), at(i + 1), at(i + 2), u
}

// PointAt returns the curve point at t in [0,1].
func (c *CatmullRom) PointAt(t float32) math.Vec3 {
	p0, p1, p2, p3, u := c.segment(t)

	u2 := u * u
	u3 := u2 * u

	// 0.5 * (2p1 + (-p0+p2)u + (2p0-5p1+4p2-p3)u^2 + (-p0+3p1-3p2+p3)u^3)
	a := p1.Scale(2)
	b := p2.Sub(p0).Scale(u)
	cc := p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3).Scale(u2)
	d := p1.Scale(3).Sub(p0).Sub(p2.Scale(3)).Add(p3).Scale(u3)

	return a.Add(b).Add(cc).Add(d).Scale(0.5)
}

// TangentAt returns the unit tangent at t in [0,1], from the analytic
// derivative of the segment polynomial.
func (c *CatmullRom) TangentAt(t float32) math.Vec3 {
	p0, p1, p2, p3, u := c.segment(t)

	u2 := u * u

	// 0.5 * ((-p0+p2) + 2(2p0-5p1+4p2-p3)u + 3(-p0+3p1-3p2+p3)u^2)
	b := p2.Sub(p0)
	cc := p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3).Scale(2 * u)
	d := p1.Scale(3).Sub(p0).Sub(p2.Scale(3)).Add(p3).Scale(3 * u2)

	return b.Add(cc).Add(d).Normalize()
}

// Line is the trivial straight-segment curve.
type Line struct {
	From, To math.Vec3
}

// PointAt returns the interpolated point at t.
func (l Line) PointAt(t float32) math.Vec3 {
	return l.From.Lerp(l.To, t)
}

// TangentAt returns the constant unit direction of the line.
func (l Line) TangentAt(t float32) math.Vec3 {
	return l.To.Sub(l.From).Normalize()
}

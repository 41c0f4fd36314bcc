package track

import (
	gomath "math"

	"github.com/Faultbox/coastermesh/pkg/math"
)

// Frame is an orthonormal orientation basis sampled at one point along the
// path. Tangent, Normal and Binormal are unit length, mutually orthogonal
// and right-handed (Binormal = Tangent x Normal). Frames are immutable
// once built.
type Frame struct {
	T        float32
	Position math.Vec3
	Tangent  math.Vec3
	Normal   math.Vec3
	Binormal math.Vec3
}

// FrameStrategy selects how orientation frames propagate along the curve.
type FrameStrategy int

const (
	// StrategyParallelTransport carries the frame along the curve using the
	// minimal rotation that tracks the tangent's change. Frames never twist
	// artificially and, as long as the tangent direction does not reverse,
	// consecutive binormals never flip sign. This is the default.
	StrategyParallelTransport FrameStrategy = iota

	// StrategyFixedUp derives every frame independently from a fixed world
	// up vector. Each sample is self-contained, but frames flip
	// discontinuously where the tangent passes near the up axis.
	StrategyFixedUp
)

// worldUp is the primary reference axis; worldAlt replaces it when a
// tangent is near-parallel to worldUp (within ~0.045 rad), which would
// otherwise collapse the cross product.
var (
	worldUp  = math.Vec3{X: 0, Y: 1, Z: 0}
	worldAlt = math.Vec3{X: 1, Y: 0, Z: 0}
)

const (
	nearParallelDot = 0.999
	minRotationAxis = 1e-6
)

// referenceAxis picks the fixed reference for the given tangent,
// substituting the alternate axis in the near-parallel case.
func referenceAxis(tangent math.Vec3) math.Vec3 {
	d := tangent.Dot(worldUp)
	if d > nearParallelDot || d < -nearParallelDot {
		return worldAlt
	}
	return worldUp
}

// frameFromReference derives a right-handed basis for the tangent from a
// fixed reference axis.
func frameFromReference(t float32, pos, tangent math.Vec3) Frame {
	ref := referenceAxis(tangent)
	binormal := tangent.Cross(ref).Normalize()
	normal := binormal.Cross(tangent).Normalize()
	return Frame{T: t, Position: pos, Tangent: tangent, Normal: normal, Binormal: binormal}
}

// applyBank rolls the frame's normal and binormal about its tangent.
func applyBank(f Frame, angle float32) Frame {
	if angle == 0 {
		return f
	}
	q := math.QuatFromAxisAngle(f.Tangent, angle)
	f.Normal = q.RotateVec3(f.Normal)
	f.Binormal = q.RotateVec3(f.Binormal)
	return f
}

// BuildFrames samples the curve at divisions+1 evenly spaced parameters
// and produces one banked orientation frame per sample. bankAt may be nil
// for an unbanked track.
//
// The returned slice has length divisions+1; frame i corresponds to
// t = i/divisions.
func BuildFrames(curve Curve, divisions int, strategy FrameStrategy, bankAt BankFunc) ([]Frame, error) {
	if divisions < 1 {
		return nil, ErrInvalidDivisions
	}

	frames := make([]Frame, divisions+1)

	// The transport chain carries the unbanked frame; banking is an
	// absolute per-sample roll applied to the output copy only, so it
	// never accumulates through the chain.
	var carrier Frame

	for i := 0; i <= divisions; i++ {
		t := float32(i) / float32(divisions)

		pos := curve.PointAt(t)
		tangent := curve.TangentAt(t)
		if !pos.IsFinite() || !tangent.IsFinite() || tangent.Length() < 1e-8 {
			return nil, &DegenerateCurveError{T: t}
		}
		tangent = tangent.Normalize()

		switch strategy {
		case StrategyFixedUp:
			carrier = frameFromReference(t, pos, tangent)
		default:
			if i == 0 {
				carrier = frameFromReference(t, pos, tangent)
			} else {
				carrier = transportFrame(carrier, t, pos, tangent)
			}
		}

		f := carrier
		if bankAt != nil {
			f = applyBank(f, bankAt(t))
		}
		frames[i] = f
	}

	return frames, nil
}

// transportFrame rotates the previous frame's normal and binormal by the
// minimal rotation mapping the previous tangent onto the current one. The
// tangent itself is taken from the sample, not rotated.
func transportFrame(prev Frame, t float32, pos, tangent math.Vec3) Frame {
	f := Frame{T: t, Position: pos, Tangent: tangent, Normal: prev.Normal, Binormal: prev.Binormal}

	axis := prev.Tangent.Cross(tangent)
	axisLen := axis.Length()
	if axisLen <= minRotationAxis {
		return f
	}

	sin := axisLen
	if sin > 1 {
		sin = 1
	}
	angle := float32(gomath.Asin(float64(sin)))
	if prev.Tangent.Dot(tangent) < 0 {
		// The curve's direction locally reversed.
		angle = gomath.Pi
	}

	q := math.QuatFromAxisAngle(axis.Scale(1/axisLen), angle)
	normal := q.RotateVec3(prev.Normal)

	// Re-orthonormalize against the sampled tangent so float32 drift
	// cannot accumulate over long chains.
	normal = normal.Sub(tangent.Scale(tangent.Dot(normal))).Normalize()
	f.Normal = normal
	f.Binormal = tangent.Cross(normal)
	return f
}

// Package track turns a 3D path into a triangulated roller-coaster track
// mesh: orientation frames are built along the path, rolled by a bank angle,
// and one or more cross-section rings are extruded between adjacent frames
// into flat position/normal/color buffers.
package track

import "github.com/Faultbox/coastermesh/pkg/math"

// Curve is a parametric 3D path over t in [0,1]. Implementations must
// return finite points and non-zero, unit-normalizable tangents; t=0 and
// t=1 are the two ends of the path.
type Curve interface {
	PointAt(t float32) math.Vec3
	TangentAt(t float32) math.Vec3
}

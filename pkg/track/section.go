package track

import (
	gomath "math"

	"github.com/Faultbox/coastermesh/pkg/math"
)

// PolygonRole tags a cross-section polygon for coloring.
type PolygonRole int

const (
	// RoleRail marks a running rail ring.
	RoleRail PolygonRole = iota
	// RoleSpine marks the central spine ring.
	RoleSpine
	// RoleTie marks a cross-tie ring.
	RoleTie
)

// Polygon is one closed 2D ring of the track cross-section. Points are in
// the frame's local binormal/normal plane; edges wrap from the last point
// back to the first. Offset positions the ring relative to the frame
// origin, expressed in the frame's local basis.
type Polygon struct {
	Points []math.Vec2
	Offset math.Vec3
	Role   PolygonRole
}

// EdgeCount returns the number of ring edges (== number of points).
func (p Polygon) EdgeCount() int {
	return len(p.Points)
}

// Style is the closed set of track cross-section styles.
type Style int

const (
	// StyleTrack is the default: two lateral rail rings plus a spine ring
	// offset below the path.
	StyleTrack Style = iota
	// StyleSkeleton is a single small centered ring, a guide rail useful
	// for previewing a layout.
	StyleSkeleton
	// StyleLattice is two rail rings over a wide, flat tie ring.
	StyleLattice
)

// styleNames maps catalog names to styles. Resolution happens once, at
// option or config parse time, never inside the build loop.
var styleNames = map[string]Style{
	"track":    StyleTrack,
	"skeleton": StyleSkeleton,
	"lattice":  StyleLattice,
}

// ParseStyle resolves a catalog name. Unknown names are a styling choice,
// not an error: the default StyleTrack is returned with ok=false so the
// caller can log a diagnostic if it wants one.
func ParseStyle(name string) (style Style, ok bool) {
	if s, found := styleNames[name]; found {
		return s, true
	}
	return StyleTrack, false
}

// String returns the catalog name of the style.
func (s Style) String() string {
	switch s {
	case StyleSkeleton:
		return "skeleton"
	case StyleLattice:
		return "lattice"
	default:
		return "track"
	}
}

// Cross-section layout constants, in curve units.
const (
	railSpread   = 0.225 // lateral rail offset from the path
	spineDrop    = 0.175 // spine ring offset below the path
	tieDrop      = 0.1   // tie ring offset below the path
	tieHalfWidth = 0.4
	tieHalfThick = 0.015
	skeletonEdge = 4 // fixed side count of the skeleton guide ring
)

// ringPoints returns a regular polygon of the given side count and
// radius, centered at the local origin.
func ringPoints(sides int, radius float32) []math.Vec2 {
	pts := make([]math.Vec2, sides)
	for i := range pts {
		a := 2 * gomath.Pi * float64(i) / float64(sides)
		pts[i] = math.Vec2{
			X: radius * float32(gomath.Cos(a)),
			Y: radius * float32(gomath.Sin(a)),
		}
	}
	return pts
}

// sectionsFor resolves a style into its ordered polygon list. The order
// is part of the output contract: the mesh assembler iterates polygons in
// exactly this order.
func sectionsFor(style Style, railSides int, railRadius float32) []Polygon {
	switch style {
	case StyleSkeleton:
		return []Polygon{
			{Points: ringPoints(skeletonEdge, railRadius), Role: RoleRail},
		}

	case StyleLattice:
		return []Polygon{
			{Points: ringPoints(railSides, railRadius), Offset: math.Vec3{X: -railSpread}, Role: RoleRail},
			{Points: ringPoints(railSides, railRadius), Offset: math.Vec3{X: railSpread}, Role: RoleRail},
			{
				Points: []math.Vec2{
					{X: -tieHalfWidth, Y: -tieHalfThick},
					{X: tieHalfWidth, Y: -tieHalfThick},
					{X: tieHalfWidth, Y: tieHalfThick},
					{X: -tieHalfWidth, Y: tieHalfThick},
				},
				Offset: math.Vec3{Y: -tieDrop},
				Role:   RoleTie,
			},
		}

	default: // StyleTrack
		return []Polygon{
			{Points: ringPoints(railSides, railRadius), Offset: math.Vec3{X: -railSpread}, Role: RoleRail},
			{Points: ringPoints(railSides, railRadius), Offset: math.Vec3{X: railSpread}, Role: RoleRail},
			{Points: ringPoints(railSides, railRadius*1.5), Offset: math.Vec3{Y: -spineDrop}, Role: RoleSpine},
		}
	}
}

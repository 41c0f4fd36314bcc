package track

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/coastermesh/pkg/math"
)

func TestBuildSkeletonStraightLine(t *testing.T) {
	line := lineCurve{to: math.Vec3{Z: 10}}
	mesh, err := Build(line, 10, Options{Style: StyleSkeleton})
	if err != nil {
		t.Fatal(err)
	}

	// 10 divisions x 4 ring edges x 2 triangles.
	if got := mesh.TriangleCount(); got != 80 {
		t.Fatalf("TriangleCount() = %d, want 80", got)
	}
	if got, want := len(mesh.Positions), len(mesh.Normals); got != want {
		t.Fatalf("len(Positions)=%d != len(Normals)=%d", got, want)
	}
	if got, want := len(mesh.Positions), len(mesh.Colors); got != want {
		t.Fatalf("len(Positions)=%d != len(Colors)=%d", got, want)
	}

	for i := 0; i < mesh.VertexCount(); i++ {
		x := mesh.Positions[i*3]
		y := mesh.Positions[i*3+1]
		z := mesh.Positions[i*3+2]

		r := float32(gomath.Sqrt(float64(x*x + y*y)))
		if diff := r - DefaultRailRadius; diff > 1e-5 || diff < -1e-5 {
			t.Fatalf("vertex %d: radial distance %v, want %v", i, r, DefaultRailRadius)
		}
		if z < 0 || z > 10 {
			t.Fatalf("vertex %d: z = %v outside [0,10]", i, z)
		}
	}
}

func TestBuildInvalidDivisions(t *testing.T) {
	line := lineCurve{to: math.Vec3{Z: 1}}
	mesh, err := Build(line, 0, Options{})
	if !errors.Is(err, ErrInvalidDivisions) {
		t.Fatalf("err = %v, want ErrInvalidDivisions", err)
	}
	if mesh != nil {
		t.Fatal("got a mesh despite invalid divisions")
	}
}

func TestBuildVertexCountInvariant(t *testing.T) {
	line := lineCurve{to: math.Vec3{Z: 10}}

	cases := []struct {
		style     Style
		divisions int
		edges     int
	}{
		{StyleSkeleton, 7, 4},
		{StyleTrack, 5, 3 * DefaultRailSides},
		{StyleLattice, 12, 2*DefaultRailSides + 4},
	}
	for _, c := range cases {
		mesh, err := Build(line, c.divisions, Options{Style: c.style})
		if err != nil {
			t.Fatalf("%v: %v", c.style, err)
		}
		want := c.divisions * c.edges * 6
		if got := mesh.VertexCount(); got != want {
			t.Errorf("%v: VertexCount() = %d, want %d", c.style, got, want)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	opts := Options{
		Style: StyleTrack,
		BankKeyframes: []BankKeyframe{
			{T: 0, Angle: 0},
			{T: 0.5, Angle: 1},
			{T: 1, Angle: 0},
		},
	}

	a, err := Build(helixCurve{}, 64, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(helixCurve{}, 64, opts)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("positions differ at float %d", i)
		}
		if a.Normals[i] != b.Normals[i] {
			t.Fatalf("normals differ at float %d", i)
		}
		if a.Colors[i] != b.Colors[i] {
			t.Fatalf("colors differ at float %d", i)
		}
	}
}

func TestUnknownStyleFallsBack(t *testing.T) {
	style, ok := ParseStyle("not-a-real-style")
	if ok {
		t.Fatal("unknown style reported as recognized")
	}
	if style != StyleTrack {
		t.Fatalf("fallback style = %v, want StyleTrack", style)
	}

	line := lineCurve{to: math.Vec3{Z: 10}}
	fallback, err := Build(line, 8, Options{Style: style})
	if err != nil {
		t.Fatal(err)
	}
	explicit, err := Build(line, 8, Options{Style: StyleTrack})
	if err != nil {
		t.Fatal(err)
	}
	if fallback.VertexCount() != explicit.VertexCount() {
		t.Fatalf("fallback vertex count %d != explicit default %d",
			fallback.VertexCount(), explicit.VertexCount())
	}
}

func TestConstantBankRotatesRing(t *testing.T) {
	// On a straight vertical path, a constant pi/2 bank must rotate every
	// vertex 90 degrees about the tangent relative to the unbanked mesh.
	vertical := lineCurve{to: math.Vec3{Y: 10}}
	bank := float32(gomath.Pi / 2)

	plain, err := Build(vertical, 6, Options{Style: StyleSkeleton})
	if err != nil {
		t.Fatal(err)
	}
	banked, err := Build(vertical, 6, Options{
		Style:       StyleSkeleton,
		BankAngleAt: func(float32) float32 { return bank },
	})
	if err != nil {
		t.Fatal(err)
	}

	tangent := vertical.TangentAt(0)
	q := math.QuatFromAxisAngle(tangent, bank)

	for i := 0; i < plain.VertexCount(); i++ {
		vu := math.Vec3{
			X: plain.Positions[i*3],
			Y: plain.Positions[i*3+1],
			Z: plain.Positions[i*3+2],
		}
		vb := math.Vec3{
			X: banked.Positions[i*3],
			Y: banked.Positions[i*3+1],
			Z: banked.Positions[i*3+2],
		}
		// The path runs along the Y axis, so rotating the whole position
		// about the tangent is the expected mapping.
		want := q.RotateVec3(vu)
		if diff := vb.Sub(want).Length(); diff > 1e-5 {
			t.Fatalf("vertex %d: banked position off by %v", i, diff)
		}
	}
}

func TestBuildBounds(t *testing.T) {
	line := lineCurve{to: math.Vec3{Z: 10}}
	mesh, err := Build(line, 10, Options{Style: StyleSkeleton})
	if err != nil {
		t.Fatal(err)
	}

	if mesh.Bounds.Min[2] > 1e-5 || mesh.Bounds.Max[2] < 10-1e-5 {
		t.Errorf("bounds z = [%v, %v], want ~[0, 10]", mesh.Bounds.Min[2], mesh.Bounds.Max[2])
	}
	for axis := 0; axis < 2; axis++ {
		if mesh.Bounds.Min[axis] < -DefaultRailRadius-1e-5 || mesh.Bounds.Max[axis] > DefaultRailRadius+1e-5 {
			t.Errorf("bounds axis %d = [%v, %v], want within ring radius",
				axis, mesh.Bounds.Min[axis], mesh.Bounds.Max[axis])
		}
	}
}

func TestBuildFreshBuffersPerCall(t *testing.T) {
	line := lineCurve{to: math.Vec3{Z: 10}}
	a, err := Build(line, 4, Options{Style: StyleSkeleton})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(line, 4, Options{Style: StyleSkeleton})
	if err != nil {
		t.Fatal(err)
	}

	// Mutating one result must not affect the other.
	a.Positions[0] += 100
	if b.Positions[0] == a.Positions[0] {
		t.Fatal("two builds share a positions buffer")
	}
}

func TestDefaultColorsDistinguishRoles(t *testing.T) {
	rail := defaultColorAt(0, RoleRail)
	spine := defaultColorAt(0, RoleSpine)
	tie := defaultColorAt(0, RoleTie)
	if rail == spine || rail == tie {
		t.Error("default palette does not distinguish rail from secondary roles")
	}
}

func TestColorAtOverride(t *testing.T) {
	line := lineCurve{to: math.Vec3{Z: 10}}
	want := [3]float32{0.1, 0.2, 0.3}
	mesh, err := Build(line, 2, Options{
		Style:   StyleSkeleton,
		ColorAt: func(float32, PolygonRole) [3]float32 { return want },
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < mesh.VertexCount(); i++ {
		got := [3]float32{mesh.Colors[i*3], mesh.Colors[i*3+1], mesh.Colors[i*3+2]}
		if got != want {
			t.Fatalf("vertex %d: color = %v, want %v", i, got, want)
		}
	}
}

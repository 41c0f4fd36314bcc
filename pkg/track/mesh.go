package track

// Defaults used when the corresponding option is zero.
const (
	DefaultRailSides  = 6
	DefaultRailRadius = 0.06
)

// Default flat palette; ColorAt overrides it.
var (
	railColor  = [3]float32{0.85, 0.12, 0.12}
	spineColor = [3]float32{0.35, 0.35, 0.38}
	tieColor   = [3]float32{0.2, 0.2, 0.22}
)

// ColorFunc maps a path parameter and polygon role to an RGB color.
type ColorFunc func(t float32, role PolygonRole) [3]float32

func defaultColorAt(_ float32, role PolygonRole) [3]float32 {
	switch role {
	case RoleSpine:
		return spineColor
	case RoleTie:
		return tieColor
	default:
		return railColor
	}
}

// Options configures a mesh build. The zero value is a valid
// configuration: default track style, parallel-transport frames, no
// banking, default palette.
type Options struct {
	// Style selects the cross-section catalog entry.
	Style Style

	// Strategy selects the frame propagation strategy.
	Strategy FrameStrategy

	// RailSides is the side count of rail rings (min 3); 0 means
	// DefaultRailSides. The skeleton style ignores it.
	RailSides int

	// RailRadius is the rail ring radius; 0 means DefaultRailRadius.
	RailRadius float32

	// BankAngleAt, when set, provides the roll angle directly and takes
	// precedence over BankKeyframes. The function is used verbatim.
	BankAngleAt BankFunc

	// BankKeyframes is a keyframed bank profile, linearly interpolated.
	// T values greater than 1 are read as percentages of the path.
	BankKeyframes []BankKeyframe

	// ColorAt overrides the default flat palette.
	ColorAt ColorFunc
}

// bankFunc resolves the effective bank provider, normalizing
// percent-style keyframes. Returns nil for an unbanked track.
func (o *Options) bankFunc() BankFunc {
	if o.BankAngleAt != nil {
		return o.BankAngleAt
	}
	if len(o.BankKeyframes) == 0 {
		return nil
	}
	keys := make([]BankKeyframe, len(o.BankKeyframes))
	copy(keys, o.BankKeyframes)
	for i, k := range keys {
		if k.T > 1 {
			keys[i].T = k.T / 100
		}
	}
	return BankFromKeyframes(keys)
}

// Mesh is a non-indexed triangle soup: every 3 consecutive vertices form
// one triangle. The three buffers are the same length, 3 floats per
// vertex, and are never mutated after Build returns.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Colors    []float32

	// Bounds is the axis-aligned box of all positions.
	Bounds Bounds
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max [3]float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return m.VertexCount() / 3
}

// Build extrudes the style's cross-section rings along the curve and
// returns fresh, fully populated buffers. The vertex count is exactly
// divisions x total-ring-edges x 6, and the output is bit-identical for
// identical inputs: divisions ascending, polygons in catalog order, ring
// edges in ring order.
func Build(curve Curve, divisions int, opts Options) (*Mesh, error) {
	if divisions < 1 {
		return nil, ErrInvalidDivisions
	}

	railSides := opts.RailSides
	if railSides == 0 {
		railSides = DefaultRailSides
	}
	if railSides < 3 {
		railSides = 3
	}
	railRadius := opts.RailRadius
	if railRadius == 0 {
		railRadius = DefaultRailRadius
	}
	colorAt := opts.ColorAt
	if colorAt == nil {
		colorAt = defaultColorAt
	}

	frames, err := BuildFrames(curve, divisions, opts.Strategy, opts.bankFunc())
	if err != nil {
		return nil, err
	}

	sections := sectionsFor(opts.Style, railSides, railRadius)
	edges := 0
	for _, poly := range sections {
		edges += poly.EdgeCount()
	}

	w := newMeshWriter(divisions * edges * 6)

	for i := 1; i <= divisions; i++ {
		prev := &frames[i-1]
		cur := &frames[i]
		for _, poly := range sections {
			color := colorAt(cur.T, poly.Role)
			extrudeRibbon(w, poly, prev, cur, color)
		}
	}

	return &Mesh{
		Positions: w.positions,
		Normals:   w.normals,
		Colors:    w.colors,
		Bounds: Bounds{
			Min: [3]float32{w.min.X, w.min.Y, w.min.Z},
			Max: [3]float32{w.max.X, w.max.Y, w.max.Z},
		},
	}, nil
}

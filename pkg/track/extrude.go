package track

import "github.com/Faultbox/coastermesh/pkg/math"

// transformByBasis expresses a local vector in the frame's orthonormal
// basis (binormal, normal, tangent columns) and translates it to the
// frame's world position. Pure function; no shared state is touched.
func transformByBasis(v math.Vec3, f *Frame) math.Vec3 {
	return f.Binormal.Scale(v.X).
		Add(f.Normal.Scale(v.Y)).
		Add(f.Tangent.Scale(v.Z)).
		Add(f.Position)
}

// rotateByBasis applies only the rotational part of the frame's basis,
// used for the ring-point normal proxy.
func rotateByBasis(v math.Vec3, f *Frame) math.Vec3 {
	return f.Binormal.Scale(v.X).
		Add(f.Normal.Scale(v.Y)).
		Add(f.Tangent.Scale(v.Z))
}

// meshWriter fills pre-sized, index-addressed vertex buffers. Writing by
// cursor rather than append keeps the output layout explicit and leaves
// room for a future parallel fill without changing the contract.
type meshWriter struct {
	positions []float32
	normals   []float32
	colors    []float32
	cursor    int

	min, max math.Vec3
	seen     bool
}

func newMeshWriter(vertexCount int) *meshWriter {
	return &meshWriter{
		positions: make([]float32, vertexCount*3),
		normals:   make([]float32, vertexCount*3),
		colors:    make([]float32, vertexCount*3),
	}
}

func (w *meshWriter) putVertex(pos, normal math.Vec3, color [3]float32) {
	i := w.cursor * 3
	w.positions[i] = pos.X
	w.positions[i+1] = pos.Y
	w.positions[i+2] = pos.Z
	w.normals[i] = normal.X
	w.normals[i+1] = normal.Y
	w.normals[i+2] = normal.Z
	w.colors[i] = color[0]
	w.colors[i+1] = color[1]
	w.colors[i+2] = color[2]
	w.cursor++

	if !w.seen {
		w.min, w.max = pos, pos
		w.seen = true
	} else {
		w.min = w.min.Min(pos)
		w.max = w.max.Max(pos)
	}
}

// extrudeRibbon emits one quad (two triangles) per ring edge of the
// polygon, spanning the previous and current frames. All six vertices of
// an edge's two triangles receive the same flat color.
//
// Each vertex normal is the untranslated local ring point rotated by the
// same basis as its position, then normalized. That is a deliberate cheap
// proxy for "outward from ring center": corner vertices light faceted
// rather than smoothly blended, which is the documented visual contract.
func extrudeRibbon(w *meshWriter, poly Polygon, prev, cur *Frame, color [3]float32) {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		p1 := poly.Points[i]
		p2 := poly.Points[(i+1)%n]

		l1 := math.Vec3{X: p1.X, Y: p1.Y}.Add(poly.Offset)
		l2 := math.Vec3{X: p2.X, Y: p2.Y}.Add(poly.Offset)

		v1 := transformByBasis(l1, cur)
		v2 := transformByBasis(l2, cur)
		v3 := transformByBasis(l2, prev)
		v4 := transformByBasis(l1, prev)

		n1 := rotateByBasis(math.Vec3{X: p1.X, Y: p1.Y}, cur).Normalize()
		n2 := rotateByBasis(math.Vec3{X: p2.X, Y: p2.Y}, cur).Normalize()
		n3 := rotateByBasis(math.Vec3{X: p2.X, Y: p2.Y}, prev).Normalize()
		n4 := rotateByBasis(math.Vec3{X: p1.X, Y: p1.Y}, prev).Normalize()

		w.putVertex(v1, n1, color)
		w.putVertex(v2, n2, color)
		w.putVertex(v4, n4, color)

		w.putVertex(v2, n2, color)
		w.putVertex(v3, n3, color)
		w.putVertex(v4, n4, color)
	}
}

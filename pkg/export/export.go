// Package export writes track meshes to common interchange formats.
package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Faultbox/coastermesh/pkg/math"
	"github.com/Faultbox/coastermesh/pkg/track"
)

// stlTriangle is the 50-byte binary STL record.
type stlTriangle struct {
	Normal [3]float32
	V1     [3]float32
	V2     [3]float32
	V3     [3]float32
	Attr   uint16 // attribute byte count, always 0
}

// WriteSTL writes the mesh as binary STL: an 80-byte header, a uint32
// triangle count, then one 50-byte record per triangle. STL consumers
// expect geometric face normals, so normals are recomputed from each
// triangle's winding rather than copied from the mesh's per-vertex
// lighting normals. Colors are not representable in STL and are dropped.
func WriteSTL(w io.Writer, mesh *track.Mesh) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], "coastermesh track")
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("stl header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(mesh.TriangleCount())); err != nil {
		return fmt.Errorf("stl count: %w", err)
	}

	for tri := 0; tri < mesh.TriangleCount(); tri++ {
		i := tri * 9
		v1 := vec3At(mesh.Positions, i)
		v2 := vec3At(mesh.Positions, i+3)
		v3 := vec3At(mesh.Positions, i+6)
		n := v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()

		rec := stlTriangle{
			Normal: [3]float32{n.X, n.Y, n.Z},
			V1:     [3]float32{v1.X, v1.Y, v1.Z},
			V2:     [3]float32{v2.X, v2.Y, v2.Z},
			V3:     [3]float32{v3.X, v3.Y, v3.Z},
		}
		if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("stl triangle %d: %w", tri, err)
		}
	}

	return bw.Flush()
}

// WriteOBJ writes the mesh as Wavefront OBJ. The output mirrors the
// mesh's non-indexed layout: three fresh vertices per face, each with its
// own normal. Vertex colors use the common "v x y z r g b" extension.
func WriteOBJ(w io.Writer, mesh *track.Mesh) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "# coastermesh track"); err != nil {
		return err
	}

	count := mesh.VertexCount()
	for i := 0; i < count; i++ {
		p := vec3At(mesh.Positions, i*3)
		c := vec3At(mesh.Colors, i*3)
		if _, err := fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", p.X, p.Y, p.Z, c.X, c.Y, c.Z); err != nil {
			return err
		}
	}
	for i := 0; i < count; i++ {
		n := vec3At(mesh.Normals, i*3)
		if _, err := fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
	}
	for tri := 0; tri < mesh.TriangleCount(); tri++ {
		a, b, c := tri*3+1, tri*3+2, tri*3+3
		if _, err := fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func vec3At(buf []float32, i int) math.Vec3 {
	return math.Vec3{X: buf[i], Y: buf[i+1], Z: buf[i+2]}
}

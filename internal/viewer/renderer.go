package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/coastermesh/internal/logger"
	"github.com/Faultbox/coastermesh/pkg/math"
	"github.com/Faultbox/coastermesh/pkg/track"
)

// Renderer owns the GL state needed to draw track models.
// IMPORTANT: create it only after a GL context exists.
type Renderer struct {
	program       uint32
	uniProjection int32
	uniView       int32
}

// NewRenderer initializes OpenGL and compiles the track shader.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.09, 0.1, 0.14, 1.0)

	program, err := compileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("track shader: %w", err)
	}

	return &Renderer{
		program:       program,
		uniProjection: gl.GetUniformLocation(program, gl.Str("uProjection\x00")),
		uniView:       gl.GetUniformLocation(program, gl.Str("uView\x00")),
	}, nil
}

// Resize updates the GL viewport.
func (r *Renderer) Resize(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

// Clear clears the color and depth buffers.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the model with the given view and projection matrices.
func (r *Renderer) Draw(m *Model, view, projection math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uniProjection, 1, false, projection.Ptr())
	gl.UniformMatrix4fv(r.uniView, 1, false, view.Ptr())
	m.draw()
}

// Close releases the shader program.
func (r *Renderer) Close() {
	gl.DeleteProgram(r.program)
}

// Model is a track mesh uploaded to the GPU: one VAO with one VBO per
// core buffer, mirroring the core's three parallel arrays.
type Model struct {
	vao         uint32
	vbos        [3]uint32
	vertexCount int32
}

// NewModel uploads the mesh's buffers. The mesh is not retained; the
// caller may discard it after upload.
func NewModel(mesh *track.Mesh) *Model {
	m := &Model{vertexCount: int32(mesh.VertexCount())}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(3, &m.vbos[0])

	for i, buf := range [][]float32{mesh.Positions, mesh.Normals, mesh.Colors} {
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), 3, gl.FLOAT, false, 0, 0)
	}

	gl.BindVertexArray(0)
	return m
}

func (m *Model) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *Model) Delete() {
	gl.DeleteBuffers(3, &m.vbos[0])
	gl.DeleteVertexArrays(1, &m.vao)
}

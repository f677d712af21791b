package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex layout: position (2 floats) followed by color (3 floats).
const (
	positionComponents = 2
	colorComponents    = 3
	floatsPerVertex    = positionComponents + colorComponents
)

// Mesh is a dynamic vertex buffer of 2D colored vertices drawn as triangles.
type Mesh struct {
	vao      *VertexArrayObject
	vbo      *BufferObject
	shader   *Shader
	capacity int // in vertices
	count    int
}

// NewMesh creates a mesh that can hold up to capacity vertices
func NewMesh(capacity int, shader *Shader) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(capacity*floatsPerVertex, DynamicDraw)

	// Position attribute (2 floats)
	vao.SetVertexAttribPointer(0, positionComponents, gl.FLOAT, false, floatsPerVertex*4, 0)
	// Color attribute (3 floats)
	vao.SetVertexAttribPointer(1, colorComponents, gl.FLOAT, false, floatsPerVertex*4, positionComponents*4)

	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:      vao,
		vbo:      vbo,
		shader:   shader,
		capacity: capacity,
	}
}

// Update uploads interleaved x, y, r, g, b vertex data
func (m *Mesh) Update(data []float32) error {
	if len(data)%floatsPerVertex != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of %d", len(data), floatsPerVertex)
	}
	count := len(data) / floatsPerVertex
	if count > m.capacity {
		return fmt.Errorf("mesh holds %d vertices, got %d", m.capacity, count)
	}
	if err := m.vbo.UpdateFloats(data); err != nil {
		return err
	}
	m.count = count
	return nil
}

// Draw renders the uploaded vertices as triangles
func (m *Mesh) Draw() {
	if m.count == 0 {
		return
	}
	m.shader.Use()
	m.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, int32(m.count))
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}

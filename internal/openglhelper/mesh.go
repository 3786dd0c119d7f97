package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Mesh is an indexed triangle mesh on the GPU
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads vertices laid out as consecutive float attributes of the
// given sizes, e.g. {3, 3} for position and normal
func NewMesh(vertices []float32, indices []uint32, attributes ...int32) *Mesh {
	var floatsPerVertex int32
	for _, size := range attributes {
		floatsPerVertex += size
	}
	stride := floatsPerVertex * 4

	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	offset := 0
	for i, size := range attributes {
		vao.SetVertexAttribPointer(uint32(i), size, gl.FLOAT, false, stride, offset)
		offset += int(size) * 4
	}

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw renders the mesh with whatever program is bound
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// NewCube creates a unit cube centred on the origin with per-face normals.
// Vertex layout: position (3), normal (3).
func NewCube() *Mesh {
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0, 0, 1,
		0.5, -0.5, 0.5, 0, 0, 1,
		0.5, 0.5, 0.5, 0, 0, 1,
		-0.5, 0.5, 0.5, 0, 0, 1,

		// Back face
		0.5, -0.5, -0.5, 0, 0, -1,
		-0.5, -0.5, -0.5, 0, 0, -1,
		-0.5, 0.5, -0.5, 0, 0, -1,
		0.5, 0.5, -0.5, 0, 0, -1,

		// Top face
		-0.5, 0.5, 0.5, 0, 1, 0,
		0.5, 0.5, 0.5, 0, 1, 0,
		0.5, 0.5, -0.5, 0, 1, 0,
		-0.5, 0.5, -0.5, 0, 1, 0,

		// Bottom face
		-0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, 0.5, 0, -1, 0,
		-0.5, -0.5, 0.5, 0, -1, 0,

		// Right face
		0.5, -0.5, 0.5, 1, 0, 0,
		0.5, -0.5, -0.5, 1, 0, 0,
		0.5, 0.5, -0.5, 1, 0, 0,
		0.5, 0.5, 0.5, 1, 0, 0,

		// Left face
		-0.5, -0.5, -0.5, -1, 0, 0,
		-0.5, -0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, -0.5, -1, 0, 0,
	}

	// every face is wound counter-clockwise seen from outside
	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return NewMesh(vertices, indices, 3, 3)
}

// NewQuad creates a unit quad spanning (0,0)-(1,1). Vertex layout: position (2).
func NewQuad() *Mesh {
	vertices := []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}

	return NewMesh(vertices, indices, 2)
}

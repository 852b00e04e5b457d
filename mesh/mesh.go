// Package mesh holds interleaved vertex data ready to be uploaded into a
// vertex buffer.
package mesh

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a position followed by an RGB colour.
type Vertex struct {
	Position glm.Vec3
	Color    glm.Vec3
}

const (
	// FloatsPerVertex is the number of float32 components in one Vertex.
	FloatsPerVertex = 6
	// Stride is the distance in bytes between consecutive vertices.
	Stride = FloatsPerVertex * 4
	// PositionOffset and ColorOffset are byte offsets inside one vertex.
	PositionOffset = 0
	ColorOffset    = 3 * 4
)

// Mesh is an ordered list of vertices drawn as triangles.
type Mesh struct {
	Vertices []Vertex
}

// Triangle returns the red/green/blue triangle drawn by the harness.
func Triangle() *Mesh {
	return &Mesh{Vertices: []Vertex{
		{Position: glm.Vec3{0.5, -0.5, 0.0}, Color: glm.Vec3{1.0, 0.0, 0.0}},  // bottom right
		{Position: glm.Vec3{-0.5, -0.5, 0.0}, Color: glm.Vec3{0.0, 1.0, 0.0}}, // bottom left
		{Position: glm.Vec3{0.0, 0.5, 0.0}, Color: glm.Vec3{0.0, 0.0, 1.0}},   // top
	}}
}

// Floats flattens the mesh into the interleaved layout described by Stride.
func (m *Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Color[:]...)
	}
	return out
}

// Count is the number of vertices to submit in a draw call.
func (m *Mesh) Count() int32 {
	return int32(len(m.Vertices))
}

// SizeBytes is the size of the flattened buffer.
func (m *Mesh) SizeBytes() int {
	return len(m.Vertices) * Stride
}

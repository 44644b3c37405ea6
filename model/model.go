// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	"sync"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Object represents the engine supported model
type Object interface {

	// SetPosition sets the object's current position in space.
	// Has to be thread-safe
	SetPosition(glm.Mat4)

	// Position gets the object's current position in space.
	// Has to be thread-safe
	Position() glm.Mat4

	// SetRotation sets the object's rotation matrix.
	// Has to be thread-safe
	SetRotation(glm.Mat4)

	// Rotation gets the object's rotation matrix.
	// Has to be thread-safe
	Rotation() glm.Mat4

	// Vertices returns the vertices in the order they are drawn.
	Vertices() []Vertex
}

// Vertex is a model vertex
type Vertex struct {
	Pos   glm.Vec3
	Color glm.Vec4
}

// AttributeSizes is the float count of each Vertex attribute,
// in shader location order.
var AttributeSizes = []int32{3, 4}

// Interleave packs vertices into a single array holding
// position then colour for every vertex.
func Interleave(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*7)
	for _, v := range vertices {
		data = append(data, v.Pos[:]...)
		data = append(data, v.Color[:]...)
	}
	return data
}

// Deinterleave splits vertices into one array per attribute.
func Deinterleave(vertices []Vertex) [][]float32 {
	pos := make([]float32, 0, len(vertices)*3)
	col := make([]float32, 0, len(vertices)*4)
	for _, v := range vertices {
		pos = append(pos, v.Pos[:]...)
		col = append(col, v.Color[:]...)
	}
	return [][]float32{pos, col}
}

// Uniform defines a model-view-projection object
type Uniform struct {
	Model      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// Floats flattens the matrices in std140 order.
func (u Uniform) Floats() []float32 {
	data := make([]float32, 0, 48)
	data = append(data, u.Model[:]...)
	data = append(data, u.View[:]...)
	return append(data, u.Projection[:]...)
}

// Mesh is an Object held fully in memory.
type Mesh struct {
	mutex    sync.RWMutex
	position glm.Mat4
	rotation glm.Mat4

	vertices []Vertex
}

// NewMesh creates a Mesh at the origin with no rotation.
func NewMesh(vertices []Vertex) *Mesh {
	return &Mesh{
		position: glm.Ident4(),
		rotation: glm.Ident4(),
		vertices: vertices,
	}
}

// Triangle returns a mesh with a single red, green and blue triangle
// facing the viewer with counter-clockwise winding.
func Triangle() *Mesh {
	return NewMesh([]Vertex{
		{Pos: glm.Vec3{-0.5, -0.5, 0}, Color: glm.Vec4{1, 0, 0, 1}},
		{Pos: glm.Vec3{0.5, -0.5, 0}, Color: glm.Vec4{0, 1, 0, 1}},
		{Pos: glm.Vec3{0, 0.5, 0}, Color: glm.Vec4{0, 0, 1, 1}},
	})
}

// SetPosition implements interface
func (m *Mesh) SetPosition(pos glm.Mat4) {
	m.mutex.Lock()
	m.position = pos
	m.mutex.Unlock()
}

// Position implements interface
func (m *Mesh) Position() glm.Mat4 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.position
}

// SetRotation implements interface
func (m *Mesh) SetRotation(rot glm.Mat4) {
	m.mutex.Lock()
	m.rotation = rot
	m.mutex.Unlock()
}

// Rotation implements interface
func (m *Mesh) Rotation() glm.Mat4 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.rotation
}

// Transform returns the model matrix, rotation applied before translation.
func (m *Mesh) Transform() glm.Mat4 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.position.Mul4(m.rotation)
}

// Vertices implements interface
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

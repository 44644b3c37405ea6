// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines the rendering data and resources that backends consume.
// Everything here is plain data or a narrow view on a resource owned elsewhere;
// backends never create or destroy what they receive through these interfaces.
package gfx

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	Release()
}

// Buffer is a GPU memory buffer that can be bound to a binding point.
type Buffer interface {

	// Handle returns the stable native name of the buffer.
	Handle() uint32
}

// TextureTarget discriminates the kind of texture, which decides
// the target it has to be bound to.
type TextureTarget int

// Supported texture targets
const (
	Texture1D TextureTarget = iota
	Texture2D
	Texture3D
	TextureCube
	Texture1DArray
	Texture2DArray
)

func (t TextureTarget) String() string {
	switch t {
	case Texture1D:
		return "1D"
	case Texture2D:
		return "2D"
	case Texture3D:
		return "3D"
	case TextureCube:
		return "cube"
	case Texture1DArray:
		return "1D array"
	case Texture2DArray:
		return "2D array"
	}
	return "unknown"
}

// Texture is an uploaded texture that can be bound to a texture unit.
type Texture interface {

	// Handle returns the stable native name of the texture.
	Handle() uint32

	// Target returns the kind of the texture.
	Target() TextureTarget
}

// Framebuffer is a render target. The zero handle is the default
// framebuffer of the window.
type Framebuffer interface {
	Handle() uint32
	Width() uint32
	Height() uint32
}

// Program is a compiled and linked shader program.
type Program interface {
	Handle() uint32
}

// Mode is the primitive mode a Tess is drawn with.
type Mode int

// Primitive modes
const (
	Triangles Mode = iota
	TriangleStrip
	TriangleFan
	Lines
	LineStrip
	Points
)

// IndexType is the type of the elements of an index buffer.
type IndexType int

// Index types, IndexNone means the Tess is drawn without indices.
const (
	IndexNone IndexType = iota
	IndexUint8
	IndexUint16
	IndexUint32
)

// Size returns the size of one index in bytes.
func (i IndexType) Size() int {
	switch i {
	case IndexUint8:
		return 1
	case IndexUint16:
		return 2
	case IndexUint32:
		return 4
	}
	return 0
}

// TessLayout is the way vertex attributes are laid out in memory.
type TessLayout int

// Vertex layouts
const (
	// Interleaved stores all attributes of a vertex next to each other.
	Interleaved TessLayout = iota
	// Deinterleaved stores each attribute in its own array.
	Deinterleaved
)

func (l TessLayout) String() string {
	if l == Deinterleaved {
		return "deinterleaved"
	}
	return "interleaved"
}

// Tess is a vertex array ready to be drawn. The layout is informative only,
// backends draw both layouts the same way.
type Tess interface {
	VertexArray() uint32
	Mode() Mode
	IndexType() IndexType
	Layout() TessLayout

	// VertexCount returns the number of vertices (or indices, when
	// indexed) the Tess is drawn with by default.
	VertexCount() int

	// InstanceCount returns the default number of instances.
	InstanceCount() int
}

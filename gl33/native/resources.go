// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package native

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/devblok/korugl/gfx"
	"github.com/devblok/korugl/gl33"
)

// ErrLayout is returned when vertex data does not match its attribute sizes.
var ErrLayout = errors.New("vertex data does not match the attribute layout")

// Tracker keeps a mirror of the context state, such as *gl33.GL33. It is
// told about every object before it is deleted.
type Tracker interface {
	ForgetTexture(handle uint32)
	ForgetBuffer(handle uint32)
	ForgetProgram(handle uint32)
	ForgetVertexArray(handle uint32)
}

var _ Tracker = (*gl33.GL33)(nil)

// binding returns the object currently bound to the binding query pname.
func binding(pname uint32) uint32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return uint32(v)
}

// Framebuffer is a window-provided or offscreen render target.
type Framebuffer struct {
	handle        uint32
	width, height uint32
}

// DefaultFramebuffer returns the default framebuffer of the window
// with the given drawable size.
func DefaultFramebuffer(width, height uint32) *Framebuffer {
	return &Framebuffer{width: width, height: height}
}

// Handle implements interface
func (f *Framebuffer) Handle() uint32 { return f.handle }

// Width implements interface
func (f *Framebuffer) Width() uint32 { return f.width }

// Height implements interface
func (f *Framebuffer) Height() uint32 { return f.height }

// Resize updates the drawable size, e.g. after a window resize event.
func (f *Framebuffer) Resize(width, height uint32) {
	f.width, f.height = width, height
}

// Buffer is a uniform buffer.
type Buffer struct {
	handle  uint32
	size    int
	tracker Tracker
}

// NewUniformBuffer uploads data into a new uniform buffer. Only the generic
// uniform buffer binding is touched, and it is restored.
func NewUniformBuffer(tr Tracker, data []float32) *Buffer {
	b := &Buffer{size: len(data) * 4, tracker: tr}
	prev := binding(gl.UNIFORM_BUFFER_BINDING)
	gl.GenBuffers(1, &b.handle)
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.handle)
	gl.BufferData(gl.UNIFORM_BUFFER, b.size, gl.Ptr(data), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, prev)
	return b
}

// Handle implements interface
func (b *Buffer) Handle() uint32 { return b.handle }

// Update overwrites the buffer contents from the start.
func (b *Buffer) Update(data []float32) {
	n := len(data) * 4
	if n > b.size {
		n = b.size
	}
	prev := binding(gl.UNIFORM_BUFFER_BINDING)
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.handle)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, n, gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, prev)
}

// Release implements interface
func (b *Buffer) Release() {
	b.tracker.ForgetBuffer(b.handle)
	gl.DeleteBuffers(1, &b.handle)
	b.handle = 0
}

// Texture is a 2D RGBA texture.
type Texture struct {
	handle  uint32
	tracker Tracker
}

// NewTexture2D uploads img into a new 2D texture with linear filtering.
// The 2D binding of the active unit is restored afterwards.
func NewTexture2D(tr Tracker, img *image.RGBA) *Texture {
	t := &Texture{tracker: tr}
	size := img.Rect.Size()
	prev := binding(gl.TEXTURE_BINDING_2D)
	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, prev)
	return t
}

// Handle implements interface
func (t *Texture) Handle() uint32 { return t.handle }

// Target implements interface
func (t *Texture) Target() gfx.TextureTarget { return gfx.Texture2D }

// Release implements interface
func (t *Texture) Release() {
	t.tracker.ForgetTexture(t.handle)
	gl.DeleteTextures(1, &t.handle)
	t.handle = 0
}

// Program is a linked vertex and fragment shader pair.
type Program struct {
	handle  uint32
	tracker Tracker
}

// NewProgram compiles both stages and links them.
func NewProgram(tr Tracker, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &length)
		msg := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(handle, length, nil, gl.Str(msg))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("linking program: %s", strings.TrimRight(msg, "\x00"))
	}
	return &Program{handle: handle, tracker: tr}, nil
}

func compileShader(source string, typ uint32) (uint32, error) {
	handle := gl.CreateShader(typ)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &length)
		msg := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(handle, length, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("compiling: %s", strings.TrimRight(msg, "\x00"))
	}
	return handle, nil
}

// Handle implements interface
func (p *Program) Handle() uint32 { return p.handle }

// UniformBlock binds the named uniform block of the program to a binding point.
func (p *Program) UniformBlock(name string, binding uint32) {
	idx := gl.GetUniformBlockIndex(p.handle, gl.Str(name+"\x00"))
	if idx == gl.INVALID_INDEX {
		return
	}
	gl.UniformBlockBinding(p.handle, idx, binding)
}

// Sampler points the named sampler uniform at a texture unit. The program
// has to be in use.
func (p *Program) Sampler(name string, unit uint32) {
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		return
	}
	gl.Uniform1i(loc, int32(unit))
}

// Release implements interface
func (p *Program) Release() {
	p.tracker.ForgetProgram(p.handle)
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

// Tess is a vertex array with its vertex and optional index buffers.
type Tess struct {
	tracker   Tracker
	vao       uint32
	buffers   []uint32
	mode      gfx.Mode
	index     gfx.IndexType
	layout    gfx.TessLayout
	vertices  int
	instances int
}

// NewInterleavedTess uploads data as a single buffer in which every vertex
// holds all its attributes in order. sizes gives the float count of each
// attribute, so the vertex count is len(data) / sum(sizes).
func NewInterleavedTess(tr Tracker, mode gfx.Mode, data []float32, sizes []int32, indices []uint32) (*Tess, error) {
	var stride int32
	for _, s := range sizes {
		stride += s
	}
	if stride == 0 || len(data)%int(stride) != 0 {
		return nil, ErrLayout
	}

	t := &Tess{tracker: tr, mode: mode, layout: gfx.Interleaved, vertices: len(data) / int(stride), instances: 1}
	prevArray, prevBuffer := binding(gl.VERTEX_ARRAY_BINDING), binding(gl.ARRAY_BUFFER_BINDING)
	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	t.buffers = append(t.buffers, vbo)

	var offset int32
	for i, s := range sizes {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), s, gl.FLOAT, false, stride*4, uintptr(offset*4))
		offset += s
	}

	t.uploadIndices(indices)
	gl.BindVertexArray(prevArray)
	gl.BindBuffer(gl.ARRAY_BUFFER, prevBuffer)
	return t, nil
}

// NewDeinterleavedTess uploads every attribute into its own buffer.
// All attributes must describe the same number of vertices.
func NewDeinterleavedTess(tr Tracker, mode gfx.Mode, attributes [][]float32, sizes []int32, indices []uint32) (*Tess, error) {
	if len(attributes) == 0 || len(attributes) != len(sizes) {
		return nil, ErrLayout
	}
	count := -1
	for i, a := range attributes {
		if sizes[i] == 0 || len(a)%int(sizes[i]) != 0 {
			return nil, ErrLayout
		}
		n := len(a) / int(sizes[i])
		if count >= 0 && n != count {
			return nil, ErrLayout
		}
		count = n
	}

	t := &Tess{tracker: tr, mode: mode, layout: gfx.Deinterleaved, vertices: count, instances: 1}
	prevArray, prevBuffer := binding(gl.VERTEX_ARRAY_BINDING), binding(gl.ARRAY_BUFFER_BINDING)
	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	for i, a := range attributes {
		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(a)*4, gl.Ptr(a), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), sizes[i], gl.FLOAT, false, 0, 0)
		t.buffers = append(t.buffers, vbo)
	}

	t.uploadIndices(indices)
	gl.BindVertexArray(prevArray)
	gl.BindBuffer(gl.ARRAY_BUFFER, prevBuffer)
	return t, nil
}

// uploadIndices attaches an element buffer to the bound vertex array.
func (t *Tess) uploadIndices(indices []uint32) {
	if len(indices) == 0 {
		return
	}
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	t.buffers = append(t.buffers, ebo)
	t.index = gfx.IndexUint32
	t.vertices = len(indices)
}

// SetInstances sets the default instance count of draws.
func (t *Tess) SetInstances(n int) { t.instances = n }

// VertexArray implements interface
func (t *Tess) VertexArray() uint32 { return t.vao }

// Mode implements interface
func (t *Tess) Mode() gfx.Mode { return t.mode }

// IndexType implements interface
func (t *Tess) IndexType() gfx.IndexType { return t.index }

// Layout implements interface
func (t *Tess) Layout() gfx.TessLayout { return t.layout }

// VertexCount implements interface
func (t *Tess) VertexCount() int { return t.vertices }

// InstanceCount implements interface
func (t *Tess) InstanceCount() int { return t.instances }

// Release implements interface
func (t *Tess) Release() {
	t.tracker.ForgetVertexArray(t.vao)
	gl.DeleteVertexArrays(1, &t.vao)
	if len(t.buffers) > 0 {
		gl.DeleteBuffers(int32(len(t.buffers)), &t.buffers[0])
	}
	t.vao, t.buffers = 0, nil
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33_test

import (
	"fmt"
	"strings"

	"github.com/devblok/korugl/gfx"
	"github.com/devblok/korugl/gl33"
)

// mkcall formats a GL call the way the recorder records it.
func mkcall(name string, args ...interface{}) string {
	return name + "(" + fmt.Sprint(args...) + ")"
}

// recorder implements gl33.Functions by recording every call and
// simulating the capabilities toggled with Enable and Disable.
type recorder struct {
	calls   []string
	enabled map[gl33.Enum]bool

	scissor [4]int32
}

func newRecorder() *recorder {
	return &recorder{enabled: make(map[gl33.Enum]bool)}
}

func (r *recorder) record(name string, args ...interface{}) {
	r.calls = append(r.calls, mkcall(name, args...))
}

// reset forgets the calls recorded so far.
func (r *recorder) reset() {
	r.calls = nil
}

func (r *recorder) count(name string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, name+"(") {
			n++
		}
	}
	return n
}

func (r *recorder) Enable(capability gl33.Enum) {
	r.enabled[capability] = true
	r.record("Enable", capability)
}

func (r *recorder) Disable(capability gl33.Enum) {
	r.enabled[capability] = false
	r.record("Disable", capability)
}

func (r *recorder) BindFramebuffer(target gl33.Enum, framebuffer uint32) {
	r.record("BindFramebuffer", target, " ", framebuffer)
}

func (r *recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", [4]int32{x, y, width, height})
}

func (r *recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", [4]float32{red, green, blue, alpha})
}

// Clear records the mask together with whether the scissor test was on.
func (r *recorder) Clear(mask gl33.Enum) {
	r.record("Clear", mask, " scissor=", r.enabled[gl33.SCISSOR_TEST])
}

func (r *recorder) Scissor(x, y, width, height int32) {
	r.scissor = [4]int32{x, y, width, height}
	r.record("Scissor", r.scissor)
}

func (r *recorder) BindBufferBase(target gl33.Enum, index uint32, buffer uint32) {
	r.record("BindBufferBase", target, " ", index, " ", buffer)
}

func (r *recorder) ActiveTexture(unit gl33.Enum) {
	r.record("ActiveTexture", unit)
}

func (r *recorder) BindTexture(target gl33.Enum, texture uint32) {
	r.record("BindTexture", target, " ", texture)
}

func (r *recorder) BlendEquation(mode gl33.Enum) {
	r.record("BlendEquation", mode)
}

func (r *recorder) BlendEquationSeparate(modeRGB, modeAlpha gl33.Enum) {
	r.record("BlendEquationSeparate", modeRGB, " ", modeAlpha)
}

func (r *recorder) BlendFunc(src, dst gl33.Enum) {
	r.record("BlendFunc", src, " ", dst)
}

func (r *recorder) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl33.Enum) {
	r.record("BlendFuncSeparate", srcRGB, " ", dstRGB, " ", srcAlpha, " ", dstAlpha)
}

func (r *recorder) DepthFunc(fn gl33.Enum) {
	r.record("DepthFunc", fn)
}

func (r *recorder) FrontFace(mode gl33.Enum) {
	r.record("FrontFace", mode)
}

func (r *recorder) CullFace(mode gl33.Enum) {
	r.record("CullFace", mode)
}

func (r *recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
}

func (r *recorder) BindVertexArray(array uint32) {
	r.record("BindVertexArray", array)
}

func (r *recorder) DrawArrays(mode gl33.Enum, first, count int32) {
	r.record("DrawArrays", mode, " ", first, " ", count)
}

func (r *recorder) DrawArraysInstanced(mode gl33.Enum, first, count, instances int32) {
	r.record("DrawArraysInstanced", mode, " ", first, " ", count, " ", instances)
}

func (r *recorder) DrawElements(mode gl33.Enum, count int32, typ gl33.Enum, offset uintptr) {
	r.record("DrawElements", mode, " ", count, " ", typ, " ", offset)
}

func (r *recorder) DrawElementsInstanced(mode gl33.Enum, count int32, typ gl33.Enum, offset uintptr, instances int32) {
	r.record("DrawElementsInstanced", mode, " ", count, " ", typ, " ", offset, " ", instances)
}

type framebuffer struct {
	handle        uint32
	width, height uint32
}

func (f framebuffer) Handle() uint32 { return f.handle }
func (f framebuffer) Width() uint32 { return f.width }
func (f framebuffer) Height() uint32 { return f.height }

type buffer uint32

func (b buffer) Handle() uint32 { return uint32(b) }

type texture struct {
	handle uint32
	target gfx.TextureTarget
}

func (t texture) Handle() uint32 { return t.handle }
func (t texture) Target() gfx.TextureTarget { return t.target }

type program uint32

func (p program) Handle() uint32 { return uint32(p) }

type tess struct {
	vao       uint32
	mode      gfx.Mode
	index     gfx.IndexType
	layout    gfx.TessLayout
	vertices  int
	instances int
}

func (t tess) VertexArray() uint32 { return t.vao }
func (t tess) Mode() gfx.Mode { return t.mode }
func (t tess) IndexType() gfx.IndexType { return t.index }
func (t tess) Layout() gfx.TessLayout { return t.layout }
func (t tess) VertexCount() int { return t.vertices }
func (t tess) InstanceCount() int { return t.instances }

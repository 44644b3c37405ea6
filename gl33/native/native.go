// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package native issues the calls of the gl33 backend to the OpenGL
// driver, through go-gl. The context must be current on the calling
// OS thread before Init.
package native

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/devblok/korugl/gl33"
)

// Init loads the OpenGL entry points of the current context.
func Init() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init(): %w", err)
	}
	return &Functions{}, nil
}

// Version returns the version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Functions implements gl33.Functions on the driver.
type Functions struct{}

var _ gl33.Functions = (*Functions)(nil)

// Enable implements interface
func (*Functions) Enable(capability gl33.Enum) { gl.Enable(uint32(capability)) }

// Disable implements interface
func (*Functions) Disable(capability gl33.Enum) { gl.Disable(uint32(capability)) }

// BindFramebuffer implements interface
func (*Functions) BindFramebuffer(target gl33.Enum, framebuffer uint32) {
	gl.BindFramebuffer(uint32(target), framebuffer)
}

// Viewport implements interface
func (*Functions) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

// ClearColor implements interface
func (*Functions) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

// Clear implements interface
func (*Functions) Clear(mask gl33.Enum) { gl.Clear(uint32(mask)) }

// Scissor implements interface
func (*Functions) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

// BindBufferBase implements interface
func (*Functions) BindBufferBase(target gl33.Enum, index uint32, buffer uint32) {
	gl.BindBufferBase(uint32(target), index, buffer)
}

// ActiveTexture implements interface
func (*Functions) ActiveTexture(unit gl33.Enum) { gl.ActiveTexture(uint32(unit)) }

// BindTexture implements interface
func (*Functions) BindTexture(target gl33.Enum, texture uint32) {
	gl.BindTexture(uint32(target), texture)
}

// BlendEquation implements interface
func (*Functions) BlendEquation(mode gl33.Enum) { gl.BlendEquation(uint32(mode)) }

// BlendEquationSeparate implements interface
func (*Functions) BlendEquationSeparate(modeRGB, modeAlpha gl33.Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

// BlendFunc implements interface
func (*Functions) BlendFunc(src, dst gl33.Enum) { gl.BlendFunc(uint32(src), uint32(dst)) }

// BlendFuncSeparate implements interface
func (*Functions) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl33.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

// DepthFunc implements interface
func (*Functions) DepthFunc(fn gl33.Enum) { gl.DepthFunc(uint32(fn)) }

// FrontFace implements interface
func (*Functions) FrontFace(mode gl33.Enum) { gl.FrontFace(uint32(mode)) }

// CullFace implements interface
func (*Functions) CullFace(mode gl33.Enum) { gl.CullFace(uint32(mode)) }

// UseProgram implements interface
func (*Functions) UseProgram(program uint32) { gl.UseProgram(program) }

// BindVertexArray implements interface
func (*Functions) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

// DrawArrays implements interface
func (*Functions) DrawArrays(mode gl33.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

// DrawArraysInstanced implements interface
func (*Functions) DrawArraysInstanced(mode gl33.Enum, first, count, instances int32) {
	gl.DrawArraysInstanced(uint32(mode), first, count, instances)
}

// DrawElements implements interface
func (*Functions) DrawElements(mode gl33.Enum, count int32, typ gl33.Enum, offset uintptr) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(typ), offset)
}

// DrawElementsInstanced implements interface
func (*Functions) DrawElementsInstanced(mode gl33.Enum, count int32, typ gl33.Enum, offset uintptr, instances int32) {
	gl.DrawElementsInstancedWithOffset(uint32(mode), count, uint32(typ), offset, instances)
}

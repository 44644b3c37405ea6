// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33

// Functions is the set of OpenGL 3.3 entry points the backend issues.
// Every method maps one to one to the GL function of the same name.
// Implementations are called from the goroutine owning the context only.
type Functions interface {
	Enable(capability Enum)
	Disable(capability Enum)

	BindFramebuffer(target Enum, framebuffer uint32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Scissor(x, y, width, height int32)

	BindBufferBase(target Enum, index uint32, buffer uint32)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)

	BlendEquation(mode Enum)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	DepthFunc(fn Enum)
	FrontFace(mode Enum)
	CullFace(mode Enum)

	UseProgram(program uint32)
	BindVertexArray(array uint32)
	DrawArrays(mode Enum, first, count int32)
	DrawArraysInstanced(mode Enum, first, count, instances int32)
	DrawElements(mode Enum, count int32, typ Enum, offset uintptr)
	DrawElementsInstanced(mode Enum, count int32, typ Enum, offset uintptr, instances int32)
}

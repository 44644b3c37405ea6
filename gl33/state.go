// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33

import (
	"github.com/devblok/korugl/gfx"
)

// BlendingState mirrors the blending configuration of the context.
type BlendingState struct {
	Enabled bool

	// Separate is set when the parameters were last issued through the
	// separate entry points.
	Separate      bool
	EquationRGB   Enum
	EquationAlpha Enum
	SrcRGB        Enum
	DstRGB        Enum
	SrcAlpha      Enum
	DstAlpha      Enum
}

// DepthTestState mirrors the depth test configuration of the context.
type DepthTestState struct {
	Enabled bool
	Func    Enum
}

// FaceCullingState mirrors the face culling configuration of the context.
type FaceCullingState struct {
	Enabled   bool
	FrontFace Enum
	CullFace  Enum
}

// ScissorState mirrors the scissor test configuration of the context.
type ScissorState struct {
	Enabled bool
	Region  gfx.ScissorRegion
}

// TrackedState is the fixed-function configuration last issued to the context.
type TrackedState struct {
	DrawFramebuffer uint32
	Viewport        [4]int32
	ClearColor      [4]float32
	SRGB            bool
	Program         uint32
	VertexArray     uint32
	Blending        BlendingState
	DepthTest       DepthTestState
	FaceCulling     FaceCullingState
	Scissor         ScissorState
}

type textureBinding struct {
	target Enum
	handle uint32
}

// State mirrors the state of one OpenGL context. Every setter compares
// with the mirror and skips the GL call when nothing changes, so the
// mirror must always match the context: nothing else may change the
// state of the context behind its back.
type State struct {
	funcs    Functions
	bindings BindingStack

	cur TrackedState

	// scissorBoxKnown is false until the scissor box was first set,
	// the initial box depends on the window.
	scissorBoxKnown bool
	viewportKnown   bool

	// programKnown and vertexArrayKnown are cleared when the tracked
	// object is deleted, so that a new object reusing its name is bound.
	programKnown     bool
	vertexArrayKnown bool

	activeUnit Enum
	textures   map[uint32]textureBinding
	buffers    map[uint32]uint32
}

func newState(f Functions) *State {
	s := &State{
		funcs:    f,
		textures: make(map[uint32]textureBinding),
		buffers:  make(map[uint32]uint32),
	}
	s.reset()
	return s
}

// reset forces the context into the state the mirror starts with.
func (s *State) reset() {
	f := s.funcs
	f.Disable(BLEND)
	f.BlendEquation(FUNC_ADD)
	f.BlendFunc(ONE, ZERO)
	s.cur.Blending = BlendingState{
		EquationRGB:   FUNC_ADD,
		EquationAlpha: FUNC_ADD,
		SrcRGB:        ONE,
		DstRGB:        ZERO,
		SrcAlpha:      ONE,
		DstAlpha:      ZERO,
	}

	f.Disable(DEPTH_TEST)
	f.DepthFunc(LESS)
	s.cur.DepthTest = DepthTestState{Func: LESS}

	f.Disable(CULL_FACE)
	f.FrontFace(CCW)
	f.CullFace(BACK)
	s.cur.FaceCulling = FaceCullingState{FrontFace: CCW, CullFace: BACK}

	f.Disable(SCISSOR_TEST)
	s.cur.Scissor = ScissorState{}

	f.Disable(FRAMEBUFFER_SRGB)
	s.cur.SRGB = false

	f.ClearColor(0, 0, 0, 0)
	s.cur.ClearColor = [4]float32{}

	f.BindFramebuffer(DRAW_FRAMEBUFFER, 0)
	s.cur.DrawFramebuffer = 0

	f.UseProgram(0)
	s.cur.Program = 0
	s.programKnown = true

	f.BindVertexArray(0)
	s.cur.VertexArray = 0
	s.vertexArrayKnown = true

	f.ActiveTexture(TEXTURE0)
	s.activeUnit = TEXTURE0
}

// Current returns a copy of the mirrored state.
func (s *State) Current() TrackedState {
	return s.cur
}

// Bindings returns a read-only view of the binding slots of the context.
// Slots are only taken and given back through bound handles.
func (s *State) Bindings() BindingView {
	return BindingView{stack: &s.bindings}
}

// forgetTexture drops every unit tracked as holding handle. Deleting
// a texture unbinds it, and its name may come back for another one.
func (s *State) forgetTexture(handle uint32) {
	for unit, b := range s.textures {
		if b.handle == handle {
			delete(s.textures, unit)
		}
	}
}

// forgetBuffer drops every binding point tracked as holding handle.
func (s *State) forgetBuffer(handle uint32) {
	for binding, b := range s.buffers {
		if b == handle {
			delete(s.buffers, binding)
		}
	}
}

func (s *State) forgetProgram(handle uint32) {
	if s.cur.Program == handle {
		s.programKnown = false
	}
}

func (s *State) forgetVertexArray(handle uint32) {
	if s.cur.VertexArray == handle {
		s.vertexArrayKnown = false
	}
}

// forgetUnit drops what is tracked at a texture unit given back by its
// handle, the next texture bound there is always issued.
func (s *State) forgetUnit(unit uint32) {
	delete(s.textures, unit)
}

func (s *State) forgetBinding(binding uint32) {
	delete(s.buffers, binding)
}

func (s *State) set(capability Enum, enable bool) {
	var cur *bool
	switch capability {
	case BLEND:
		cur = &s.cur.Blending.Enabled
	case DEPTH_TEST:
		cur = &s.cur.DepthTest.Enabled
	case CULL_FACE:
		cur = &s.cur.FaceCulling.Enabled
	case SCISSOR_TEST:
		cur = &s.cur.Scissor.Enabled
	case FRAMEBUFFER_SRGB:
		cur = &s.cur.SRGB
	default:
		panic("unknown capability")
	}
	if *cur == enable {
		return
	}
	if enable {
		s.funcs.Enable(capability)
	} else {
		s.funcs.Disable(capability)
	}
	*cur = enable
}

func (s *State) bindDrawFramebuffer(fbo uint32) {
	if fbo == s.cur.DrawFramebuffer {
		return
	}
	s.funcs.BindFramebuffer(DRAW_FRAMEBUFFER, fbo)
	s.cur.DrawFramebuffer = fbo
}

func (s *State) setViewport(view [4]int32) {
	if s.viewportKnown && view == s.cur.Viewport {
		return
	}
	s.funcs.Viewport(view[0], view[1], view[2], view[3])
	s.cur.Viewport = view
	s.viewportKnown = true
}

func (s *State) setClearColor(col [4]float32) {
	if col == s.cur.ClearColor {
		return
	}
	s.funcs.ClearColor(col[0], col[1], col[2], col[3])
	s.cur.ClearColor = col
}

func (s *State) setScissorRegion(r gfx.ScissorRegion) {
	if s.scissorBoxKnown && r == s.cur.Scissor.Region {
		return
	}
	s.funcs.Scissor(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height))
	s.cur.Scissor.Region = r
	s.scissorBoxKnown = true
}

// setBlending configures combined blending. Equation and factors are
// issued together whenever any of them changes.
func (s *State) setBlending(eq, src, dst Enum) {
	want := BlendingState{
		Enabled:       s.cur.Blending.Enabled,
		Separate:      false,
		EquationRGB:   eq,
		EquationAlpha: eq,
		SrcRGB:        src,
		DstRGB:        dst,
		SrcAlpha:      src,
		DstAlpha:      dst,
	}
	if want == s.cur.Blending {
		return
	}
	s.funcs.BlendEquation(eq)
	s.funcs.BlendFunc(src, dst)
	s.cur.Blending = want
}

// setBlendingSeparate configures separate blending of the color and alpha
// channels, through the separate entry points only.
func (s *State) setBlendingSeparate(eqRGB, eqAlpha, srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	want := BlendingState{
		Enabled:       s.cur.Blending.Enabled,
		Separate:      true,
		EquationRGB:   eqRGB,
		EquationAlpha: eqAlpha,
		SrcRGB:        srcRGB,
		DstRGB:        dstRGB,
		SrcAlpha:      srcAlpha,
		DstAlpha:      dstAlpha,
	}
	if want == s.cur.Blending {
		return
	}
	s.funcs.BlendEquationSeparate(eqRGB, eqAlpha)
	s.funcs.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
	s.cur.Blending = want
}

func (s *State) setDepthFunc(fn Enum) {
	if fn == s.cur.DepthTest.Func {
		return
	}
	s.funcs.DepthFunc(fn)
	s.cur.DepthTest.Func = fn
}

func (s *State) setFrontFace(mode Enum) {
	if mode == s.cur.FaceCulling.FrontFace {
		return
	}
	s.funcs.FrontFace(mode)
	s.cur.FaceCulling.FrontFace = mode
}

func (s *State) setCullFace(mode Enum) {
	if mode == s.cur.FaceCulling.CullFace {
		return
	}
	s.funcs.CullFace(mode)
	s.cur.FaceCulling.CullFace = mode
}

func (s *State) useProgram(p uint32) {
	if s.programKnown && p == s.cur.Program {
		return
	}
	s.funcs.UseProgram(p)
	s.cur.Program = p
	s.programKnown = true
}

func (s *State) bindVertexArray(a uint32) {
	if s.vertexArrayKnown && a == s.cur.VertexArray {
		return
	}
	s.funcs.BindVertexArray(a)
	s.cur.VertexArray = a
	s.vertexArrayKnown = true
}

func (s *State) bindBufferBase(buffer, binding uint32) {
	if b, ok := s.buffers[binding]; ok && b == buffer {
		return
	}
	s.funcs.BindBufferBase(UNIFORM_BUFFER, binding, buffer)
	s.buffers[binding] = buffer
}

func (s *State) activeTexture(unit Enum) {
	if unit == s.activeUnit {
		return
	}
	s.funcs.ActiveTexture(unit)
	s.activeUnit = unit
}

func (s *State) bindTextureAt(target Enum, handle, unit uint32) {
	want := textureBinding{target: target, handle: handle}
	if b, ok := s.textures[unit]; ok && b == want {
		return
	}
	s.activeTexture(TEXTURE0 + Enum(unit))
	s.funcs.BindTexture(target, handle)
	s.textures[unit] = want
}

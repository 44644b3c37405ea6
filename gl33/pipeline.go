// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33

import (
	log "github.com/sirupsen/logrus"

	"github.com/devblok/korugl/gfx"
)

// Pipeline is a rendering pass against one framebuffer. Everything bound
// through it lives in the binding slots of its context.
type Pipeline struct {
	ctx         *GL33
	framebuffer gfx.Framebuffer
}

// Framebuffer returns the framebuffer the pipeline was started on.
func (p *Pipeline) Framebuffer() gfx.Framebuffer {
	return p.framebuffer
}

// Start makes fb the render target and prepares it per st: the viewport
// is set, the target cleared and sRGB conversion toggled.
//
// Clearing is never clipped, the scissor test is disabled around it. It is
// enabled again afterwards, with the scissor box reset to the viewport so
// that no region from an earlier pass clips the draws to come.
func (p *Pipeline) Start(fb gfx.Framebuffer, st gfx.PipelineState) {
	s := p.ctx.state
	p.framebuffer = fb

	s.bindDrawFramebuffer(fb.Handle())

	view := st.Viewport.Rect(fb.Width(), fb.Height())
	s.setViewport(view)

	s.setClearColor([4]float32(st.ClearColor))

	s.set(SCISSOR_TEST, false)
	var mask Enum
	if st.ClearColorEnabled {
		mask |= COLOR_BUFFER_BIT
	}
	if st.ClearDepthEnabled {
		mask |= DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		s.funcs.Clear(mask)
	}
	s.setScissorRegion(gfx.ScissorRegion{
		X:      uint32(view[0]),
		Y:      uint32(view[1]),
		Width:  uint32(view[2]),
		Height: uint32(view[3]),
	})
	s.set(SCISSOR_TEST, true)

	s.set(FRAMEBUFFER_SRGB, st.SRGBEnabled)

	p.ctx.log.WithFields(log.Fields{
		"framebuffer": fb.Handle(),
		"viewport":    view,
		"clearColor":  st.ClearColorEnabled,
		"clearDepth":  st.ClearDepthEnabled,
		"srgb":        st.SRGBEnabled,
	}).Debug("pipeline started")
}

// BindBuffer binds buf to a free binding point. The point stays reserved
// until the returned handle is released.
func (p *Pipeline) BindBuffer(buf gfx.Buffer) (*BoundBuffer, error) {
	binding, err := p.ctx.allocate(BufferBinding)
	if err != nil {
		return nil, err
	}
	s := p.ctx.state
	s.bindBufferBase(buf.Handle(), binding)
	return &BoundBuffer{
		binding: binding,
		ctx:     p.ctx,
	}, nil
}

// BindTexture binds tex to a free texture unit. The unit stays reserved
// until the returned handle is released.
func (p *Pipeline) BindTexture(tex gfx.Texture) (*BoundTexture, error) {
	unit, err := p.ctx.allocate(TextureUnit)
	if err != nil {
		return nil, err
	}
	s := p.ctx.state
	s.bindTextureAt(textureTargetEnum(tex.Target()), tex.Handle(), unit)
	return &BoundTexture{
		unit: unit,
		ctx:  p.ctx,
	}, nil
}

// WithBuffer binds buf for the duration of fn.
func (p *Pipeline) WithBuffer(buf gfx.Buffer, fn func(*BoundBuffer) error) error {
	bound, err := p.BindBuffer(buf)
	if err != nil {
		return err
	}
	defer bound.Release()
	return fn(bound)
}

// WithTexture binds tex for the duration of fn.
func (p *Pipeline) WithTexture(tex gfx.Texture, fn func(*BoundTexture) error) error {
	bound, err := p.BindTexture(tex)
	if err != nil {
		return err
	}
	defer bound.Release()
	return fn(bound)
}

// UseProgram makes prog the program of subsequent draws.
func (p *Pipeline) UseProgram(prog gfx.Program) {
	p.ctx.UseProgram(prog)
}

// Shade makes prog the program of the draws issued in fn.
func (p *Pipeline) Shade(prog gfx.Program, fn func() error) error {
	p.ctx.UseProgram(prog)
	return fn()
}

// RenderState applies rs and runs fn, which draws under it.
func (p *Pipeline) RenderState(rs gfx.RenderState, fn func(*RenderGate) error) error {
	p.ctx.ApplyRenderState(rs)
	return fn(&RenderGate{state: p.ctx.state})
}

// RenderGate draws under the render state it was entered with.
type RenderGate struct {
	state *State
}

// Render draws tess. Zero vertices means all vertices of tess, zero
// instances the instance count of tess. Drawing one instance issues a
// non-instanced call.
func (g *RenderGate) Render(tess gfx.Tess, start, vertices, instances int) {
	if vertices <= 0 {
		vertices = tess.VertexCount()
	}
	if instances <= 0 {
		instances = tess.InstanceCount()
	}
	if vertices <= 0 {
		return
	}

	s := g.state
	s.bindVertexArray(tess.VertexArray())

	mode := modeEnum(tess.Mode())
	if idx := tess.IndexType(); idx != gfx.IndexNone {
		typ := indexTypeEnum(idx)
		offset := uintptr(start * idx.Size())
		if instances > 1 {
			s.funcs.DrawElementsInstanced(mode, int32(vertices), typ, offset, int32(instances))
		} else {
			s.funcs.DrawElements(mode, int32(vertices), typ, offset)
		}
		return
	}

	if instances > 1 {
		s.funcs.DrawArraysInstanced(mode, int32(start), int32(vertices), int32(instances))
	} else {
		s.funcs.DrawArrays(mode, int32(start), int32(vertices))
	}
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/korugl/core"
	"github.com/devblok/korugl/gfx"
)

// package errors
var (
	ErrNoFunctions           = errors.New("no OpenGL functions to issue calls with")
	ErrContextLost           = errors.New("rendering context was destroyed")
	ErrBindingsExhausted     = errors.New("all buffer binding points are in use")
	ErrTextureUnitsExhausted = errors.New("all texture units are in use")
)

// GL33 is an OpenGL 3.3 rendering context. It owns the State mirroring
// the context and is the only way to change it.
//
// A GL33 is not safe for concurrent use, it must be used from the
// goroutine (and OS thread) the context is current on.
type GL33 struct {
	state     *State
	cfg       core.ContextConfiguration
	log       *log.Entry
	destroyed bool
}

// New creates a context issuing its calls through f. The state of the
// context is reset to the defaults the mirror starts from. A nil logger
// discards everything.
func New(f Functions, cfg core.ContextConfiguration, logger *log.Logger) (*GL33, error) {
	if f == nil {
		return nil, ErrNoFunctions
	}
	if logger == nil {
		logger = log.New()
		logger.Out = io.Discard
	}

	g := &GL33{
		state: newState(f),
		cfg:   cfg,
		log:   logger.WithField("component", "gl33"),
	}
	g.log.WithFields(log.Fields{
		"maxBufferBindings": cfg.MaxBufferBindings,
		"maxTextureUnits":   cfg.MaxTextureUnits,
	}).Debug("context initialised")
	return g, nil
}

// State returns the state mirror of the context.
func (g *GL33) State() *State {
	return g.state
}

// Destroy marks the context as gone. Pipelines can no longer be created.
func (g *GL33) Destroy() {
	if g == nil || g.destroyed {
		return
	}
	g.destroyed = true
	g.log.Debug("context destroyed")
}

// NewPipeline creates a pipeline on the context. It fails only
// when the context was destroyed.
func (g *GL33) NewPipeline() (*Pipeline, error) {
	if g.destroyed {
		return nil, ErrContextLost
	}
	return &Pipeline{ctx: g}, nil
}

// WithPipeline starts a pipeline on fb and runs fn with it. Bindings made
// in fn and not released when it returns are reported as leaked.
func (g *GL33) WithPipeline(fb gfx.Framebuffer, st gfx.PipelineState, fn func(*Pipeline) error) error {
	p, err := g.NewPipeline()
	if err != nil {
		return err
	}

	bs := g.state.Bindings()
	liveBuffers, liveTextures := bs.Live(BufferBinding), bs.Live(TextureUnit)
	defer func() {
		if n := bs.Live(BufferBinding) - liveBuffers; n > 0 {
			g.log.WithField("count", n).Warn("pipeline ended with buffer bindings still held")
		}
		if n := bs.Live(TextureUnit) - liveTextures; n > 0 {
			g.log.WithField("count", n).Warn("pipeline ended with texture units still held")
		}
	}()

	p.Start(fb, st)
	return fn(p)
}

// ApplyRenderState configures the fixed pipeline functionality per rs.
// Applying the same state again issues no calls.
func (g *GL33) ApplyRenderState(rs gfx.RenderState) {
	g.state.applyRenderState(rs)
	if g.log.Logger.IsLevelEnabled(log.DebugLevel) {
		cur := g.state.cur
		g.log.WithFields(log.Fields{
			"blending":    cur.Blending.Enabled,
			"depthTest":   cur.DepthTest.Enabled,
			"faceCulling": cur.FaceCulling.Enabled,
			"scissor":     cur.Scissor.Enabled,
		}).Debug("render state applied")
	}
}

// UseProgram makes p the program of subsequent draws.
func (g *GL33) UseProgram(p gfx.Program) {
	g.state.useProgram(p.Handle())
}

// allocate reserves a slot of the class, refusing to go past the
// configured limit.
func (g *GL33) allocate(class BindingClass) (uint32, error) {
	bs := &g.state.bindings
	var (
		limit uint32
		err   error
	)
	switch class {
	case BufferBinding:
		limit, err = g.cfg.MaxBufferBindings, ErrBindingsExhausted
	case TextureUnit:
		limit, err = g.cfg.MaxTextureUnits, ErrTextureUnitsExhausted
	}
	if limit != 0 && bs.Peek(class) >= limit {
		return 0, fmt.Errorf("%w (limit %d)", err, limit)
	}
	slot := bs.Allocate(class)
	g.log.WithFields(log.Fields{
		"class": class.String(),
		"slot":  slot,
	}).Debug("slot allocated")
	return slot, nil
}

// release gives a slot back and forgets what the mirror tracked there.
func (g *GL33) release(class BindingClass, slot uint32) {
	switch class {
	case BufferBinding:
		g.state.forgetBinding(slot)
	case TextureUnit:
		g.state.forgetUnit(slot)
	}
	g.state.bindings.Release(class, slot)
	g.log.WithFields(log.Fields{
		"class": class.String(),
		"slot":  slot,
	}).Debug("slot released")
}

// ForgetTexture must be called before the texture named handle is deleted.
func (g *GL33) ForgetTexture(handle uint32) {
	g.state.forgetTexture(handle)
}

// ForgetBuffer must be called before the buffer named handle is deleted.
func (g *GL33) ForgetBuffer(handle uint32) {
	g.state.forgetBuffer(handle)
}

// ForgetProgram must be called before the program named handle is deleted.
func (g *GL33) ForgetProgram(handle uint32) {
	g.state.forgetProgram(handle)
}

// ForgetVertexArray must be called before the vertex array named handle
// is deleted.
func (g *GL33) ForgetVertexArray(handle uint32) {
	g.state.forgetVertexArray(handle)
}

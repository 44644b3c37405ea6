// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/devblok/korugl/core"
	"github.com/devblok/korugl/gfx"
	"github.com/devblok/korugl/gl33"
)

func newContext(c *qt.C, cfg core.ContextConfiguration) (*gl33.GL33, *recorder) {
	rec := newRecorder()
	ctx, err := gl33.New(rec, cfg, nil)
	c.Assert(err, qt.IsNil)
	rec.reset()
	return ctx, rec
}

func startPipeline(c *qt.C, ctx *gl33.GL33, fb gfx.Framebuffer, st gfx.PipelineState) *gl33.Pipeline {
	p, err := ctx.NewPipeline()
	c.Assert(err, qt.IsNil)
	p.Start(fb, st)
	return p
}

func TestNewWithoutFunctions(t *testing.T) {
	c := qt.New(t)
	_, err := gl33.New(nil, core.ContextConfiguration{}, nil)
	c.Assert(err, qt.Equals, gl33.ErrNoFunctions)
}

func TestNewResetsState(t *testing.T) {
	c := qt.New(t)
	rec := newRecorder()
	ctx, err := gl33.New(rec, core.ContextConfiguration{}, nil)
	c.Assert(err, qt.IsNil)

	for _, capability := range []gl33.Enum{gl33.BLEND, gl33.DEPTH_TEST, gl33.CULL_FACE, gl33.SCISSOR_TEST, gl33.FRAMEBUFFER_SRGB} {
		enabled, ok := rec.enabled[capability]
		c.Assert(ok, qt.IsTrue, qt.Commentf("capability %#x never set", capability))
		c.Assert(enabled, qt.IsFalse)
	}
	cur := ctx.State().Current()
	c.Assert(cur.DepthTest.Func, qt.Equals, gl33.Enum(gl33.LESS))
	c.Assert(cur.Blending.Enabled, qt.IsFalse)
}

func TestPipelineBasicFrame(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})

	startPipeline(c, ctx, framebuffer{width: 800, height: 600}, gfx.PipelineState{
		Viewport:          gfx.WholeViewport(),
		ClearColor:        glm.Vec4{0, 0, 0, 1},
		ClearColorEnabled: true,
		ClearDepthEnabled: true,
		SRGBEnabled:       false,
	})

	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("Viewport", [4]int32{0, 0, 800, 600}),
		mkcall("ClearColor", [4]float32{0, 0, 0, 1}),
		mkcall("Clear", gl33.COLOR_BUFFER_BIT|gl33.DEPTH_BUFFER_BIT, " scissor=", false),
		mkcall("Scissor", [4]int32{0, 0, 800, 600}),
		mkcall("Enable", gl33.SCISSOR_TEST),
	})
	c.Assert(rec.enabled[gl33.SCISSOR_TEST], qt.IsTrue)
	c.Assert(rec.enabled[gl33.FRAMEBUFFER_SRGB], qt.IsFalse)

	cur := ctx.State().Current()
	c.Assert(cur.Viewport, qt.Equals, [4]int32{0, 0, 800, 600})
	c.Assert(cur.ClearColor, qt.Equals, [4]float32{0, 0, 0, 1})
	c.Assert(cur.Scissor.Enabled, qt.IsTrue)
	c.Assert(cur.SRGB, qt.IsFalse)
}

func TestPipelineStartTarget(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})

	st := gfx.DefaultPipelineState().
		WithViewport(gfx.SpecificViewport(10, 20, 300, 200)).
		WithClearColorEnabled(false).
		WithClearDepthEnabled(false).
		WithSRGBEnabled(true)
	p := startPipeline(c, ctx, framebuffer{handle: 4, width: 1024, height: 768}, st)

	c.Assert(p.Framebuffer().Handle(), qt.Equals, uint32(4))
	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("BindFramebuffer", gl33.DRAW_FRAMEBUFFER, " ", uint32(4)),
		mkcall("Viewport", [4]int32{10, 20, 300, 200}),
		mkcall("ClearColor", [4]float32{0, 0, 0, 1}),
		mkcall("Scissor", [4]int32{10, 20, 300, 200}),
		mkcall("Enable", gl33.SCISSOR_TEST),
		mkcall("Enable", gl33.FRAMEBUFFER_SRGB),
	})
	c.Assert(rec.count("Clear"), qt.Equals, 0)
}

func TestPipelineClearOnlyDepth(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})

	startPipeline(c, ctx, framebuffer{width: 64, height: 64}, gfx.DefaultPipelineState().WithClearColorEnabled(false))
	c.Assert(rec.calls, qt.Contains, mkcall("Clear", gl33.DEPTH_BUFFER_BIT, " scissor=", false))
}

func TestPipelineRestartIssuesOnlyChanges(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})
	fb := framebuffer{width: 800, height: 600}

	startPipeline(c, ctx, fb, gfx.DefaultPipelineState())
	rec.reset()
	startPipeline(c, ctx, fb, gfx.DefaultPipelineState())

	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("Disable", gl33.SCISSOR_TEST),
		mkcall("Clear", gl33.COLOR_BUFFER_BIT|gl33.DEPTH_BUFFER_BIT, " scissor=", false),
		mkcall("Enable", gl33.SCISSOR_TEST),
	})
}

func TestScissorRoundTrip(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})
	region := gfx.ScissorRegion{X: 10, Y: 20, Width: 100, Height: 50}

	ctx.ApplyRenderState(gfx.RenderState{}.WithScissorRegion(region))
	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("Enable", gl33.SCISSOR_TEST),
		mkcall("Scissor", [4]int32{10, 20, 100, 50}),
	})
	c.Assert(ctx.State().Current().Scissor, qt.Equals, gl33.ScissorState{Enabled: true, Region: region})

	rec.reset()
	ctx.ApplyRenderState(gfx.RenderState{})
	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("Disable", gl33.SCISSOR_TEST),
	})
	c.Assert(rec.enabled[gl33.SCISSOR_TEST], qt.IsFalse)

	// the next clear is not clipped and leaves no trace of the region
	rec.reset()
	startPipeline(c, ctx, framebuffer{width: 800, height: 600}, gfx.DefaultPipelineState())
	c.Assert(rec.calls, qt.Contains, mkcall("Clear", gl33.COLOR_BUFFER_BIT|gl33.DEPTH_BUFFER_BIT, " scissor=", false))
	c.Assert(rec.scissor, qt.Equals, [4]int32{0, 0, 800, 600})
	c.Assert(rec.enabled[gl33.SCISSOR_TEST], qt.IsTrue)
}

func TestScissorRegionInsidePipeline(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})
	p := startPipeline(c, ctx, framebuffer{width: 800, height: 600}, gfx.DefaultPipelineState())
	rec.reset()

	region := gfx.ScissorRegion{X: 1, Y: 2, Width: 3, Height: 4}
	err := p.RenderState(gfx.RenderState{}.WithScissorRegion(region), func(*gl33.RenderGate) error {
		c.Assert(rec.scissor, qt.Equals, [4]int32{1, 2, 3, 4})
		return nil
	})
	c.Assert(err, qt.IsNil)
	// scissoring is already enabled by the pipeline, only the box changes
	c.Assert(rec.count("Enable"), qt.Equals, 0)
}

func TestBindBuffer(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())
	rec.reset()

	a, err := p.BindBuffer(buffer(7))
	c.Assert(err, qt.IsNil)
	b, err := p.BindBuffer(buffer(8))
	c.Assert(err, qt.IsNil)
	c.Assert(a.Binding(), qt.Equals, uint32(0))
	c.Assert(b.Binding(), qt.Equals, uint32(1))
	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("BindBufferBase", gl33.UNIFORM_BUFFER, " ", uint32(0), " ", uint32(7)),
		mkcall("BindBufferBase", gl33.UNIFORM_BUFFER, " ", uint32(1), " ", uint32(8)),
	})

	// a point given back is bound again, even to the same buffer
	a.Release()
	rec.reset()
	again, err := p.BindBuffer(buffer(7))
	c.Assert(err, qt.IsNil)
	c.Assert(again.Binding(), qt.Equals, uint32(0))
	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("BindBufferBase", gl33.UNIFORM_BUFFER, " ", uint32(0), " ", uint32(7)),
	})

	again.Release()
	b.Release()
	c.Assert(ctx.State().Bindings().Live(gl33.BufferBinding), qt.Equals, 0)
}

func TestBindBufferReuse(t *testing.T) {
	c := qt.New(t)
	ctx, _ := newContext(c, core.ContextConfiguration{})
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())

	var bound []*gl33.BoundBuffer
	for i := 0; i < 3; i++ {
		b, err := p.BindBuffer(buffer(i + 1))
		c.Assert(err, qt.IsNil)
		c.Assert(b.Binding(), qt.Equals, uint32(i))
		bound = append(bound, b)
	}

	bound[1].Release()
	b, err := p.BindBuffer(buffer(10))
	c.Assert(err, qt.IsNil)
	c.Assert(b.Binding(), qt.Equals, uint32(1))
}

func TestReleaseTwice(t *testing.T) {
	c := qt.New(t)
	ctx, _ := newContext(c, core.ContextConfiguration{})
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())

	b, err := p.BindBuffer(buffer(1))
	c.Assert(err, qt.IsNil)
	b.Release()
	b.Release()
	c.Assert(ctx.State().Bindings().Free(gl33.BufferBinding), qt.Equals, 1)

	tex, err := p.BindTexture(texture{handle: 1, target: gfx.Texture2D})
	c.Assert(err, qt.IsNil)
	tex.Release()
	tex.Release()
	c.Assert(ctx.State().Bindings().Free(gl33.TextureUnit), qt.Equals, 1)
}

func TestBindTexture(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())
	rec.reset()

	a, err := p.BindTexture(texture{handle: 5, target: gfx.Texture2D})
	c.Assert(err, qt.IsNil)
	b, err := p.BindTexture(texture{handle: 6, target: gfx.TextureCube})
	c.Assert(err, qt.IsNil)

	c.Assert(a.Unit(), qt.Equals, uint32(0))
	c.Assert(b.Unit(), qt.Equals, uint32(1))
	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("BindTexture", gl33.TEXTURE_2D, " ", uint32(5)),
		mkcall("ActiveTexture", gl33.TEXTURE0+1),
		mkcall("BindTexture", gl33.TEXTURE_CUBE_MAP, " ", uint32(6)),
	})

	a.Release()
	rec.reset()
	c3, err := p.BindTexture(texture{handle: 9, target: gfx.Texture3D})
	c.Assert(err, qt.IsNil)
	c.Assert(c3.Unit(), qt.Equals, uint32(0))
	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("ActiveTexture", gl33.TEXTURE0),
		mkcall("BindTexture", gl33.TEXTURE_3D, " ", uint32(9)),
	})
}

func TestBindTextureAfterRelease(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())
	rec.reset()

	// the name may belong to a new texture once the first one is deleted
	a, err := p.BindTexture(texture{handle: 5, target: gfx.Texture2D})
	c.Assert(err, qt.IsNil)
	a.Release()
	ctx.ForgetTexture(5)
	rec.reset()

	b, err := p.BindTexture(texture{handle: 5, target: gfx.Texture2D})
	c.Assert(err, qt.IsNil)
	c.Assert(b.Unit(), qt.Equals, uint32(0))
	c.Assert(rec.calls, qt.DeepEquals, []string{
		mkcall("BindTexture", gl33.TEXTURE_2D, " ", uint32(5)),
	})

	// released without deletion, the unit is still bound again
	b.Release()
	rec.reset()
	_, err = p.BindTexture(texture{handle: 5, target: gfx.Texture2D})
	c.Assert(err, qt.IsNil)
	c.Assert(rec.count("BindTexture"), qt.Equals, 1)
}

func TestForgetBufferWhileHeld(t *testing.T) {
	c := qt.New(t)
	ctx, rec := newContext(c, core.ContextConfiguration{})
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())

	a, err := p.BindBuffer(buffer(4))
	c.Assert(err, qt.IsNil)
	ctx.ForgetBuffer(4)
	a.Release()
	rec.reset()

	_, err = p.BindBuffer(buffer(4))
	c.Assert(err, qt.IsNil)
	c.Assert(rec.count("BindBufferBase"), qt.Equals, 1)
}

func TestReleaseLogsSlot(t *testing.T) {
	c := qt.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	ctx, err := gl33.New(newRecorder(), core.ContextConfiguration{}, logger)
	c.Assert(err, qt.IsNil)
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())

	b, err := p.BindTexture(texture{handle: 2, target: gfx.Texture2D})
	c.Assert(err, qt.IsNil)
	hook.Reset()
	b.Release()
	b.Release()

	c.Assert(hook.AllEntries(), qt.HasLen, 1)
	entry := hook.LastEntry()
	c.Assert(entry.Level, qt.Equals, log.DebugLevel)
	c.Assert(entry.Message, qt.Equals, "slot released")
	c.Assert(entry.Data["class"], qt.Equals, "texture unit")
	c.Assert(entry.Data["slot"], qt.Equals, uint32(0))
}

func TestBindingsExhausted(t *testing.T) {
	c := qt.New(t)
	ctx, _ := newContext(c, core.ContextConfiguration{MaxBufferBindings: 2, MaxTextureUnits: 1})
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())

	a, err := p.BindBuffer(buffer(1))
	c.Assert(err, qt.IsNil)
	_, err = p.BindBuffer(buffer(2))
	c.Assert(err, qt.IsNil)

	_, err = p.BindBuffer(buffer(3))
	c.Assert(errors.Is(err, gl33.ErrBindingsExhausted), qt.IsTrue)
	c.Assert(err, qt.ErrorMatches, `all buffer binding points are in use \(limit 2\)`)
	c.Assert(ctx.State().Bindings().HighWater(gl33.BufferBinding), qt.Equals, uint32(2))

	a.Release()
	b, err := p.BindBuffer(buffer(3))
	c.Assert(err, qt.IsNil)
	c.Assert(b.Binding(), qt.Equals, uint32(0))

	_, err = p.BindTexture(texture{handle: 1})
	c.Assert(err, qt.IsNil)
	_, err = p.BindTexture(texture{handle: 2})
	c.Assert(errors.Is(err, gl33.ErrTextureUnitsExhausted), qt.IsTrue)
}

func TestWithBufferReleasesOnError(t *testing.T) {
	c := qt.New(t)
	ctx, _ := newContext(c, core.ContextConfiguration{})
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())
	bs := ctx.State().Bindings()

	errDraw := errors.New("draw failed")
	err := p.WithBuffer(buffer(1), func(b *gl33.BoundBuffer) error {
		c.Assert(bs.Live(gl33.BufferBinding), qt.Equals, 1)
		return p.WithTexture(texture{handle: 2, target: gfx.Texture2D}, func(*gl33.BoundTexture) error {
			return errDraw
		})
	})
	c.Assert(err, qt.Equals, errDraw)
	c.Assert(bs.Live(gl33.BufferBinding), qt.Equals, 0)
	c.Assert(bs.Live(gl33.TextureUnit), qt.Equals, 0)

	c.Assert(func() {
		p.WithTexture(texture{handle: 3}, func(*gl33.BoundTexture) error {
			panic("boom")
		})
	}, qt.PanicMatches, "boom")
	c.Assert(bs.Live(gl33.TextureUnit), qt.Equals, 0)
	c.Assert(bs.Free(gl33.TextureUnit), qt.Equals, 1)
}

func TestWithPipelineReportsLeaks(t *testing.T) {
	c := qt.New(t)
	logger, hook := test.NewNullLogger()
	ctx, err := gl33.New(newRecorder(), core.ContextConfiguration{}, logger)
	c.Assert(err, qt.IsNil)

	err = ctx.WithPipeline(framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState(), func(p *gl33.Pipeline) error {
		_, err := p.BindBuffer(buffer(1))
		return err
	})
	c.Assert(err, qt.IsNil)

	entry := hook.LastEntry()
	c.Assert(entry, qt.Not(qt.IsNil))
	c.Assert(entry.Level, qt.Equals, log.WarnLevel)
	c.Assert(entry.Message, qt.Equals, "pipeline ended with buffer bindings still held")
	c.Assert(entry.Data["count"], qt.Equals, 1)

	hook.Reset()
	err = ctx.WithPipeline(framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState(), func(p *gl33.Pipeline) error {
		return p.WithTexture(texture{handle: 1}, func(*gl33.BoundTexture) error { return nil })
	})
	c.Assert(err, qt.IsNil)
	c.Assert(hook.AllEntries(), qt.HasLen, 0)
}

func TestDestroyedContext(t *testing.T) {
	c := qt.New(t)
	ctx, _ := newContext(c, core.ContextConfiguration{})
	ctx.Destroy()
	ctx.Destroy()

	_, err := ctx.NewPipeline()
	c.Assert(err, qt.Equals, gl33.ErrContextLost)

	called := false
	err = ctx.WithPipeline(framebuffer{}, gfx.DefaultPipelineState(), func(*gl33.Pipeline) error {
		called = true
		return nil
	})
	c.Assert(err, qt.Equals, gl33.ErrContextLost)
	c.Assert(called, qt.IsFalse)
}

func TestBindingViewFollowsHandles(t *testing.T) {
	c := qt.New(t)
	ctx, _ := newContext(c, core.ContextConfiguration{})
	p := startPipeline(c, ctx, framebuffer{width: 8, height: 8}, gfx.DefaultPipelineState())

	var view gl33.BindingView = ctx.State().Bindings()
	c.Assert(view.Peek(gl33.TextureUnit), qt.Equals, uint32(0))

	a, err := p.BindTexture(texture{handle: 1, target: gfx.Texture2D})
	c.Assert(err, qt.IsNil)
	_, err = p.BindTexture(texture{handle: 2, target: gfx.Texture2D})
	c.Assert(err, qt.IsNil)
	c.Assert(view.Live(gl33.TextureUnit), qt.Equals, 2)
	c.Assert(view.Peek(gl33.TextureUnit), qt.Equals, uint32(2))

	a.Release()
	c.Assert(view.Live(gl33.TextureUnit), qt.Equals, 1)
	c.Assert(view.Free(gl33.TextureUnit), qt.Equals, 1)
	c.Assert(view.Peek(gl33.TextureUnit), qt.Equals, uint32(0))
	c.Assert(view.HighWater(gl33.TextureUnit), qt.Equals, uint32(2))
}

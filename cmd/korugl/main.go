// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"time"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/korugl/core"
	"github.com/devblok/korugl/gfx"
	"github.com/devblok/korugl/gl33"
	"github.com/devblok/korugl/gl33/native"
	"github.com/devblok/korugl/model"
)

func init() {
	runtime.LockOSThread()
}

// Essential globals
var (
	configuration core.Configuration
	logger        *log.Logger
	sdlWindow     *sdl.Window
	shaderBox     packr.Box
)

func init() {
	shaderBox = packr.NewBox("./shaders")
}

// scene holds everything drawn each frame
type scene struct {
	program     *native.Program
	interleaved *native.Tess
	separate    *native.Tess
	transform   *native.Buffer
	pattern     *native.Texture
	mesh        *model.Mesh
}

func newWindow() (*sdl.Window, error) {
	attrs := map[sdl.GLattr]int{
		sdl.GL_CONTEXT_MAJOR_VERSION: 3,
		sdl.GL_CONTEXT_MINOR_VERSION: 3,
		sdl.GL_CONTEXT_PROFILE_MASK:  sdl.GL_CONTEXT_PROFILE_CORE,
		sdl.GL_DOUBLEBUFFER:          1,
		sdl.GL_DEPTH_SIZE:            24,
	}
	if configuration.Renderer.SRGB {
		attrs[sdl.GL_FRAMEBUFFER_SRGB_CAPABLE] = 1
	}
	for attr, value := range attrs {
		if err := sdl.GLSetAttribute(attr, value); err != nil {
			return nil, err
		}
	}

	return sdl.CreateWindow("KoruGL",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(configuration.Renderer.ScreenWidth),
		int32(configuration.Renderer.ScreenHeight),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
}

// checkerboard is the pattern multiplied into the triangle colours
func checkerboard(size, cell int) image.Image {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8(255)
			if (x/cell+y/cell)%2 == 1 {
				v = 160
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// shaders returns the configured shader directory when it exists on disk,
// the shaders packed into the binary otherwise.
func shaders() packr.Box {
	dir := configuration.Renderer.ShaderDirectory
	if dir == "" {
		return shaderBox
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return shaderBox
	}
	if fi, err := os.Stat(abs); err != nil || !fi.IsDir() {
		return shaderBox
	}
	return packr.NewBox(abs)
}

func newScene(ctx *gl33.GL33) (*scene, error) {
	sources, err := core.LoadShaderSources(shaders())
	if err != nil {
		return nil, err
	}
	src, ok := sources["triangle"]
	if !ok {
		return nil, errors.New("triangle shader not found")
	}
	program, err := native.NewProgram(ctx, src.Vertex, src.Fragment)
	if err != nil {
		return nil, err
	}

	mesh := model.Triangle()
	interleaved, err := native.NewInterleavedTess(ctx, gfx.Triangles, model.Interleave(mesh.Vertices()), model.AttributeSizes, nil)
	if err != nil {
		return nil, err
	}
	separate, err := native.NewDeinterleavedTess(ctx, gfx.Triangles, model.Deinterleave(mesh.Vertices()), model.AttributeSizes, []uint32{0, 1, 2})
	if err != nil {
		return nil, err
	}

	return &scene{
		program:     program,
		interleaved: interleaved,
		separate:    separate,
		transform:   native.NewUniformBuffer(ctx, model.Uniform{Model: glm.Ident4(), View: glm.Ident4(), Projection: glm.Ident4()}.Floats()),
		pattern:     native.NewTexture2D(ctx, core.GetPixels(checkerboard(64, 8))),
		mesh:        mesh,
	}, nil
}

func (s *scene) Release() {
	s.program.Release()
	s.interleaved.Release()
	s.separate.Release()
	s.transform.Release()
	s.pattern.Release()
}

// draw renders one frame into fb
func (s *scene) draw(ctx *gl33.GL33, fb *native.Framebuffer, elapsed time.Duration) error {
	t := float32(elapsed.Seconds())
	s.mesh.SetRotation(glm.HomogRotate3DZ(t))

	aspect := float32(fb.Width()) / float32(fb.Height())
	s.transform.Update(model.Uniform{
		Model:      s.mesh.Transform(),
		View:       glm.Ident4(),
		Projection: glm.Ortho2D(-aspect, aspect, -1, 1),
	}.Floats())

	clearColor := glm.Vec4{
		0.1 + 0.05*float32(math.Sin(float64(t))),
		0.1,
		0.15,
		1,
	}
	st := gfx.DefaultPipelineState().
		WithClearColor(clearColor).
		WithSRGBEnabled(configuration.Renderer.SRGB)

	return ctx.WithPipeline(fb, st, func(p *gl33.Pipeline) error {
		return p.WithBuffer(s.transform, func(ub *gl33.BoundBuffer) error {
			return p.WithTexture(s.pattern, func(tex *gl33.BoundTexture) error {
				return p.Shade(s.program, func() error {
					s.program.UniformBlock("Transform", ub.Binding())
					s.program.Sampler("pattern", tex.Unit())
					return s.drawTriangles(p, fb)
				})
			})
		})
	})
}

// drawTriangles draws the opaque triangle, then the blended one over the
// left half of fb.
func (s *scene) drawTriangles(p *gl33.Pipeline, fb *native.Framebuffer) error {
	opaque := gfx.DefaultRenderState().
		WithFaceCulling(gfx.FaceCulling{Order: gfx.CounterClockwise, Mode: gfx.CullBack})
	if err := p.RenderState(opaque, func(g *gl33.RenderGate) error {
		g.Render(s.interleaved, 0, 0, 0)
		return nil
	}); err != nil {
		return err
	}

	half := gfx.ScissorRegion{Width: fb.Width() / 2, Height: fb.Height()}
	additive := gfx.DefaultRenderState().
		WithoutDepthTest().
		WithBlendingSeparate(
			gfx.Blending{Equation: gfx.EquationAdd, Src: gfx.FactorOne, Dst: gfx.FactorOne},
			gfx.Blending{Equation: gfx.EquationAdd, Src: gfx.FactorZero, Dst: gfx.FactorOne},
		).
		WithScissorRegion(half)
	return p.RenderState(additive, func(g *gl33.RenderGate) error {
		g.Render(s.separate, 0, 0, 0)
		return nil
	})
}

func loadConfiguration() (core.Configuration, error) {
	var files []string
	if _, err := os.Stat(".env"); err == nil {
		files = append(files, ".env")
	}
	return core.LoadConfiguration(files...)
}

func main() {
	var err error
	if configuration, err = loadConfiguration(); err != nil {
		log.Fatal(err)
	}
	if logger, err = core.NewLogger(configuration.Log); err != nil {
		log.Fatal(err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		logger.Fatal(err)
	}
	defer sdl.Quit()

	if sdlWindow, err = newWindow(); err != nil {
		logger.Fatal(err)
	}
	defer sdlWindow.Destroy()

	glContext, err := sdlWindow.GLCreateContext()
	if err != nil {
		logger.Fatal(err)
	}
	defer sdl.GLDeleteContext(glContext)

	funcs, err := native.Init()
	if err != nil {
		logger.Fatal(err)
	}
	logger.WithField("version", native.Version()).Info("OpenGL context created")

	ctx, err := gl33.New(funcs, configuration.Context, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer ctx.Destroy()

	scn, err := newScene(ctx)
	if err != nil {
		logger.Fatal(err)
	}
	defer scn.Release()

	w, h := sdlWindow.GLGetDrawableSize()
	fb := native.DefaultFramebuffer(uint32(w), uint32(h))

	tm := core.NewTime(configuration.Time)
	defer tm.Stop()
	start := time.Now()

EventLoop:
	for {
		select {
		case <-tm.EventTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						break EventLoop
					}
				case *sdl.WindowEvent:
					if et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
						w, h := sdlWindow.GLGetDrawableSize()
						fb.Resize(uint32(w), uint32(h))
						logger.WithFields(log.Fields{"width": w, "height": h}).Debug("Framebuffer resized")
					}
				case *sdl.QuitEvent:
					break EventLoop
				}
			}
		case <-tm.FpsTicker().C:
			if err := scn.draw(ctx, fb, time.Since(start)); err != nil {
				logger.WithError(err).Error("Frame failed")
				break EventLoop
			}
			sdlWindow.GLSwap()
		}
	}
	logger.Info("Event loop exited")
}

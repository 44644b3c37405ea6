// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gl33 manages the state of an OpenGL 3.3 context across draws.
//
// OpenGL only knows about numbered binding points and a single global
// fixed-function configuration, while callers bind resources and describe
// render states without any slot numbers or knowledge of what came before.
// The package assigns binding points and texture units from free lists,
// takes them back when the handles are released, and mirrors the context
// state so that only actual changes are issued.
//
// A frame typically looks like:
//
//	err := ctx.WithPipeline(fb, gfx.DefaultPipelineState(), func(p *gl33.Pipeline) error {
//		return p.WithTexture(tex, func(t *gl33.BoundTexture) error {
//			p.UseProgram(prog)
//			setSampler(prog, t.Unit())
//			return p.RenderState(gfx.DefaultRenderState(), func(g *gl33.RenderGate) error {
//				g.Render(tess, 0, 0, 0)
//				return nil
//			})
//		})
//	})
package gl33

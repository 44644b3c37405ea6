// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/korugl/gfx"
)

func TestViewportRect(t *testing.T) {
	c := qt.New(t)

	whole := gfx.WholeViewport()
	c.Assert(whole.IsWhole(), qt.IsTrue)
	c.Assert(whole.Rect(800, 600), qt.Equals, [4]int32{0, 0, 800, 600})

	specific := gfx.SpecificViewport(10, 20, 100, 50)
	c.Assert(specific.IsWhole(), qt.IsFalse)
	c.Assert(specific.Rect(800, 600), qt.Equals, [4]int32{10, 20, 100, 50})
}

func TestDefaultPipelineState(t *testing.T) {
	c := qt.New(t)
	st := gfx.DefaultPipelineState()

	c.Assert(st.Viewport.IsWhole(), qt.IsTrue)
	c.Assert(st.ClearColor, qt.Equals, glm.Vec4{0, 0, 0, 1})
	c.Assert(st.ClearColorEnabled, qt.IsTrue)
	c.Assert(st.ClearDepthEnabled, qt.IsTrue)
	c.Assert(st.SRGBEnabled, qt.IsFalse)

	st = st.WithSRGBEnabled(true).WithClearDepthEnabled(false).WithClearColor(glm.Vec4{1, 0, 0, 1})
	c.Assert(st.SRGBEnabled, qt.IsTrue)
	c.Assert(st.ClearDepthEnabled, qt.IsFalse)
	c.Assert(st.ClearColor, qt.Equals, glm.Vec4{1, 0, 0, 1})
}

func TestIndexTypeSize(t *testing.T) {
	c := qt.New(t)
	c.Assert(gfx.IndexNone.Size(), qt.Equals, 0)
	c.Assert(gfx.IndexUint8.Size(), qt.Equals, 1)
	c.Assert(gfx.IndexUint16.Size(), qt.Equals, 2)
	c.Assert(gfx.IndexUint32.Size(), qt.Equals, 4)
}

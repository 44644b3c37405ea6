// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// RenderState describes how the fixed pipeline functionality must operate
// for the draws made under it. A nil setting means the feature is disabled.
//
// The zero value disables everything. DefaultRenderState enables a less-than
// depth test. Values are never mutated in place by the With methods, so a
// RenderState can be shared freely.
type RenderState struct {
	Blending      *BlendingMode
	DepthTest     *DepthComparison
	FaceCulling   *FaceCulling
	ScissorRegion *ScissorRegion
}

// DefaultRenderState returns a state with only a less-than depth test.
func DefaultRenderState() RenderState {
	return RenderState{}.WithDepthTest(DepthLess)
}

// WithBlending returns a copy of the state blending all channels with b.
func (s RenderState) WithBlending(b Blending) RenderState {
	mode := Combined(b)
	s.Blending = &mode
	return s
}

// WithBlendingSeparate returns a copy of the state blending the color and
// alpha channels separately.
func (s RenderState) WithBlendingSeparate(rgb, alpha Blending) RenderState {
	mode := Separate(rgb, alpha)
	s.Blending = &mode
	return s
}

// WithoutBlending returns a copy of the state with blending disabled.
func (s RenderState) WithoutBlending() RenderState {
	s.Blending = nil
	return s
}

// WithDepthTest returns a copy of the state testing depth with d.
func (s RenderState) WithDepthTest(d DepthComparison) RenderState {
	s.DepthTest = &d
	return s
}

// WithoutDepthTest returns a copy of the state with depth test disabled.
func (s RenderState) WithoutDepthTest() RenderState {
	s.DepthTest = nil
	return s
}

// WithFaceCulling returns a copy of the state culling faces per fc.
func (s RenderState) WithFaceCulling(fc FaceCulling) RenderState {
	s.FaceCulling = &fc
	return s
}

// WithoutFaceCulling returns a copy of the state with face culling disabled.
func (s RenderState) WithoutFaceCulling() RenderState {
	s.FaceCulling = nil
	return s
}

// WithScissorRegion returns a copy of the state clipping draws to r.
func (s RenderState) WithScissorRegion(r ScissorRegion) RenderState {
	s.ScissorRegion = &r
	return s
}

// WithoutScissorRegion returns a copy of the state with scissoring disabled.
func (s RenderState) WithoutScissorRegion() RenderState {
	s.ScissorRegion = nil
	return s
}

// Equal reports whether both states configure the hardware the same way.
func (s RenderState) Equal(o RenderState) bool {
	return eqPtr(s.Blending, o.Blending) &&
		eqPtr(s.DepthTest, o.DepthTest) &&
		eqPtr(s.FaceCulling, o.FaceCulling) &&
		eqPtr(s.ScissorRegion, o.ScissorRegion)
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33

import (
	"github.com/devblok/korugl/gfx"
)

// applyRenderState brings the context into agreement with rs. The four
// settings are independent, each is either configured and enabled or
// disabled. Only settings that differ from the mirror reach the context.
func (s *State) applyRenderState(rs gfx.RenderState) {
	if rs.Blending != nil {
		s.set(BLEND, true)
		if mode := *rs.Blending; mode.IsSeparate() {
			rgb, alpha := mode.RGB(), mode.Alpha()
			s.setBlendingSeparate(
				equationEnum(rgb.Equation), equationEnum(alpha.Equation),
				factorEnum(rgb.Src), factorEnum(rgb.Dst),
				factorEnum(alpha.Src), factorEnum(alpha.Dst),
			)
		} else {
			b := mode.RGB()
			s.setBlending(equationEnum(b.Equation), factorEnum(b.Src), factorEnum(b.Dst))
		}
	} else {
		s.set(BLEND, false)
	}

	if rs.DepthTest != nil {
		s.set(DEPTH_TEST, true)
		s.setDepthFunc(depthEnum(*rs.DepthTest))
	} else {
		s.set(DEPTH_TEST, false)
	}

	if rs.FaceCulling != nil {
		s.set(CULL_FACE, true)
		s.setFrontFace(frontFaceEnum(rs.FaceCulling.Order))
		s.setCullFace(cullFaceEnum(rs.FaceCulling.Mode))
	} else {
		s.set(CULL_FACE, false)
	}

	if rs.ScissorRegion != nil {
		s.set(SCISSOR_TEST, true)
		s.setScissorRegion(*rs.ScissorRegion)
	} else {
		s.set(SCISSOR_TEST, false)
	}
}

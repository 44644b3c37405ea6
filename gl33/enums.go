// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33

import (
	"fmt"

	"github.com/devblok/korugl/gfx"
)

// Enum is an OpenGL enumerant. The values match the GL headers, so
// implementations of Functions can pass them through unchanged.
type Enum uint32

// Enumerants used by the backend
const (
	ZERO = 0
	ONE  = 1

	DEPTH_BUFFER_BIT = 0x0100
	COLOR_BUFFER_BIT = 0x4000

	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	NEVER    = 0x0200
	LESS     = 0x0201
	EQUAL    = 0x0202
	LEQUAL   = 0x0203
	GREATER  = 0x0204
	NOTEQUAL = 0x0205
	GEQUAL   = 0x0206
	ALWAYS   = 0x0207

	SRC_COLOR           = 0x0300
	ONE_MINUS_SRC_COLOR = 0x0301
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303
	DST_ALPHA           = 0x0304
	ONE_MINUS_DST_ALPHA = 0x0305
	DST_COLOR           = 0x0306
	ONE_MINUS_DST_COLOR = 0x0307
	SRC_ALPHA_SATURATE  = 0x0308

	FRONT          = 0x0404
	BACK           = 0x0405
	FRONT_AND_BACK = 0x0408

	CW  = 0x0900
	CCW = 0x0901

	CULL_FACE    = 0x0B44
	DEPTH_TEST   = 0x0B71
	BLEND        = 0x0BE2
	SCISSOR_TEST = 0x0C11

	TEXTURE_1D = 0x0DE0
	TEXTURE_2D = 0x0DE1

	UNSIGNED_BYTE  = 0x1401
	UNSIGNED_SHORT = 0x1403
	UNSIGNED_INT   = 0x1405

	FUNC_ADD              = 0x8006
	MIN                   = 0x8007
	MAX                   = 0x8008
	FUNC_SUBTRACT         = 0x800A
	FUNC_REVERSE_SUBTRACT = 0x800B

	TEXTURE_3D       = 0x806F
	TEXTURE0         = 0x84C0
	TEXTURE_CUBE_MAP = 0x8513
	UNIFORM_BUFFER   = 0x8A11
	TEXTURE_1D_ARRAY = 0x8C18
	TEXTURE_2D_ARRAY = 0x8C1A
	DRAW_FRAMEBUFFER = 0x8CA9
	FRAMEBUFFER_SRGB = 0x8DB9
)

func equationEnum(e gfx.Equation) Enum {
	switch e {
	case gfx.EquationAdd:
		return FUNC_ADD
	case gfx.EquationSubtract:
		return FUNC_SUBTRACT
	case gfx.EquationReverseSubtract:
		return FUNC_REVERSE_SUBTRACT
	case gfx.EquationMin:
		return MIN
	case gfx.EquationMax:
		return MAX
	}
	panic(fmt.Sprintf("unknown blending equation %d", e))
}

func factorEnum(f gfx.Factor) Enum {
	switch f {
	case gfx.FactorOne:
		return ONE
	case gfx.FactorZero:
		return ZERO
	case gfx.FactorSrcColor:
		return SRC_COLOR
	case gfx.FactorOneMinusSrcColor:
		return ONE_MINUS_SRC_COLOR
	case gfx.FactorDstColor:
		return DST_COLOR
	case gfx.FactorOneMinusDstColor:
		return ONE_MINUS_DST_COLOR
	case gfx.FactorSrcAlpha:
		return SRC_ALPHA
	case gfx.FactorOneMinusSrcAlpha:
		return ONE_MINUS_SRC_ALPHA
	case gfx.FactorDstAlpha:
		return DST_ALPHA
	case gfx.FactorOneMinusDstAlpha:
		return ONE_MINUS_DST_ALPHA
	case gfx.FactorSrcAlphaSaturate:
		return SRC_ALPHA_SATURATE
	}
	panic(fmt.Sprintf("unknown blending factor %d", f))
}

func depthEnum(d gfx.DepthComparison) Enum {
	switch d {
	case gfx.DepthNever:
		return NEVER
	case gfx.DepthAlways:
		return ALWAYS
	case gfx.DepthEqual:
		return EQUAL
	case gfx.DepthNotEqual:
		return NOTEQUAL
	case gfx.DepthLess:
		return LESS
	case gfx.DepthLessOrEqual:
		return LEQUAL
	case gfx.DepthGreater:
		return GREATER
	case gfx.DepthGreaterOrEqual:
		return GEQUAL
	}
	panic(fmt.Sprintf("unknown depth comparison %d", d))
}

func frontFaceEnum(o gfx.FaceCullingOrder) Enum {
	if o == gfx.Clockwise {
		return CW
	}
	return CCW
}

func cullFaceEnum(m gfx.FaceCullingMode) Enum {
	switch m {
	case gfx.CullFront:
		return FRONT
	case gfx.CullBack:
		return BACK
	case gfx.CullBoth:
		return FRONT_AND_BACK
	}
	panic(fmt.Sprintf("unknown face culling mode %d", m))
}

func textureTargetEnum(t gfx.TextureTarget) Enum {
	switch t {
	case gfx.Texture1D:
		return TEXTURE_1D
	case gfx.Texture2D:
		return TEXTURE_2D
	case gfx.Texture3D:
		return TEXTURE_3D
	case gfx.TextureCube:
		return TEXTURE_CUBE_MAP
	case gfx.Texture1DArray:
		return TEXTURE_1D_ARRAY
	case gfx.Texture2DArray:
		return TEXTURE_2D_ARRAY
	}
	panic(fmt.Sprintf("unknown texture target %d", t))
}

func modeEnum(m gfx.Mode) Enum {
	switch m {
	case gfx.Triangles:
		return TRIANGLES
	case gfx.TriangleStrip:
		return TRIANGLE_STRIP
	case gfx.TriangleFan:
		return TRIANGLE_FAN
	case gfx.Lines:
		return LINES
	case gfx.LineStrip:
		return LINE_STRIP
	case gfx.Points:
		return POINTS
	}
	panic(fmt.Sprintf("unknown primitive mode %d", m))
}

func indexTypeEnum(i gfx.IndexType) Enum {
	switch i {
	case gfx.IndexUint8:
		return UNSIGNED_BYTE
	case gfx.IndexUint16:
		return UNSIGNED_SHORT
	case gfx.IndexUint32:
		return UNSIGNED_INT
	}
	panic(fmt.Sprintf("no index enum for %d", i))
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Equation is the blending equation, combining the source and
// destination terms after they are scaled by their factors.
type Equation int

// Blending equations
const (
	// EquationAdd computes src + dst.
	EquationAdd Equation = iota
	// EquationSubtract computes src - dst.
	EquationSubtract
	// EquationReverseSubtract computes dst - src.
	EquationReverseSubtract
	// EquationMin computes min(src, dst), factors are ignored.
	EquationMin
	// EquationMax computes max(src, dst), factors are ignored.
	EquationMax
)

// Factor scales either the source or the destination of blending.
type Factor int

// Blending factors
const (
	FactorOne Factor = iota
	FactorZero
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorDstColor
	FactorOneMinusDstColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstAlpha
	FactorOneMinusDstAlpha
	FactorSrcAlphaSaturate
)

// Blending is one equation with its source and destination factors.
type Blending struct {
	Equation Equation
	Src      Factor
	Dst      Factor
}

// BlendingMode is either combined, where a single Blending applies
// to all channels, or separate, where RGB and alpha channels get their own.
// Construct it with Combined or Separate.
type BlendingMode struct {
	separate bool
	rgb      Blending
	alpha    Blending
}

// Combined returns a blending mode applying b to every channel.
func Combined(b Blending) BlendingMode {
	return BlendingMode{rgb: b, alpha: b}
}

// Separate returns a blending mode with distinct RGB and alpha blending.
func Separate(rgb, alpha Blending) BlendingMode {
	return BlendingMode{separate: true, rgb: rgb, alpha: alpha}
}

// IsSeparate reports whether the mode was built with Separate.
func (m BlendingMode) IsSeparate() bool {
	return m.separate
}

// RGB returns the blending of the color channels. For a combined
// mode it is the blending of every channel.
func (m BlendingMode) RGB() Blending {
	return m.rgb
}

// Alpha returns the blending of the alpha channel.
func (m BlendingMode) Alpha() Blending {
	return m.alpha
}

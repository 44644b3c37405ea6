// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Viewport is either the whole render target or a specific rectangle of it.
type Viewport struct {
	specific bool
	x, y     uint32
	width    uint32
	height   uint32
}

// WholeViewport covers the entire render target.
func WholeViewport() Viewport {
	return Viewport{}
}

// SpecificViewport covers the given rectangle of the render target.
func SpecificViewport(x, y, width, height uint32) Viewport {
	return Viewport{
		specific: true,
		x:        x,
		y:        y,
		width:    width,
		height:   height,
	}
}

// Rect returns the viewport rectangle on a target of the given size,
// as x, y, width, height.
func (v Viewport) Rect(targetWidth, targetHeight uint32) [4]int32 {
	if !v.specific {
		return [4]int32{0, 0, int32(targetWidth), int32(targetHeight)}
	}
	return [4]int32{int32(v.x), int32(v.y), int32(v.width), int32(v.height)}
}

// IsWhole reports whether the viewport covers the entire target.
func (v Viewport) IsWhole() bool {
	return !v.specific
}

// PipelineState configures a rendering pass: how much of the target it
// covers, how the target gets cleared and whether sRGB conversion is on.
type PipelineState struct {
	Viewport          Viewport
	ClearColor        glm.Vec4
	ClearColorEnabled bool
	ClearDepthEnabled bool
	SRGBEnabled       bool
}

// DefaultPipelineState clears color to opaque black and depth over the
// whole target, without sRGB conversion.
func DefaultPipelineState() PipelineState {
	return PipelineState{
		Viewport:          WholeViewport(),
		ClearColor:        glm.Vec4{0, 0, 0, 1},
		ClearColorEnabled: true,
		ClearDepthEnabled: true,
	}
}

// WithViewport returns a copy of the state using v.
func (s PipelineState) WithViewport(v Viewport) PipelineState {
	s.Viewport = v
	return s
}

// WithClearColor returns a copy of the state clearing to c.
func (s PipelineState) WithClearColor(c glm.Vec4) PipelineState {
	s.ClearColor = c
	return s
}

// WithClearColorEnabled returns a copy of the state with color clearing toggled.
func (s PipelineState) WithClearColorEnabled(enabled bool) PipelineState {
	s.ClearColorEnabled = enabled
	return s
}

// WithClearDepthEnabled returns a copy of the state with depth clearing toggled.
func (s PipelineState) WithClearDepthEnabled(enabled bool) PipelineState {
	s.ClearDepthEnabled = enabled
	return s
}

// WithSRGBEnabled returns a copy of the state with sRGB conversion toggled.
func (s PipelineState) WithSRGBEnabled(enabled bool) PipelineState {
	s.SRGBEnabled = enabled
	return s
}

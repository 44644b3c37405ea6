// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// FaceCullingOrder is the winding order of front-facing primitives.
type FaceCullingOrder int

// Winding orders
const (
	Clockwise FaceCullingOrder = iota
	CounterClockwise
)

// FaceCullingMode selects the faces that get culled.
type FaceCullingMode int

// Culled sides
const (
	CullFront FaceCullingMode = iota
	CullBack
	CullBoth
)

// FaceCulling configures face culling.
type FaceCulling struct {
	Order FaceCullingOrder
	Mode  FaceCullingMode
}

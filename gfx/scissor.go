// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// ScissorRegion is the region drawn fragments are allowed within,
// in target space.
type ScissorRegion struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

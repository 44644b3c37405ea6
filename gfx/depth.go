// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// DepthComparison is the test a fragment's depth must pass against
// the depth buffer to be written.
type DepthComparison int

// Depth comparisons
const (
	DepthNever DepthComparison = iota
	DepthAlways
	DepthEqual
	DepthNotEqual
	DepthLess
	DepthLessOrEqual
	DepthGreater
	DepthGreaterOrEqual
)

func (d DepthComparison) String() string {
	switch d {
	case DepthNever:
		return "never"
	case DepthAlways:
		return "always"
	case DepthEqual:
		return "equal"
	case DepthNotEqual:
		return "not-equal"
	case DepthLess:
		return "less"
	case DepthLessOrEqual:
		return "less-or-equal"
	case DepthGreater:
		return "greater"
	case DepthGreaterOrEqual:
		return "greater-or-equal"
	}
	return "unknown"
}

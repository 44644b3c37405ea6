// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"image"
	"image/draw"
	"sort"
	"strings"

	"github.com/gobuffalo/packr"
)

// ShaderSource is the GLSL source of a vertex and fragment stage pair.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// LoadShaderSources collects the shaders found in the box. It is important
// that the file name does not contain more than one dot: the first part is
// the name of the program, the second is the stage ("vert" or "frag").
// Other files are skipped. Every program needs both stages.
func LoadShaderSources(box packr.Box) (map[string]ShaderSource, error) {
	sources := make(map[string]ShaderSource)
	files := box.List()
	sort.Strings(files)
	for _, file := range files {
		nodes := strings.Split(file, ".")
		if len(nodes) != 2 || strings.ContainsAny(nodes[0], "/\\") {
			continue
		}

		name, stage := nodes[0], nodes[1]
		if stage != "vert" && stage != "frag" {
			continue
		}

		text, err := box.FindString(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		src := sources[name]
		if stage == "vert" {
			src.Vertex = text
		} else {
			src.Fragment = text
		}
		sources[name] = src
	}

	for name, src := range sources {
		if src.Vertex == "" || src.Fragment == "" {
			return nil, fmt.Errorf("shader %q: missing stage", name)
		}
	}
	return sources, nil
}

// GetPixels transforms a given image into a tightly packed RGBA image
// by drawing the decoded image onto a controlled canvas
func GetPixels(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*rgba.Rect.Dx() && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	newImg := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(newImg, newImg.Bounds(), img, b.Min, draw.Src)
	return newImg
}

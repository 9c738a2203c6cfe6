//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

var gridShaderSource = []byte(`//kage:unit pixels

package main

var Palette [256]vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	idx := int(imageSrc0At(srcPos).r*255 + 0.5)
	return Palette[idx]
}
`)

// GridShaderSource returns the Kage source of the palette lookup shader.
func GridShaderSource() []byte { return gridShaderSource }

// NewGridShader compiles the palette lookup shader.
func NewGridShader() (*ebiten.Shader, error) {
	return ebiten.NewShader(gridShaderSource)
}

package ui

// cardShader draws one card: the source region is the cover-cropped
// texture, masked to a rectangle with corners rounded in UV units.
const cardShader = `//kage:unit pixels

package main

var Radius float
var Edge float
var Opacity float

func roundedBox(p vec2, b vec2, r float) float {
	d := abs(p) - b
	return length(max(d, vec2(0))) + min(max(d.x, d.y), 0) - r
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := (srcPos - imageSrc0Origin()) / imageSrc0Size()
	d := roundedBox(uv-0.5, vec2(0.5-Radius), Radius)
	alpha := 1 - smoothstep(-Edge, Edge, d)
	return imageSrc0At(srcPos) * alpha * Opacity
}
`

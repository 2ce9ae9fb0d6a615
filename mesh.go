// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgmesh

import (
	"fmt"

	"github.com/gogpu/svgmesh/scene"
)

// Color is an 8-bit RGBA color, not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// FallbackColor returns the color used for paint that cannot be rendered as
// a solid color: transparent black.
func FallbackColor() Color {
	return Color{}
}

// RGBA returns the color as four floats in [0, 1].
func (c Color) RGBA() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Vertex is one mesh vertex. PrimitiveIndex selects the entry of
// Mesh.Primitives that produced it.
type Vertex struct {
	Position       [2]float32
	PrimitiveIndex uint32
}

// Primitive is one fill or stroke pass of one path.
type Primitive struct {
	TransformIndex uint32
	Color          Color
}

// Transform is an affine matrix packed into two rows:
// Data0 = [a b c d], Data1 = [e f 0 0].
type Transform struct {
	Data0 [4]float32
	Data1 [4]float32
}

// PackTransform narrows t to the packed layout.
func PackTransform(t scene.Transform) Transform {
	return Transform{
		Data0: [4]float32{float32(t.A), float32(t.B), float32(t.C), float32(t.D)},
		Data1: [4]float32{float32(t.E), float32(t.F), 0, 0},
	}
}

// Apply transforms the point (x, y).
func (t Transform) Apply(x, y float32) (float32, float32) {
	return t.Data0[0]*x + t.Data0[2]*y + t.Data1[0],
		t.Data0[1]*x + t.Data0[3]*y + t.Data1[1]
}

// Mesh is the result of a tessellation.
type Mesh struct {
	Vertices   []Vertex
	Indices    []uint32
	Primitives []Primitive
	Transforms []Transform
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// PrimitiveVertices returns the vertices tagged with primitive i.
func (m *Mesh) PrimitiveVertices(i uint32) []Vertex {
	var out []Vertex
	for _, v := range m.Vertices {
		if v.PrimitiveIndex == i {
			out = append(out, v)
		}
	}
	return out
}

// Stats summarizes the table sizes of a mesh.
type Stats struct {
	Vertices   int
	Indices    int
	Triangles  int
	Primitives int
	Transforms int
}

// Stats returns the table sizes.
func (m *Mesh) Stats() Stats {
	return Stats{
		Vertices:   len(m.Vertices),
		Indices:    len(m.Indices),
		Triangles:  m.TriangleCount(),
		Primitives: len(m.Primitives),
		Transforms: len(m.Transforms),
	}
}

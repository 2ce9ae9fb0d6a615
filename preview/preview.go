// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview rasterizes a tessellated mesh on the CPU.
//
// It draws the same triangles, with the same projection, as the GPU
// pipeline in package gpu, which makes it useful for inspecting a mesh
// without a device and for golden tests.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/gogpu/svgmesh"
	"github.com/gogpu/svgmesh/gpu"
)

// Options control rendering.
type Options struct {
	// Background fills the image before drawing. Nil leaves it
	// transparent.
	Background color.Color

	// LineWidth is the width in pixels of wireframe edges. Zero means 1.
	LineWidth float32
}

// Render draws m into a new image of g.Width x g.Height pixels. With
// g.Wireframe it draws triangle edges instead of filled triangles.
func Render(m *svgmesh.Mesh, g gpu.Globals, opts *Options) *image.RGBA {
	if opts == nil {
		opts = &Options{}
	}
	g = g.Resize(g.Width, g.Height)
	dst := image.NewRGBA(image.Rect(0, 0, int(g.Width), int(g.Height)))
	if opts.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if m == nil || m.IsEmpty() {
		return dst
	}

	r := &renderer{
		dst:   dst,
		mesh:  m,
		view:  viewport(g),
		width: max(opts.LineWidth, 1) / 2,
		ras:   vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy()),
	}

	// Triangles of one primitive are contiguous in the index buffer.
	// Drawing each run as one shape keeps shared edges seamless.
	n := len(m.Indices) - len(m.Indices)%3
	start := 0
	for i := 3; i <= n; i += 3 {
		if i < n && r.prim(i) == r.prim(start) {
			continue
		}
		r.run(start, i, g.Wireframe)
		start = i
	}
	return dst
}

type renderer struct {
	dst   *image.RGBA
	mesh  *svgmesh.Mesh
	view  f32.Aff3
	width float32
	ras   *vector.Rasterizer
}

func (r *renderer) prim(i int) uint32 {
	return r.mesh.Vertices[r.mesh.Indices[i]].PrimitiveIndex
}

// run draws triangles [start, end) of the index buffer.
func (r *renderer) run(start, end int, wireframe bool) {
	pi := r.prim(start)
	if int(pi) >= len(r.mesh.Primitives) {
		return
	}
	p := r.mesh.Primitives[pi]
	if p.Color.A == 0 {
		return
	}
	var xf svgmesh.Transform
	if int(p.TransformIndex) < len(r.mesh.Transforms) {
		xf = r.mesh.Transforms[p.TransformIndex]
	} else {
		xf = svgmesh.PackTransform(identity)
	}
	m := mul(r.view, xf)

	r.ras.Reset(r.dst.Bounds().Dx(), r.dst.Bounds().Dy())
	for i := start; i+2 < end; i += 3 {
		a := apply(m, r.mesh.Vertices[r.mesh.Indices[i]].Position)
		b := apply(m, r.mesh.Vertices[r.mesh.Indices[i+1]].Position)
		c := apply(m, r.mesh.Vertices[r.mesh.Indices[i+2]].Position)
		if wireframe {
			r.edge(a, b)
			r.edge(b, c)
			r.edge(c, a)
		} else {
			r.triangle(a, b, c)
		}
	}
	src := image.NewUniform(color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: p.Color.A})
	r.ras.Draw(r.dst, r.dst.Bounds(), src, image.Point{})
}

// triangle adds a counter-clockwise copy of abc. The rasterizer sums
// signed coverage, so mixed windings would cancel.
func (r *renderer) triangle(a, b, c f32.Vec2) {
	if cross(a, b, c) < 0 {
		b, c = c, b
	}
	r.ras.MoveTo(a[0], a[1])
	r.ras.LineTo(b[0], b[1])
	r.ras.LineTo(c[0], c[1])
	r.ras.ClosePath()
}

func (r *renderer) edge(a, b f32.Vec2) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := length(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*r.width, dx/l*r.width
	p0 := f32.Vec2{a[0] + nx, a[1] + ny}
	p1 := f32.Vec2{b[0] + nx, b[1] + ny}
	p2 := f32.Vec2{b[0] - nx, b[1] - ny}
	p3 := f32.Vec2{a[0] - nx, a[1] - ny}
	r.triangle(p0, p1, p2)
	r.triangle(p0, p2, p3)
}

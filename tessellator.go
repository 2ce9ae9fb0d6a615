// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgmesh

import (
	"fmt"

	"github.com/gogpu/svgmesh/path"
	"github.com/gogpu/svgmesh/scene"
	"github.com/gogpu/svgmesh/svg"
	"github.com/gogpu/svgmesh/tess"
)

// Tessellator converts scene trees into meshes.
//
// A Tessellator holds only its configuration and triangulators; every call
// builds its own Mesh. It may be reused sequentially but not concurrently,
// since the default triangulators keep scratch buffers.
type Tessellator struct {
	opts options
}

// New creates a Tessellator.
func New(opts ...Option) *Tessellator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tessellator{opts: o}
}

// Tessellate converts tree with a default Tessellator.
func Tessellate(tree *scene.Tree, opts ...Option) (*Mesh, error) {
	return New(opts...).Tessellate(tree)
}

// TessellateSVG parses an SVG document and tessellates it.
// Parse failures are returned as *ParseError.
func TessellateSVG(data []byte, opts ...Option) (*Mesh, error) {
	tree, err := svg.Parse(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return New(opts...).Tessellate(tree)
}

// ParseSVGFile reads and parses an SVG file. Read and parse failures are
// returned as *ParseError.
func ParseSVGFile(name string) (*scene.Tree, error) {
	tree, err := svg.ParseFile(name)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return tree, nil
}

// TessellateSVGFile reads, parses and tessellates an SVG file.
func TessellateSVGFile(name string, opts ...Option) (*Mesh, error) {
	tree, err := ParseSVGFile(name)
	if err != nil {
		return nil, err
	}
	return New(opts...).Tessellate(tree)
}

// Tessellate walks tree depth-first and tessellates the fill and then the
// stroke of every path.
//
// A fill that fails to tessellate aborts the call with a *GeometryError and
// no mesh. A stroke that fails is dropped together with its primitive and
// the walk continues.
func (t *Tessellator) Tessellate(tree *scene.Tree) (*Mesh, error) {
	if tree == nil {
		return nil, ErrNilTree
	}

	r := run{
		opts:       &t.opts,
		transforms: newTransformTable(),
	}
	index := 0
	for p := range tree.Paths() {
		if err := r.path(p, index); err != nil {
			return nil, err
		}
		index++
	}

	mesh := &Mesh{
		Vertices:   r.buffers.Vertices,
		Indices:    r.buffers.Indices,
		Primitives: r.primitives,
		Transforms: r.transforms.entries,
	}
	Logger().Info("svgmesh: tessellated",
		"paths", index,
		"vertices", len(mesh.Vertices),
		"triangles", mesh.TriangleCount(),
		"primitives", len(mesh.Primitives),
		"transforms", len(mesh.Transforms),
		"strokesDropped", r.dropped,
	)
	return mesh, nil
}

// run is the accumulator of one Tessellate call.
type run struct {
	opts       *options
	buffers    tess.VertexBuffers[Vertex]
	primitives []Primitive
	transforms *transformTable
	dropped    int
}

func (r *run) path(p *scene.Path, index int) error {
	xf := r.transforms.visit(p.Transform)

	if p.Fill != nil {
		if err := r.fill(p, index, xf); err != nil {
			return &GeometryError{PathID: p.ID, PathIndex: index, Err: err}
		}
	}
	if p.Stroke != nil {
		if err := r.stroke(p, index, xf); err != nil {
			r.dropped++
			Logger().Warn("svgmesh: stroke dropped",
				"path", index, "id", p.ID, "error", err)
		}
	}
	return nil
}

func (r *run) fill(p *scene.Path, index int, xf uint32) error {
	color := ResolveFill(p.Fill)
	if !isSolid(p.Fill.Paint) {
		logUnsupported(p, index, "fill", p.Fill.Paint)
	}
	if r.opts.skipInvisible && color.A == 0 {
		return nil
	}

	opts := tess.FillOptions{Tolerance: r.opts.tolerance, Rule: p.Fill.Rule}
	if r.opts.fillRule != nil {
		opts.Rule = *r.opts.fillRule
	}

	prim := r.push(xf, color)
	b := r.builder(prim)
	if err := r.opts.filler.TessellateFill(path.Events(p.Segments), opts, b); err != nil {
		return err
	}
	logPass(p, index, "fill", prim, b)
	return nil
}

func (r *run) stroke(p *scene.Path, index int, xf uint32) error {
	color, style := ResolveStroke(p.Stroke)
	if !isSolid(p.Stroke.Paint) {
		logUnsupported(p, index, "stroke", p.Stroke.Paint)
	}
	if r.opts.skipInvisible && color.A == 0 {
		return nil
	}

	nv, ni := len(r.buffers.Vertices), len(r.buffers.Indices)
	prim := r.push(xf, color)
	b := r.builder(prim)
	if err := r.opts.stroker.TessellateStroke(path.Events(p.Segments), style.Options(r.opts.tolerance), b); err != nil {
		// Custom strokers may not abort their own output.
		clear(r.buffers.Vertices[nv:])
		r.buffers.Vertices = r.buffers.Vertices[:nv]
		r.buffers.Indices = r.buffers.Indices[:ni]
		r.primitives = r.primitives[:prim]
		return err
	}
	logPass(p, index, "stroke", prim, b)
	return nil
}

// push appends a primitive and returns its index.
func (r *run) push(xf uint32, c Color) uint32 {
	r.primitives = append(r.primitives, Primitive{TransformIndex: xf, Color: c})
	return uint32(len(r.primitives) - 1)
}

func (r *run) builder(prim uint32) *tess.BuffersBuilder[Vertex] {
	b := tess.NewBuffersBuilder[Vertex](&r.buffers, vertexTagger{primitive: prim})
	b.Limit = r.opts.vertexLimit
	return b
}

func logPass(p *scene.Path, index int, kind string, prim uint32, b *tess.BuffersBuilder[Vertex]) {
	c := b.EndGeometry()
	Logger().Debug("svgmesh: "+kind+" pass",
		"path", index, "id", p.ID, "primitive", prim,
		"vertices", c.Vertices, "indices", c.Indices)
}

func logUnsupported(p *scene.Path, index int, kind string, paint scene.Paint) {
	Logger().Debug("svgmesh: unsupported paint, using fallback color",
		"path", index, "id", p.ID, "pass", kind, "paint", paintName(paint))
}

func paintName(p scene.Paint) string {
	switch p := p.(type) {
	case nil:
		return "none"
	case scene.LinearGradient:
		return "linearGradient#" + p.ID
	case scene.RadialGradient:
		return "radialGradient#" + p.ID
	case scene.Pattern:
		return "pattern#" + p.ID
	default:
		return fmt.Sprintf("%T", p)
	}
}

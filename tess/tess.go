// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tess turns canonical path events into indexed triangles.
//
// Two tessellators are provided:
//
//   - FillTessellator flattens every sub-path into a closed contour and
//     triangulates the interior under the non-zero or even-odd rule. A simple
//     outline with disjoint holes goes through poly2tri's constrained
//     Delaunay triangulation; self-intersecting or overlapping contours go
//     through a trapezoidal scanline sweep.
//   - StrokeTessellator emits the stroke outline directly as triangles: one
//     quad per flattened segment plus join and cap geometry.
//
// Both write through a GeometryBuilder, so the caller decides the vertex
// type. BuffersBuilder covers the common case of appending to shared
// vertex and index slices.
//
// Usage:
//
//	var buf tess.VertexBuffers[path.Point]
//	b := tess.NewBuffersBuilder(&buf, tess.VertexConstructorFunc[path.Point](
//	    func(p path.Point) path.Point { return p }))
//	err := tess.NewFillTessellator().TessellateFill(path.Events(segs), tess.DefaultFillOptions(), b)
package tess

import (
	"iter"

	"github.com/gogpu/svgmesh/path"
	"github.com/gogpu/svgmesh/scene"
)

// DefaultTolerance is the maximum distance between a curve and its
// flattened approximation, in user units.
const DefaultTolerance float32 = 0.1

// FillOptions configures fill tessellation.
type FillOptions struct {
	Tolerance float32
	Rule      scene.FillRule
}

// DefaultFillOptions returns non-zero filling at DefaultTolerance.
func DefaultFillOptions() FillOptions {
	return FillOptions{Tolerance: DefaultTolerance, Rule: scene.FillRuleNonZero}
}

// WithTolerance returns a copy with the given tolerance.
func (o FillOptions) WithTolerance(t float32) FillOptions {
	o.Tolerance = t
	return o
}

// StrokeOptions configures stroke tessellation.
type StrokeOptions struct {
	Tolerance  float32
	Width      float32
	Cap        scene.LineCap
	Join       scene.LineJoin
	MiterLimit float32
}

// DefaultStrokeOptions returns a 1-unit butt/miter stroke at DefaultTolerance.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Tolerance:  DefaultTolerance,
		Width:      1,
		Cap:        scene.LineCapButt,
		Join:       scene.LineJoinMiter,
		MiterLimit: 4,
	}
}

// WithTolerance returns a copy with the given tolerance.
func (o StrokeOptions) WithTolerance(t float32) StrokeOptions {
	o.Tolerance = t
	return o
}

// Filler triangulates the interior of a path. *FillTessellator is the
// default implementation.
type Filler interface {
	TessellateFill(events iter.Seq[path.Event], opts FillOptions, out GeometryBuilder) error
}

// Stroker triangulates the outline of a path. *StrokeTessellator is the
// default implementation.
type Stroker interface {
	TessellateStroke(events iter.Seq[path.Event], opts StrokeOptions, out GeometryBuilder) error
}

// effectiveTolerance guards against zero or negative tolerances, which would
// make flattening diverge.
func effectiveTolerance(t float32) float64 {
	if !(t > 0) {
		return float64(DefaultTolerance)
	}
	return float64(t)
}

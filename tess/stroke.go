// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"fmt"
	"iter"
	"math"

	"github.com/gogpu/svgmesh/path"
	"github.com/gogpu/svgmesh/scene"
)

// maxArcSegments bounds the fan used for round joins and caps.
const maxArcSegments = 128

// StrokeTessellator triangulates stroke outlines.
//
// Every flattened segment becomes a quad of the stroke width. Corners are
// filled with join triangles on the outer side of the turn and open
// sub-paths get caps. Overlapping triangles are left as is; the stroke is
// drawn with a single color so overlap is invisible.
type StrokeTessellator struct{}

// NewStrokeTessellator creates a stroke tessellator.
func NewStrokeTessellator() *StrokeTessellator {
	return &StrokeTessellator{}
}

// TessellateStroke flattens events and writes the stroke triangles to out.
// On error nothing is left in out.
func (t *StrokeTessellator) TessellateStroke(events iter.Seq[path.Event], opts StrokeOptions, out GeometryBuilder) error {
	w := float64(opts.Width)
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, opts.Width)
	}

	out.BeginGeometry()
	contours, err := flatten(events, opts.Tolerance)
	if err == nil {
		s := stroker{
			out:        out,
			hw:         w / 2,
			tol:        effectiveTolerance(opts.Tolerance),
			cap:        opts.Cap,
			join:       opts.Join,
			miterLimit: float64(opts.MiterLimit),
		}
		if s.miterLimit < 1 {
			s.miterLimit = 1
		}
		for _, c := range contours {
			if err = s.contour(c); err != nil {
				break
			}
		}
	}
	if err != nil {
		out.AbortGeometry()
		return err
	}
	out.EndGeometry()
	return nil
}

type stroker struct {
	out        GeometryBuilder
	hw         float64
	tol        float64
	cap        scene.LineCap
	join       scene.LineJoin
	miterLimit float64
}

func (s *stroker) contour(c contour) error {
	pts := c.Points
	n := len(pts)
	if n == 1 {
		return s.dot(pts[0])
	}

	if !c.Closed {
		for i := 0; i+1 < n; i++ {
			if err := s.segment(pts[i], pts[i+1]); err != nil {
				return err
			}
		}
		for i := 1; i+1 < n; i++ {
			if err := s.joinAt(pts[i-1], pts[i], pts[i+1]); err != nil {
				return err
			}
		}
		if err := s.capAt(pts[0], pts[0].sub(pts[1]).normalize()); err != nil {
			return err
		}
		return s.capAt(pts[n-1], pts[n-1].sub(pts[n-2]).normalize())
	}

	for i := range n {
		if err := s.segment(pts[i], pts[(i+1)%n]); err != nil {
			return err
		}
	}
	for i := range n {
		if err := s.joinAt(pts[(i+n-1)%n], pts[i], pts[(i+1)%n]); err != nil {
			return err
		}
	}
	return nil
}

// segment emits the quad covering p0-p1.
func (s *stroker) segment(p0, p1 vec) error {
	nrm := p1.sub(p0).normalize().perp().scale(s.hw)
	return s.quad(p0.add(nrm), p1.add(nrm), p1.sub(nrm), p0.sub(nrm))
}

// joinAt fills the outer corner at p between the segments prev-p and p-next.
func (s *stroker) joinAt(prev, p, next vec) error {
	d0 := p.sub(prev).normalize()
	d1 := next.sub(p).normalize()
	cross := d0.cross(d1)
	dot := d0.dot(d1)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return nil
	}

	// The outer side of a left turn is on the right: opposite the normals.
	side := -1.0
	if cross < 0 {
		side = 1.0
	}
	n0 := d0.perp().scale(side)
	n1 := d1.perp().scale(side)
	a := p.add(n0.scale(s.hw))
	b := p.add(n1.scale(s.hw))

	switch s.join {
	case scene.LineJoinRound:
		sweep := math.Atan2(n0.cross(n1), n0.dot(n1))
		if math.Abs(cross) < 1e-9 {
			// Full reversal: bulge forward along d0.
			sweep = -side * math.Pi
		}
		return s.fan(p, n0.scale(s.hw), sweep)

	case scene.LineJoinMiter:
		denom := 1 + n0.dot(n1)
		if denom > 1e-12 {
			cosHalf := math.Sqrt(denom / 2)
			if 1/cosHalf <= s.miterLimit {
				m := p.add(n0.add(n1).scale(s.hw / denom))
				if err := s.triangle(p, a, m); err != nil {
					return err
				}
				return s.triangle(p, m, b)
			}
		}
	}
	return s.triangle(p, a, b)
}

// capAt emits the cap at an open end point p; dir points out of the stroke.
func (s *stroker) capAt(p, dir vec) error {
	nrm := dir.perp().scale(s.hw)
	switch s.cap {
	case scene.LineCapSquare:
		ext := dir.scale(s.hw)
		return s.quad(p.add(nrm), p.add(nrm).add(ext), p.sub(nrm).add(ext), p.sub(nrm))
	case scene.LineCapRound:
		// perp(dir) rotated by -90 degrees is dir.
		return s.fan(p, nrm, -math.Pi)
	}
	return nil
}

// dot draws a zero-length sub-path, which only shows with round or square caps.
func (s *stroker) dot(p vec) error {
	switch s.cap {
	case scene.LineCapRound:
		return s.fan(p, vec{s.hw, 0}, 2*math.Pi)
	case scene.LineCapSquare:
		h := s.hw
		return s.quad(vec{p.X - h, p.Y - h}, vec{p.X + h, p.Y - h}, vec{p.X + h, p.Y + h}, vec{p.X - h, p.Y + h})
	}
	return nil
}

// arcSegments returns how many chords approximate an arc of the given sweep
// within tolerance.
func (s *stroker) arcSegments(sweep float64) int {
	step := math.Pi / 2
	if s.tol < s.hw {
		step = 2 * math.Acos(1-s.tol/s.hw)
	}
	n := int(math.Ceil(math.Abs(sweep) / step))
	return max(1, min(n, maxArcSegments))
}

// fan emits a triangle fan around center, starting at center+from and
// rotating by sweep radians.
func (s *stroker) fan(center, from vec, sweep float64) error {
	n := s.arcSegments(sweep)
	c, err := s.out.AddVertex(center.point())
	if err != nil {
		return err
	}
	prev, err := s.out.AddVertex(center.add(from).point())
	if err != nil {
		return err
	}
	step := sweep / float64(n)
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(step * float64(i))
		r := vec{from.X*cos - from.Y*sin, from.X*sin + from.Y*cos}
		cur, err := s.out.AddVertex(center.add(r).point())
		if err != nil {
			return err
		}
		s.out.AddTriangle(c, prev, cur)
		prev = cur
	}
	return nil
}

func (s *stroker) triangle(a, b, c vec) error {
	ia, err := s.out.AddVertex(a.point())
	if err != nil {
		return err
	}
	ib, err := s.out.AddVertex(b.point())
	if err != nil {
		return err
	}
	ic, err := s.out.AddVertex(c.point())
	if err != nil {
		return err
	}
	s.out.AddTriangle(ia, ib, ic)
	return nil
}

func (s *stroker) quad(a, b, c, d vec) error {
	var ids [4]VertexID
	for i, p := range [4]vec{a, b, c, d} {
		id, err := s.out.AddVertex(p.point())
		if err != nil {
			return err
		}
		ids[i] = id
	}
	s.out.AddTriangle(ids[0], ids[1], ids[2])
	s.out.AddTriangle(ids[0], ids[2], ids[3])
	return nil
}

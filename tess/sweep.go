// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tess

import (
	"slices"

	"github.com/gogpu/svgmesh/scene"
)

// edge is a non-horizontal polygon edge oriented top to bottom.
// winding is +1 when the source edge pointed down, -1 when it pointed up.
type edge struct {
	x0, y0  float64
	x1, y1  float64
	winding int
}

// xAt returns the edge's x coordinate at y, exact at the end points.
func (e *edge) xAt(y float64) float64 {
	switch {
	case y <= e.y0:
		return e.x0
	case y >= e.y1:
		return e.x1
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + t*(e.x1-e.x0)
}

func inside(winding int, rule scene.FillRule) bool {
	if rule == scene.FillRuleEvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// sweep triangulates arbitrary contours by cutting the plane into horizontal
// bands at every vertex and edge crossing. Inside each band the edges do not
// cross, so the filled spans are trapezoids bounded by two edges.
func (t *FillTessellator) sweep(contours []contour, rule scene.FillRule, out GeometryBuilder) error {
	edges := t.edges[:0]
	for _, c := range contours {
		n := len(c.Points)
		for i := range n {
			a, b := c.Points[i], c.Points[(i+1)%n]
			switch {
			case a.Y < b.Y:
				edges = append(edges, edge{a.X, a.Y, b.X, b.Y, 1})
			case a.Y > b.Y:
				edges = append(edges, edge{b.X, b.Y, a.X, a.Y, -1})
			}
		}
	}
	t.edges = edges
	if len(edges) == 0 {
		return nil
	}
	slices.SortFunc(edges, func(a, b edge) int {
		switch {
		case a.y0 < b.y0:
			return -1
		case a.y0 > b.y0:
			return 1
		}
		return 0
	})

	ys := t.ys[:0]
	for i := range edges {
		ys = append(ys, edges[i].y0, edges[i].y1)
	}
	ys = appendCrossings(ys, edges)
	slices.Sort(ys)
	ys = slices.Compact(ys)
	t.ys = ys

	tb := trapezoidBuilder{out: out, ids: make(map[vec]VertexID)}
	var active []int
	next := 0
	for bi := 0; bi+1 < len(ys); bi++ {
		ya, yb := ys[bi], ys[bi+1]

		for next < len(edges) && edges[next].y0 <= ya {
			active = append(active, next)
			next++
		}
		active = slices.DeleteFunc(active, func(i int) bool {
			return edges[i].y1 <= ya
		})
		if len(active) < 2 {
			continue
		}

		ym := (ya + yb) / 2
		slices.SortFunc(active, func(i, j int) int {
			xi, xj := edges[i].xAt(ym), edges[j].xAt(ym)
			switch {
			case xi < xj:
				return -1
			case xi > xj:
				return 1
			}
			return 0
		})

		winding := 0
		left := -1
		for _, ei := range active {
			before := inside(winding, rule)
			winding += edges[ei].winding
			after := inside(winding, rule)
			switch {
			case !before && after:
				left = ei
			case before && !after:
				if err := tb.trapezoid(&edges[left], &edges[ei], ya, yb); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// appendCrossings appends the y coordinate of every proper crossing between
// two edges. edges must be sorted by y0.
func appendCrossings(ys []float64, edges []edge) []float64 {
	for i := range edges {
		a := &edges[i]
		for j := i + 1; j < len(edges) && edges[j].y0 < a.y1; j++ {
			b := &edges[j]
			if y, ok := crossingY(a, b); ok {
				ys = append(ys, y)
			}
		}
	}
	return ys
}

// crossingY returns the y of the intersection of a and b when it lies
// strictly inside both edges' vertical extent.
func crossingY(a, b *edge) (float64, bool) {
	lo := max(a.y0, b.y0)
	hi := min(a.y1, b.y1)
	if lo >= hi {
		return 0, false
	}
	// Signed horizontal distance at both ends of the shared range.
	d0 := a.xAt(lo) - b.xAt(lo)
	d1 := a.xAt(hi) - b.xAt(hi)
	if (d0 < 0 && d1 > 0) || (d0 > 0 && d1 < 0) {
		y := lo + (hi-lo)*d0/(d0-d1)
		if y > lo && y < hi {
			return y, true
		}
	}
	return 0, false
}

// trapezoidBuilder emits band trapezoids, sharing vertices that land on
// identical coordinates.
type trapezoidBuilder struct {
	out GeometryBuilder
	ids map[vec]VertexID
}

func (tb *trapezoidBuilder) vertex(p vec) (VertexID, error) {
	if id, ok := tb.ids[p]; ok {
		return id, nil
	}
	id, err := tb.out.AddVertex(p.point())
	if err != nil {
		return 0, err
	}
	tb.ids[p] = id
	return id, nil
}

func (tb *trapezoidBuilder) trapezoid(l, r *edge, ya, yb float64) error {
	tl := vec{l.xAt(ya), ya}
	tr := vec{r.xAt(ya), ya}
	br := vec{r.xAt(yb), yb}
	bl := vec{l.xAt(yb), yb}

	topDegenerate := tr.X <= tl.X
	bottomDegenerate := br.X <= bl.X
	if topDegenerate && bottomDegenerate {
		return nil
	}

	var corners []vec
	switch {
	case topDegenerate:
		corners = []vec{tl, br, bl}
	case bottomDegenerate:
		corners = []vec{tl, tr, br}
	default:
		corners = []vec{tl, tr, br, bl}
	}
	var ids [4]VertexID
	for i, c := range corners {
		id, err := tb.vertex(c)
		if err != nil {
			return err
		}
		ids[i] = id
	}
	tb.out.AddTriangle(ids[0], ids[1], ids[2])
	if len(corners) == 4 {
		tb.out.AddTriangle(ids[0], ids[2], ids[3])
	}
	return nil
}

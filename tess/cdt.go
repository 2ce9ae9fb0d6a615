package tess

import (
	"errors"
	"fmt"
	"math"

	"github.com/ByteArena/poly2tri-go"

	"github.com/gogpu/svgmesh/scene"
)

// cdtLimit is the largest total point count handed to poly2tri. Checking
// that contours are simple and disjoint is quadratic, so bigger inputs go
// straight to the sweep.
const cdtLimit = 512

var errCDTVertex = errors.New("poly2tri returned an unknown vertex")

// holeLayout reports whether contours are one simple outer boundary plus
// disjoint simple holes strictly inside it, such that filling them under
// rule gives the outer area minus the holes. It returns the index of the
// outer contour.
//
// poly2tri has no notion of winding, so under non-zero every hole must run
// against the outer boundary; otherwise the sweep decides.
func holeLayout(contours []contour, rule scene.FillRule) (int, bool) {
	total, outer, outerArea := 0, -1, 0.0
	for i, c := range contours {
		total += len(c.Points)
		if a := math.Abs(signedArea(c.Points)); a > outerArea {
			outer, outerArea = i, a
		}
	}
	if outer < 0 || total > cdtLimit {
		return 0, false
	}
	boundary := contours[outer].Points
	if !isSimplePolygon(boundary) {
		return 0, false
	}
	ccw := signedArea(boundary) > 0

	for i, c := range contours {
		if i == outer {
			continue
		}
		hole := c.Points
		a := signedArea(hole)
		switch {
		case a == 0, !isSimplePolygon(hole):
			return 0, false
		case rule == scene.FillRuleNonZero && (a > 0) == ccw:
			return 0, false
		case polygonsTouch(hole, boundary), !insidePolygon(hole[0], boundary):
			return 0, false
		}
		for j := range i {
			if j == outer {
				continue
			}
			other := contours[j].Points
			if polygonsTouch(hole, other) ||
				insidePolygon(hole[0], other) || insidePolygon(other[0], hole) {
				return 0, false
			}
		}
	}
	return outer, true
}

// triangulate runs poly2tri's constrained Delaunay triangulation over the
// outer contour and its holes. Triangles index into the returned points,
// which list the outer contour first and then every hole.
//
// poly2tri panics on input it cannot handle (collinear constraints,
// repeated points); the panic is returned as an error.
func triangulate(contours []contour, outer int) (pts []vec, tris [][3]int, err error) {
	defer func() {
		if r := recover(); r != nil {
			pts, tris, err = nil, nil, fmt.Errorf("poly2tri: %v", r)
		}
	}()

	index := make(map[*poly2tri.Point]int)
	ring := func(c contour) []*poly2tri.Point {
		r := make([]*poly2tri.Point, len(c.Points))
		for i, p := range c.Points {
			q := poly2tri.NewPoint(p.X, p.Y)
			index[q] = len(pts)
			pts = append(pts, p)
			r[i] = q
		}
		return r
	}

	ctx := poly2tri.NewSweepContext(ring(contours[outer]), false)
	for i, c := range contours {
		if i != outer {
			ctx.AddHole(ring(c))
		}
	}
	ctx.Triangulate()

	for _, t := range ctx.GetTriangles() {
		var tri [3]int
		for k, p := range t.Points {
			id, ok := index[p]
			if !ok || k > 2 {
				return nil, nil, errCDTVertex
			}
			tri[k] = id
		}
		tris = append(tris, tri)
	}
	return pts, tris, nil
}

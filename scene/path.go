package scene

import (
	"iter"
	"math"
)

// Point is a 2D point in user space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Segment is a single element of a path's outline.
// Parsed paths only contain MoveTo, LineTo, CubicTo and ClosePath;
// quadratic curves and arcs are converted to cubics on input.
type Segment interface {
	isSegment()
}

// MoveTo starts a new sub-path at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// ClosePath closes the current sub-path.
type ClosePath struct{}

func (ClosePath) isSegment() {}

// kappa approximates a quarter circle with a cubic Bezier: 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307936

// Path is a drawable shape node: an outline plus optional fill and stroke.
type Path struct {
	// ID is the source element id, if any.
	ID string

	// Segments is the outline in user space.
	Segments []Segment

	// Fill is nil when the shape is not filled.
	Fill *Fill

	// Stroke is nil when the shape is not stroked.
	Stroke *Stroke

	// Transform is the absolute transform, already composed with every
	// ancestor group.
	Transform Transform

	start   Point
	current Point
}

// NewPath creates an empty path with an identity transform.
func NewPath() *Path {
	return &Path{
		Segments:  make([]Segment, 0, 8),
		Transform: Identity(),
	}
}

// Kind returns KindPath.
func (p *Path) Kind() NodeKind { return KindPath }

// MoveTo starts a new sub-path.
func (p *Path) MoveTo(x, y float64) *Path {
	pt := Pt(x, y)
	p.Segments = append(p.Segments, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	return p
}

// LineTo draws a line from the current point.
func (p *Path) LineTo(x, y float64) *Path {
	pt := Pt(x, y)
	p.Segments = append(p.Segments, LineTo{Point: pt})
	p.current = pt
	return p
}

// QuadTo draws a quadratic Bezier curve, stored as the equivalent cubic.
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p0 := p.current
	c1 := Pt(p0.X+2.0/3.0*(cx-p0.X), p0.Y+2.0/3.0*(cy-p0.Y))
	c2 := Pt(x+2.0/3.0*(cx-x), y+2.0/3.0*(cy-y))
	return p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// CubicTo draws a cubic Bezier curve from the current point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	pt := Pt(x, y)
	p.Segments = append(p.Segments, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
	return p
}

// Close closes the current sub-path. The current point returns to the
// sub-path start.
func (p *Path) Close() *Path {
	p.Segments = append(p.Segments, ClosePath{})
	p.current = p.start
	return p
}

// Current returns the current point.
func (p *Path) Current() Point {
	return p.current
}

// Start returns the first point of the current sub-path.
func (p *Path) Start() Point {
	return p.start
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Rectangle adds a closed rectangle.
func (p *Path) Rectangle(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// RoundedRectangle adds a rectangle with elliptical corners.
// Radii are clamped to half the rectangle size.
func (p *Path) RoundedRectangle(x, y, w, h, rx, ry float64) *Path {
	rx = math.Min(rx, w/2)
	ry = math.Min(ry, h/2)
	if rx <= 0 || ry <= 0 {
		return p.Rectangle(x, y, w, h)
	}
	kx, ky := kappa*rx, kappa*ry

	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.CubicTo(x+w-rx+kx, y, x+w, y+ry-ky, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.CubicTo(x+w, y+h-ry+ky, x+w-rx+kx, y+h, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.CubicTo(x+rx-kx, y+h, x, y+h-ry+ky, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-ky, x+rx-kx, y, x+rx, y)
	return p.Close()
}

// Circle adds a closed circle.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed axis-aligned ellipse made of four cubic arcs.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	kx, ky := kappa*rx, kappa*ry

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	return p.Close()
}

// ArcTo draws an SVG elliptical arc from the current point to (x, y),
// approximated by cubic Bezier curves of at most 90 degrees each.
// Degenerate radii produce a straight line.
func (p *Path) ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) *Path {
	x0, y0 := p.current.X, p.current.Y
	if x0 == x && y0 == y {
		return p
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return p.LineTo(x, y)
	}

	sinPhi, cosPhi := math.Sincos(xAxisRotation)

	// Endpoint to center parameterization.
	dx2, dy2 := (x0-x)/2, (y0-y)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (x0+x)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+y)/2

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dtheta)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := dtheta / float64(n)
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	ellipse := func(theta float64) (px, py, tx, ty float64) {
		sin, cos := math.Sincos(theta)
		ex, ey := rx*cos, ry*sin
		dex, dey := -rx*sin, ry*cos
		px = cosPhi*ex - sinPhi*ey + cx
		py = sinPhi*ex + cosPhi*ey + cy
		tx = cosPhi*dex - sinPhi*dey
		ty = sinPhi*dex + cosPhi*dey
		return px, py, tx, ty
	}

	theta := theta1
	sx, sy, stx, sty := ellipse(theta)
	for i := 0; i < n; i++ {
		theta += step
		ex, ey, etx, ety := ellipse(theta)
		if i == n-1 {
			ex, ey = x, y
		}
		p.CubicTo(sx+alpha*stx, sy+alpha*sty, ex-alpha*etx, ey-alpha*ety, ex, ey)
		sx, sy, stx, sty = ex, ey, etx, ety
	}
	return p
}

// vectorAngle returns the signed angle from (ux, uy) to (vx, vy).
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// Points iterates over every point stored in the segments, including
// control points.
func (p *Path) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, seg := range p.Segments {
			switch s := seg.(type) {
			case MoveTo:
				if !yield(s.Point) {
					return
				}
			case LineTo:
				if !yield(s.Point) {
					return
				}
			case CubicTo:
				if !yield(s.Control1) || !yield(s.Control2) || !yield(s.Point) {
					return
				}
			}
		}
	}
}

// Bounds returns the control-point bounding box in user space.
// An empty path returns the zero Rect.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	for pt := range p.Points() {
		r = r.UnionPoint(pt)
	}
	if r.IsEmpty() {
		return Rect{}
	}
	return r
}

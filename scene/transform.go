package scene

import "math"

// Transform is a 2D affine transformation in SVG matrix order:
//
//	| a  c  e |
//	| b  d  f |
//
// which maps a point as
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// so (E, F) is the translation, matching the SVG matrix(a b c d e f) form.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate creates a translation transform.
func Translate(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}

// Scale creates a scaling transform.
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Rotate creates a rotation transform (angle in radians, clockwise in a
// y-down coordinate system).
func Rotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// SkewX creates a horizontal skew transform (angle in radians).
func SkewX(angle float64) Transform {
	return Transform{A: 1, C: math.Tan(angle), D: 1}
}

// SkewY creates a vertical skew transform (angle in radians).
func SkewY(angle float64) Transform {
	return Transform{A: 1, B: math.Tan(angle), D: 1}
}

// Multiply returns t * o: the result applies o first, then t.
// A child's absolute transform is parent.Multiply(child).
func (t Transform) Multiply(o Transform) Transform {
	return Transform{
		A: t.A*o.A + t.C*o.B,
		B: t.B*o.A + t.D*o.B,
		C: t.A*o.C + t.C*o.D,
		D: t.B*o.C + t.D*o.D,
		E: t.A*o.E + t.C*o.F + t.E,
		F: t.B*o.E + t.D*o.F + t.F,
	}
}

// Apply transforms a point.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// IsFinite reports whether every component is a finite number.
func (t Transform) IsFinite() bool {
	for _, v := range [6]float64{t.A, t.B, t.C, t.D, t.E, t.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ScaleFactor returns the geometric mean of the axis scales, used to size
// tolerances and stroke widths in user space.
func (t Transform) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(t.A*t.D - t.B*t.C))
}

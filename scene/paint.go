package scene

// Paint describes how a fill or stroke is colored.
// Only Color is a solid paint; the other variants are paint servers
// referenced by id.
type Paint interface {
	isPaint()
}

// Color is an opaque sRGB color. Opacity lives on Fill and Stroke.
type Color struct {
	R, G, B uint8
}

func (Color) isPaint() {}

// GradientStop is one color stop of a gradient.
type GradientStop struct {
	Offset  float64
	Color   Color
	Opacity float64
}

// LinearGradient references a linear gradient paint server.
type LinearGradient struct {
	ID             string
	X1, Y1, X2, Y2 float64
	Stops          []GradientStop
}

func (LinearGradient) isPaint() {}

// RadialGradient references a radial gradient paint server.
type RadialGradient struct {
	ID        string
	CX, CY, R float64
	FX, FY    float64
	Stops     []GradientStop
}

func (RadialGradient) isPaint() {}

// Pattern references a pattern paint server.
type Pattern struct {
	ID string
}

func (Pattern) isPaint() {}

// FillRule selects how the interior of a self-intersecting outline is
// determined.
type FillRule int

const (
	// FillRuleNonZero fills regions with a non-zero winding number.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

// String returns the SVG keyword for the rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// LineCap specifies the shape of open sub-path endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke flush with the endpoint.
	LineCapButt LineCap = iota

	// LineCapRound adds a semicircle at the endpoint.
	LineCapRound

	// LineCapSquare extends the stroke by half its width.
	LineCapSquare
)

// String returns the SVG keyword for the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// LineJoin specifies the shape of corners between stroked segments.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet.
	LineJoinMiter LineJoin = iota

	// LineJoinRound rounds the corner with a circular arc.
	LineJoinRound

	// LineJoinBevel cuts the corner with a straight line.
	LineJoinBevel
)

// String returns the SVG keyword for the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// Fill describes how a shape's interior is painted.
type Fill struct {
	Paint   Paint
	Opacity float64 // in [0, 1]
	Rule    FillRule
}

// DefaultFill returns an opaque black non-zero fill, the SVG initial value.
func DefaultFill() Fill {
	return Fill{Paint: Color{}, Opacity: 1, Rule: FillRuleNonZero}
}

// Stroke describes how a shape's outline is painted.
type Stroke struct {
	Paint   Paint
	Opacity float64 // in [0, 1]

	// Width is the stroke width in user units. Default: 1.0
	Width float64

	// Cap is the shape of open endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of corners. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0 (matches SVG)
	MiterLimit float64
}

// DefaultStroke returns an opaque black 1-unit stroke with butt caps and
// miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Paint:      Color{},
		Opacity:    1,
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap.
func (s Stroke) WithCap(c LineCap) Stroke {
	s.Cap = c
	return s
}

// WithJoin returns a copy of the Stroke with the given line join.
func (s Stroke) WithJoin(j LineJoin) Stroke {
	s.Join = j
	return s
}

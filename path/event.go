// Package path converts scene path segments into the canonical event stream
// consumed by the triangulators.
//
// Every stream is a sequence of sub-paths, each shaped as
//
//	Begin (Line | Cubic)* End
//
// so a consumer never sees a Line or Cubic outside an open sub-path and never
// sees two Begins without an End between them.
package path

import "fmt"

// Point is a single-precision point. Scene coordinates are narrowed to
// float32 when events are produced.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point { return Point{p.X * s, p.Y * s} }

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Event is one canonical path event: Begin, Line, Cubic or End.
type Event interface {
	isEvent()
}

// Begin opens a sub-path at At.
type Begin struct {
	At Point
}

func (Begin) isEvent() {}

// Line is a straight edge.
type Line struct {
	From, To Point
}

func (Line) isEvent() {}

// Cubic is a cubic Bezier edge.
type Cubic struct {
	From, Ctrl1, Ctrl2, To Point
}

func (Cubic) isEvent() {}

// End terminates the open sub-path. Close is true only when the source
// contained an explicit ClosePath.
type End struct {
	Last, First Point
	Close       bool
}

func (End) isEvent() {}

// Format renders an event for logs and test failures.
func Format(e Event) string {
	switch e := e.(type) {
	case Begin:
		return fmt.Sprintf("Begin%v", e.At)
	case Line:
		return fmt.Sprintf("Line%v->%v", e.From, e.To)
	case Cubic:
		return fmt.Sprintf("Cubic%v,%v,%v->%v", e.From, e.Ctrl1, e.Ctrl2, e.To)
	case End:
		return fmt.Sprintf("End(last=%v first=%v close=%t)", e.Last, e.First, e.Close)
	default:
		return fmt.Sprintf("%T", e)
	}
}

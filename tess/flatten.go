package tess

import (
	"fmt"
	"iter"

	"honnef.co/go/curve"

	"github.com/gogpu/svgmesh/path"
)

// contour is one flattened sub-path.
type contour struct {
	Points []vec
	Closed bool
}

// flatten converts an event stream into polylines. Curves are flattened by
// curve.Flatten so that no point of the curve is farther than tolerance
// from the polyline. Consecutive duplicate points are dropped.
func flatten(events iter.Seq[path.Event], tolerance float32) ([]contour, error) {
	var (
		contours []contour
		err      error
	)
	seq := func(yield func(curve.PathElement) bool) {
		err = elements(events, yield)
	}
	for el := range curve.Flatten(seq, effectiveTolerance(tolerance)) {
		switch el.Kind {
		case curve.MoveToKind:
			contours = append(contours, contour{Points: []vec{fromCurve(el.P0)}})
		case curve.LineToKind:
			contours[len(contours)-1].push(fromCurve(el.P0))
		case curve.ClosePathKind:
			c := &contours[len(contours)-1]
			c.Closed = true
			if n := len(c.Points); n > 1 && c.Points[n-1] == c.Points[0] {
				// The closing edge is implicit.
				c.Points = c.Points[:n-1]
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return contours, nil
}

// elements checks that events follow Begin (Line | Cubic)* End and forwards
// them as path elements. Open sub-paths end at the next MoveTo.
func elements(events iter.Seq[path.Event], yield func(curve.PathElement) bool) error {
	open := false
	for e := range events {
		var el curve.PathElement
		switch e := e.(type) {
		case path.Begin:
			if open {
				return fmt.Errorf("%w: Begin inside an open sub-path", ErrMalformedEvents)
			}
			if !fromPoint(e.At).finite() {
				return ErrNonFinite
			}
			open = true
			el = curve.MoveTo(toCurve(e.At))

		case path.Line:
			if !open {
				return fmt.Errorf("%w: Line outside a sub-path", ErrMalformedEvents)
			}
			if !fromPoint(e.To).finite() {
				return ErrNonFinite
			}
			el = curve.LineTo(toCurve(e.To))

		case path.Cubic:
			if !open {
				return fmt.Errorf("%w: Cubic outside a sub-path", ErrMalformedEvents)
			}
			for _, p := range [...]path.Point{e.From, e.Ctrl1, e.Ctrl2, e.To} {
				if !fromPoint(p).finite() {
					return ErrNonFinite
				}
			}
			el = curve.CubicTo(toCurve(e.Ctrl1), toCurve(e.Ctrl2), toCurve(e.To))

		case path.End:
			if !open {
				return fmt.Errorf("%w: End without Begin", ErrMalformedEvents)
			}
			open = false
			if !e.Close {
				continue
			}
			el = curve.ClosePath()

		default:
			continue
		}
		if !yield(el) {
			return nil
		}
	}
	if open {
		return fmt.Errorf("%w: stream ended inside a sub-path", ErrMalformedEvents)
	}
	return nil
}

func (c *contour) push(p vec) {
	if n := len(c.Points); n > 0 && c.Points[n-1] == p {
		return
	}
	c.Points = append(c.Points, p)
}

func toCurve(p path.Point) curve.Point {
	return curve.Point{X: float64(p.X), Y: float64(p.Y)}
}

func fromCurve(p curve.Point) vec {
	return vec{X: p.X, Y: p.Y}
}

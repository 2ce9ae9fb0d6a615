// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"iter"

	"github.com/gogpu/svgmesh/scene"
)

// Adapter is a pull-based producer of canonical events from scene segments.
//
// A MoveTo that interrupts an open sub-path yields two events: the End of the
// old sub-path is returned first and the Begin of the new one is held in a
// single deferred slot until the next call.
//
// An Adapter is single-pass; create a new one to replay the segments.
type Adapter struct {
	segs []scene.Segment
	pos  int

	prev     Point
	first    Point
	needsEnd bool
	deferred Event
}

// NewAdapter returns an adapter over segs. The slice is not copied and must
// not be modified while the adapter is in use.
func NewAdapter(segs []scene.Segment) *Adapter {
	return &Adapter{segs: segs}
}

func narrow(p scene.Point) Point {
	return Point{X: float32(p.X), Y: float32(p.Y)}
}

// Next returns the next event, or false when the stream is exhausted.
func (a *Adapter) Next() (Event, bool) {
	if a.deferred != nil {
		e := a.deferred
		a.deferred = nil
		return e, true
	}

	for a.pos < len(a.segs) {
		seg := a.segs[a.pos]
		a.pos++

		switch s := seg.(type) {
		case scene.MoveTo:
			p := narrow(s.Point)
			if a.needsEnd {
				end := End{Last: a.prev, First: a.first, Close: false}
				a.prev = p
				a.first = p
				a.deferred = Begin{At: p}
				return end, true
			}
			a.prev = p
			a.first = p
			a.needsEnd = true
			return Begin{At: p}, true

		case scene.LineTo:
			from := a.prev
			a.prev = narrow(s.Point)
			return a.edge(Line{From: from, To: a.prev})

		case scene.CubicTo:
			from := a.prev
			a.prev = narrow(s.Point)
			return a.edge(Cubic{
				From:  from,
				Ctrl1: narrow(s.Control1),
				Ctrl2: narrow(s.Control2),
				To:    a.prev,
			})

		case scene.ClosePath:
			if !a.needsEnd {
				// Nothing open to close.
				continue
			}
			a.needsEnd = false
			a.prev = a.first
			return End{Last: a.prev, First: a.first, Close: true}, true
		}
		// Unknown segment kinds are skipped.
	}

	if a.needsEnd {
		a.needsEnd = false
		return End{Last: a.prev, First: a.first, Close: false}, true
	}
	return nil, false
}

// edge returns a Line or Cubic. A drawing segment with no open sub-path
// (input starting without MoveTo, or continuing after ClosePath) opens one
// at the edge's start point first, deferring the edge.
func (a *Adapter) edge(e Event) (Event, bool) {
	if a.needsEnd {
		return e, true
	}
	var from Point
	switch e := e.(type) {
	case Line:
		from = e.From
	case Cubic:
		from = e.From
	}
	a.needsEnd = true
	a.first = from
	a.deferred = e
	return Begin{At: from}, true
}

// Events returns the canonical event stream of segs as an iterator.
// Each call to the returned sequence starts a fresh Adapter.
func Events(segs []scene.Segment) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		a := NewAdapter(segs)
		for {
			e, ok := a.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// Collect drains an event sequence into a slice.
func Collect(events iter.Seq[Event]) []Event {
	var out []Event
	for e := range events {
		out = append(out, e)
	}
	return out
}

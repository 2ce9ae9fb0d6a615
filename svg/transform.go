package svg

import (
	"bytes"
	"math"

	"github.com/gogpu/svgmesh/scene"
)

// parseTransform parses a transform list. Functions compose left to right:
// "translate(10) scale(2)" scales first, then translates.
func parseTransform(b []byte) (scene.Transform, error) {
	t := scene.Identity()
	s := scanner{b: b}
	s.skipSeparators()
	for !s.done() {
		start := s.i
		for s.i < len(b) && (b[s.i] >= 'a' && b[s.i] <= 'z' || b[s.i] >= 'A' && b[s.i] <= 'Z') {
			s.i++
		}
		name := string(bytes.ToLower(b[start:s.i]))
		if name == "" {
			return t, errorAt(s.i, "expected transform function, found %q", s.peek())
		}
		s.skipWhitespace()
		if s.peek() != '(' {
			return t, errorAt(s.i, "expected '(' after %s", name)
		}
		s.i++
		s.skipSeparators()

		var args []float64
		for s.peek() != ')' {
			f, ok := s.number()
			if !ok {
				return t, errorAt(s.i, "invalid argument to %s", name)
			}
			args = append(args, f)
		}
		s.i++
		s.skipSeparators()

		m, ok := transformFunc(name, args)
		if !ok {
			return t, errorAt(start, "invalid %s with %d arguments", name, len(args))
		}
		t = t.Multiply(m)
	}
	return t, nil
}

func transformFunc(name string, a []float64) (scene.Transform, bool) {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	switch name {
	case "matrix":
		if len(a) == 6 {
			return scene.Transform{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}, true
		}
	case "translate":
		switch len(a) {
		case 1:
			return scene.Translate(a[0], 0), true
		case 2:
			return scene.Translate(a[0], a[1]), true
		}
	case "scale":
		switch len(a) {
		case 1:
			return scene.Scale(a[0], a[0]), true
		case 2:
			return scene.Scale(a[0], a[1]), true
		}
	case "rotate":
		switch len(a) {
		case 1:
			return scene.Rotate(rad(a[0])), true
		case 3:
			cx, cy := a[1], a[2]
			return scene.Translate(cx, cy).Multiply(scene.Rotate(rad(a[0]))).Multiply(scene.Translate(-cx, -cy)), true
		}
	case "skewx":
		if len(a) == 1 {
			return scene.SkewX(rad(a[0])), true
		}
	case "skewy":
		if len(a) == 1 {
			return scene.SkewY(rad(a[0])), true
		}
	}
	return scene.Transform{}, false
}

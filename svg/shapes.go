package svg

import (
	"github.com/gogpu/svgmesh/scene"
)

// shape builds the outline of a basic shape or path element. A nil path
// with a nil error means the element renders nothing, such as a rect with
// zero width.
func (p *parser) shape(el *element, vp viewport) (*scene.Path, error) {
	switch el.name {
	case "path":
		return p.pathElement(el)
	case "rect":
		return p.rect(el, vp)
	case "circle":
		return p.circle(el, vp)
	case "ellipse":
		return p.ellipse(el, vp)
	case "line":
		return p.line(el, vp)
	case "polyline":
		return p.poly(el, false)
	case "polygon":
		return p.poly(el, true)
	}
	return nil, nil
}

func (p *parser) pathElement(el *element) (*scene.Path, error) {
	a, ok := el.attr("d")
	if !ok {
		return nil, nil
	}
	path := scene.NewPath()
	if err := parsePathData(a.val, path); err != nil {
		return nil, p.attrError(a, err)
	}
	if path.IsEmpty() {
		return nil, nil
	}
	return path, nil
}

func (p *parser) rect(el *element, vp viewport) (*scene.Path, error) {
	var x, y, w, h float64
	for _, l := range []struct {
		name string
		ref  float64
		dst  *float64
	}{
		{"x", vp.w, &x}, {"y", vp.h, &y}, {"width", vp.w, &w}, {"height", vp.h, &h},
	} {
		if err := p.length(el, l.name, l.ref, l.dst); err != nil {
			return nil, err
		}
	}
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	rx, ry := -1.0, -1.0
	if err := p.length(el, "rx", vp.w, &rx); err != nil {
		return nil, err
	}
	if err := p.length(el, "ry", vp.h, &ry); err != nil {
		return nil, err
	}
	// A missing or negative radius takes the other one's value.
	switch {
	case rx < 0 && ry < 0:
		rx, ry = 0, 0
	case rx < 0:
		rx = ry
	case ry < 0:
		ry = rx
	}
	rx = min(rx, w/2)
	ry = min(ry, h/2)

	path := scene.NewPath()
	if rx > 0 && ry > 0 {
		return path.RoundedRectangle(x, y, w, h, rx, ry), nil
	}
	return path.Rectangle(x, y, w, h), nil
}

func (p *parser) circle(el *element, vp viewport) (*scene.Path, error) {
	var cx, cy, r float64
	if err := p.length(el, "cx", vp.w, &cx); err != nil {
		return nil, err
	}
	if err := p.length(el, "cy", vp.h, &cy); err != nil {
		return nil, err
	}
	if err := p.length(el, "r", vp.diagonal(), &r); err != nil {
		return nil, err
	}
	if r <= 0 {
		return nil, nil
	}
	return scene.NewPath().Circle(cx, cy, r), nil
}

func (p *parser) ellipse(el *element, vp viewport) (*scene.Path, error) {
	var cx, cy float64
	rx, ry := -1.0, -1.0
	for _, l := range []struct {
		name string
		ref  float64
		dst  *float64
	}{
		{"cx", vp.w, &cx}, {"cy", vp.h, &cy}, {"rx", vp.w, &rx}, {"ry", vp.h, &ry},
	} {
		if err := p.length(el, l.name, l.ref, l.dst); err != nil {
			return nil, err
		}
	}
	switch {
	case rx < 0 && ry < 0:
		return nil, nil
	case rx < 0:
		rx = ry
	case ry < 0:
		ry = rx
	}
	if rx == 0 || ry == 0 {
		return nil, nil
	}
	return scene.NewPath().Ellipse(cx, cy, rx, ry), nil
}

func (p *parser) line(el *element, vp viewport) (*scene.Path, error) {
	var x1, y1, x2, y2 float64
	for _, l := range []struct {
		name string
		ref  float64
		dst  *float64
	}{
		{"x1", vp.w, &x1}, {"y1", vp.h, &y1}, {"x2", vp.w, &x2}, {"y2", vp.h, &y2},
	} {
		if err := p.length(el, l.name, l.ref, l.dst); err != nil {
			return nil, err
		}
	}
	return scene.NewPath().MoveTo(x1, y1).LineTo(x2, y2), nil
}

// poly builds polyline and polygon outlines. An odd trailing coordinate is
// dropped.
func (p *parser) poly(el *element, closed bool) (*scene.Path, error) {
	a, ok := el.attr("points")
	if !ok {
		return nil, nil
	}
	pts, err := numbers(a.val)
	if err != nil {
		return nil, p.attrError(a, err)
	}
	if len(pts) < 4 {
		return nil, nil
	}
	path := scene.NewPath().MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		path.LineTo(pts[i], pts[i+1])
	}
	if closed {
		path.Close()
	}
	return path, nil
}

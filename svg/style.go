package svg

import (
	"bytes"

	"github.com/gogpu/svgmesh/scene"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// style is the computed presentation state at one element.
type style struct {
	fill        paintSpec
	fillOpacity float64
	fillRule    scene.FillRule

	stroke        paintSpec
	strokeOpacity float64
	strokeWidth   float64
	cap           scene.LineCap
	join          scene.LineJoin
	miterLimit    float64

	// color is the value currentColor refers to.
	color scene.Color

	// groupOpacity is the product of every ancestor's opacity, opacity is
	// this element's own.
	groupOpacity float64
	opacity      float64

	visible bool
	display bool
}

func initialStyle() style {
	return style{
		fill:          paintSpec{kind: paintColor, alpha: 1},
		fillOpacity:   1,
		stroke:        paintSpec{kind: paintNone},
		strokeOpacity: 1,
		strokeWidth:   1,
		cap:           scene.LineCapButt,
		join:          scene.LineJoinMiter,
		miterLimit:    4,
		groupOpacity:  1,
		opacity:       1,
		visible:       true,
		display:       true,
	}
}

// inherit returns the starting style of a child element.
func (s style) inherit() style {
	c := s
	c.groupOpacity = s.groupOpacity * s.opacity
	c.opacity = 1
	c.display = true
	return c
}

// effectiveOpacity folds the group opacity into a fill or stroke opacity.
func (s *style) effectiveOpacity(own float64) float64 {
	return clamp01(own * s.groupOpacity * s.opacity)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// isProperty reports whether name is a presentation attribute this parser
// understands.
func isProperty(name string) bool {
	switch name {
	case "fill", "fill-opacity", "fill-rule",
		"stroke", "stroke-opacity", "stroke-width", "stroke-linecap", "stroke-linejoin", "stroke-miterlimit",
		"opacity", "color", "display", "visibility":
		return true
	}
	return false
}

// apply sets one property. Invalid values leave the property unchanged, as
// browsers do; inherit keeps the parent value, which is already in place.
func (s *style) apply(name string, val []byte, vp viewport) {
	val = parse.TrimWhitespace(val)
	if len(val) == 0 {
		return
	}
	keyword := string(parse.ToLower(parse.Copy(val)))
	if keyword == "inherit" {
		return
	}

	switch name {
	case "fill":
		if p, ok := parsePaint(val); ok {
			s.fill = p
		}
	case "stroke":
		if p, ok := parsePaint(val); ok {
			s.stroke = p
		}
	case "fill-opacity":
		if f, err := parseNumberOrPercent(val); err == nil {
			s.fillOpacity = clamp01(f)
		}
	case "stroke-opacity":
		if f, err := parseNumberOrPercent(val); err == nil {
			s.strokeOpacity = clamp01(f)
		}
	case "opacity":
		if f, err := parseNumberOrPercent(val); err == nil {
			s.opacity = clamp01(f)
		}
	case "fill-rule":
		switch keyword {
		case "nonzero":
			s.fillRule = scene.FillRuleNonZero
		case "evenodd":
			s.fillRule = scene.FillRuleEvenOdd
		}
	case "stroke-width":
		if w, err := parseLength(val, vp.diagonal()); err == nil && w >= 0 {
			s.strokeWidth = w
		}
	case "stroke-linecap":
		switch keyword {
		case "butt":
			s.cap = scene.LineCapButt
		case "round":
			s.cap = scene.LineCapRound
		case "square":
			s.cap = scene.LineCapSquare
		}
	case "stroke-linejoin":
		switch keyword {
		case "miter", "miter-clip", "arcs":
			s.join = scene.LineJoinMiter
		case "round":
			s.join = scene.LineJoinRound
		case "bevel":
			s.join = scene.LineJoinBevel
		}
	case "stroke-miterlimit":
		if f, err := parseNumberOrPercent(val); err == nil && f >= 1 {
			s.miterLimit = f
		}
	case "color":
		if c, _, ok := parseColor(val); ok {
			s.color = c
		}
	case "display":
		s.display = keyword != "none"
	case "visibility":
		s.visible = keyword == "visible"
	}
}

// applyInline applies the declarations of a style attribute.
func (s *style) applyInline(decls []byte, vp viewport) {
	declarations(decls, func(name string, val []byte) {
		if isProperty(name) {
			s.apply(name, val, vp)
		}
	})
}

// declarations calls fn for every declaration of an inline style.
// Malformed declarations are skipped.
func declarations(decls []byte, fn func(name string, val []byte)) {
	p := css.NewParser(parse.NewInputBytes(parse.Copy(decls)), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			if p.HasParseError() {
				continue
			}
			return
		}
		if gt != css.DeclarationGrammar {
			continue
		}
		var val []byte
		for _, tok := range p.Values() {
			val = append(val, tok.Data...)
		}
		if i := bytes.Index(val, []byte("!important")); i >= 0 {
			val = val[:i]
		}
		fn(string(data), val)
	}
}

// resolvePaint replaces currentColor with the element's color.
func (s *style) resolvePaint(p paintSpec) paintSpec {
	if p.kind == paintCurrentColor {
		return paintSpec{kind: paintColor, color: s.color, alpha: p.alpha}
	}
	if p.fallback != nil && p.fallback.kind == paintCurrentColor {
		fb := s.resolvePaint(*p.fallback)
		p.fallback = &fb
	}
	return p
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg parses SVG documents into a scene.Tree.
//
// The parser covers the static drawing subset: the svg root with its view
// box, groups, the basic shapes, path data, presentation attributes and
// inline style declarations, and gradient and pattern paint servers as
// references. Text, images, use, clipping, masking, markers, filters and
// style sheets are skipped.
//
// Every path in the resulting tree carries its absolute transform. Group
// opacity is folded into the fill and stroke opacity of each descendant.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/svgmesh/scene"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// defaultSize is the viewport size of a document without width, height
// or viewBox.
const defaultSize = 100

// xmlEntities are the predefined entities except amp, which is replaced
// last so that an escaped ampersand never starts another entity.
var xmlEntities = map[string][]byte{
	"lt":   []byte("<"),
	"gt":   []byte(">"),
	"quot": []byte(`"`),
	"apos": []byte("'"),
}

// Parse parses an SVG document.
func Parse(data []byte) (*scene.Tree, error) {
	p := &parser{
		src:     data,
		servers: make(map[string]scene.Paint),
	}
	return p.parse()
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader) (*scene.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("svg: read: %w", err)
	}
	return Parse(data)
}

// ParseFile parses the named file.
func ParseFile(name string) (*scene.Tree, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("svg: %w", err)
	}
	return Parse(data)
}

type attr struct {
	name string
	val  []byte
	off  int
}

type element struct {
	name  string
	off   int
	attrs []attr
}

func (el *element) attr(name string) (attr, bool) {
	for _, a := range el.attrs {
		if a.name == name {
			return a, true
		}
	}
	return attr{}, false
}

func (el *element) id() string {
	if a, ok := el.attr("id"); ok {
		return string(a.val)
	}
	return ""
}

// frame is one open element.
type frame struct {
	name      string
	st        style
	transform scene.Transform
	group     *scene.Group
	vp        viewport

	// render is false inside defs and other non-rendering containers.
	// Paint servers are still collected there.
	render bool

	// gradient receives the stop children of a gradient element.
	gradient *[]scene.GradientStop
}

// fixup is a paint server reference resolved once the whole document has
// been read, since servers may be defined after their use.
type fixup struct {
	path   *scene.Path
	stroke bool
	spec   paintSpec
}

type parser struct {
	src     []byte
	tree    *scene.Tree
	stack   []frame
	servers map[string]scene.Paint
	fixups  []fixup
}

func (p *parser) parse() (*scene.Tree, error) {
	in := parse.NewInputBytes(parse.Copy(p.src))
	lex := xml.NewLexer(in)

	var el *element
	for {
		tt, data := lex.Next()
		switch tt {
		case xml.ErrorToken:
			if err := lex.Err(); err != io.EOF {
				var perr *parse.Error
				if errors.As(err, &perr) {
					return nil, &SyntaxError{Err: perr}
				}
				return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
			}
			if len(p.stack) > 0 {
				return nil, syntaxError(p.src, len(p.src), "unclosed element <%s>", p.stack[len(p.stack)-1].name)
			}
			if p.tree == nil {
				return nil, fmt.Errorf("%w: no svg element", ErrInvalid)
			}
			p.resolveFixups()
			return p.tree, nil

		case xml.StartTagToken:
			el = &element{
				name: localName(lex.Text()),
				off:  in.Offset() - len(data),
			}

		case xml.AttributeToken:
			if el == nil {
				continue
			}
			val := lex.AttrVal()
			off := in.Offset() - len(val)
			if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') {
				val = val[1 : len(val)-1]
				off++
			}
			if bytes.IndexByte(val, '&') >= 0 {
				val = parse.ReplaceEntities(val, xmlEntities, nil)
				val = bytes.ReplaceAll(val, []byte("&amp;"), []byte("&"))
			}
			el.attrs = append(el.attrs, attr{name: string(lex.Text()), val: val, off: off})

		case xml.StartTagCloseToken, xml.StartTagCloseVoidToken:
			if el == nil {
				continue
			}
			if err := p.open(el); err != nil {
				return nil, err
			}
			if tt == xml.StartTagCloseVoidToken {
				p.close()
			}
			el = nil

		case xml.EndTagToken:
			name := localName(lex.Text())
			if len(p.stack) == 0 || p.stack[len(p.stack)-1].name != name {
				return nil, syntaxError(p.src, in.Offset()-len(data), "unexpected end tag </%s>", name)
			}
			p.close()

		case xml.StartTagPIToken:
			// <?xml ...?> attributes are dropped.
			el = nil
		}
	}
}

// localName strips a namespace prefix.
func localName(b []byte) string {
	if i := bytes.LastIndexByte(b, ':'); i >= 0 {
		b = b[i+1:]
	}
	return string(b)
}

func (p *parser) close() {
	p.stack = p.stack[:len(p.stack)-1]
}

// open handles a start tag. Every element pushes a frame so that end tags
// can be matched, including the ones that are skipped.
func (p *parser) open(el *element) error {
	if len(p.stack) == 0 {
		if p.tree != nil {
			return syntaxError(p.src, el.off, "content after the root element")
		}
		if el.name != "svg" {
			return syntaxError(p.src, el.off, "root element is <%s>, not <svg>", el.name)
		}
		return p.root(el)
	}

	parent := &p.stack[len(p.stack)-1]
	f := frame{
		name:      el.name,
		st:        parent.st.inherit(),
		transform: parent.transform,
		group:     parent.group,
		vp:        parent.vp,
		render:    parent.render,
	}

	if parent.gradient != nil && el.name == "stop" {
		*parent.gradient = append(*parent.gradient, p.stop(el, f.vp))
		f.render = false
		p.stack = append(p.stack, f)
		return nil
	}

	p.applyStyle(el, &f.st, f.vp)
	if a, ok := el.attr("transform"); ok {
		t, err := parseTransform(a.val)
		if err != nil {
			return p.attrError(a, err)
		}
		f.transform = f.transform.Multiply(t)
	}

	switch el.name {
	case "g", "a", "svg":
		if el.name == "svg" {
			var x, y float64
			if err := p.length(el, "x", f.vp.w, &x); err != nil {
				return err
			}
			if err := p.length(el, "y", f.vp.h, &y); err != nil {
				return err
			}
			f.transform = f.transform.Multiply(scene.Translate(x, y))
		}
		if !f.st.display {
			f.render = false
		}
		if f.render {
			g := scene.NewGroup()
			g.ID = el.id()
			g.Transform = f.transform
			f.group.Append(g)
			f.group = g
		}

	case "linearGradient", "radialGradient", "pattern":
		f.render = false
		if err := p.server(el, &f); err != nil {
			return err
		}

	case "path", "rect", "circle", "ellipse", "line", "polyline", "polygon":
		if f.render && f.st.display && f.st.visible {
			if err := p.drawShape(el, &f); err != nil {
				return err
			}
		}
		f.render = false

	default:
		// defs, symbol, clipPath, mask, marker, text, image, use, style and
		// unknown elements.
		f.render = false
	}

	p.stack = append(p.stack, f)
	return nil
}

func (p *parser) root(el *element) error {
	vb := scene.ViewBox{}
	hasViewBox := false
	if a, ok := el.attr("viewBox"); ok {
		nums, err := numbers(a.val)
		if err != nil {
			return p.attrError(a, err)
		}
		if len(nums) != 4 {
			return p.attrError(a, errorAt(0, "viewBox needs 4 numbers, got %d", len(nums)))
		}
		if nums[2] <= 0 || nums[3] <= 0 {
			return p.attrError(a, errorAt(0, "viewBox size must be positive"))
		}
		vb = scene.ViewBox{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
		hasViewBox = true
	}

	w, h := float64(defaultSize), float64(defaultSize)
	if hasViewBox {
		w, h = vb.Width, vb.Height
	}
	// Percentages of an unknown outer viewport resolve against the view box.
	if err := p.length(el, "width", w, &w); err != nil {
		return err
	}
	if err := p.length(el, "height", h, &h); err != nil {
		return err
	}
	if !hasViewBox {
		vb = scene.ViewBox{Width: w, Height: h}
	}

	p.tree = scene.NewTree(vb)
	p.tree.Width, p.tree.Height = w, h
	p.tree.Root.ID = el.id()

	f := frame{
		name:      el.name,
		st:        initialStyle(),
		transform: scene.Identity(),
		group:     p.tree.Root,
		vp:        viewport{w: vb.Width, h: vb.Height},
		render:    true,
	}
	p.applyStyle(el, &f.st, f.vp)
	if !f.st.display {
		f.render = false
	}
	if a, ok := el.attr("transform"); ok {
		t, err := parseTransform(a.val)
		if err != nil {
			return p.attrError(a, err)
		}
		f.transform = t
		p.tree.Root.Transform = t
	}
	p.stack = append(p.stack, f)
	return nil
}

// applyStyle applies presentation attributes, then the style attribute,
// which takes precedence.
func (p *parser) applyStyle(el *element, st *style, vp viewport) {
	for _, a := range el.attrs {
		if isProperty(a.name) {
			st.apply(a.name, a.val, vp)
		}
	}
	if a, ok := el.attr("style"); ok {
		st.applyInline(a.val, vp)
	}
}

func (p *parser) drawShape(el *element, f *frame) error {
	path, err := p.shape(el, f.vp)
	if err != nil || path == nil {
		return err
	}
	path.ID = el.id()
	path.Transform = f.transform

	st := &f.st
	if spec := st.resolvePaint(st.fill); spec.kind != paintNone {
		fill := scene.Fill{
			Opacity: st.effectiveOpacity(st.fillOpacity),
			Rule:    st.fillRule,
		}
		path.Fill = &fill
		p.setPaint(path, false, spec)
	}
	if spec := st.resolvePaint(st.stroke); spec.kind != paintNone && st.strokeWidth > 0 {
		stroke := scene.Stroke{
			Opacity:    st.effectiveOpacity(st.strokeOpacity),
			Width:      st.strokeWidth,
			Cap:        st.cap,
			Join:       st.join,
			MiterLimit: st.miterLimit,
		}
		path.Stroke = &stroke
		p.setPaint(path, true, spec)
	}
	f.group.Append(path)
	return nil
}

// setPaint stores a color right away and defers server references.
func (p *parser) setPaint(path *scene.Path, stroke bool, spec paintSpec) {
	if spec.kind == paintServer {
		p.fixups = append(p.fixups, fixup{path: path, stroke: stroke, spec: spec})
		return
	}
	if stroke {
		path.Stroke.Paint = spec.color
		path.Stroke.Opacity *= spec.alpha
	} else {
		path.Fill.Paint = spec.color
		path.Fill.Opacity *= spec.alpha
	}
}

// resolveFixups binds server references. A missing server falls back to
// the paint after the url, or to none.
func (p *parser) resolveFixups() {
	for _, fx := range p.fixups {
		server, ok := p.servers[fx.spec.id]
		// Gradients are collected by pointer while their stops are read.
		switch g := server.(type) {
		case *scene.LinearGradient:
			server = *g
		case *scene.RadialGradient:
			server = *g
		}
		switch {
		case ok:
			if fx.stroke {
				fx.path.Stroke.Paint = server
			} else {
				fx.path.Fill.Paint = server
			}
		case fx.spec.fallback != nil && fx.spec.fallback.kind == paintColor:
			p.setPaint(fx.path, fx.stroke, *fx.spec.fallback)
		case fx.stroke:
			fx.path.Stroke = nil
		default:
			fx.path.Fill = nil
		}
	}
	p.fixups = nil
}

// server registers a gradient or pattern under its id.
func (p *parser) server(el *element, f *frame) error {
	id := el.id()
	switch el.name {
	case "linearGradient":
		g := &scene.LinearGradient{ID: id, X2: 1}
		for _, c := range []struct {
			name string
			dst  *float64
		}{{"x1", &g.X1}, {"y1", &g.Y1}, {"x2", &g.X2}, {"y2", &g.Y2}} {
			if err := p.fraction(el, c.name, c.dst); err != nil {
				return err
			}
		}
		f.gradient = &g.Stops
		if id != "" {
			p.servers[id] = g
		}
	case "radialGradient":
		g := &scene.RadialGradient{ID: id, CX: 0.5, CY: 0.5, R: 0.5}
		for _, c := range []struct {
			name string
			dst  *float64
		}{{"cx", &g.CX}, {"cy", &g.CY}, {"r", &g.R}} {
			if err := p.fraction(el, c.name, c.dst); err != nil {
				return err
			}
		}
		g.FX, g.FY = g.CX, g.CY
		if err := p.fraction(el, "fx", &g.FX); err != nil {
			return err
		}
		if err := p.fraction(el, "fy", &g.FY); err != nil {
			return err
		}
		f.gradient = &g.Stops
		if id != "" {
			p.servers[id] = g
		}
	case "pattern":
		if id != "" {
			p.servers[id] = scene.Pattern{ID: id}
		}
	}
	return nil
}

// stop reads a gradient stop. Malformed values keep their defaults.
func (p *parser) stop(el *element, vp viewport) scene.GradientStop {
	s := scene.GradientStop{Opacity: 1}
	if a, ok := el.attr("offset"); ok {
		if f, err := parseNumberOrPercent(a.val); err == nil {
			s.Offset = clamp01(f)
		}
	}
	set := func(name string, val []byte) {
		switch name {
		case "stop-color":
			if c, alpha, ok := parseColor(parse.TrimWhitespace(val)); ok {
				s.Color = c
				s.Opacity *= alpha
			}
		case "stop-opacity":
			if f, err := parseNumberOrPercent(val); err == nil {
				s.Opacity = clamp01(f)
			}
		}
	}
	for _, a := range el.attrs {
		set(a.name, a.val)
	}
	if a, ok := el.attr("style"); ok {
		declarations(a.val, set)
	}
	return s
}

// length parses an optional length attribute into dst.
func (p *parser) length(el *element, name string, ref float64, dst *float64) error {
	a, ok := el.attr(name)
	if !ok {
		return nil
	}
	f, err := parseLength(a.val, ref)
	if err != nil {
		return p.attrError(a, err)
	}
	*dst = f
	return nil
}

// fraction parses an optional number or percentage attribute into dst.
func (p *parser) fraction(el *element, name string, dst *float64) error {
	a, ok := el.attr(name)
	if !ok {
		return nil
	}
	f, err := parseNumberOrPercent(a.val)
	if err != nil {
		return p.attrError(a, err)
	}
	*dst = f
	return nil
}

// attrError positions a value error at its place in the document.
func (p *parser) attrError(a attr, err error) error {
	var ve *valueError
	if errors.As(err, &ve) {
		return syntaxError(p.src, a.off+ve.offset, "%s: %s", a.name, ve.msg)
	}
	return syntaxError(p.src, a.off, "%s: %v", a.name, err)
}

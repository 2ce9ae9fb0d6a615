package svg

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/svgmesh/scene"
)

func mustParse(t *testing.T, doc string) *scene.Tree {
	t.Helper()
	tree, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tree
}

func paths(tree *scene.Tree) []*scene.Path {
	var out []*scene.Path
	for p := range tree.Paths() {
		out = append(out, p)
	}
	return out
}

func TestParseViewport(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		vb   scene.ViewBox
		w, h float64
	}{
		{
			name: "viewBox only",
			doc:  `<svg xmlns="http://www.w3.org/2000/svg" viewBox="10 20 300 150"/>`,
			vb:   scene.ViewBox{X: 10, Y: 20, Width: 300, Height: 150},
			w:    300, h: 150,
		},
		{
			name: "size only",
			doc:  `<svg width="64" height="32px"></svg>`,
			vb:   scene.ViewBox{Width: 64, Height: 32},
			w:    64, h: 32,
		},
		{
			name: "size and viewBox",
			doc:  `<svg width="2in" height="1in" viewBox="0,0,20,10"></svg>`,
			vb:   scene.ViewBox{Width: 20, Height: 10},
			w:    192, h: 96,
		},
		{
			name: "nothing",
			doc:  `<?xml version="1.0"?><!DOCTYPE svg><svg/>`,
			vb:   scene.ViewBox{Width: 100, Height: 100},
			w:    100, h: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.doc)
			if tree.ViewBox != tt.vb {
				t.Errorf("view box = %+v, want %+v", tree.ViewBox, tt.vb)
			}
			if tree.Width != tt.w || tree.Height != tt.h {
				t.Errorf("size = %vx%v, want %vx%v", tree.Width, tree.Height, tt.w, tt.h)
			}
		})
	}
}

func TestParseShapes(t *testing.T) {
	tree := mustParse(t, `<svg viewBox="0 0 200 100">
		<rect id="r" x="10" y="10" width="50%" height="20"/>
		<rect x="0" y="0" width="0" height="10"/>
		<rect width="40" height="20" rx="5"/>
		<circle cx="50" cy="50" r="10"/>
		<circle r="0"/>
		<ellipse cx="5" cy="5" rx="4" ry="2"/>
		<line x1="0" y1="0" x2="10" y2="10" stroke="black"/>
		<polyline points="0,0 10,0 10,10 7"/>
		<polygon points="0 0 10 0 10 10"/>
		<path d="M0 0 H10 V10 Z"/>
		<path d=""/>
	</svg>`)

	got := paths(tree)
	if len(got) != 8 {
		t.Fatalf("got %d paths, want 8", len(got))
	}

	r := got[0]
	if r.ID != "r" {
		t.Errorf("rect id = %q", r.ID)
	}
	if b := r.Bounds(); b.MinX != 10 || b.MaxX != 110 || b.MinY != 10 || b.MaxY != 30 {
		t.Errorf("rect bounds = %+v, want x 10..110 y 10..30", b)
	}

	// rx alone also sets ry.
	rounded := got[1]
	if len(rounded.Segments) != 10 {
		t.Errorf("rounded rect has %d segments, want 10", len(rounded.Segments))
	}

	if b := got[2].Bounds(); b.MinX != 40 || b.MaxX != 60 {
		t.Errorf("circle bounds = %+v", b)
	}
	if b := got[3].Bounds(); b.MinX != 1 || b.MaxX != 9 || b.MinY != 3 || b.MaxY != 7 {
		t.Errorf("ellipse bounds = %+v", b)
	}

	line := got[4]
	if line.Stroke == nil || len(line.Segments) != 2 {
		t.Errorf("line = %+v", line)
	}

	polyline := got[5]
	if len(polyline.Segments) != 3 {
		t.Errorf("polyline has %d segments, want 3 (odd coordinate dropped)", len(polyline.Segments))
	}
	polygon := got[6]
	if _, ok := polygon.Segments[len(polygon.Segments)-1].(scene.ClosePath); !ok {
		t.Error("polygon is not closed")
	}
}

func TestParseDefaultPaint(t *testing.T) {
	tree := mustParse(t, `<svg><rect width="1" height="1"/></svg>`)
	p := paths(tree)[0]
	if p.Fill == nil || p.Fill.Paint != (scene.Color{}) || p.Fill.Opacity != 1 || p.Fill.Rule != scene.FillRuleNonZero {
		t.Errorf("fill = %+v, want opaque black nonzero", p.Fill)
	}
	if p.Stroke != nil {
		t.Errorf("stroke = %+v, want none", p.Stroke)
	}
}

func TestParseInheritance(t *testing.T) {
	tree := mustParse(t, `<svg>
		<g fill="red" stroke="blue" stroke-width="4" opacity="0.5" color="lime">
			<g style="fill-rule: evenodd; stroke-linejoin: round">
				<rect id="a" width="10" height="10" fill-opacity="0.5"/>
				<rect id="b" width="10" height="10" fill="currentColor" stroke="none"/>
			</g>
			<rect id="c" width="10" height="10" style="fill:green" fill="yellow"/>
		</g>
		<rect id="d" width="10" height="10"/>
	</svg>`)

	got := map[string]*scene.Path{}
	for _, p := range paths(tree) {
		got[p.ID] = p
	}

	a := got["a"]
	if a.Fill.Paint != (scene.Color{R: 255}) || a.Fill.Rule != scene.FillRuleEvenOdd {
		t.Errorf("a fill = %+v", a.Fill)
	}
	if math.Abs(a.Fill.Opacity-0.25) > 1e-9 {
		t.Errorf("a fill opacity = %v, want 0.25", a.Fill.Opacity)
	}
	if a.Stroke == nil || a.Stroke.Width != 4 || a.Stroke.Join != scene.LineJoinRound || math.Abs(a.Stroke.Opacity-0.5) > 1e-9 {
		t.Errorf("a stroke = %+v", a.Stroke)
	}

	b := got["b"]
	if b.Fill.Paint != (scene.Color{G: 255}) {
		t.Errorf("b fill = %v, want lime from currentColor", b.Fill.Paint)
	}
	if b.Stroke != nil {
		t.Errorf("b stroke = %+v, want none", b.Stroke)
	}

	if c := got["c"]; c.Fill.Paint != (scene.Color{G: 128}) {
		t.Errorf("c fill = %v, style attribute must win over presentation attribute", c.Fill.Paint)
	}
	if d := got["d"]; d.Fill.Paint != (scene.Color{}) || d.Fill.Opacity != 1 {
		t.Errorf("d fill = %+v, nothing must leak out of the group", d.Fill)
	}
}

func TestParseTransforms(t *testing.T) {
	tree := mustParse(t, `<svg>
		<g id="outer" transform="translate(100 0)">
			<g transform="scale(2)">
				<rect id="r" width="1" height="1" transform="translate(5 5)"/>
			</g>
		</g>
	</svg>`)

	var outer *scene.Group
	for n := range tree.Descendants() {
		if g, ok := n.(*scene.Group); ok && g.ID == "outer" {
			outer = g
		}
	}
	if outer == nil || outer.Transform != scene.Translate(100, 0) {
		t.Fatalf("outer group = %+v", outer)
	}

	r := paths(tree)[0]
	got := r.Transform.Apply(scene.Pt(0, 0))
	if got != scene.Pt(110, 10) {
		t.Errorf("rect origin maps to %v, want (110, 10)", got)
	}
}

func TestParseSkipsNonRendering(t *testing.T) {
	tree := mustParse(t, `<svg>
		<defs><rect width="5" height="5"/></defs>
		<g display="none"><rect width="5" height="5"/></g>
		<rect width="5" height="5" visibility="hidden"/>
		<g visibility="hidden"><rect id="shown" width="5" height="5" visibility="visible"/></g>
		<text x="0" y="0">hello <tspan>world</tspan></text>
		<clipPath id="c"><circle r="3"/></clipPath>
		<unknown><rect width="1" height="1"/></unknown>
		<!-- <rect width="1" height="1"/> -->
	</svg>`)
	got := paths(tree)
	if len(got) != 1 || got[0].ID != "shown" {
		t.Errorf("got %d paths, want only #shown", len(got))
	}
}

func TestParsePaintServers(t *testing.T) {
	tree := mustParse(t, `<svg>
		<rect id="lin" width="1" height="1" fill="url(#g1)" stroke="url(#g2)"/>
		<rect id="missing" width="1" height="1" fill="url(#nope)" stroke="url(#nope) red"/>
		<defs>
			<linearGradient id="g1" x2="50%">
				<stop offset="0" stop-color="red"/>
				<stop offset="100%" style="stop-color: blue; stop-opacity: .5"/>
			</linearGradient>
			<radialGradient id="g2" r="0.3"/>
			<pattern id="p"><rect width="1" height="1"/></pattern>
		</defs>
		<rect id="pat" width="1" height="1" fill="url(#p)"/>
	</svg>`)

	got := map[string]*scene.Path{}
	for _, p := range paths(tree) {
		got[p.ID] = p
	}
	if len(got) != 3 {
		t.Fatalf("got %d paths, want 3 (pattern content is not drawn)", len(got))
	}

	lin, ok := got["lin"].Fill.Paint.(scene.LinearGradient)
	if !ok {
		t.Fatalf("lin fill = %T, want LinearGradient", got["lin"].Fill.Paint)
	}
	if lin.ID != "g1" || lin.X2 != 0.5 || len(lin.Stops) != 2 {
		t.Errorf("gradient = %+v", lin)
	}
	if s := lin.Stops[1]; s.Offset != 1 || s.Color != (scene.Color{B: 255}) || s.Opacity != 0.5 {
		t.Errorf("second stop = %+v", s)
	}
	if rad, ok := got["lin"].Stroke.Paint.(scene.RadialGradient); !ok || rad.R != 0.3 || rad.FX != 0.5 {
		t.Errorf("lin stroke = %+v", got["lin"].Stroke.Paint)
	}

	missing := got["missing"]
	if missing.Fill != nil {
		t.Errorf("fill with a missing server = %+v, want none", missing.Fill)
	}
	if missing.Stroke == nil || missing.Stroke.Paint != (scene.Color{R: 255}) {
		t.Errorf("stroke with a missing server = %+v, want the red fallback", missing.Stroke)
	}

	if _, ok := got["pat"].Fill.Paint.(scene.Pattern); !ok {
		t.Errorf("pat fill = %T, want Pattern", got["pat"].Fill.Paint)
	}
}

func TestParseNamespacesAndEntities(t *testing.T) {
	tree := mustParse(t, `<svg:svg xmlns:svg="http://www.w3.org/2000/svg">
		<svg:rect id="a&amp;b&lt;c&amp;lt;" width="1" height="1"/>
	</svg:svg>`)
	got := paths(tree)
	if len(got) != 1 || got[0].ID != "a&b<c&lt;" {
		t.Errorf("paths = %v", got)
	}
}

func TestParseColorAlpha(t *testing.T) {
	tree := mustParse(t, `<svg><rect width="1" height="1" fill="#ff000080" fill-opacity="0.5"/></svg>`)
	p := paths(tree)[0]
	if want := 0.5 * 128 / 255; math.Abs(p.Fill.Opacity-want) > 1e-9 {
		t.Errorf("opacity = %v, want %v", p.Fill.Opacity, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		line     int
		column   int
		contains string
	}{
		{"bad path data", "<svg>\n  <path d=\"M 0 0 L\"/>\n</svg>", 2, 19, "d:"},
		{"bad length", `<svg><rect width="10q10" height="1"/></svg>`, 1, 22, "width"},
		{"bad transform", `<svg><g transform="spin(3)"></g></svg>`, 1, 20, "transform"},
		{"mismatched end tag", "<svg><g></svg>", 1, 9, "unexpected end tag"},
		{"unclosed", "<svg><g>", 1, 9, "unclosed"},
		{"wrong root", "<html/>", 1, 1, "root element"},
		{"bad viewBox", `<svg viewBox="0 0 10"/>`, 1, 15, "viewBox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("err = %T, want *SyntaxError", err)
			}
			if se.Line() != tt.line || se.Column() != tt.column {
				t.Errorf("position = %d:%d, want %d:%d (%v)", se.Line(), se.Column(), tt.line, tt.column, err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("message %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestParseNoRoot(t *testing.T) {
	_, err := Parse([]byte("  <!-- nothing -->  "))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestParseInputNotModified(t *testing.T) {
	doc := []byte("<svg>\n<rect\twidth=\"1\"\nheight=\"1\"/></svg>")
	orig := string(doc)
	if _, err := Parse(doc); err != nil {
		t.Fatal(err)
	}
	if string(doc) != orig {
		t.Error("Parse modified its input")
	}
}

func TestParseFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "square.svg")
	if err := os.WriteFile(name, []byte(`<svg><rect width="4" height="4"/></svg>`), 0o600); err != nil {
		t.Fatal(err)
	}
	tree, err := ParseFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if tree.PathCount() != 1 {
		t.Errorf("PathCount = %d, want 1", tree.PathCount())
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.svg")); err == nil {
		t.Error("ParseFile of a missing file succeeded")
	}
	if _, err := ParseReader(strings.NewReader(`<svg/>`)); err != nil {
		t.Errorf("ParseReader: %v", err)
	}
}

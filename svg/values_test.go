package svg

import (
	"math"
	"testing"

	"github.com/gogpu/svgmesh/scene"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in    string
		want  scene.Color
		alpha float64
		ok    bool
	}{
		{"#f00", scene.Color{R: 255}, 1, true},
		{"#F00", scene.Color{R: 255}, 1, true},
		{"#00ff0080", scene.Color{G: 255}, 128.0 / 255, true},
		{"#1234", scene.Color{R: 0x11, G: 0x22, B: 0x33}, 0x44 / 255.0, true},
		{"#123456", scene.Color{R: 0x12, G: 0x34, B: 0x56}, 1, true},
		{"rgb(255, 128, 0)", scene.Color{R: 255, G: 128}, 1, true},
		{"rgb(100%,50%,0%)", scene.Color{R: 255, G: 128}, 1, true},
		{"rgba(0,0,255,0.5)", scene.Color{B: 255}, 0.5, true},
		{"rgb(0 0 255 / 25%)", scene.Color{B: 255}, 0.25, true},
		{"RGB(1,2,3)", scene.Color{R: 1, G: 2, B: 3}, 1, true},
		{"rgb(300,-5,0)", scene.Color{R: 255}, 1, true},
		{" red ", scene.Color{R: 255}, 1, true},
		{"CornflowerBlue", scene.Color{R: 100, G: 149, B: 237}, 1, true},
		{"transparent", scene.Color{}, 0, true},
		{"#12", scene.Color{}, 0, false},
		{"#ggg", scene.Color{}, 0, false},
		{"rgb(1,2)", scene.Color{}, 0, false},
		{"notacolor", scene.Color{}, 0, false},
		{"", scene.Color{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, alpha, ok := parseColor([]byte(tt.in))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if c != tt.want || math.Abs(alpha-tt.alpha) > 1e-9 {
				t.Errorf("got %+v alpha %v, want %+v alpha %v", c, alpha, tt.want, tt.alpha)
			}
		})
	}
}

func TestParsePaint(t *testing.T) {
	tests := []struct {
		in   string
		kind paintKind
		id   string
		ok   bool
	}{
		{"none", paintNone, "", true},
		{"currentColor", paintCurrentColor, "", true},
		{"blue", paintColor, "", true},
		{"url(#grad)", paintServer, "grad", true},
		{"url('#grad') red", paintServer, "grad", true},
		{"url(#a) url(#b)", 0, "", false},
		{"url(grad)", 0, "", false},
		{"bogus", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, ok := parsePaint([]byte(tt.in))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (p.kind != tt.kind || p.id != tt.id) {
				t.Errorf("got kind %v id %q, want %v %q", p.kind, p.id, tt.kind, tt.id)
			}
		})
	}

	p, _ := parsePaint([]byte("url(#g) #00f"))
	if p.fallback == nil || p.fallback.kind != paintColor || p.fallback.color != (scene.Color{B: 255}) {
		t.Errorf("fallback = %+v, want blue", p.fallback)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		ref  float64
		want float64
		ok   bool
	}{
		{"10", 0, 10, true},
		{" 10px ", 0, 10, true},
		{"1in", 0, 96, true},
		{"2.54cm", 0, 96, true},
		{"12pt", 0, 16, true},
		{"1e1", 0, 10, true},
		{"50%", 300, 150, true},
		{"2em", 0, 32, true},
		{"-3", 0, -3, true},
		{"10furlongs", 0, 0, false},
		{"px", 0, 0, false},
		{"10 px", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLength([]byte(tt.in), tt.ref)
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok %v", err, tt.ok)
			}
			if tt.ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumbers(t *testing.T) {
	got, err := numbers([]byte(" 1,2 3-4.5.5 "))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 3, -4.5, 0.5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("number %d = %v, want %v", i, got[i], want[i])
		}
	}
	if _, err := numbers([]byte("1 x")); err == nil {
		t.Error("expected an error for a non-number")
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		in   string
		p    scene.Point
		want scene.Point
	}{
		{"translate(10 20) scale(2)", scene.Pt(1, 1), scene.Pt(12, 22)},
		{"scale(2) translate(10 20)", scene.Pt(1, 1), scene.Pt(22, 42)},
		{"translate(5)", scene.Pt(0, 0), scene.Pt(5, 0)},
		{"scale(2, 3)", scene.Pt(1, 1), scene.Pt(2, 3)},
		{"rotate(90)", scene.Pt(1, 0), scene.Pt(0, 1)},
		{"rotate(90 10 10)", scene.Pt(20, 10), scene.Pt(10, 20)},
		{"matrix(1 0 0 1 7 8)", scene.Pt(1, 1), scene.Pt(8, 9)},
		{"skewX(45)", scene.Pt(0, 1), scene.Pt(1, 1)},
		{"skewY(45)", scene.Pt(1, 0), scene.Pt(1, 1)},
		{"translate(1,1),translate(2,2)", scene.Pt(0, 0), scene.Pt(3, 3)},
		{"", scene.Pt(4, 4), scene.Pt(4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tr, err := parseTransform([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			got := tr.Apply(tt.p)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Apply(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, in := range []string{"translate(", "foo(1)", "scale()", "rotate(1,2)", "matrix(1 2 3)", "(1)", "translate 5"} {
		if _, err := parseTransform([]byte(in)); err == nil {
			t.Errorf("parseTransform(%q) succeeded, want error", in)
		}
	}
}

func TestStyleApply(t *testing.T) {
	vp := viewport{w: 100, h: 100}
	st := initialStyle()
	st.applyInline([]byte("fill: #0f0; stroke:rgb(0,0,255) ; stroke-width: 3px; stroke-linecap:round;bogus:1; fill-opacity: 50% !important; stroke-linejoin: bevel"), vp)

	if st.fill.kind != paintColor || st.fill.color != (scene.Color{G: 255}) {
		t.Errorf("fill = %+v", st.fill)
	}
	if st.stroke.kind != paintColor || st.stroke.color != (scene.Color{B: 255}) {
		t.Errorf("stroke = %+v", st.stroke)
	}
	if st.strokeWidth != 3 || st.cap != scene.LineCapRound || st.join != scene.LineJoinBevel {
		t.Errorf("stroke style = width %v cap %v join %v", st.strokeWidth, st.cap, st.join)
	}
	if st.fillOpacity != 0.5 {
		t.Errorf("fill-opacity = %v, want 0.5", st.fillOpacity)
	}
}

func TestStyleInvalidValuesAreIgnored(t *testing.T) {
	vp := viewport{w: 100, h: 100}
	st := initialStyle()
	st.apply("stroke-width", []byte("-2"), vp)
	st.apply("fill", []byte("nonsense"), vp)
	st.apply("stroke-miterlimit", []byte("0.5"), vp)
	st.apply("fill-rule", []byte("sideways"), vp)

	want := initialStyle()
	if st != want {
		t.Errorf("style changed by invalid values: %+v", st)
	}
}

func TestStyleOpacityFolds(t *testing.T) {
	vp := viewport{w: 100, h: 100}
	parent := initialStyle()
	parent.apply("opacity", []byte("0.5"), vp)
	child := parent.inherit()
	child.apply("opacity", []byte("0.5"), vp)
	if got := child.effectiveOpacity(0.8); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("effective opacity = %v, want 0.2", got)
	}
	if parent.inherit().opacity != 1 {
		t.Error("opacity itself must not be inherited")
	}
}

package svgmesh

import (
	"errors"
	"testing"

	"github.com/gogpu/svgmesh/tess"
)

func TestColorString(t *testing.T) {
	if got := (Color{0xff, 0x80, 0x00, 0x7f}).String(); got != "#ff80007f" {
		t.Errorf("String() = %q", got)
	}
	r, g, b, a := Color{255, 0, 51, 0}.RGBA()
	if r != 1 || g != 0 || b != 0.2 || a != 0 {
		t.Errorf("RGBA() = %v %v %v %v", r, g, b, a)
	}
}

func TestMeshStats(t *testing.T) {
	m := &Mesh{
		Vertices:   make([]Vertex, 5),
		Indices:    make([]uint32, 9),
		Primitives: make([]Primitive, 2),
		Transforms: make([]Transform, 1),
	}
	want := Stats{Vertices: 5, Indices: 9, Triangles: 3, Primitives: 2, Transforms: 1}
	if got := m.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	if m.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
}

func TestErrorsUnwrap(t *testing.T) {
	inner := errors.New("boom")

	pe := &ParseError{Err: inner}
	if !errors.Is(pe, ErrParse) || !errors.Is(pe, inner) {
		t.Errorf("ParseError does not unwrap to ErrParse and its cause")
	}

	ge := &GeometryError{PathID: "p1", PathIndex: 3, Err: tess.ErrNonFinite}
	if !errors.Is(ge, ErrFillTessellation) || !errors.Is(ge, tess.ErrNonFinite) {
		t.Errorf("GeometryError does not unwrap to ErrFillTessellation and its cause")
	}
	if got := ge.Error(); got != `svgmesh: fill of path "p1" (#3): tess: non-finite coordinate` {
		t.Errorf("Error() = %q", got)
	}
	if got := (&GeometryError{PathIndex: 0, Err: inner}).Error(); got != "svgmesh: fill of path #0: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestFallbackColorIsFixed(t *testing.T) {
	c := FallbackColor()
	if c != (Color{}) {
		t.Fatalf("FallbackColor() = %v, want transparent black", c)
	}
	c.A = 255
	if got := FallbackColor(); got != (Color{}) {
		t.Errorf("FallbackColor() = %v after editing a copy", got)
	}
}

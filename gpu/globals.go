package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/svgmesh/scene"
)

// WindowSize is the long side of the default window in pixels.
const WindowSize = 800

// SampleCount is the MSAA sample count of the render pipeline.
const SampleCount = 4

// Globals is the per-frame uniform. A scene point p lands in normalized
// device coordinates at (p + Pan) * Zoom, stretched so the view box fills
// a window of Width x Height.
type Globals struct {
	Zoom float32
	Pan  [2]float32

	// Width and Height are the window size in pixels.
	Width, Height uint32

	// Wireframe draws triangle edges instead of filled triangles.
	Wireframe bool
}

// NewGlobals centers vb in the window and scales its longer side to fill
// it. The window is WindowSize pixels on its long side and keeps the view
// box aspect ratio.
func NewGlobals(vb scene.ViewBox) Globals {
	w, h := vb.Width, vb.Height
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		w, h = 1, 1
	}
	g := Globals{
		Zoom: float32(2 / max(w, h)),
		Pan:  [2]float32{float32(-(vb.X + w/2)), float32(-(vb.Y + h/2))},
	}
	if w >= h {
		g.Width = WindowSize
		g.Height = uint32(max(1, math.Round(WindowSize*h/w)))
	} else {
		g.Width = uint32(max(1, math.Round(WindowSize*w/h)))
		g.Height = WindowSize
	}
	return g
}

// Resize returns a copy of g for a window of w x h pixels. The zoom and
// pan are unchanged; the zoom stays relative to the long side.
func (g Globals) Resize(w, h uint32) Globals {
	g.Width, g.Height = max(w, 1), max(h, 1)
	return g
}

// Project maps a scene point to normalized device coordinates, y up.
// This is the same arithmetic as the vertex shader.
func (g Globals) Project(x, y float32) (float32, float32) {
	w, h := float32(max(g.Width, 1)), float32(max(g.Height, 1))
	s := max(w, h)
	nx := (x + g.Pan[0]) * g.Zoom * s / w
	ny := (y + g.Pan[1]) * g.Zoom * s / h
	return nx, -ny
}

// Topology is the primitive topology to draw with.
func (g Globals) Topology() gputypes.PrimitiveTopology {
	if g.Wireframe {
		return gputypes.PrimitiveTopologyLineList
	}
	return gputypes.PrimitiveTopologyTriangleList
}

// Bytes encodes g for the uniform buffer: resolution vec2, pan vec2,
// zoom f32, then padding to GlobalsSize.
func (g Globals) Bytes() []byte {
	buf := make([]byte, GlobalsSize)
	put := func(off int, f float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
	}
	put(0, float32(g.Width))
	put(4, float32(g.Height))
	put(8, g.Pan[0])
	put(12, g.Pan[1])
	put(16, g.Zoom)
	return buf
}

// WireframeIndices converts a triangle list into the line list of its
// edges.
func WireframeIndices(tris []uint32) []uint32 {
	lines := make([]uint32, 0, len(tris)/3*6)
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		lines = append(lines, a, b, b, c, c, a)
	}
	return lines
}

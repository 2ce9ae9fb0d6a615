package svgmesh

import (
	"github.com/gogpu/svgmesh/scene"
	"github.com/gogpu/svgmesh/tess"
)

// defaultMiterLimit replaces miter limits that are not positive.
const defaultMiterLimit = 4

// StrokeStyle is the resolved geometry of a stroke.
type StrokeStyle struct {
	Width      float32
	Cap        scene.LineCap
	Join       scene.LineJoin
	MiterLimit float32
}

// Options converts the style to triangulator options at the given tolerance.
func (s StrokeStyle) Options(tolerance float32) tess.StrokeOptions {
	return tess.StrokeOptions{
		Tolerance:  tolerance,
		Width:      s.Width,
		Cap:        s.Cap,
		Join:       s.Join,
		MiterLimit: s.MiterLimit,
	}
}

// ResolveFill returns the color of a fill pass. Nil fills and paint other
// than a solid color resolve to FallbackColor.
func ResolveFill(f *scene.Fill) Color {
	if f == nil {
		return FallbackColor()
	}
	return resolvePaint(f.Paint, f.Opacity)
}

// ResolveStroke returns the color and geometry of a stroke pass.
// The color follows the same rules as ResolveFill.
func ResolveStroke(s *scene.Stroke) (Color, StrokeStyle) {
	if s == nil {
		return FallbackColor(), StrokeStyle{}
	}
	style := StrokeStyle{
		Width:      float32(s.Width),
		Cap:        s.Cap,
		Join:       s.Join,
		MiterLimit: float32(s.MiterLimit),
	}
	if !(style.MiterLimit > 0) {
		style.MiterLimit = defaultMiterLimit
	}
	return resolvePaint(s.Paint, s.Opacity), style
}

func resolvePaint(p scene.Paint, opacity float64) Color {
	c, ok := p.(scene.Color)
	if !ok {
		return FallbackColor()
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha(opacity)}
}

// alpha scales opacity to 8 bits, truncating toward zero:
// 0.5 becomes 127, not 128.
func alpha(opacity float64) uint8 {
	switch {
	case !(opacity > 0):
		return 0
	case opacity >= 1:
		return 255
	}
	return uint8(opacity * 255)
}

// isSolid reports whether p renders as a plain color.
func isSolid(p scene.Paint) bool {
	_, ok := p.(scene.Color)
	return ok
}

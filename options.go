package svgmesh

import (
	"github.com/gogpu/svgmesh/scene"
	"github.com/gogpu/svgmesh/tess"
)

// DefaultTolerance is the curve flattening tolerance used for both fill and
// stroke passes.
const DefaultTolerance = tess.DefaultTolerance

// Option configures a Tessellator.
//
// Example:
//
//	t := svgmesh.New(svgmesh.WithTolerance(0.05))
type Option func(*options)

type options struct {
	tolerance     float32
	filler        tess.Filler
	stroker       tess.Stroker
	fillRule      *scene.FillRule
	skipInvisible bool
	vertexLimit   uint32
}

func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
		filler:    tess.NewFillTessellator(),
		stroker:   tess.NewStrokeTessellator(),
	}
}

// WithTolerance sets the flattening tolerance in user units.
// Values that are not positive are ignored.
func WithTolerance(tol float32) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithFillTessellator replaces the fill triangulator.
func WithFillTessellator(f tess.Filler) Option {
	return func(o *options) {
		if f != nil {
			o.filler = f
		}
	}
}

// WithStrokeTessellator replaces the stroke triangulator.
func WithStrokeTessellator(s tess.Stroker) Option {
	return func(o *options) {
		if s != nil {
			o.stroker = s
		}
	}
}

// WithFillRule forces one fill rule for every path, ignoring the rule stored
// on each fill.
func WithFillRule(r scene.FillRule) Option {
	return func(o *options) {
		o.fillRule = &r
	}
}

// WithSkipInvisible drops passes whose resolved alpha is zero, including
// gradient and pattern paint. Off by default, so every pass keeps its
// primitive and geometry.
func WithSkipInvisible(skip bool) Option {
	return func(o *options) {
		o.skipInvisible = skip
	}
}

// WithVertexLimit caps the number of vertices in the mesh. Zero means the
// full 32-bit index range. A fill exceeding the limit fails the tessellation.
func WithVertexLimit(n uint32) Option {
	return func(o *options) {
		o.vertexLimit = n
	}
}

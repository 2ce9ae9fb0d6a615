package svgmesh

import (
	"testing"

	"github.com/gogpu/svgmesh/scene"
	"github.com/gogpu/svgmesh/tess"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.tolerance != DefaultTolerance {
		t.Errorf("tolerance = %v, want %v", o.tolerance, DefaultTolerance)
	}
	if o.filler == nil || o.stroker == nil {
		t.Error("default tessellators not set")
	}
	if o.fillRule != nil {
		t.Error("fill rule override set by default")
	}
	if o.skipInvisible {
		t.Error("skipInvisible enabled by default")
	}
}

func TestOptions(t *testing.T) {
	f := tess.NewFillTessellator()
	s := tess.NewStrokeTessellator()

	tests := []struct {
		name  string
		opt   Option
		check func(t *testing.T, o options)
	}{
		{"tolerance", WithTolerance(0.5), func(t *testing.T, o options) {
			if o.tolerance != 0.5 {
				t.Errorf("tolerance = %v, want 0.5", o.tolerance)
			}
		}},
		{"non-positive tolerance ignored", WithTolerance(-1), func(t *testing.T, o options) {
			if o.tolerance != DefaultTolerance {
				t.Errorf("tolerance = %v, want default", o.tolerance)
			}
		}},
		{"fill tessellator", WithFillTessellator(f), func(t *testing.T, o options) {
			if o.filler != f {
				t.Error("filler not replaced")
			}
		}},
		{"nil fill tessellator ignored", WithFillTessellator(nil), func(t *testing.T, o options) {
			if o.filler == nil {
				t.Error("filler cleared")
			}
		}},
		{"stroke tessellator", WithStrokeTessellator(s), func(t *testing.T, o options) {
			if o.stroker != s {
				t.Error("stroker not replaced")
			}
		}},
		{"fill rule", WithFillRule(scene.FillRuleEvenOdd), func(t *testing.T, o options) {
			if o.fillRule == nil || *o.fillRule != scene.FillRuleEvenOdd {
				t.Errorf("fill rule = %v, want evenodd", o.fillRule)
			}
		}},
		{"skip invisible", WithSkipInvisible(true), func(t *testing.T, o options) {
			if !o.skipInvisible {
				t.Error("skipInvisible not set")
			}
		}},
		{"vertex limit", WithVertexLimit(64), func(t *testing.T, o options) {
			if o.vertexLimit != 64 {
				t.Errorf("vertexLimit = %d, want 64", o.vertexLimit)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			tt.check(t, o)
		})
	}
}

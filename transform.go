package svgmesh

import (
	"math"

	"github.com/gogpu/svgmesh/scene"
)

// transformTable assigns transform indices in drawing order. A new entry is
// appended only when a path's transform differs from the previous path's.
type transformTable struct {
	prev    scene.Transform
	entries []Transform
}

func newTransformTable() *transformTable {
	nan := math.NaN()
	return &transformTable{
		// NaN never compares equal, so the first visit always appends.
		prev: scene.Transform{A: nan, B: nan, C: nan, D: nan, E: nan, F: nan},
	}
}

// visit returns the index of t, appending it when it differs from the
// previously visited transform. Comparison is exact IEEE equality.
func (tt *transformTable) visit(t scene.Transform) uint32 {
	if t != tt.prev {
		tt.entries = append(tt.entries, PackTransform(t))
		tt.prev = t
	}
	return uint32(len(tt.entries) - 1)
}

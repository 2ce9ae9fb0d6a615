package tess

import (
	"iter"

	"github.com/gogpu/svgmesh/path"
	"github.com/gogpu/svgmesh/scene"
)

// FillTessellator triangulates path interiors.
//
// The zero value is ready to use. A FillTessellator keeps scratch buffers
// between calls and must not be used concurrently.
type FillTessellator struct {
	edges []edge
	ys    []float64
}

// NewFillTessellator creates a fill tessellator.
func NewFillTessellator() *FillTessellator {
	return &FillTessellator{}
}

// TessellateFill flattens events and writes the interior triangles to out.
// On error nothing is left in out.
func (t *FillTessellator) TessellateFill(events iter.Seq[path.Event], opts FillOptions, out GeometryBuilder) error {
	out.BeginGeometry()
	contours, err := flatten(events, opts.Tolerance)
	if err == nil {
		err = t.fill(contours, opts.Rule, out)
	}
	if err != nil {
		out.AbortGeometry()
		return err
	}
	out.EndGeometry()
	return nil
}

func (t *FillTessellator) fill(contours []contour, rule scene.FillRule, out GeometryBuilder) error {
	usable := contours[:0:0]
	for _, c := range contours {
		if len(c.Points) >= 3 {
			usable = append(usable, c)
		}
	}
	switch {
	case len(usable) == 0:
		return nil
	case len(usable) == 1 && signedArea(usable[0].Points) == 0 && isSimplePolygon(usable[0].Points):
		// Collinear points only.
		return nil
	}
	if outer, ok := holeLayout(usable, rule); ok {
		pts, tris, err := triangulate(usable, outer)
		if err == nil {
			return emitIndexed(pts, tris, out)
		}
		Logger().Debug("tess: constrained triangulation failed, using sweep",
			"contours", len(usable), "err", err)
	}
	return t.sweep(usable, rule, out)
}

// emitIndexed writes every point once and the triangles referencing them.
func emitIndexed(pts []vec, tris [][3]int, out GeometryBuilder) error {
	if len(tris) == 0 {
		return nil
	}
	ids := make([]VertexID, len(pts))
	for i, p := range pts {
		id, err := out.AddVertex(p.point())
		if err != nil {
			return err
		}
		ids[i] = id
	}
	for _, tri := range tris {
		out.AddTriangle(ids[tri[0]], ids[tri[1]], ids[tri[2]])
	}
	return nil
}

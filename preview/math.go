package preview

import (
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/svgmesh"
	"github.com/gogpu/svgmesh/gpu"
	"github.com/gogpu/svgmesh/scene"
)

var identity = scene.Identity()

// viewport maps scene coordinates to pixels, y down. It is the vertex
// shader projection followed by the NDC to window transform.
func viewport(g gpu.Globals) f32.Aff3 {
	w, h := float32(g.Width), float32(g.Height)
	k := g.Zoom * max(w, h) / 2
	return f32.Aff3{
		k, 0, k*g.Pan[0] + w/2,
		0, k, k*g.Pan[1] + h/2,
	}
}

// mul returns v applied after the packed transform t.
func mul(v f32.Aff3, t svgmesh.Transform) f32.Aff3 {
	a, b, c, d, e, f := t.Data0[0], t.Data0[1], t.Data0[2], t.Data0[3], t.Data1[0], t.Data1[1]
	return f32.Aff3{
		v[0]*a + v[1]*b, v[0]*c + v[1]*d, v[0]*e + v[1]*f + v[2],
		v[3]*a + v[4]*b, v[3]*c + v[4]*d, v[3]*e + v[4]*f + v[5],
	}
}

func apply(m f32.Aff3, p [2]float32) f32.Vec2 {
	return f32.Vec2{
		m[0]*p[0] + m[1]*p[1] + m[2],
		m[3]*p[0] + m[4]*p[1] + m[5],
	}
}

func cross(a, b, c f32.Vec2) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func length(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
}

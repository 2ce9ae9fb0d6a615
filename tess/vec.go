package tess

import (
	"math"

	"github.com/gogpu/svgmesh/path"
)

// vec is a double-precision 2D point or vector used for intermediate
// geometry; results are narrowed back to path.Point on output.
type vec struct {
	X, Y float64
}

func fromPoint(p path.Point) vec {
	return vec{X: float64(p.X), Y: float64(p.Y)}
}

func (v vec) point() path.Point {
	return path.Point{X: float32(v.X), Y: float32(v.Y)}
}

func (v vec) add(w vec) vec       { return vec{v.X + w.X, v.Y + w.Y} }
func (v vec) sub(w vec) vec       { return vec{v.X - w.X, v.Y - w.Y} }
func (v vec) scale(s float64) vec { return vec{v.X * s, v.Y * s} }
func (v vec) neg() vec            { return vec{-v.X, -v.Y} }
func (v vec) dot(w vec) float64   { return v.X*w.X + v.Y*w.Y }
func (v vec) cross(w vec) float64 { return v.X*w.Y - v.Y*w.X }
func (v vec) length() float64     { return math.Hypot(v.X, v.Y) }
func (v vec) lerp(w vec, t float64) vec {
	return vec{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// perp returns the vector rotated 90 degrees: (-y, x).
func (v vec) perp() vec { return vec{-v.Y, v.X} }

// normalize returns a unit vector, or the zero vector for tiny inputs.
func (v vec) normalize() vec {
	l := v.length()
	if l < 1e-12 {
		return vec{}
	}
	return vec{v.X / l, v.Y / l}
}

func (v vec) finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

package svgmesh

import "github.com/gogpu/svgmesh/path"

// vertexTagger stamps every vertex of one pass with that pass's primitive
// index.
type vertexTagger struct {
	primitive uint32
}

func (v vertexTagger) NewVertex(p path.Point) Vertex {
	return Vertex{Position: [2]float32{p.X, p.Y}, PrimitiveIndex: v.primitive}
}

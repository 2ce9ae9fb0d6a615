package svgmesh

import (
	"testing"

	"github.com/gogpu/svgmesh/path"
	"github.com/gogpu/svgmesh/tess"
)

func TestVertexTaggerFixedPerPass(t *testing.T) {
	var buf tess.VertexBuffers[Vertex]
	for prim := range uint32(3) {
		b := tess.NewBuffersBuilder[Vertex](&buf, vertexTagger{primitive: prim})
		b.BeginGeometry()
		for i := range 4 {
			if _, err := b.AddVertex(path.Pt(float32(i), float32(prim))); err != nil {
				t.Fatal(err)
			}
		}
		b.EndGeometry()
	}

	for i, v := range buf.Vertices {
		want := uint32(i / 4)
		if v.PrimitiveIndex != want {
			t.Errorf("vertex %d primitive = %d, want %d", i, v.PrimitiveIndex, want)
		}
		if v.Position != [2]float32{float32(i % 4), float32(want)} {
			t.Errorf("vertex %d position = %v", i, v.Position)
		}
	}
}

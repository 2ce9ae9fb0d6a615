package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/svgmesh"
)

// EncodeVertices writes vertices as tightly packed little-endian records:
// x f32, y f32, primitive u32.
func EncodeVertices(vs []svgmesh.Vertex) []byte {
	buf := make([]byte, len(vs)*VertexSize)
	for i, v := range vs {
		b := buf[i*VertexSize:]
		binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(v.Position[0]))
		binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(v.Position[1]))
		binary.LittleEndian.PutUint32(b[8:12], v.PrimitiveIndex)
	}
	return buf
}

// EncodeIndices writes u32 indices.
func EncodeIndices(idx []uint32) []byte {
	buf := make([]byte, len(idx)*IndexSize)
	for i, v := range idx {
		binary.LittleEndian.PutUint32(buf[i*IndexSize:], v)
	}
	return buf
}

// EncodePrimitives writes the transform index followed by the color bytes
// R, G, B, A. Read as one u32 the color has red in the low byte.
func EncodePrimitives(ps []svgmesh.Primitive) []byte {
	buf := make([]byte, len(ps)*PrimitiveSize)
	for i, p := range ps {
		b := buf[i*PrimitiveSize:]
		binary.LittleEndian.PutUint32(b[0:4], p.TransformIndex)
		b[4], b[5], b[6], b[7] = p.Color.R, p.Color.G, p.Color.B, p.Color.A
	}
	return buf
}

// EncodeTransforms writes Data0 then Data1, eight f32 per transform.
func EncodeTransforms(ts []svgmesh.Transform) []byte {
	buf := make([]byte, len(ts)*TransformSize)
	for i, t := range ts {
		b := buf[i*TransformSize:]
		for j, f := range t.Data0 {
			binary.LittleEndian.PutUint32(b[j*4:], math.Float32bits(f))
		}
		for j, f := range t.Data1 {
			binary.LittleEndian.PutUint32(b[16+j*4:], math.Float32bits(f))
		}
	}
	return buf
}

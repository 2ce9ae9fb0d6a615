package tess

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/svgmesh/path"
)

// Errors reported by the tessellators and builders.
var (
	// ErrNonFinite is returned when an event carries a NaN or infinite coordinate.
	ErrNonFinite = errors.New("tess: non-finite coordinate")

	// ErrMalformedEvents is returned when edges appear outside a Begin/End pair.
	ErrMalformedEvents = errors.New("tess: malformed event stream")

	// ErrTooManyVertices is returned when the vertex buffer cannot be
	// addressed by a 32-bit index any more.
	ErrTooManyVertices = errors.New("tess: too many vertices")

	// ErrInvalidWidth is returned for a stroke width that is not a positive number.
	ErrInvalidWidth = errors.New("tess: invalid stroke width")
)

// VertexID is an index into the shared vertex buffer.
type VertexID uint32

// Count is the number of vertices and indices produced by one geometry.
type Count struct {
	Vertices uint32
	Indices  uint32
}

// GeometryBuilder receives the output of a tessellator.
//
// A tessellator calls BeginGeometry once, then any number of AddVertex and
// AddTriangle calls, and finally EndGeometry on success or AbortGeometry on
// failure. AbortGeometry discards everything added since BeginGeometry.
type GeometryBuilder interface {
	BeginGeometry()
	AddVertex(p path.Point) (VertexID, error)
	AddTriangle(a, b, c VertexID)
	EndGeometry() Count
	AbortGeometry()
}

// VertexConstructor builds an output vertex from a tessellated position.
type VertexConstructor[V any] interface {
	NewVertex(p path.Point) V
}

// VertexConstructorFunc adapts a function to VertexConstructor.
type VertexConstructorFunc[V any] func(p path.Point) V

// NewVertex calls f(p).
func (f VertexConstructorFunc[V]) NewVertex(p path.Point) V { return f(p) }

// VertexBuffers is an indexed triangle list.
type VertexBuffers[V any] struct {
	Vertices []V
	Indices  []uint32
}

// TriangleCount returns len(Indices)/3.
func (b *VertexBuffers[V]) TriangleCount() int {
	return len(b.Indices) / 3
}

// BuffersBuilder is a GeometryBuilder appending to shared VertexBuffers.
// Several geometries can be built into the same buffers one after another;
// indices always address the shared vertex slice.
type BuffersBuilder[V any] struct {
	buffers *VertexBuffers[V]
	ctor    VertexConstructor[V]

	// Limit caps the total number of vertices in the buffers.
	// Zero means the full 32-bit index range.
	Limit uint32

	firstVertex int
	firstIndex  int
}

// NewBuffersBuilder returns a builder that appends to buffers, creating every
// vertex through ctor.
func NewBuffersBuilder[V any](buffers *VertexBuffers[V], ctor VertexConstructor[V]) *BuffersBuilder[V] {
	return &BuffersBuilder[V]{buffers: buffers, ctor: ctor}
}

// BeginGeometry marks the start of a geometry.
func (b *BuffersBuilder[V]) BeginGeometry() {
	b.firstVertex = len(b.buffers.Vertices)
	b.firstIndex = len(b.buffers.Indices)
}

// AddVertex appends a vertex created by the constructor.
func (b *BuffersBuilder[V]) AddVertex(p path.Point) (VertexID, error) {
	limit := uint64(math.MaxUint32)
	if b.Limit != 0 {
		limit = uint64(b.Limit)
	}
	n := len(b.buffers.Vertices)
	if uint64(n) >= limit {
		return 0, fmt.Errorf("%w: limit %d reached", ErrTooManyVertices, limit)
	}
	b.buffers.Vertices = append(b.buffers.Vertices, b.ctor.NewVertex(p))
	return VertexID(n), nil
}

// AddTriangle appends three indices.
func (b *BuffersBuilder[V]) AddTriangle(v0, v1, v2 VertexID) {
	b.buffers.Indices = append(b.buffers.Indices, uint32(v0), uint32(v1), uint32(v2))
}

// EndGeometry returns what was added since BeginGeometry.
func (b *BuffersBuilder[V]) EndGeometry() Count {
	return Count{
		Vertices: uint32(len(b.buffers.Vertices) - b.firstVertex),
		Indices:  uint32(len(b.buffers.Indices) - b.firstIndex),
	}
}

// AbortGeometry truncates the buffers back to the BeginGeometry marks.
func (b *BuffersBuilder[V]) AbortGeometry() {
	clear(b.buffers.Vertices[b.firstVertex:])
	b.buffers.Vertices = b.buffers.Vertices[:b.firstVertex]
	b.buffers.Indices = b.buffers.Indices[:b.firstIndex]
}

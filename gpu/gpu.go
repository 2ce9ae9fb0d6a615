// Package gpu turns an svgmesh.Mesh into GPU resources.
//
// It owns the byte layout shared with the WGSL shaders, the vertex and bind
// group layouts a render pipeline needs, the globals uniform that maps the
// view box onto the window, and an Uploader that writes every table into
// wgpu/hal buffers.
//
// Binding layout (group 0, vertex stage):
//
//	0: uniform  Globals     (GlobalsSize bytes)
//	1: storage  Primitives  (PrimitiveSize bytes each, read-only)
//	2: storage  Transforms  (TransformSize bytes each, read-only)
//
// A typical host:
//
//	shaders, err := gpu.CompileShaders()
//	up, err := gpu.NewUploaderFromProvider(provider)
//	bufs, err := up.Upload(mesh, gpu.NewGlobals(tree.ViewBox))
//	defer bufs.Release()
package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/svgmesh"
)

// Record sizes in bytes.
const (
	VertexSize    = 12
	PrimitiveSize = 8
	TransformSize = 32
	GlobalsSize   = 32
	IndexSize     = 4
)

// Bind group slots.
const (
	BindingGlobals    = 0
	BindingPrimitives = 1
	BindingTransforms = 2
)

// IndexFormat is the format of the index buffer.
const IndexFormat = gputypes.IndexFormatUint32

// VertexBufferLayout describes one Vertex: the position at location 0 and
// the primitive index at location 1.
func VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatUint32, Offset: 8, ShaderLocation: 1},
		},
	}
}

// BindGroupLayoutEntries returns the layout of group 0 sized for m.
func BindGroupLayoutEntries(m *svgmesh.Mesh) []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    BindingGlobals,
			Visibility: gputypes.ShaderStageVertex,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: GlobalsSize,
			},
		},
		{
			Binding:    BindingPrimitives,
			Visibility: gputypes.ShaderStageVertex,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeReadOnlyStorage,
				MinBindingSize: tableSize(len(m.Primitives), PrimitiveSize),
			},
		},
		{
			Binding:    BindingTransforms,
			Visibility: gputypes.ShaderStageVertex,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeReadOnlyStorage,
				MinBindingSize: tableSize(len(m.Transforms), TransformSize),
			},
		},
	}
}

// tableSize is the buffer size for n records. Storage bindings cannot be
// empty, so an empty table still reserves one record.
func tableSize(n, size int) uint64 {
	return uint64(max(n, 1) * size)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/svgmesh"
)

// ErrNoDevice is returned when an Uploader has no device or queue.
var ErrNoDevice = errors.New("gpu: no device")

// Uploader writes meshes into buffers of one hal device.
type Uploader struct {
	device hal.Device
	queue  hal.Queue
}

// NewUploader returns an Uploader for device and queue.
func NewUploader(device hal.Device, queue hal.Queue) (*Uploader, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	return &Uploader{device: device, queue: queue}, nil
}

// NewUploaderFromProvider shares the device of a host application. The
// provider must also implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
func NewUploaderFromProvider(provider gpucontext.DeviceProvider) (*Uploader, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}

	info := provider.AdapterInfo()
	svgmesh.Logger().Debug("gpu: using shared device",
		"adapter", info.Name, "software", info.Type == gpucontext.AdapterTypeSoftware)
	return &Uploader{device: device, queue: queue}, nil
}

// MeshBuffers holds the GPU copy of one mesh. Release frees it.
type MeshBuffers struct {
	Vertices   hal.Buffer
	Indices    hal.Buffer
	Primitives hal.Buffer
	Transforms hal.Buffer
	Globals    hal.Buffer

	// IndexCount is the number of indices to draw with Topology.
	IndexCount uint32
	Topology   gputypes.PrimitiveTopology

	device hal.Device
}

// Release destroys every buffer. It is safe to call more than once.
func (b *MeshBuffers) Release() {
	if b == nil || b.device == nil {
		return
	}
	for _, buf := range []hal.Buffer{b.Vertices, b.Indices, b.Primitives, b.Transforms, b.Globals} {
		if buf != nil {
			b.device.DestroyBuffer(buf)
		}
	}
	*b = MeshBuffers{}
}

// Upload creates the five buffers of m and fills them. With g.Wireframe
// the index buffer holds the edge list of every triangle.
func (u *Uploader) Upload(m *svgmesh.Mesh, g Globals) (*MeshBuffers, error) {
	if m == nil {
		m = &svgmesh.Mesh{}
	}
	indices := m.Indices
	if g.Wireframe {
		indices = WireframeIndices(indices)
	}

	out := &MeshBuffers{
		IndexCount: uint32(len(indices)),
		Topology:   g.Topology(),
		device:     u.device,
	}

	var err error
	if out.Vertices, err = u.buffer("svgmesh-vertices", EncodeVertices(m.Vertices), VertexSize,
		gputypes.BufferUsageVertex); err != nil {
		out.Release()
		return nil, err
	}
	if out.Indices, err = u.buffer("svgmesh-indices", EncodeIndices(indices), IndexSize,
		gputypes.BufferUsageIndex); err != nil {
		out.Release()
		return nil, err
	}
	if out.Primitives, err = u.buffer("svgmesh-primitives", EncodePrimitives(m.Primitives), PrimitiveSize,
		gputypes.BufferUsageStorage); err != nil {
		out.Release()
		return nil, err
	}
	if out.Transforms, err = u.buffer("svgmesh-transforms", EncodeTransforms(m.Transforms), TransformSize,
		gputypes.BufferUsageStorage); err != nil {
		out.Release()
		return nil, err
	}
	if out.Globals, err = u.buffer("svgmesh-globals", g.Bytes(), GlobalsSize,
		gputypes.BufferUsageUniform); err != nil {
		out.Release()
		return nil, err
	}

	svgmesh.Logger().Debug("gpu: mesh uploaded",
		"vertices", len(m.Vertices), "indices", len(indices),
		"primitives", len(m.Primitives), "transforms", len(m.Transforms),
		"wireframe", g.Wireframe)
	return out, nil
}

// buffer creates a buffer of at least one record and writes data into it.
func (u *Uploader) buffer(label string, data []byte, record int, usage gputypes.BufferUsage) (hal.Buffer, error) {
	size := max(uint64(len(data)), uint64(record))
	buf, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s: %w", label, err)
	}
	if len(data) > 0 {
		if err := u.queue.WriteBuffer(buf, 0, data); err != nil {
			u.device.DestroyBuffer(buf)
			return nil, fmt.Errorf("gpu: write %s: %w", label, err)
		}
	}
	return buf, nil
}

// CreateBindGroupLayout creates the group 0 layout for m.
func (u *Uploader) CreateBindGroupLayout(m *svgmesh.Mesh) (hal.BindGroupLayout, error) {
	if m == nil {
		m = &svgmesh.Mesh{}
	}
	layout, err := u.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "svgmesh-bind-group-layout",
		Entries: BindGroupLayoutEntries(m),
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create bind group layout: %w", err)
	}
	return layout, nil
}

// ShaderModules are the two stages of the mesh pipeline on one device.
type ShaderModules struct {
	Vertex   hal.ShaderModule
	Fragment hal.ShaderModule

	device hal.Device
}

// Release destroys both modules.
func (s *ShaderModules) Release() {
	if s == nil || s.device == nil {
		return
	}
	if s.Vertex != nil {
		s.device.DestroyShaderModule(s.Vertex)
	}
	if s.Fragment != nil {
		s.device.DestroyShaderModule(s.Fragment)
	}
	*s = ShaderModules{}
}

// CreateShaderModules creates the SPIR-V modules of set.
func (u *Uploader) CreateShaderModules(set *ShaderSet) (*ShaderModules, error) {
	if set == nil {
		return nil, fmt.Errorf("gpu: nil shader set")
	}
	vs, err := u.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "svgmesh-vertex",
		Source: hal.ShaderSource{SPIRV: set.Vertex},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create vertex module: %w", err)
	}
	fs, err := u.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "svgmesh-fragment",
		Source: hal.ShaderSource{SPIRV: set.Fragment},
	})
	if err != nil {
		u.device.DestroyShaderModule(vs)
		return nil, fmt.Errorf("gpu: create fragment module: %w", err)
	}
	return &ShaderModules{Vertex: vs, Fragment: fs, device: u.device}, nil
}

package gpu

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/svgmesh"
	"github.com/gogpu/svgmesh/scene"
)

func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// readBuffer maps n bytes of buf. Only valid on the noop backend, whose
// buffers live in host memory.
func readBuffer(t *testing.T, device hal.Device, buf hal.Buffer, n int) []byte {
	t.Helper()
	m, err := device.MapBuffer(buf, 0, uint64(n))
	if err != nil {
		t.Fatalf("MapBuffer: %v", err)
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(m.Ptr), n))
	if err := device.UnmapBuffer(buf); err != nil {
		t.Fatalf("UnmapBuffer: %v", err)
	}
	return out
}

func triangleMesh() *svgmesh.Mesh {
	return &svgmesh.Mesh{
		Vertices: []svgmesh.Vertex{
			{Position: [2]float32{0, 0}},
			{Position: [2]float32{10, 0}},
			{Position: [2]float32{0, 10}},
		},
		Indices:    []uint32{0, 1, 2},
		Primitives: []svgmesh.Primitive{{Color: svgmesh.Color{R: 255, A: 255}}},
		Transforms: []svgmesh.Transform{svgmesh.PackTransform(scene.Identity())},
	}
}

func TestNewUploaderNil(t *testing.T) {
	if _, err := NewUploader(nil, nil); !errors.Is(err, ErrNoDevice) {
		t.Errorf("err = %v, want ErrNoDevice", err)
	}
}

func TestUpload(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	up, err := NewUploader(device, queue)
	if err != nil {
		t.Fatal(err)
	}
	m := triangleMesh()
	g := NewGlobals(scene.ViewBox{Width: 10, Height: 10})
	bufs, err := up.Upload(m, g)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	defer bufs.Release()

	if bufs.IndexCount != 3 || bufs.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("draw = %d indices as %v", bufs.IndexCount, bufs.Topology)
	}
	checks := []struct {
		name string
		buf  hal.Buffer
		want []byte
	}{
		{"vertices", bufs.Vertices, EncodeVertices(m.Vertices)},
		{"indices", bufs.Indices, EncodeIndices(m.Indices)},
		{"primitives", bufs.Primitives, EncodePrimitives(m.Primitives)},
		{"transforms", bufs.Transforms, EncodeTransforms(m.Transforms)},
		{"globals", bufs.Globals, g.Bytes()},
	}
	for _, c := range checks {
		if c.buf == nil {
			t.Errorf("%s buffer is nil", c.name)
			continue
		}
		if got := readBuffer(t, device, c.buf, len(c.want)); string(got) != string(c.want) {
			t.Errorf("%s buffer = %x, want %x", c.name, got, c.want)
		}
	}
}

func TestUploadWireframe(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	up, _ := NewUploader(device, queue)
	g := NewGlobals(scene.ViewBox{Width: 10, Height: 10})
	g.Wireframe = true
	bufs, err := up.Upload(triangleMesh(), g)
	if err != nil {
		t.Fatal(err)
	}
	defer bufs.Release()

	if bufs.IndexCount != 6 || bufs.Topology != gputypes.PrimitiveTopologyLineList {
		t.Errorf("draw = %d indices as %v, want 6 as line list", bufs.IndexCount, bufs.Topology)
	}
	want := EncodeIndices([]uint32{0, 1, 1, 2, 2, 0})
	if got := readBuffer(t, device, bufs.Indices, len(want)); string(got) != string(want) {
		t.Errorf("index buffer = %v, want %v", got, want)
	}
}

func TestUploadEmptyMesh(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	up, _ := NewUploader(device, queue)
	bufs, err := up.Upload(&svgmesh.Mesh{}, NewGlobals(scene.ViewBox{Width: 1, Height: 1}))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if bufs.IndexCount != 0 {
		t.Errorf("IndexCount = %d", bufs.IndexCount)
	}
	for _, b := range []hal.Buffer{bufs.Vertices, bufs.Indices, bufs.Primitives, bufs.Transforms, bufs.Globals} {
		if b == nil {
			t.Error("empty mesh left a nil buffer")
		}
	}
	bufs.Release()
	bufs.Release()
	if bufs.Vertices != nil {
		t.Error("Release kept buffers")
	}
}

func TestCreateBindGroupLayoutAndShaders(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	up, _ := NewUploader(device, queue)
	layout, err := up.CreateBindGroupLayout(triangleMesh())
	if err != nil || layout == nil {
		t.Fatalf("CreateBindGroupLayout = %v, %v", layout, err)
	}
	device.DestroyBindGroupLayout(layout)

	mods, err := up.CreateShaderModules(&ShaderSet{Vertex: []uint32{0x07230203}, Fragment: []uint32{0x07230203}})
	if err != nil {
		t.Fatalf("CreateShaderModules: %v", err)
	}
	if mods.Vertex == nil || mods.Fragment == nil {
		t.Error("nil shader module")
	}
	mods.Release()

	if _, err := up.CreateShaderModules(nil); err == nil {
		t.Error("nil shader set accepted")
	}
}

type fakeProvider struct {
	device hal.Device
	queue  hal.Queue
}

func (p fakeProvider) Device() gpucontext.Device             { return p.device }
func (p fakeProvider) Queue() gpucontext.Queue               { return p.queue }
func (p fakeProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatUndefined }
func (p fakeProvider) Adapter() gpucontext.Adapter           { return nil }
func (p fakeProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{Name: "noop"} }

type halFakeProvider struct{ fakeProvider }

func (p halFakeProvider) HalDevice() any { return p.device }
func (p halFakeProvider) HalQueue() any  { return p.queue }

func TestNewUploaderFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	up, err := NewUploaderFromProvider(halFakeProvider{fakeProvider{device, queue}})
	if err != nil {
		t.Fatalf("NewUploaderFromProvider: %v", err)
	}
	if up.device != device || up.queue != queue {
		t.Error("uploader does not use the provider's device")
	}

	if _, err := NewUploaderFromProvider(fakeProvider{device, queue}); err == nil {
		t.Error("provider without HAL accessors accepted")
	}
	if _, err := NewUploaderFromProvider(halFakeProvider{}); err == nil {
		t.Error("provider with nil HAL device accepted")
	}
}

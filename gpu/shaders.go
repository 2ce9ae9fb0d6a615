// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/mesh_vert.wgsl
var vertexShaderSource string

//go:embed shaders/mesh_frag.wgsl
var fragmentShaderSource string

// EntryPoint is the entry point name of both shader stages.
const EntryPoint = "main"

// ShaderSet holds the compiled SPIR-V of the mesh pipeline.
type ShaderSet struct {
	Vertex   []uint32
	Fragment []uint32
}

// VertexShaderSource returns the WGSL of the vertex stage.
func VertexShaderSource() string { return vertexShaderSource }

// FragmentShaderSource returns the WGSL of the fragment stage.
func FragmentShaderSource() string { return fragmentShaderSource }

// CompileShaders compiles both stages from WGSL to SPIR-V with naga.
func CompileShaders() (*ShaderSet, error) {
	vs, err := compileSPIRV(vertexShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: vertex shader: %w", err)
	}
	fs, err := compileSPIRV(fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: fragment shader: %w", err)
	}
	return &ShaderSet{Vertex: vs, Fragment: fs}, nil
}

// compileSPIRV compiles WGSL and regroups the output into little-endian
// 32-bit words.
func compileSPIRV(src string) ([]uint32, error) {
	spirv, err := naga.Compile(src)
	if err != nil {
		return nil, err
	}
	if len(spirv)%4 != 0 {
		return nil, fmt.Errorf("SPIR-V length %d is not a multiple of 4", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = uint32(spirv[i*4]) |
			uint32(spirv[i*4+1])<<8 |
			uint32(spirv[i*4+2])<<16 |
			uint32(spirv[i*4+3])<<24
	}
	return words, nil
}

// Bytes returns the SPIR-V words of a stage as little-endian bytes, the
// form written to .spv files.
func Bytes(words []uint32) []byte {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		b[i*4] = byte(w)
		b[i*4+1] = byte(w >> 8)
		b[i*4+2] = byte(w >> 16)
		b[i*4+3] = byte(w >> 24)
	}
	return b
}

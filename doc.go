// Package svgmesh converts a vector scene into a flat, GPU-ready triangle
// mesh.
//
// # Overview
//
// A scene is a tree of groups and paths (see package scene). Every path may
// carry a fill and a stroke. Tessellate walks the tree depth-first and turns
// each fill and stroke into a separate pass of triangles. The result is a Mesh
// with four tables:
//
//   - Vertices: position plus the index of the primitive that produced it
//   - Indices: triangle list into Vertices
//   - Primitives: one entry per pass, holding a color and a transform index
//   - Transforms: affine matrices, shared by consecutive paths
//
// A vertex shader reads the primitive through the index baked into each
// vertex, then the transform through the primitive. Colors and transforms are
// therefore stored once per pass instead of once per vertex.
//
// # Quick Start
//
//	import "github.com/gogpu/svgmesh"
//
//	mesh, err := svgmesh.TessellateSVG(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(mesh.Vertices), mesh.TriangleCount())
//
// # Paint
//
// Only solid colors are rendered. Gradients and patterns resolve to
// FallbackColor (transparent black) but still produce geometry, so the
// primitive table keeps one entry per pass regardless of paint.
//
// # Errors
//
// A fill that cannot be triangulated fails the whole call with a
// *GeometryError; no partial mesh is returned. A failing stroke is dropped
// together with its primitive and logged at warn level.
//
// # Related packages
//
//   - scene: input tree
//   - path: canonical path events
//   - tess: fill and stroke triangulation
//   - svg: SVG document parser
//   - gpu: byte layout, shaders and buffer upload
//   - preview: CPU rendering of a Mesh
package svgmesh

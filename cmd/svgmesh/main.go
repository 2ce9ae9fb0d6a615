// Command svgmesh tessellates an SVG file and reports the resulting mesh.
//
// It can also write a CPU preview of the mesh as PNG and the compiled
// SPIR-V of the mesh shaders.
//
//	svgmesh -in tiger.svg -png tiger.png -v
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/colornames"

	"github.com/gogpu/svgmesh"
	"github.com/gogpu/svgmesh/gpu"
	"github.com/gogpu/svgmesh/preview"
	"github.com/gogpu/svgmesh/scene"
)

func main() {
	var (
		input     = flag.String("in", "", "input SVG file")
		tolerance = flag.Float64("tolerance", float64(svgmesh.DefaultTolerance), "curve flattening tolerance")
		fillRule  = flag.String("fill-rule", "", "force a fill rule for every path (nonzero or evenodd)")
		output    = flag.String("png", "", "write a preview PNG to this file")
		size      = flag.Int("size", gpu.WindowSize, "long side of the preview in pixels")
		wireframe = flag.Bool("wireframe", false, "preview triangle edges")
		bg        = flag.String("bg", "white", "preview background color name")
		spirvDir  = flag.String("spirv", "", "write compiled shaders to this directory")
		verbose   = flag.Bool("v", false, "log tessellation details")
	)
	flag.Parse()
	if *input == "" && flag.NArg() > 0 {
		*input = flag.Arg(0)
	}
	if *input == "" && *spirvDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		svgmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *spirvDir != "" {
		if err := writeShaders(*spirvDir); err != nil {
			log.Fatalf("Failed to write shaders: %v", err)
		}
	}
	if *input == "" {
		return
	}

	opts := []svgmesh.Option{svgmesh.WithTolerance(float32(*tolerance))}
	switch *fillRule {
	case "":
	case "nonzero":
		opts = append(opts, svgmesh.WithFillRule(scene.FillRuleNonZero))
	case "evenodd":
		opts = append(opts, svgmesh.WithFillRule(scene.FillRuleEvenOdd))
	default:
		log.Fatalf("Unknown fill rule %q", *fillRule)
	}

	tree, err := svgmesh.ParseSVGFile(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	mesh, err := svgmesh.New(opts...).Tessellate(tree)
	if err != nil {
		log.Fatalf("Failed to tessellate: %v", err)
	}

	s := mesh.Stats()
	fmt.Printf("%s: %d paths, %d vertices, %d triangles, %d primitives, %d transforms\n",
		*input, tree.PathCount(), s.Vertices, s.Triangles, s.Primitives, s.Transforms)

	if *output == "" {
		return
	}
	g := gpu.NewGlobals(tree.ViewBox)
	g = g.Resize(scaled(g.Width, *size), scaled(g.Height, *size))
	g.Wireframe = *wireframe

	background, ok := colornames.Map[*bg]
	if !ok && *bg != "none" {
		log.Fatalf("Unknown background color %q", *bg)
	}
	o := &preview.Options{}
	if ok {
		o.Background = background
	}
	if err := savePNG(*output, preview.Render(mesh, g, o)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d)\n", *output, g.Width, g.Height)
}

// scaled rescales a side of the default window to a long side of size.
func scaled(side uint32, size int) uint32 {
	if size <= 0 {
		return side
	}
	return max(1, uint32(uint64(side)*uint64(size)/gpu.WindowSize))
}

func savePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeShaders(dir string) error {
	set, err := gpu.CompileShaders()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, words := range map[string][]uint32{
		"mesh_vert.spv": set.Vertex,
		"mesh_frag.spv": set.Fragment,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), gpu.Bytes(words), 0o644); err != nil {
			return err
		}
	}
	return nil
}

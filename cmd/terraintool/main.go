// terraintool is a CLI utility for inspecting, generating and exporting heightmaps.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/Faultbox/bumpterrain/internal/engine/lighting"
	"github.com/Faultbox/bumpterrain/internal/engine/terrain"
	"github.com/Faultbox/bumpterrain/internal/export"
	"github.com/Faultbox/bumpterrain/internal/logger"
	"github.com/Faultbox/bumpterrain/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := logger.Init("warn", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "generate", "gen":
		cmdGenerate(args)
	case "export", "x":
		cmdExport(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - heightmap terrain utility

Usage:
  terraintool <command> [options]

Commands:
  info <heightmap.bmp>                   Show heightmap and mesh statistics
  generate [options] <out.bmp>           Write a synthetic heightmap
  export [-o dir] [-format glb|gltf] <heightmap.bmp>...
                                         Build meshes and write glTF files
  config [-o path]                       Write the default demo config

Generate options:
  -w N            Width in samples (default 257)
  -h N            Height in samples (default 257)
  -pattern NAME   flat, slope or bumps (default bumps)
  -level B        Base brightness 0-255 (default 128)

Examples:
  terraintool info resource/heightmap.bmp
  terraintool generate -pattern slope -w 65 -h 65 slope.bmp
  terraintool export -o out resource/heightmap.bmp`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraintool info <heightmap.bmp>")
		os.Exit(1)
	}

	bmp, err := formats.ParseBMPFile(args[0])
	if err != nil {
		fail("%v", err)
	}

	st := rasterStats(bmp)
	opts := terrain.DefaultOptions()
	w, h := bmp.Size()

	fmt.Printf("Heightmap:  %s\n", args[0])
	fmt.Printf("Size:       %d x %d samples\n", w, h)
	fmt.Printf("Brightness: min %d, max %d, mean %.1f\n", st.Min, st.Max, st.Mean)
	fmt.Println()
	fmt.Println("Mesh (default options):")
	fmt.Printf("  Vertices: %d\n", terrain.VertexCount(w, h))
	fmt.Printf("  Extent:   %.0f x %.0f\n", float32(w-1)*opts.CellSpacing, float32(h-1)*opts.CellSpacing)
	fmt.Printf("  Heights:  %.2f .. %.2f\n",
		float32(st.Min)*opts.HeightScale/opts.HeightDamping,
		float32(st.Max)*opts.HeightScale/opts.HeightDamping)

	mesh, err := terrain.Build(bmp, opts)
	if err != nil {
		fail("%v", err)
	}
	sh := shadeStats(mesh, lighting.Default())
	fmt.Printf("  Lighting: %.2f .. %.2f, mean %.2f (default light, no bump)\n", sh.Min, sh.Max, sh.Mean)
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default: user config directory)")
	fs.Parse(args)

	path, err := writeDefaultConfig(*out)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Wrote default config to %s\n", path)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	width := fs.Int("w", 257, "Width in samples")
	height := fs.Int("h", 257, "Height in samples")
	pattern := fs.String("pattern", "bumps", "Pattern: flat, slope, bumps")
	level := fs.Int("level", 128, "Base brightness 0-255")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraintool generate [options] <out.bmp>")
		os.Exit(1)
	}
	if *level < 0 || *level > 255 {
		fail("level %d out of range 0-255", *level)
	}

	fn, err := patternFunc(*pattern, *width, *height, uint8(*level))
	if err != nil {
		fail("%v", err)
	}

	out := fs.Arg(0)
	f, err := os.Create(out)
	if err != nil {
		fail("%v", err)
	}
	if err := formats.EncodeBMP(f, *width, *height, fn); err != nil {
		f.Close()
		fail("%v", err)
	}
	if err := f.Close(); err != nil {
		fail("%v", err)
	}

	fmt.Printf("Wrote %dx%d %s heightmap to %s\n", *width, *height, *pattern, out)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	outDir := fs.String("o", ".", "Output directory")
	format := fs.String("format", "glb", "Container: glb or gltf")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraintool export [-o dir] [-format glb|gltf] <heightmap.bmp>...")
		os.Exit(1)
	}
	if *format != "glb" && *format != "gltf" {
		fail("unknown format %q", *format)
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fail("%v", err)
	}

	inputs := fs.Args()
	bar := progressbar.Default(int64(len(inputs)), "exporting")

	var failed []string
	for _, in := range inputs {
		out := exportPath(*outDir, in, *format)
		mesh, err := terrain.BuildFile(in, terrain.DefaultOptions())
		if err == nil {
			err = export.WriteFile(out, mesh)
		}
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", in, err))
		}
		bar.Add(1)
	}

	fmt.Printf("\nExported %d/%d heightmaps to %s\n", len(inputs)-len(failed), len(inputs), *outDir)
	if len(failed) > 0 {
		fail("%d failed:\n  %s", len(failed), strings.Join(failed, "\n  "))
	}
}

// exportPath maps an input heightmap to dir/<base>.<format>.
func exportPath(dir, input, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"."+format)
}

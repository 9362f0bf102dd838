package main

import (
	"github.com/Faultbox/bumpterrain/internal/config"
	"github.com/Faultbox/bumpterrain/internal/engine/lighting"
	"github.com/Faultbox/bumpterrain/internal/engine/terrain"
)

type shade struct {
	Min, Max, Mean float32
}

// shadeStats summarises the per-vertex diffuse factor of mesh under light.
func shadeStats(mesh *terrain.Mesh, light lighting.Directional) shade {
	if mesh == nil || len(mesh.Vertices) == 0 {
		return shade{}
	}
	sh := shade{Min: 1}
	var sum float64
	for _, v := range mesh.Vertices {
		f := light.Intensity(v.Normal)
		sh.Min = min(sh.Min, f)
		sh.Max = max(sh.Max, f)
		sum += float64(f)
	}
	sh.Mean = float32(sum / float64(len(mesh.Vertices)))
	return sh
}

// writeDefaultConfig saves the default config to path, or to the user
// config directory when path is empty, and returns where it went.
func writeDefaultConfig(path string) (string, error) {
	cfg := config.Default()
	if path == "" {
		return config.DefaultPath(), cfg.Save()
	}
	return path, cfg.SaveTo(path)
}

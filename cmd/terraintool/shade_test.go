package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Faultbox/bumpterrain/internal/config"
	"github.com/Faultbox/bumpterrain/internal/engine/lighting"
	"github.com/Faultbox/bumpterrain/internal/engine/terrain"
	"github.com/Faultbox/bumpterrain/pkg/formats"
)

func buildPattern(t *testing.T, name string) *terrain.Mesh {
	t.Helper()
	fn, err := patternFunc(name, 9, 9, 128)
	if err != nil {
		t.Fatalf("patternFunc: %v", err)
	}
	var buf bytes.Buffer
	if err := formats.EncodeBMP(&buf, 9, 9, fn); err != nil {
		t.Fatalf("EncodeBMP: %v", err)
	}
	bmp, err := formats.ParseBMP(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseBMP: %v", err)
	}
	mesh, err := terrain.Build(bmp, terrain.DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return mesh
}

func TestShadeStats(t *testing.T) {
	light := lighting.Default()

	flat := shadeStats(buildPattern(t, "flat"), light)
	if flat != (shade{Min: 1, Max: 1, Mean: 1}) {
		t.Errorf("flat terrain: expected fully lit, got %+v", flat)
	}

	slope := shadeStats(buildPattern(t, "slope"), light)
	if slope.Max >= 1 || slope.Min <= 0 {
		t.Errorf("slope: expected partial lighting, got %+v", slope)
	}

	if got := shadeStats(nil, light); got != (shade{}) {
		t.Errorf("nil mesh: expected zero stats, got %+v", got)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", config.FileName)

	got, err := writeDefaultConfig(path)
	if err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

func TestWriteDefaultConfig_UserDir(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is not redirectable through XDG_CONFIG_HOME on this OS")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := writeDefaultConfig("")
	if err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	if got != config.DefaultPath() {
		t.Errorf("path = %q, want %q", got, config.DefaultPath())
	}
	if _, err := os.Stat(got); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

package export

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/bumpterrain/internal/engine/terrain"
)

func flatMesh(t *testing.T) *terrain.Mesh {
	t.Helper()
	src := &raster{w: 3, h: 3}
	mesh, err := terrain.Build(src, terrain.DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return mesh
}

type raster struct{ w, h int }

func (r *raster) Size() (int, int) {
	return r.w, r.h
}

func (r *raster) Brightness(i, j int) uint8 {
	return 128
}

func TestDocumentStructure(t *testing.T) {
	mesh := flatMesh(t)

	doc, err := Document(mesh, "")
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected one mesh with one primitive, got %d meshes", len(doc.Meshes))
	}
	if doc.Meshes[0].Name != "terrain" {
		t.Errorf("mesh name = %q, want terrain", doc.Meshes[0].Name)
	}
	if len(doc.Nodes) != 1 || doc.Nodes[0].Mesh == nil || *doc.Nodes[0].Mesh != 0 {
		t.Fatal("expected a single node referencing mesh 0")
	}
	if got := doc.Scenes[0].Nodes; len(got) != 1 || got[0] != 0 {
		t.Errorf("scene nodes = %v, want [0]", got)
	}

	prim := doc.Meshes[0].Primitives[0]
	for _, attr := range []string{gltf.POSITION, gltf.NORMAL, gltf.TANGENT, gltf.TEXCOORD_0} {
		idx, ok := prim.Attributes[attr]
		if !ok {
			t.Errorf("missing attribute %s", attr)
			continue
		}
		if got := doc.Accessors[idx].Count; got != len(mesh.Vertices) {
			t.Errorf("%s count = %d, want %d", attr, got, len(mesh.Vertices))
		}
	}
	if prim.Indices == nil {
		t.Fatal("primitive has no indices")
	}
	if got := doc.Accessors[*prim.Indices].Count; got != len(mesh.Indices) {
		t.Errorf("index count = %d, want %d", got, len(mesh.Indices))
	}
}

func TestDocumentEmpty(t *testing.T) {
	if _, err := Document(nil, "x"); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("nil mesh: expected ErrEmptyMesh, got %v", err)
	}
	if _, err := Document(&terrain.Mesh{}, "x"); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("empty mesh: expected ErrEmptyMesh, got %v", err)
	}
}

func TestWriteFileBinaryRoundTrip(t *testing.T) {
	mesh := flatMesh(t)
	path := filepath.Join(t.TempDir(), "flat.glb")

	if err := WriteFile(path, mesh); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("gltf.Open: %v", err)
	}
	if doc.Meshes[0].Name != "flat" {
		t.Errorf("mesh name = %q, want flat", doc.Meshes[0].Name)
	}

	prim := doc.Meshes[0].Primitives[0]
	positions, err := modeler.ReadPosition(doc, doc.Accessors[prim.Attributes[gltf.POSITION]], nil)
	if err != nil {
		t.Fatalf("ReadPosition: %v", err)
	}
	if len(positions) != len(mesh.Vertices) {
		t.Fatalf("read %d positions, want %d", len(positions), len(mesh.Vertices))
	}
	for i, p := range positions {
		if p != mesh.Vertices[i].Position {
			t.Fatalf("position %d = %v, want %v", i, p, mesh.Vertices[i].Position)
		}
	}

	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		t.Fatalf("ReadIndices: %v", err)
	}
	for i, idx := range indices {
		if idx != uint32(i) {
			t.Fatalf("index %d = %d", i, idx)
		}
	}
}

func TestHandedness(t *testing.T) {
	tests := []struct {
		name     string
		binormal [3]float32
		want     float32
	}{
		{"terrain default", [3]float32{0, 0, -1}, 1},
		{"mirrored", [3]float32{0, 0, 1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := terrain.Vertex{
				Normal:   [3]float32{0, 1, 0},
				Tangent:  [3]float32{1, 0, 0},
				Binormal: tt.binormal,
			}
			if got := handedness(v); got != tt.want {
				t.Errorf("handedness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBinary(t *testing.T) {
	tests := map[string]bool{
		"a.glb":       true,
		"dir/B.GLB":   true,
		"a.gltf":      false,
		"noextension": false,
	}
	for path, want := range tests {
		if got := IsBinary(path); got != want {
			t.Errorf("IsBinary(%q) = %v, want %v", path, got, want)
		}
	}
}

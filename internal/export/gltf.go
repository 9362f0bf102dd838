// Package export writes terrain meshes to glTF 2.0 files.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/bumpterrain/internal/engine/terrain"
)

// ErrEmptyMesh is returned when there is no geometry to export.
var ErrEmptyMesh = errors.New("export: mesh has no vertices")

// Document converts a packed terrain mesh into a single-node glTF document.
// The binormal is folded into the sign of the tangent's w component.
func Document(mesh *terrain.Mesh, name string) (*gltf.Document, error) {
	if mesh == nil || len(mesh.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	if name == "" {
		name = "terrain"
	}

	n := len(mesh.Vertices)
	positions := make([][3]float32, n)
	normals := make([][3]float32, n)
	tangents := make([][4]float32, n)
	uvs := make([][2]float32, n)
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
		normals[i] = v.Normal
		uvs[i] = v.TexCoord
		tangents[i] = [4]float32{v.Tangent[0], v.Tangent[1], v.Tangent[2], handedness(v)}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "bumpterrain"

	prim := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(doc, mesh.Indices)),
		Attributes: map[string]int{
			gltf.POSITION:   modeler.WritePosition(doc, positions),
			gltf.NORMAL:     modeler.WriteNormal(doc, normals),
			gltf.TANGENT:    modeler.WriteTangent(doc, tangents),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
		},
		Material: gltf.Index(len(doc.Materials)),
	}
	doc.Materials = append(doc.Materials, &gltf.Material{Name: name, DoubleSided: true})

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc, nil
}

// WriteFile exports mesh to path. A .glb extension selects the binary container.
func WriteFile(path string, mesh *terrain.Mesh) error {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc, err := Document(mesh, name)
	if err != nil {
		return err
	}

	if IsBinary(path) {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// IsBinary reports whether path names a .glb file.
func IsBinary(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".glb")
}

// handedness returns +1 when cross(normal, tangent) points along the binormal, else -1.
func handedness(v terrain.Vertex) float32 {
	n, t, b := v.Normal, v.Tangent, v.Binormal
	cx := n[1]*t[2] - n[2]*t[1]
	cy := n[2]*t[0] - n[0]*t[2]
	cz := n[0]*t[1] - n[1]*t[0]
	if cx*b[0]+cy*b[1]+cz*b[2] < 0 {
		return -1
	}
	return 1
}

// Package scene uploads terrain meshes to the GPU and draws them.
package scene

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bumpterrain/internal/engine/lighting"
	"github.com/Faultbox/bumpterrain/internal/engine/scene/shaders"
	"github.com/Faultbox/bumpterrain/internal/engine/shader"
	"github.com/Faultbox/bumpterrain/internal/engine/terrain"
	"github.com/Faultbox/bumpterrain/internal/engine/texture"
	"github.com/Faultbox/bumpterrain/internal/logger"
	"github.com/Faultbox/bumpterrain/pkg/math"
)

// ErrResourceCreate is returned when a GPU buffer or texture cannot be created.
var ErrResourceCreate = errors.New("GPU resource creation failed")

// Uniform names used by the terrain shaders.
const (
	uniformWorld          = "uWorld"
	uniformView           = "uView"
	uniformProjection     = "uProjection"
	uniformDiffuseTexture = "uDiffuseTexture"
	uniformBumpTexture    = "uBumpTexture"
	uniformDiffuseColor   = "uDiffuseColor"
	uniformLightDirection = "uLightDirection"
)

// Texture units for the terrain samplers.
const (
	DiffuseUnit = 0
	BumpUnit    = 1
)

// textureParam is one required integer sampler parameter.
type textureParam struct {
	name  uint32
	value int32
}

// textureParams must all succeed for a texture to count as uploaded.
var textureParams = []textureParam{
	{gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR},
	{gl.TEXTURE_MAG_FILTER, gl.LINEAR},
	{gl.TEXTURE_WRAP_S, gl.REPEAT},
	{gl.TEXTURE_WRAP_T, gl.REPEAT},
}

const maxAnisotropy = 16.0

// vertexAttribute describes one interleaved terrain.Vertex field.
type vertexAttribute struct {
	location uint32
	size     int32 // float components
	offset   uintptr
}

var vertexStride = int32(unsafe.Sizeof(terrain.Vertex{}))

var vertexAttributes = []vertexAttribute{
	{0, 3, unsafe.Offsetof(terrain.Vertex{}.Position)},
	{1, 2, unsafe.Offsetof(terrain.Vertex{}.TexCoord)},
	{2, 3, unsafe.Offsetof(terrain.Vertex{}.Normal)},
	{3, 3, unsafe.Offsetof(terrain.Vertex{}.Tangent)},
	{4, 3, unsafe.Offsetof(terrain.Vertex{}.Binormal)},
}

// TerrainRenderer draws one bump-mapped terrain mesh.
type TerrainRenderer struct {
	program *shader.Program

	// Terrain mesh
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// Textures
	diffuseTex uint32
	bumpTex    uint32

	Bounds terrain.Bounds

	log *zap.Logger
}

// NewTerrainRenderer compiles the terrain shaders.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.NewProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader,
		uniformWorld,
		uniformView,
		uniformProjection,
		uniformDiffuseTexture,
		uniformBumpTexture,
		uniformDiffuseColor,
		uniformLightDirection,
	)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	return &TerrainRenderer{
		program: program,
		log:     logger.Named("scene"),
	}, nil
}

// Upload copies the mesh vertices and indices into GPU buffers, replacing
// any previous mesh. On failure nothing stays allocated.
func (tr *TerrainRenderer) Upload(mesh *terrain.Mesh) error {
	tr.clearMesh()

	if mesh == nil || len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("%w: empty terrain mesh", ErrResourceCreate)
	}

	gl.GenVertexArrays(1, &tr.vao)
	gl.GenBuffers(1, &tr.vbo)
	gl.GenBuffers(1, &tr.ebo)
	if tr.vao == 0 || tr.vbo == 0 || tr.ebo == 0 {
		tr.clearMesh()
		return fmt.Errorf("%w: vertex array or buffers", ErrResourceCreate)
	}

	gl.BindVertexArray(tr.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(vertexStride), unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	for _, a := range vertexAttributes {
		gl.VertexAttribPointerWithOffset(a.location, a.size, gl.FLOAT, false, vertexStride, a.offset)
		gl.EnableVertexAttribArray(a.location)
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		tr.clearMesh()
		return fmt.Errorf("%w: buffer upload (GL error 0x%04X)", ErrResourceCreate, code)
	}

	tr.indexCount = int32(len(mesh.Indices))
	tr.Bounds = mesh.Bounds

	tr.log.Debug("terrain uploaded",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int32("indices", tr.indexCount),
		zap.Int32("stride", vertexStride),
	)
	return nil
}

// SetTextures uploads the colour and bump images, replacing previous ones.
// Images larger than maxSize on a side are downscaled; zero means no limit.
func (tr *TerrainRenderer) SetTextures(diffuse, bump *image.RGBA, maxSize int) error {
	tr.clearTextures()

	var err error
	if tr.diffuseTex, err = uploadTexture(texture.FitToSize(diffuse, maxSize)); err != nil {
		return fmt.Errorf("diffuse texture: %w", err)
	}
	if tr.bumpTex, err = uploadTexture(texture.FitToSize(bump, maxSize)); err != nil {
		tr.clearTextures()
		return fmt.Errorf("bump texture: %w", err)
	}
	return nil
}

func uploadTexture(img *image.RGBA) (uint32, error) {
	if img == nil || img.Bounds().Empty() {
		return 0, fmt.Errorf("%w: empty image", ErrResourceCreate)
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	if texID == 0 {
		return 0, fmt.Errorf("%w: texture", ErrResourceCreate)
	}
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	for _, p := range textureParams {
		gl.TexParameteri(gl.TEXTURE_2D, p.name, p.value)
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &texID)
		return 0, fmt.Errorf("%w: texture upload (GL error 0x%04X)", ErrResourceCreate, code)
	}

	// Anisotropic filtering is optional; drivers without it raise INVALID_ENUM.
	gl.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, maxAnisotropy)
	gl.GetError()

	return texID, nil
}

// Ready reports whether a mesh and both textures are on the GPU.
func (tr *TerrainRenderer) Ready() bool {
	return tr.vao != 0 && tr.diffuseTex != 0 && tr.bumpTex != 0
}

// IndexCount returns the number of indices drawn per frame.
func (tr *TerrainRenderer) IndexCount() int32 {
	return tr.indexCount
}

// Render draws the terrain with the given transforms and light.
func (tr *TerrainRenderer) Render(world, view, projection math.Mat4, light lighting.Directional) {
	if !tr.Ready() {
		return
	}

	p := tr.program
	p.Use()

	p.SetMat4(uniformWorld, world)
	p.SetMat4(uniformView, view)
	p.SetMat4(uniformProjection, projection)
	p.SetVec4(uniformDiffuseColor, light.Diffuse)
	p.SetVec3(uniformLightDirection, light.Direction)

	gl.ActiveTexture(gl.TEXTURE0 + DiffuseUnit)
	gl.BindTexture(gl.TEXTURE_2D, tr.diffuseTex)
	p.SetInt(uniformDiffuseTexture, DiffuseUnit)

	gl.ActiveTexture(gl.TEXTURE0 + BumpUnit)
	gl.BindTexture(gl.TEXTURE_2D, tr.bumpTex)
	p.SetInt(uniformBumpTexture, BumpUnit)

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	gl.ActiveTexture(gl.TEXTURE0)
}

func (tr *TerrainRenderer) clearMesh() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	tr.indexCount = 0
}

func (tr *TerrainRenderer) clearTextures() {
	if tr.diffuseTex != 0 {
		gl.DeleteTextures(1, &tr.diffuseTex)
		tr.diffuseTex = 0
	}
	if tr.bumpTex != 0 {
		gl.DeleteTextures(1, &tr.bumpTex)
		tr.bumpTex = 0
	}
}

// Destroy releases all resources.
func (tr *TerrainRenderer) Destroy() {
	tr.clearMesh()
	tr.clearTextures()
	if tr.program != nil {
		tr.program.Delete()
	}
}

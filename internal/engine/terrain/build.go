package terrain

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/bumpterrain/internal/logger"
	"github.com/Faultbox/bumpterrain/pkg/formats"
)

// Options controls how heightmap samples are scaled into world space.
type Options struct {
	CellSpacing    float32 // World distance between samples along X and Z
	HeightScale    float32 // World height per brightness step
	HeightDamping  float32 // Divisor applied once after sampling
	StrictNumerics bool    // Fail on degenerate normals/tangents instead of emitting NaN
}

// DefaultOptions returns the scaling used by the demo terrain.
func DefaultOptions() Options {
	return Options{
		CellSpacing:   32,
		HeightScale:   8,
		HeightDamping: 15,
	}
}

// BuildFile loads a heightmap BMP and builds its mesh.
// A missing file is reported as ErrHeightmapNotFound.
func BuildFile(path string, opts Options) (*Mesh, error) {
	bmp, err := formats.ParseBMPFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrHeightmapNotFound, err)
		}
		return nil, &BuildError{Stage: StageLoad, Path: path, Err: err}
	}

	mesh, err := Build(bmp, opts)
	if err != nil {
		var be *BuildError
		if errors.As(err, &be) {
			be.Path = path
		}
		return nil, err
	}
	return mesh, nil
}

// Build runs the full construction pipeline over src: sample, reduce,
// estimate normals, expand to triangles, solve tangents and pack.
// On failure no mesh data is returned.
func Build(src Raster, opts Options) (*Mesh, error) {
	start := time.Now()
	log := logger.Named("terrain")

	grid, err := SampleHeights(src, opts.CellSpacing, opts.HeightScale)
	if err != nil {
		return nil, &BuildError{Stage: StageSample, Err: err}
	}
	log.Debug("heights sampled", zap.Int("width", grid.Width), zap.Int("height", grid.Height))

	if err := ReduceHeights(grid, opts.HeightDamping); err != nil {
		return nil, &BuildError{Stage: StageReduce, Err: err}
	}

	faces := FaceNormals(grid)
	normals, err := VertexNormals(grid, faces, opts.StrictNumerics)
	if err != nil {
		return nil, &BuildError{Stage: StageNormals, Err: err}
	}
	grid = ApplyNormals(grid, normals)
	log.Debug("normals estimated", zap.Int("faces", faces.Len()))

	model := BuildModel(grid)
	log.Debug("model built", zap.Int("vertices", len(model)))

	if err := SolveTangents(model, opts.StrictNumerics); err != nil {
		return nil, &BuildError{Stage: StageTangents, Err: err}
	}

	vertices, indices := Pack(model)

	if bad := countNonFinite(vertices); bad > 0 {
		log.Warn("terrain mesh contains non-finite vertex components",
			zap.Int("components", bad),
			zap.Int("vertices", len(vertices)),
		)
	}

	mesh := &Mesh{
		Width:       grid.Width,
		Height:      grid.Height,
		CellSpacing: grid.CellSpacing,
		Vertices:    vertices,
		Indices:     indices,
		Bounds:      computeBounds(vertices),
	}

	log.Info("terrain built",
		zap.Int("width", mesh.Width),
		zap.Int("height", mesh.Height),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return mesh, nil
}

func countNonFinite(vertices []Vertex) int {
	bad := 0
	count := func(vals []float32) {
		for _, f := range vals {
			if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
				bad++
			}
		}
	}
	for i := range vertices {
		v := &vertices[i]
		count(v.Position[:])
		count(v.TexCoord[:])
		count(v.Normal[:])
		count(v.Tangent[:])
		count(v.Binormal[:])
	}
	return bad
}

package terrain

import (
	"errors"
	"fmt"
)

// Terrain construction errors.
var (
	ErrHeightmapNotFound  = errors.New("heightmap not found")
	ErrHeightmapTooSmall  = errors.New("heightmap must be at least 2x2 samples")
	ErrAlreadyReduced     = errors.New("height reduction already applied")
	ErrInvalidDamping     = errors.New("height damping must be positive")
	ErrDegenerateNormal   = errors.New("degenerate vertex normal")
	ErrDegenerateTangent  = errors.New("degenerate tangent space")
	ErrIncompleteTriangle = errors.New("model vertex count is not a multiple of 3")
)

// Stage names one step of terrain construction.
type Stage string

// Construction stages in pipeline order.
const (
	StageLoad     Stage = "load"
	StageSample   Stage = "sample"
	StageReduce   Stage = "reduce"
	StageNormals  Stage = "normals"
	StageModel    Stage = "model"
	StageTangents Stage = "tangents"
	StagePack     Stage = "pack"
)

// BuildError reports which construction stage failed and why.
type BuildError struct {
	Stage Stage
	Path  string // Heightmap path, empty when built from memory
	Err   error
}

func (e *BuildError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("terrain %s (%s): %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("terrain %s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

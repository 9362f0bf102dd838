package terrain

import (
	"fmt"

	"github.com/Faultbox/bumpterrain/pkg/math"
)

// TangentBinormal derives the texture-space tangent and binormal of one
// triangle from its edge vectors and UV deltas. det is the UV determinant;
// a zero det produces Inf/NaN vectors, which are returned as-is.
func TangentBinormal(v1, v2, v3 ModelVertex) (tangent, binormal math.Vec3, det float32) {
	e1 := v2.Position.Sub(v1.Position)
	e2 := v3.Position.Sub(v1.Position)

	du1 := v2.TexCoord.Sub(v1.TexCoord)
	du2 := v3.TexCoord.Sub(v1.TexCoord)

	det = du1.X*du2.Y - du2.X*du1.Y
	den := 1 / det

	tangent = e1.Scale(du2.Y).Sub(e2.Scale(du1.Y)).Scale(den)
	binormal = e2.Scale(du1.X).Sub(e1.Scale(du2.X)).Scale(den)

	tangent = tangent.Div(tangent.Length())
	binormal = binormal.Div(binormal.Length())

	return tangent, binormal, det
}

// SolveTangents computes a tangent/binormal pair for every consecutive
// vertex triple and stores it on all three corners. Pairs are not averaged
// across triangles.
//
// With strict set, a zero UV determinant or a non-finite result is reported
// as ErrDegenerateTangent instead of being stored.
func SolveTangents(model []ModelVertex, strict bool) error {
	if len(model)%3 != 0 {
		return fmt.Errorf("%w: %d vertices", ErrIncompleteTriangle, len(model))
	}

	for f := 0; f < len(model); f += 3 {
		tangent, binormal, det := TangentBinormal(model[f], model[f+1], model[f+2])

		if strict && (det == 0 || !tangent.IsFinite() || !binormal.IsFinite()) {
			return fmt.Errorf("%w: triangle %d (det %v)", ErrDegenerateTangent, f/3, det)
		}

		for k := f; k < f+3; k++ {
			model[k].Tangent = tangent
			model[k].Binormal = binormal
		}
	}

	return nil
}

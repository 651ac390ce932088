package scene

import (
	gomath "math"

	"github.com/Owmacohe/OMCHTools/pkg/math"
)

// ToGlobal returns points converted from n's local space to world space.
// The input is not modified. A nil slice yields nil.
func ToGlobal(points []math.Vec3, n *Node) []math.Vec3 {
	if points == nil {
		log().Info("points are nil")
		return nil
	}
	return transformAll(points, n.LocalToWorld())
}

// ToLocal returns points converted from world space to n's local space.
// The input is not modified. A nil slice yields nil.
func ToLocal(points []math.Vec3, n *Node) []math.Vec3 {
	if points == nil {
		log().Info("points are nil")
		return nil
	}
	return transformAll(points, n.WorldToLocal())
}

func transformAll(points []math.Vec3, m math.Mat4) []math.Vec3 {
	out := make([]math.Vec3, len(points))
	for i, p := range points {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// RoundFloats returns values rounded to the given number of decimal places,
// halves to even. Negative decimals round to tens, hundreds and so on.
// A nil slice yields nil.
func RoundFloats(values []float32, decimals int) []float32 {
	if values == nil {
		log().Info("values are nil")
		return nil
	}
	factor := gomath.Pow(10, float64(decimals))
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(gomath.RoundToEven(float64(v)*factor) / factor)
	}
	return out
}

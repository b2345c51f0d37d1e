package scene

import (
	"math"

	"github.com/fogleman/pt/pt"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

// MapCoord converts a normalized plan coordinate into world space. The plan
// domain [0,100] maps onto [-25,25] with the plan center at the world
// origin. Non-finite input maps to 0 rather than poisoning downstream
// geometry; every builder relies on this being non-failing.
func MapCoord(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return (v - 50) / 2
}

// MapScalar maps an optional plan value; an absent value maps to 0.
func MapScalar(s plan.Scalar) float64 {
	if !s.Ok {
		return 0
	}
	return MapCoord(s.Val)
}

// MapPoint places a plan point on the world ground plane. Plan x runs along
// world X and plan y runs along world Z, so the top-left plan origin ends up
// at (-25, 0, -25).
func MapPoint(p plan.Point) pt.Vector {
	return pt.Vector{X: MapCoord(p.X), Y: 0, Z: MapCoord(p.Y)}
}

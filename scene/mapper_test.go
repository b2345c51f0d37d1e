package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

func TestMapCoord(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"center", 50, 0},
		{"origin", 0, -25},
		{"far_edge", 100, 25},
		{"nan", math.NaN(), 0},
		{"pos_inf", math.Inf(1), 0},
		{"neg_inf", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCoord(tt.in))
		})
	}
}

func TestMapScalarAbsent(t *testing.T) {
	assert.Equal(t, 0.0, MapScalar(plan.Scalar{}))
	assert.Equal(t, 25.0, MapScalar(plan.Num(100)))
}

func TestMapPointGroundPlane(t *testing.T) {
	v := MapPoint(plan.Point{X: 0, Y: 100})
	assert.Equal(t, -25.0, v.X)
	assert.Equal(t, 0.0, v.Y)
	assert.Equal(t, 25.0, v.Z)
}

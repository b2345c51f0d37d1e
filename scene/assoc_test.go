package scene

import (
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
)

func TestAssociate(t *testing.T) {
	a := pt.Vector{X: 0, Z: 0}
	b := pt.Vector{X: 10, Z: 0}
	const length = 10.0

	tests := []struct {
		name     string
		door     pt.Vector
		wantDist float64
		wantOK   bool
	}{
		{"on_wall_midpoint", pt.Vector{X: 5, Z: 0}, 5, true},
		{"within_perp_tolerance", pt.Vector{X: 5, Z: 0.9}, 5, true},
		{"beyond_perp_tolerance", pt.Vector{X: 5, Z: 1.1}, 0, false},
		{"too_near_start", pt.Vector{X: 0.4, Z: 0}, 0, false},
		{"too_near_end", pt.Vector{X: 9.7, Z: 0}, 0, false},
		{"just_inside_margin", pt.Vector{X: 0.6, Z: 0}, 0.6, true},
		// The projection clamps to the segment: a door past the endpoint
		// measures distance to the endpoint itself, which the margin rejects.
		{"past_end_close_to_line", pt.Vector{X: 10.5, Z: 0.2}, 0, false},
		{"far_from_everything", pt.Vector{X: 5, Z: 8}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, ok := associate(tt.door, a, b, length)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantDist, dist, 1e-9)
			}
		})
	}
}

func TestAssociateDiagonalWall(t *testing.T) {
	// 3-4-5 layout: wall along (0,0)->(8,6), door sitting on the segment.
	a := pt.Vector{}
	b := pt.Vector{X: 8, Z: 6}
	dist, ok := associate(pt.Vector{X: 4, Z: 3}, a, b, 10)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, dist, 1e-9)
}

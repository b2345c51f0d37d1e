package scene

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// doorPerpTolerance is the maximum perpendicular distance, in world units,
// between a door and the wall segment hosting it.
const doorPerpTolerance = 1.0

// doorEndMargin keeps cutouts away from wall endpoints: a door whose
// projection lands within this distance of either end is rejected, so a
// door placed in a corner cannot produce an invalid cutout.
const doorEndMargin = 0.5

// DoorPlacement is the transient result of associating a door with a wall.
// It is recomputed from source data on every reconstruction, never stored.
type DoorPlacement struct {
	DoorID            string
	WallID            string
	DistanceAlongWall float64
}

// associate projects a door's world position onto the wall segment from a
// to b (all on the ground plane) and reports its distance along the wall,
// or false if this wall does not host the door. The projection clamps to
// the segment, not the infinite line, so doors beyond an endpoint measure
// their distance to that endpoint.
func associate(door pt.Vector, a, b pt.Vector, length float64) (float64, bool) {
	dx := b.X - a.X
	dz := b.Z - a.Z
	t := ((door.X-a.X)*dx + (door.Z-a.Z)*dz) / (length * length)
	t = math.Max(0, math.Min(1, t))

	cx := a.X + t*dx
	cz := a.Z + t*dz
	perp := math.Hypot(door.X-cx, door.Z-cz)
	if perp > doorPerpTolerance {
		return 0, false
	}

	d := t * length
	if d <= doorEndMargin || d >= length-doorEndMargin {
		return 0, false
	}
	return d, true
}

package scene

import (
	"math"

	"github.com/fogleman/pt/pt"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

const (
	slabDepth       = 0.1
	labelElevation  = 2.5
	labelPickRadius = 0.5
)

// FloorSlab is a room's floor solid together with its highlight state.
// Geometry is built once; toggling the highlight only swaps the material
// on the existing triangles.
type FloorSlab struct {
	RoomID string
	Name   string
	State  HighlightState
	Mesh   *pt.Mesh
}

// SetState re-drives the slab's material parameters. Idempotent; geometry
// is untouched.
func (s *FloorSlab) SetState(state HighlightState) {
	if state == s.State {
		return
	}
	s.State = state
	s.Mesh.SetMaterial(floorMaterial(state).pt)
}

// Label is a billboard anchored above a room's declared center.
type Label struct {
	RoomID      string
	Text        string
	AreaSqFt    int
	Position    pt.Vector
	Highlighted bool
}

// buildFloor extrudes the room polygon into a thin slab whose top face lies
// at floor level, flush with wall bases, and anchors the room label above
// the declared center.
func buildFloor(r plan.RenderableRoom) (*FloorSlab, *Label) {
	// The profile lives in a local XY frame with the plan y axis inverted;
	// a profile point (u, v) lands in the world at (u, ·, -v), so plan and
	// wall coordinates line up on the ground plane.
	outline := make(Path2D, len(r.Polygon))
	for i, p := range r.Polygon {
		outline[i] = Point2D{X: MapCoord(p.X), Y: -MapCoord(p.Y)}
	}
	tris2 := outline.Triangulate()
	if len(tris2) == 0 {
		return nil, nil
	}

	m := floorMaterial(Normal)
	world := func(p Point2D, y float64) pt.Vector {
		return pt.Vector{X: p.X, Y: y, Z: -p.Y}
	}
	zero := pt.Vector{}
	var tris []*pt.Triangle
	for _, t := range tris2 {
		a, b, c := outline[t[0]], outline[t[1]], outline[t[2]]
		// Top cap at floor level and bottom cap a slab below.
		tris = append(tris, pt.NewTriangle(world(a, 0), world(b, 0), world(c, 0), zero, zero, zero, m.pt))
		tris = append(tris, pt.NewTriangle(world(a, -slabDepth), world(c, -slabDepth), world(b, -slabDepth), zero, zero, zero, m.pt))
	}
	for i := range outline {
		a := outline[i]
		b := outline[(i+1)%len(outline)]
		tris = quad(tris, world(a, 0), world(b, 0), world(b, -slabDepth), world(a, -slabDepth), m)
	}

	slab := &FloorSlab{RoomID: r.ID, Name: r.Name, State: Normal, Mesh: pt.NewMesh(tris)}

	center := MapPoint(r.Center)
	label := &Label{
		RoomID:   r.ID,
		Text:     r.Name,
		AreaSqFt: int(math.Round(r.AreaSqFt)),
		Position: pt.Vector{X: center.X, Y: labelElevation, Z: center.Z},
	}
	return slab, label
}

package plan

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// degenerateEpsilonSq is the squared plan-space distance below which a
// wall's endpoints are considered coincident.
const degenerateEpsilonSq = 0.01

// defaultDoorWidthPlan is assumed for doors whose width is absent.
const defaultDoorWidthPlan = 6.0

// Point is a well-formed plan-space point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RenderableWall is a wall that survived normalization: both endpoints are
// valid and it is not degenerate.
type RenderableWall struct {
	ID    string   `json:"id"`
	Start Point    `json:"start"`
	End   Point    `json:"end"`
	// Thickness in plan units. ThicknessSet distinguishes a declared zero
	// (clamped downstream) from an absent value (defaulted downstream).
	Thickness    float64  `json:"thickness"`
	ThicknessSet bool     `json:"thicknessSet"`
	Type         WallType `json:"type"`
}

// RenderableDoor is a door with a valid position; width and rotation have
// had their defaults applied.
type RenderableDoor struct {
	ID       string  `json:"id"`
	Position Point   `json:"position"`
	Width    float64 `json:"width"`
	Rotation float64 `json:"rotation"`
}

// RenderableRoom is a room whose polygon kept at least 3 valid vertices and
// whose center is valid.
type RenderableRoom struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Polygon        []Point `json:"polygon"`
	AreaSqFt       float64 `json:"areaSqFt"`
	Center         Point   `json:"center"`
	SuggestedColor string  `json:"suggestedColor,omitempty"`
}

// RenderablePlan is the filtered, well-formed view of a PlanData value.
// Builders downstream assume validity; all missing-field and degenerate
// entity handling happens here, in one pass.
type RenderablePlan struct {
	Walls []RenderableWall `json:"walls"`
	Doors []RenderableDoor `json:"doors"`
	Rooms []RenderableRoom `json:"rooms"`

	// Version is a content hash of the normalized plan, used as the
	// geometry cache key.
	Version string `json:"-"`
}

// Normalize filters p down to its renderable subset. Walls with missing
// endpoints or coincident endpoints, doors without a position, and rooms
// without 3 valid vertices or a valid center are dropped silently; this is
// the only place such checks occur.
func Normalize(p *PlanData) *RenderablePlan {
	r := &RenderablePlan{}

	for _, w := range p.Walls {
		if !w.Start.Valid() || !w.End.Valid() {
			continue
		}
		dx := w.End.X.Val - w.Start.X.Val
		dy := w.End.Y.Val - w.Start.Y.Val
		if dx*dx+dy*dy < degenerateEpsilonSq {
			continue
		}
		r.Walls = append(r.Walls, RenderableWall{
			ID:           w.ID,
			Start:        Point{w.Start.X.Val, w.Start.Y.Val},
			End:          Point{w.End.X.Val, w.End.Y.Val},
			Thickness:    w.Thickness.Val,
			ThicknessSet: w.Thickness.Ok,
			Type:         w.Type,
		})
	}

	for _, d := range p.Doors {
		if !d.Position.Valid() {
			continue
		}
		r.Doors = append(r.Doors, RenderableDoor{
			ID:       d.ID,
			Position: Point{d.Position.X.Val, d.Position.Y.Val},
			Width:    d.Width.Or(defaultDoorWidthPlan),
			Rotation: d.Rotation.Or(0),
		})
	}

	for _, rm := range p.Rooms {
		if !rm.Center.Valid() {
			continue
		}
		poly := make([]Point, 0, len(rm.Polygon))
		for _, v := range rm.Polygon {
			if v.Valid() {
				poly = append(poly, Point{v.X.Val, v.Y.Val})
			}
		}
		if len(poly) < 3 {
			continue
		}
		r.Rooms = append(r.Rooms, RenderableRoom{
			ID:             rm.ID,
			Name:           rm.Name,
			Polygon:        poly,
			AreaSqFt:       rm.AreaSqFt.Or(0),
			Center:         Point{rm.Center.X.Val, rm.Center.Y.Val},
			SuggestedColor: rm.SuggestedColor,
		})
	}

	r.Version = fingerprint(r)
	return r
}

func fingerprint(r *RenderablePlan) string {
	// Struct field order makes this encoding deterministic.
	data, err := json.Marshal(r)
	if err != nil {
		// Only plain floats, strings and slices are encoded; this cannot
		// fail for a RenderablePlan.
		panic(err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

package plan

import (
	"encoding/json"
	"math"
)

// Scalar is a JSON number that tolerates malformed input. The upstream
// analysis data is produced by a best-effort vision model, so any field may
// be missing, null, or not a number at all; all of those decode as absent
// rather than failing the whole document.
type Scalar struct {
	Val float64
	Ok  bool
}

func (s *Scalar) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		s.Ok = false
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		s.Ok = false
		return nil
	}
	s.Val = v
	s.Ok = true
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if !s.Ok {
		return []byte("null"), nil
	}
	return json.Marshal(s.Val)
}

// Or returns the value if present, otherwise def.
func (s Scalar) Or(def float64) float64 {
	if !s.Ok {
		return def
	}
	return s.Val
}

// Num is a shorthand constructor for a present Scalar.
func Num(v float64) Scalar {
	return Scalar{Val: v, Ok: true}
}

// Point2D is a point in normalized plan space, [0,100] x [0,100] with the
// origin at the top-left.
type Point2D struct {
	X Scalar `json:"x"`
	Y Scalar `json:"y"`
}

// Valid reports whether both coordinates are present and finite.
func (p Point2D) Valid() bool {
	return p.X.Ok && p.Y.Ok
}

type WallType string

const (
	WallBrick   WallType = "brick"
	WallDrywall WallType = "drywall"
	WallGlass   WallType = "glass"
)

// Wall is a straight wall segment in plan space.
type Wall struct {
	ID        string   `json:"id"`
	Start     Point2D  `json:"start"`
	End       Point2D  `json:"end"`
	Thickness Scalar   `json:"thickness"`
	Type      WallType `json:"type"`
}

// Door is a door opening. A door exists independently of any wall; which
// wall it interrupts is computed downstream, never declared in the data.
type Door struct {
	ID       string  `json:"id"`
	Position Point2D `json:"position"`
	Width    Scalar  `json:"width"`
	Rotation Scalar  `json:"rotation"` // degrees, clockwise-positive
}

// Room is a named region bounded by a simple polygon.
type Room struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Polygon          []Point2D `json:"polygon"`
	AreaSqFt         Scalar    `json:"areaSqFt"`
	Center           Point2D   `json:"center"`
	SuggestedColor   string    `json:"suggestedColor,omitempty"`
	ColorDescription string    `json:"colorDescription,omitempty"`
}

// PlanData is the geometric portion of the upstream analysis payload.
// Non-geometric fields of the payload (cost, renovation, safety, summary)
// are ignored by the decoder.
type PlanData struct {
	Walls []Wall `json:"walls"`
	Doors []Door `json:"doors"`
	Rooms []Room `json:"rooms"`
}

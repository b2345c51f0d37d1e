package scene

import (
	"math"
	"sync"

	"github.com/fogleman/pt/pt"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

type SolidKind string

const (
	KindWall SolidKind = "wall"
	KindDoor SolidKind = "door"
)

// Solid is one renderable mesh entity.
type Solid struct {
	ID       string
	Kind     SolidKind
	Material Material
	Mesh     *pt.Mesh
}

// Scene is the complete derived 3D model for one plan snapshot. It is a
// disposable artifact: any change to the source plan rebuilds it wholesale.
// A scene obtained from a shared Composer may be read by many goroutines at
// once and must be treated as immutable; SetHighlight is for scenes with a
// single owner. Concurrent readers pass their highlight to Graph instead.
type Scene struct {
	Walls      []*Solid
	Doors      []*Solid
	Floors     []*FloorSlab
	Labels     []*Label
	Placements []DoorPlacement

	highlighted string
}

// HighlightedRoom returns the currently highlighted room id, or "".
func (s *Scene) HighlightedRoom() string {
	return s.highlighted
}

// SetHighlight re-drives highlight-dependent materials for the given room
// id. Wall and door geometry is untouched; repeated identical selections
// are no-ops. Only the scene's sole owner may call this; a scene shared
// through a Composer cache must stay read-only.
func (s *Scene) SetHighlight(roomID string) {
	s.highlighted = roomID
	for _, f := range s.Floors {
		state := Normal
		if f.RoomID == roomID && roomID != "" {
			state = Highlighted
		}
		f.SetState(state)
	}
	for _, l := range s.Labels {
		l.Highlighted = l.RoomID == roomID && roomID != ""
	}
}

// PickRoom casts a ray against room floors and labels and returns the id of
// the nearest hit. This is how a pointer activation in the external UI maps
// back to a room selection.
func (s *Scene) PickRoom(ray pt.Ray) (string, bool) {
	bestT := pt.INF
	bestID := ""
	for _, f := range s.Floors {
		hit := f.Mesh.Intersect(ray)
		if hit.Ok() && hit.T < bestT {
			bestT = hit.T
			bestID = f.RoomID
		}
	}
	for _, l := range s.Labels {
		if t, ok := raySphere(ray, l.Position, labelPickRadius); ok && t < bestT {
			bestT = t
			bestID = l.RoomID
		}
	}
	return bestID, bestID != ""
}

func raySphere(ray pt.Ray, center pt.Vector, radius float64) (float64, bool) {
	oc := ray.Origin.Sub(center)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Stats summarizes a composed scene.
type Stats struct {
	Walls     int `json:"walls"`
	Doors     int `json:"doors"`
	Floors    int `json:"floors"`
	Labels    int `json:"labels"`
	Triangles int `json:"triangles"`
}

func (s *Scene) Stats() Stats {
	st := Stats{
		Walls:  len(s.Walls),
		Doors:  len(s.Doors),
		Floors: len(s.Floors),
		Labels: len(s.Labels),
	}
	for _, w := range s.Walls {
		st.Triangles += len(w.Mesh.Triangles)
	}
	for _, d := range s.Doors {
		st.Triangles += len(d.Mesh.Triangles)
	}
	for _, f := range s.Floors {
		st.Triangles += len(f.Mesh.Triangles)
	}
	return st
}

// Composer derives scenes from plan snapshots. Geometry is memoized by the
// plan's content hash; the cached scene is shared between callers and never
// mutated here, so concurrent Compose calls with the same plan are safe and
// each caller applies its own highlight at read time.
type Composer struct {
	mu    sync.Mutex
	cache map[string]*Scene
}

func NewComposer() *Composer {
	return &Composer{cache: make(map[string]*Scene)}
}

// Compose builds (or fetches) the scene for p. It never fails: entities
// that cannot produce geometry are omitted and the best-effort scene of
// the remainder is returned.
func (c *Composer) Compose(p *plan.RenderablePlan) *Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.cache[p.Version]
	if !ok {
		s = compose(p)
		c.cache[p.Version] = s
	}
	return s
}

// Invalidate drops a cached scene; with no version, the whole cache.
func (c *Composer) Invalidate(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version == "" {
		c.cache = make(map[string]*Scene)
		return
	}
	delete(c.cache, version)
}

func compose(p *plan.RenderablePlan) *Scene {
	s := &Scene{}
	for _, w := range p.Walls {
		solid, placements := buildWall(w, p.Doors)
		if solid == nil {
			continue
		}
		s.Walls = append(s.Walls, solid)
		s.Placements = append(s.Placements, placements...)
	}
	for _, d := range p.Doors {
		// Doors matched to no wall still get a freestanding assembly; only
		// the cutout is tied to association.
		s.Doors = append(s.Doors, buildDoor(d))
	}
	for _, r := range p.Rooms {
		slab, label := buildFloor(r)
		if slab == nil {
			continue
		}
		// Compiled here so PickRoom stays a pure read on shared scenes.
		slab.Mesh.Compile()
		s.Floors = append(s.Floors, slab)
		s.Labels = append(s.Labels, label)
	}
	return s
}

package scene

import (
	"sync"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

func loadSample(t *testing.T) *plan.RenderablePlan {
	t.Helper()
	data, err := plan.LoadFile("testdata/sample_plan.json")
	require.NoError(t, err)
	return plan.Normalize(data)
}

func TestComposeSamplePlan(t *testing.T) {
	rp := loadSample(t)
	s := NewComposer().Compose(rp)

	assert.Len(t, s.Walls, 6)
	assert.Len(t, s.Doors, 3)
	assert.Len(t, s.Floors, 3)
	assert.Len(t, s.Labels, 3)
}

func TestComposeDoorHosting(t *testing.T) {
	rp := loadSample(t)
	s := NewComposer().Compose(rp)

	// d1 at plan (50,60) interrupts only the vertical divider w5.
	var d1 []DoorPlacement
	for _, p := range s.Placements {
		if p.DoorID == "d1" {
			d1 = append(d1, p)
		}
	}
	require.Len(t, d1, 1)
	assert.Equal(t, "w5", d1[0].WallID)
	assert.InDelta(t, 25.0, d1[0].DistanceAlongWall, 1e-9)

	hosted := map[string]string{}
	for _, p := range s.Placements {
		hosted[p.DoorID] = p.WallID
	}
	assert.Equal(t, map[string]string{"d1": "w5", "d2": "w6", "d3": "w1"}, hosted)
}

func TestComposeUnmatchedDoorStillRenders(t *testing.T) {
	p := &plan.PlanData{
		Walls: []plan.Wall{{
			ID:    "w1",
			Start: plan.Point2D{X: plan.Num(10), Y: plan.Num(10)},
			End:   plan.Point2D{X: plan.Num(90), Y: plan.Num(10)},
		}},
		Doors: []plan.Door{{
			ID:       "lonely",
			Position: plan.Point2D{X: plan.Num(50), Y: plan.Num(50)},
		}},
	}
	s := NewComposer().Compose(plan.Normalize(p))

	assert.Len(t, s.Doors, 1, "a door hosted by no wall still gets an assembly")
	assert.Empty(t, s.Placements, "but contributes no cutout")
}

func TestComposeCachesGeometryByPlanVersion(t *testing.T) {
	rp := loadSample(t)
	c := NewComposer()

	s1 := c.Compose(rp)
	s2 := c.Compose(rp)
	assert.Same(t, s1, s2, "same plan content reuses the cached scene")

	// A plan with different content composes fresh.
	other := loadSample(t)
	other.Version = "different"
	s3 := c.Compose(other)
	assert.NotSame(t, s1, s3)
}

func TestHighlightDoesNotRebuildGeometry(t *testing.T) {
	rp := loadSample(t)
	s := NewComposer().Compose(rp)

	wallMeshes := make([]*pt.Mesh, len(s.Walls))
	for i, w := range s.Walls {
		wallMeshes[i] = w.Mesh
	}
	floorTris := make([]*pt.Triangle, len(s.Floors))
	for i, f := range s.Floors {
		floorTris[i] = f.Mesh.Triangles[0]
	}

	s.SetHighlight("r2")
	for i, w := range s.Walls {
		assert.Same(t, wallMeshes[i], w.Mesh, "wall geometry untouched by highlight")
	}
	for i, f := range s.Floors {
		assert.Same(t, floorTris[i], f.Mesh.Triangles[0], "floor geometry untouched by highlight")
		if f.RoomID == "r2" {
			assert.Equal(t, Highlighted, f.State)
		} else {
			assert.Equal(t, Normal, f.State)
		}
	}

	// Repeating the identical selection is a no-op.
	s.SetHighlight("r2")
	assert.Equal(t, "r2", s.HighlightedRoom())

	// Clearing the highlight restores every slab.
	s.SetHighlight("")
	for _, f := range s.Floors {
		assert.Equal(t, Normal, f.State)
	}
}

func TestComposeSharedSceneIsReadOnly(t *testing.T) {
	// Readers of the shared cached scene apply their highlight per export;
	// the scene itself never changes, so concurrent readers with different
	// selections each see their own.
	rp := loadSample(t)
	c := NewComposer()
	warm := c.Compose(rp)

	var wg sync.WaitGroup
	errs := make(chan string, 200)
	for i := 0; i < 50; i++ {
		highlight := ""
		if i%2 == 0 {
			highlight = "r1"
		}
		wg.Add(1)
		go func(highlight string) {
			defer wg.Done()
			s := c.Compose(rp)
			g := Graph(s, rp.Version, highlight)
			if g.HighlightedRoom != highlight {
				errs <- "wrong highlighted room in export"
			}
			for _, e := range g.Entities {
				if e.RoomID == "" {
					continue
				}
				want := highlight != "" && e.RoomID == highlight
				if e.Highlighted != want {
					errs <- "entity highlight leaked from another reader"
				}
			}
			if _, ok := s.PickRoom(pt.Ray{Origin: pt.Vector{X: -15, Y: 10, Z: -8}, Direction: pt.Vector{Y: -1}}); !ok {
				errs <- "pick failed on shared scene"
			}
		}(highlight)
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}

	for _, f := range warm.Floors {
		assert.Equal(t, Normal, f.State, "shared scene state untouched by readers")
	}
	assert.Empty(t, warm.HighlightedRoom())
}

func TestPickRoom(t *testing.T) {
	rp := loadSample(t)
	s := NewComposer().Compose(rp)

	down := pt.Vector{Y: -1}

	// Straight down into the Living Room floor, away from its label anchor.
	id, ok := s.PickRoom(pt.Ray{Origin: pt.Vector{X: -15, Y: 10, Z: -8}, Direction: down})
	require.True(t, ok)
	assert.Equal(t, "r1", id)

	// Through the Kitchen label anchor.
	id, ok = s.PickRoom(pt.Ray{Origin: pt.Vector{X: 10, Y: 10, Z: -12.5}, Direction: down})
	require.True(t, ok)
	assert.Equal(t, "r2", id)

	// Off into the void.
	_, ok = s.PickRoom(pt.Ray{Origin: pt.Vector{X: 500, Y: 10, Z: 500}, Direction: down})
	assert.False(t, ok)
}

func TestComposeOmitsDegenerateEntities(t *testing.T) {
	p := &plan.PlanData{
		Walls: []plan.Wall{{
			ID:    "dead",
			Start: plan.Point2D{X: plan.Num(5), Y: plan.Num(5)},
			End:   plan.Point2D{X: plan.Num(5), Y: plan.Num(5)},
		}},
	}
	s := NewComposer().Compose(plan.Normalize(p))
	assert.Empty(t, s.Walls, "degenerate walls emit no geometry")
}

func TestGraphExport(t *testing.T) {
	rp := loadSample(t)
	s := NewComposer().Compose(rp)

	g := Graph(s, rp.Version, "r3")
	assert.Equal(t, rp.Version, g.PlanVersion)
	assert.Equal(t, "r3", g.HighlightedRoom)
	assert.Len(t, g.Entities, 12, "6 walls + 3 doors + 3 floors")
	assert.Len(t, g.Labels, 3)

	for _, e := range g.Entities {
		assert.NotEmpty(t, e.Mesh.Positions)
		assert.Zero(t, len(e.Mesh.Positions)%3)
		assert.Zero(t, len(e.Mesh.Indices)%3)
		if e.RoomID == "r3" {
			assert.True(t, e.Highlighted)
		}
	}
}

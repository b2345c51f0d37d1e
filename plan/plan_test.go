package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarTolerantDecode(t *testing.T) {
	doc := `{
		"walls": [
			{"id": "w1", "start": {"x": 0, "y": "oops"}, "end": {"x": 10, "y": 10}, "thickness": null},
			{"id": "w2", "start": {"x": 0, "y": 0}, "end": {"y": 10}, "thickness": 3}
		]
	}`
	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, p.Walls, 2)

	assert := assert.New(t)
	assert.True(p.Walls[0].Start.X.Ok)
	assert.False(p.Walls[0].Start.Y.Ok, "non-numeric field decodes as absent")
	assert.False(p.Walls[0].Thickness.Ok, "null decodes as absent")
	assert.False(p.Walls[1].End.X.Ok, "missing field is absent")
	assert.True(p.Walls[1].Thickness.Ok)
	assert.Equal(3.0, p.Walls[1].Thickness.Val)
}

func TestLoadIgnoresNonGeometricFields(t *testing.T) {
	doc := `{
		"walls": [],
		"doors": [],
		"rooms": [],
		"cost": {"total": 12000},
		"summary": "a house"
	}`
	_, err := Load(strings.NewReader(doc))
	assert.NoError(t, err)
}

func wall(id string, x1, y1, x2, y2 float64) Wall {
	return Wall{
		ID:    id,
		Start: Point2D{X: Num(x1), Y: Num(y1)},
		End:   Point2D{X: Num(x2), Y: Num(y2)},
	}
}

func TestNormalizeDropsDegenerateWalls(t *testing.T) {
	tests := []struct {
		name string
		wall Wall
		kept bool
	}{
		{"normal", wall("w", 0, 0, 10, 0), true},
		{"coincident", wall("w", 5, 5, 5, 5), false},
		{"near_coincident", wall("w", 5, 5, 5.05, 5.05), false},
		{"just_long_enough", wall("w", 5, 5, 5.2, 5), true},
		{"missing_endpoint", Wall{ID: "w", Start: Point2D{X: Num(0)}, End: Point2D{X: Num(10), Y: Num(0)}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rp := Normalize(&PlanData{Walls: []Wall{tt.wall}})
			if tt.kept {
				assert.Len(t, rp.Walls, 1)
			} else {
				assert.Empty(t, rp.Walls)
			}
		})
	}
}

func TestNormalizeThicknessPresence(t *testing.T) {
	w0 := wall("w0", 0, 0, 10, 0)
	w0.Thickness = Num(0)
	w1 := wall("w1", 0, 20, 10, 20)

	rp := Normalize(&PlanData{Walls: []Wall{w0, w1}})
	require.Len(t, rp.Walls, 2)
	assert.True(t, rp.Walls[0].ThicknessSet, "declared zero thickness stays declared")
	assert.Equal(t, 0.0, rp.Walls[0].Thickness)
	assert.False(t, rp.Walls[1].ThicknessSet, "absent thickness stays absent")
}

func TestNormalizeDoorDefaults(t *testing.T) {
	p := &PlanData{Doors: []Door{
		{ID: "d1", Position: Point2D{X: Num(50), Y: Num(60)}},
		{ID: "d2", Position: Point2D{X: Num(10)}},
	}}
	rp := Normalize(p)
	require.Len(t, rp.Doors, 1, "door without a valid position is dropped")
	assert.Equal(t, 6.0, rp.Doors[0].Width)
	assert.Equal(t, 0.0, rp.Doors[0].Rotation)
}

func TestNormalizeRoomPolygonFiltering(t *testing.T) {
	room := Room{
		ID:     "r1",
		Name:   "Kitchen",
		Center: Point2D{X: Num(20), Y: Num(20)},
		Polygon: []Point2D{
			{X: Num(10), Y: Num(10)},
			{X: Num(30), Y: Num(10)},
			{X: Num(30)}, // invalid vertex
			{X: Num(10), Y: Num(30)},
		},
	}
	rp := Normalize(&PlanData{Rooms: []Room{room}})
	require.Len(t, rp.Rooms, 1)
	assert.Len(t, rp.Rooms[0].Polygon, 3, "invalid vertices are filtered, not zeroed")

	// Dropping one more vertex leaves fewer than 3: the room is unrenderable.
	room.Polygon = room.Polygon[:3]
	rp = Normalize(&PlanData{Rooms: []Room{room}})
	assert.Empty(t, rp.Rooms)

	// A room without a valid center is unrenderable regardless of polygon.
	room.Polygon = []Point2D{{X: Num(0), Y: Num(0)}, {X: Num(1), Y: Num(0)}, {X: Num(1), Y: Num(1)}}
	room.Center = Point2D{}
	rp = Normalize(&PlanData{Rooms: []Room{room}})
	assert.Empty(t, rp.Rooms)
}

func TestFingerprintTracksContent(t *testing.T) {
	p1 := &PlanData{Walls: []Wall{wall("w1", 0, 0, 10, 0)}}
	p2 := &PlanData{Walls: []Wall{wall("w1", 0, 0, 10, 0)}}
	p3 := &PlanData{Walls: []Wall{wall("w1", 0, 0, 10, 1)}}

	assert.Equal(t, Normalize(p1).Version, Normalize(p2).Version)
	assert.NotEqual(t, Normalize(p1).Version, Normalize(p3).Version)
}

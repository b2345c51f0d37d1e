package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

func rroom() plan.RenderableRoom {
	return plan.RenderableRoom{
		ID:   "r1",
		Name: "Living Room",
		Polygon: []plan.Point{
			{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 50, Y: 70}, {X: 10, Y: 70},
		},
		AreaSqFt: 480.4,
		Center:   plan.Point{X: 30, Y: 40},
	}
}

func TestBuildFloorSlab(t *testing.T) {
	slab, label := buildFloor(rroom())
	require.NotNil(t, slab)
	require.NotNil(t, label)

	// Slab top sits at floor level, flush with wall bases, and extends one
	// slab depth below; footprint covers the mapped polygon.
	bb := slab.Mesh.BoundingBox()
	assert.InDelta(t, 0.0, bb.Max.Y, 1e-9)
	assert.InDelta(t, -slabDepth, bb.Min.Y, 1e-9)
	assert.InDelta(t, -20.0, bb.Min.X, 1e-9)
	assert.InDelta(t, 0.0, bb.Max.X, 1e-9)
	assert.InDelta(t, -20.0, bb.Min.Z, 1e-9)
	assert.InDelta(t, 10.0, bb.Max.Z, 1e-9)
}

func TestBuildFloorLabel(t *testing.T) {
	_, label := buildFloor(rroom())
	require.NotNil(t, label)

	assert.Equal(t, "r1", label.RoomID)
	assert.Equal(t, "Living Room", label.Text)
	assert.Equal(t, 480, label.AreaSqFt, "declared area is rounded")
	assert.InDelta(t, -10.0, label.Position.X, 1e-9)
	assert.InDelta(t, labelElevation, label.Position.Y, 1e-9)
	assert.InDelta(t, -5.0, label.Position.Z, 1e-9)
}

func TestBuildFloorDegeneratePolygon(t *testing.T) {
	r := rroom()
	r.Polygon = r.Polygon[:2]
	slab, label := buildFloor(r)
	assert.Nil(t, slab)
	assert.Nil(t, label)
}

func TestFloorSlabHighlightSwapsMaterialOnly(t *testing.T) {
	slab, _ := buildFloor(rroom())
	require.NotNil(t, slab)

	before := len(slab.Mesh.Triangles)
	firstTri := slab.Mesh.Triangles[0]

	slab.SetState(Highlighted)
	assert.Equal(t, Highlighted, slab.State)
	assert.Equal(t, before, len(slab.Mesh.Triangles))
	assert.Same(t, firstTri, slab.Mesh.Triangles[0], "geometry objects are reused")
	assert.Equal(t, MatFloorBright.pt.Color, slab.Mesh.Triangles[0].Material.Color)

	slab.SetState(Normal)
	assert.Equal(t, MatFloor.pt.Color, slab.Mesh.Triangles[0].Material.Color)
}

package scene

import (
	"math"
	"sort"

	"github.com/fogleman/pt/pt"
	lin "github.com/sgreben/piecewiselinear"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

const (
	wallHeight = 3.0 // standard ceiling height, world units
	doorHeight = 2.2 // cutout and assembly opening height

	// doorWidthScale converts a plan-unit door width into a world-unit
	// opening width.
	doorWidthScale = 0.5

	defaultWallThickness = 0.5
)

// thicknessCurve maps plan-unit wall thickness to world units. The segment
// between the two clamp plateaus is exactly thickness/5, so the curve is
// clamp(t/5, 0.3, 1.0); values outside the X range take the nearest
// plateau. Same interpolation machinery as a speaker directivity response.
var thicknessCurve = lin.Function{
	X: []float64{0, 1.5, 5},
	Y: []float64{0.3, 0.3, 1.0},
}

// worldThickness resolves a wall's world-unit thickness. A declared
// thickness runs through the clamp curve even when zero; only an absent
// value takes the default.
func worldThickness(w plan.RenderableWall) float64 {
	if !w.ThicknessSet {
		return defaultWallThickness
	}
	return thicknessCurve.At(w.Thickness)
}

// opening is a door cutout interval along a wall, in wall-local units.
type opening struct {
	center float64
	width  float64
}

func (o opening) min() float64 { return o.center - o.width/2 }
func (o opening) max() float64 { return o.center + o.width/2 }

// mergeOpenings unions overlapping cutout intervals. The source data does
// not guard against two doors cutting overlapping holes in one wall;
// merging keeps the profile topology well-defined.
func mergeOpenings(os []opening) []opening {
	if len(os) < 2 {
		return os
	}
	sort.Slice(os, func(i, j int) bool { return os[i].min() < os[j].min() })
	merged := []opening{os[0]}
	for _, o := range os[1:] {
		last := &merged[len(merged)-1]
		if o.min() <= last.max() {
			hi := math.Max(last.max(), o.max())
			lo := last.min()
			last.center = (lo + hi) / 2
			last.width = hi - lo
		} else {
			merged = append(merged, o)
		}
	}
	return merged
}

// buildWall extrudes one wall's elevation profile, with door cutouts, into
// a world-space solid. Doors from the full plan are offered; those hosted
// by this wall also contribute a DoorPlacement record.
func buildWall(w plan.RenderableWall, doors []plan.RenderableDoor) (*Solid, []DoorPlacement) {
	start := MapPoint(w.Start)
	end := MapPoint(w.End)
	dx := end.X - start.X
	dz := end.Z - start.Z
	length := math.Hypot(dx, dz)
	if length == 0 {
		// Degenerate walls are dropped during normalization; a plan-space
		// near-zero segment can still collapse after mapping.
		return nil, nil
	}
	angle := math.Atan2(dz, dx)
	thickness := worldThickness(w)

	var openings []opening
	var placements []DoorPlacement
	for _, d := range doors {
		dist, ok := associate(MapPoint(d.Position), start, end, length)
		if !ok {
			continue
		}
		openings = append(openings, opening{center: dist, width: d.Width * doorWidthScale})
		placements = append(placements, DoorPlacement{
			DoorID:            d.ID,
			WallID:            w.ID,
			DistanceAlongWall: dist,
		})
	}
	openings = mergeOpenings(openings)

	mesh := extrudeWallProfile(length, thickness, openings, wallMaterial(w.Type))
	if mesh == nil {
		return nil, nil
	}

	// Place at start, oriented along the segment: local u runs along the
	// wall, v up, and the extrusion axis w across the centerline.
	dir := pt.Vector{X: math.Cos(angle), Z: math.Sin(angle)}
	norm := pt.Vector{X: -math.Sin(angle), Z: math.Cos(angle)}
	transformFrame(mesh, start, dir, norm)
	mesh.SmoothNormalsThreshold(math.Pi / 5)

	return &Solid{ID: w.ID, Kind: KindWall, Material: wallMaterial(w.Type), Mesh: mesh}, placements
}

// extrudeWallProfile builds the holed elevation rectangle [0,length] x
// [0,wallHeight] and extrudes it across [-thickness/2, +thickness/2].
// Cutouts span [0, doorHeight] vertically, so they break the bottom edge:
// each opening contributes jamb faces and a lintel underside instead of
// front-face geometry.
func extrudeWallProfile(length, thickness float64, openings []opening, m Material) *pt.Mesh {
	// Clip opening intervals to the wall and drop anything that collapses.
	spans := make([]opening, 0, len(openings))
	for _, o := range openings {
		lo := math.Max(o.min(), 0)
		hi := math.Min(o.max(), length)
		if hi-lo > 1e-9 {
			spans = append(spans, opening{center: (lo + hi) / 2, width: hi - lo})
		}
	}

	w0 := -thickness / 2
	w1 := thickness / 2
	v := func(u, y, w float64) pt.Vector { return pt.Vector{X: u, Y: y, Z: w} }

	var tris []*pt.Triangle

	// Vertical cells between openings (full height) and lintel cells above
	// each opening; each cell emits its front (+w) and back (-w) faces.
	cell := func(u0, u1, y0, y1 float64) {
		tris = quad(tris, v(u0, y0, w1), v(u1, y0, w1), v(u1, y1, w1), v(u0, y1, w1), m)
		tris = quad(tris, v(u0, y0, w0), v(u0, y1, w0), v(u1, y1, w0), v(u1, y0, w0), m)
	}

	cursor := 0.0
	for _, o := range spans {
		if o.min() > cursor {
			cell(cursor, o.min(), 0, wallHeight)
		}
		cell(o.min(), o.max(), doorHeight, wallHeight)
		// Jambs and lintel underside face into the cutout.
		tris = quad(tris, v(o.min(), 0, w0), v(o.min(), doorHeight, w0), v(o.min(), doorHeight, w1), v(o.min(), 0, w1), m)
		tris = quad(tris, v(o.max(), 0, w0), v(o.max(), 0, w1), v(o.max(), doorHeight, w1), v(o.max(), doorHeight, w0), m)
		tris = quad(tris, v(o.min(), doorHeight, w0), v(o.max(), doorHeight, w0), v(o.max(), doorHeight, w1), v(o.min(), doorHeight, w1), m)
		cursor = o.max()
	}
	if cursor < length {
		cell(cursor, length, 0, wallHeight)
	}

	// Top edge, bottom edges outside the openings, and the two end caps.
	tris = quad(tris, v(0, wallHeight, w0), v(0, wallHeight, w1), v(length, wallHeight, w1), v(length, wallHeight, w0), m)
	cursor = 0.0
	bottom := func(u0, u1 float64) {
		tris = quad(tris, v(u0, 0, w0), v(u1, 0, w0), v(u1, 0, w1), v(u0, 0, w1), m)
	}
	for _, o := range spans {
		if o.min() > cursor {
			bottom(cursor, o.min())
		}
		cursor = o.max()
	}
	if cursor < length {
		bottom(cursor, length)
	}
	tris = quad(tris, v(0, 0, w0), v(0, 0, w1), v(0, wallHeight, w1), v(0, wallHeight, w0), m)
	tris = quad(tris, v(length, 0, w0), v(length, wallHeight, w0), v(length, wallHeight, w1), v(length, 0, w1), m)

	if len(tris) == 0 {
		return nil
	}
	return pt.NewMesh(tris)
}

// transformFrame rebases mesh vertices from a local (u, y, w) frame into
// world space: world = origin + u*dir + y*up + w*norm.
func transformFrame(mesh *pt.Mesh, origin, dir, norm pt.Vector) {
	mapv := func(p pt.Vector) pt.Vector {
		return origin.Add(dir.MulScalar(p.X)).Add(pt.Vector{Y: p.Y}).Add(norm.MulScalar(p.Z))
	}
	for _, t := range mesh.Triangles {
		t.V1 = mapv(t.V1)
		t.V2 = mapv(t.V2)
		t.V3 = mapv(t.V3)
		t.FixNormals()
	}
}

package scene

import (
	"math"

	"github.com/fogleman/pt/pt"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

// Door assembly dimensions, world units. These are a fixed parametric kit;
// only the opening width varies with the source data.
const (
	leafThickness = 0.1
	frameWidth    = 0.1
	frameDepth    = 0.6
	casingWidth   = 0.15
	casingDepth   = 0.05
	knobRadius    = 0.05
	knobHeight    = 1.0
	// knobInset places the knobs at 35% of the opening width from center.
	knobInset = 0.35
)

// buildDoor constructs the full door assembly: jambs, header, casing on
// both wall faces, the leaf, and knob hardware. Everything is built in a
// local frame (x across the opening, y up, z through the wall) that is
// rotated by -rotation degrees about the vertical axis and translated to
// the door's mapped position.
func buildDoor(d plan.RenderableDoor) *Solid {
	ow := d.Width * doorWidthScale

	v := func(x, y, z float64) pt.Vector { return pt.Vector{X: x, Y: y, Z: z} }
	var tris []*pt.Triangle

	// Jambs flank the opening; the header spans them.
	jx := ow/2 + frameWidth/2
	tris = box(tris, v(jx-frameWidth/2, 0, -frameDepth/2), v(jx+frameWidth/2, doorHeight, frameDepth/2), MatFrame)
	tris = box(tris, v(-jx-frameWidth/2, 0, -frameDepth/2), v(-jx+frameWidth/2, doorHeight, frameDepth/2), MatFrame)
	tris = box(tris, v(-ow/2-frameWidth, doorHeight, -frameDepth/2), v(ow/2+frameWidth, doorHeight+frameWidth, frameDepth/2), MatFrame)

	// Casing trim on both wall faces covers the wall-to-frame seam: one top
	// strip and two side strips per face, centered on the seam line.
	seam := ow/2 + frameWidth
	for _, zc := range []float64{frameDepth/2 + casingDepth/2, -frameDepth/2 - casingDepth/2} {
		z0, z1 := zc-casingDepth/2, zc+casingDepth/2
		tris = box(tris, v(-seam-casingWidth/2, 0, z0), v(-seam+casingWidth/2, doorHeight+frameWidth, z1), MatCasing)
		tris = box(tris, v(seam-casingWidth/2, 0, z0), v(seam+casingWidth/2, doorHeight+frameWidth, z1), MatCasing)
		tris = box(tris, v(-seam-casingWidth/2, doorHeight+frameWidth-casingWidth/2, z0), v(seam+casingWidth/2, doorHeight+frameWidth+casingWidth/2, z1), MatCasing)
	}

	// Leaf, slightly shorter than the opening, centered in it.
	tris = box(tris, v(-ow/2, 0.01, -leafThickness/2), v(ow/2, doorHeight-0.01, leafThickness/2), MatLeaf)

	// Knob hardware on both faces.
	kx := ow * knobInset
	tris = sphere(tris, v(kx, knobHeight, leafThickness/2+knobRadius), knobRadius, MatHardware)
	tris = sphere(tris, v(kx, knobHeight, -leafThickness/2-knobRadius), knobRadius, MatHardware)

	mesh := pt.NewMesh(tris)

	// Rotation is clockwise-positive degrees in the source data.
	a := -d.Rotation * math.Pi / 180
	pos := MapPoint(d.Position)
	dir := pt.Vector{X: math.Cos(a), Z: math.Sin(a)}
	norm := pt.Vector{X: -math.Sin(a), Z: math.Cos(a)}
	transformFrame(mesh, pos, dir, norm)

	return &Solid{ID: d.ID, Kind: KindDoor, Material: MatFrame, Mesh: mesh}
}

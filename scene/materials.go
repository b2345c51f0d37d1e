package scene

import (
	"fmt"

	"github.com/fogleman/pt/pt"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

// Material pairs a renderer-facing color with the pt material attached to
// mesh triangles. Transparent materials render as see-through surfaces
// (glass walls, highlighted floors).
type Material struct {
	Name        string
	Color       string // #RRGGBB
	Transparent bool
	Emissive    bool
	pt          pt.Material
}

func diffuse(name string, hex int) Material {
	return Material{
		Name:  name,
		Color: fmt.Sprintf("#%06X", hex),
		pt:    pt.DiffuseMaterial(pt.HexColor(hex)),
	}
}

func transparent(name string, hex int) Material {
	m := diffuse(name, hex)
	m.Transparent = true
	m.pt = pt.TransparentMaterial(pt.HexColor(hex), 1.5, pt.Radians(0), 0)
	return m
}

var (
	MatWall        = diffuse("wall", 0x9E9E9E)
	MatWallBrick   = diffuse("wall-brick", 0x8D6E63)
	MatWallGlass   = transparent("wall-glass", 0xB3E5FC)
	MatFrame       = diffuse("door-frame", 0x6D4C41)
	MatCasing      = diffuse("door-casing", 0x795548)
	MatLeaf        = diffuse("door-leaf", 0xA1887F)
	MatHardware    = diffuse("door-hardware", 0xC0C0C0)
	MatFloor       = diffuse("floor", 0xBDBDBD)
	MatFloorBright = Material{
		Name:        "floor-highlighted",
		Color:       "#4FC3F7",
		Transparent: true,
		Emissive:    true,
		pt:          pt.LightMaterial(pt.HexColor(0x4FC3F7), 0.6),
	}
)

// wallMaterial picks the structural material for a wall type. Unknown types
// fall back to the neutral structural gray.
func wallMaterial(t plan.WallType) Material {
	switch t {
	case plan.WallBrick:
		return MatWallBrick
	case plan.WallGlass:
		return MatWallGlass
	default:
		return MatWall
	}
}

// HighlightState drives the presentational difference between a selected
// and an unselected room slab. It is not persisted model state.
type HighlightState int

const (
	Normal HighlightState = iota
	Highlighted
)

func floorMaterial(s HighlightState) Material {
	if s == Highlighted {
		return MatFloorBright
	}
	return MatFloor
}

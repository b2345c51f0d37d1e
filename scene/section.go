package scene

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/fogleman/pt/pt"
)

// Plane slices scene meshes to produce 2D section outlines, e.g. a
// horizontal cut at door height gives a floor-plan-like diagnostic view of
// the reconstruction.
type Plane struct {
	Point  pt.Vector
	Normal pt.Vector
	U, V   pt.Vector
}

func MakePlane(point, normal pt.Vector) Plane {
	u := perpendicular(normal).Normalize()
	v := u.Cross(normal).Normalize()
	return Plane{point, normal, u, v}
}

// FloorPlane is a horizontal section at the given height.
func FloorPlane(height float64) Plane {
	return MakePlane(pt.Vector{Y: height}, pt.Vector{Y: 1})
}

// Project maps a world point into the plane's 2D frame.
func (p Plane) Project(point pt.Vector) Point2D {
	d := point.Sub(p.Point)
	return Point2D{X: d.Dot(p.U), Y: d.Dot(p.V)}
}

func perpendicular(a pt.Vector) pt.Vector {
	if a.X == 0 && a.Y == 0 {
		if a.Z == 0 {
			return pt.Vector{}
		}
		return pt.Vector{Y: 1}
	}
	return pt.Vector{X: -a.Y, Y: a.X}.Normalize()
}

func (p Plane) intersectSegment(v0, v1 pt.Vector) (pt.Vector, bool) {
	u := v1.Sub(v0)
	w := v0.Sub(p.Point)
	d := p.Normal.Dot(u)
	if d > -1e-9 && d < 1e-9 {
		return pt.Vector{}, false
	}
	t := -p.Normal.Dot(w) / d
	if t < 0 || t > 1 {
		return pt.Vector{}, false
	}
	return v0.Add(u.MulScalar(t)), true
}

// IntersectTriangle returns the segment where the plane cuts the triangle.
func (p Plane) IntersectTriangle(t *pt.Triangle) (pt.Vector, pt.Vector, bool) {
	v1, ok1 := p.intersectSegment(t.V1, t.V2)
	v2, ok2 := p.intersectSegment(t.V2, t.V3)
	v3, ok3 := p.intersectSegment(t.V3, t.V1)
	var p1, p2 pt.Vector
	switch {
	case ok1 && ok2:
		p1, p2 = v1, v2
	case ok1 && ok3:
		p1, p2 = v1, v3
	case ok2 && ok3:
		p1, p2 = v2, v3
	default:
		return pt.Vector{}, pt.Vector{}, false
	}
	if p1 == p2 {
		return pt.Vector{}, pt.Vector{}, false
	}
	return p1, p2, true
}

// SliceMesh cuts the mesh with the plane and returns the projected 2D
// segments joined into paths.
func (p Plane) SliceMesh(m *pt.Mesh) []Path2D {
	var segs [][2]pt.Vector
	for _, t := range m.Triangles {
		if v1, v2, ok := p.IntersectTriangle(t); ok {
			segs = append(segs, [2]pt.Vector{v1, v2})
		}
	}
	var paths []Path2D
	for _, s := range segs {
		paths = append(paths, Path2D{p.Project(s[0]), p.Project(s[1])})
	}
	return paths
}

// SectionView renders a sliced scene to a PNG image.
type SectionView struct {
	Plane Plane
	XSize int
	YSize int
	// Margin in pixels around the drawing.
	Margin float64
}

// Render slices every solid in the scene with the view plane and draws the
// resulting outlines, plus room label anchors, into a PNG file.
func (v SectionView) Render(s *Scene, filename string) error {
	paths := v.Plane.SliceMesh(s.Merged())
	if len(paths) == 0 {
		return fmt.Errorf("section plane cuts no geometry")
	}

	xmin, xmax, ymin, ymax := paths[0].BoundingBox()
	for _, p := range paths[1:] {
		x0, x1, y0, y1 := p.BoundingBox()
		xmin = math.Min(xmin, x0)
		xmax = math.Max(xmax, x1)
		ymin = math.Min(ymin, y0)
		ymax = math.Max(ymax, y1)
	}
	span := math.Max(xmax-xmin, ymax-ymin)
	if span == 0 {
		return fmt.Errorf("degenerate section bounds")
	}
	scale := (float64(min(v.XSize, v.YSize)) - 2*v.Margin) / span
	toPx := func(p Point2D) (float64, float64) {
		return v.Margin + (p.X-xmin)*scale, v.Margin + (p.Y-ymin)*scale
	}

	dc := gg.NewContext(v.XSize, v.YSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.15, 0.15, 0.15)
	dc.SetLineWidth(1.5)
	for _, path := range paths {
		x0, y0 := toPx(path[0])
		x1, y1 := toPx(path[1])
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}

	dc.SetRGB(0.8, 0.2, 0.2)
	for _, l := range s.Labels {
		x, y := toPx(v.Plane.Project(pt.Vector{X: l.Position.X, Z: l.Position.Z}))
		dc.DrawCircle(x, y, 3)
		dc.Fill()
		dc.DrawString(l.Text, x+5, y-5)
	}

	return dc.SavePNG(filename)
}

package scene

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Point2D is a point in a profile's local 2D frame.
type Point2D struct {
	X, Y float64
}

func (p Point2D) Translate(x, y float64) Point2D {
	return Point2D{p.X + x, p.Y + y}
}

func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// Path2D is an ordered sequence of profile points. A closed path's last
// vertex connects back to the first implicitly.
type Path2D []Point2D

func (p Path2D) Translate(x, y float64) Path2D {
	translated := make(Path2D, len(p))
	for i, v := range p {
		translated[i] = v.Translate(x, y)
	}
	return translated
}

func (p Path2D) BoundingBox() (XMin, XMax, YMin, YMax float64) {
	if len(p) == 0 {
		return
	}
	XMin, XMax, YMin, YMax = p[0].X, p[0].X, p[0].Y, p[0].Y
	for _, v := range p[1:] {
		XMin = math.Min(XMin, v.X)
		XMax = math.Max(XMax, v.X)
		YMin = math.Min(YMin, v.Y)
		YMax = math.Max(YMax, v.Y)
	}
	return
}

// SignedArea uses the shoelace formula; positive for counterclockwise
// winding.
func (p Path2D) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return area / 2
}

func cross2(a, b, c Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func pointInTriangle(p, a, b, c Point2D) bool {
	d1 := cross2(a, b, p)
	d2 := cross2(b, c, p)
	d3 := cross2(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Triangulate decomposes a simple closed path into triangles by ear
// clipping. Winding order is not normalized (inconsistent source winding is
// a data-quality issue, not corrected here); the clipper follows whichever
// orientation the path has. Returns index triples into the path.
func (p Path2D) Triangulate() [][3]int {
	n := len(p)
	if n < 3 {
		return nil
	}
	orient := 1.0
	if p.SignedArea() < 0 {
		orient = -1.0
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var tris [][3]int
	guard := 0
	for len(idx) > 3 {
		clipped := false
		for i := 0; i < len(idx); i++ {
			ia := idx[(i+len(idx)-1)%len(idx)]
			ib := idx[i]
			ic := idx[(i+1)%len(idx)]
			a, b, c := p[ia], p[ib], p[ic]
			if cross2(a, b, c)*orient <= 1e-12 {
				continue // reflex or collinear
			}
			ear := true
			for _, j := range idx {
				if j == ia || j == ib || j == ic {
					continue
				}
				if pointInTriangle(p[j], a, b, c) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}
			tris = append(tris, [3]int{ia, ib, ic})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Degenerate input (collinear runs, slight self-touching). Fall
			// back to a fan so we still emit something renderable.
			guard++
			if guard > 1 {
				for i := 1; i < len(idx)-1; i++ {
					tris = append(tris, [3]int{idx[0], idx[i], idx[i+1]})
				}
				return tris
			}
			idx = append(idx[1:], idx[0])
		}
	}
	tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	return tris
}

// quad appends the two triangles of a planar quadrilateral given in order.
func quad(tris []*pt.Triangle, a, b, c, d pt.Vector, m Material) []*pt.Triangle {
	zero := pt.Vector{}
	tris = append(tris, pt.NewTriangle(a, b, c, zero, zero, zero, m.pt))
	tris = append(tris, pt.NewTriangle(a, c, d, zero, zero, zero, m.pt))
	return tris
}

// box appends the twelve triangles of an axis-aligned box spanning
// [min,max] in some local frame; the caller transforms vertices afterward
// if needed.
func box(tris []*pt.Triangle, min, max pt.Vector, m Material) []*pt.Triangle {
	v := func(x, y, z float64) pt.Vector { return pt.Vector{X: x, Y: y, Z: z} }
	// -Z and +Z faces
	tris = quad(tris, v(min.X, min.Y, min.Z), v(min.X, max.Y, min.Z), v(max.X, max.Y, min.Z), v(max.X, min.Y, min.Z), m)
	tris = quad(tris, v(min.X, min.Y, max.Z), v(max.X, min.Y, max.Z), v(max.X, max.Y, max.Z), v(min.X, max.Y, max.Z), m)
	// -X and +X faces
	tris = quad(tris, v(min.X, min.Y, min.Z), v(min.X, min.Y, max.Z), v(min.X, max.Y, max.Z), v(min.X, max.Y, min.Z), m)
	tris = quad(tris, v(max.X, min.Y, min.Z), v(max.X, max.Y, min.Z), v(max.X, max.Y, max.Z), v(max.X, min.Y, max.Z), m)
	// -Y and +Y faces
	tris = quad(tris, v(min.X, min.Y, min.Z), v(max.X, min.Y, min.Z), v(max.X, min.Y, max.Z), v(min.X, min.Y, max.Z), m)
	tris = quad(tris, v(min.X, max.Y, min.Z), v(min.X, max.Y, max.Z), v(max.X, max.Y, max.Z), v(max.X, max.Y, min.Z), m)
	return tris
}

// sphere appends a UV sphere mesh centered at c.
func sphere(tris []*pt.Triangle, c pt.Vector, r float64, m Material) []*pt.Triangle {
	const rings, segs = 6, 10
	at := func(ring, seg int) pt.Vector {
		phi := math.Pi * float64(ring) / rings
		theta := 2 * math.Pi * float64(seg) / segs
		return pt.Vector{
			X: c.X + r*math.Sin(phi)*math.Cos(theta),
			Y: c.Y + r*math.Cos(phi),
			Z: c.Z + r*math.Sin(phi)*math.Sin(theta),
		}
	}
	zero := pt.Vector{}
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segs; seg++ {
			a := at(ring, seg)
			b := at(ring+1, seg)
			cc := at(ring+1, seg+1)
			d := at(ring, seg+1)
			switch {
			case ring == 0: // a and d coincide at the pole
				tris = append(tris, pt.NewTriangle(a, b, cc, zero, zero, zero, m.pt))
			case ring == rings-1: // b and cc coincide at the pole
				tris = append(tris, pt.NewTriangle(a, b, d, zero, zero, zero, m.pt))
			default:
				tris = append(tris, pt.NewTriangle(a, b, cc, zero, zero, zero, m.pt))
				tris = append(tris, pt.NewTriangle(a, cc, d, zero, zero, zero, m.pt))
			}
		}
	}
	return tris
}

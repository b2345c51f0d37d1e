package scene

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// Merged collapses every solid in the scene into a single mesh, useful for
// STL export and whole-scene slicing.
func (s *Scene) Merged() *pt.Mesh {
	all := pt.NewMesh(nil)
	for _, w := range s.Walls {
		all.Add(w.Mesh)
	}
	for _, d := range s.Doors {
		all.Add(d.Mesh)
	}
	for _, f := range s.Floors {
		all.Add(f.Mesh)
	}
	return all
}

// SaveSTL writes the whole scene as one binary STL solid.
func (s *Scene) SaveSTL(path string) error {
	return s.Merged().SaveSTL(path)
}

// Save3MF writes the scene as a 3MF package with one named object per
// entity, so downstream tooling can address walls, doors and floors
// individually.
func (s *Scene) Save3MF(path string) error {
	model := &go3mf.Model{Units: go3mf.UnitMeter}

	var id uint32
	addObject := func(name string, mesh *pt.Mesh) {
		id++
		obj := &go3mf.Object{ID: id, Name: name, Mesh: new(go3mf.Mesh)}
		index := make(map[pt.Vector]uint32)
		vert := func(v pt.Vector) uint32 {
			if i, ok := index[v]; ok {
				return i
			}
			i := uint32(len(index))
			index[v] = i
			obj.Mesh.Vertices.Vertex = append(obj.Mesh.Vertices.Vertex,
				go3mf.Point3D{float32(v.X), float32(v.Y), float32(v.Z)})
			return i
		}
		for _, t := range mesh.Triangles {
			obj.Mesh.Triangles.Triangle = append(obj.Mesh.Triangles.Triangle,
				go3mf.Triangle{V1: vert(t.V1), V2: vert(t.V2), V3: vert(t.V3)})
		}
		model.Resources.Objects = append(model.Resources.Objects, obj)
		model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: id})
	}

	for _, w := range s.Walls {
		addObject(fmt.Sprintf("wall %s", w.ID), w.Mesh)
	}
	for _, d := range s.Doors {
		addObject(fmt.Sprintf("door %s", d.ID), d.Mesh)
	}
	for _, f := range s.Floors {
		addObject(fmt.Sprintf("floor %s", f.RoomID), f.Mesh)
	}

	w, err := go3mf.CreateWriter(path)
	if err != nil {
		return fmt.Errorf("creating 3mf writer: %w", err)
	}
	if err := w.Encode(model); err != nil {
		w.Close()
		return fmt.Errorf("encoding 3mf model: %w", err)
	}
	return w.Close()
}

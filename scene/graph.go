package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fogleman/pt/pt"
)

// JSON schema types consumed by the external rendering collaborator. Meshes
// are exported as indexed triangle lists in world space; materials carry
// only presentational parameters, so a highlight change re-exports with
// identical geometry arrays.

type MaterialJSON struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Transparent bool   `json:"transparent,omitempty"`
	Emissive    bool   `json:"emissive,omitempty"`
}

type MeshJSON struct {
	// Positions is a flat x,y,z triple per vertex.
	Positions []float64 `json:"positions"`
	// Indices holds three vertex indices per triangle.
	Indices []int `json:"indices"`
}

type EntityJSON struct {
	ID          string       `json:"id"`
	Kind        string       `json:"kind"`
	RoomID      string       `json:"roomId,omitempty"`
	Material    MaterialJSON `json:"material"`
	Highlighted bool         `json:"highlighted,omitempty"`
	Mesh        MeshJSON     `json:"mesh"`
}

type LabelJSON struct {
	RoomID      string    `json:"roomId"`
	Text        string    `json:"text"`
	AreaSqFt    int       `json:"areaSqFt"`
	Position    PointJSON `json:"position"`
	Highlighted bool      `json:"highlighted,omitempty"`
}

type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type GraphJSON struct {
	GeneratedAt     string       `json:"generatedAt"`
	PlanVersion     string       `json:"planVersion,omitempty"`
	HighlightedRoom string       `json:"highlightedRoom,omitempty"`
	Stats           Stats        `json:"stats"`
	Entities        []EntityJSON `json:"entities"`
	Labels          []LabelJSON  `json:"labels"`
}

func materialToJSON(m Material) MaterialJSON {
	return MaterialJSON{Name: m.Name, Color: m.Color, Transparent: m.Transparent, Emissive: m.Emissive}
}

func meshToJSON(m *pt.Mesh) MeshJSON {
	index := make(map[pt.Vector]int)
	out := MeshJSON{}
	add := func(v pt.Vector) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(index)
		index[v] = i
		out.Positions = append(out.Positions, v.X, v.Y, v.Z)
		return i
	}
	for _, t := range m.Triangles {
		out.Indices = append(out.Indices, add(t.V1), add(t.V2), add(t.V3))
	}
	return out
}

// Graph flattens a composed scene into its renderer-facing JSON form. The
// highlight is applied here, per export, without touching the scene: the
// same shared scene can serve concurrent exports with different highlights.
func Graph(s *Scene, planVersion, highlightID string) *GraphJSON {
	g := &GraphJSON{
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		PlanVersion:     planVersion,
		HighlightedRoom: highlightID,
		Stats:           s.Stats(),
	}
	for _, w := range s.Walls {
		g.Entities = append(g.Entities, EntityJSON{
			ID: w.ID, Kind: string(w.Kind),
			Material: materialToJSON(w.Material),
			Mesh:     meshToJSON(w.Mesh),
		})
	}
	for _, d := range s.Doors {
		g.Entities = append(g.Entities, EntityJSON{
			ID: d.ID, Kind: string(d.Kind),
			Material: materialToJSON(d.Material),
			Mesh:     meshToJSON(d.Mesh),
		})
	}
	for _, f := range s.Floors {
		state := Normal
		if highlightID != "" && f.RoomID == highlightID {
			state = Highlighted
		}
		g.Entities = append(g.Entities, EntityJSON{
			ID: f.RoomID + "-floor", Kind: "floor", RoomID: f.RoomID,
			Material:    materialToJSON(floorMaterial(state)),
			Highlighted: state == Highlighted,
			Mesh:        meshToJSON(f.Mesh),
		})
	}
	for _, l := range s.Labels {
		g.Labels = append(g.Labels, LabelJSON{
			RoomID:      l.RoomID,
			Text:        l.Text,
			AreaSqFt:    l.AreaSqFt,
			Position:    PointJSON{l.Position.X, l.Position.Y, l.Position.Z},
			Highlighted: highlightID != "" && l.RoomID == highlightID,
		})
	}
	return g
}

// SaveGraphJSON writes the scene graph to a JSON file.
func SaveGraphJSON(filename string, s *Scene, planVersion, highlightID string) error {
	data, err := json.MarshalIndent(Graph(s, planVersion, highlightID), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling scene graph: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

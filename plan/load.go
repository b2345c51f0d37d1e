package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a plan-data document from r.
func Load(r io.Reader) (*PlanData, error) {
	p := &PlanData{}
	if err := json.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("decoding plan data: %w", err)
	}
	return p, nil
}

// LoadFile decodes a plan-data document from a JSON file.
func LoadFile(path string) (*PlanData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening plan file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

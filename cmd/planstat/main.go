// planstat prints a quick summary of a floor-plan JSON file: how many
// entities the analysis produced and how many survive normalization.
// Useful for eyeballing how much of a vision-model payload is usable.
package main

import (
	"fmt"
	"os"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
)

func run(path string) error {
	data, err := plan.LoadFile(path)
	if err != nil {
		return err
	}
	rp := plan.Normalize(data)

	fmt.Printf("plan: %s\n", path)
	fmt.Printf("version: %s\n", rp.Version[:12])
	fmt.Printf("walls: %d raw, %d renderable (%d dropped)\n",
		len(data.Walls), len(rp.Walls), len(data.Walls)-len(rp.Walls))
	fmt.Printf("doors: %d raw, %d renderable (%d dropped)\n",
		len(data.Doors), len(rp.Doors), len(data.Doors)-len(rp.Doors))
	fmt.Printf("rooms: %d raw, %d renderable (%d dropped)\n",
		len(data.Rooms), len(rp.Rooms), len(data.Rooms)-len(rp.Rooms))

	var area float64
	for _, r := range rp.Rooms {
		area += r.AreaSqFt
	}
	fmt.Printf("total declared area: %.0f sqft\n", area)
	return nil
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <plan.json>\n", os.Args[0])
		os.Exit(2)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

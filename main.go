package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rosh-nik15/BlueprintX-AI/api"
	"github.com/rosh-nik15/BlueprintX-AI/config"
	"github.com/rosh-nik15/BlueprintX-AI/interact"
	"github.com/rosh-nik15/BlueprintX-AI/plan"
	"github.com/rosh-nik15/BlueprintX-AI/scene"
)

var CLI struct {
	Reconstruct ReconstructCmd `cmd:"" help:"Reconstruct a 3D scene from a floor-plan JSON file"`
	Serve       ServeCmd       `cmd:"" help:"Serve the reconstruction API over HTTP"`
	Inspect     InspectCmd     `cmd:"" help:"Browse a reconstructed scene's rooms in the terminal"`
}

type ReconstructCmd struct {
	Plan      string `arg:"" optional:"" name:"plan" help:"floor-plan JSON file"`
	Config    string `name:"config" help:"YAML run configuration"`
	Highlight string `name:"highlight" help:"room id to highlight"`
	GraphJSON string `name:"graph-json" help:"write the renderer scene graph here"`
	STL       string `name:"stl" help:"write the merged scene as binary STL here"`
	ThreeMF   string `name:"threemf" help:"write the scene as a 3MF package here"`
	Section   string `name:"section" help:"write a horizontal section PNG here"`
}

func (c ReconstructCmd) Run() error {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.LoadFromFile(c.Config, config.LoadOptions{
			ValidateImmediately: true,
			ResolvePaths:        true,
		})
		if err != nil {
			return err
		}
		cfg = loaded
	}
	// Command-line arguments win over the config file.
	if c.Plan != "" {
		cfg.Input.Plan.Path = c.Plan
	}
	if c.Highlight != "" {
		cfg.Highlight = c.Highlight
	}
	if c.GraphJSON != "" {
		cfg.Output.GraphJSON = c.GraphJSON
	}
	if c.STL != "" {
		cfg.Output.STL = c.STL
	}
	if c.ThreeMF != "" {
		cfg.Output.ThreeMF = c.ThreeMF
	}
	if c.Section != "" {
		cfg.Output.Section = c.Section
	}
	if cfg.Input.Plan.Path == "" {
		return fmt.Errorf("no plan file given (argument or config input.plan.path)")
	}

	data, err := plan.LoadFile(cfg.Input.Plan.Path)
	if err != nil {
		return err
	}
	rp := plan.Normalize(data)
	s := scene.NewComposer().Compose(rp)

	stats := s.Stats()
	fmt.Printf("reconstructed %d walls, %d doors, %d rooms (%d triangles)\n",
		stats.Walls, stats.Doors, stats.Floors, stats.Triangles)

	if cfg.Output.GraphJSON != "" {
		if err := scene.SaveGraphJSON(cfg.Output.GraphJSON, s, rp.Version, cfg.Highlight); err != nil {
			return err
		}
	}
	if cfg.Output.STL != "" {
		if err := s.SaveSTL(cfg.Output.STL); err != nil {
			return err
		}
	}
	if cfg.Output.ThreeMF != "" {
		if err := s.Save3MF(cfg.Output.ThreeMF); err != nil {
			return err
		}
	}
	if cfg.Output.Section != "" {
		view := scene.SectionView{
			Plane:  scene.FloorPlane(cfg.Section.Height),
			XSize:  cfg.Section.XSize,
			YSize:  cfg.Section.YSize,
			Margin: cfg.Section.Margin,
		}
		if err := view.Render(s, cfg.Output.Section); err != nil {
			return err
		}
	}
	return nil
}

type ServeCmd struct {
	Addr string `name:"addr" default:":8080" help:"listen address"`
}

func (c ServeCmd) Run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	api.RegisterRoutes(e, api.NewHandler(logger))

	logger.Info("serving reconstruction API", "addr", c.Addr)
	return e.Start(c.Addr)
}

type InspectCmd struct {
	Plan string `arg:"" name:"plan" help:"floor-plan JSON file"`
}

func (c InspectCmd) Run() error {
	data, err := plan.LoadFile(c.Plan)
	if err != nil {
		return err
	}
	rp := plan.Normalize(data)
	s := scene.NewComposer().Compose(rp)
	return interact.Interact(s)
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}

// Command render loads a YAML scene description and writes a rendered PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arborfall/pathtracer/pkg/camera"
	"github.com/arborfall/pathtracer/pkg/hittable"
	"github.com/arborfall/pathtracer/pkg/pngwriter"
	"github.com/arborfall/pathtracer/pkg/scenecfg"
)

type config struct {
	ScenePath string
	OutPath   string
	Workers   int
}

func main() {
	cfg := parseFlags()

	fmt.Println("Loading scene...")
	startTime := time.Now()

	data, err := os.ReadFile(cfg.ScenePath)
	if err != nil {
		fmt.Printf("Error reading scene file: %v\n", err)
		os.Exit(1)
	}

	sceneFile, err := scenecfg.Load(data)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	world := hittable.NewBVH(sceneFile.Objects)
	renderScene := camera.Scene{World: world}

	writer := pngwriter.New(sceneFile.Camera.ImageWidth(), sceneFile.Camera.ImageHeight(), 2.0)

	fmt.Println("Rendering...")
	if cfg.Workers > 0 {
		sceneFile.Camera.RenderWithWorkers(context.Background(), renderScene, writer, reportProgress, cfg.Workers)
	} else {
		sceneFile.Camera.Render(context.Background(), renderScene, writer, reportProgress)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.OutPath), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := writer.Save(cfg.OutPath); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Saved to %s\n", cfg.OutPath)
}

func parseFlags() config {
	cfg := config{}
	flag.StringVar(&cfg.ScenePath, "scene", "scenes/default.yaml", "Path to a YAML scene description")
	flag.StringVar(&cfg.OutPath, "out", "output/render.png", "Output PNG path")
	flag.IntVar(&cfg.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Parse()
	return cfg
}

func reportProgress(rowsDone, totalRows int) {
	if rowsDone%32 == 0 || rowsDone == totalRows {
		fmt.Printf("  %d / %d rows\n", rowsDone, totalRows)
	}
}

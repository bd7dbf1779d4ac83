// Command biomes renders the palette of a biome map so its colors can be
// inspected: elevation runs along the x axis and moisture along the y
// axis of the generated image.
package main

import (
	"flag"
	"image/color"

	"github.com/mengistristen/ficture/cell"
	"github.com/mengistristen/ficture/config"
	"github.com/mengistristen/ficture/grid"
	"github.com/mengistristen/ficture/internal/logging"
	"github.com/mengistristen/ficture/render"
)

const size = 1000

func main() {
	var configPath, outputPath, mapName string
	flag.StringVar(&configPath, "filepath", "config/config.yaml", "the path to the config file to use")
	flag.StringVar(&configPath, "f", "config/config.yaml", "the path to the config file to use (shorthand)")
	flag.StringVar(&outputPath, "output", "biomes.png", "the path to write the palette image to")
	flag.StringVar(&outputPath, "o", "biomes.png", "the path to write the palette image to (shorthand)")
	flag.StringVar(&mapName, "map", "default", "the biome map to render")
	flag.Parse()

	logger := logging.WithMapSize(size, size)

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", "path", configPath, "error", err)
	}

	evaluator, err := cfg.ColorEvaluator(mapName)
	if err != nil {
		logger.Fatal("Failed to build color evaluator", "map", mapName, "error", err)
	}

	m := grid.New(cell.Cell{}, size, size)

	samples := grid.MapIndexed(m, func(_ cell.Cell, x, y int) cell.Cell {
		return cell.Cell{
			Elevation: float64(x) / size,
			Moisture:  float64(y) / size,
		}
	})

	pixels := grid.Map(samples, func(c cell.Cell) color.RGBA {
		return evaluator.Evaluate(c.Elevation, c.Moisture)
	})

	img := grid.Extract(pixels, render.PixelsToImage)

	if err := render.WritePNG(outputPath, img); err != nil {
		logger.Fatal("Failed to write image", "path", outputPath, "error", err)
	}

	logger.Info("Palette rendered", "map", mapName, "output", outputPath)
}

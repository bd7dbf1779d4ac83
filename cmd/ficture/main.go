// Command ficture generates a terrain-like world map as a PNG image.
//
// Two fractal noise fields fill a grid with elevation and moisture
// samples, both factors are normalized to 0-1, and each cell is colored
// through the config-driven biome evaluator (or the ocean gradient below
// sea level).
package main

import (
	"flag"
	"image/color"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/mengistristen/ficture/cell"
	"github.com/mengistristen/ficture/config"
	"github.com/mengistristen/ficture/grid"
	"github.com/mengistristen/ficture/internal/logging"
	"github.com/mengistristen/ficture/internal/mathx"
	"github.com/mengistristen/ficture/render"
)

// seaLevel is the normalized elevation below which cells are colored with
// the standalone ocean gradient instead of the biome map.
const seaLevel = 0.05

// extents tracks the running min and max of both cell factors so a single
// reduce pass gathers everything normalization needs.
type extents struct {
	minElevation, maxElevation float64
	minMoisture, maxMoisture   float64
}

func emptyExtents() extents {
	return extents{
		minElevation: math.Inf(1),
		maxElevation: math.Inf(-1),
		minMoisture:  math.Inf(1),
		maxMoisture:  math.Inf(-1),
	}
}

func (e extents) add(c cell.Cell) extents {
	return extents{
		minElevation: math.Min(e.minElevation, c.Elevation),
		maxElevation: math.Max(e.maxElevation, c.Elevation),
		minMoisture:  math.Min(e.minMoisture, c.Moisture),
		maxMoisture:  math.Max(e.maxMoisture, c.Moisture),
	}
}

func (e extents) merge(other extents) extents {
	return extents{
		minElevation: math.Min(e.minElevation, other.minElevation),
		maxElevation: math.Max(e.maxElevation, other.maxElevation),
		minMoisture:  math.Min(e.minMoisture, other.minMoisture),
		maxMoisture:  math.Max(e.maxMoisture, other.maxMoisture),
	}
}

func main() {
	width := flag.Int("width", 1920, "the width of generated maps")
	height := flag.Int("height", 1080, "the height of generated maps")

	var configPath, outputPath string
	flag.StringVar(&configPath, "filepath", "config/config.yaml", "the path to the config file to use")
	flag.StringVar(&configPath, "f", "config/config.yaml", "the path to the config file to use (shorthand)")
	flag.StringVar(&outputPath, "output", "image.png", "the path to write the generated image to")
	flag.StringVar(&outputPath, "o", "image.png", "the path to write the generated image to (shorthand)")
	flag.Parse()

	logger := logging.WithRunID(uuid.NewString()).With("width", *width, "height", *height)

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", "path", configPath, "error", err)
	}

	elevationNoise, err := cfg.NoiseGenerator("elevation_noise", *width, *height)
	if err != nil {
		logger.Fatal("Failed to build elevation noise generator", "error", err)
	}
	moistureNoise, err := cfg.NoiseGenerator("moisture_noise", *width, *height)
	if err != nil {
		logger.Fatal("Failed to build moisture noise generator", "error", err)
	}
	evaluator, err := cfg.ColorEvaluator("default")
	if err != nil {
		logger.Fatal("Failed to build color evaluator", "error", err)
	}
	ocean, err := cfg.Gradient("ocean")
	if err != nil {
		logger.Fatal("Failed to build ocean gradient", "error", err)
	}

	logger.Debug("Starting map generation",
		"elevation_seed", elevationNoise.Seed(), "moisture_seed", moistureNoise.Seed())
	start := time.Now()

	m := grid.New(cell.Cell{}, *width, *height)

	// use noise to create the heightmap and moisture map
	cells := grid.MapIndexed(m, func(_ cell.Cell, x, y int) cell.Cell {
		return cell.Cell{
			Elevation: elevationNoise.Generate(x, y),
			Moisture:  moistureNoise.Generate(x, y),
		}
	})

	// get the min and max of both factors for use in normalization
	bounds := grid.Reduce(cells, emptyExtents(), extents.add, extents.merge)

	// normalize elevation and moisture
	normalized := grid.Map(cells, func(c cell.Cell) cell.Cell {
		return cell.Cell{
			Elevation: mathx.Normalize(c.Elevation, bounds.minElevation, bounds.maxElevation),
			Moisture:  mathx.Normalize(c.Moisture, bounds.minMoisture, bounds.maxMoisture),
		}
	})

	// color each cell, ocean below sea level and the biome map above it
	pixels := grid.Map(normalized, func(c cell.Cell) color.RGBA {
		if c.Elevation < seaLevel {
			return ocean.At(mathx.Normalize(c.Elevation, 0, seaLevel))
		}
		return evaluator.Evaluate(c.Elevation, c.Moisture)
	})

	img := grid.Extract(pixels, render.PixelsToImage)

	if err := render.WritePNG(outputPath, img); err != nil {
		logger.Fatal("Failed to write image", "path", outputPath, "error", err)
	}

	logger.Info("Map generated", "duration", time.Since(start), "output", outputPath)
}

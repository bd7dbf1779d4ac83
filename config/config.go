// Package config loads and validates the generator's YAML configuration
// and assembles the domain objects it describes: noise generators, biome
// color evaluators and standalone gradients. Every lookup by name returns
// a distinct error on a miss; a missing entry is fatal at assembly time,
// never a silent default.
package config

import (
	"fmt"
	"os"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"github.com/mengistristen/ficture/colors"
	"github.com/mengistristen/ficture/noise"
)

// Config is the root of the configuration file.
type Config struct {
	// Biomes maps names to standalone gradients, looked up directly by
	// key (e.g. the below-sea-level ocean gradient).
	Biomes map[string]Biome `yaml:"biomes"`
	// NoiseGenerators maps names to fractal noise parameters.
	NoiseGenerators map[string]Noise `yaml:"noise_generators"`
	// BiomeMaps maps names to hierarchical biome band definitions.
	BiomeMaps map[string]BiomeMap `yaml:"biome_maps"`
}

// Biome is a single named gradient.
type Biome struct {
	Gradient []string `yaml:"gradient"`
}

// Noise holds the parameters for one fractal noise generator. Algorithm
// and Seed are optional; they default to simplex noise and noise.DefaultSeed.
type Noise struct {
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Algorithm   string  `yaml:"algorithm,omitempty"`
	Seed        *int64  `yaml:"seed,omitempty"`
}

// BiomeMap is an ordered set of elevation levels.
type BiomeMap struct {
	ElevationLevels []ElevationLevel `yaml:"elevation_levels"`
}

// ElevationLevel is one elevation band: a relative weight and its
// moisture levels.
type ElevationLevel struct {
	Elevation      float64         `yaml:"elevation"`
	MoistureLevels []MoistureLevel `yaml:"moisture_levels"`
}

// MoistureLevel is one moisture band: a relative weight and its gradient.
type MoistureLevel struct {
	Moisture float64  `yaml:"moisture"`
	Gradient []string `yaml:"gradient"`
}

// Load reads, parses and validates the configuration at path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilePath, path)
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the entire configuration, returning the first invalid
// case found.
func (c *Config) Validate() error {
	for name, biome := range c.Biomes {
		if err := biome.validate(); err != nil {
			return fmt.Errorf("biome %q: %w", name, err)
		}
	}
	for name, generator := range c.NoiseGenerators {
		if err := generator.validate(); err != nil {
			return fmt.Errorf("noise generator %q: %w", name, err)
		}
	}
	for name, biomeMap := range c.BiomeMaps {
		if err := biomeMap.validate(); err != nil {
			return fmt.Errorf("biome map %q: %w", name, err)
		}
	}
	return nil
}

// NoiseGenerator builds the named fractal noise generator for a map of
// the given dimensions.
func (c *Config) NoiseGenerator(name string, width, height int) (noise.Generator, error) {
	params, ok := c.NoiseGenerators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNoiseGenerator, name)
	}

	algorithm, err := params.algorithm()
	if err != nil {
		return nil, fmt.Errorf("noise generator %q: %w", name, err)
	}

	seed := int64(noise.DefaultSeed)
	if params.Seed != nil {
		seed = *params.Seed
	}

	return noise.NewField(noise.Params{
		Width:       width,
		Height:      height,
		Octaves:     params.Octaves,
		Persistence: params.Persistence,
		Lacunarity:  params.Lacunarity,
		Algorithm:   algorithm,
		Seed:        seed,
	}), nil
}

// ColorEvaluator builds a color evaluator from the named biome map.
func (c *Config) ColorEvaluator(name string) (*colors.Evaluator, error) {
	biomeMap, ok := c.BiomeMaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBiomeMap, name)
	}

	levels := make([]colors.ElevationLevel, 0, len(biomeMap.ElevationLevels))
	for _, level := range biomeMap.ElevationLevels {
		moisture := make([]colors.MoistureLevel, 0, len(level.MoistureLevels))
		for _, moistureLevel := range level.MoistureLevels {
			moisture = append(moisture, colors.MoistureLevel{
				Weight:   moistureLevel.Moisture,
				Gradient: moistureLevel.Gradient,
			})
		}
		levels = append(levels, colors.ElevationLevel{
			Weight:   level.Elevation,
			Moisture: moisture,
		})
	}

	evaluator, err := colors.NewEvaluator(levels)
	if err != nil {
		return nil, fmt.Errorf("biome map %q: %w", name, err)
	}

	return evaluator, nil
}

// Gradient builds the named standalone gradient.
func (c *Config) Gradient(name string) (colors.Gradient, error) {
	biome, ok := c.Biomes[name]
	if !ok {
		return colors.Gradient{}, fmt.Errorf("%w: %q", ErrUnknownBiome, name)
	}

	gradient, err := colors.NewGradient(biome.Gradient...)
	if err != nil {
		return colors.Gradient{}, fmt.Errorf("biome %q: %w", name, err)
	}

	return gradient, nil
}

func (b Biome) validate() error {
	return validateGradient(b.Gradient)
}

func (n Noise) validate() error {
	if n.Octaves <= 0 {
		return fmt.Errorf("%w, but found %d", ErrInvalidOctaves, n.Octaves)
	}
	if n.Persistence <= 0 {
		return fmt.Errorf("%w, but found %v", ErrInvalidPersistence, n.Persistence)
	}
	if n.Lacunarity <= 0 {
		return fmt.Errorf("%w, but found %v", ErrInvalidLacunarity, n.Lacunarity)
	}
	if _, err := n.algorithm(); err != nil {
		return err
	}
	return nil
}

func (n Noise) algorithm() (noise.Algorithm, error) {
	switch n.Algorithm {
	case "", string(noise.AlgorithmSimplex):
		return noise.AlgorithmSimplex, nil
	case string(noise.AlgorithmPerlin):
		return noise.AlgorithmPerlin, nil
	default:
		return "", fmt.Errorf("%w, but found %q", ErrInvalidAlgorithm, n.Algorithm)
	}
}

func (b BiomeMap) validate() error {
	if len(b.ElevationLevels) == 0 {
		return colors.ErrMissingElevationLevels
	}
	for _, level := range b.ElevationLevels {
		if err := level.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (e ElevationLevel) validate() error {
	if e.Elevation <= 0 {
		return fmt.Errorf("%w, but found %v", ErrInvalidElevation, e.Elevation)
	}
	if len(e.MoistureLevels) == 0 {
		return colors.ErrMissingMoistureLevels
	}
	for _, level := range e.MoistureLevels {
		if err := level.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m MoistureLevel) validate() error {
	if m.Moisture <= 0 {
		return fmt.Errorf("%w, but found %v", ErrInvalidMoisture, m.Moisture)
	}
	return validateGradient(m.Gradient)
}

func validateGradient(gradient []string) error {
	if len(gradient) == 0 {
		return colors.ErrMissingColors
	}
	for _, stop := range gradient {
		if _, err := csscolorparser.Parse(stop); err != nil {
			return fmt.Errorf("%w, but found %q", ErrInvalidColor, stop)
		}
	}
	return nil
}

package config

import "errors"

// Validation and lookup error kinds. Each invalid configuration case is
// surfaced as its own kind so callers can match with errors.Is; nothing is
// silently coerced.
var (
	ErrInvalidFilePath    = errors.New("invalid file (couldn't open the config file)")
	ErrMalformedFile      = errors.New("failed to parse config file")
	ErrInvalidOctaves     = errors.New("invalid octaves (expected a value greater than 0)")
	ErrInvalidPersistence = errors.New("invalid persistence (expected a value greater than 0)")
	ErrInvalidLacunarity  = errors.New("invalid lacunarity (expected a value greater than 0)")
	ErrInvalidAlgorithm   = errors.New("invalid algorithm (expected \"simplex\" or \"perlin\")")
	ErrInvalidElevation   = errors.New("invalid elevation (expected a value greater than 0)")
	ErrInvalidMoisture    = errors.New("invalid moisture (expected a value greater than 0)")
	ErrInvalidColor       = errors.New("invalid color (expected a valid html color)")

	ErrUnknownNoiseGenerator = errors.New("noise generator not defined in config")
	ErrUnknownBiomeMap       = errors.New("biome map not defined in config")
	ErrUnknownBiome          = errors.New("biome not defined in config")
)

// Package noise provides fractal noise fields for generating world maps.
//
// A Field sums several octaves of a coherent 3D noise primitive. The
// horizontal axis is projected onto a circle before sampling, so maps wrap
// seamlessly along the east-west edges. Fields are immutable once built
// and safe for concurrent reads, which lets the grid transforms share one
// field across all worker goroutines without locking.
package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Generator produces a single scalar sample for a map coordinate, with no
// other context about the map. This enables dependency injection and makes
// the pipeline easily testable.
type Generator interface {
	Generate(x, y int) float64
	Seed() int64
}

// Algorithm selects the coherent noise primitive backing a Field.
type Algorithm string

const (
	// AlgorithmSimplex uses OpenSimplex noise. This is the default.
	AlgorithmSimplex Algorithm = "simplex"
	// AlgorithmPerlin uses Perlin noise.
	AlgorithmPerlin Algorithm = "perlin"
)

// DefaultSeed is used when no seed is configured. Default output is stable
// across runs for a fixed set of field parameters.
const DefaultSeed = 2

// Params describes a fractal noise field.
type Params struct {
	Width       int
	Height      int
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Algorithm   Algorithm // empty means AlgorithmSimplex
	Seed        int64
}

// Field is a fractal noise generator with seamless horizontal wrap.
// The per-octave tables and wrap coordinates are precomputed at
// construction so sampling does no redundant work per cell.
type Field struct {
	height       int
	octaves      int
	frequencies  []float64
	amplitudes   []float64
	circleCoords [][2]float64
	sample3      func(x, y, z float64) float64
	seed         int64
}

// NewField builds a Field from p. Parameter validation belongs to the
// configuration layer; out-of-range parameters here are programming errors
// and panic rather than produce a degraded map.
func NewField(p Params) *Field {
	if p.Width <= 0 || p.Height <= 0 {
		panic(fmt.Sprintf("noise: dimensions must be positive, got %dx%d", p.Width, p.Height))
	}
	if p.Octaves <= 0 {
		panic(fmt.Sprintf("noise: octaves must be positive, got %d", p.Octaves))
	}
	if p.Persistence <= 0 {
		panic(fmt.Sprintf("noise: persistence must be positive, got %f", p.Persistence))
	}
	if p.Lacunarity <= 0 {
		panic(fmt.Sprintf("noise: lacunarity must be positive, got %f", p.Lacunarity))
	}

	// pre-calculate the frequencies and amplitudes to avoid calculating
	// them for every cell
	amplitude := 1.0
	frequencies := make([]float64, p.Octaves)
	amplitudes := make([]float64, p.Octaves)
	for octave := 0; octave < p.Octaves; octave++ {
		frequencies[octave] = math.Pow(p.Lacunarity, float64(octave))
		amplitudes[octave] = amplitude
		amplitude /= p.Persistence
	}

	// to allow the map to wrap around the east-west edges, project each
	// column onto a circle
	aspectRatio := float64(p.Width) / float64(p.Height)
	circleCoords := make([][2]float64, p.Width)
	for x := 0; x < p.Width; x++ {
		angle := float64(x) / float64(p.Width) * 2 * math.Pi
		circleCoords[x] = [2]float64{
			math.Cos(angle) / aspectRatio,
			math.Sin(angle) / aspectRatio,
		}
	}

	return &Field{
		height:       p.Height,
		octaves:      p.Octaves,
		frequencies:  frequencies,
		amplitudes:   amplitudes,
		circleCoords: circleCoords,
		sample3:      newSampler(p.Algorithm, p.Seed),
		seed:         p.Seed,
	}
}

// newSampler returns the 3D noise primitive for the given algorithm.
func newSampler(algorithm Algorithm, seed int64) func(x, y, z float64) float64 {
	switch algorithm {
	case AlgorithmPerlin:
		// alpha=2, beta=2, n=3 give good terrain-like noise
		p := perlin.NewPerlin(2, 2, 3, seed)
		return p.Noise3D
	case AlgorithmSimplex, "":
		return opensimplex.New(seed).Eval3
	default:
		panic(fmt.Sprintf("noise: unknown algorithm %q", algorithm))
	}
}

// Generate returns the noise value at the coordinates x and y. The sum of
// the octave samples is squared before returning, compressing low values
// so that most of the map sits near sea level.
func (f *Field) Generate(x, y int) float64 {
	scaleY := float64(y) / float64(f.height)
	circleX := f.circleCoords[x][0]
	circleZ := f.circleCoords[x][1]

	elevation := 0.0
	for octave := 0; octave < f.octaves; octave++ {
		frequency := f.frequencies[octave]
		elevation += f.amplitudes[octave] * f.sample3(
			frequency*circleX,
			frequency*scaleY,
			frequency*circleZ,
		)
	}

	return elevation * elevation
}

// Seed returns the seed the field's primitive was built with.
func (f *Field) Seed() int64 {
	return f.seed
}

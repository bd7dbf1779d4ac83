package colors

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/mengistristen/ficture/internal/mathx"
)

var (
	// ErrMissingElevationLevels is returned when an evaluator is built
	// with no elevation levels.
	ErrMissingElevationLevels = errors.New("expected elevation levels to be present, but found none")
	// ErrMissingMoistureLevels is returned when an elevation level has
	// no moisture levels.
	ErrMissingMoistureLevels = errors.New("expected moisture levels to be present, but found none")
	// ErrInvalidWeight is returned when a level carries a non-positive
	// weight.
	ErrInvalidWeight = errors.New("expected a weight greater than 0")
)

// MoistureLevel describes one moisture band of an elevation level: a
// relative weight and the color stops of its gradient.
type MoistureLevel struct {
	Weight   float64
	Gradient []string
}

// ElevationLevel describes one elevation band: a relative weight and its
// ordered moisture levels.
type ElevationLevel struct {
	Weight   float64
	Moisture []MoistureLevel
}

type moistureBand struct {
	// threshold is the cumulative moisture weight normalized by the
	// level's total, monotonically increasing across bands.
	threshold float64
	gradient  Gradient
}

type elevationBand struct {
	threshold float64
	moisture  []moistureBand
}

// Evaluator selects a color from a hierarchy of elevation and moisture
// bands. The primary use is coloring cells by elevation and moisture, but
// the two factors can describe anything; a map might use temperature and
// moisture instead. Immutable once built.
type Evaluator struct {
	bands []elevationBand
}

// NewEvaluator builds an Evaluator from ordered elevation levels. Each
// band's threshold is the running sum of weights divided by the total
// weight, so the declared order of levels is significant.
func NewEvaluator(levels []ElevationLevel) (*Evaluator, error) {
	if len(levels) == 0 {
		return nil, ErrMissingElevationLevels
	}

	totalElevation := 0.0
	for _, level := range levels {
		if level.Weight <= 0 {
			return nil, fmt.Errorf("%w, but found %v", ErrInvalidWeight, level.Weight)
		}
		totalElevation += level.Weight
	}

	bands := make([]elevationBand, 0, len(levels))
	cumulativeElevation := 0.0

	for _, level := range levels {
		if len(level.Moisture) == 0 {
			return nil, ErrMissingMoistureLevels
		}

		totalMoisture := 0.0
		for _, moistureLevel := range level.Moisture {
			if moistureLevel.Weight <= 0 {
				return nil, fmt.Errorf("%w, but found %v", ErrInvalidWeight, moistureLevel.Weight)
			}
			totalMoisture += moistureLevel.Weight
		}

		moisture := make([]moistureBand, 0, len(level.Moisture))
		cumulativeMoisture := 0.0

		for _, moistureLevel := range level.Moisture {
			gradient, err := NewGradient(moistureLevel.Gradient...)
			if err != nil {
				return nil, err
			}

			cumulativeMoisture += moistureLevel.Weight
			moisture = append(moisture, moistureBand{
				threshold: cumulativeMoisture / totalMoisture,
				gradient:  gradient,
			})
		}

		cumulativeElevation += level.Weight
		bands = append(bands, elevationBand{
			threshold: cumulativeElevation / totalElevation,
			moisture:  moisture,
		})
	}

	return &Evaluator{bands: bands}, nil
}

// Evaluate returns the color for a pair of factors. Band selection walks
// the bands in order and picks the first whose threshold is greater than
// or equal to the value; a value past every threshold (a floating-point
// edge at the top of the range) clamps to the last band rather than
// falling through to an unrelated default. The elevation is re-normalized
// into the selected band's own sub-range before interpolating.
func (e *Evaluator) Evaluate(elevation, moisture float64) color.RGBA {
	selected := len(e.bands) - 1
	for i, band := range e.bands {
		if elevation <= band.threshold {
			selected = i
			break
		}
	}

	previous := 0.0
	if selected > 0 {
		previous = e.bands[selected-1].threshold
	}
	band := e.bands[selected]

	gradient := band.moisture[len(band.moisture)-1].gradient
	for _, moistureBand := range band.moisture {
		if moisture <= moistureBand.threshold {
			gradient = moistureBand.gradient
			break
		}
	}

	return gradient.At(mathx.Normalize(elevation, previous, band.threshold))
}

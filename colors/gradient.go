// Package colors maps the factors generated for a map cell to biome
// colors. Gradients and evaluators are built once, then shared freely
// across worker goroutines; nothing mutates them after construction, so no
// locking is needed.
package colors

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/mazznoer/colorgrad"
)

var (
	// ErrMissingColors is returned when a gradient is built with no
	// color stops.
	ErrMissingColors = errors.New("expected at least one color to be present")
	// ErrInvalidGradient is returned when a gradient's color stops
	// cannot be parsed.
	ErrInvalidGradient = errors.New("could not parse or build gradient")
)

// Gradient is an ordered sequence of colors spanning 0-1 with continuous
// interpolation between evenly spaced stops. The zero value is not usable;
// build one with NewGradient.
type Gradient struct {
	inner colorgrad.Gradient
}

// NewGradient builds a gradient from a list of HTML color strings. A
// single stop yields a solid-color gradient.
func NewGradient(stops ...string) (Gradient, error) {
	if len(stops) == 0 {
		return Gradient{}, ErrMissingColors
	}
	if len(stops) == 1 {
		stops = []string{stops[0], stops[0]}
	}

	grad, err := colorgrad.NewGradient().HtmlColors(stops...).Build()
	if err != nil {
		return Gradient{}, fmt.Errorf("%w: %v", ErrInvalidGradient, err)
	}

	return Gradient{inner: grad}, nil
}

// At returns the gradient color at t as 8-bit RGB. Values of t outside
// 0-1 clamp to the nearest endpoint color.
func (g Gradient) At(t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	r, green, b := g.inner.At(t).RGB255()

	return color.RGBA{R: r, G: green, B: b, A: 255}
}

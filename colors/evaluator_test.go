package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

func solid(stop string) MoistureLevel {
	return MoistureLevel{Weight: 1, Gradient: []string{stop}}
}

func TestNewEvaluator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		levels  []ElevationLevel
		wantErr error
	}{
		{
			name:    "no elevation levels",
			levels:  nil,
			wantErr: ErrMissingElevationLevels,
		},
		{
			name:    "no moisture levels",
			levels:  []ElevationLevel{{Weight: 1}},
			wantErr: ErrMissingMoistureLevels,
		},
		{
			name:    "non-positive elevation weight",
			levels:  []ElevationLevel{{Weight: 0, Moisture: []MoistureLevel{solid("#fff")}}},
			wantErr: ErrInvalidWeight,
		},
		{
			name: "non-positive moisture weight",
			levels: []ElevationLevel{{
				Weight:   1,
				Moisture: []MoistureLevel{{Weight: -2, Gradient: []string{"#fff"}}},
			}},
			wantErr: ErrInvalidWeight,
		},
		{
			name: "empty gradient",
			levels: []ElevationLevel{{
				Weight:   1,
				Moisture: []MoistureLevel{{Weight: 1}},
			}},
			wantErr: ErrMissingColors,
		},
		{
			name: "unparsable gradient",
			levels: []ElevationLevel{{
				Weight:   1,
				Moisture: []MoistureLevel{{Weight: 1, Gradient: []string{"nope"}}},
			}},
			wantErr: ErrInvalidGradient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEvaluator(tt.levels)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEvaluate_SingleBandInterpolates(t *testing.T) {
	// one elevation band, one moisture band, black to white: every
	// point should be the linearly interpolated gray of its elevation
	evaluator, err := NewEvaluator([]ElevationLevel{{
		Weight: 1,
		Moisture: []MoistureLevel{
			{Weight: 1, Gradient: []string{"#000000", "#ffffff"}},
		},
	}})
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, evaluator.Evaluate(0, 0))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, evaluator.Evaluate(0.5, 0))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, evaluator.Evaluate(0.5, 1))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, evaluator.Evaluate(1, 0.7))
}

func TestEvaluate_BandSelection(t *testing.T) {
	// two elevation bands with equal weight: thresholds 0.5 and 1.0
	evaluator, err := NewEvaluator([]ElevationLevel{
		{Weight: 1, Moisture: []MoistureLevel{solid("#ff0000")}},
		{Weight: 1, Moisture: []MoistureLevel{solid("#00ff00")}},
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		elevation float64
		want      color.RGBA
	}{
		{name: "inside first band", elevation: 0.25, want: red},
		{name: "exactly at boundary picks the lower band", elevation: 0.5, want: red},
		{name: "just past boundary picks the upper band", elevation: 0.5000001, want: green},
		{name: "inside second band", elevation: 0.75, want: green},
		{name: "exactly at top", elevation: 1.0, want: green},
		{name: "past every threshold clamps to the last band", elevation: 1.0000001, want: green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluator.Evaluate(tt.elevation, 0.5))
		})
	}
}

func TestEvaluate_MoistureSelection(t *testing.T) {
	// moisture weights 1, 1, 2: thresholds 0.25, 0.5, 1.0
	evaluator, err := NewEvaluator([]ElevationLevel{{
		Weight: 1,
		Moisture: []MoistureLevel{
			solid("#ff0000"),
			solid("#00ff00"),
			{Weight: 2, Gradient: []string{"#0000ff"}},
		},
	}})
	require.NoError(t, err)

	tests := []struct {
		name     string
		moisture float64
		want     color.RGBA
	}{
		{name: "first moisture band", moisture: 0.1, want: red},
		{name: "boundary picks the lower band", moisture: 0.25, want: red},
		{name: "second moisture band", moisture: 0.4, want: green},
		{name: "third moisture band", moisture: 0.9, want: blue},
		{name: "past every threshold clamps to the last band", moisture: 1.5, want: blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluator.Evaluate(0.5, tt.moisture))
		})
	}
}

func TestEvaluate_NormalizesIntoBandSubRange(t *testing.T) {
	// second band covers elevations 0.5 to 1.0; its gradient must be
	// re-normalized into that sub-range, so 0.75 lands at the midpoint
	evaluator, err := NewEvaluator([]ElevationLevel{
		{Weight: 1, Moisture: []MoistureLevel{solid("#ff0000")}},
		{Weight: 1, Moisture: []MoistureLevel{
			{Weight: 1, Gradient: []string{"#000000", "#ffffff"}},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, evaluator.Evaluate(0.5000001, 0))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, evaluator.Evaluate(0.75, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, evaluator.Evaluate(1, 0))
}

func TestEvaluate_WeightsAreRelative(t *testing.T) {
	// weights 3 and 1 normalize to thresholds 0.75 and 1.0
	evaluator, err := NewEvaluator([]ElevationLevel{
		{Weight: 3, Moisture: []MoistureLevel{solid("#ff0000")}},
		{Weight: 1, Moisture: []MoistureLevel{solid("#00ff00")}},
	})
	require.NoError(t, err)

	assert.Equal(t, red, evaluator.Evaluate(0.75, 0))
	assert.Equal(t, green, evaluator.Evaluate(0.76, 0))
}

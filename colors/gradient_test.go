package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGradient(t *testing.T) {
	tests := []struct {
		name    string
		stops   []string
		wantErr error
	}{
		{name: "two stops", stops: []string{"#000000", "#ffffff"}},
		{name: "many stops", stops: []string{"#0a46ad", "#35d6f2", "#01c7dd"}},
		{name: "single stop becomes solid", stops: []string{"#01c7dd"}},
		{name: "no stops", stops: nil, wantErr: ErrMissingColors},
		{name: "unparsable stop", stops: []string{"#000000", "definitely-not-a-color"}, wantErr: ErrInvalidGradient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gradient, err := NewGradient(tt.stops...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint8(255), gradient.At(0).A)
		})
	}
}

func TestGradientAt(t *testing.T) {
	gradient, err := NewGradient("#000000", "#ffffff")
	require.NoError(t, err)

	tests := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{name: "start", t: 0, want: color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{name: "midpoint rounds to 128", t: 0.5, want: color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{name: "end", t: 1, want: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{name: "below range clamps to start", t: -0.5, want: color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{name: "above range clamps to end", t: 1.5, want: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gradient.At(tt.t))
		})
	}
}

func TestGradientAt_QuarterPoints(t *testing.T) {
	gradient, err := NewGradient("#000000", "#ffffff")
	require.NoError(t, err)

	// linear interpolation between evenly spaced stops
	assert.Equal(t, uint8(64), gradient.At(0.25).R)
	assert.Equal(t, uint8(191), gradient.At(0.75).R)
}

func TestGradientAt_SolidColor(t *testing.T) {
	gradient, err := NewGradient("#01c7dd")
	require.NoError(t, err)

	want := color.RGBA{R: 0x01, G: 0xc7, B: 0xdd, A: 255}
	for _, at := range []float64{0, 0.3, 0.5, 1} {
		assert.Equal(t, want, gradient.At(at))
	}
}

// Package render turns the flat pixel buffer produced by a grid transform
// chain into an image file.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// PixelsToImage builds an RGBA image from a flat row-major pixel buffer.
// It is shaped to be passed directly to a grid Extract call.
func PixelsToImage(pixels []color.RGBA, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, pixels[y*width+x])
		}
	}

	return img
}

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return file.Close()
}

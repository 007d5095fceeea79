package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ErrEmptyImage is returned for images with no pixels
var ErrEmptyImage = errors.New("image has no pixels")

// LoadImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file
func LoadImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return img, nil
}

// LoadImageTexture loads an image file into a packed RGB8 texture.
// maxSize bounds the longest side of the result, 0 disables downscaling.
func LoadImageTexture(filename string, maxSize uint) (*material.ImageTexture, error) {
	img, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return TextureFromImage(img, maxSize)
}

// TextureFromImage converts a decoded image into a packed RGB8 texture.
// When maxSize is non-zero, images whose longest side exceeds it are downscaled.
func TextureFromImage(img image.Image, maxSize uint) (*material.ImageTexture, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	if maxSize > 0 && (uint(bounds.Dx()) > maxSize || uint(bounds.Dy()) > maxSize) {
		// Zero keeps the aspect ratio
		if bounds.Dx() >= bounds.Dy() {
			img = resize.Resize(maxSize, 0, img, resize.Bilinear)
		} else {
			img = resize.Resize(0, maxSize, img, resize.Bilinear)
		}
		bounds = img.Bounds()
	}

	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]byte, 0, 3*width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels = append(pixels, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}

	return material.NewImageTexture(width, height, pixels), nil
}

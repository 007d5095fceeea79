package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ImageTexture provides color from a packed RGB8 image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []byte // Row-major RGB triples, row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []byte) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the texture at given UV coordinates using nearest-neighbor lookup.
// v = 1 is the top row of the image.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < 3*t.Width*t.Height {
		return core.NewVec3(0, 1, 1)
	}

	i := int(u * float64(t.Width))
	j := int((1-v)*float64(t.Height) - 0.001)

	// Clamp to image bounds
	if i < 0 {
		i = 0
	}
	if j < 0 {
		j = 0
	}
	if i > t.Width-1 {
		i = t.Width - 1
	}
	if j > t.Height-1 {
		j = t.Height - 1
	}

	index := 3*i + 3*t.Width*j
	return core.NewVec3(
		float64(t.Pixels[index])/255,
		float64(t.Pixels[index+1])/255,
		float64(t.Pixels[index+2])/255,
	)
}

func (t *ImageTexture) isTexture() {}

package material

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ConstantTexture provides a uniform color
type ConstantTexture struct {
	Color core.Vec3
}

// NewConstantTexture creates a new constant color texture
func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

// Value returns the color regardless of UV or position
func (c *ConstantTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	return c.Color
}

func (c *ConstantTexture) isTexture() {}

// CheckerTexture alternates between two sub-textures in a 3D checker pattern
type CheckerTexture struct {
	Odd  Texture
	Even Texture
}

// NewCheckerTexture creates a checker pattern from two textures
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewSolidChecker creates a checker pattern from two solid colors
func NewSolidChecker(odd, even core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewConstantTexture(odd), NewConstantTexture(even))
}

// Value selects the odd texture where sin(10x)*sin(10y)*sin(10z) is negative
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

func (c *CheckerTexture) isTexture() {}

// DefaultTurbulenceDepth is the number of octaves summed by noise textures
const DefaultTurbulenceDepth = 7

// NoiseTexture is a marble-like pattern driven by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture sharing the given Perlin tables
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Value returns 0.5*(1 + sin(scale*z + 10*turbulence(p))) as a grey level
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	grey := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.Noise.Turbulence(p, DefaultTurbulenceDepth)))
	return core.NewVec3(grey, grey, grey)
}

func (n *NoiseTexture) isTexture() {}

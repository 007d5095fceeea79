package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestCheckerTexture(t *testing.T) {
	odd := core.NewVec3(0.2, 0.3, 0.1)
	even := core.NewVec3(0.9, 0.9, 0.9)
	checker := NewSolidChecker(odd, even)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"all positive sines", core.NewVec3(0.1, 0.1, 0.1), even},
		{"one negative sine", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"two negative sines", core.NewVec3(-0.1, -0.1, 0.1), even},
		{"three negative sines", core.NewVec3(-0.1, -0.1, -0.1), odd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Value(0, 0, tt.point); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImageTexture_NearestLookup(t *testing.T) {
	// 2x2 image: top row red, green; bottom row blue, white
	pixels := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	texture := NewImageTexture(2, 2, pixels)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"top left", 0.25, 0.75, core.NewVec3(1, 0, 0)},
		{"top right", 0.75, 0.75, core.NewVec3(0, 1, 0)},
		{"bottom left", 0.25, 0.25, core.NewVec3(0, 0, 1)},
		{"bottom right", 0.75, 0.25, core.NewVec3(1, 1, 1)},
		{"clamped high", 1.5, -0.5, core.NewVec3(1, 1, 1)},
		{"clamped low", -1, 2, core.NewVec3(1, 0, 0)},
		{"v at top edge", 0, 1, core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Value(tt.u, tt.v, core.Vec3{}); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImageTexture_MissingData(t *testing.T) {
	texture := NewImageTexture(4, 4, nil)
	if got := texture.Value(0.5, 0.5, core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan fallback, got %v", got)
	}
}

func TestPerlin_Reproducible(t *testing.T) {
	a := NewSeededPerlin(11)
	b := NewSeededPerlin(11)
	c := NewSeededPerlin(12)

	random := rand.New(rand.NewSource(1))
	differs := false
	for i := 0; i < 100; i++ {
		p := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		if a.Noise(p) != b.Noise(p) {
			t.Fatalf("Expected identical noise for identical seeds at %v", p)
		}
		if a.Noise(p) != c.Noise(p) {
			differs = true
		}
	}
	if !differs {
		t.Error("Expected different seeds to produce different noise")
	}
}

func TestPerlin_Properties(t *testing.T) {
	perlin := NewSeededPerlin(3)

	// Gradient noise vanishes on lattice points
	for _, p := range []core.Vec3{{}, core.NewVec3(1, 2, 3), core.NewVec3(-4, 0, 7)} {
		if n := perlin.Noise(p); math.Abs(n) > 1e-12 {
			t.Errorf("Expected zero noise at lattice point %v, got %f", p, n)
		}
	}

	random := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*50-25, random.Float64()*50-25, random.Float64()*50-25)
		if n := perlin.Noise(p); math.Abs(n) > math.Sqrt(3) {
			t.Fatalf("Noise %f out of range at %v", n, p)
		}
		if turb := perlin.Turbulence(p, DefaultTurbulenceDepth); turb < 0 {
			t.Fatalf("Turbulence should be non-negative, got %f", turb)
		}
	}
}

func TestNoiseTexture_Range(t *testing.T) {
	texture := NewNoiseTexture(NewSeededPerlin(9), 4)
	random := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		p := core.NewVec3(random.Float64()*10, random.Float64()*10, random.Float64()*10)
		c := texture.Value(0, 0, p)
		if c.X < 0 || c.X > 1 || c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Expected grey value in [0, 1], got %v", c)
		}
	}
}

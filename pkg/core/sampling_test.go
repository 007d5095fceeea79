package core

import (
	"math/rand"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Expected value in [0, 1), got %f", v)
		}
	}
}

func TestSeededSampler_Reproducible(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 50; i++ {
		if a.Get3D() != b.Get3D() {
			t.Fatal("Expected identical streams for identical seeds")
		}
	}
}

func TestSequenceSampler_Wraps(t *testing.T) {
	s := NewSequenceSampler(0.1, 0.2, 0.3)
	expected := []float64{0.1, 0.2, 0.3, 0.1, 0.2}
	for i, e := range expected {
		if v := s.Get1D(); v != e {
			t.Errorf("Value %d: expected %f, got %f", i, e, v)
		}
	}

	empty := NewSequenceSampler()
	if empty.Get1D() != 0.5 {
		t.Error("Expected empty sequence to default to 0.5")
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Expected point inside unit sphere, got %v", p)
		}
	}

	// The corner of the cube is rejected, the center accepted
	seq := NewSequenceSampler(1, 1, 1, 0.5, 0.5, 0.5)
	if p := RandomInUnitSphere(seq); p != (Vec3{}) {
		t.Errorf("Expected rejection then origin, got %v", p)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(5)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 || p.LengthSquared() >= 1 {
			t.Fatalf("Expected point inside unit disk, got %v", p)
		}
	}
}

func TestRejectionSamplers_GiveUpOnExhaustedStream(t *testing.T) {
	tests := []struct {
		name   string
		sample func(Sampler) Vec3
	}{
		{"unit sphere", RandomInUnitSphere},
		{"unit disk", RandomInUnitDisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Every draw maps to a cube corner and is rejected
			for _, v := range []float64{0, 1} {
				if p := tt.sample(NewSequenceSampler(v)); p != (Vec3{}) {
					t.Errorf("Expected center fallback for stream of %v, got %v", v, p)
				}
			}
		})
	}
}

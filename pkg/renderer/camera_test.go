package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

func newTestCamera(config CameraConfig) *Camera {
	if config.Width == 0 {
		config.Width = 100
		config.Height = 100
	}
	return NewCamera(config)
}

func TestCamera_PinholeRays(t *testing.T) {
	camera := newTestCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		VFov:     90,
	})
	sampler := core.NewSequenceSampler(0.5)

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-1, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(1, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected pinhole origin, got %v", ray.Origin)
			}
			if !vecNear(ray.Direction, tt.direction) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_AspectRatioDefaultsToResolution(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		VFov:     90,
		Width:    200,
		Height:   100,
	})

	ray := camera.GetRay(1, 0.5, core.NewSequenceSampler(0.5))
	if !vecNear(ray.Direction, core.NewVec3(2, 0, -1)) {
		t.Errorf("Expected direction (2, 0, -1) for 2:1 aspect, got %v", ray.Direction)
	}
}

func TestCamera_DepthOfFieldConvergesOnFocusPlane(t *testing.T) {
	camera := newTestCamera(CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VFov:          90,
		Aperture:      2,
		FocusDistance: 3,
	})

	// Disk sample (0.75, 0.5) maps to (0.5, 0) on the unit disk
	ray := camera.GetRay(0.5, 0.5, core.NewSequenceSampler(0.75, 0.5, 0.5))
	if !vecNear(ray.Origin, core.NewVec3(0.5, 0, 0)) {
		t.Errorf("Expected lens offset origin (0.5, 0, 0), got %v", ray.Origin)
	}

	focusPoint := ray.At(1)
	if !vecNear(focusPoint, core.NewVec3(0, 0, -3)) {
		t.Errorf("Expected ray to pass through the focus point (0, 0, -3), got %v", focusPoint)
	}
}

func TestCamera_ShutterTime(t *testing.T) {
	camera := newTestCamera(CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		VFov:     40,
		Time0:    2,
		Time1:    4,
	})

	ray := camera.GetRay(0.5, 0.5, core.NewSequenceSampler(0.5, 0.5, 0.25))
	if ray.Time != 2.5 {
		t.Errorf("Expected time 2.5, got %f", ray.Time)
	}

	t0, t1 := camera.ShutterInterval()
	if t0 != 2 || t1 != 4 {
		t.Errorf("Expected shutter [2, 4], got [%f, %f]", t0, t1)
	}
}

func TestCamera_OrthonormalBasis(t *testing.T) {
	camera := newTestCamera(CameraConfig{
		LookFrom: core.NewVec3(13, 2, 3),
		LookAt:   core.NewVec3(0, 0, 0),
		VFov:     20,
	})

	for _, pair := range [][2]core.Vec3{{camera.u, camera.v}, {camera.v, camera.w}, {camera.u, camera.w}} {
		if math.Abs(pair[0].Dot(pair[1])) > 1e-12 {
			t.Errorf("Expected orthogonal basis vectors, got %v and %v", pair[0], pair[1])
		}
	}
	if math.Abs(camera.u.Length()-1) > 1e-12 || math.Abs(camera.v.Length()-1) > 1e-12 {
		t.Error("Expected unit basis vectors")
	}
}

func TestNewCamera_PanicsOnEmptyResolution(t *testing.T) {
	defer func() {
		if recovered := recover(); recovered != ErrInvalidCamera {
			t.Errorf("Expected ErrInvalidCamera panic, got %v", recovered)
		}
	}()

	NewCamera(CameraConfig{LookFrom: core.NewVec3(0, 0, 1), VFov: 90})
}

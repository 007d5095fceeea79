package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestRect_HitUsesBothRangesForUV(t *testing.T) {
	rect := NewXZRect(0, 2, 0, 4, 1, nil)
	ray := core.NewRay(core.NewVec3(1.5, 5, 1), core.NewVec3(0, -1, 0))

	hit, ok := rect.Hit(ray, 0.001, math.MaxFloat64, nil)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.T != 4 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if hit.U != 0.75 || hit.V != 0.25 {
		t.Errorf("Expected uv (0.75, 0.25), got (%f, %f)", hit.U, hit.V)
	}
	if hit.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normal (0, 1, 0), got %v", hit.Normal)
	}
}

func TestRect_NormalIgnoresRayDirection(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, nil)

	for _, dz := range []float64{-1, 1} {
		ray := core.NewRay(core.NewVec3(0, 0, -dz), core.NewVec3(0, 0, dz))
		hit, ok := rect.Hit(ray, 0.001, 10, nil)
		if !ok {
			t.Fatalf("Expected hit for direction z=%f", dz)
		}
		if hit.Normal != core.NewVec3(0, 0, 1) {
			t.Errorf("Expected normal (0, 0, 1), got %v", hit.Normal)
		}
	}
}

func TestRect_Misses(t *testing.T) {
	rect := NewYZRect(0, 1, 0, 1, 2, nil)

	tests := []struct {
		name string
		ray  core.Ray
		tMax float64
	}{
		{"outside first range", core.NewRay(core.NewVec3(0, 1.5, 0.5), core.NewVec3(1, 0, 0)), 10},
		{"outside second range", core.NewRay(core.NewVec3(0, 0.5, -0.5), core.NewVec3(1, 0, 0)), 10},
		{"on the open end", core.NewRay(core.NewVec3(0, 1, 0.5), core.NewVec3(1, 0, 0)), 10},
		{"parallel", core.NewRay(core.NewVec3(0, 0.5, 0.5), core.NewVec3(0, 1, 0)), 10},
		{"beyond tMax", core.NewRay(core.NewVec3(0, 0.5, 0.5), core.NewVec3(1, 0, 0)), 1},
		{"behind origin", core.NewRay(core.NewVec3(3, 0.5, 0.5), core.NewVec3(1, 0, 0)), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := rect.Hit(tt.ray, 0.001, tt.tMax, nil); ok {
				t.Errorf("Expected miss for %s", tt.name)
			}
		})
	}

	// The closed start of each range is inside
	if _, ok := rect.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 0.001, 10, nil); !ok {
		t.Error("Expected hit on the closed corner of the range")
	}
}

func TestHit_IntervalEnds(t *testing.T) {
	// Both objects are first met at t=4
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	rect := NewXYRect(-1, 1, -1, 1, -1, nil)
	sphere := NewSphere(core.Vec3{}, 1, nil)

	if _, ok := rect.Hit(ray, 4, 4, nil); !ok {
		t.Error("Expected rect to accept t on the interval ends")
	}
	if hit, ok := sphere.Hit(ray, 4, 5, nil); ok {
		t.Errorf("Expected sphere to reject t on the interval ends, got t=%v", hit.T)
	}
}

func TestRect_BoundingBox(t *testing.T) {
	tests := []struct {
		name     string
		rect     *Rect
		expected core.AABB
	}{
		{"xy", NewXYRect(0, 1, 2, 3, 5, nil), core.NewAABB(core.NewVec3(0, 2, 5-rectThickness), core.NewVec3(1, 3, 5+rectThickness))},
		{"xz", NewXZRect(0, 1, 2, 3, 5, nil), core.NewAABB(core.NewVec3(0, 5-rectThickness, 2), core.NewVec3(1, 5+rectThickness, 3))},
		{"yz", NewYZRect(0, 1, 2, 3, 5, nil), core.NewAABB(core.NewVec3(5-rectThickness, 0, 2), core.NewVec3(5+rectThickness, 1, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := tt.rect.BoundingBox(0, 1)
			if !ok {
				t.Fatal("Expected rectangle to be bounded")
			}
			if box != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, box)
			}
		})
	}
}

func TestFlipNormals(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, nil)
	flipped := NewFlipNormals(rect)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	hit, ok := flipped.Hit(ray, 0.001, 10, nil)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Normal != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected flipped normal (0, 0, -1), got %v", hit.Normal)
	}

	innerBox, _ := rect.BoundingBox(0, 1)
	box, _ := flipped.BoundingBox(0, 1)
	if box != innerBox {
		t.Errorf("Expected passthrough box %v, got %v", innerBox, box)
	}
}

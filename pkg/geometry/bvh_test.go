package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// unboundedHittable is a test double with no bounding box
type unboundedHittable struct{}

func (unboundedHittable) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return nil, false
}

func (unboundedHittable) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func (unboundedHittable) hittable() {}

// randomScene builds a mix of every bounded deterministic primitive
func randomScene(random *rand.Rand) []Hittable {
	randomVec := func(scale float64) core.Vec3 {
		return core.NewVec3(
			(random.Float64()*2-1)*scale,
			(random.Float64()*2-1)*scale,
			(random.Float64()*2-1)*scale,
		)
	}

	var objects []Hittable
	for i := 0; i < 60; i++ {
		mat := material.NewLambertian(core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
		center := randomVec(10)
		switch i % 6 {
		case 0, 1:
			objects = append(objects, NewSphere(center, 0.2+random.Float64(), mat))
		case 2:
			objects = append(objects, NewMovingSphere(center, center.Add(randomVec(1)), 0, 1, 0.2+random.Float64(), mat))
		case 3:
			objects = append(objects, NewXYRect(center.X, center.X+1+random.Float64(), center.Y, center.Y+1, center.Z, mat))
		case 4:
			box := NewBoxRect(core.Vec3{}, core.NewVec3(1, 0.5+random.Float64(), 1), mat)
			objects = append(objects, NewTranslate(NewRotateY(box, random.Float64()*360), center))
		case 5:
			objects = append(objects, NewFlipNormals(NewYZRect(center.Y, center.Y+1, center.Z, center.Z+2, center.X, mat)))
		}
	}
	return objects
}

func TestBVH_HitOnBoxFace(t *testing.T) {
	// The entry point (0,0,-1) lies exactly on the node box face, and the
	// exit point on the opposite face
	sphere := NewSphere(core.Vec3{}, 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	tests := []struct {
		name  string
		world Hittable
	}{
		{"list", NewHittableList(sphere)},
		{"single object bvh", NewBVH([]Hittable{sphere}, 0, 1)},
		{"nested bvh", NewBVH([]Hittable{
			sphere,
			NewSphere(core.NewVec3(10, 0, 0), 1, sphere.Material),
			NewSphere(core.NewVec3(-10, 0, 0), 1, sphere.Material),
		}, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.world.Hit(ray, 0.001, math.MaxFloat64, nil)
			if !ok {
				t.Fatal("Expected a hit on the sphere")
			}
			if math.Abs(hit.T-4) > 1e-9 {
				t.Errorf("Expected t=4, got %v", hit.T)
			}
		})
	}
}

func TestBVH_HitStaysInsideCallerInterval(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	bvh := NewBVH([]Hittable{sphere}, 0, 1)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	// Both roots (4 and 6) sit exactly on the caller's bounds
	if _, ok := bvh.Hit(ray, 4, 6, nil); ok {
		t.Error("Expected no hit for roots on the caller's interval ends")
	}
	hit, ok := bvh.Hit(ray, 4, 7, nil)
	if !ok || math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected exit hit at t=6, got %v (hit=%v)", hit, ok)
	}
}

func TestBVH_MatchesLinearList(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	objects := randomScene(random)

	bvh := NewBVH(objects, 0, 1)
	list := NewHittableList(objects...)

	hits := 0
	for i := 0; i < 5000; i++ {
		origin := core.NewVec3((random.Float64()*2-1)*15, (random.Float64()*2-1)*15, (random.Float64()*2-1)*15)
		target := core.NewVec3((random.Float64()*2-1)*10, (random.Float64()*2-1)*10, (random.Float64()*2-1)*10)
		ray := core.NewRayAtTime(origin, target.Subtract(origin), random.Float64())

		listHit, listOk := list.Hit(ray, 0.001, math.MaxFloat64, nil)
		bvhHit, bvhOk := bvh.Hit(ray, 0.001, math.MaxFloat64, nil)

		if listOk != bvhOk {
			t.Fatalf("Ray %d: list hit=%v, bvh hit=%v", i, listOk, bvhOk)
		}
		if !listOk {
			continue
		}
		hits++

		if listHit.T != bvhHit.T {
			t.Errorf("Ray %d: expected t=%f, got %f", i, listHit.T, bvhHit.T)
		}
		if listHit.Point != bvhHit.Point {
			t.Errorf("Ray %d: expected point %v, got %v", i, listHit.Point, bvhHit.Point)
		}
		if listHit.Normal != bvhHit.Normal {
			t.Errorf("Ray %d: expected normal %v, got %v", i, listHit.Normal, bvhHit.Normal)
		}
		if listHit.Material != bvhHit.Material {
			t.Errorf("Ray %d: hit different materials", i)
		}
	}

	if hits == 0 {
		t.Fatal("Expected some rays to hit the scene")
	}
}

func TestBVH_BoundingBoxIsUnionOfObjects(t *testing.T) {
	random := rand.New(rand.NewSource(9))
	objects := randomScene(random)
	bvh := NewBVH(objects, 0, 1)

	listBox, _ := NewHittableList(objects...).BoundingBox(0, 1)
	bvhBox, ok := bvh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected BVH to be bounded")
	}
	if bvhBox != listBox {
		t.Errorf("Expected %v, got %v", listBox, bvhBox)
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	objects := []Hittable{
		NewSphere(core.NewVec3(5, 0, 0), 1, nil),
		NewSphere(core.NewVec3(-5, 0, 0), 1, nil),
		NewSphere(core.NewVec3(0, 0, 0), 1, nil),
	}
	first := objects[0]
	NewBVH(objects, 0, 1)
	if objects[0] != first {
		t.Error("NewBVH must not reorder the caller's slice")
	}
}

func TestBVH_Structure(t *testing.T) {
	sphereAt := func(x float64) Hittable { return NewSphere(core.NewVec3(x, 0, 0), 0.5, nil) }

	tests := []struct {
		name     string
		objects  []Hittable
		expected BVHStats
	}{
		{"single object on both sides", []Hittable{sphereAt(0)}, BVHStats{Nodes: 1, Leaves: 2, MaxDepth: 0}},
		{"two objects", []Hittable{sphereAt(0), sphereAt(2)}, BVHStats{Nodes: 1, Leaves: 2, MaxDepth: 0}},
		{"four objects", []Hittable{sphereAt(6), sphereAt(0), sphereAt(4), sphereAt(2)}, BVHStats{Nodes: 3, Leaves: 4, MaxDepth: 1}},
		{"five objects", []Hittable{sphereAt(0), sphereAt(2), sphereAt(4), sphereAt(6), sphereAt(8)}, BVHStats{Nodes: 5, Leaves: 6, MaxDepth: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewBVH(tt.objects, 0, 1).Stats()
			if stats != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, stats)
			}
		})
	}
}

func TestBVH_SplitsOnSortedAxis(t *testing.T) {
	objects := []Hittable{
		NewSphere(core.NewVec3(6, 0, 0), 0.5, nil),
		NewSphere(core.NewVec3(0, 0, 0), 0.5, nil),
		NewSphere(core.NewVec3(4, 0, 0), 0.5, nil),
		NewSphere(core.NewVec3(2, 0, 0), 0.5, nil),
	}
	bvh := NewBVH(objects, 0, 1)

	left := bvh.Left.(*BVHNode)
	right := bvh.Right.(*BVHNode)
	if left.Box.Max.X > right.Box.Min.X {
		t.Errorf("Expected left subtree %v to lie before right subtree %v on x", left.Box, right.Box)
	}
}

func TestBVH_PanicsOnMissingBoundingBox(t *testing.T) {
	defer func() {
		recovered := recover()
		err, ok := recovered.(error)
		if !ok || !errors.Is(err, ErrMissingBoundingBox) {
			t.Errorf("Expected ErrMissingBoundingBox panic, got %v", recovered)
		}
	}()

	NewBVH([]Hittable{NewSphere(core.Vec3{}, 1, nil), unboundedHittable{}}, 0, 1)
}

func TestBVH_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recovered := recover(); recovered != ErrEmptyBVH {
			t.Errorf("Expected ErrEmptyBVH panic, got %v", recovered)
		}
	}()

	NewBVH(nil, 0, 1)
}

func TestBuildWorld_Empty(t *testing.T) {
	world := BuildWorld(nil, 0, 1)
	if _, ok := world.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), 0.001, 100, nil); ok {
		t.Error("Expected empty world to never be hit")
	}
	if _, ok := world.BoundingBox(0, 1); ok {
		t.Error("Expected empty world to have no bounding box")
	}
}

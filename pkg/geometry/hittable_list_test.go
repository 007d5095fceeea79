package geometry

import (
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

func TestHittableList_ReturnsClosestHit(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))

	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -10), 1, far))
	list.Add(NewSphere(core.NewVec3(0, 0, -4), 1, near))

	hit, ok := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, 100, nil)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Material != near {
		t.Error("Expected nearest sphere to win")
	}
	if hit.T != 3 {
		t.Errorf("Expected t=3, got %f", hit.T)
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, 0), 1, nil),
		NewSphere(core.NewVec3(5, 5, 5), 1, nil),
	)

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected list to be bounded")
	}
	expected := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(6, 6, 6))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}

	list.Add(unboundedHittable{})
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Expected unbounded item to make the list unbounded")
	}

	if _, ok := NewHittableList().BoundingBox(0, 1); ok {
		t.Error("Expected empty list to be unbounded")
	}
}

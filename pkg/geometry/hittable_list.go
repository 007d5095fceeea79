package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// HittableList is an unordered aggregate searched linearly
type HittableList struct {
	Items []Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(items ...Hittable) *HittableList {
	return &HittableList{Items: items}
}

// Add appends an object to the list
func (l *HittableList) Add(item Hittable) {
	l.Items = append(l.Items, item)
}

// Hit returns the closest hit among all items
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, item := range l.Items {
		if hit, ok := item.Hit(ray, tMin, closestSoFar, sampler); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all item boxes, or false if the list is empty
// or any item is unbounded
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Items) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, item := range l.Items {
		box, ok := item.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = result.Union(box)
		}
	}
	return result, true
}

func (l *HittableList) hittable() {}

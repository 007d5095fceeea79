package geometry

import (
	"errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Hittable is any scene object that can be intersected by rays.
// The set of variants is closed and defined in this package.
type Hittable interface {
	// Hit returns the nearest intersection within [tMin, tMax]. Whether the end
	// points themselves count depends on the variant: spheres exclude them, rects include them.
	// The sampler is only consumed by probabilistic objects such as ConstantMedium.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval,
	// or false for unbounded objects
	BoundingBox(time0, time1 float64) (core.AABB, bool)

	hittable()
}

var (
	// ErrMissingBoundingBox is raised when an aggregate is built over an unbounded object
	ErrMissingBoundingBox = errors.New("object has no bounding box")

	// ErrEmptyBVH is raised when a BVH is built over no objects
	ErrEmptyBVH = errors.New("bvh requires at least one object")
)

package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Axis identifies the coordinate held fixed by a Rect
type Axis int

const (
	AxisX Axis = iota // plane x = k, spanning y and z
	AxisY             // plane y = k, spanning x and z
	AxisZ             // plane z = k, spanning x and y
)

// indices returns the fixed axis and the axes of range1 and range2
func (a Axis) indices() (fixed, first, second int) {
	switch a {
	case AxisX:
		return 0, 1, 2
	case AxisY:
		return 1, 0, 2
	default:
		return 2, 0, 1
	}
}

// String returns the axis name
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// Range is a half-open interval [Start, End)
type Range struct {
	Start, End float64
}

// NewRange creates a range
func NewRange(start, end float64) Range {
	return Range{Start: start, End: end}
}

// Contains reports whether x lies in [Start, End)
func (r Range) Contains(x float64) bool {
	return x >= r.Start && x < r.End
}

// Fraction returns the position of x within the range, 0 at Start and 1 at End
func (r Range) Fraction(x float64) float64 {
	return (x - r.Start) / (r.End - r.Start)
}

// rectThickness pads the fixed axis so the bounding box is never flat
const rectThickness = 0.0001

// Rect is an axis-aligned rectangle. The coordinate on Axis is fixed at K; Range1 and Range2
// cover the remaining axes in (x, y, z) order. The normal always points along +Axis;
// wrap in FlipNormals for the opposite orientation.
type Rect struct {
	Range1   Range
	Range2   Range
	K        float64
	Axis     Axis
	Material material.Material
}

// NewRect creates an axis-aligned rectangle
func NewRect(axis Axis, range1, range2 Range, k float64, mat material.Material) *Rect {
	return &Rect{Range1: range1, Range2: range2, K: k, Axis: axis, Material: mat}
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *Rect {
	return NewRect(AxisZ, NewRange(x0, x1), NewRange(y0, y1), k, mat)
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *Rect {
	return NewRect(AxisY, NewRange(x0, x1), NewRange(z0, z1), k, mat)
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *Rect {
	return NewRect(AxisX, NewRange(y0, y1), NewRange(z0, z1), k, mat)
}

// Hit intersects the ray with the plane of the rectangle, then checks both ranges
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	fixed, first, second := r.Axis.indices()

	direction := ray.Direction.Axis(fixed)
	if direction == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(fixed)) / direction
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	a := point.Axis(first)
	b := point.Axis(second)
	if !r.Range1.Contains(a) || !r.Range2.Contains(b) {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		U:        r.Range1.Fraction(a),
		V:        r.Range2.Fraction(b),
		Point:    point,
		Normal:   core.Vec3{}.WithAxis(fixed, 1),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle padded by a small thickness along the fixed axis
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	fixed, first, second := r.Axis.indices()

	min := core.Vec3{}.
		WithAxis(fixed, r.K-rectThickness).
		WithAxis(first, r.Range1.Start).
		WithAxis(second, r.Range2.Start)
	max := core.Vec3{}.
		WithAxis(fixed, r.K+rectThickness).
		WithAxis(first, r.Range1.End).
		WithAxis(second, r.Range2.End)
	return core.NewAABB(min, max), true
}

func (r *Rect) hittable() {}

package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// FlipNormals reverses the normal reported by the wrapped object
type FlipNormals struct {
	Inner Hittable
}

// NewFlipNormals wraps inner so its normals point the other way
func NewFlipNormals(inner Hittable) *FlipNormals {
	return &FlipNormals{Inner: inner}
}

// Hit delegates and negates the normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	hit, ok := f.Inner.Hit(ray, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

// BoundingBox passes through to the wrapped object
func (f *FlipNormals) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(time0, time1)
}

func (f *FlipNormals) hittable() {}

// Translate moves the wrapped object by Offset
type Translate struct {
	Inner  Hittable
	Offset core.Vec3
}

// NewTranslate wraps inner, shifting it by offset
func NewTranslate(inner Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit moves the ray into object space, then moves the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Inner.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the wrapped box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

func (t *Translate) hittable() {}

// RotateY rotates the wrapped object about the Y axis
type RotateY struct {
	Inner    Hittable
	Angle    float64 // Degrees
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
	hasBox   bool
}

// NewRotateY wraps inner, rotated by angle degrees about the Y axis.
// The bounding box is computed once from the rotated corners of the inner box over [0, 1].
func NewRotateY(inner Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Inner:    inner,
		Angle:    angle,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	box, ok := inner.BoundingBox(0, 1)
	if !ok {
		return r
	}

	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(i, box.Min.X, box.Max.X),
					pick(j, box.Min.Y, box.Max.Y),
					pick(k, box.Min.Z, box.Max.Z),
				)
				corners = append(corners, r.toWorld(corner))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(corners...)
	r.hasBox = true
	return r
}

func pick(i int, low, high float64) float64 {
	if i == 0 {
		return low
	}
	return high
}

// toObject rotates a world-space vector by -angle
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X-r.sinTheta*v.Z, v.Y, r.sinTheta*v.X+r.cosTheta*v.Z)
}

// toWorld rotates an object-space vector by +angle
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X+r.sinTheta*v.Z, v.Y, -r.sinTheta*v.X+r.cosTheta*v.Z)
}

// Hit rotates the ray into object space and the hit point and normal back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)
	hit, ok := r.Inner.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the precomputed box of the rotated corners
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBox
}

func (r *RotateY) hittable() {}

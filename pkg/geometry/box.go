package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// BoxRect is an axis-aligned box made of six rectangles with outward-facing normals
type BoxRect struct {
	Min   core.Vec3
	Max   core.Vec3
	faces *HittableList
}

// NewBoxRect creates a box spanning [p0, p1] with the same material on every face
func NewBoxRect(p0, p1 core.Vec3, mat material.Material) *BoxRect {
	min := p0.Min(p1)
	max := p0.Max(p1)

	faces := NewHittableList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewFlipNormals(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat)),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewFlipNormals(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat)),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewFlipNormals(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat)),
	)

	return &BoxRect{Min: min, Max: max, faces: faces}
}

// Hit returns the nearest face hit
func (b *BoxRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns exactly [Min, Max]
func (b *BoxRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

func (b *BoxRect) hittable() {}

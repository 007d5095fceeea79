package material

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Material interface for surfaces and media that can scatter rays.
// The set of materials is closed: Lambertian, Metal, Dielectric, DiffuseLight and Isotropic.
type Material interface {
	// Scatter returns the continued ray and its attenuation, or false if the path is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the surface point (zero for non-emissive materials)
	Emitted(u, v float64, point core.Vec3) core.Vec3

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// It never outlives the query that produced it; Material is shared with the scene graph.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	U, V     float64   // Surface parametric coordinates
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit normal (not flipped toward the ray)
	Material Material  // Material of the hit object
}

// Texture provides spatially-varying colors for materials.
// The set of textures is closed: constant, checker, noise and image.
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and world point p
	Value(u, v float64, p core.Vec3) core.Vec3

	isTexture()
}

var black = core.Vec3{}

// Reflect mirrors v about the normal n: r = v - 2*dot(v,n)*n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends v through a surface with normal n using Snell's law.
// It returns false on total internal reflection (discriminant <= 0).
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Schlick approximates the Fresnel reflectance for the given cosine and refractive index
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

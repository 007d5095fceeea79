package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts or reflects the ray, choosing reflection with Schlick probability.
// Total internal reflection always reflects. Attenuation is always white.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction, hit.Normal)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	dirDotNormal := rayIn.Direction.Dot(hit.Normal)
	if dirDotNormal > 0 {
		// Exiting the material
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dirDotNormal / rayIn.Direction.Length()
	} else {
		// Entering the material
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dirDotNormal / rayIn.Direction.Length()
	}

	direction := reflected
	if refracted, ok := Refract(rayIn.Direction, outwardNormal, niOverNt); ok {
		if sampler.Get1D() > Schlick(cosine, d.RefractiveIndex) {
			direction = refracted
		}
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Emitted returns black
func (d *Dielectric) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return black
}

func (d *Dielectric) isMaterial() {}

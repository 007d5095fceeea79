package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Isotropic is the phase function of participating media: it scatters in a random direction
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates a solid-colored isotropic phase function
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewConstantTexture(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function from a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a new direction from the unit ball (not normalized)
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.RandomInUnitSphere(sampler), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

// Emitted returns black
func (i *Isotropic) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return black
}

func (i *Isotropic) isMaterial() {}

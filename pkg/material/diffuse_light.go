package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// DiffuseLight is the only emissive material; it never scatters
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light emitting a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewConstantTexture(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission follows a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the texture value at the hit point
func (l *DiffuseLight) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return l.Emit.Value(u, v, point)
}

func (l *DiffuseLight) isMaterial() {}

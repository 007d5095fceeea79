package integrator

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// TMin offsets intersections away from the previous surface to avoid self-hits
const TMin = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a black background
type PathTracingIntegrator struct {
	MaxDepth int // Maximum number of scattering events per path
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor traces the path iteratively: emission is added weighted by the running throughput,
// and the path stops on a miss, on absorption, or after MaxDepth bounces.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	color := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for bounce := 0; bounce < pt.MaxDepth; bounce++ {
		hit, isHit := world.Hit(ray, TMin, math.MaxFloat64, sampler)
		if !isHit {
			break
		}

		emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)
		color = color.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			break
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return color
}

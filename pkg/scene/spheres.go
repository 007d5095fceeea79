package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/loaders"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// outdoorCamera looks at the origin from (13,2,3) over a one second shutter
func outdoorCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VFov:          20,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// skyDome surrounds the outdoor scenes with a dim blue emitter. These scenes
// have no other light, so without it every path would end black.
func skyDome() geometry.Hittable {
	return geometry.NewSphere(core.Vec3{}, 10000, material.NewDiffuseLight(core.NewVec3(0.7, 0.8, 1.0)))
}

func greenChecker() material.Texture {
	return material.NewSolidChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
}

func buildRandom(opts Options, random *rand.Rand) (geometry.Hittable, renderer.CameraConfig, error) {
	world := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(greenChecker())),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	}

	const radius = 0.2
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			choice := random.Float64()
			switch {
			case choice < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				world = append(world, geometry.NewMovingSphere(center, center1, 0, 1, radius, material.NewLambertian(albedo)))
			case choice < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				fuzz := 0.5 * random.Float64()
				world = append(world, geometry.NewSphere(center, radius, material.NewMetal(albedo, fuzz)))
			default:
				world = append(world, geometry.NewSphere(center, radius, material.NewDielectric(1.5)))
			}
		}
	}

	// The dome stays out of the BVH so it does not inflate every node box
	return geometry.NewHittableList(geometry.BuildWorld(world, 0, 1), skyDome()), outdoorCamera(), nil
}

func buildTwoSpheres(opts Options, random *rand.Rand) (geometry.Hittable, renderer.CameraConfig, error) {
	checker := material.NewTexturedLambertian(greenChecker())
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
		skyDome(),
	)
	return world, outdoorCamera(), nil
}

func buildTwoPerlinSpheres(opts Options, random *rand.Rand) (geometry.Hittable, renderer.CameraConfig, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(random), 7))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		skyDome(),
	)
	return world, outdoorCamera(), nil
}

func buildEarth(opts Options, random *rand.Rand) (geometry.Hittable, renderer.CameraConfig, error) {
	texture, err := loaders.LoadImageTexture(opts.TexturePath, opts.MaxTextureSize)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
		skyDome(),
	)
	return world, outdoorCamera(), nil
}

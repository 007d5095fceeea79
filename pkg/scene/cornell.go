package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// boxSize is the edge of the standard Cornell box
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		VFov:          40,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

func buildSimpleLight(opts Options, random *rand.Rand) (geometry.Hittable, renderer.CameraConfig, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(random), 4))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
	)

	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		VFov:          20,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
	return world, camera, nil
}

// cornellWalls returns the five walls of the box and a ceiling light
func cornellWalls(light material.Material, lightArea [4]float64) []geometry.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Hittable{
		geometry.NewFlipNormals(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)),
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewXZRect(lightArea[0], lightArea[1], lightArea[2], lightArea[3], boxSize-1, light),
		geometry.NewFlipNormals(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),
		geometry.NewFlipNormals(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)),
	}
}

// cornellBlocks returns the short and tall blocks, rotated and placed inside the box
func cornellBlocks(mat material.Material) (short, tall geometry.Hittable) {
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBoxRect(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBoxRect(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	return short, tall
}

func buildCornellBox(opts Options, random *rand.Rand) (geometry.Hittable, renderer.CameraConfig, error) {
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	objects := cornellWalls(light, [4]float64{213, 343, 227, 332})

	short, tall := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	objects = append(objects, short, tall)

	return geometry.BuildWorld(objects, 0, 1), cornellCamera(), nil
}

func buildCornellSmoke(opts Options, random *rand.Rand) (geometry.Hittable, renderer.CameraConfig, error) {
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	objects := cornellWalls(light, [4]float64{113, 443, 127, 432})

	short, tall := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	objects = append(objects,
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
	)

	return geometry.BuildWorld(objects, 0, 1), cornellCamera(), nil
}

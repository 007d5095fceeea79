package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/loaders"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// buildFinal assembles the closing scene: a field of boxes, a moving sphere, glass,
// metal, fog, a textured globe, marble and a rotated cluster of small spheres.
// Without a texture path the globe falls back to a checker.
func buildFinal(opts Options, random *rand.Rand) (geometry.Hittable, renderer.CameraConfig, error) {
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	const boxWidth = 100.0

	boxes := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000 + float64(i)*boxWidth
			z0 := -1000 + float64(j)*boxWidth
			y1 := 100 * (random.Float64() + 0.01)
			boxes = append(boxes, geometry.NewBoxRect(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+boxWidth, y1, z0+boxWidth),
				ground,
			))
		}
	}

	objects := []geometry.Hittable{
		geometry.NewBVH(boxes, 0, 1),
		geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))),
	}

	center := core.NewVec3(400, 400, 200)
	objects = append(objects,
		geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 0, 1, 50,
			material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10)),
	)

	// Glass ball filled with blue fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects, boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects, geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	var globe material.Texture = material.NewSolidChecker(core.NewVec3(0.1, 0.2, 0.5), core.NewVec3(0.9, 0.9, 0.9))
	if opts.TexturePath != "" {
		texture, err := loaders.LoadImageTexture(opts.TexturePath, opts.MaxTextureSize)
		if err != nil {
			return nil, renderer.CameraConfig{}, err
		}
		globe = texture
	}
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(random), 0.1))),
	)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]geometry.Hittable, 0, 1000)
	for i := 0; i < 1000; i++ {
		p := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster = append(cluster, geometry.NewSphere(p, 10, white))
	}
	objects = append(objects, geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(cluster, 0, 1), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		VFov:          40,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
	return geometry.BuildWorld(objects, 0, 1), camera, nil
}

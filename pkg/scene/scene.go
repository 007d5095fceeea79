package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// DefaultSeed is used when Options.Seed is zero
const DefaultSeed int64 = 42

var (
	// ErrUnknownScene is returned by Create for names missing from the registry
	ErrUnknownScene = errors.New("unknown scene")
	// ErrMissingTexture is returned when a textured scene has no TexturePath
	ErrMissingTexture = errors.New("scene requires a texture image")
	// ErrInvalidSize is returned for non-positive resolutions
	ErrInvalidSize = errors.New("scene width and height must be positive")
)

var logger = log.New("scene")

// Scene is a camera and the world it looks at
type Scene struct {
	Name   string
	Camera *renderer.Camera
	World  geometry.Hittable
}

// Options controls how a scene is built
type Options struct {
	Width          int
	Height         int
	Seed           int64  // Seeds object placement and noise tables, 0 = DefaultSeed
	TexturePath    string // Image used by textured scenes
	MaxTextureSize uint   // Longest side of loaded textures, 0 = keep full size
}

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	NeedsTexture bool   `json:"needsTexture"`
}

type builder func(opts Options, random *rand.Rand) (geometry.Hittable, renderer.CameraConfig, error)

type entry struct {
	info  SceneInfo
	build builder
}

var registry = map[string]entry{
	"random": {
		SceneInfo{Name: "random", Description: "Field of small random spheres around three large ones, with motion blur"},
		buildRandom,
	},
	"two-spheres": {
		SceneInfo{Name: "two-spheres", Description: "Two checkered spheres touching at the origin"},
		buildTwoSpheres,
	},
	"two-perlin-spheres": {
		SceneInfo{Name: "two-perlin-spheres", Description: "Marble noise on a ground sphere and a small sphere"},
		buildTwoPerlinSpheres,
	},
	"earth": {
		SceneInfo{Name: "earth", Description: "Image-textured globe", NeedsTexture: true},
		buildEarth,
	},
	"simple-light": {
		SceneInfo{Name: "simple-light", Description: "Marble spheres lit by an emissive sphere and rectangle"},
		buildSimpleLight,
	},
	"cornell-box": {
		SceneInfo{Name: "cornell-box", Description: "Cornell box with two rotated blocks"},
		buildCornellBox,
	},
	"cornell-smoke": {
		SceneInfo{Name: "cornell-smoke", Description: "Cornell box with blocks of light and dark smoke"},
		buildCornellSmoke,
	},
	"final": {
		SceneInfo{Name: "final", Description: "Every primitive, material and texture in one scene"},
		buildFinal,
	},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns metadata for every registered scene, sorted by name
func Describe() []SceneInfo {
	names := Names()
	infos := make([]SceneInfo, len(names))
	for i, name := range names {
		infos[i] = registry[name].info
	}
	return infos
}

// Create builds the named scene at the requested resolution
func Create(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	if e.info.NeedsTexture && opts.TexturePath == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingTexture, name)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	world, cameraConfig, err := e.build(opts, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
	}
	cameraConfig.Width = opts.Width
	cameraConfig.Height = opts.Height

	if bvh, ok := world.(*geometry.BVHNode); ok {
		stats := bvh.Stats()
		logger.Debugf("scene %s: bvh with %d nodes, %d leaves, depth %d", name, stats.Nodes, stats.Leaves, stats.MaxDepth)
	}

	return &Scene{
		Name:   name,
		Camera: renderer.NewCamera(cameraConfig),
		World:  world,
	}, nil
}

package renderer

import (
	"errors"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ErrInvalidCamera is raised when a camera is configured with a non-positive resolution
var ErrInvalidCamera = errors.New("camera width and height must be positive")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	VUp           core.Vec3 // Up direction, defaults to (0, 1, 0)
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height, defaults to Width / Height
	Aperture      float64   // Lens diameter (0 = pinhole)
	FocusDistance float64   // Distance to the focal plane, defaults to |LookFrom - LookAt|
	Time0, Time1  float64   // Shutter interval
	Width, Height int       // Output resolution in pixels
}

// Camera generates rays for rendering. It is immutable once built.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
	width, height   int
}

// NewCamera derives the camera basis and image plane from the configuration.
// It panics with ErrInvalidCamera if the resolution is not positive.
func NewCamera(config CameraConfig) *Camera {
	if config.Width <= 0 || config.Height <= 0 {
		panic(ErrInvalidCamera)
	}

	vup := config.VUp
	if vup == (core.Vec3{}) {
		vup = core.NewVec3(0, 1, 0)
	}
	aspect := config.AspectRatio
	if aspect <= 0 {
		aspect = float64(config.Width) / float64(config.Height)
	}
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspect * halfHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
		width:           config.Width,
		height:          config.Height,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1 and t = 0 is the bottom.
// The origin is jittered over the lens disk and the time over the shutter interval.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	time := c.time0 + sampler.Get1D()*(c.time1-c.time0)
	return core.NewRayAtTime(c.origin.Add(offset), direction, time)
}

// Width returns the output width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the output height in pixels
func (c *Camera) Height() int {
	return c.height
}

// ShutterInterval returns the time interval rays are sampled over
func (c *Camera) ShutterInterval() (float64, float64) {
	return c.time0, c.time1
}

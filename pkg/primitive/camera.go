package primitive

import (
	"math"

	"github.com/df07/pathtrace/pkg/vecmath"
)

// CameraConfig describes a pinhole camera before its ray basis is derived.
type CameraConfig struct {
	LookFrom    vecmath.Vec3
	LookAt      vecmath.Vec3
	Up          vecmath.Vec3
	VFov        float64 // vertical field of view, degrees
	AspectRatio float64
}

// Camera derives its ray-generation basis once from a CameraConfig and
// reuses it for every GetRay call during a render.
type Camera struct {
	origin          vecmath.Vec3
	lowerLeftCorner vecmath.Vec3
	horizontal      vecmath.Vec3
	vertical        vecmath.Vec3
}

// NewCamera derives the camera's ray basis from config.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Add(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay returns the primary ray through normalized pixel coordinates
// (s, t). t is subtracted rather than added because image v increases
// downward in the output raster while the camera basis's vertical axis
// points up.
func (c *Camera) GetRay(s, t float64) vecmath.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Subtract(c.vertical.Multiply(t)).
		Subtract(c.origin)
	return vecmath.NewRay(c.origin, direction)
}

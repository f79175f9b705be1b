// Package background implements the environment that a ray samples when it
// escapes the scene without hitting anything: a constant color, a vertical
// gradient, or an equirectangular sky image.
package background

import "github.com/df07/pathtrace/pkg/vecmath"

// Background is sampled with the escaping ray; it never depends on a hit.
type Background interface {
	Sample(ray vecmath.Ray) vecmath.Vec3
}

// Uniform returns the same color regardless of ray direction.
type Uniform struct {
	Color vecmath.Vec3
}

// NewUniform creates a new Uniform background.
func NewUniform(color vecmath.Vec3) *Uniform {
	return &Uniform{Color: color}
}

// Sample implements Background.
func (u *Uniform) Sample(ray vecmath.Ray) vecmath.Vec3 {
	return u.Color
}

// Gradient interpolates linearly between Bottom and Top by the ray
// direction's Y component.
type Gradient struct {
	Top    vecmath.Vec3
	Bottom vecmath.Vec3
}

// NewGradient creates a new Gradient background.
func NewGradient(top, bottom vecmath.Vec3) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

// Sample implements Background.
func (g *Gradient) Sample(ray vecmath.Ray) vecmath.Vec3 {
	direction := ray.Direction.Normalize()
	t := 0.5 * (direction.Y + 1.0)
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}

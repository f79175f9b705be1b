// Package integrator implements the recursive radiance evaluation that
// turns a camera ray into a color: material dispatch, the depth cutoff,
// and the Clay/Normal/Random debug render modes.
package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/pathtrace/pkg/material"
	"github.com/df07/pathtrace/pkg/scenegraph"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// clayMaterial is the constant material substituted for every hit's own
// material in scenegraph.ModeClay.
var clayMaterial = material.NewLambertian(vecmath.NewVec3(0.8, 0.8, 0.8))

// Trace recursively evaluates the radiance along ray, dispatching on the
// scene's render mode and terminating at MaxRayDepth. It carries no
// Russian Roulette, next-event estimation, or MIS: a hard depth cutoff and
// plain BSDF sampling, per this module's scope.
func Trace(scene *scenegraph.Scene, ray vecmath.Ray, depth uint8, random *rand.Rand) vecmath.Vec3 {
	if depth >= scene.Settings.MaxRayDepth {
		return vecmath.NewVec3(0, 0, 0)
	}

	hit, isHit := scene.Hit(ray, 1e-5, math.Inf(1), random)
	if !isHit {
		return scene.Background.Sample(ray)
	}

	switch scene.Settings.Mode {
	case scenegraph.ModeNormal:
		n := hit.Normal.Normalize()
		return vecmath.NewVec3(n.X+1, n.Y+1, n.Z+1).Multiply(0.5)
	case scenegraph.ModeRandom:
		return vecmath.NewVec3(0, 0, 0)
	}

	mat := scene.Material(hit.Material)
	if scene.Settings.Mode == scenegraph.ModeClay {
		mat = clayMaterial
	}

	result, scattered := mat.Scatter(ray, hit, random)
	if !scattered {
		return result.Attenuation
	}
	incoming := Trace(scene, result.Scattered, depth+1, random)
	return result.Attenuation.MultiplyVec(incoming)
}

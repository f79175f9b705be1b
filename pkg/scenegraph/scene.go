// Package scenegraph owns the Scene: its append-only material and object
// handle tables, render settings, background, and the scene-level BVH built
// from a snapshot of those tables at render start.
package scenegraph

import (
	"fmt"
	"math/rand"

	"github.com/df07/pathtrace/pkg/background"
	"github.com/df07/pathtrace/pkg/bvh"
	"github.com/df07/pathtrace/pkg/material"
	"github.com/df07/pathtrace/pkg/primitive"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// ObjectHandle is a dense, stable, append-only index into a Scene's object
// table, mirroring material.Handle for materials.
type ObjectHandle int

// RenderMode selects the integrator's dispatch per spec.md §4.5.
type RenderMode int

const (
	ModeFull RenderMode = iota
	ModeClay
	ModeNormal
	ModeRandom
)

// RenderSettings configures a single render pass.
type RenderSettings struct {
	SamplesPerPixel      uint32
	MaxRayDepth          uint8
	EnableMultithreading bool
	EnableBVHTree        bool
	Mode                 RenderMode
	ClampIndirect        float64
	Seed                 *uint64 // nil = nondeterministic; non-nil seeds each pixel's own PRNG stream
}

// Validate checks RenderSettings against the bounds spec.md §6 documents:
// samples_per_pixel in [1, 10000], max_ray_depth in [1, 50], clamp_indirect
// in [0, +Inf) (+Inf disables clamping; 0 is legal and clamps everything
// to black, which is a valid if degenerate configuration).
func (s RenderSettings) Validate() error {
	if s.SamplesPerPixel < 1 || s.SamplesPerPixel > 10000 {
		return fmt.Errorf("scenegraph: samples_per_pixel must be in [1, 10000], got %d", s.SamplesPerPixel)
	}
	if s.MaxRayDepth < 1 || s.MaxRayDepth > 50 {
		return fmt.Errorf("scenegraph: max_ray_depth must be in [1, 50], got %d", s.MaxRayDepth)
	}
	if s.ClampIndirect < 0 {
		return fmt.Errorf("scenegraph: clamp_indirect must be non-negative, got %v", s.ClampIndirect)
	}
	return nil
}

// Scene owns every material and object by value in append-only tables;
// primitives and hit records refer to them only by Handle/ObjectHandle.
type Scene struct {
	Camera     *primitive.Camera
	Settings   RenderSettings
	Background background.Background

	materials []material.Material
	objects   []primitive.Primitive

	sceneBVH *bvh.BVH[ObjectHandle]
}

// NewScene creates an empty Scene. Build it with AddMaterial/AddObject, then
// call Build once before rendering.
func NewScene(camera *primitive.Camera, settings RenderSettings, bg background.Background) *Scene {
	return &Scene{Camera: camera, Settings: settings, Background: bg}
}

// AddMaterial appends a material and returns its stable handle.
func (s *Scene) AddMaterial(m material.Material) material.Handle {
	s.materials = append(s.materials, m)
	return material.Handle(len(s.materials) - 1)
}

// AddObject appends a primitive and returns its stable handle.
func (s *Scene) AddObject(p primitive.Primitive) ObjectHandle {
	s.objects = append(s.objects, p)
	return ObjectHandle(len(s.objects) - 1)
}

// Material looks up a material by handle.
func (s *Scene) Material(h material.Handle) material.Material {
	return s.materials[h]
}

// Object looks up a primitive by handle.
func (s *Scene) Object(h ObjectHandle) primitive.Primitive {
	return s.objects[h]
}

// Build snapshots the current object table into the scene-level BVH. Once
// called, the Scene is read-only for the remainder of the render; further
// AddMaterial/AddObject calls are not reflected in the BVH until Build runs
// again.
func (s *Scene) Build() {
	s.sceneBVH = bvh.Build[ObjectHandle](s)
}

// Objects implements bvh.Collection[ObjectHandle].
func (s *Scene) Objects() []ObjectHandle {
	handles := make([]ObjectHandle, len(s.objects))
	for i := range handles {
		handles[i] = ObjectHandle(i)
	}
	return handles
}

// BoundsOf implements bvh.Collection[ObjectHandle].
func (s *Scene) BoundsOf(h ObjectHandle) vecmath.AABB {
	return s.objects[h].Bounds()
}

// HitObject implements bvh.Collection[ObjectHandle].
func (s *Scene) HitObject(h ObjectHandle, ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	return s.objects[h].Hit(ray, tMin, tMax, random)
}

// Hit finds the closest intersection across every object in the scene. When
// EnableBVHTree is false this falls back to a linear scan over every
// object, per spec.md §3's "provides linear hit fallback".
func (s *Scene) Hit(ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	if s.Settings.EnableBVHTree && s.sceneBVH != nil {
		return s.sceneBVH.Hit(ray, tMin, tMax, random)
	}
	return s.linearHit(ray, tMin, tMax, random)
}

func (s *Scene) linearHit(ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	var closest material.HitRecord
	found := false
	closestSoFar := tMax

	for _, obj := range s.objects {
		if hit, ok := obj.Hit(ray, tMin, closestSoFar, random); ok {
			closest = hit
			found = true
			closestSoFar = hit.T
		}
	}
	return closest, found
}

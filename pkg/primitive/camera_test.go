package primitive

import (
	"math"
	"testing"

	"github.com/df07/pathtrace/pkg/vecmath"
)

func TestCamera_CenterRayPointsAtLookAt(t *testing.T) {
	config := CameraConfig{
		LookFrom:    vecmath.NewVec3(0, 0, 0),
		LookAt:      vecmath.NewVec3(0, 0, -1),
		Up:          vecmath.NewVec3(0, 1, 0),
		VFov:        45.0,
		AspectRatio: 1.0,
	}
	camera := NewCamera(config)

	ray := camera.GetRay(0.5, 0.5)
	direction := ray.Direction.Normalize()
	expected := vecmath.NewVec3(0, 0, -1)

	if direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("center ray direction = %v, want %v", direction, expected)
	}
}

func TestCamera_TIncreasesDownward(t *testing.T) {
	// t=0 should be the top row of the output raster and t=1 the bottom,
	// so increasing t must tilt the ray downward (negative Y component).
	config := CameraConfig{
		LookFrom:    vecmath.NewVec3(0, 0, 0),
		LookAt:      vecmath.NewVec3(0, 0, -1),
		Up:          vecmath.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 1.0,
	}
	camera := NewCamera(config)

	top := camera.GetRay(0.5, 0.0)
	bottom := camera.GetRay(0.5, 1.0)

	if top.Direction.Y <= bottom.Direction.Y {
		t.Errorf("t=0 ray Y=%v should exceed t=1 ray Y=%v", top.Direction.Y, bottom.Direction.Y)
	}
}

func TestCamera_AspectRatioWidensHorizontalExtent(t *testing.T) {
	wide := NewCamera(CameraConfig{
		LookFrom: vecmath.NewVec3(0, 0, 0), LookAt: vecmath.NewVec3(0, 0, -1),
		Up: vecmath.NewVec3(0, 1, 0), VFov: 45.0, AspectRatio: 2.0,
	})
	square := NewCamera(CameraConfig{
		LookFrom: vecmath.NewVec3(0, 0, 0), LookAt: vecmath.NewVec3(0, 0, -1),
		Up: vecmath.NewVec3(0, 1, 0), VFov: 45.0, AspectRatio: 1.0,
	})

	wideEdge := wide.GetRay(1.0, 0.5).Direction
	squareEdge := square.GetRay(1.0, 0.5).Direction

	if math.Abs(wideEdge.X) <= math.Abs(squareEdge.X) {
		t.Errorf("wider aspect ratio should widen the horizontal extent at the frame edge")
	}
}

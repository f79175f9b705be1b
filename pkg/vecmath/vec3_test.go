package vecmath

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64 // expected length after normalize
	}{
		{"unit x", NewVec3(5, 0, 0), 1.0},
		{"diagonal", NewVec3(1, 1, 1), 1.0},
		{"zero vector does not NaN", NewVec3(0, 0, 0), 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize().Length()
			if math.IsNaN(got) {
				t.Fatalf("Normalize produced NaN for %v", tt.v)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Normalize(%v).Length() = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVec3_DotCross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot(perpendicular) = %v, want 0", got)
	}
	cross := a.Cross(b)
	if cross != (Vec3{0, 0, 1}) {
		t.Errorf("Cross(x, y) = %v, want (0,0,1)", cross)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2)
	got := v.Clamp(0, 1)
	want := NewVec3(0, 0.5, 1)
	if got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}
}

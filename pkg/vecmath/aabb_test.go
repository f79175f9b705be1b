package vecmath

import "testing"

func TestAABB_SurroundIdentity(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	if got := a.Surround(a); got != a {
		t.Errorf("Surround(a,a) = %v, want %v", got, a)
	}
	if got := a.Surround(NewEmptyAABB()); got != a {
		t.Errorf("Surround(a,empty) = %v, want %v", got, a)
	}
	if got := NewEmptyAABB().Surround(a); got != a {
		t.Errorf("Surround(empty,a) = %v, want %v", got, a)
	}

	b := NewAABB(NewVec3(-1, -1, -1), NewVec3(0.5, 0.5, 0.5))
	if a.Surround(b) != b.Surround(a) {
		t.Errorf("Surround is not commutative: %v vs %v", a.Surround(b), b.Surround(a))
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name   string
		ray    Ray
		want   bool
	}{
		{"through center", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), true},
		{"parallel and outside", NewRay(NewVec3(-5, 5, 0), NewVec3(1, 0, 0)), false},
		{"pointing away", NewRay(NewVec3(-5, 0, 0), NewVec3(-1, 0, 0)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.0001, 1e9); got != tt.want {
				t.Errorf("Hit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABB_EpsilonExpand(t *testing.T) {
	flat := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 0, 1))
	expanded := flat.EpsilonExpand(0.001)
	if expanded.Dimensions().Y < 0.001 {
		t.Errorf("EpsilonExpand did not widen degenerate axis: %v", expanded.Dimensions())
	}
}

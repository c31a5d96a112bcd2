package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRaycastBoxHit(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{Center: rl.Vector3{X: 6, Y: 0, Z: 0}, Size: rl.Vector3{X: 4, Y: 4, Z: 4}})

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100)
	if !ok {
		t.Fatal("ray along +X missed the box")
	}
	if math.Abs(float64(hit.Distance-4)) > 1e-4 {
		t.Errorf("distance = %v, want 4", hit.Distance)
	}
	if math.Abs(float64(hit.Point.X-4)) > 1e-4 {
		t.Errorf("hit point X = %v, want 4", hit.Point.X)
	}
	if (hit.Normal != rl.Vector3{X: -1}) {
		t.Errorf("normal = %+v, want (-1, 0, 0)", hit.Normal)
	}
}

func TestRaycastBoxMiss(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{Center: rl.Vector3{X: 6, Y: 0, Z: 0}, Size: rl.Vector3{X: 4, Y: 4, Z: 4}})

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100); ok {
		t.Error("ray along +Z should miss a box centred on +X")
	}
	// Box behind the origin.
	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: -1}, 100); ok {
		t.Error("ray away from the box still hit it")
	}
}

func TestRaycastSphereHit(t *testing.T) {
	w := NewWorld()
	w.AddSphere(Sphere{Center: rl.Vector3{Z: 10}, Radius: 2})

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 100)
	if !ok {
		t.Fatal("ray along +Z missed the sphere")
	}
	if math.Abs(float64(hit.Distance-8)) > 1e-4 {
		t.Errorf("distance = %v, want 8", hit.Distance)
	}
	if (hit.Normal != rl.Vector3{Z: -1}) {
		t.Errorf("normal = %+v, want (0, 0, -1)", hit.Normal)
	}
}

func TestRaycastClosestOfMany(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{Center: rl.Vector3{X: 20, Y: 0, Z: 0}, Size: rl.Vector3{X: 2, Y: 2, Z: 2}})
	w.AddSphere(Sphere{Center: rl.Vector3{X: 8}, Radius: 1})

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100)
	if !ok {
		t.Fatal("ray missed both colliders")
	}
	if math.Abs(float64(hit.Distance-7)) > 1e-4 {
		t.Errorf("distance = %v, want 7 (closer sphere)", hit.Distance)
	}
}

func TestRaycastMaxDistance(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{Center: rl.Vector3{X: 50, Y: 0, Z: 0}, Size: rl.Vector3{X: 2, Y: 2, Z: 2}})

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 10); ok {
		t.Error("hit reported beyond maxDistance")
	}
}

func TestRaycastUnnormalizedDirection(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{Center: rl.Vector3{X: 6, Y: 0, Z: 0}, Size: rl.Vector3{X: 4, Y: 4, Z: 4}})

	// Distances stay in world units regardless of input length.
	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 25}, 100)
	if !ok {
		t.Fatal("scaled direction missed the box")
	}
	if math.Abs(float64(hit.Distance-4)) > 1e-4 {
		t.Errorf("distance = %v, want 4", hit.Distance)
	}
}

func TestRaycastFromInsideBox(t *testing.T) {
	w := NewWorld()
	w.AddBox(Box{Center: rl.Vector3{}, Size: rl.Vector3{X: 4, Y: 4, Z: 4}})

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100)
	if !ok {
		t.Fatal("ray from inside the box missed")
	}
	if math.Abs(float64(hit.Distance-2)) > 1e-4 {
		t.Errorf("exit distance = %v, want 2", hit.Distance)
	}
}

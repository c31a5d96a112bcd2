package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Box is an axis-aligned box collider defined by centre and full size.
type Box struct {
	Center rl.Vector3
	Size   rl.Vector3
}

// Sphere is a sphere collider.
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

// World is a static set of colliders the camera raycasts against.
type World struct {
	boxes   []Box
	spheres []Sphere
}

func NewWorld() *World {
	return &World{}
}

func (w *World) AddBox(box Box) {
	w.boxes = append(w.boxes, box)
}

func (w *World) AddSphere(sphere Sphere) {
	w.spheres = append(w.spheres, sphere)
}

func (w *World) Boxes() []Box { return w.boxes }

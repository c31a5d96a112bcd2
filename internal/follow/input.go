package follow

import rl "github.com/gen2brain/raylib-go/raylib"

// Input is the per-frame follow input.
//
// LookYawOffset has two-mode semantics inherited from the engine's input
// layer, and callers must honour them:
//
//   - While locked it is a per-frame DELTA in radians. The update clamps it
//     to +/-0.1 rad per frame and ignores magnitudes below 1e-3, and the
//     caller is expected to reset it every frame.
//   - While unlocked it is unused; free-look rotation reads the pixel
//     deltas on MoveInput instead.
//
// LookPitchOffset is an absolute pitch offset blended in by the lock
// transition in both cases.
type Input struct {
	Player          rl.Vector3 // player world position, metres
	IsLocked        bool
	LookYawOffset   float32 // radians, see two-mode contract above
	LookPitchOffset float32 // radians
}

// MoveInput is the per-frame free-camera movement input.
type MoveInput struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	Sprint   bool
	Slow     bool

	MouseDeltaX float32 // pixels
	MouseDeltaY float32 // pixels, positive downward

	// MoveSpeedOverride replaces both configured base speeds when > 0.
	MoveSpeedOverride float32
}

// Hit is the result of an obstacle raycast.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycaster is the camera core's only view of the physics engine. It must
// be pure: identical inputs produce identical hits. A nil Raycaster
// disables obstacle avoidance for the frame.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32) (Hit, bool)
}

// RaycastFunc adapts a plain function to the Raycaster interface.
type RaycastFunc func(origin, direction rl.Vector3, maxDistance float32) (Hit, bool)

func (f RaycastFunc) Raycast(origin, direction rl.Vector3, maxDistance float32) (Hit, bool) {
	return f(origin, direction, maxDistance)
}

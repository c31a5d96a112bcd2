package follow

import rl "github.com/gen2brain/raylib-go/raylib"

// State is the persistent between-frame state of the follow camera. The
// zero value is the correct initial state.
type State struct {
	Transition float32 // lock engagement in [0,1]
	WasLocked  bool

	// Free-cam velocity, world space, m/s.
	FreeVel rl.Vector3

	// OrbitYaw mirrors camera yaw while unlocked so a later lock-on has a
	// sane continuity fallback. LockedOrbitOffset is the active orbit angle
	// while locked; keeping the two separate avoids accumulation drift
	// across mode changes.
	OrbitYaw          float32
	LockedOrbitOffset float32

	// Teleport detection baseline: last frame's desired (pre-smoothing)
	// camera target.
	LastDesired    rl.Vector3
	HasLastDesired bool

	TeleportFramesRemaining int
	TeleportBlendTimer      float32
}

func (s *State) Reset() {
	*s = State{}
}

package follow

import (
	"math"

	"orbit3d/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Approximately 89 degrees; keeps free-look away from gimbal lock.
const maxFreePitch = 1.55334

// FreeLook applies mouse-driven rotation to a fully free camera.
// Pixel deltas below a small deadzone are dropped to stop shimmer.
func FreeLook(cam *camera.Camera, cfg *Config, move MoveInput) {
	const deadzonePx = 0.2
	dx := deadzone(move.MouseDeltaX, deadzonePx)
	dy := deadzone(move.MouseDeltaY, deadzonePx)

	yaw := cam.Yaw
	pitch := cam.Pitch

	yawSign := float32(1)
	if cfg.InvertFreeLookYaw {
		yawSign = -1
	}
	pitchSign := float32(1)
	if cfg.InvertFreeLookPitch {
		pitchSign = -1
	}

	yaw += yawSign * dx * cfg.FreeLookSensYaw
	// Mouse Y grows downward, so an upward drag pitches up.
	pitchDelta := -dy * cfg.FreeLookSensPitch
	pitch += pitchSign * pitchDelta

	yaw = wrapAngle(yaw)
	pitch = clamp32(pitch, -maxFreePitch, maxFreePitch)

	cam.SetOrientation(pitch, yaw)
}

// FreeMove integrates free-camera translation: camera-relative horizontal
// movement, world-vertical movement, an exponential velocity filter and a
// deadzone snap so the camera comes to a true stop.
func FreeMove(cam *camera.Camera, state *State, cfg *Config, move MoveInput, dt float32) {
	if move.MoveSpeedOverride <= 0 &&
		cfg.MoveSpeedHorizontal <= 0 &&
		cfg.MoveSpeedVertical <= 0 {
		return
	}

	if !isFinite(dt) {
		dt = 0
	}
	dt = clamp32(dt, 0, cfg.MaxDeltaTimeClamp)

	speedFactor := float32(1)
	if move.Sprint {
		speedFactor *= cfg.SprintMultiplier
	}
	if move.Slow {
		speedFactor *= 0.5
	}

	basis := cam.BuildBasis(cfg.PitchAffectsForward)

	fwdIn := axis(move.Forward, move.Backward)
	rightIn := axis(move.Right, move.Left)
	upIn := axis(move.Up, move.Down)

	// Horizontal direction on XZ only, normalized so diagonals are not faster.
	vxH := rightIn*basis.Right.X + fwdIn*basis.Forward.X
	vzH := rightIn*basis.Right.Z + fwdIn*basis.Forward.Z
	horizLenSq := vxH*vxH + vzH*vzH
	if horizLenSq > 0 {
		inv := float32(1.0 / math.Sqrt(float64(horizLenSq)))
		vxH *= inv
		vzH *= inv
	}

	baseH := cfg.MoveSpeedHorizontal
	baseV := cfg.MoveSpeedVertical
	if move.MoveSpeedOverride > 0 {
		baseH = move.MoveSpeedOverride
		baseV = move.MoveSpeedOverride
	}

	desired := rl.Vector3{
		X: vxH * baseH * speedFactor,
		Y: upIn * baseV * speedFactor,
		Z: vzH * baseH * speedFactor,
	}

	velAlpha := clamp32(expAlpha(cfg.FreeAccelHz, dt), 0, 1)

	// No input damps toward zero with the same filter, killing drift.
	if fwdIn == 0 && rightIn == 0 && upIn == 0 {
		desired = rl.Vector3{}
	}
	state.FreeVel.X += (desired.X - state.FreeVel.X) * velAlpha
	state.FreeVel.Y += (desired.Y - state.FreeVel.Y) * velAlpha
	state.FreeVel.Z += (desired.Z - state.FreeVel.Z) * velAlpha

	if abs32(state.FreeVel.X) < cfg.FreeVelDeadzone {
		state.FreeVel.X = 0
	}
	if abs32(state.FreeVel.Y) < cfg.FreeVelDeadzone {
		state.FreeVel.Y = 0
	}
	if abs32(state.FreeVel.Z) < cfg.FreeVelDeadzone {
		state.FreeVel.Z = 0
	}

	cam.SetPosition(rl.Vector3{
		X: cam.Position.X + state.FreeVel.X*dt,
		Y: cam.Position.Y + state.FreeVel.Y*dt,
		Z: cam.Position.Z + state.FreeVel.Z*dt,
	})
}

func deadzone(v, dz float32) float32 {
	if abs32(v) < dz {
		return 0
	}
	return v
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

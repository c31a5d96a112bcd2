package follow

import (
	"math"

	"orbit3d/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const eps = 1e-6

// Update runs one frame of the target-lock camera. It mutates cam and
// state; cfg is re-validated on entry so a bad hot-loaded profile cannot
// poison the frame. caster may be nil, which skips obstacle avoidance.
//
// The step order is load-bearing: transition blend, orbit-yaw selection,
// desired pose, teleport detection, smoothing, min-distance, ground clamp,
// obstacles, orientation, commit, teleport decrement. Reordering breaks
// continuity across lock/unlock edges and teleport recovery.
func Update(cam *camera.Camera, state *State, cfg *Config, in Input, dt float32, caster Raycaster) {
	cfg.Validate()

	if !isFinite(dt) {
		dt = 0
	}
	dt = clamp32(dt, 0, max32(0, cfg.MaxDeltaTimeClamp))

	// Non-finite player coordinates would poison every value downstream;
	// fall back to the current camera position, which makes the frame a
	// bounded no-op for that axis.
	if !isFinite(in.Player.X) {
		in.Player.X = cam.Position.X
	}
	if !isFinite(in.Player.Y) {
		in.Player.Y = cam.Position.Y
	}
	if !isFinite(in.Player.Z) {
		in.Player.Z = cam.Position.Z
	}
	if !isFinite(in.LookYawOffset) {
		in.LookYawOffset = 0
	}
	if !isFinite(in.LookPitchOffset) {
		in.LookPitchOffset = 0
	}

	teleportEnabled := cfg.EnableTeleportHandling
	hadLastDesired := state.HasLastDesired
	prevDesired := state.LastDesired

	// --- Transition t in [0,1] with exponential smoothing ---
	tTarget := float32(0)
	if in.IsLocked {
		tTarget = 1
	}
	tA := clamp32(expAlpha(cfg.TransitionSpeed, dt), 0, 1)
	state.Transition += (tTarget - state.Transition) * tA
	t := smoothStep(clamp32(state.Transition, 0, 1))

	// Optionally keep ticking even when fully unlocked.
	if !cfg.AlwaysTickFreeMode {
		if t <= 0 && !in.IsLocked {
			return
		}
	}

	yawInput := in.LookYawOffset
	if cfg.InvertLockYaw {
		yawInput = -yawInput
	}
	pitchInput := in.LookPitchOffset
	if cfg.InvertLockPitch {
		pitchInput = -pitchInput
	}

	px, py, pz := in.Player.X, in.Player.Y, in.Player.Z
	cx, cy, cz := cam.Position.X, cam.Position.Y, cam.Position.Z
	camYaw := wrapAngle(cam.Yaw)
	camPitch := cam.Pitch

	// --- Orbit yaw selection ---
	// Locked mode orbits on LockedOrbitOffset; free mode passes the camera
	// yaw through OrbitYaw. Two separate angles so neither accumulates
	// error from the other mode.
	var effectiveOrbitYaw float32
	var yawForShoulder float32

	if in.IsLocked {
		if !state.WasLocked {
			// Capture the planar player->camera angle so engaging the lock
			// keeps the current framing instead of swinging around.
			dxCam := px - cx
			dzCam := pz - cz
			if dxCam*dxCam+dzCam*dzCam > eps*eps {
				state.LockedOrbitOffset = float32(math.Atan2(float64(dxCam), float64(dzCam)))
			} else {
				state.LockedOrbitOffset = camYaw
			}
			state.LockedOrbitOffset = wrapAngle(state.LockedOrbitOffset)
		}

		// Lock-mode yaw input is a per-frame delta; see the Input contract.
		mouseDeltaYaw := yawInput
		if abs32(mouseDeltaYaw) > 0.001 {
			mouseDeltaYaw = clamp32(mouseDeltaYaw, -0.1, 0.1)
			state.LockedOrbitOffset += mouseDeltaYaw
		}
		state.LockedOrbitOffset = wrapAngle(state.LockedOrbitOffset)
		effectiveOrbitYaw = state.LockedOrbitOffset
		yawForShoulder = mouseDeltaYaw
	} else {
		state.OrbitYaw = wrapAngle(camYaw)
		effectiveOrbitYaw = state.OrbitYaw
		yawForShoulder = 0
	}

	state.WasLocked = in.IsLocked

	s := float32(math.Sin(float64(effectiveOrbitYaw)))
	c := float32(math.Cos(float64(effectiveOrbitYaw)))

	// --- Desired locked pose: orbit point plus shoulder offset ---
	lockX := px - s*cfg.OrbitDistance
	lockY := py + cfg.OrbitHeight
	lockZ := pz - c*cfg.OrbitDistance

	shoulder := clamp32(cfg.ShoulderOffset-yawForShoulder*cfg.DynamicShoulderFactor, -2, 2)
	lockX += c * shoulder
	lockZ += -s * shoulder

	// --- Blend between free (current) and locked framing ---
	tx := cx + (lockX-cx)*t
	ty := cy + (lockY-cy)*t
	tz := cz + (lockZ-cz)*t

	// --- Teleport detection against last frame's desired target ---
	if teleportEnabled && hadLastDesired {
		dpx := tx - prevDesired.X
		dpy := ty - prevDesired.Y
		dpz := tz - prevDesired.Z
		jump := float32(math.Sqrt(float64(dpx*dpx + dpy*dpy + dpz*dpz)))
		if jump > cfg.TeleportDistanceThreshold {
			triggerTeleportRecovery(state, cfg)
		}
	}

	// --- Frame-independent smoothing, overridden during recovery ---
	posA := clamp32(expAlpha(cfg.PosResponsiveness, dt), 0, 1)
	rotA := clamp32(expAlpha(cfg.RotResponsiveness, dt), 0, 1)
	if teleportEnabled {
		if state.TeleportFramesRemaining > 0 {
			posA = 1
			rotA = 1
		} else if state.TeleportBlendTimer > 0 {
			posA = max32(posA, cfg.TeleportBlendMinAlpha)
			rotA = max32(rotA, cfg.TeleportBlendMinAlpha)
		}
	}

	nx := cx + (tx-cx)*posA
	ny := cy + (ty-cy)*posA
	nz := cz + (tz-cz)*posA

	// --- Enforce min distance from player (guard zero offset) ---
	{
		dxp := nx - px
		dyp := ny - py
		dzp := nz - pz
		dist := float32(math.Sqrt(math.Max(0, float64(dxp*dxp+dyp*dyp+dzp*dzp))))
		if dist > eps && dist < cfg.MinDistanceFromPlayer {
			k := cfg.MinDistanceFromPlayer / dist
			nx = px + dxp*k
			ny = py + dyp*k
			nz = pz + dzp*k
		}
	}

	// --- Ground clamp AFTER the min-distance push ---
	groundY := cfg.GroundLevel + cfg.TerrainBuffer
	if cfg.SoftGroundClamp && ny < groundY {
		groundA := clamp32(expAlpha(cfg.GroundClampHz, dt), 0, 1)
		ny += (groundY - ny) * groundA
	} else if ny < groundY {
		ny = groundY
	}

	// --- Obstacle avoidance: ray from player toward the proposed position ---
	if cfg.EnableObstacleAvoidance && caster != nil {
		rayDir := rl.Vector3{X: nx - px, Y: ny - py, Z: nz - pz}
		rayLen := float32(math.Sqrt(float64(lenSq(rayDir))))
		if rayLen > 1e-6 {
			inv := 1.0 / rayLen
			dir := rl.Vector3{X: rayDir.X * inv, Y: rayDir.Y * inv, Z: rayDir.Z * inv}
			if hit, ok := caster.Raycast(rl.Vector3{X: px, Y: py, Z: pz}, dir, rayLen); ok {
				nx = hit.Point.X + hit.Normal.X*cfg.ObstacleMargin
				ny = hit.Point.Y + hit.Normal.Y*cfg.ObstacleMargin
				nz = hit.Point.Z + hit.Normal.Z*cfg.ObstacleMargin
				// Re-apply the ground floor so the pushed camera cannot sink.
				if ny < groundY {
					ny = groundY
				}
			}
		}
	}

	// --- Orientation: aim at the player ---
	dx := px - nx
	dy := py - ny
	dz := pz - nz

	horizRaw := float32(math.Hypot(float64(dx), float64(dz)))
	horiz := max32(eps, horizRaw)

	// Near the pole yaw is ill-defined; freeze it and let pitch do the work.
	elev := float32(math.Atan2(float64(dy), float64(horiz)))
	nearVertRad := clamp32(cfg.NearVerticalDeg, 0, 89.9) * (math.Pi / 180)
	nearVertical := abs32(elev) > float32(math.Pi/2)-nearVertRad

	yawToTarget := float32(math.Atan2(float64(dx), float64(dz)))
	yawLocked := yawToTarget
	if nearVertical {
		yawLocked = camYaw
	}

	pitchLocked := -float32(math.Atan2(float64(dy), float64(horiz))) + cfg.PitchBias + pitchInput*t

	targetYaw := camYaw + wrapAngle(yawLocked-camYaw)*t

	// Pitch blend softens as the camera moves over the top of the player.
	topBlend := clamp32(horizRaw*cfg.TopBlendScale, 0, 1)
	targetPitch := camPitch + (pitchLocked-camPitch)*(t*topBlend)

	camYaw += wrapAngle(targetYaw-camYaw) * rotA
	camPitch += (targetPitch - camPitch) * rotA

	if cfg.ClampPitch {
		camPitch = clamp32(camPitch, cfg.PitchMin, cfg.PitchMax)
	}
	camYaw = wrapAngle(camYaw)

	cam.SetOrientation(camPitch, camYaw)
	cam.SetPosition(rl.Vector3{X: nx, Y: ny, Z: nz})

	if teleportEnabled {
		if state.TeleportFramesRemaining > 0 {
			state.TeleportFramesRemaining--
		} else if state.TeleportBlendTimer > 0 {
			state.TeleportBlendTimer = max32(0, state.TeleportBlendTimer-dt)
		}
	}

	state.LastDesired = rl.Vector3{X: tx, Y: ty, Z: tz}
	state.HasLastDesired = true
}

func triggerTeleportRecovery(state *State, cfg *Config) {
	if !cfg.EnableTeleportHandling {
		return
	}
	if cfg.TeleportSnapFrames > 0 && cfg.TeleportSnapFrames > state.TeleportFramesRemaining {
		state.TeleportFramesRemaining = cfg.TeleportSnapFrames
	}
	if cfg.TeleportBlendSeconds > 0 && cfg.TeleportBlendSeconds > state.TeleportBlendTimer {
		state.TeleportBlendTimer = cfg.TeleportBlendSeconds
	}
	state.FreeVel = rl.Vector3{}
}

// expAlpha converts a natural frequency (Hz) and timestep into an
// exponential smoothing factor: alpha = 1 - e^(-hz*dt).
func expAlpha(hz, dt float32) float32 {
	w := max32(0, hz)
	return float32(1.0 - math.Exp(float64(-w*max32(0, dt))))
}

func smoothStep(t float32) float32 {
	return t * t * (3.0 - 2.0*t)
}

// wrapAngle reduces an angle to (-pi, pi] for shortest-arc differences.
func wrapAngle(a float32) float32 {
	return float32(math.Remainder(float64(a), 2*math.Pi))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func lenSq(v rl.Vector3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

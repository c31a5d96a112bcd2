package follow

import "math"

// Config holds every tunable of the target-lock / free camera. Zero values
// are not useful; start from DefaultConfig and override, or load a profile.
type Config struct {
	// Orbital framing (metres)
	OrbitDistance float32
	OrbitHeight   float32

	// Safety / world
	MinDistanceFromPlayer float32
	GroundLevel           float32
	TerrainBuffer         float32

	// Global smoothing (natural frequencies, Hz)
	TransitionSpeed   float32
	PosResponsiveness float32
	RotResponsiveness float32
	MaxDeltaTimeClamp float32 // guardrail for huge frames (s)

	// Free-cam movement (world m/s)
	MoveSpeedHorizontal float32
	MoveSpeedVertical   float32
	FreeAccelHz         float32
	SprintMultiplier    float32
	PitchAffectsForward bool
	FreeVelDeadzone     float32 // velocity snap threshold

	// Free-look rotation tuning
	FreeLookSensYaw     float32 // radians per pixel
	FreeLookSensPitch   float32
	InvertFreeLookYaw   bool
	InvertFreeLookPitch bool
	InvertLockYaw       bool
	InvertLockPitch     bool

	// Target-lock tuning
	ShoulderOffset        float32 // metres; >0 shifts to the right shoulder
	DynamicShoulderFactor float32 // shoulder shift from lock-mode yaw input
	PitchBias             float32 // radians; slight down-tilt
	PitchMin              float32
	PitchMax              float32
	TopBlendScale         float32 // pitch stabilizes faster near vertical
	ClampPitch            bool
	AlwaysTickFreeMode    bool // tick even when fully unlocked (t == 0)
	NearVerticalDeg       float32

	// Ground clamp
	SoftGroundClamp bool
	GroundClampHz   float32

	// Obstacle avoidance
	EnableObstacleAvoidance bool
	ObstacleMargin          float32 // metres kept between camera and geometry

	// Cut / teleport handling
	EnableTeleportHandling    bool
	TeleportDistanceThreshold float32 // metres; larger jumps trigger the snap
	TeleportSnapFrames        int     // frames with smoothing disabled entirely
	TeleportBlendSeconds      float32 // seconds of boosted smoothing after the snap
	TeleportBlendMinAlpha     float32 // smoothing floor while recovering
}

func DefaultConfig() Config {
	return Config{
		OrbitDistance: 12.0,
		OrbitHeight:   3.0,

		MinDistanceFromPlayer: 2.0,
		GroundLevel:           0.5,
		TerrainBuffer:         1.0,

		TransitionSpeed:   3.0,
		PosResponsiveness: 10.0,
		RotResponsiveness: 12.0,
		MaxDeltaTimeClamp: 0.1,

		MoveSpeedHorizontal: 8.0,
		MoveSpeedVertical:   6.0,
		FreeAccelHz:         10.0,
		SprintMultiplier:    1.8,
		PitchAffectsForward: false,
		FreeVelDeadzone:     1e-4,

		FreeLookSensYaw:   0.0025,
		FreeLookSensPitch: 0.0020,

		ShoulderOffset:        0.6,
		DynamicShoulderFactor: 0.2,
		PitchBias:             -0.2,
		PitchMin:              -1.45,
		PitchMax:              1.45,
		TopBlendScale:         10.0,
		ClampPitch:            true,
		AlwaysTickFreeMode:    true,
		NearVerticalDeg:       2.0,

		SoftGroundClamp: true,
		GroundClampHz:   20.0,

		EnableObstacleAvoidance: false,
		ObstacleMargin:          0.5,

		EnableTeleportHandling:    true,
		TeleportDistanceThreshold: 10.0,
		TeleportSnapFrames:        2,
		TeleportBlendSeconds:      0.3,
		TeleportBlendMinAlpha:     0.65,
	}
}

// Validate clamps every field into its legal range. It is idempotent and
// safe against arbitrary garbage, including NaN and Inf from a bad
// hot-loaded profile: non-finite fields are reset to their defaults before
// the range clamps run.
func (c *Config) Validate() {
	def := DefaultConfig()
	fixNonFinite(&c.OrbitDistance, def.OrbitDistance)
	fixNonFinite(&c.OrbitHeight, def.OrbitHeight)
	fixNonFinite(&c.MinDistanceFromPlayer, def.MinDistanceFromPlayer)
	fixNonFinite(&c.GroundLevel, def.GroundLevel)
	fixNonFinite(&c.TerrainBuffer, def.TerrainBuffer)
	fixNonFinite(&c.TransitionSpeed, def.TransitionSpeed)
	fixNonFinite(&c.PosResponsiveness, def.PosResponsiveness)
	fixNonFinite(&c.RotResponsiveness, def.RotResponsiveness)
	fixNonFinite(&c.MaxDeltaTimeClamp, def.MaxDeltaTimeClamp)
	fixNonFinite(&c.MoveSpeedHorizontal, def.MoveSpeedHorizontal)
	fixNonFinite(&c.MoveSpeedVertical, def.MoveSpeedVertical)
	fixNonFinite(&c.FreeAccelHz, def.FreeAccelHz)
	fixNonFinite(&c.SprintMultiplier, def.SprintMultiplier)
	fixNonFinite(&c.FreeLookSensYaw, def.FreeLookSensYaw)
	fixNonFinite(&c.FreeLookSensPitch, def.FreeLookSensPitch)
	fixNonFinite(&c.ShoulderOffset, def.ShoulderOffset)
	fixNonFinite(&c.DynamicShoulderFactor, def.DynamicShoulderFactor)
	fixNonFinite(&c.PitchBias, def.PitchBias)
	fixNonFinite(&c.PitchMin, def.PitchMin)
	fixNonFinite(&c.PitchMax, def.PitchMax)
	fixNonFinite(&c.TopBlendScale, def.TopBlendScale)
	fixNonFinite(&c.NearVerticalDeg, def.NearVerticalDeg)
	fixNonFinite(&c.GroundClampHz, def.GroundClampHz)
	fixNonFinite(&c.ObstacleMargin, def.ObstacleMargin)
	fixNonFinite(&c.TeleportDistanceThreshold, def.TeleportDistanceThreshold)
	fixNonFinite(&c.TeleportBlendSeconds, def.TeleportBlendSeconds)
	fixNonFinite(&c.TeleportBlendMinAlpha, def.TeleportBlendMinAlpha)

	// Lengths are non-negative.
	c.OrbitDistance = max32(0, c.OrbitDistance)
	c.MinDistanceFromPlayer = max32(0, c.MinDistanceFromPlayer)
	c.TerrainBuffer = max32(0, c.TerrainBuffer)
	c.MaxDeltaTimeClamp = clamp32(c.MaxDeltaTimeClamp, 1e-4, 0.5)

	// Smoothing frequencies stay non-negative.
	c.TransitionSpeed = max32(0, c.TransitionSpeed)
	c.PosResponsiveness = max32(0, c.PosResponsiveness)
	c.RotResponsiveness = max32(0, c.RotResponsiveness)
	c.FreeAccelHz = max32(0, c.FreeAccelHz)
	c.GroundClampHz = max32(0, c.GroundClampHz)

	// Pitch limits: min <= 0 <= max, both away from the poles.
	if c.PitchMin > c.PitchMax {
		c.PitchMin, c.PitchMax = c.PitchMax, c.PitchMin
	}
	almostHalfPi := float32(0.98 * (math.Pi * 0.5))
	c.PitchMin = clamp32(c.PitchMin, -almostHalfPi, 0)
	c.PitchMax = clamp32(c.PitchMax, 0, almostHalfPi)

	c.NearVerticalDeg = clamp32(c.NearVerticalDeg, 0, 89.9)

	c.SprintMultiplier = max32(1, c.SprintMultiplier)

	if c.FreeVelDeadzone < 0 || math.IsNaN(float64(c.FreeVelDeadzone)) || math.IsInf(float64(c.FreeVelDeadzone), 0) {
		c.FreeVelDeadzone = 1e-4
	}

	c.DynamicShoulderFactor = clamp32(c.DynamicShoulderFactor, -1, 1)

	c.TeleportDistanceThreshold = max32(0, c.TeleportDistanceThreshold)
	if c.TeleportSnapFrames < 0 {
		c.TeleportSnapFrames = 0
	}
	c.TeleportBlendSeconds = clamp32(c.TeleportBlendSeconds, 0, 1)
	c.TeleportBlendMinAlpha = clamp32(c.TeleportBlendMinAlpha, 0, 1)
}

func fixNonFinite(v *float32, def float32) {
	f := float64(*v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		*v = def
	}
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

package follow

import (
	"orbit3d/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controller owns a Config and State pair and sequences the target-lock
// update with the free controller. The engine keeps one per active camera.
type Controller struct {
	cfg   Config
	state State

	// Set on the unlocked->locked edge to absorb one frame of stale input.
	suppressNextUpdate bool
}

func NewController(cfg Config) *Controller {
	cfg.Validate()
	return &Controller{cfg: cfg}
}

func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) SetConfig(cfg Config) {
	cfg.Validate()
	c.cfg = cfg
}

func (c *Controller) State() *State { return &c.state }

func (c *Controller) ResetState() {
	c.state.Reset()
}

// Update advances the camera one frame. While the lock transition is fully
// disengaged the free-look and free-move passes run after the follow
// update.
func (c *Controller) Update(cam *camera.Camera, in Input, move MoveInput, dt float32, caster Raycaster) {
	if c.suppressNextUpdate {
		c.suppressNextUpdate = false
		return
	}

	// Handoff: kill free-cam momentum when the lock engages.
	if in.IsLocked && !c.state.WasLocked {
		c.state.FreeVel = rl.Vector3{}
		c.suppressNextUpdate = true
	}

	Update(cam, &c.state, &c.cfg, in, dt, caster)

	if !in.IsLocked && c.state.Transition <= 0 {
		FreeLook(cam, &c.cfg, move)
		FreeMove(cam, &c.state, &c.cfg, move, dt)
	}

	c.state.WasLocked = in.IsLocked
}

package follow

import (
	"testing"

	"orbit3d/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestControllerLockEdgeHandoff(t *testing.T) {
	ctrl := NewController(DefaultConfig())
	ctrl.State().FreeVel = rl.Vector3{X: 5, Y: 1, Z: -3}
	cam := camera.New()
	cam.SetPosition(rl.Vector3{X: -8, Y: 4, Z: 6})

	in := Input{Player: rl.Vector3{}, IsLocked: true}

	// Lock engages: momentum is dropped and the frame still runs.
	ctrl.Update(cam, in, MoveInput{}, tickDt, nil)
	if ctrl.State().FreeVel != (rl.Vector3{}) {
		t.Errorf("free velocity survived lock-on: %+v", ctrl.State().FreeVel)
	}
	if ctrl.State().Transition <= 0 {
		t.Errorf("transition did not start on the lock frame: %v", ctrl.State().Transition)
	}
	posAfterFirst := cam.Position

	// The frame after the edge is absorbed whole.
	ctrl.Update(cam, in, MoveInput{MouseDeltaX: 500}, tickDt, nil)
	if cam.Position != posAfterFirst {
		t.Errorf("suppressed frame moved the camera: %+v", cam.Position)
	}

	// Normal operation resumes on the next frame.
	ctrl.Update(cam, in, MoveInput{}, tickDt, nil)
	if cam.Position == posAfterFirst {
		t.Error("camera did not resume moving after the suppressed frame")
	}
}

func TestControllerFreeModeRuns(t *testing.T) {
	ctrl := NewController(DefaultConfig())
	cam := camera.New()
	start := cam.Position

	move := MoveInput{Forward: true, MouseDeltaX: 50}
	for i := 0; i < 60; i++ {
		ctrl.Update(cam, Input{}, move, tickDt, nil)
	}

	if cam.Position == start {
		t.Error("free move never advanced the camera")
	}
	if cam.Yaw == 0 {
		t.Error("free look never rotated the camera")
	}
}

func TestControllerSkipsFreeModeDuringTransition(t *testing.T) {
	ctrl := NewController(DefaultConfig())
	cam := camera.New()
	cam.SetPosition(rl.Vector3{X: -8, Y: 4, Z: 6})

	locked := Input{Player: rl.Vector3{}, IsLocked: true}
	for i := 0; i < 30; i++ {
		ctrl.Update(cam, locked, MoveInput{}, tickDt, nil)
	}

	// Unlock: the transition is still winding down, so free move must not
	// fight the blend.
	velBefore := ctrl.State().FreeVel
	ctrl.Update(cam, Input{Player: rl.Vector3{}}, MoveInput{Forward: true}, tickDt, nil)
	if ctrl.State().Transition <= 0 {
		t.Fatalf("transition collapsed immediately: %v", ctrl.State().Transition)
	}
	if ctrl.State().FreeVel != velBefore {
		t.Errorf("free move ran mid-transition: %+v", ctrl.State().FreeVel)
	}
}

func TestControllerSetConfigValidates(t *testing.T) {
	ctrl := NewController(DefaultConfig())
	cfg := DefaultConfig()
	cfg.OrbitDistance = -5
	ctrl.SetConfig(cfg)
	if got := ctrl.Config().OrbitDistance; got < 0 {
		t.Errorf("SetConfig kept an invalid orbit distance: %v", got)
	}
}

package follow

import (
	"orbit3d/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Preset is a named camera pose plus FOV that can be applied in one call.
type Preset struct {
	Name       string
	Position   rl.Vector3
	Pitch      float32 // radians
	Yaw        float32 // radians
	FovDegrees float32
}

// DefaultPresets returns the three built-in camera presets.
func DefaultPresets() [3]Preset {
	return [3]Preset{
		{Name: "orbit", Position: rl.Vector3{X: -8, Y: 0, Z: 6}, Pitch: -0.1, Yaw: 0, FovDegrees: 60},
		{Name: "overview", Position: rl.Vector3{X: 0, Y: 18, Z: -12}, Pitch: -1.2, Yaw: 0, FovDegrees: 75},
		{Name: "cinematic", Position: rl.Vector3{X: 15, Y: 5, Z: 6}, Pitch: -0.25, Yaw: -1.2, FovDegrees: 55},
	}
}

// ApplyPreset overwrites the camera pose and sets both the current and
// target FOV, so no smoothing runs afterwards. Follow state is untouched.
func ApplyPreset(cam *camera.Camera, p Preset) {
	cam.SetPosition(p.Position)
	cam.SetOrientation(p.Pitch, p.Yaw)
	cam.SetFov(p.FovDegrees)
}

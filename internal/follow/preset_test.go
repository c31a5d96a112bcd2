package follow

import (
	"testing"

	"orbit3d/internal/camera"
)

func TestApplyPreset(t *testing.T) {
	cam := camera.New()
	cam.SetFovTarget(90)

	presets := DefaultPresets()
	ApplyPreset(cam, presets[2])

	if cam.Position != presets[2].Position {
		t.Errorf("position = %+v, want %+v", cam.Position, presets[2].Position)
	}
	if cam.Pitch != presets[2].Pitch {
		t.Errorf("pitch = %v, want %v", cam.Pitch, presets[2].Pitch)
	}
	// Both current and target FOV land on the preset, so no easing follows.
	if cam.Fov() != presets[2].FovDegrees || cam.FovTarget() != presets[2].FovDegrees {
		t.Errorf("fov = (%v, %v), want %v", cam.Fov(), cam.FovTarget(), presets[2].FovDegrees)
	}
}

func TestDefaultPresetsDistinct(t *testing.T) {
	presets := DefaultPresets()
	seen := map[string]bool{}
	for _, p := range presets {
		if p.Name == "" {
			t.Error("preset with empty name")
		}
		if seen[p.Name] {
			t.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

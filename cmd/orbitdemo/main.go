package main

import (
	"fmt"
	"log"

	"orbit3d/internal/camera"
	"orbit3d/internal/follow"
	"orbit3d/internal/physics"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenW = 1280
	screenH = 720

	profilePath = "assets/camera_profiles.ini"
	profileName = "default"

	playerSpeed = 6.0
)

func main() {
	rl.InitWindow(screenW, screenH, "orbit3d - camera follow demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	cfg := follow.DefaultConfig()
	if loaded, ok := follow.LoadProfile(profilePath, profileName); ok {
		cfg = loaded
	} else {
		log.Printf("no camera profile at %s, using defaults", profilePath)
	}
	cfg.EnableObstacleAvoidance = true
	ctrl := follow.NewController(cfg)

	world := physics.NewWorld()
	world.AddBox(physics.Box{Center: rl.Vector3{X: -6, Y: 2, Z: -4}, Size: rl.Vector3{X: 2, Y: 4, Z: 2}})
	world.AddBox(physics.Box{Center: rl.Vector3{X: 5, Y: 1.5, Z: 7}, Size: rl.Vector3{X: 3, Y: 3, Z: 3}})
	world.AddBox(physics.Box{Center: rl.Vector3{X: 10, Y: 3, Z: -8}, Size: rl.Vector3{X: 2, Y: 6, Z: 6}})
	world.AddSphere(physics.Sphere{Center: rl.Vector3{X: -10, Y: 2, Z: 8}, Radius: 2})
	caster := follow.RaycastFunc(func(origin, dir rl.Vector3, maxDist float32) (follow.Hit, bool) {
		hit, ok := world.Raycast(origin, dir, maxDist)
		return follow.Hit{Point: hit.Point, Normal: hit.Normal, Distance: hit.Distance}, ok
	})

	presets := follow.DefaultPresets()
	cam := camera.NewAt(presets[0].Position, presets[0].Pitch, presets[0].Yaw, presets[0].FovDegrees)

	watcher, err := follow.WatchProfile(profilePath, profileName)
	if err != nil {
		log.Printf("profile watcher disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	player := rl.Vector3{X: 0, Y: 1, Z: 0}
	locked := true
	showPanel := true

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		if watcher != nil {
			select {
			case reloaded := <-watcher.Configs():
				reloaded.EnableObstacleAvoidance = true
				ctrl.SetConfig(reloaded)
				log.Println("camera profile reloaded")
			default:
			}
		}

		if rl.IsKeyPressed(rl.KeyTab) {
			locked = !locked
		}
		if rl.IsKeyPressed(rl.KeyF1) {
			showPanel = !showPanel
		}
		for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree} {
			if rl.IsKeyPressed(key) {
				follow.ApplyPreset(cam, presets[i])
			}
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.SetFovTarget(cam.FovTarget() - wheel*5)
		}

		var move follow.MoveInput
		if locked {
			// WASD drives the player while the camera follows.
			if rl.IsKeyDown(rl.KeyW) {
				player.Z += playerSpeed * dt
			}
			if rl.IsKeyDown(rl.KeyS) {
				player.Z -= playerSpeed * dt
			}
			if rl.IsKeyDown(rl.KeyA) {
				player.X -= playerSpeed * dt
			}
			if rl.IsKeyDown(rl.KeyD) {
				player.X += playerSpeed * dt
			}
			if rl.IsKeyPressed(rl.KeyT) {
				// Teleport cut to exercise the recovery path.
				player.X += 60
			}
		} else {
			move = follow.MoveInput{
				Forward:  rl.IsKeyDown(rl.KeyW),
				Backward: rl.IsKeyDown(rl.KeyS),
				Left:     rl.IsKeyDown(rl.KeyA),
				Right:    rl.IsKeyDown(rl.KeyD),
				Up:       rl.IsKeyDown(rl.KeyE),
				Down:     rl.IsKeyDown(rl.KeyQ),
				Sprint:   rl.IsKeyDown(rl.KeyLeftShift),
				Slow:     rl.IsKeyDown(rl.KeyLeftControl),
			}
			if rl.IsMouseButtonDown(rl.MouseRightButton) {
				delta := rl.GetMouseDelta()
				move.MouseDeltaX = delta.X
				move.MouseDeltaY = delta.Y
			}
		}

		in := follow.Input{Player: player, IsLocked: locked}
		ctrl.Update(cam, in, move, dt, caster)
		cam.UpdateFov(dt)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 18, 24, 255))

		rl.BeginMode3D(cam.Camera3D())
		rl.DrawGrid(40, 1)
		rl.DrawCube(player, 1, 2, 1, rl.SkyBlue)
		rl.DrawCubeWires(player, 1, 2, 1, rl.DarkBlue)
		for _, box := range world.Boxes() {
			rl.DrawCubeV(box.Center, box.Size, rl.Gray)
			rl.DrawCubeWiresV(box.Center, box.Size, rl.DarkGray)
		}
		rl.EndMode3D()

		drawHUD(cam, locked)
		if showPanel {
			drawTuningPanel(ctrl)
		}

		rl.EndDrawing()
	}
}

func drawHUD(cam *camera.Camera, locked bool) {
	mode := "FREE (WASD+QE move, RMB look)"
	if locked {
		mode = "LOCKED (WASD moves player, T teleports)"
	}
	rl.DrawText(mode, 10, 10, 18, rl.RayWhite)
	rl.DrawText("Tab: toggle lock  1/2/3: presets  wheel: zoom  F1: panel", 10, 32, 16, rl.LightGray)
	rl.DrawText(fmt.Sprintf("fov %.1f  yaw %.2f  pitch %.2f", cam.Fov(), cam.Yaw, cam.Pitch), 10, 52, 16, rl.LightGray)
}

func drawTuningPanel(ctrl *follow.Controller) {
	cfg := ctrl.Config()

	x := float32(screenW - 310)
	y := float32(10)
	row := func() rl.Rectangle {
		r := rl.NewRectangle(x+110, y, 150, 18)
		y += 24
		return r
	}

	gui.GroupBox(rl.NewRectangle(x-10, 4, 310, 232), "camera tuning")

	cfg.OrbitDistance = gui.Slider(row(), "distance", fmt.Sprintf("%.1f", cfg.OrbitDistance), cfg.OrbitDistance, 2, 30)
	cfg.OrbitHeight = gui.Slider(row(), "height", fmt.Sprintf("%.1f", cfg.OrbitHeight), cfg.OrbitHeight, 0, 15)
	cfg.ShoulderOffset = gui.Slider(row(), "shoulder", fmt.Sprintf("%.2f", cfg.ShoulderOffset), cfg.ShoulderOffset, -2, 2)
	cfg.PitchBias = gui.Slider(row(), "pitch bias", fmt.Sprintf("%.2f", cfg.PitchBias), cfg.PitchBias, -1, 1)
	cfg.TransitionSpeed = gui.Slider(row(), "transition", fmt.Sprintf("%.1f", cfg.TransitionSpeed), cfg.TransitionSpeed, 0, 10)
	cfg.PosResponsiveness = gui.Slider(row(), "pos hz", fmt.Sprintf("%.1f", cfg.PosResponsiveness), cfg.PosResponsiveness, 0, 30)
	cfg.RotResponsiveness = gui.Slider(row(), "rot hz", fmt.Sprintf("%.1f", cfg.RotResponsiveness), cfg.RotResponsiveness, 0, 30)
	cfg.SoftGroundClamp = gui.CheckBox(rl.NewRectangle(x, y, 18, 18), "soft ground clamp", cfg.SoftGroundClamp)
	y += 24
	cfg.EnableObstacleAvoidance = gui.CheckBox(rl.NewRectangle(x, y, 18, 18), "obstacle avoidance", cfg.EnableObstacleAvoidance)

	ctrl.SetConfig(cfg)
}

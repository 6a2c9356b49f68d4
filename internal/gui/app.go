// Package gui runs the raylib window frontend: keyboard steering, the 3D
// chase view and a small HUD.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/marble/internal/config"
	"github.com/san-kum/marble/internal/input"
	"github.com/san-kum/marble/internal/scene"
	"github.com/san-kum/marble/internal/sim"
)

// Keyboard steers with the arrow keys or A/D.
type Keyboard struct{}

func (Keyboard) Held(a input.Action) bool {
	switch a {
	case input.SteerLeft:
		return rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA)
	case input.SteerRight:
		return rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD)
	}
	return false
}

type App struct {
	Cfg    *config.Config
	Loop   *sim.Loop
	Camera rl.Camera3D

	floorModel rl.Model
	wallModel  rl.Model
}

func initWindow() {
	rl.InitWindow(1024, 768, "Marble Run")
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyQ)
}

// NewApp bootstraps the scene from cfg and builds the track meshes. The
// window must be open before calling it.
func NewApp(cfg *config.Config) *App {
	a := &App{
		Cfg: cfg,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 0, 1),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
	}
	a.reset()

	t := cfg.Track
	a.floorModel = rl.LoadModelFromMesh(rl.GenMeshCube(
		float32(t.Width), float32(t.FloorThickness), float32(t.Depth)))
	a.wallModel = rl.LoadModelFromMesh(rl.GenMeshCube(
		float32(t.WallThickness), float32(t.WallHeight), float32(t.Depth)))

	return a
}

func (a *App) reset() {
	a.Loop = &sim.Loop{Scene: scene.Bootstrap(a.Cfg), Input: Keyboard{}}
	a.syncCamera()
}

// syncCamera copies the simulated camera pose into the raylib camera.
func (a *App) syncCamera() {
	s := a.Loop.Scene
	p := s.Camera.Position
	look := s.Follow.LookTarget(*s.Camera)
	a.Camera.Position = rl.NewVector3(float32(p.X()), float32(p.Y()), float32(p.Z()))
	a.Camera.Target = rl.NewVector3(float32(look.X()), float32(look.Y()), float32(look.Z()))
}

func (a *App) unload() {
	rl.UnloadModel(a.floorModel)
	rl.UnloadModel(a.wallModel)
}

// Run opens the window and drives the simulation until the window closes.
func Run(cfg *config.Config) {
	initWindow()
	defer rl.CloseWindow()

	a := NewApp(cfg)
	defer a.unload()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyR) {
			a.reset()
		}
		a.Loop.Step(float64(rl.GetFrameTime()))
		a.syncCamera()
		a.render()
	}
}

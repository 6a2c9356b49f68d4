package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/marble/internal/engine"
)

var (
	ColBg     = rl.NewColor(150, 190, 220, 255)
	ColFloor  = rl.NewColor(120, 120, 125, 255)
	ColWall   = rl.NewColor(90, 90, 95, 255)
	ColMarble = rl.NewColor(51, 204, 51, 255)
	ColText   = rl.NewColor(30, 30, 30, 255)
)

var slopeAxis = rl.NewVector3(1, 0, 0)

func (a *App) render() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	a.drawTrack()
	a.drawMarble()
	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawTrack() {
	s := a.Loop.Scene
	slope := float32(a.Cfg.Track.SlopeDeg)
	one := rl.NewVector3(1, 1, 1)

	rl.DrawModelEx(a.floorModel, bodyPos(s.Track.Floor), slopeAxis, slope, one, ColFloor)
	rl.DrawModelEx(a.wallModel, bodyPos(s.Track.LeftWall), slopeAxis, slope, one, ColWall)
	rl.DrawModelEx(a.wallModel, bodyPos(s.Track.RightWall), slopeAxis, slope, one, ColWall)
}

func (a *App) drawMarble() {
	m := a.Loop.Scene.Marble()
	if m == nil {
		return
	}
	rl.DrawSphere(bodyPos(m), float32(m.Radius), ColMarble)
}

func (a *App) drawHUD() {
	if m := a.Loop.Scene.Marble(); m != nil {
		speed := m.Velocity.Len()
		rl.DrawText(fmt.Sprintf("speed %5.2f m/s", speed), 10, 34, 20, ColText)
		rl.DrawText(fmt.Sprintf("z %6.2f", m.Position.Z()), 10, 56, 20, ColText)
	}
	rl.DrawText("arrows/AD steer   R reset   Q quit", 10, 740, 20, ColText)
	rl.DrawFPS(10, 10)
}

func bodyPos(b *engine.Body) rl.Vector3 {
	return rl.NewVector3(
		float32(b.Position.X()),
		float32(b.Position.Y()),
		float32(b.Position.Z()),
	)
}

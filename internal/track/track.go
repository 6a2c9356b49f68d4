package track

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/marble/internal/engine"
)

// Body tags used for role lookup by the controllers and renderers.
const (
	TagFloor     = "floor"
	TagWallLeft  = "wall-left"
	TagWallRight = "wall-right"
)

// Params describes the sloped channel. SlopeDeg rotates all pieces about
// the X axis so the +Z end sits lower.
type Params struct {
	Width          float64
	Depth          float64
	FloorThickness float64
	WallHeight     float64
	WallThickness  float64
	SlopeDeg       float64
	FloorFriction  float64
}

// DefaultParams returns the stock channel: an 8 wide, 20 deep floor with
// low rails and a 5 degree grade.
func DefaultParams() Params {
	return Params{
		Width:          8.0,
		Depth:          20.0,
		FloorThickness: 0.4,
		WallHeight:     1.0,
		WallThickness:  0.2,
		SlopeDeg:       5.0,
		FloorFriction:  0.4,
	}
}

func (p *Params) applyDefaults() {
	d := DefaultParams()
	if p.Width <= 0 {
		p.Width = d.Width
	}
	if p.Depth <= 0 {
		p.Depth = d.Depth
	}
	if p.FloorThickness <= 0 {
		p.FloorThickness = d.FloorThickness
	}
	if p.WallHeight <= 0 {
		p.WallHeight = d.WallHeight
	}
	if p.WallThickness <= 0 {
		p.WallThickness = d.WallThickness
	}
}

// Pieces holds the three static bodies the builder created.
type Pieces struct {
	Floor     *engine.Body
	LeftWall  *engine.Body
	RightWall *engine.Body
}

// Build adds the floor and both side walls to w. All three share the same
// slope rotation; wall centers sit half a wall thickness outside the floor
// edges so their inner faces are flush with it.
func Build(w *engine.World, p Params) Pieces {
	p.applyDefaults()

	rot := mgl64.QuatRotate(mgl64.DegToRad(p.SlopeDeg), mgl64.Vec3{1, 0, 0})
	wallX := p.Width/2 + p.WallThickness/2

	floor := w.AddBox(engine.BoxDef{
		Tag:         TagFloor,
		Rotation:    rot,
		HalfExtents: mgl64.Vec3{p.Width / 2, p.FloorThickness / 2, p.Depth / 2},
		Friction:    p.FloorFriction,
	})
	left := w.AddBox(engine.BoxDef{
		Tag:         TagWallLeft,
		Position:    mgl64.Vec3{-wallX, p.WallHeight / 2, 0},
		Rotation:    rot,
		HalfExtents: mgl64.Vec3{p.WallThickness / 2, p.WallHeight / 2, p.Depth / 2},
	})
	right := w.AddBox(engine.BoxDef{
		Tag:         TagWallRight,
		Position:    mgl64.Vec3{wallX, p.WallHeight / 2, 0},
		Rotation:    rot,
		HalfExtents: mgl64.Vec3{p.WallThickness / 2, p.WallHeight / 2, p.Depth / 2},
	})

	return Pieces{Floor: floor, LeftWall: left, RightWall: right}
}

// Package car holds the player-controlled vehicle.
package car

import (
	"github.com/golangdaddy/autobahx/geom"
	"github.com/golangdaddy/autobahx/input"
	"github.com/golangdaddy/autobahx/road"
)

// Player is the vehicle steered by the user. Its size never changes.
type Player struct {
	Pos  geom.Vector2i
	Size geom.Vector2i
}

// NewPlayer places a player of the given size at the bottom centre of the
// corridor.
func NewPlayer(size geom.Vector2i, b road.Boundary, stageHeight int) *Player {
	return &Player{
		Pos: geom.Vector2i{
			X: b.Center() - size.X/2,
			Y: stageHeight - size.Y,
		},
		Size: size,
	}
}

// Rect returns the player's bounding box.
func (p *Player) Rect() geom.Rect {
	return geom.Rect{Pos: p.Pos, Size: p.Size}
}

// Advance moves the player one tick according to the held directions and
// clamps the result inside the corridor and the stage. Right wins over left
// and up wins over down when both are held.
func (p *Player) Advance(in *input.State, b road.Boundary, xSpeed, ySpeed, stageHeight int) {
	xDirection := 0
	if in.IsPressed(input.MoveRight) {
		xDirection = 1
	} else if in.IsPressed(input.MoveLeft) {
		xDirection = -1
	}

	yDirection := 0
	if in.IsPressed(input.MoveUp) {
		yDirection = -1
	} else if in.IsPressed(input.MoveDown) {
		yDirection = 1
	}

	p.Pos.X += xSpeed * xDirection
	p.Pos.Y += ySpeed * yDirection
	p.Clamp(b, stageHeight)
}

// Clamp pulls the player back inside the corridor horizontally and the
// stage vertically. Clamping an already valid position changes nothing.
func (p *Player) Clamp(b road.Boundary, stageHeight int) {
	p.Pos.X = geom.Clamp(p.Pos.X, b.Left, b.Right-p.Size.X)
	p.Pos.Y = geom.Clamp(p.Pos.Y, 0, stageHeight-p.Size.Y)
}

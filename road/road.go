package road

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/autobahx/geom"
)

// LineWidth is the width of the corridor edge lines in pixels.
const LineWidth = 2

// ErrInvalidConfiguration is returned for a stage or lane layout that
// cannot produce a corridor.
var ErrInvalidConfiguration = errors.New("invalid road configuration")

// Boundary is the horizontal extent of the drivable corridor.
type Boundary struct {
	Left  int
	Right int
}

// Compute centres a corridor of laneCount lanes, each laneWidth pixels wide,
// on a stage stageWidth pixels wide.
func Compute(stageWidth, laneCount, laneWidth int) (Boundary, error) {
	if stageWidth <= 0 {
		return Boundary{}, fmt.Errorf("%w: stage width %d must be positive", ErrInvalidConfiguration, stageWidth)
	}
	if laneCount <= 0 {
		return Boundary{}, fmt.Errorf("%w: lane count %d must be positive", ErrInvalidConfiguration, laneCount)
	}
	if laneWidth <= 0 {
		return Boundary{}, fmt.Errorf("%w: lane width %d must be positive", ErrInvalidConfiguration, laneWidth)
	}

	half := (laneCount * laneWidth) / 2
	return Boundary{
		Left:  stageWidth/2 - half,
		Right: stageWidth/2 + half,
	}, nil
}

// Width returns the corridor width in pixels.
func (b Boundary) Width() int {
	return b.Right - b.Left
}

// Center returns the X coordinate halfway between the corridor edges.
func (b Boundary) Center() int {
	return (b.Left + b.Right) / 2
}

// LaneX returns the left edge of the given lane.
// Lane 0 sits against the left boundary.
func (b Boundary) LaneX(lane, laneWidth int) int {
	return b.Left + lane*laneWidth
}

// Lines returns the two edge lines drawn just outside the corridor, left
// then right, each spanning the full stage height.
func (b Boundary) Lines(stageHeight int) [2]geom.Rect {
	return [2]geom.Rect{
		geom.NewRect(b.Left-LineWidth, 0, LineWidth, stageHeight),
		geom.NewRect(b.Right, 0, LineWidth, stageHeight),
	}
}

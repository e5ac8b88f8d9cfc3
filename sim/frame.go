package sim

import (
	"image/color"

	"github.com/golangdaddy/autobahx/geom"
)

// Kind tells the renderer what a shape represents.
type Kind int

const (
	KindBoundary Kind = iota
	KindPlayer
	KindTraffic
)

// Shape is one rectangle to draw with its intended colour.
type Shape struct {
	Rect  geom.Rect
	Color color.RGBA
	Kind  Kind
}

// Frame is everything the renderer needs for one tick: the boundary lines,
// the player, then every traffic car in pool order.
type Frame struct {
	Shapes []Shape
	State  State
	Tick   uint64
}

var (
	Background    = color.RGBA{0, 0, 0, 255}
	BoundaryColor = color.RGBA{255, 255, 255, 255}
	PlayerColor   = color.RGBA{255, 255, 255, 255}

	// Traffic colours cycle by lane.
	TrafficColors = []color.RGBA{
		{255, 100, 100, 255}, // Red
		{100, 255, 100, 255}, // Green
		{100, 100, 255, 255}, // Blue
		{255, 255, 100, 255}, // Yellow
		{255, 100, 255, 255}, // Magenta
	}
)

func trafficColor(lane int) color.RGBA {
	return TrafficColors[lane%len(TrafficColors)]
}

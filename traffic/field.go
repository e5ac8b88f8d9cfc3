// Package traffic owns the fixed pool of obstacle cars scrolling down the
// corridor.
package traffic

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/autobahx/geom"
	"github.com/golangdaddy/autobahx/road"
)

// ErrInvalidLayout is returned by NewField for a layout that cannot keep every
// car in a lane.
var ErrInvalidLayout = errors.New("invalid traffic layout")

// Car is an obstacle vehicle. Its X position is derived from its lane.
type Car struct {
	Y    int
	Lane int
}

// Layout describes the corridor and pool the field operates in.
type Layout struct {
	Boundary    road.Boundary
	LaneCount   int
	LaneWidth   int
	StageHeight int
	CarSize     geom.Vector2i
	ScrollSpeed int // pixels per tick
	PoolSize    int
	ReentryMinY int // inclusive
	ReentryMaxY int // exclusive
}

// Field is the pool of traffic cars. The number of cars never changes after
// construction: cars leaving the stage are recycled in place.
type Field struct {
	layout Layout
	cars   []Car
	src    Source
}

// NewField spawns layout.PoolSize cars staggered above the stage.
// A nil src uses a clock-seeded source.
func NewField(layout Layout, src Source) (*Field, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource()
	}
	f := &Field{
		layout: layout,
		cars:   make([]Car, layout.PoolSize),
		src:    src,
	}
	for i := range f.cars {
		f.respawn(&f.cars[i])
	}
	return f, nil
}

func (l Layout) validate() error {
	switch {
	case l.LaneCount <= 0:
		return fmt.Errorf("%w: lane count %d must be positive", ErrInvalidLayout, l.LaneCount)
	case l.LaneWidth <= 0:
		return fmt.Errorf("%w: lane width %d must be positive", ErrInvalidLayout, l.LaneWidth)
	case l.PoolSize < 0:
		return fmt.Errorf("%w: pool size %d is negative", ErrInvalidLayout, l.PoolSize)
	case l.ReentryMaxY < l.ReentryMinY:
		return fmt.Errorf("%w: re-entry band [%d, %d) is empty", ErrInvalidLayout, l.ReentryMinY, l.ReentryMaxY)
	}
	return nil
}

// respawn gives a car a fresh lane and a start position in the re-entry band.
func (f *Field) respawn(c *Car) {
	c.Lane = intn(f.src, f.layout.LaneCount)
	band := f.layout.ReentryMaxY - f.layout.ReentryMinY
	c.Y = f.layout.ReentryMinY
	if band > 0 {
		c.Y += intn(f.src, band)
	}
}

// Advance scrolls every car down by the scroll speed and recycles those that
// have left the stage. It returns the number of cars recycled.
func (f *Field) Advance() int {
	recycled := 0
	for i := range f.cars {
		c := &f.cars[i]
		c.Y += f.layout.ScrollSpeed
		if c.Y > f.layout.StageHeight {
			f.respawn(c)
			recycled++
		}
	}
	return recycled
}

// Len returns the pool size.
func (f *Field) Len() int {
	return len(f.cars)
}

// Cars returns a copy of the pool in iteration order.
func (f *Field) Cars() []Car {
	out := make([]Car, len(f.cars))
	copy(out, f.cars)
	return out
}

// Rect returns the bounding box of c.
func (f *Field) Rect(c Car) geom.Rect {
	return geom.Rect{
		Pos: geom.Vector2i{
			X: f.layout.Boundary.LaneX(c.Lane, f.layout.LaneWidth),
			Y: c.Y,
		},
		Size: f.layout.CarSize,
	}
}

// Rects returns the bounding boxes of every car in pool order.
func (f *Field) Rects() []geom.Rect {
	out := make([]geom.Rect, len(f.cars))
	for i, c := range f.cars {
		out[i] = f.Rect(c)
	}
	return out
}

// Place overwrites the car at index i. Used to stage scenarios.
func (f *Field) Place(i int, c Car) {
	f.cars[i] = c
}

// Package config centralizes the fixed simulation constants and the
// runtime settings of the desktop shell.
package config

// Stage dimensions in logical pixels.
const (
	StageWidth  = 800
	StageHeight = 600
)

// Lane corridor
const (
	LaneCount = 5
	LaneWidth = 40
)

// Player
const (
	PlayerWidth  = 30
	PlayerHeight = 60
	XSpeed       = 2 // pixels per tick
	YSpeed       = 2 // pixels per tick
)

// Traffic
const (
	ScrollSpeed     = 2 // pixels per tick, equal for every car
	TrafficPoolSize = 8
	ReentryMinY     = -800 // inclusive
	ReentryMaxY     = -400 // exclusive
)

// Shell
const (
	WindowTitle = "autobahx"
	DefaultTPS  = 60
)

// Package sim runs the lane-avoidance simulation: one Step per frame
// resolves input, moves the player and the traffic, tests for contact and
// drives the playing/paused/game over state machine.
package sim

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/autobahx/car"
	"github.com/golangdaddy/autobahx/config"
	"github.com/golangdaddy/autobahx/geom"
	"github.com/golangdaddy/autobahx/input"
	"github.com/golangdaddy/autobahx/road"
	"github.com/golangdaddy/autobahx/traffic"
	"github.com/rs/zerolog"
)

// ErrQuit is returned by Step when the quit action was seen. The caller
// must stop its loop.
var ErrQuit = errors.New("quit requested")

// Recorder observes what happens during a session.
type Recorder interface {
	Ticked()
	Recycled(n int)
	Collided()
	StateChanged(from, to State)
}

type nopRecorder struct{}

func (nopRecorder) Ticked()                 {}
func (nopRecorder) Recycled(int)            {}
func (nopRecorder) Collided()               {}
func (nopRecorder) StateChanged(_, _ State) {}

// Options configures a Session. A zero field means "use the default" from
// the config package, so LaneCount: 0 builds the standard five-lane corridor.
// Negative sizes are passed through and rejected by NewSession. The re-entry
// band is defaulted only when both of its ends are zero.
type Options struct {
	StageWidth  int
	StageHeight int
	LaneCount   int
	LaneWidth   int
	PlayerSize  geom.Vector2i
	XSpeed      int
	YSpeed      int
	ScrollSpeed int
	PoolSize    int
	ReentryMinY int
	ReentryMaxY int

	Source   traffic.Source // nil seeds from the clock
	Bindings input.Bindings // nil uses input.DefaultBindings
	Recorder Recorder
	Logger   *zerolog.Logger
}

func (o *Options) setDefaults() {
	if o.StageWidth == 0 {
		o.StageWidth = config.StageWidth
	}
	if o.StageHeight == 0 {
		o.StageHeight = config.StageHeight
	}
	if o.LaneCount == 0 {
		o.LaneCount = config.LaneCount
	}
	if o.LaneWidth == 0 {
		o.LaneWidth = config.LaneWidth
	}
	if o.PlayerSize == (geom.Vector2i{}) {
		o.PlayerSize = geom.Vector2i{X: config.PlayerWidth, Y: config.PlayerHeight}
	}
	if o.XSpeed == 0 {
		o.XSpeed = config.XSpeed
	}
	if o.YSpeed == 0 {
		o.YSpeed = config.YSpeed
	}
	if o.ScrollSpeed == 0 {
		o.ScrollSpeed = config.ScrollSpeed
	}
	if o.PoolSize == 0 {
		o.PoolSize = config.TrafficPoolSize
	}
	if o.ReentryMinY == 0 && o.ReentryMaxY == 0 {
		o.ReentryMinY = config.ReentryMinY
		o.ReentryMaxY = config.ReentryMaxY
	}
	if o.Bindings == nil {
		o.Bindings = input.DefaultBindings()
	}
	if o.Recorder == nil {
		o.Recorder = nopRecorder{}
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
}

// Session owns the whole simulation. It is not safe for concurrent use.
type Session struct {
	opts     Options
	boundary road.Boundary
	input    *input.State
	player   *car.Player
	traffic  *traffic.Field
	state    State
	tick     uint64
	log      zerolog.Logger
}

// NewSession builds a session in the Playing state. It fails when the lane
// layout cannot form a corridor or the traffic layout is unusable.
func NewSession(opts Options) (*Session, error) {
	opts.setDefaults()

	b, err := road.Compute(opts.StageWidth, opts.LaneCount, opts.LaneWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build corridor: %w", err)
	}

	field, err := traffic.NewField(traffic.Layout{
		Boundary:    b,
		LaneCount:   opts.LaneCount,
		LaneWidth:   opts.LaneWidth,
		StageHeight: opts.StageHeight,
		CarSize:     opts.PlayerSize,
		ScrollSpeed: opts.ScrollSpeed,
		PoolSize:    opts.PoolSize,
		ReentryMinY: opts.ReentryMinY,
		ReentryMaxY: opts.ReentryMaxY,
	}, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to build traffic: %w", err)
	}

	s := &Session{
		opts:     opts,
		boundary: b,
		input:    input.NewState(),
		player:   car.NewPlayer(opts.PlayerSize, b, opts.StageHeight),
		traffic:  field,
		state:    Playing,
		log:      opts.Logger.With().Str("component", "sim").Logger(),
	}
	s.log.Info().
		Int("left", b.Left).
		Int("right", b.Right).
		Int("cars", s.traffic.Len()).
		Msg("session started")
	return s, nil
}

// HandleKey feeds a raw key event through the bindings. Unbound keys are
// ignored.
func (s *Session) HandleKey(ev input.Event) {
	s.opts.Bindings.Apply(s.input, ev)
}

// Input exposes the action snapshot for callers that resolve keys
// themselves.
func (s *Session) Input() *input.State { return s.input }

func (s *Session) State() State            { return s.state }
func (s *Session) Boundary() road.Boundary { return s.boundary }
func (s *Session) Player() *car.Player     { return s.player }
func (s *Session) Traffic() *traffic.Field { return s.traffic }

// Tick returns how many ticks actually advanced the simulation.
func (s *Session) Tick() uint64 { return s.tick }

// Step runs one frame. Quit wins over everything and is reported as
// ErrQuit without touching the state. A tick that toggles pause does not
// advance the simulation.
func (s *Session) Step() (Frame, error) {
	defer s.input.EndFrame()

	if s.input.IsPressed(input.Quit) || s.input.JustPressed(input.Quit) {
		s.log.Info().Str("state", s.state.String()).Msg("quit requested")
		return s.Frame(), ErrQuit
	}

	switch s.state {
	case Playing:
		if s.input.JustPressed(input.Pause) {
			s.setState(Paused)
			break
		}
		s.advance()
	case Paused:
		if s.input.JustPressed(input.Pause) {
			s.setState(Playing)
		}
	case GameOver:
	}

	return s.Frame(), nil
}

// advance moves the player, then the traffic, then checks for contact.
func (s *Session) advance() {
	s.player.Advance(s.input, s.boundary, s.opts.XSpeed, s.opts.YSpeed, s.opts.StageHeight)

	if n := s.traffic.Advance(); n > 0 {
		s.opts.Recorder.Recycled(n)
		s.log.Debug().Int("count", n).Uint64("tick", s.tick).Msg("traffic recycled")
	}

	s.tick++
	s.opts.Recorder.Ticked()

	if Collides(s.player.Rect(), s.traffic.Rects()) {
		s.opts.Recorder.Collided()
		s.setState(GameOver)
	}
}

func (s *Session) setState(to State) {
	from := s.state
	if from == to {
		return
	}
	s.state = to
	s.opts.Recorder.StateChanged(from, to)
	s.log.Info().
		Str("from", from.String()).
		Str("to", to.String()).
		Uint64("tick", s.tick).
		Msg("state changed")
}

// Frame returns the shapes to draw for the current state.
func (s *Session) Frame() Frame {
	shapes := make([]Shape, 0, 3+s.traffic.Len())

	for _, line := range s.boundary.Lines(s.opts.StageHeight) {
		shapes = append(shapes, Shape{Rect: line, Color: BoundaryColor, Kind: KindBoundary})
	}
	shapes = append(shapes, Shape{Rect: s.player.Rect(), Color: PlayerColor, Kind: KindPlayer})
	for _, c := range s.traffic.Cars() {
		shapes = append(shapes, Shape{Rect: s.traffic.Rect(c), Color: trafficColor(c.Lane), Kind: KindTraffic})
	}

	return Frame{Shapes: shapes, State: s.state, Tick: s.tick}
}

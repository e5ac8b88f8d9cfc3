// Package game adapts a sim.Session to ebiten: it turns keyboard state into
// input events, steps the session once per tick and draws the frame.
package game

import (
	"errors"

	"github.com/golangdaddy/autobahx/input"
	"github.com/golangdaddy/autobahx/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Game implements ebiten.Game interface.
type Game struct {
	session *sim.Session
	frame   sim.Frame
	width   int
	height  int
	log     zerolog.Logger

	keys []ebiten.Key
}

// New wraps s for a logical screen of width x height pixels.
func New(s *sim.Session, width, height int, log zerolog.Logger) *Game {
	return &Game{
		session: s,
		frame:   s.Frame(),
		width:   width,
		height:  height,
		log:     log.With().Str("component", "game").Logger(),
	}
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	g.pollKeys()

	if ebiten.IsWindowBeingClosed() {
		g.session.Input().Set(input.Quit, true)
	}

	frame, err := g.session.Step()
	g.frame = frame
	if errors.Is(err, sim.ErrQuit) {
		g.log.Info().Uint64("tick", g.session.Tick()).Msg("shutting down")
		return ebiten.Termination
	}
	return err
}

// pollKeys forwards this tick's key edges to the session.
func (g *Game) pollKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.session.HandleKey(input.Event{Key: input.Key(k.String()), Pressed: true})
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.session.HandleKey(input.Event{Key: input.Key(k.String()), Pressed: false})
	}
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(sim.Background)
	for _, sh := range g.frame.Shapes {
		drawShape(screen, sh)
	}
	drawOverlay(screen, g.frame.State, g.width, g.height)
}

// Layout returns the fixed stage size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

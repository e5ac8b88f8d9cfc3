package main

import (
	"errors"
	"os"

	"github.com/golangdaddy/autobahx/config"
	"github.com/golangdaddy/autobahx/game"
	"github.com/golangdaddy/autobahx/input"
	"github.com/golangdaddy/autobahx/logging"
	"github.com/golangdaddy/autobahx/metrics"
	"github.com/golangdaddy/autobahx/sim"
	"github.com/golangdaddy/autobahx/traffic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.Flags(fs)
	_ = fs.Parse(os.Args[1:])

	configDir, _ := fs.GetString("config")
	settings, err := config.Load(configDir, fs)
	if err != nil {
		bootLog := logging.New(os.Stderr, "info")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logging.New(os.Stderr, settings.LogLevel)

	bindings, err := input.DefaultBindings().WithOverrides(settings.Keys)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load key bindings")
	}

	var src traffic.Source
	if settings.Seed != 0 {
		src = traffic.NewSeeded(settings.Seed)
	}

	var recorder *metrics.Recorder
	opts := sim.Options{
		Source:   src,
		Bindings: bindings,
		Logger:   &log,
	}
	if settings.Metrics.Enabled {
		recorder, err = metrics.New(metrics.Meter())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create metrics")
		}
		opts.Recorder = recorder
	}

	session, err := sim.NewSession(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}

	log.Info().
		Str("title", settings.Window.Title).
		Float64("scale", settings.Window.Scale).
		Int("tps", settings.TPS).
		Uint64("seed", settings.Seed).
		Bool("metrics", settings.Metrics.Enabled).
		Msg("starting")

	ebiten.SetWindowSize(
		int(float64(config.StageWidth)*settings.Window.Scale),
		int(float64(config.StageHeight)*settings.Window.Scale),
	)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(settings.TPS)

	g := game.New(session, config.StageWidth, config.StageHeight, log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop failed")
	}

	logSummary(log, session, recorder)
}

func logSummary(log zerolog.Logger, s *sim.Session, r *metrics.Recorder) {
	ev := log.Info().
		Str("state", s.State().String()).
		Uint64("ticks", s.Tick())
	if r != nil {
		t := r.Totals()
		ev = ev.
			Int64("recycled", t.Recycled).
			Int64("collisions", t.Collisions).
			Int64("pause_toggles", t.PauseToggles)
	}
	ev.Msg("session ended")
}

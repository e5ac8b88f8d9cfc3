// Package metrics exports simulation counters through OpenTelemetry.
package metrics

import (
	"context"
	"fmt"

	"github.com/golangdaddy/autobahx/sim"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/golangdaddy/autobahx/metrics"

// Meter returns the global meter. It is a no-op until a provider is
// installed with otel.SetMeterProvider; the autobahx binary installs none, so
// there only Totals is observable. Embedders that install an SDK provider get
// the counters exported.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Totals is a plain copy of what a Recorder has counted so far.
type Totals struct {
	Ticks        int64
	Recycled     int64
	Collisions   int64
	PauseToggles int64
}

// Recorder implements sim.Recorder on top of OTel counters and keeps local
// totals for the end-of-session log line.
type Recorder struct {
	ticks     metric.Int64Counter
	recycled  metric.Int64Counter
	collided  metric.Int64Counter
	stateSwap metric.Int64Counter

	totals Totals
}

var _ sim.Recorder = (*Recorder)(nil)

// New creates the session counters on m.
func New(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}

	var err error

	r.ticks, err = m.Int64Counter(
		"sim.ticks",
		metric.WithDescription("Ticks that advanced the simulation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	r.recycled, err = m.Int64Counter(
		"sim.traffic.recycled",
		metric.WithDescription("Traffic cars that left the stage and re-entered above it"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating recycled counter: %w", err)
	}

	r.collided, err = m.Int64Counter(
		"sim.collisions",
		metric.WithDescription("Collisions between the player and traffic"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collisions counter: %w", err)
	}

	r.stateSwap, err = m.Int64Counter(
		"sim.state.transitions",
		metric.WithDescription("State machine transitions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transitions counter: %w", err)
	}

	return r, nil
}

func (r *Recorder) Ticked() {
	r.totals.Ticks++
	r.ticks.Add(context.Background(), 1)
}

func (r *Recorder) Recycled(n int) {
	r.totals.Recycled += int64(n)
	r.recycled.Add(context.Background(), int64(n))
}

func (r *Recorder) Collided() {
	r.totals.Collisions++
	r.collided.Add(context.Background(), 1)
}

func (r *Recorder) StateChanged(from, to sim.State) {
	if from == sim.Paused || to == sim.Paused {
		r.totals.PauseToggles++
	}
	r.stateSwap.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	))
}

// Totals returns the counts seen so far.
func (r *Recorder) Totals() Totals {
	return r.totals
}

// Package engine drives the simulation: it owns the world, the registered
// systems, and the fixed-step tick loop.
package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/shifty81/EVEOFFLINE-sub004/telemetry"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

// System is one per-tick processor. Update advances the system's component
// state by dt seconds. Systems never call each other; cross-system effects go
// through the world's component access.
type System interface {
	Name() string
	Update(w *world.World, dt float64) error
}

// Initializer is implemented by systems that need one-time setup before the
// first tick.
type Initializer interface {
	Init(w *world.World) error
}

// Engine invokes every registered system once per tick, single-threaded, in
// registration order. A failing or panicking system is isolated: it is logged
// and counted, and the remaining systems still run in the same tick.
type Engine struct {
	world   *world.World
	systems []System

	tick     atomic.Uint64
	failures atomic.Uint64
	logger   zerolog.Logger
}

// New creates an engine over the given world.
func New(w *world.World, logger zerolog.Logger) *Engine {
	return &Engine{world: w, logger: logger}
}

// World returns the engine's world for operation calls between ticks.
func (e *Engine) World() *world.World { return e.world }

// CurrentTick returns the number of completed ticks.
func (e *Engine) CurrentTick() uint64 { return e.tick.Load() }

// Failures returns the total number of isolated system failures so far.
func (e *Engine) Failures() uint64 { return e.failures.Load() }

// Register adds systems to the tick order. Registration order is execution
// order for the lifetime of the engine. Duplicate names are rejected.
func (e *Engine) Register(systems ...System) error {
	for _, sys := range systems {
		for _, existing := range e.systems {
			if existing.Name() == sys.Name() {
				return eris.Errorf("system %q is already registered", sys.Name())
			}
		}
		e.systems = append(e.systems, sys)
	}
	return nil
}

// SystemNames returns the names of all registered systems in execution order.
func (e *Engine) SystemNames() []string {
	names := make([]string, len(e.systems))
	for i, sys := range e.systems {
		names[i] = sys.Name()
	}
	return names
}

// Init runs every system's one-time setup. Must be called once before the
// first tick.
func (e *Engine) Init() error {
	for _, sys := range e.systems {
		init, ok := sys.(Initializer)
		if !ok {
			continue
		}
		if err := init.Init(e.world); err != nil {
			return eris.Wrapf(err, "system %s failed to initialize", sys.Name())
		}
	}
	return nil
}

// Tick advances the simulation by dt seconds. Once a tick begins all systems
// run to completion; there is no cancellation. Deferred entity destruction is
// flushed after the last system so no system's iteration observes a removal
// mid-tick.
func (e *Engine) Tick(dt float64) {
	start := time.Now()
	for _, sys := range e.systems {
		sysStart := time.Now()
		logger := e.logger.With().Str("system", sys.Name()).Logger()
		if err := e.runSystem(sys, dt); err != nil {
			e.failures.Add(1)
			telemetry.EmitSystemFailure(sys.Name())
			logger.Error().Err(err).Uint64("tick", e.tick.Load()).Msg("system failed, continuing tick")
		}
		telemetry.EmitTickStat(sysStart, sys.Name())
	}
	if destroyed := e.world.Flush(); destroyed > 0 {
		e.logger.Debug().Int("count", destroyed).Msg("destroyed deferred entities")
	}
	e.tick.Add(1)
	telemetry.EmitTickStat(start, "full_tick")
}

// runSystem executes one system, converting a panic into an error so the rest
// of the tick still runs.
func (e *Engine) runSystem(sys System, dt float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Errorf("system %s panicked: %v", sys.Name(), r)
		}
	}()
	return sys.Update(e.world, dt)
}

// Run drives Tick at the given rate until ctx is cancelled. An in-flight tick
// always completes; cancellation is only observed between ticks.
func (e *Engine) Run(ctx context.Context, tickRate float64) error {
	if tickRate <= 0 {
		return eris.Errorf("tick rate must be positive, got %f", tickRate)
	}
	dt := 1.0 / tickRate
	ticker := time.NewTicker(time.Duration(float64(time.Second) / tickRate))
	defer ticker.Stop()

	e.logger.Info().
		Float64("tick_rate", tickRate).
		Strs("systems", e.SystemNames()).
		Msg("simulation loop started")

	for {
		select {
		case <-ctx.Done():
			e.logger.Info().Uint64("ticks", e.tick.Load()).Msg("simulation loop stopped")
			return nil
		case <-ticker.C:
			e.Tick(dt)
		}
	}
}

// Package headless steps a simulation without any window, as fast as possible.
package headless

import (
	"context"
	"time"

	"github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-agent-arena/pkg/simulation"
)

// DefaultSteps is used when neither the flag nor the config sets a tick count.
const DefaultSteps = 1000

// Summary describes a finished run.
type Summary struct {
	Ticks      int64
	Collisions int
	Recorded   int64
	Elapsed    time.Duration
	Cancelled  bool
}

// TicksPerSecond is the achieved simulation rate.
func (s Summary) TicksPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Ticks) / s.Elapsed.Seconds()
}

// Runner steps one simulation with fixed settings.
type Runner struct {
	Sim      *simulation.Simulation
	Settings simulation.Settings
	Logger   log.Logger
	// ProgressEvery logs a line every that many ticks, 0 disables progress logs.
	ProgressEvery int64
}

// Run executes steps ticks, or stops earlier when ctx is done or the
// simulation reaches its configured end.
func (r *Runner) Run(ctx context.Context, steps int64) Summary {
	logger := r.Logger
	if logger == nil {
		logger = log.DiscardLogger
	}
	if steps <= 0 {
		steps = DefaultSteps
	}

	start := time.Now()
	var sum Summary
	for i := int64(0); i < steps && !r.Sim.Done(); i++ {
		if ctx.Err() != nil {
			sum.Cancelled = true
			break
		}
		res := r.Sim.Step(r.Settings)
		sum.Collisions += res.Collisions
		if res.Advanced {
			sum.Ticks++
		}
		if res.Recorded {
			sum.Recorded++
		}
		if r.ProgressEvery > 0 && res.Tick%r.ProgressEvery == 0 {
			logger.Infof("📊 t = %d/%d | Collisions: %d | Agents: %d", res.Tick, steps, sum.Collisions, len(r.Sim.Agents()))
		}
	}
	sum.Elapsed = time.Since(start)
	logger.Infof("run finished: %d ticks in %s (%.0f ticks/sec), %d collisions",
		sum.Ticks, sum.Elapsed.Round(time.Millisecond), sum.TicksPerSecond(), sum.Collisions)
	return sum
}

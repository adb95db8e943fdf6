package room

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunLoop drives the room at its fixed tick rate until the context is
// canceled or the match ends. Each wall interval advances the simulation
// by whole fixed steps; when the loop falls behind, it catches up with at
// most catchupMax steps per interval and sheds the rest of the backlog.
func (r *Room) RunLoop(ctx context.Context) {
	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	maxSteps := r.catchupMax
	if maxSteps < 1 {
		maxSteps = 1
	}
	budget := r.tickInterval
	last := time.Now()
	acc := 0.0

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("room loop stopped")
			return
		case now := <-ticker.C:
			acc += now.Sub(last).Seconds()
			last = now

			steps := 0
			for acc >= r.dt && steps < maxSteps {
				start := time.Now()
				r.Tick(now)
				dur := time.Since(start)
				r.metrics.Store("room_tick_micros", uint64(dur.Microseconds()))
				if dur > budget {
					r.metrics.Add("room_tick_over_budget", 1)
					r.logger.Warn("tick over budget",
						zap.Duration("duration", dur),
						zap.Duration("budget", budget))
				}
				acc -= r.dt
				steps++
			}
			if acc > float64(maxSteps)*r.dt {
				// Too far behind to catch up; shed the backlog rather
				// than spiral.
				r.metrics.Add("room_ticks_shed", 1)
				acc = r.dt
			}

			if r.State() == StateEnded {
				return
			}
		}
	}
}

package flappybird

import (
	"time"
)

type Time struct {
	Time time.Time
	Dt   time.Duration
}

// DeltaSeconds returns the last frame's duration, clamped so a stall
// (window drag, debugger) cannot launch the bird through a pipe.
func (t *Time) DeltaSeconds() float32 {
	dt := float32(t.Dt.Seconds())
	if dt > 0.05 {
		dt = 0.05
	}
	return dt
}

type TimeModule struct{}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	cmd.UseSystem(
		System(timeSystem).
			InStage(Prelude).
			RunAlways(),
	)
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}

package systems

import (
	"github.com/automoto/gridrunner/components"
	"github.com/automoto/gridrunner/config"
	"github.com/yohamta/donburi/ecs"
)

// dt is the fixed simulation step in seconds.
func dt() float64 {
	return 1.0 / float64(config.C.TickRate)
}

// WithRunChecks wraps a gameplay system so it only runs while the run is
// live: not paused, not over, not cleared. Systems that must keep running
// (input decode, persistence) are registered unwrapped.
func WithRunChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if entry, ok := components.RunStatus.First(e.World); ok {
			status := components.RunStatus.Get(entry)
			if status.Paused || status.Finished() {
				return
			}
		}
		system(e)
	}
}

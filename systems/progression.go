package systems

import (
	"github.com/automoto/gridrunner/components"
	"github.com/automoto/gridrunner/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgression advances distance, derives gear and speed, and fires the
// game-clear signal once the finish distance is crossed. Runs first each tick.
func UpdateProgression(e *ecs.ECS) {
	progEntry, ok := components.Progression.First(e.World)
	if !ok {
		return
	}
	prog := components.Progression.Get(progEntry)

	// An active slide scales this step's travel.
	mult := 1.0
	if machineEntry, ok := components.Action.First(e.World); ok {
		m := components.Action.Get(machineEntry)
		if m.Current() == m.Slide {
			mult = m.Slide.SpeedMultiplier()
		}
	}

	prog.Advance(dt(), mult)

	if prog.Distance >= config.Run.FinishDistance {
		components.WorldSink{World: e.World}.GameClear()
	}
}

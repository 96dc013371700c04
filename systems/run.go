package systems

import (
	"github.com/automoto/gridrunner/components"
	"github.com/yohamta/donburi/ecs"
)

// RunReadout returns the run status and progression singletons, for scene
// transitions and the headless driver.
func RunReadout(e *ecs.ECS) (*components.RunStatusData, *components.ProgressionData, bool) {
	statusEntry, ok := components.RunStatus.First(e.World)
	if !ok {
		return nil, nil, false
	}
	progEntry, ok := components.Progression.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return components.RunStatus.Get(statusEntry), components.Progression.Get(progEntry), true
}

// SetBestDistance publishes a loaded best distance to the HUD.
func SetBestDistance(e *ecs.ECS, best float64) {
	if entry, ok := components.RunStatus.First(e.World); ok {
		components.RunStatus.Get(entry).Best = best
	}
}

package systems

import (
	"math"

	"github.com/automoto/gridrunner/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHits walks every cell the runner crossed since the last tick and
// resolves placement effects. Runs last in the gameplay order so it sees this
// tick's distance, action state and lane.
func UpdateHits(e *ecs.ECS) {
	hitEntry, ok := components.Hit.First(e.World)
	if !ok {
		return
	}
	progEntry, ok := components.Progression.First(e.World)
	if !ok {
		return
	}
	runnerEntry, ok := components.Runner.First(e.World)
	if !ok {
		return
	}
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	machineEntry, ok := components.Action.First(e.World)
	if !ok {
		return
	}

	hit := components.Hit.Get(hitEntry)
	prog := components.Progression.Get(progEntry)
	runner := components.Runner.Get(runnerEntry)
	stage := components.Stage.Get(stageEntry)
	machine := components.Action.Get(machineEntry)

	curr := components.GridCell{Index: int(math.Floor(prog.Distance)), Lane: runner.Lane}
	cells := hit.Sweep(curr)
	if len(cells) == 0 {
		return
	}

	// Inside the aerial window the runner clears ground placements, and every
	// placement is ground-anchored today.
	airborne := machine.Current() == machine.Jump && machine.Jump.InAerialWindow()

	sink := components.WorldSink{World: e.World}
	for _, cell := range cells {
		id := stage.QueryPlacement(cell.Index, cell.Lane)
		if id == 0 {
			continue
		}
		placement := stage.Registry.Resolve(id)
		if placement == nil {
			continue
		}
		if airborne {
			continue
		}

		placement.Action()
		if placement.ObjType() == components.ObjDamage {
			cause := "hazard"
			if k, ok := placement.(components.Kinded); ok {
				cause = components.KindName[k.Kind()]
			}
			sink.GameOver(cause)
			break
		}
	}
}

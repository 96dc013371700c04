package systems

import (
	"github.com/automoto/gridrunner/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStage streams the world around the player: apply delivered templates,
// push the generation frontier, apply same-tick synchronous deliveries, then
// evict blocks behind the retention margin. Runs after progression.
func UpdateStage(e *ecs.ECS) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	progEntry, ok := components.Progression.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)
	prog := components.Progression.Get(progEntry)

	stage.DrainTemplates()
	stage.AdvanceFrontier(prog.Distance)
	stage.DrainTemplates()
	stage.Evict(stage.CurrentBlock(prog.Distance))
}

package systems

import (
	"github.com/automoto/gridrunner/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArbiter replays buffered input when a blocking action just ended.
func UpdateArbiter(e *ecs.ECS) {
	machineEntry, ok := components.Action.First(e.World)
	if !ok {
		return
	}
	arbEntry, ok := components.Arbiter.First(e.World)
	if !ok {
		return
	}
	progEntry, ok := components.Progression.First(e.World)
	if !ok {
		return
	}

	machine := components.Action.Get(machineEntry)
	if !machine.ConsumeBlockingExit() {
		return
	}
	arb := components.Arbiter.Get(arbEntry)
	prog := components.Progression.Get(progEntry)
	arb.OnBlockingExit(machine, prog.Elapsed)
}

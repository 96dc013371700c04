package systems

import (
	"github.com/automoto/gridrunner/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAction ticks the action state machine. Runs after stage streaming and
// before the arbiter drain, per the fixed intra-tick order.
func UpdateAction(e *ecs.ECS) {
	entry, ok := components.Action.First(e.World)
	if !ok {
		return
	}
	components.Action.Get(entry).Tick(dt())
}

package systems

import (
	"github.com/automoto/gridrunner/components"
	"github.com/automoto/gridrunner/config"
	"github.com/yohamta/donburi/ecs"
)

// autopilotHorizon is how many cells ahead the autopilot scans.
const autopilotHorizon = 6

// UpdateAutopilot steers the runner without a device: dodge into a clear
// lane when a hazard is close, jump when boxed in, and drift toward coins.
// Registered by the headless driver in place of UpdateInput.
func UpdateAutopilot(e *ecs.ECS) {
	arbEntry, ok := components.Arbiter.First(e.World)
	if !ok {
		return
	}
	machineEntry, ok := components.Action.First(e.World)
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
	progEntry, ok := components.Progression.First(e.World)
	if !ok {
		return
	}
	statusEntry, ok := components.RunStatus.First(e.World)
	if !ok {
		return
	}

	arb := components.Arbiter.Get(arbEntry)
	machine := components.Action.Get(machineEntry)
	runner := components.Runner.Get(runnerEntry)
	stage := components.Stage.Get(stageEntry)
	prog := components.Progression.Get(progEntry)
	status := components.RunStatus.Get(statusEntry)

	base := int(prog.Distance)
	danger := hazardDistance(stage, base, runner.Lane)
	if danger < 0 {
		// Safe lane; drift toward a nearby coin if one is adjacent.
		if delta := coinSide(stage, base, runner); delta != 0 {
			sig := config.SignalMoveRight
			if delta < 0 {
				sig = config.SignalMoveLeft
			}
			arb.OnInput(machine, runner, status, sig, prog.Elapsed)
		}
		return
	}
	if danger > 3 {
		return // not urgent yet
	}

	// Prefer a clear adjacent lane, otherwise jump the hazard.
	for _, delta := range []int{-1, 1} {
		lane := runner.Lane + delta
		if lane < 0 || lane >= runner.LaneCount {
			continue
		}
		if hazardDistance(stage, base, lane) < 0 {
			sig := config.SignalMoveRight
			if delta < 0 {
				sig = config.SignalMoveLeft
			}
			arb.OnInput(machine, runner, status, sig, prog.Elapsed)
			return
		}
	}
	arb.OnInput(machine, runner, status, config.SignalJump, prog.Elapsed)
}

// hazardDistance returns how many cells ahead the nearest damage placement
// sits in lane, or -1 when the horizon is clear.
func hazardDistance(stage *components.StageStreamData, base, lane int) int {
	for k := 1; k <= autopilotHorizon; k++ {
		id := stage.QueryPlacement(base+k, lane)
		if id == 0 {
			continue
		}
		p := stage.Registry.Resolve(id)
		if p != nil && p.ObjType() == components.ObjDamage {
			return k
		}
	}
	return -1
}

// coinSide returns -1 or 1 when an adjacent lane has a coin within the
// horizon and no hazard in front of it; 0 otherwise.
func coinSide(stage *components.StageStreamData, base int, runner *components.RunnerData) int {
	for _, delta := range []int{-1, 1} {
		lane := runner.Lane + delta
		if lane < 0 || lane >= runner.LaneCount {
			continue
		}
		if hazardDistance(stage, base, lane) >= 0 {
			continue
		}
		for k := 1; k <= autopilotHorizon; k++ {
			id := stage.QueryPlacement(base+k, lane)
			if id == 0 {
				continue
			}
			p := stage.Registry.Resolve(id)
			if coin, ok := p.(*components.Coin); ok && !coin.Collected() {
				return delta
			}
		}
	}
	return 0
}

package systems

import (
	"github.com/automoto/gridrunner/components"
	"github.com/automoto/gridrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard, decodes rising edges into logical signals
// and feeds them to the arbiter. Bindings are visited in declaration order,
// which keeps the Jump > Slide > Attack priority for same-tick presses.
// Runs every tick, even paused: pause itself arrives through this path.
func UpdateInput(e *ecs.ECS) {
	decodeEntry, ok := components.InputDecode.First(e.World)
	if !ok {
		return
	}
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
	statusEntry, ok := components.RunStatus.First(e.World)
	if !ok {
		return
	}
	progEntry, ok := components.Progression.First(e.World)
	if !ok {
		return
	}

	decode := components.InputDecode.Get(decodeEntry)
	arb := components.Arbiter.Get(arbEntry)
	machine := components.Action.Get(machineEntry)
	runner := components.Runner.Get(runnerEntry)
	status := components.RunStatus.Get(statusEntry)
	prog := components.Progression.Get(progEntry)

	// Swap buffers: current becomes previous, then re-poll.
	decode.Previous = decode.Current
	decode.Current = [config.SignalCount]bool{}

	for _, b := range config.Bindings {
		for _, key := range b.Binding.Keys {
			if ebiten.IsKeyPressed(key) {
				decode.Current[b.Signal] = true
				break
			}
		}
	}

	frozen := status.Paused || status.Finished()
	for _, b := range config.Bindings {
		if !decode.JustPressed(b.Signal) {
			continue
		}
		if frozen && b.Signal != config.SignalPause {
			continue
		}
		arb.OnInput(machine, runner, status, b.Signal, prog.Elapsed)
	}
}

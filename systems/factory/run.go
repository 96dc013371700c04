package factory

import (
	"github.com/automoto/gridrunner/archetypes"
	"github.com/automoto/gridrunner/components"
	cfg "github.com/automoto/gridrunner/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun is the composition point: it builds every simulation entity with
// its collaborators injected explicitly. notify receives one-way action state
// names for the presentation layer and may be nil.
func CreateRun(e *ecs.ECS, provider components.TemplateProvider, notify func(string)) {
	sink := components.WorldSink{World: e.World}

	run := archetypes.Run.Spawn(e)
	components.RunStatus.SetValue(run, components.RunStatusData{})
	components.Progression.SetValue(run, components.NewProgression())

	registry := components.NewPlacementRegistry()
	pool := components.NewPlacementPool(cfg.Stage.PoolSizePerKind, func(kind components.KindID) components.Placement {
		switch kind {
		case components.KindCoin:
			return components.NewCoin(cfg.Run.CoinScore, sink)
		case components.KindSpike, components.KindBarrier:
			return components.NewHazard(kind)
		default:
			return nil
		}
	})

	stage := archetypes.Stage.Spawn(e)
	components.Stage.SetValue(stage, components.NewStageStream(provider, registry, pool))

	runner := archetypes.Runner.Spawn(e)
	components.Runner.SetValue(runner, components.NewRunner())
	machine := components.NewActionMachine()
	machine.Notify = notify
	components.Action.SetValue(runner, machine)
	components.Hit.SetValue(runner, components.HitDetectorData{
		Prev: components.GridCell{Index: 0, Lane: cfg.Run.StartLane},
	})

	input := archetypes.Input.Spawn(e)
	components.Arbiter.SetValue(input, components.NewInputArbiter())
	components.InputDecode.SetValue(input, components.InputDecodeData{})
}

package archetypes

import (
	"github.com/automoto/gridrunner/components"
	cfg "github.com/automoto/gridrunner/config"
	"github.com/automoto/gridrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Run = newArchetype(
		tags.Run,
		components.RunStatus,
		components.Progression,
	)
	Stage = newArchetype(
		tags.Stage,
		components.Stage,
	)
	Runner = newArchetype(
		tags.Runner,
		components.Runner,
		components.Action,
		components.Hit,
	)
	Input = newArchetype(
		tags.Input,
		components.Arbiter,
		components.InputDecode,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

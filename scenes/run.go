package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/gridrunner/assets"
	"github.com/automoto/gridrunner/components"
	cfg "github.com/automoto/gridrunner/config"
	"github.com/automoto/gridrunner/systems"
	"github.com/automoto/gridrunner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// RunScene hosts one run of the simulation plus its presentation systems.
type RunScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	savedBest    bool
}

// NewRunScene creates a fresh run.
func NewRunScene(sc SceneChanger) *RunScene {
	return &RunScene{sceneChanger: sc}
}

func (rs *RunScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if status, prog, ok := systems.RunReadout(rs.ecs); ok && status.Finished() {
		if !rs.savedBest {
			rs.savedBest = true
			systems.SaveBestDistance(prog.Distance)
		}
		rs.sceneChanger.ChangeScene(NewGameOverScene(rs.sceneChanger, status.Cleared, status.Cause, status.Score, prog.Distance))
	}
}

func (rs *RunScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

// configure is the composition point: every collaborator is constructed and
// injected here, and the systems run in the fixed intra-tick order the
// simulation requires.
func (rs *RunScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	provider, err := assets.NewDefaultProvider()
	if err != nil {
		// The stage stream degrades to an empty world rather than aborting.
		log.Printf("block templates unavailable: %v", err)
	}

	// Input decode runs every tick, even paused; pause arrives through it.
	e.AddSystem(systems.UpdateInput)

	// Gameplay systems in mandatory order, gated by pause/run-end.
	e.AddSystem(systems.WithRunChecks(systems.UpdateProgression))
	e.AddSystem(systems.WithRunChecks(systems.UpdateStage))
	e.AddSystem(systems.WithRunChecks(systems.UpdateAction))
	e.AddSystem(systems.WithRunChecks(systems.UpdateArbiter))
	e.AddSystem(systems.WithRunChecks(systems.UpdateHits))

	e.AddRenderer(cfg.Default, systems.DrawRun)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	rs.ecs = e

	factory.CreateRun(e, providerOrNil(provider), nil)

	if record, err := systems.LoadRecord(); err == nil && record != nil {
		systems.SetBestDistance(e, record.BestDistance)
	}
}

// providerOrNil avoids handing the factory a typed nil wrapped in the
// provider interface.
func providerOrNil(p *assets.TemplateProvider) components.TemplateProvider {
	if p == nil {
		return nil
	}
	return p
}

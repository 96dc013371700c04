package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/gridrunner/assets"
	"github.com/automoto/gridrunner/components"
	"github.com/automoto/gridrunner/config"
	"github.com/automoto/gridrunner/systems"
	"github.com/automoto/gridrunner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimLoop drives a headless run at a fixed tick rate.
type SimLoop struct {
	ecs      *ecs.ECS
	tickRate int
	maxTicks int
	fast     bool
	stopChan chan struct{}
	ticks    int
}

func NewSimLoop(e *ecs.ECS, tickRate, maxTicks int, fast bool) *SimLoop {
	return &SimLoop{
		ecs:      e,
		tickRate: tickRate,
		maxTicks: maxTicks,
		fast:     fast,
		stopChan: make(chan struct{}),
	}
}

func (g *SimLoop) Run() {
	log.Printf("Sim loop started at %d ticks/second", g.tickRate)

	if g.fast {
		for g.tick() {
		}
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-g.stopChan:
			return
		case <-ticker.C:
			if !g.tick() {
				return
			}
		}
	}
}

func (g *SimLoop) Stop() {
	close(g.stopChan)
}

// tick advances the world one step and reports whether the run continues.
func (g *SimLoop) tick() bool {
	g.ecs.Update()
	g.ticks++

	status, prog, ok := systems.RunReadout(g.ecs)
	if !ok {
		return false
	}
	if status.Finished() {
		report(status, prog, g.ticks)
		return false
	}
	if g.maxTicks > 0 && g.ticks >= g.maxTicks {
		log.Printf("Tick limit reached after %d ticks", g.ticks)
		report(status, prog, g.ticks)
		return false
	}
	return true
}

func report(status *components.RunStatusData, prog *components.ProgressionData, ticks int) {
	outcome := "game over"
	if status.Cleared {
		outcome = "cleared"
	}
	log.Printf("Run %s after %d ticks: distance=%.1f gear=%d score=%d cause=%q",
		outcome, ticks, prog.Distance, prog.Gear, status.Score, status.Cause)
}

func main() {
	configPath := flag.String("config", "", "path to a yaml config overrides file")
	seed := flag.Int64("seed", config.Stage.TemplateSeed, "template selection seed")
	maxTicks := flag.Int("ticks", 0, "stop after this many ticks (0 = until the run ends)")
	fast := flag.Bool("fast", true, "run ticks back to back instead of real time")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
	}
	config.Stage.TemplateSeed = *seed

	provider, err := assets.NewDefaultProvider()
	if err != nil {
		log.Fatalf("Failed to load block templates: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.WithRunChecks(systems.UpdateAutopilot))
	e.AddSystem(systems.WithRunChecks(systems.UpdateProgression))
	e.AddSystem(systems.WithRunChecks(systems.UpdateStage))
	e.AddSystem(systems.WithRunChecks(systems.UpdateAction))
	e.AddSystem(systems.WithRunChecks(systems.UpdateArbiter))
	e.AddSystem(systems.WithRunChecks(systems.UpdateHits))

	factory.CreateRun(e, provider, func(state string) {
		log.Printf("Runner entered %s", state)
	})

	loop := NewSimLoop(e, config.C.TickRate, *maxTicks, *fast)
	loop.Run()
}

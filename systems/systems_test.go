package systems

import (
	"testing"

	"github.com/automoto/gridrunner/components"
	"github.com/automoto/gridrunner/config"
	"github.com/automoto/gridrunner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// gridProvider serves the same template grid for every block, synchronously.
type gridProvider struct {
	grid components.PlacementGrid
}

func (p *gridProvider) RequestBlockTemplate(block int, deliver func(components.TemplateResult)) {
	deliver(components.TemplateResult{Block: block, Grid: p.grid})
}

// newTestRun builds a full simulation world around a fixed block template.
func newTestRun(t *testing.T, grid components.PlacementGrid) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(WithRunChecks(UpdateProgression))
	e.AddSystem(WithRunChecks(UpdateStage))
	e.AddSystem(WithRunChecks(UpdateAction))
	e.AddSystem(WithRunChecks(UpdateArbiter))
	e.AddSystem(WithRunChecks(UpdateHits))
	factory.CreateRun(e, &gridProvider{grid: grid}, nil)
	return e
}

func emptyGrid() components.PlacementGrid {
	return components.NewPlacementGrid(100, 3)
}

func gridWith(kind components.KindID, cell, lane int) components.PlacementGrid {
	g := emptyGrid()
	g.Set(cell, lane, components.PlacementID(kind))
	return g
}

func tick(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		e.Update()
	}
}

func status(t *testing.T, e *ecs.ECS) *components.RunStatusData {
	t.Helper()
	entry, ok := components.RunStatus.First(e.World)
	if !ok {
		t.Fatal("run status entity missing")
	}
	return components.RunStatus.Get(entry)
}

func progression(t *testing.T, e *ecs.ECS) *components.ProgressionData {
	t.Helper()
	entry, ok := components.Progression.First(e.World)
	if !ok {
		t.Fatal("progression entity missing")
	}
	return components.Progression.Get(entry)
}

func machine(t *testing.T, e *ecs.ECS) *components.ActionMachine {
	t.Helper()
	entry, ok := components.Action.First(e.World)
	if !ok {
		t.Fatal("action entity missing")
	}
	return components.Action.Get(entry)
}

func TestCoinScoresExactlyOnceAcrossTicks(t *testing.T) {
	e := newTestRun(t, gridWith(components.KindCoin, 2, config.Run.StartLane))

	// One second at min speed crosses the coin cell several ticks deep.
	tick(e, 60)

	st := status(t, e)
	if st.Score != config.Run.CoinScore {
		t.Errorf("score = %d, want %d (single collection)", st.Score, config.Run.CoinScore)
	}
	if st.Over {
		t.Errorf("coin ended the run: %+v", st)
	}
}

func TestHazardEndsRun(t *testing.T) {
	e := newTestRun(t, gridWith(components.KindSpike, 2, config.Run.StartLane))

	tick(e, 60)

	st := status(t, e)
	if !st.Over {
		t.Fatal("run survived a spike in the runner's lane")
	}
	if st.Cause != "spike" {
		t.Errorf("cause = %q, want spike", st.Cause)
	}

	// A finished run is frozen: no further distance, no further events.
	frozen := progression(t, e).Distance
	tick(e, 30)
	if got := progression(t, e).Distance; got != frozen {
		t.Errorf("distance advanced after game over: %.3f -> %.3f", frozen, got)
	}
}

func TestAerialWindowClearsGroundHazard(t *testing.T) {
	e := newTestRun(t, gridWith(components.KindSpike, 2, config.Run.StartLane))

	// At min speed the spike cell is crossed around 0.26-0.38s in, well
	// inside the jump's aerial window when the jump starts immediately.
	if !machine(t, e).TransitionTo(machine(t, e).Jump) {
		t.Fatal("jump refused from idle")
	}
	tick(e, 60)

	st := status(t, e)
	if st.Over {
		t.Errorf("spike hit despite the aerial window: cause=%q", st.Cause)
	}
}

func TestLaneChangeAvoidsHazard(t *testing.T) {
	e := newTestRun(t, gridWith(components.KindSpike, 2, config.Run.StartLane))

	entry, _ := components.Arbiter.First(e.World)
	arb := components.Arbiter.Get(entry)
	arb.OnInput(machine(t, e), runner(t, e), status(t, e), config.SignalMoveLeft, 0)

	tick(e, 60)
	if st := status(t, e); st.Over {
		t.Errorf("spike hit from another lane: cause=%q", st.Cause)
	}
}

func runner(t *testing.T, e *ecs.ECS) *components.RunnerData {
	t.Helper()
	entry, ok := components.Runner.First(e.World)
	if !ok {
		t.Fatal("runner entity missing")
	}
	return components.Runner.Get(entry)
}

func TestFinishDistanceClearsRun(t *testing.T) {
	orig := config.Run.FinishDistance
	config.Run.FinishDistance = 4
	t.Cleanup(func() { config.Run.FinishDistance = orig })

	e := newTestRun(t, emptyGrid())
	tick(e, 60) // 8 units at min speed

	st := status(t, e)
	if !st.Cleared {
		t.Fatal("run did not clear past the finish distance")
	}
	if st.Over {
		t.Error("run both cleared and over")
	}

	// Post-finish events are dropped by the sink.
	components.WorldSink{World: e.World}.AddScore(10)
	if st.Score != 0 {
		t.Errorf("score accepted after the clear: %d", st.Score)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e := newTestRun(t, emptyGrid())
	tick(e, 10)

	st := status(t, e)
	st.TogglePause()
	frozen := progression(t, e).Distance
	tick(e, 30)
	if got := progression(t, e).Distance; got != frozen {
		t.Errorf("distance advanced while paused: %.3f -> %.3f", frozen, got)
	}

	st.TogglePause()
	tick(e, 1)
	if got := progression(t, e).Distance; got == frozen {
		t.Error("distance frozen after unpause")
	}
}

func TestBufferedInputReplaysOnLanding(t *testing.T) {
	e := newTestRun(t, emptyGrid())

	entry, _ := components.Arbiter.First(e.World)
	arb := components.Arbiter.Get(entry)
	m := machine(t, e)

	arb.OnInput(m, runner(t, e), status(t, e), config.SignalJump, 0)
	if m.Current() != m.Jump {
		t.Fatal("jump did not start")
	}

	// Land just after the 1s jump; the slide arrives 0.1s before landing,
	// inside the buffer window.
	tick(e, 54)
	arb.OnInput(m, runner(t, e), status(t, e), config.SignalSlide, progression(t, e).Elapsed)
	if m.Current() != m.Jump {
		t.Fatal("buffered slide pre-empted the jump")
	}

	tick(e, 15)
	if m.Current() != m.Slide {
		t.Errorf("machine in %s after landing, want slide", m.Current().Name())
	}
}

func TestStaleBufferedInputIsDropped(t *testing.T) {
	e := newTestRun(t, emptyGrid())

	entry, _ := components.Arbiter.First(e.World)
	arb := components.Arbiter.Get(entry)
	m := machine(t, e)

	arb.OnInput(m, runner(t, e), status(t, e), config.SignalJump, 0)
	tick(e, 10)
	arb.OnInput(m, runner(t, e), status(t, e), config.SignalSlide, progression(t, e).Elapsed)

	// The slide is ~0.83s old when the jump lands, past the 0.25s window.
	tick(e, 70)
	if m.Current() != m.Idle {
		t.Errorf("machine in %s, want idle (stale slide dropped)", m.Current().Name())
	}
}

func TestStreamStaysAheadOfTheRunner(t *testing.T) {
	e := newTestRun(t, emptyGrid())

	entry, _ := components.Stage.First(e.World)
	stage := components.Stage.Get(entry)

	tick(e, 120)

	prog := progression(t, e)
	_, hi, ok := stage.Window()
	if !ok {
		t.Fatal("no blocks generated")
	}
	wantFrontier := stage.CurrentBlock(prog.Distance + config.Stage.Lookahead)
	if hi < wantFrontier {
		t.Errorf("frontier at block %d, want at least %d", hi, wantFrontier)
	}
}

package components

import (
	"testing"

	"github.com/automoto/gridrunner/config"
)

func newArbiterFixture() (*InputArbiterData, *ActionMachine, *RunnerData, *RunStatusData) {
	arb := NewInputArbiter()
	m := NewActionMachine()
	r := NewRunner()
	return &arb, &m, &r, &RunStatusData{}
}

func TestActionSignalFiresImmediatelyInFreeMove(t *testing.T) {
	arb, m, r, s := newArbiterFixture()

	arb.OnInput(m, r, s, config.SignalJump, 0)
	if m.Current() != m.Jump {
		t.Errorf("machine in %s after jump signal, want jump", m.Current().Name())
	}
	if len(arb.Queue) != 0 {
		t.Errorf("free-move signal was buffered, queue len = %d", len(arb.Queue))
	}
}

func TestActionSignalBuffersWhileBlocking(t *testing.T) {
	arb, m, r, s := newArbiterFixture()
	arb.OnInput(m, r, s, config.SignalJump, 0)

	arb.OnInput(m, r, s, config.SignalSlide, 0.2)
	if m.Current() != m.Jump {
		t.Errorf("machine left jump on buffered signal: %s", m.Current().Name())
	}
	if len(arb.Queue) != 1 || arb.Queue[0].Signal != config.SignalSlide {
		t.Errorf("queue = %+v, want one buffered slide", arb.Queue)
	}
}

func TestBufferEvictsOldestAtCapacity(t *testing.T) {
	arb, m, r, s := newArbiterFixture()
	arb.OnInput(m, r, s, config.SignalJump, 0)

	// Capacity is 3; the fourth enqueue drops the first.
	arb.OnInput(m, r, s, config.SignalSlide, 0.1)
	arb.OnInput(m, r, s, config.SignalAttack, 0.2)
	arb.OnInput(m, r, s, config.SignalSlide, 0.3)
	arb.OnInput(m, r, s, config.SignalAttack, 0.4)

	if len(arb.Queue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(arb.Queue))
	}
	want := []config.SignalID{config.SignalAttack, config.SignalSlide, config.SignalAttack}
	for i, sig := range want {
		if arb.Queue[i].Signal != sig {
			t.Errorf("queue[%d] = %s, want %s",
				i, config.SignalName[arb.Queue[i].Signal], config.SignalName[sig])
		}
	}
}

func TestBlockingExitReplaysFreshSignal(t *testing.T) {
	arb, m, r, s := newArbiterFixture()
	arb.OnInput(m, r, s, config.SignalJump, 0)
	arb.OnInput(m, r, s, config.SignalSlide, 0.9)

	// Jump ends at 1.0; the slide arrived 0.1s ago, inside the 0.25s window.
	for i := 0; i < 70; i++ {
		m.Tick(1.0 / 60.0)
	}
	if !m.ConsumeBlockingExit() {
		t.Fatal("jump did not signal a blocking exit")
	}
	arb.OnBlockingExit(m, 1.0)

	if m.Current() != m.Slide {
		t.Errorf("machine in %s after replay, want slide", m.Current().Name())
	}
	if len(arb.Queue) != 0 {
		t.Errorf("queue not drained, len = %d", len(arb.Queue))
	}
}

func TestBlockingExitDiscardsStaleSignals(t *testing.T) {
	arb, m, r, s := newArbiterFixture()
	arb.OnInput(m, r, s, config.SignalJump, 0)
	arb.OnInput(m, r, s, config.SignalSlide, 0.1)   // stale by 0.9s at exit
	arb.OnInput(m, r, s, config.SignalAttack, 0.85) // fresh

	for i := 0; i < 70; i++ {
		m.Tick(1.0 / 60.0)
	}
	m.ConsumeBlockingExit()
	arb.OnBlockingExit(m, 1.0)

	if m.Current() != m.Attack {
		t.Errorf("machine in %s, want attack (stale slide skipped)", m.Current().Name())
	}
	if len(arb.Queue) != 0 {
		t.Errorf("queue not drained, len = %d", len(arb.Queue))
	}
}

func TestBlockingExitConsumesRefusedSignal(t *testing.T) {
	arb, m, r, s := newArbiterFixture()

	// Fire an attack, then buffer another during a jump that ends while the
	// attack cooldown still runs. The replay attempt fails and the entry is
	// consumed, not retried.
	m.Attack.Cooldown = 3.0 // outlast the whole sequence
	arb.OnInput(m, r, s, config.SignalAttack, 0)
	for i := 0; i < 30; i++ {
		m.Tick(1.0 / 60.0)
	}
	m.ConsumeBlockingExit()

	arb.OnInput(m, r, s, config.SignalJump, 0.5)
	arb.OnInput(m, r, s, config.SignalAttack, 1.4)
	for i := 0; i < 70; i++ {
		m.Tick(1.0 / 60.0)
	}
	m.ConsumeBlockingExit()
	arb.OnBlockingExit(m, 1.5)

	if m.Current() != m.Idle {
		t.Errorf("machine in %s, want idle (attack refused by cooldown)", m.Current().Name())
	}
	if len(arb.Queue) != 0 {
		t.Errorf("refused signal left in queue, len = %d", len(arb.Queue))
	}
}

func TestLaneMovesBypassTheMachine(t *testing.T) {
	arb, m, r, s := newArbiterFixture()
	arb.OnInput(m, r, s, config.SignalJump, 0)

	arb.OnInput(m, r, s, config.SignalMoveLeft, 0.1)
	if r.Lane != config.Run.StartLane-1 {
		t.Errorf("lane = %d, want %d (move applies mid-jump)", r.Lane, config.Run.StartLane-1)
	}
	if len(arb.Queue) != 0 {
		t.Errorf("lane move was buffered, queue len = %d", len(arb.Queue))
	}

	// Clamped at the track edge.
	arb.OnInput(m, r, s, config.SignalMoveLeft, 0.2)
	arb.OnInput(m, r, s, config.SignalMoveLeft, 0.3)
	if r.Lane != 0 {
		t.Errorf("lane = %d, want 0 after clamping", r.Lane)
	}
}

func TestPauseTogglesImmediately(t *testing.T) {
	arb, m, r, s := newArbiterFixture()
	arb.OnInput(m, r, s, config.SignalJump, 0)

	arb.OnInput(m, r, s, config.SignalPause, 0.1)
	if !s.Paused {
		t.Error("pause signal during a blocking state was not applied")
	}
	arb.OnInput(m, r, s, config.SignalPause, 0.2)
	if s.Paused {
		t.Error("second pause signal did not unpause")
	}
}

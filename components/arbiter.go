package components

import (
	"github.com/automoto/gridrunner/config"
	"github.com/yohamta/donburi"
)

// BufferedSignal is an action signal held while a Blocking state runs.
type BufferedSignal struct {
	Signal config.SignalID
	At     float64 // arrival time on the run clock, seconds
}

// InputArbiterData routes decoded input signals into the action machine.
// Action signals hitting a Blocking state are buffered in a bounded FIFO and
// replayed when the state exits, if still within the buffer window. Lane and
// pause signals bypass the machine entirely.
type InputArbiterData struct {
	Capacity     int
	BufferWindow float64

	Queue            []BufferedSignal
	LastBlockingExit float64
}

var Arbiter = donburi.NewComponentType[InputArbiterData]()

// NewInputArbiter builds an arbiter from the input config.
func NewInputArbiter() InputArbiterData {
	return InputArbiterData{
		Capacity:     config.Input.QueueCapacity,
		BufferWindow: config.Input.BufferWindow,
	}
}

// targetFor maps an action signal to its machine state; nil for signal kinds
// the machine does not consume.
func targetFor(m *ActionMachine, sig config.SignalID) ActionState {
	switch sig {
	case config.SignalJump:
		return m.Jump
	case config.SignalSlide:
		return m.Slide
	case config.SignalAttack:
		return m.Attack
	default:
		return nil
	}
}

// OnInput handles one decoded signal arriving at time now. Unmapped signal
// kinds are ignored; nothing on this path returns an error.
func (a *InputArbiterData) OnInput(m *ActionMachine, r *RunnerData, s *RunStatusData, sig config.SignalID, now float64) {
	switch sig {
	case config.SignalMoveLeft:
		r.Move(-1)
		return
	case config.SignalMoveRight:
		r.Move(1)
		return
	case config.SignalPause:
		s.TogglePause()
		return
	}

	target := targetFor(m, sig)
	if target == nil {
		return
	}

	if m.Current().Tag() == FreeMove {
		m.TransitionTo(target)
		return
	}

	a.enqueue(sig, now)
}

// enqueue appends to the FIFO; at capacity the oldest entry is evicted.
func (a *InputArbiterData) enqueue(sig config.SignalID, now float64) {
	if a.Capacity <= 0 {
		return
	}
	if len(a.Queue) >= a.Capacity {
		a.Queue = a.Queue[1:]
	}
	a.Queue = append(a.Queue, BufferedSignal{Signal: sig, At: now})
}

// OnBlockingExit records the exit time and replays the oldest still-fresh
// buffered signal. Stale entries are discarded front to back; the first fresh
// one is attempted and consumed whether or not the transition succeeds.
func (a *InputArbiterData) OnBlockingExit(m *ActionMachine, now float64) {
	a.LastBlockingExit = now

	for len(a.Queue) > 0 {
		entry := a.Queue[0]
		a.Queue = a.Queue[1:]
		if now-entry.At > a.BufferWindow {
			continue
		}
		m.TransitionTo(targetFor(m, entry.Signal))
		return
	}
}

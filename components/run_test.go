package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func newSinkWorld() (WorldSink, *RunStatusData) {
	world := donburi.NewWorld()
	entry := world.Entry(world.Create(RunStatus))
	RunStatus.SetValue(entry, RunStatusData{})
	return WorldSink{World: world}, RunStatus.Get(entry)
}

func TestWorldSinkReportsIntoStatus(t *testing.T) {
	sink, status := newSinkWorld()

	sink.AddScore(10)
	sink.AddScore(10)
	if status.Score != 20 {
		t.Errorf("score = %d, want 20", status.Score)
	}

	sink.GameOver("spike")
	if !status.Over || status.Cause != "spike" {
		t.Errorf("status = %+v, want over with cause spike", status)
	}
}

func TestWorldSinkDropsEventsAfterFinish(t *testing.T) {
	sink, status := newSinkWorld()
	sink.GameClear()

	sink.AddScore(10)
	sink.GameOver("spike")

	if status.Score != 0 {
		t.Errorf("score changed after the run ended: %d", status.Score)
	}
	if status.Over {
		t.Error("game over recorded after a clear")
	}
	if status.Cause != "" {
		t.Errorf("cause = %q after a clear", status.Cause)
	}
}

func TestTogglePauseIgnoredOnceFinished(t *testing.T) {
	s := &RunStatusData{}
	s.TogglePause()
	if !s.Paused {
		t.Fatal("pause did not apply")
	}
	s.TogglePause()

	s.Over = true
	s.TogglePause()
	if s.Paused {
		t.Error("pause applied after the run ended")
	}
}

package components

import (
	"log"

	"github.com/yohamta/donburi"
)

// RunStatusData tracks the outcome-facing state of the current run. It is the
// target of every progress-sink notification; the core writes it through the
// sink and never branches on it outside the system gates.
type RunStatusData struct {
	Score   int
	Over    bool
	Cleared bool
	Paused  bool
	Cause   string  // what ended the run, for the game-over screen
	Best    float64 // best distance loaded from disk (client only)
}

// Finished reports whether the run has ended, by damage or by the finish line.
func (s *RunStatusData) Finished() bool {
	return s.Over || s.Cleared
}

// TogglePause flips pause state. Ignored once the run has ended.
func (s *RunStatusData) TogglePause() {
	if s.Finished() {
		return
	}
	s.Paused = !s.Paused
}

var RunStatus = donburi.NewComponentType[RunStatusData]()

// ProgressSink receives one-way run events: score deltas, game over on a
// damage hit, game clear on crossing the finish distance. The core calls out
// and never reads back.
type ProgressSink interface {
	AddScore(delta int)
	GameOver(cause string)
	GameClear()
}

// WorldSink is the shipped ProgressSink: it reports into the RunStatus
// singleton of a world. Events arriving after the run ended are dropped.
type WorldSink struct {
	World donburi.World
}

func (s WorldSink) status() *RunStatusData {
	entry, ok := RunStatus.First(s.World)
	if !ok {
		return nil
	}
	return RunStatus.Get(entry)
}

func (s WorldSink) AddScore(delta int) {
	st := s.status()
	if st == nil || st.Finished() {
		return
	}
	st.Score += delta
}

func (s WorldSink) GameOver(cause string) {
	st := s.status()
	if st == nil || st.Finished() {
		return
	}
	st.Over = true
	st.Cause = cause
	log.Printf("run over: hit %s", cause)
}

func (s WorldSink) GameClear() {
	st := s.status()
	if st == nil || st.Finished() {
		return
	}
	st.Cleared = true
	log.Printf("run cleared")
}

package components

import (
	"github.com/automoto/gridrunner/config"
	"github.com/yohamta/donburi"
)

// RunnerData holds the player's lateral position. Lane changes bypass the
// action state machine: they apply immediately in any action state.
type RunnerData struct {
	Lane      int
	LaneCount int
}

var Runner = donburi.NewComponentType[RunnerData]()

// NewRunner places the runner on the configured start lane.
func NewRunner() RunnerData {
	return RunnerData{
		Lane:      config.Run.StartLane,
		LaneCount: config.Run.LaneCount,
	}
}

// Move shifts the runner by delta lanes, clamped to the track.
func (r *RunnerData) Move(delta int) {
	lane := r.Lane + delta
	if lane < 0 {
		lane = 0
	}
	if lane > r.LaneCount-1 {
		lane = r.LaneCount - 1
	}
	r.Lane = lane
}

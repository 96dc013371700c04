package components

import "github.com/yohamta/donburi"

// GridCell is a discretized track position: Index = floor(distance).
type GridCell struct {
	Index int
	Lane  int
}

// HitDetectorData tracks the last evaluated cell so every crossed cell is
// visited exactly once, however far a single tick travels.
type HitDetectorData struct {
	Prev GridCell
}

var Hit = donburi.NewComponentType[HitDetectorData]()

// Sweep returns the cells to evaluate for the move to curr, in increasing
// distance order, and advances the previous-cell marker.
//
// A tick with no cell change returns nothing: that is the single-hit
// guarantee for a stationary runner. A pure lane change at unchanged distance
// re-evaluates exactly the new cell. Otherwise every index in
// (prev.Index, curr.Index] is visited with the lane in effect this tick; lane
// changes only happen at the arbiter step, so that lane is the lane held when
// each index was reached.
func (h *HitDetectorData) Sweep(curr GridCell) []GridCell {
	prev := h.Prev
	if curr == prev {
		return nil
	}
	h.Prev = curr

	if curr.Index == prev.Index {
		return []GridCell{curr}
	}

	cells := make([]GridCell, 0, curr.Index-prev.Index)
	for i := prev.Index + 1; i <= curr.Index; i++ {
		cells = append(cells, GridCell{Index: i, Lane: curr.Lane})
	}
	return cells
}

package components

import (
	"reflect"
	"testing"
)

func TestSweep(t *testing.T) {
	tests := []struct {
		name string
		prev GridCell
		curr GridCell
		want []GridCell
	}{
		{
			name: "no movement",
			prev: GridCell{Index: 5, Lane: 1},
			curr: GridCell{Index: 5, Lane: 1},
			want: nil,
		},
		{
			name: "one cell forward",
			prev: GridCell{Index: 5, Lane: 1},
			curr: GridCell{Index: 6, Lane: 1},
			want: []GridCell{{Index: 6, Lane: 1}},
		},
		{
			name: "fast tick crosses three cells",
			prev: GridCell{Index: 5, Lane: 1},
			curr: GridCell{Index: 8, Lane: 1},
			want: []GridCell{{Index: 6, Lane: 1}, {Index: 7, Lane: 1}, {Index: 8, Lane: 1}},
		},
		{
			name: "pure lane change re-evaluates the new cell",
			prev: GridCell{Index: 5, Lane: 1},
			curr: GridCell{Index: 5, Lane: 2},
			want: []GridCell{{Index: 5, Lane: 2}},
		},
		{
			name: "movement and lane change use the new lane",
			prev: GridCell{Index: 5, Lane: 0},
			curr: GridCell{Index: 7, Lane: 2},
			want: []GridCell{{Index: 6, Lane: 2}, {Index: 7, Lane: 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HitDetectorData{Prev: tt.prev}
			got := h.Sweep(tt.curr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sweep(%v) = %v, want %v", tt.curr, got, tt.want)
			}
			if h.Prev != tt.curr {
				t.Errorf("Prev = %v after sweep, want %v", h.Prev, tt.curr)
			}
		})
	}
}

func TestSweepVisitsEachCellOnce(t *testing.T) {
	h := HitDetectorData{Prev: GridCell{Index: 0, Lane: 1}}

	seen := map[int]int{}
	for i := 1; i <= 4; i++ {
		for _, c := range h.Sweep(GridCell{Index: i * 3, Lane: 1}) {
			seen[c.Index]++
		}
	}
	for idx, n := range seen {
		if n != 1 {
			t.Errorf("cell %d visited %d times", idx, n)
		}
	}
	if len(seen) != 12 {
		t.Errorf("visited %d cells, want 12", len(seen))
	}
}

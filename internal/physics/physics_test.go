package physics

import (
	"sort"
	"testing"
)

func TestOverlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 40, H: 40}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rect{X: 20, Y: 20, W: 5, H: 10}, true},
		{"partial corner", Rect{X: 45, Y: 45, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 50, Y: 10, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 10, Y: 50, W: 10, H: 10}, false},
		{"touching left edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"touching top edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"far away", Rect{X: 200, Y: 200, W: 10, H: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(base, tc.other); got != tc.want {
				t.Errorf("Overlaps(base, %+v) = %v, want %v", tc.other, got, tc.want)
			}
			if got := Overlaps(tc.other, base); got != tc.want {
				t.Errorf("Overlaps(%+v, base) = %v, want %v (not symmetric)", tc.other, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp below: got %v, want 0", got)
	}
	if got := Clamp(13, 0, 10); got != 10 {
		t.Errorf("Clamp above: got %v, want 10", got)
	}
	if got := Clamp(4.5, 0, 10); got != 4.5 {
		t.Errorf("Clamp inside: got %v, want 4.5", got)
	}
}

func collect(g *SpatialGrid, x, y float64) []int {
	var found []int
	g.QueryAround(x, y, func(index int) bool {
		found = append(found, index)
		return false
	})
	sort.Ints(found)
	return found
}

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(800, 600, 40)
	g.Insert(100, 100, 0) // cell (2,2)
	g.Insert(130, 130, 1) // cell (3,3)
	g.Insert(400, 400, 2) // far away
	g.Insert(-40, -50, 3) // clamped into cell (0,0)

	got := collect(g, 90, 90)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("QueryAround(90,90) = %v, want [0 1]", got)
	}

	got = collect(g, 5, 5)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("QueryAround(5,5) = %v, want [3]", got)
	}

	g.Clear()
	if got := collect(g, 100, 100); len(got) != 0 {
		t.Errorf("QueryAround after Clear = %v, want empty", got)
	}
}

func TestSpatialGridEarlyStop(t *testing.T) {
	g := NewSpatialGrid(800, 600, 40)
	for i := 0; i < 5; i++ {
		g.Insert(100, 100, i)
	}

	calls := 0
	g.QueryAround(100, 100, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Errorf("expected iteration to stop after first item, got %d calls", calls)
	}
}

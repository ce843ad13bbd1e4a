package grid

import (
	"math/rand"
	"testing"
)

func TestMove(t *testing.T) {
	start := Position{X: 4, Y: 4}

	tests := []struct {
		dir      Direction
		expected Position
	}{
		{Left, Position{X: 3, Y: 4}},
		{Right, Position{X: 5, Y: 4}},
		{Up, Position{X: 4, Y: 3}},
		{Down, Position{X: 4, Y: 5}},
		{Direction("sideways"), start},
	}

	for _, tc := range tests {
		t.Run(string(tc.dir), func(t *testing.T) {
			if got := Move(start, tc.dir); got != tc.expected {
				t.Errorf("Move(%v, %q) = %v, expected %v", start, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestMoveDoesNotClamp(t *testing.T) {
	got := Move(Position{X: 0, Y: 0}, Left)
	if got.X != -1 {
		t.Errorf("Move left from origin should leave the grid, got %v", got)
	}
}

func TestIsBlocked(t *testing.T) {
	g := New(10, Position{X: 3, Y: 3})

	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"empty cell", Position{X: 2, Y: 3}, false},
		{"obstacle", Position{X: 3, Y: 3}, true},
		{"left of grid", Position{X: -1, Y: 0}, true},
		{"above grid", Position{X: 0, Y: -1}, true},
		{"right edge (exclusive)", Position{X: 10, Y: 5}, true},
		{"bottom edge (exclusive)", Position{X: 5, Y: 10}, true},
		{"bottom-right corner", Position{X: 9, Y: 9}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsBlocked(tc.pos); got != tc.expected {
				t.Errorf("IsBlocked(%v) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestSenseWalls(t *testing.T) {
	g := New(10, Position{X: 1, Y: 0})

	tests := []struct {
		name     string
		pos      Position
		expected Sides
	}{
		{"top-left", Position{X: 0, Y: 0}, Sides{Left: true, Up: true}},
		{"bottom-right", Position{X: 9, Y: 9}, Sides{Right: true, Down: true}},
		{"center", Position{X: 5, Y: 5}, Sides{}},
		{"bottom edge", Position{X: 4, Y: 9}, Sides{Down: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.SenseWalls(tc.pos); got != tc.expected {
				t.Errorf("SenseWalls(%v) = %+v, expected %+v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestSenseObstacles(t *testing.T) {
	g := New(10, Position{X: 1, Y: 0}, Position{X: 5, Y: 6})

	tests := []struct {
		name     string
		pos      Position
		expected Sides
	}{
		{"origin next to obstacle", Position{X: 0, Y: 0}, Sides{Left: true, Right: true, Up: true}},
		{"above obstacle", Position{X: 5, Y: 5}, Sides{Down: true}},
		{"open cell", Position{X: 7, Y: 7}, Sides{}},
		{"bottom-right corner", Position{X: 9, Y: 9}, Sides{Right: true, Down: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.SenseObstacles(tc.pos); got != tc.expected {
				t.Errorf("SenseObstacles(%v) = %+v, expected %+v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestSidesGet(t *testing.T) {
	s := Sides{Left: true, Down: true}
	for _, d := range Directions {
		want := d == Left || d == Down
		if s.Get(d) != want {
			t.Errorf("Get(%q) = %v, expected %v", d, s.Get(d), want)
		}
	}
	if s.Get("nowhere") {
		t.Error("Get with unknown direction should be false")
	}
}

func TestRandomObstaclesDeterminism(t *testing.T) {
	a := RandomObstacles(10, 5, rand.New(rand.NewSource(7)))
	b := RandomObstacles(10, 5, rand.New(rand.NewSource(7)))

	if len(a) != 5 {
		t.Fatalf("Expected 5 obstacles, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Obstacle %d mismatch: %v vs %v", i, a[i], b[i])
		}
		if !New(10).InBounds(a[i]) {
			t.Errorf("Obstacle %d out of bounds: %v", i, a[i])
		}
	}
}

func TestRandomObstaclesEmpty(t *testing.T) {
	if got := RandomObstacles(10, 0, rand.New(rand.NewSource(1))); len(got) != 0 {
		t.Errorf("Expected no obstacles, got %v", got)
	}
}

func TestRows(t *testing.T) {
	g := New(3, Position{X: 1, Y: 1})
	rows := g.Rows(Position{X: 0, Y: 0}, Position{X: 2, Y: 2})

	expected := []string{"H..", ".■.", "..S"}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Errorf("Row %d = %q, expected %q", i, rows[i], expected[i])
		}
	}

	// Hider wins the cell when caught
	rows = g.Rows(Position{X: 2, Y: 0}, Position{X: 2, Y: 0})
	if rows[0] != "..H" {
		t.Errorf("Shared cell should show hider, got %q", rows[0])
	}
}

// Package players contains the built-in hide and seek strategies.
// Each player registers itself with strategy.Default in init(), so importing
// this package for side effects makes them available to the tournament.
package players

import (
	"github.com/vovakirdan/hideseek/internal/grid"
	"github.com/vovakirdan/hideseek/internal/strategy"
)

func init() {
	strategy.MustRegister("holly", Holly{})
	strategy.MustRegister("sweeper", Sweeper{})
	strategy.MustRegister("statue", Statue{})
}

// Holly runs along the edges: the hider heads down then right, the seeker
// heads left then up. It only looks at walls, so obstacles stop it.
type Holly struct{}

// Hide moves down until the bottom edge, then right.
func (Holly) Hide(t strategy.Turn) error {
	walls := t.Walls()
	if !walls.Down {
		t.Move(grid.Down)
	} else if !walls.Right {
		t.Move(grid.Right)
	}
	return nil
}

// Seek moves left until the left edge, then up.
func (Holly) Seek(t strategy.Turn) error {
	walls := t.Walls()
	if !walls.Left {
		t.Move(grid.Left)
	} else if !walls.Up {
		t.Move(grid.Up)
	}
	return nil
}

// Sweeper steers around obstacles using the obstacle sensor.
type Sweeper struct{}

// Hide moves right along the top row, dropping down when blocked.
func (Sweeper) Hide(t strategy.Turn) error {
	firstOpen(t, grid.Right, grid.Down)
	return nil
}

// Seek climbs up, then cuts left, falling back to down when boxed in.
func (Sweeper) Seek(t strategy.Turn) error {
	firstOpen(t, grid.Up, grid.Left, grid.Down)
	return nil
}

// Statue never moves as hider and walks to the top-left corner as seeker.
type Statue struct{}

// Hide stays put.
func (Statue) Hide(strategy.Turn) error { return nil }

// Seek moves left, then up, around obstacles.
func (Statue) Seek(t strategy.Turn) error {
	firstOpen(t, grid.Left, grid.Up)
	return nil
}

// firstOpen moves in the first direction that is not blocked.
func firstOpen(t strategy.Turn, dirs ...grid.Direction) {
	blocked := t.Obstacles()
	for _, d := range dirs {
		if !blocked.Get(d) {
			t.Move(d)
			return
		}
	}
}

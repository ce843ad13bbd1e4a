package match

import "github.com/vovakirdan/hideseek/internal/grid"

// turn is the strategy.Turn for one decision call. Sensing and move
// destinations are evaluated from the agent's position at the start of the
// tick, so an agent moves at most one cell per tick; the last accepted
// request wins.
type turn struct {
	grid      grid.Grid
	from      grid.Position
	remaining int

	to    grid.Position
	moved bool
}

func (t *turn) Walls() grid.Sides {
	return t.grid.SenseWalls(t.from)
}

func (t *turn) Obstacles() grid.Sides {
	return t.grid.SenseObstacles(t.from)
}

func (t *turn) RemainingTicks() int {
	return t.remaining
}

func (t *turn) Move(dir grid.Direction) {
	dest := grid.Move(t.from, dir)
	if t.grid.IsBlocked(dest) {
		return
	}
	t.to = dest
	t.moved = true
}

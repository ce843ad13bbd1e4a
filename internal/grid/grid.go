// Package grid provides the square playing field used by hide and seek
// matches: positions, unit moves, collision checks and the sensing helpers
// handed to strategies. It holds no state of its own.
package grid

import "math/rand"

// DefaultSize is the side length of the playing field.
const DefaultSize = 10

// Position is a cell on the grid. X grows to the right, Y grows downwards.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is one of the four unit moves a strategy may request.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists all directions in sensing order.
var Directions = []Direction{Left, Right, Up, Down}

// Sides holds one flag per direction.
type Sides struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Up    bool `json:"up"`
	Down  bool `json:"down"`
}

// Get returns the flag for the given direction.
// Unknown directions report false.
func (s Sides) Get(d Direction) bool {
	switch d {
	case Left:
		return s.Left
	case Right:
		return s.Right
	case Up:
		return s.Up
	case Down:
		return s.Down
	default:
		return false
	}
}

// Grid is the field for one tournament run: its size and the fixed obstacle set.
// Obstacles may contain duplicates.
type Grid struct {
	Size      int        `json:"gridSize"`
	Obstacles []Position `json:"obstacles"`
}

// New creates a grid of the given size with the given obstacles.
func New(size int, obstacles ...Position) Grid {
	return Grid{Size: size, Obstacles: obstacles}
}

// Move returns the position one step away in direction d.
// The result is not clamped and may lie outside the grid.
// An unknown direction returns p unchanged.
func Move(p Position, d Direction) Position {
	switch d {
	case Left:
		p.X--
	case Right:
		p.X++
	case Up:
		p.Y--
	case Down:
		p.Y++
	}
	return p
}

// InBounds reports whether p lies on the grid.
func (g Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// IsObstacle reports whether any obstacle occupies p.
func (g Grid) IsObstacle(p Position) bool {
	for _, o := range g.Obstacles {
		if o == p {
			return true
		}
	}
	return false
}

// IsBlocked reports whether p is out of bounds or occupied by an obstacle.
func (g Grid) IsBlocked(p Position) bool {
	return !g.InBounds(p) || g.IsObstacle(p)
}

// SenseWalls reports, per direction, whether p already sits on that edge of the grid.
// Obstacles are not considered.
func (g Grid) SenseWalls(p Position) Sides {
	return Sides{
		Left:  p.X <= 0,
		Right: p.X >= g.Size-1,
		Up:    p.Y <= 0,
		Down:  p.Y >= g.Size-1,
	}
}

// SenseObstacles reports, per direction, whether a step that way would be blocked.
func (g Grid) SenseObstacles(p Position) Sides {
	return Sides{
		Left:  g.IsBlocked(Move(p, Left)),
		Right: g.IsBlocked(Move(p, Right)),
		Up:    g.IsBlocked(Move(p, Up)),
		Down:  g.IsBlocked(Move(p, Down)),
	}
}

// HiderStart is the top-left corner.
func (g Grid) HiderStart() Position {
	return Position{X: 0, Y: 0}
}

// SeekerStart is the bottom-right corner.
func (g Grid) SeekerStart() Position {
	return Position{X: g.Size - 1, Y: g.Size - 1}
}

// RandomObstacles draws count positions uniformly from a size×size grid.
// Positions are independent draws, so duplicates and start corners are possible.
func RandomObstacles(size, count int, rng *rand.Rand) []Position {
	if size <= 0 || count <= 0 {
		return []Position{}
	}
	out := make([]Position, count)
	for i := range out {
		out[i] = Position{X: rng.Intn(size), Y: rng.Intn(size)}
	}
	return out
}

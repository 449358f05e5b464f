package arena

import "math/rand"

// Position is a grid cell coordinate.
type Position struct {
	X int
	Y int
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return "invalid"
	}
	return directionNames[d]
}

// Delta returns the per-tick cell offset for the direction.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{0, -1}
	case Down:
		return Position{0, 1}
	case Left:
		return Position{-1, 0}
	default:
		return Position{1, 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Directions lists all four directions in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Add returns p shifted by d.
func (p Position) Add(d Direction) Position {
	delta := d.Delta()
	return Position{p.X + delta.X, p.Y + delta.Y}
}

// ManhattanDistance returns |dx| + |dy| between two cells.
func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (c Config) inBounds(p Position) bool {
	return p.X >= 0 && p.X < c.GridWidth && p.Y >= 0 && p.Y < c.GridHeight
}

// findEmptyCell picks a uniformly random cell not present in occupied.
// The occupied set is owned by the caller and never retained. Random probing
// is capped at 4*W*H attempts, after which a linear scan settles whether the
// board is genuinely full; ok is false only in that case.
func findEmptyCell(cfg Config, rng *rand.Rand, occupied map[Position]bool) (Position, bool) {
	maxProbes := 4 * cfg.GridWidth * cfg.GridHeight
	for i := 0; i < maxProbes; i++ {
		p := Position{rng.Intn(cfg.GridWidth), rng.Intn(cfg.GridHeight)}
		if !occupied[p] {
			return p, true
		}
	}

	free := make([]Position, 0, 16)
	for y := 0; y < cfg.GridHeight; y++ {
		for x := 0; x < cfg.GridWidth; x++ {
			p := Position{x, y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, false
	}
	return free[rng.Intn(len(free))], true
}

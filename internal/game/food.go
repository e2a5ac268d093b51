package game

import (
	"errors"
	"math/rand"
)

// ErrNoFreeCell is returned when the board has no cell left to hold food.
// The win transition fires while one cell is still free, so hitting this
// error means the state machine's win check is broken.
var ErrNoFreeCell = errors.New("game: no free cell for food")

// FoodPlacer picks the next food cell. Implementations must never return a
// cell contained in occupied.
type FoodPlacer interface {
	Place(occupied []Cell, width, height int) (Cell, error)
}

// RandomPlacer picks uniformly among the free cells. It enumerates the free
// set instead of rejection sampling, so placement terminates in O(grid) time
// even on a nearly full board.
type RandomPlacer struct {
	rng *rand.Rand
}

// NewRandomPlacer creates a placer seeded for deterministic replays.
func NewRandomPlacer(seed int64) *RandomPlacer {
	return &RandomPlacer{rng: rand.New(rand.NewSource(seed))}
}

// Place returns a uniformly random unoccupied cell.
func (p *RandomPlacer) Place(occupied []Cell, width, height int) (Cell, error) {
	taken := make(map[Cell]bool, len(occupied))
	for _, c := range occupied {
		taken[c] = true
	}

	free := make([]Cell, 0, width*height-len(taken))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Cell{X: x, Y: y}
			if !taken[c] {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{}, ErrNoFreeCell
	}
	return free[p.rng.Intn(len(free))], nil
}

package grid

import (
	"fmt"
	"math/rand"
)

// Probability that a spawned tile is a 4 instead of a 2
const FourProbability = 0.1

// NewTile places a 2 (90%) or a 4 (10%) on a uniformly chosen empty cell.
// Calling it on a full board is a contract violation reported as
// ErrNoEmptyCell.
func NewTile(b *Board, rng *rand.Rand) error {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return fmt.Errorf("spawn on %dx%d board: %w", b.height, b.width, ErrNoEmptyCell)
	}

	p := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < FourProbability {
		value = 4
	}
	b.Set(p.Row, p.Col, value)
	return nil
}

package grid

import "math/rand"

// Outcome of a move that changed the board
type Outcome struct {
	Board Board
	Delta int // sum of the tiles created by merges
}

// Shift slides and merges every line toward dir's leading edge, without
// spawning a tile. Returns the merge score delta and whether any cell
// changed.
func (b *Board) Shift(dir Direction) (int, bool) {
	ls, steps := lines(dir, b.height, b.width)
	cut := make([]int, steps)
	merged := make([]int, steps)
	delta := 0
	changed := false

	for _, l := range ls {
		for i := range steps {
			cut[i] = b.cells[(l.row+i*l.dRow)*b.width+l.col+i*l.dCol]
			merged[i] = 0
		}

		delta += mergeInto(merged, cut)

		for i := range steps {
			if merged[i] != cut[i] {
				changed = true
				b.cells[(l.row+i*l.dRow)*b.width+l.col+i*l.dCol] = merged[i]
			}
		}
	}

	return delta, changed
}

// ApplyMove moves the tiles of b in place and, when the board changed,
// spawns a new tile. A no-op move leaves b untouched and spawns nothing.
func ApplyMove(b *Board, dir Direction, rng *rand.Rand) (delta int, changed bool, err error) {
	delta, changed = b.Shift(dir)
	if !changed {
		return 0, false, nil
	}
	if err := NewTile(b, rng); err != nil {
		return delta, true, err
	}
	return delta, true, nil
}

// Successor applies dir to a private copy of b. The second return value is
// false for a no-op move, in which case there is no new board, no spawn and
// no score change. b itself is never modified.
func Successor(b Board, dir Direction, rng *rand.Rand) (Outcome, bool) {
	next := b.Clone()
	delta, changed := next.Shift(dir)
	if !changed {
		return Outcome{}, false
	}

	// A changed line always frees at least one cell
	if err := NewTile(&next, rng); err != nil {
		panic(err)
	}
	return Outcome{Board: next, Delta: delta}, true
}

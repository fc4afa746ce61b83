package grid

// LegalMoves returns the directions whose move changes the board, in
// Directions order, by shifting a scratch copy in every direction.
// An empty result means the game is over.
func LegalMoves(b Board) []Direction {
	legal := make([]Direction, 0, len(Directions))
	for _, dir := range Directions {
		scratch := b.Clone()
		if _, changed := scratch.Shift(dir); changed {
			legal = append(legal, dir)
		}
	}
	return legal
}

// FastLegalMoves gives the same answer as LegalMoves with an adjacency scan
// and no allocation per direction
func FastLegalMoves(b Board) []Direction {
	legal := make([]Direction, 0, len(Directions))
	for _, dir := range Directions {
		if CanMove(b, dir) {
			legal = append(legal, dir)
		}
	}
	return legal
}

// CanMove reports whether dir would change the board: some line has a tile
// with an empty cell ahead of it (toward the leading edge), or two equal
// tiles next to each other
func CanMove(b Board, dir Direction) bool {
	ls, steps := lines(dir, b.height, b.width)
	for _, l := range ls {
		prev := b.cells[l.row*b.width+l.col]
		for i := 1; i < steps; i++ {
			cur := b.cells[(l.row+i*l.dRow)*b.width+l.col+i*l.dCol]
			if cur != 0 && (prev == 0 || prev == cur) {
				return true
			}
			prev = cur
		}
	}
	return false
}

// Terminal reports whether no direction changes the board
func Terminal(b Board) bool {
	for _, dir := range Directions {
		if CanMove(b, dir) {
			return false
		}
	}
	return true
}

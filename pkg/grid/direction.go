package grid

import (
	"fmt"
	"strings"
)

// Direction of a swipe, tiles slide toward the direction's leading edge
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right

	// Used as the move of the root node and as "no move available"
	NoDirection Direction = -1
)

// All directions in the order they are scanned, for legality checks and expansion
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case NoDirection:
		return "None"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the four swipe directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Accepts full names (case insensitive) and the w/a/s/d shorthands
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w":
		return Up, nil
	case "down", "s":
		return Down, nil
	case "left", "a":
		return Left, nil
	case "right", "d":
		return Right, nil
	}
	return NoDirection, fmt.Errorf("unknown direction %q", s)
}

// line describes where a direction's lines start and how to step along them,
// from the leading edge to the trailing edge
type line struct {
	row, col   int // start cell on the leading edge
	dRow, dCol int // step toward the trailing edge
}

// Lines perpendicular to dir (rows for Left/Right, columns for Up/Down),
// together with the line length
func lines(dir Direction, height, width int) ([]line, int) {
	switch dir {
	case Up:
		out := make([]line, width)
		for c := range width {
			out[c] = line{row: 0, col: c, dRow: 1}
		}
		return out, height
	case Down:
		out := make([]line, width)
		for c := range width {
			out[c] = line{row: height - 1, col: c, dRow: -1}
		}
		return out, height
	case Left:
		out := make([]line, height)
		for r := range height {
			out[r] = line{row: r, col: 0, dCol: 1}
		}
		return out, width
	case Right:
		out := make([]line, height)
		for r := range height {
			out[r] = line{row: r, col: width - 1, dCol: -1}
		}
		return out, width
	}
	return nil, 0
}

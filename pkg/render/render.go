// Package render draws boards on a terminal, coloured when the terminal
// supports it.
package render

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/IlikeChooros/go-mcts-2048/pkg/game"
	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
	"github.com/muesli/termenv"
)

// Background colour per log2(tile), the last one is reused for bigger tiles
var tileColors = []string{
	"#cdc1b4", // empty
	"#eee4da", "#ede0c8", "#f2b179", "#f59563", "#f67c5f", "#f65e3b",
	"#edcf72", "#edcc61", "#edc850", "#edc53f", "#edc22e", "#3c3a32",
}

type Renderer struct {
	out       *termenv.Output
	cellWidth int
}

func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...), cellWidth: 6}
}

// Plain renderer without escape codes
func NewPlain(w io.Writer) *Renderer {
	return New(w, termenv.WithProfile(termenv.Ascii))
}

func (r *Renderer) cell(value int) string {
	text := "."
	if value != grid.NoTile {
		text = fmt.Sprint(value)
	}
	pad := max(0, r.cellWidth-len(text))
	text = strings.Repeat(" ", pad-pad/2) + text + strings.Repeat(" ", pad/2)

	idx := 0
	if value != grid.NoTile {
		idx = min(bits.TrailingZeros(uint(value)), len(tileColors)-1)
	}
	style := r.out.String(text).Background(r.out.Color(tileColors[idx]))
	if value > 4 {
		style = style.Foreground(r.out.Color("#f9f6f2")).Bold()
	} else {
		style = style.Foreground(r.out.Color("#776e65"))
	}
	return style.String()
}

func (r *Renderer) Board(b grid.Board) string {
	var sb strings.Builder
	for row := range b.Height() {
		for col := range b.Width() {
			sb.WriteString(r.cell(b.Get(row, col)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Game renders the score line and the board
func (r *Renderer) Game(g *game.Game) string {
	header := r.out.String(fmt.Sprintf("Score: %d  Moves: %d  Best: %d", g.Score(), g.Moves(), g.HighestTile())).Bold()
	return header.String() + "\n" + r.Board(g.Board())
}

// Redraw clears the screen and writes the game
func (r *Renderer) Redraw(g *game.Game) {
	r.out.ClearScreen()
	r.out.MoveCursor(1, 1)
	fmt.Fprint(r.out, r.Game(g))
}

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Renderer prints the board as colored glyphs: red X, yellow O and blue # for empty cells.
type Renderer struct {
	out         *termenv.Output
	clearScreen bool

	glyphs map[entity.Piece]string
}

func New(w io.Writer, clearScreen bool, opts ...termenv.OutputOption) *Renderer {
	out := termenv.NewOutput(w, opts...)

	return &Renderer{
		out:         out,
		clearScreen: clearScreen,
		glyphs: map[entity.Piece]string{
			entity.PlayerX: out.String(entity.PlayerX.String()).Foreground(out.Color("1")).String(),
			entity.PlayerO: out.String(entity.PlayerO.String()).Foreground(out.Color("3")).String(),
			entity.Empty:   out.String(entity.Empty.String()).Foreground(out.Color("4")).String(),
		},
	}
}

// Board draws the grid top row first with the 1-based column numbers above it.
func (that *Renderer) Board(board *entity.Board) {
	if that.clearScreen {
		that.out.ClearScreen()
	}

	grid := board.Grid()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Eval: %d\n\n", board.Eval)

	for column := 1; column <= entity.Columns; column++ {
		fmt.Fprintf(&sb, "%d ", column)
	}
	sb.WriteString("\n")

	for row := entity.Rows - 1; row >= 0; row-- {
		for column := 0; column < entity.Columns; column++ {
			sb.WriteString(that.glyphs[grid[column][row]])
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	_, _ = io.WriteString(that.out, sb.String())
}

func (that *Renderer) Outcome(outcome entity.Outcome) {
	if outcome.IsDraw() {
		_, _ = io.WriteString(that.out, "Board is full, its a draw\n")
		return
	}

	_, _ = fmt.Fprintf(that.out, "%s won!\n", outcome.Winner)
}

package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	Columns   = 7
	Rows      = 6
	WinLength = 4

	CenterColumn = Columns / 2
)

// directions are (column step, row step) pairs: vertical, horizontal, diagonal up-right, diagonal down-right.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Board is a column-major grid. Row 0 is the bottom of every column and the occupied
// cells of a column always form a contiguous run starting at row 0.
type Board struct {
	cols     [Columns][Rows]Piece
	lastMove int

	// history records the inserted columns so Undo can restore lastMove.
	history [Columns * Rows]int8
	plies   int
	origin  int

	// Eval is the last score reported by a search. Display only.
	Eval int
}

func NewBoard() *Board {
	return &Board{}
}

// FromColumns builds a board directly from its cells, bypassing Insert. Gravity is not
// checked, which allows positions that cannot be reached by play.
func FromColumns(cols [Columns][Rows]Piece, lastMove int) *Board {
	return &Board{
		cols:     cols,
		lastMove: lastMove,
		origin:   lastMove,
	}
}

func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

// LastMove - column of the most recent insert.
func (that *Board) LastMove() int {
	return that.lastMove
}

// Plies - number of inserts that have not been undone.
func (that *Board) Plies() int {
	return that.plies
}

func (that *Board) Cell(column, row int) Piece {
	return that.cols[column][row]
}

// Grid - read-only copy of the cells for rendering, indexed [column][row].
func (that *Board) Grid() [Columns][Rows]Piece {
	return that.cols
}

// Insert drops piece into column. It fails with apperror.ErrColumnFull when the top cell
// of the column is occupied, leaving the board untouched.
func (that *Board) Insert(column int, piece Piece) error {
	if column < 0 || column >= Columns {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidColumn, column)
	}

	cells := &that.cols[column]
	if cells[Rows-1] != Empty {
		return fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	// place at the top slot and slide down until blocked
	row := Rows - 1
	cells[row] = piece
	for row > 0 && cells[row-1] == Empty {
		cells[row], cells[row-1] = cells[row-1], cells[row]
		row--
	}

	that.history[that.plies] = int8(column)
	that.plies++
	that.lastMove = column

	return nil
}

// Undo removes the highest piece of column. Calls must mirror Insert in LIFO order.
func (that *Board) Undo(column int) {
	if column < 0 || column >= Columns {
		return
	}

	cells := &that.cols[column]
	for row := Rows - 1; row >= 0; row-- {
		if cells[row] != Empty {
			cells[row] = Empty
			break
		}
	}

	if that.plies > 0 {
		that.plies--
		that.history[that.plies] = 0
	}

	if that.plies > 0 {
		that.lastMove = int(that.history[that.plies-1])
	} else {
		that.lastMove = that.origin
	}
}

// CheckWin looks for four in a row only on the lines passing through the top piece of
// the last played column. A four-in-a-row elsewhere on the board is not reported.
func (that *Board) CheckWin() (Piece, bool) {
	row := that.top(that.lastMove)
	if row < 0 {
		return Empty, false
	}

	for _, dir := range directions {
		line := that.segmentThrough(that.lastMove, row, dir[0], dir[1])
		for i := 0; i+WinLength <= line.length; i++ {
			if winner, ok := fourOfAKind(line.cells[i : i+WinLength]); ok {
				return winner, true
			}
		}
	}

	return Empty, false
}

// IsTerminal - reports a win for the last mover, a draw on a full board, or false
// while the game continues.
func (that *Board) IsTerminal() (Outcome, bool) {
	if winner, ok := that.CheckWin(); ok {
		return Win(winner), true
	}

	if that.IsFull() {
		return Draw(), true
	}

	return Outcome{}, false
}

// CreatesThreeInARow probes whether dropping piece into column leaves a four-cell window
// holding three of piece and one empty cell on a line through the new piece. Rows and
// columns are checked within three cells of it, diagonals end to end. The board is
// restored before returning.
func (that *Board) CreatesThreeInARow(column int, piece Piece) bool {
	if err := that.Insert(column, piece); err != nil {
		return false
	}
	defer that.Undo(column)

	row := that.top(column)
	for _, dir := range directions {
		var cells []Piece
		if dir[0] != 0 && dir[1] != 0 {
			// diagonals are inspected along their whole length
			cells = that.lineThrough(column, row, dir[0], dir[1])
		} else {
			line := that.segmentThrough(column, row, dir[0], dir[1])
			cells = line.cells[:line.length]
		}

		for i := 0; i+WinLength <= len(cells); i++ {
			own, empty := countWindow(cells[i:i+WinLength], piece)
			if own == WinLength-1 && empty == 1 {
				return true
			}
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for column := range that.cols {
		if that.cols[column][Rows-1] == Empty {
			return false
		}
	}

	return true
}

// IsColumnFull - true for a full column and for an index off the board.
func (that *Board) IsColumnFull(column int) bool {
	if column < 0 || column >= Columns {
		return true
	}

	return that.cols[column][Rows-1] != Empty
}

// Moves - playable columns in ascending order.
func (that *Board) Moves() []int {
	moves := make([]int, 0, Columns)
	for column := range that.cols {
		if that.cols[column][Rows-1] == Empty {
			moves = append(moves, column)
		}
	}

	return moves
}

// Rows - every row, bottom row first, cells left to right.
func (that *Board) Rows() [][]Piece {
	rows := make([][]Piece, Rows)
	for row := range rows {
		rows[row] = make([]Piece, Columns)
		for column := 0; column < Columns; column++ {
			rows[row][column] = that.cols[column][row]
		}
	}

	return rows
}

// Cols - every column, bottom cell first.
func (that *Board) Cols() [][]Piece {
	cols := make([][]Piece, Columns)
	for column := range cols {
		cols[column] = append([]Piece(nil), that.cols[column][:]...)
	}

	return cols
}

// Diagonals returns the up-right and down-right diagonal families. Every diagonal is
// included, down to the single-cell corners; callers skip lines shorter than WinLength.
func (that *Board) Diagonals() ([][]Piece, [][]Piece) {
	up := make([][]Piece, 0, Columns+Rows-1)
	for row := Rows - 1; row > 0; row-- {
		up = append(up, that.walk(0, row, 1, 1))
	}
	for column := 0; column < Columns; column++ {
		up = append(up, that.walk(column, 0, 1, 1))
	}

	down := make([][]Piece, 0, Columns+Rows-1)
	for row := 0; row < Rows-1; row++ {
		down = append(down, that.walk(0, row, 1, -1))
	}
	for column := 0; column < Columns; column++ {
		down = append(down, that.walk(column, Rows-1, 1, -1))
	}

	return up, down
}

// Lines - rows, columns and both diagonal families in one collection.
func (that *Board) Lines() [][]Piece {
	up, down := that.Diagonals()

	lines := make([][]Piece, 0, Rows+Columns+len(up)+len(down))
	lines = append(lines, that.Rows()...)
	lines = append(lines, that.Cols()...)
	lines = append(lines, up...)
	lines = append(lines, down...)

	return lines
}

func (that *Board) walk(column, row, dc, dr int) []Piece {
	var line []Piece
	for column >= 0 && column < Columns && row >= 0 && row < Rows {
		line = append(line, that.cols[column][row])
		column += dc
		row += dr
	}

	return line
}

// top - row of the highest piece in column, -1 when the column is empty.
func (that *Board) top(column int) int {
	for row := Rows - 1; row >= 0; row-- {
		if that.cols[column][row] != Empty {
			return row
		}
	}

	return -1
}

// lineThrough - the full line through (column, row) along one direction.
func (that *Board) lineThrough(column, row, dc, dr int) []Piece {
	for c, r := column-dc, row-dr; c >= 0 && c < Columns && r >= 0 && r < Rows; c, r = c-dc, r-dr {
		column, row = c, r
	}

	return that.walk(column, row, dc, dr)
}

type segment struct {
	cells  [2*WinLength - 1]Piece
	length int
}

// segmentThrough collects the cells up to three steps either side of (column, row)
// along one direction, so every window of the segment contains that cell.
func (that *Board) segmentThrough(column, row, dc, dr int) segment {
	var line segment
	for step := -(WinLength - 1); step <= WinLength-1; step++ {
		c, r := column+step*dc, row+step*dr
		if c < 0 || c >= Columns || r < 0 || r >= Rows {
			continue
		}

		line.cells[line.length] = that.cols[c][r]
		line.length++
	}

	return line
}

func fourOfAKind(window []Piece) (Piece, bool) {
	first := window[0]
	if first == Empty {
		return Empty, false
	}

	for _, cell := range window[1:] {
		if cell != first {
			return Empty, false
		}
	}

	return first, true
}

func countWindow(window []Piece, piece Piece) (int, int) {
	var own, empty int
	for _, cell := range window {
		switch cell {
		case piece:
			own++
		case Empty:
			empty++
		}
	}

	return own, empty
}

package engine

import (
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Negamax scores board for piece, the side to move, searching depth plies with an
// alpha-beta window. The board is mutated during the search and restored before return.
func (that *Engine) Negamax(board *entity.Board, piece entity.Piece, alpha, beta, depth int) Result {
	that.nodes++

	if outcome, ok := board.IsTerminal(); ok {
		if outcome.IsDraw() {
			return Result{}
		}

		score := WinScore + depth
		if outcome.Winner != piece {
			score = -score
		}

		return Result{Score: score}
	}

	if depth == 0 {
		return Result{Score: Evaluate(board, piece)}
	}

	best := Result{Score: -Infinity}
	for _, column := range OrderMoves(board, piece) {
		var child Result
		err := withMove(board, column, piece, func() {
			child = that.Negamax(board, piece.Opponent(), -beta, -alpha, depth-1)
		})
		if err != nil {
			continue
		}

		// strict: on equal scores the earlier, better ordered column is kept
		if score := -child.Score; score > best.Score {
			best = Result{Score: score, Column: column}
		}

		alpha = max(alpha, best.Score)
		if alpha >= beta {
			break
		}
	}

	return best
}

// withMove plays piece into column for the duration of fn and undoes it on every exit
// path. A full column returns the insert error without calling fn.
func withMove(board *entity.Board, column int, piece entity.Piece, fn func()) error {
	if err := board.Insert(column, piece); err != nil {
		return err
	}
	defer board.Undo(column)

	fn()

	return nil
}

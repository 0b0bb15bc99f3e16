package engine

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// PositiveSide is always scored positive by Evaluate, its opponent always negative.
const PositiveSide = entity.PlayerX

var windowWeights = [entity.WinLength + 1]int{1, 10, 100, 1_000, 10_000}

// Evaluate sums 10^n over every four-cell window that holds n pieces of piece and no
// opposing piece. The sign follows PositiveSide, not the side to move. A completed four
// through the last move scores ±WinScore instead.
func Evaluate(board *entity.Board, piece entity.Piece) int {
	sign := polarity(piece)

	if winner, ok := board.CheckWin(); ok {
		return polarity(winner) * WinScore
	}

	total := 0
	for _, line := range board.Lines() {
		for i := 0; i+entity.WinLength <= len(line); i++ {
			own, empty := 0, 0
			for _, cell := range line[i : i+entity.WinLength] {
				switch cell {
				case piece:
					own++
				case entity.Empty:
					empty++
				}
			}

			if own+empty == entity.WinLength {
				total += windowWeights[own]
			}
		}
	}

	return sign * total
}

func polarity(piece entity.Piece) int {
	switch piece {
	case PositiveSide:
		return 1
	case PositiveSide.Opponent():
		return -1
	default:
		panic(fmt.Sprintf("engine: cannot evaluate for piece %d", piece))
	}
}

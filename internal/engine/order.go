package engine

import (
	"cmp"
	"slices"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	ThreatBonus = 1_000
	CenterBonus = 10
)

// OrderMoves returns the playable columns, open threats first and then by closeness to
// the center. Equal priorities keep ascending column order.
func OrderMoves(board *entity.Board, piece entity.Piece) []int {
	moves := board.Moves()

	var priority [entity.Columns]int
	for _, column := range moves {
		priority[column] = CenterBonus * (entity.CenterColumn - abs(column-entity.CenterColumn))
		if board.CreatesThreeInARow(column, piece) {
			priority[column] += ThreatBonus
		}
	}

	slices.SortStableFunc(moves, func(a, b int) int {
		return cmp.Compare(priority[b], priority[a])
	})

	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

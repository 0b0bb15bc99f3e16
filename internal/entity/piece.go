package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

type Piece uint8

const (
	Empty Piece = iota
	PlayerX
	PlayerO
)

// Opponent returns the other side. Empty has no opponent and maps to itself.
func (that Piece) Opponent() Piece {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Piece) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "#"
	}
}

// ParsePiece - converts a config mark ("X" or "O") into a Piece.
func ParsePiece(mark string) (Piece, error) {
	switch mark {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrUnknownPiece, mark)
	}
}

package engine

import (
	"log/slog"
	"math"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	// WinScore is the magnitude of a decided position. Search adds the remaining depth
	// so that quicker wins and slower losses are preferred.
	WinScore = 100_000_000
	Infinity = math.MaxInt32

	MinDepth = 1
)

// Result of a search node. Column is meaningless at the frontier and at terminal nodes.
type Result struct {
	Score  int
	Column int
}

// Engine is a fixed-depth negamax searcher. It is not safe for concurrent use; give every
// seat of every game its own Engine.
type Engine struct {
	logger *slog.Logger
	depth  int
	nodes  int
}

func New(logger *slog.Logger, depth int) *Engine {
	return &Engine{
		logger: logger.With("component", "engine"),
		depth:  max(depth, MinDepth),
	}
}

func (that *Engine) Depth() int {
	return that.depth
}

// Nodes - number of nodes visited by the last search.
func (that *Engine) Nodes() int {
	return that.nodes
}

// ChooseMove searches a private copy of board and returns the selected column with its
// score from the point of view of piece. The caller's board is never modified.
func (that *Engine) ChooseMove(board *entity.Board, piece entity.Piece) (int, int) {
	work := board.Clone()

	that.nodes = 0
	result := that.Negamax(work, piece, -Infinity, Infinity, that.depth)

	that.logger.Debug("search finished",
		"piece", piece.String(),
		"depth", that.depth,
		"nodes", that.nodes,
		"column", result.Column,
		"score", result.Score,
	)

	return result.Column, result.Score
}

package agent

import (
	"github.com/rocketscienceinc/connectfour/internal/engine"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type Engine struct {
	engine *engine.Engine
}

func NewEngine(searcher *engine.Engine) *Engine {
	return &Engine{engine: searcher}
}

func (that *Engine) ChooseMove(board *entity.Board, piece entity.Piece) (Choice, error) {
	column, score := that.engine.ChooseMove(board, piece)

	return Choice{Column: column, Score: score, Searched: true}, nil
}

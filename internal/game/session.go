package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/agent"
	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var ErrIllegalMove = errors.New("agent chose an illegal move")

// Renderer receives the authoritative board before every turn and the final outcome.
type Renderer interface {
	Board(board *entity.Board)
	Outcome(outcome entity.Outcome)
}

type nopRenderer struct{}

func (nopRenderer) Board(*entity.Board)    {}
func (nopRenderer) Outcome(entity.Outcome) {}

// NopRenderer - renders nothing, for headless games.
var NopRenderer Renderer = nopRenderer{}

// Session owns the authoritative board and drives the turn loop between two agents.
type Session struct {
	logger   *slog.Logger
	board    *entity.Board
	seats    map[entity.Piece]agent.Agent
	renderer Renderer
	turn     entity.Piece
	finished bool
}

func NewSession(logger *slog.Logger, x, o agent.Agent, renderer Renderer, first entity.Piece) *Session {
	if renderer == nil {
		renderer = NopRenderer
	}

	if first != entity.PlayerX {
		first = entity.PlayerO
	}

	return &Session{
		logger:   logger.With("component", "session"),
		board:    entity.NewBoard(),
		seats:    map[entity.Piece]agent.Agent{entity.PlayerX: x, entity.PlayerO: o},
		renderer: renderer,
		turn:     first,
	}
}

// Board - snapshot of the current position.
func (that *Session) Board() *entity.Board {
	return that.board.Clone()
}

// Turn - the piece to move next.
func (that *Session) Turn() entity.Piece {
	return that.turn
}

// Replay applies scripted columns for the sides in turn order without asking the agents.
func (that *Session) Replay(columns ...int) error {
	for _, column := range columns {
		if _, ok := that.board.IsTerminal(); ok || that.finished {
			return apperror.ErrGameFinished
		}

		if err := that.apply(column); err != nil {
			return fmt.Errorf("failed to replay column %d: %w", column, err)
		}
	}

	return nil
}

// Run plays turns until the game is decided or ctx is canceled.
func (that *Session) Run(ctx context.Context) (entity.Outcome, error) {
	if that.finished {
		return entity.Outcome{}, apperror.ErrGameFinished
	}

	for {
		if outcome, ok := that.board.IsTerminal(); ok {
			that.finish(outcome)
			return outcome, nil
		}

		if err := ctx.Err(); err != nil {
			return entity.Outcome{}, fmt.Errorf("game interrupted: %w", err)
		}

		that.renderer.Board(that.board)

		piece := that.turn
		choice, err := that.seats[piece].ChooseMove(that.board.Clone(), piece)
		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to choose move for %s: %w", piece, err)
		}

		if err = that.apply(choice.Column); err != nil {
			return entity.Outcome{}, fmt.Errorf("%w: %s played column %d: %w", ErrIllegalMove, piece, choice.Column, err)
		}

		if choice.Searched {
			that.board.Eval = choice.Score
		}

		that.logger.Debug("move played",
			"piece", piece.String(),
			"column", choice.Column,
			"score", choice.Score,
			"ply", that.board.Plies(),
		)
	}
}

func (that *Session) apply(column int) error {
	if err := that.board.Insert(column, that.turn); err != nil {
		return err
	}

	if _, ok := that.board.IsTerminal(); !ok {
		that.turn = that.turn.Opponent()
	}

	return nil
}

func (that *Session) finish(outcome entity.Outcome) {
	that.finished = true

	that.renderer.Board(that.board)
	that.renderer.Outcome(outcome)

	that.logger.Info("game finished", "outcome", outcome.String(), "plies", that.board.Plies())
}

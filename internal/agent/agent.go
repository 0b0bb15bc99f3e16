package agent

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/engine"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	KindHuman  = "human"
	KindEngine = "engine"
)

// Choice is the column an agent wants to play. Score is only meaningful when Searched is set.
type Choice struct {
	Column   int
	Score    int
	Searched bool
}

// Agent picks a column for piece on a snapshot of the board. The caller owns the
// authoritative board and applies the choice itself.
type Agent interface {
	ChooseMove(board *entity.Board, piece entity.Piece) (Choice, error)
}

// Options carries what each kind of agent needs.
type Options struct {
	Logger *slog.Logger
	Depth  int
	In     io.Reader
	Out    io.Writer
}

// New - builds the agent of the given kind. The set of kinds is closed.
func New(kind string, opts Options) (Agent, error) {
	switch kind {
	case KindHuman:
		return NewHuman(opts.In, opts.Out), nil
	case KindEngine:
		return NewEngine(engine.New(opts.Logger, opts.Depth)), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAgent, kind)
	}
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/connectfour/internal/agent"
	"github.com/rocketscienceinc/connectfour/internal/engine"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/game"
	"golang.org/x/sync/errgroup"
)

type scoreboardRepo interface {
	Record(ctx context.Context, matchup string, outcome entity.Outcome) error
	Get(ctx context.Context, matchup string) (entity.Tally, error)
}

type ArenaConfig struct {
	Games        int
	Workers      int
	DepthX       int
	DepthO       int
	OpeningPlies int
	Seed         int64
}

// Arena plays engine against engine. Games run concurrently, each search stays on one
// goroutine with its own board and engines.
type Arena struct {
	logger     *slog.Logger
	scoreboard scoreboardRepo
	config     ArenaConfig
}

func NewArena(logger *slog.Logger, scoreboard scoreboardRepo, config ArenaConfig) *Arena {
	return &Arena{
		logger:     logger.With("component", "arena"),
		scoreboard: scoreboard,
		config:     config,
	}
}

// Matchup - scoreboard key of the configured depths.
func (that *Arena) Matchup() string {
	return fmt.Sprintf("depth-%d-vs-depth-%d", that.config.DepthX, that.config.DepthO)
}

// Run plays the configured number of games, records every outcome and returns the tally
// of this run. Even games start with X, odd games with O.
func (that *Arena) Run(ctx context.Context) (entity.Tally, error) {
	log := that.logger.With("method", "Run", "matchup", that.Matchup())

	openings := that.openings()

	var (
		mu    sync.Mutex
		tally entity.Tally
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(that.config.Workers, 1))

	for i := range openings {
		group.Go(func() error {
			outcome, err := that.playGame(groupCtx, i, openings[i])
			if err != nil {
				return fmt.Errorf("game %d failed: %w", i, err)
			}

			if err = that.scoreboard.Record(groupCtx, that.Matchup(), outcome); err != nil {
				return fmt.Errorf("failed to record game %d: %w", i, err)
			}

			mu.Lock()
			tally.Record(outcome)
			mu.Unlock()

			log.Debug("game recorded", "game", i, "outcome", outcome.String())

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return tally, err
	}

	log.Info("arena finished", "games", tally.Games(), "x", tally.X, "o", tally.O, "draws", tally.Draws)

	return tally, nil
}

// Standings - all-time tally of the matchup from the scoreboard.
func (that *Arena) Standings(ctx context.Context) (entity.Tally, error) {
	tally, err := that.scoreboard.Get(ctx, that.Matchup())
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get standings: %w", err)
	}

	return tally, nil
}

func (that *Arena) playGame(ctx context.Context, index int, opening []int) (entity.Outcome, error) {
	first := entity.PlayerX
	if index%2 == 1 {
		first = entity.PlayerO
	}

	x := agent.NewEngine(engine.New(that.logger, that.config.DepthX))
	o := agent.NewEngine(engine.New(that.logger, that.config.DepthO))
	session := game.NewSession(that.logger, x, o, game.NopRenderer, first)

	if err := session.Replay(opening...); err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to replay opening: %w", err)
	}

	outcome, err := session.Run(ctx)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to run game: %w", err)
	}

	return outcome, nil
}

// openings draws random legal columns for every game up front so a seed always yields
// the same games regardless of scheduling. An opening stops early if it decides the game.
func (that *Arena) openings() [][]int {
	rnd := rand.New(rand.NewSource(that.config.Seed)) //nolint: gosec // it's ok

	openings := make([][]int, max(that.config.Games, 0))
	for i := range openings {
		board := entity.NewBoard()
		piece := entity.PlayerX
		if i%2 == 1 {
			piece = entity.PlayerO
		}

		for ply := 0; ply < that.config.OpeningPlies; ply++ {
			moves := board.Moves()
			column := moves[rnd.Intn(len(moves))]

			if err := board.Insert(column, piece); err != nil {
				break
			}
			openings[i] = append(openings[i], column)

			if _, ok := board.IsTerminal(); ok {
				// leave the decisive move to the engines
				openings[i] = openings[i][:len(openings[i])-1]
				break
			}
			piece = piece.Opponent()
		}
	}

	return openings
}

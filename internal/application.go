package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour/internal/agent"
	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/game"
	"github.com/rocketscienceinc/connectfour/internal/render"
	"github.com/rocketscienceinc/connectfour/internal/repository"
	"github.com/rocketscienceinc/connectfour/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown mode")
)

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
		// a human seat may be blocked on stdin; the next signal terminates the process
		signal.Stop(sigs)
	}()

	switch conf.Mode {
	case config.ModePlay:
		return runPlay(ctx, logger, conf)
	case config.ModeArena:
		return runArena(ctx, logger, conf)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	// both human seats share one agent so they read stdin through the same buffer
	var human agent.Agent
	newSeat := func(seat config.Seat) (agent.Agent, error) {
		if seat.Kind == agent.KindHuman && human != nil {
			return human, nil
		}

		created, err := agent.New(seat.Kind, agent.Options{
			Logger: logger,
			Depth:  seat.Depth,
			In:     os.Stdin,
			Out:    os.Stdout,
		})
		if err == nil && seat.Kind == agent.KindHuman {
			human = created
		}

		return created, err
	}

	x, err := newSeat(conf.Players.X)
	if err != nil {
		return fmt.Errorf("could not create player X: %w", err)
	}

	o, err := newSeat(conf.Players.O)
	if err != nil {
		return fmt.Errorf("could not create player O: %w", err)
	}

	first, err := entity.ParsePiece(conf.FirstPlayer)
	if err != nil {
		return fmt.Errorf("invalid first player: %w", err)
	}

	renderer := render.New(os.Stdout, conf.Render.ClearScreen)
	session := game.NewSession(logger, x, o, renderer, first)

	if _, err = session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}

		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func runArena(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	scoreboard := repository.NewScoreboardRepository(redisStorage)
	arena := usecase.NewArena(logger, scoreboard, usecase.ArenaConfig{
		Games:        conf.Arena.Games,
		Workers:      conf.Arena.Workers,
		DepthX:       conf.Arena.DepthX,
		DepthO:       conf.Arena.DepthO,
		OpeningPlies: conf.Arena.OpeningPlies,
		Seed:         conf.Arena.Seed,
	})

	if conf.Arena.Reset {
		if err = scoreboard.Reset(ctx, arena.Matchup()); err != nil {
			return fmt.Errorf("could not reset scoreboard: %w", err)
		}
	}

	tally, err := arena.Run(ctx)
	if err != nil {
		return fmt.Errorf("arena failed: %w", err)
	}

	standings, err := arena.Standings(ctx)
	if err != nil {
		return err
	}

	log.Info("Arena results",
		"matchup", arena.Matchup(),
		"run", tally,
		"all_time", standings,
	)

	return nil
}

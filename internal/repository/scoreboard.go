package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var ErrEmptyMatchup = errors.New("matchup is empty")

const (
	fieldX    = "x"
	fieldO    = "o"
	fieldDraw = "draw"
)

// ScoreboardRepository keeps win and draw counters per matchup. Games themselves are
// never stored.
type ScoreboardRepository interface {
	Record(ctx context.Context, matchup string, outcome entity.Outcome) error
	Get(ctx context.Context, matchup string) (entity.Tally, error)
	Reset(ctx context.Context, matchup string) error
}

type dbScoreboard struct {
	client *redis.Client
}

func NewScoreboardRepository(client *redis.Client) ScoreboardRepository {
	return &dbScoreboard{
		client: client,
	}
}

func (that *dbScoreboard) Record(ctx context.Context, matchup string, outcome entity.Outcome) error {
	if matchup == "" {
		return ErrEmptyMatchup
	}

	field := fieldDraw
	switch outcome.Winner {
	case entity.PlayerX:
		field = fieldX
	case entity.PlayerO:
		field = fieldO
	}

	if err := that.client.HIncrBy(ctx, scoreboardKey(matchup), field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

func (that *dbScoreboard) Get(ctx context.Context, matchup string) (entity.Tally, error) {
	if matchup == "" {
		return entity.Tally{}, ErrEmptyMatchup
	}

	response, err := that.client.HGetAll(ctx, scoreboardKey(matchup)).Result()
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	var tally entity.Tally
	for field, target := range map[string]*int{fieldX: &tally.X, fieldO: &tally.O, fieldDraw: &tally.Draws} {
		value, ok := response[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(value); err != nil {
			return entity.Tally{}, fmt.Errorf("failed to parse %s counter: %w", field, err)
		}
	}

	return tally, nil
}

func (that *dbScoreboard) Reset(ctx context.Context, matchup string) error {
	if matchup == "" {
		return ErrEmptyMatchup
	}

	if err := that.client.Del(ctx, scoreboardKey(matchup)).Err(); err != nil {
		return fmt.Errorf("failed to reset scoreboard: %w", err)
	}

	return nil
}

func scoreboardKey(matchup string) string {
	return "scoreboard:" + matchup
}

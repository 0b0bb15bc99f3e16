package repository

import (
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboardRepository_Record(t *testing.T) {
	t.Run("Record_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreboardRepo := NewScoreboardRepository(st.Storage)

		// Given: a few finished games of one matchup
		outcomes := []entity.Outcome{
			entity.Win(entity.PlayerX),
			entity.Win(entity.PlayerX),
			entity.Win(entity.PlayerO),
			entity.Draw(),
		}

		// When: Record is called for each of them
		for _, outcome := range outcomes {
			require.NoError(t, scoreboardRepo.Record(ctx, "depth-4-vs-depth-6", outcome))
		}

		// Then: the counters add up
		tally, err := scoreboardRepo.Get(ctx, "depth-4-vs-depth-6")
		require.NoError(t, err)
		assert.Equal(t, entity.Tally{X: 2, O: 1, Draws: 1}, tally)
	})

	t.Run("Record_EmptyMatchup", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreboardRepo := NewScoreboardRepository(st.Storage)

		// When: Record is called without a matchup
		err := scoreboardRepo.Record(ctx, "", entity.Draw())

		// Then: an ErrEmptyMatchup error should be returned
		require.ErrorIs(t, err, ErrEmptyMatchup)
	})
}

func TestScoreboardRepository_Get(t *testing.T) {
	t.Run("Get_Unknown", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreboardRepo := NewScoreboardRepository(st.Storage)

		// When: Get is called for a matchup that never played
		tally, err := scoreboardRepo.Get(ctx, "9999999")

		// Then: an empty tally is returned
		require.NoError(t, err)
		assert.Zero(t, tally.Games())
	})

	t.Run("Get_CorruptedCounter", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreboardRepo := NewScoreboardRepository(st.Storage)

		// Given: a counter that is not a number
		require.NoError(t, st.Storage.HSet(ctx, scoreboardKey("broken"), fieldX, "many").Err())

		// When: Get is called
		_, err := scoreboardRepo.Get(ctx, "broken")

		// Then: the parse error is reported
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse x counter")
	})
}

func TestScoreboardRepository_Reset(t *testing.T) {
	ctx, st := suite.New(t)

	scoreboardRepo := NewScoreboardRepository(st.Storage)

	// Given: a matchup with one recorded game
	require.NoError(t, scoreboardRepo.Record(ctx, "reset", entity.Win(entity.PlayerO)))

	// When: Reset is called
	err := scoreboardRepo.Reset(ctx, "reset")

	// Then: the counters are gone
	require.NoError(t, err)
	tally, err := scoreboardRepo.Get(ctx, "reset")
	require.NoError(t, err)
	assert.Equal(t, entity.Tally{}, tally)
}

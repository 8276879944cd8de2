package combat

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchElfPower(t *testing.T) {
	for _, tc := range []struct {
		name  string
		text  string
		power int
		score int
	}{
		{"reference", fixture(t, "combat/initial.txt"), 15, 4988},
		{"second", `
#######
#E..EG#
#.#G.E#
#E.##E#
#G..#.#
#..E#.#
#######`, 4, 31284},
		{"third", `
#######
#E.G#.#
#.#G..#
#G.#.G#
#G..#.#
#...E.#
#######`, 15, 3478},
		{"fourth", `
#######
#.E...#
#.#..G#
#.###.#
#E#G#G#
#...#G#
#######`, 12, 6474},
		{"fifth", `
#########
#G......#
#.E.#...#
#..##..G#
#...##..#
#...#...#
#.G...G.#
#.....G.#
#########`, 34, 1140},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := SearchElfPower(context.Background(), tc.text, DefaultSpriteBuilder(), SearchOptions{
				StartPower: 4, MaxPower: 200, Workers: 4,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.power, res.AttackPower)
			assert.Equal(t, tc.score, res.Outcome.Score)
			assert.Equal(t, Elf, res.Outcome.Victor)
		})
	}
}

func TestSearchElfPowerWorkerCountIrrelevant(t *testing.T) {
	text := fixture(t, "combat/initial.txt")
	for _, workers := range []int{1, 3, 16} {
		res, err := SearchElfPower(context.Background(), text, DefaultSpriteBuilder(), SearchOptions{
			StartPower: 4, MaxPower: 40, Workers: workers,
		})
		require.NoError(t, err)
		assert.Equal(t, 15, res.AttackPower, "workers=%d", workers)
		assert.Equal(t, 29, res.Outcome.Rounds)
		assert.Equal(t, 172, res.Outcome.HitPoints)
	}
}

func TestSearchElfPowerExhausted(t *testing.T) {
	_, err := SearchElfPower(context.Background(), fixture(t, "combat/initial.txt"), DefaultSpriteBuilder(), SearchOptions{
		StartPower: 4, MaxPower: 10, Workers: 2,
	})
	assert.ErrorContains(t, err, "4..10")
}

func TestSearchElfPowerErrors(t *testing.T) {
	_, err := SearchElfPower(context.Background(), "#X#", DefaultSpriteBuilder(), SearchOptions{})
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SearchElfPower(ctx, fixture(t, "combat/initial.txt"), DefaultSpriteBuilder(), SearchOptions{Workers: 2})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)

	// a map that can never finish surfaces the deadlock
	_, err = SearchElfPower(context.Background(), fixture(t, "deadlock.txt"), DefaultSpriteBuilder(), SearchOptions{})
	assert.True(t, errors.Is(err, ErrNoMovesRemain), "got %v", err)
}

func TestSearchElfPowerZeroOptions(t *testing.T) {
	res, err := SearchElfPower(context.Background(), fixture(t, "combat/initial.txt"), DefaultSpriteBuilder(), SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 15, res.AttackPower)
	assert.Equal(t, 4988, res.Outcome.Score)
}

package battleship_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

func newManagedSeats() (*mb.Seat, *mb.Seat) {
	return mb.NewSeat("Player", mb.NewBoard(6), &scripted{}), mb.NewSeat("Computer", mb.NewBoard(6), &scripted{})
}

func TestCreateGetTerminateGame(t *testing.T) {
	bgm := mb.NewBattleshipGameManager()
	cfg, err := mb.PresetConfig(mb.GameDifficultyEasy, mb.ModePvE)
	require.NoError(t, err)

	first, second := newManagedSeats()
	game, err := bgm.CreateGame(cfg, first, second)
	require.NoError(t, err)
	require.Len(t, game.Uuid(), 6)
	require.Equal(t, 1, bgm.Count())

	got, err := bgm.GetGame(game.Uuid())
	require.NoError(t, err)
	require.Same(t, game, got)

	bgm.TerminateGame(game.Uuid())
	require.Equal(t, 0, bgm.Count())

	_, err = bgm.GetGame(game.Uuid())
	require.ErrorIs(t, err, cerr.ErrGameNotExists)
}

func TestCreateGameRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    mb.Config
		target error
	}{
		{name: "unknown mode", cfg: mb.Config{Size: 6, Ships: []int{1}, Mode: "solo"}, target: cerr.ErrInvalidGameMode},
		{name: "empty fleet", cfg: mb.Config{Size: 6, Mode: mb.ModePvP}, target: cerr.ErrInvalidPlacement},
		{name: "fleet too large", cfg: mb.Config{Size: 3, Ships: []int{3, 3, 3, 3}, Mode: mb.ModePvP}, target: cerr.ErrPlacementExhausted},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bgm := mb.NewBattleshipGameManager()
			first, second := newManagedSeats()

			_, err := bgm.CreateGame(test.cfg, first, second)
			require.ErrorIs(t, err, test.target)
			require.Equal(t, 0, bgm.Count())
		})
	}
}

func TestCreateGameConcurrently(t *testing.T) {
	bgm := mb.NewBattleshipGameManager()
	cfg, err := mb.PresetConfig(mb.GameDifficultyHard, mb.ModePvP)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			first, second := newManagedSeats()
			game, err := bgm.CreateGame(cfg, first, second)
			if err == nil {
				_, _ = bgm.GetGame(game.Uuid())
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 20, bgm.Count())
}

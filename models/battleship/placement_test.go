package battleship_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

func TestRandomBoardRejectsFleetsThatCannotFit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		lengths []int
		target  error
	}{
		{name: "ship longer than board", size: 3, lengths: []int{4}, target: cerr.ErrPlacementExhausted},
		{name: "area larger than board", size: 2, lengths: []int{2, 2, 1}, target: cerr.ErrPlacementExhausted},
		{name: "zero length ship", size: 6, lengths: []int{2, 0}, target: cerr.ErrInvalidPlacement},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 1))
			_, err := mb.RandomBoard(test.size, test.lengths, rng)
			require.ErrorIs(t, err, test.target)
		})
	}
}

func TestPlaceShipsRandomlyRespectsAttemptBudget(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))

	// one attempt can never place two ships
	_, err := mb.PlaceShipsRandomly(6, []int{1, 1}, rng, 1)
	require.ErrorIs(t, err, cerr.ErrPlacementExhausted)
}

func TestRandomBoardIsDeterministicForSeed(t *testing.T) {
	lengths := []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}

	a, err := mb.RandomBoard(10, lengths, rand.New(rand.NewPCG(42, 42)))
	require.NoError(t, err)
	b, err := mb.RandomBoard(10, lengths, rand.New(rand.NewPCG(42, 42)))
	require.NoError(t, err)

	require.True(t, a.InPlay())
	require.Len(t, a.Ships(), len(lengths))
	for i, ship := range a.Ships() {
		require.Equal(t, lengths[i], ship.Length())
		require.Equal(t, ship.Cells(), b.Ships()[i].Cells())
	}
}

func TestRandomBoardAppliesOptions(t *testing.T) {
	board, err := mb.RandomBoard(6, []int{2, 1}, rand.New(rand.NewPCG(5, 5)), mb.WithHidden(true))
	require.NoError(t, err)
	require.True(t, board.Hidden())

	for _, ship := range board.Ships() {
		for _, c := range ship.Cells() {
			require.Equal(t, mb.CellStateEmpty, board.RenderCell(c))
		}
	}
}

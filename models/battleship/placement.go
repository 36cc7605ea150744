package battleship

import (
	"errors"
	"math/rand/v2"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const (
	// Attempt budget shared by all ships of one board.
	DefaultPlacementAttempts = 2000
	// Whole-board retries made by RandomBoard before giving up.
	MaxBoardRetries = 100
)

// PlaceShipsRandomly builds a board of the given size by rejection
// sampling an anchor and axis for every ship length in order. It gives up
// with ErrPlacementExhausted once maxAttempts placements have been tried.
// The returned board is already in play.
func PlaceShipsRandomly(size int, lengths []int, rng *rand.Rand, maxAttempts int, opts ...BoardOption) (*Board, error) {
	if err := checkShipsFit(size, lengths); err != nil {
		return nil, err
	}

	board := NewBoard(size, opts...)
	attempts := 0

	for _, length := range lengths {
		for {
			attempts++
			if attempts > maxAttempts {
				return nil, cerr.ErrAttemptsExhausted(maxAttempts)
			}

			anchor := NewCell(rng.IntN(size), rng.IntN(size))
			axis := Axis(rng.IntN(2))

			ship, err := NewShip(anchor, length, axis)
			if err != nil {
				return nil, err
			}

			err = board.AddShip(ship)
			if err == nil {
				break
			}
			if !errors.Is(err, cerr.ErrInvalidPlacement) {
				return nil, err
			}
		}
	}

	if err := board.Begin(); err != nil {
		return nil, err
	}
	return board, nil
}

// RandomBoard retries PlaceShipsRandomly from scratch up to MaxBoardRetries
// times. Fleets that cannot fit the grid fail before any sampling.
func RandomBoard(size int, lengths []int, rng *rand.Rand, opts ...BoardOption) (*Board, error) {
	if err := checkShipsFit(size, lengths); err != nil {
		return nil, err
	}

	var lastErr error
	for i := 0; i < MaxBoardRetries; i++ {
		board, err := PlaceShipsRandomly(size, lengths, rng, DefaultPlacementAttempts, opts...)
		if err == nil {
			return board, nil
		}
		if !errors.Is(err, cerr.ErrPlacementExhausted) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func checkShipsFit(size int, lengths []int) error {
	area := 0
	for _, length := range lengths {
		if length < 1 {
			return cerr.ErrInvalidShipLength(length)
		}
		if length > size {
			return cerr.ErrShipLongerThanBoard(length, size)
		}
		area += length
	}
	if area > size*size {
		return cerr.ErrShipsDoNotFit(area, size)
	}
	return nil
}

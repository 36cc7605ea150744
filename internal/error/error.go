package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrShotFailed      = "shot operation failed"
	ConstErrPlacementFailed = "ship placement failed"
)

// Error kinds. Callers match them with errors.Is; the constructor
// functions below only add the coordinates or ids involved.
var (
	ErrOutOfBounds         = errors.New("cell is out of the board")
	ErrAlreadyTargeted     = errors.New("cell was already targeted")
	ErrInvalidPlacement    = errors.New("invalid ship placement")
	ErrBoardNotStarted     = errors.New("board is still in setup phase")
	ErrBoardAlreadyStarted = errors.New("board is already in play phase")
	ErrNoTargetsLeft       = errors.New("no untargeted cells left")
	ErrPlacementExhausted  = errors.New("random placement attempts exhausted")
	ErrFleetIncomplete     = errors.New("fleet is not fully placed")
	ErrInputClosed         = errors.New("input closed")

	ErrInvalidGameDifficulty = errors.New("invalid game difficulty")
	ErrInvalidGameMode       = errors.New("invalid game mode")
	ErrGameNotExists         = errors.New("game does not exist")
)

func ErrCellOutOfBounds(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOutOfBounds, row, col)
}

func ErrCoordOutOfBounds(coord string) error {
	return fmt.Errorf("%w\tcoord: %q", ErrOutOfBounds, coord)
}

func ErrCellAlreadyTargeted(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrAlreadyTargeted, row, col)
}

func ErrShipOutOfBounds(row, col int) error {
	return fmt.Errorf("%w: ship cell out of board\trow: %d\tcol: %d", ErrInvalidPlacement, row, col)
}

func ErrShipTouchesAnother(row, col int) error {
	return fmt.Errorf("%w: ship cell overlaps or touches another ship\trow: %d\tcol: %d", ErrInvalidPlacement, row, col)
}

func ErrInvalidShipLength(length int) error {
	return fmt.Errorf("%w: ship length must be at least 1, got: %d", ErrInvalidPlacement, length)
}

func ErrPlacementDuringPlay() error {
	return fmt.Errorf("%w: board already in play", ErrInvalidPlacement)
}

func ErrNoShipOfLength(length int) error {
	return fmt.Errorf("%w: no ship of length %d left to place", ErrInvalidPlacement, length)
}

func ErrShipsLeftToPlace(remaining int) error {
	return fmt.Errorf("%w: %d ships left", ErrFleetIncomplete, remaining)
}

func ErrAttemptsExhausted(attempts int) error {
	return fmt.Errorf("%w after %d attempts", ErrPlacementExhausted, attempts)
}

func ErrShipsDoNotFit(area, size int) error {
	return fmt.Errorf("%w: ships need %d cells, board has %d", ErrPlacementExhausted, area, size*size)
}

func ErrShipLongerThanBoard(length, size int) error {
	return fmt.Errorf("%w: ship of length %d on a %dx%d board", ErrPlacementExhausted, length, size, size)
}

func ErrDifficulty(difficulty string) error {
	return fmt.Errorf("%w: %q", ErrInvalidGameDifficulty, difficulty)
}

func ErrMode(mode string) error {
	return fmt.Errorf("%w: %q", ErrInvalidGameMode, mode)
}

func ErrGameUuidNotExists(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

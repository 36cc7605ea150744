package battleship

import (
	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotMiss:
		return "Miss"
	case ShotHit:
		return "Hit"
	case ShotSunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}

// IsHit reports whether the shot landed on a ship, sinking it or not.
func (o ShotOutcome) IsHit() bool {
	return o == ShotHit || o == ShotSunk
}

type boardPhase uint8

const (
	boardPhaseSetup boardPhase = iota
	boardPhasePlay
)

// Board owns a square grid, the ships placed on it and the cells fired
// upon. Ships are added during setup; Begin switches the board to play,
// after which it changes only through Shot.
type Board struct {
	size      int
	hidden    bool
	phase     boardPhase
	sunkCount int
	grid      Grid
	ships     []*Ship

	// index into ships for every occupied cell
	shipAt *swiss.Map[Cell, int]
	// setup only: occupied cells plus their 8-neighbourhood
	reserved *swiss.Map[Cell, struct{}]
	// play only: cells shot at, plus the revealed perimeter of sunk ships
	fired *swiss.Map[Cell, struct{}]
}

type BoardOption func(*Board)

// WithHidden makes RenderCell report unsunk ship cells as empty.
func WithHidden(hidden bool) BoardOption {
	return func(b *Board) {
		b.hidden = hidden
	}
}

func NewBoard(size int, opts ...BoardOption) *Board {
	cells := uint32(size * size)

	b := &Board{
		size:     size,
		phase:    boardPhaseSetup,
		grid:     NewGrid(size),
		ships:    make([]*Ship, 0, 10),
		shipAt:   swiss.NewMap[Cell, int](cells),
		reserved: swiss.NewMap[Cell, struct{}](cells),
		fired:    swiss.NewMap[Cell, struct{}](cells),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Hidden() bool {
	return b.hidden
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

func (b *Board) InPlay() bool {
	return b.phase == boardPhasePlay
}

func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

func (b *Board) Ships() []*Ship {
	out := make([]*Ship, len(b.ships))
	copy(out, b.ships)
	return out
}

func (b *Board) SunkCount() int {
	return b.sunkCount
}

// RemainingCount is the number of ships still afloat.
func (b *Board) RemainingCount() int {
	return len(b.ships) - b.sunkCount
}

func (b *Board) IsFired(c Cell) bool {
	return b.fired.Has(c)
}

func (b *Board) IsReserved(c Cell) bool {
	return b.reserved.Has(c)
}

// RenderCell returns what a viewer of the board sees at c. Cells outside
// the grid render as empty.
func (b *Board) RenderCell(c Cell) CellState {
	if !b.InBounds(c) {
		return CellStateEmpty
	}

	state := b.grid.at(c)
	if b.hidden && state == CellStateShip {
		return CellStateEmpty
	}
	return state
}

// CanPlace reports why ship could not be added to the board, or nil if
// AddShip would accept it. The board is never changed.
func (b *Board) CanPlace(ship *Ship) error {
	if b.phase != boardPhaseSetup {
		return cerr.ErrPlacementDuringPlay()
	}

	for _, c := range ship.cells {
		if !b.InBounds(c) {
			return cerr.ErrShipOutOfBounds(c.Row, c.Col)
		}
		if b.reserved.Has(c) {
			return cerr.ErrShipTouchesAnother(c.Row, c.Col)
		}
	}
	return nil
}

// AddShip places ship on the board or returns an InvalidPlacement error
// leaving the board untouched.
func (b *Board) AddShip(ship *Ship) error {
	if err := b.CanPlace(ship); err != nil {
		return err
	}

	idx := len(b.ships)
	for _, c := range ship.cells {
		b.grid.set(c, CellStateShip)
		b.shipAt.Put(c, idx)
	}
	b.ships = append(b.ships, ship)

	b.forEachBufferCell(ship, func(c Cell) {
		b.reserved.Put(c, struct{}{})
	})
	return nil
}

// Begin drops the setup reservations and starts the play phase. It must
// be called exactly once.
func (b *Board) Begin() error {
	if b.phase != boardPhaseSetup {
		return cerr.ErrBoardAlreadyStarted
	}

	b.reserved.Clear()
	b.phase = boardPhasePlay
	return nil
}

// Shot fires at c. repeat is true only for a hit that did not sink the
// ship. A failed shot leaves the board unchanged.
func (b *Board) Shot(c Cell) (repeat bool, outcome ShotOutcome, err error) {
	if b.phase != boardPhasePlay {
		return false, ShotMiss, cerr.ErrBoardNotStarted
	}
	if !b.InBounds(c) {
		return false, ShotMiss, cerr.ErrCellOutOfBounds(c.Row, c.Col)
	}
	if b.fired.Has(c) {
		return false, ShotMiss, cerr.ErrCellAlreadyTargeted(c.Row, c.Col)
	}

	b.fired.Put(c, struct{}{})

	idx, ok := b.shipAt.Get(c)
	if !ok {
		b.grid.set(c, CellStateMiss)
		return false, ShotMiss, nil
	}

	ship := b.ships[idx]
	ship.gotHit()
	b.grid.set(c, CellStateHit)

	if !ship.IsSunk() {
		return true, ShotHit, nil
	}

	b.sunkCount++
	b.revealPerimeter(ship)
	return false, ShotSunk, nil
}

// Marks the untouched cells around a sunk ship as misses so the shooter
// sees the cleared perimeter.
func (b *Board) revealPerimeter(ship *Ship) {
	b.forEachBufferCell(ship, func(c Cell) {
		if b.fired.Has(c) {
			return
		}
		b.fired.Put(c, struct{}{})
		b.grid.set(c, CellStateMiss)
	})
}

func (b *Board) forEachBufferCell(ship *Ship, fn func(Cell)) {
	for _, c := range ship.cells {
		for _, off := range neighbourhoodOffsets {
			cur := c.Add(off[0], off[1])
			if b.InBounds(cur) {
				fn(cur)
			}
		}
	}
}

package battleship

import (
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type Axis uint8

const (
	// Row fixed, column grows from the anchor.
	AxisHorizontal Axis = iota
	// Column fixed, row grows from the anchor.
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "Horizontal"
	case AxisVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

type Ship struct {
	anchor Cell
	length int
	axis   Axis
	health int
	cells  []Cell
}

func NewShip(anchor Cell, length int, axis Axis) (*Ship, error) {
	if length < 1 {
		return nil, cerr.ErrInvalidShipLength(length)
	}

	cells := make([]Cell, length)
	for i := 0; i < length; i++ {
		if axis == AxisHorizontal {
			cells[i] = anchor.Add(0, i)
		} else {
			cells[i] = anchor.Add(i, 0)
		}
	}

	return &Ship{
		anchor: anchor,
		length: length,
		axis:   axis,
		health: length,
		cells:  cells,
	}, nil
}

func (sh *Ship) Anchor() Cell {
	return sh.anchor
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Axis() Axis {
	return sh.axis
}

func (sh *Ship) Health() int {
	return sh.health
}

// Cells returns the occupied cells in order, starting at the anchor.
func (sh *Ship) Cells() []Cell {
	out := make([]Cell, len(sh.cells))
	copy(out, sh.cells)
	return out
}

func (sh *Ship) Occupies(c Cell) bool {
	for _, sc := range sh.cells {
		if sc == c {
			return true
		}
	}
	return false
}

func (sh *Ship) IsSunk() bool {
	return sh.health == 0
}

func (sh *Ship) gotHit() {
	if sh.health > 0 {
		sh.health--
	}
}

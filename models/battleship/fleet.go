package battleship

import (
	"slices"

	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// ValidAnchors lists, row by row, every cell from which a ship of length
// laid along axis would be accepted by AddShip. A board in play has none.
func ValidAnchors(b *Board, length int, axis Axis) []Cell {
	if b.InPlay() || length < 1 {
		return nil
	}

	anchors := make([]Cell, 0, b.size*b.size)
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			ship, _ := NewShip(NewCell(row, col), length, axis)
			if b.CanPlace(ship) == nil {
				anchors = append(anchors, ship.anchor)
			}
		}
	}
	return anchors
}

// Fleet is the pool of ships still waiting to be placed by hand.
type Fleet struct {
	// distinct lengths, longest first
	lengths []int
	counts  *swiss.Map[int, int]
	left    int
}

func NewFleet(lengths []int) *Fleet {
	f := &Fleet{
		lengths: make([]int, 0, len(lengths)),
		counts:  swiss.NewMap[int, int](uint32(len(lengths))),
		left:    len(lengths),
	}

	for _, length := range lengths {
		n, ok := f.counts.Get(length)
		if !ok {
			f.lengths = append(f.lengths, length)
		}
		f.counts.Put(length, n+1)
	}
	slices.SortFunc(f.lengths, func(a, b int) int { return b - a })
	return f
}

// Lengths returns the lengths that still have ships in the pool, longest
// first.
func (f *Fleet) Lengths() []int {
	out := make([]int, 0, len(f.lengths))
	for _, length := range f.lengths {
		if f.Count(length) > 0 {
			out = append(out, length)
		}
	}
	return out
}

func (f *Fleet) Count(length int) int {
	n, _ := f.counts.Get(length)
	return n
}

func (f *Fleet) Remaining() int {
	return f.left
}

func (f *Fleet) Done() bool {
	return f.left == 0
}

// Place adds ship to b and takes one ship of its length out of the pool.
// Neither changes when the placement is rejected.
func (f *Fleet) Place(b *Board, ship *Ship) error {
	n := f.Count(ship.length)
	if n == 0 {
		return cerr.ErrNoShipOfLength(ship.length)
	}
	if err := b.AddShip(ship); err != nil {
		return err
	}

	f.counts.Put(ship.length, n-1)
	f.left--
	return nil
}

// Finish starts the play phase on b once every ship has been placed.
func (f *Fleet) Finish(b *Board) error {
	if !f.Done() {
		return cerr.ErrShipsLeftToPlace(f.left)
	}
	return b.Begin()
}

// Stuck reports whether no ship left in the pool fits anywhere on b.
func (f *Fleet) Stuck(b *Board) bool {
	if f.Done() {
		return false
	}
	for _, length := range f.Lengths() {
		if len(ValidAnchors(b, length, AxisHorizontal)) > 0 || len(ValidAnchors(b, length, AxisVertical)) > 0 {
			return false
		}
	}
	return true
}

package battleship

import "math/rand/v2"

// TargetView is the public side of a board being attacked: its size and
// which cells have already been fired upon.
type TargetView interface {
	Size() int
	IsFired(c Cell) bool
}

var _ TargetView = (*Board)(nil)

// MoveChooser decides where a seat fires next and learns the outcome of
// each applied shot. The game loop only talks to seats through it.
type MoveChooser interface {
	NextTarget(view TargetView) (Cell, error)
	RecordOutcome(c Cell, outcome ShotOutcome)
}

// ChoiceFunc picks one cell out of a non-empty candidate list.
type ChoiceFunc func(cells []Cell) Cell

func RandomChoice(rng *rand.Rand) ChoiceFunc {
	return func(cells []Cell) Cell {
		return cells[rng.IntN(len(cells))]
	}
}

// PreferChoice picks preferred when it is a candidate and the first
// candidate otherwise.
func PreferChoice(preferred Cell) ChoiceFunc {
	return func(cells []Cell) Cell {
		for _, c := range cells {
			if c == preferred {
				return c
			}
		}
		return cells[0]
	}
}

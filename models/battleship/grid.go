package battleship

import "fmt"

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateShip
	CellStateHit
	CellStateMiss
)

func (s CellState) String() string {
	switch s {
	case CellStateEmpty:
		return "Empty"
	case CellStateShip:
		return "Ship"
	case CellStateHit:
		return "Hit"
	case CellStateMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Cell is a (row, col) position on a board. It is comparable and
// used as a map key everywhere.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

func (c Cell) Add(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

var (
	orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	// includes the cell itself
	neighbourhoodOffsets = [9][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 0}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

type Grid [][]CellState

// Creates a new default grid
// All indexes are CellStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]CellState, gridSize)
	}
	return grid
}

func (g Grid) at(c Cell) CellState {
	return g[c.Row][c.Col]
}

func (g Grid) set(c Cell, state CellState) {
	g[c.Row][c.Col] = state
}

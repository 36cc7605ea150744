package screen

import (
	"fmt"
	"strconv"
	"strings"

	gui "github.com/grupawp/warships-gui/v2"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// Size is the side of the grid the terminal board draws.
const Size = 10

// ParseCoord turns a board coordinate such as "B7" (column letter, 1-based
// row) into a cell.
func ParseCoord(coord string) (mb.Cell, error) {
	coord = strings.ToUpper(strings.TrimSpace(coord))
	if len(coord) < 2 {
		return mb.Cell{}, cerr.ErrCoordOutOfBounds(coord)
	}

	col := int(coord[0] - 'A')
	row, err := strconv.Atoi(coord[1:])
	if err != nil || col < 0 || col >= Size || row < 1 || row > Size {
		return mb.Cell{}, cerr.ErrCoordOutOfBounds(coord)
	}
	return mb.NewCell(row-1, col), nil
}

func FormatCoord(c mb.Cell) string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), c.Row+1)
}

// States converts what a viewer sees on b into board states, indexed
// [column][row] like the coordinates.
func States(b *mb.Board) [Size][Size]gui.State {
	var states [Size][Size]gui.State
	for col := 0; col < Size; col++ {
		for row := 0; row < Size; row++ {
			states[col][row] = state(b.RenderCell(mb.NewCell(row, col)))
		}
	}
	return states
}

func state(s mb.CellState) gui.State {
	switch s {
	case mb.CellStateShip:
		return gui.Ship
	case mb.CellStateHit:
		return gui.Hit
	case mb.CellStateMiss:
		return gui.Miss
	default:
		return gui.Empty
	}
}

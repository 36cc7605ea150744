package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

const resetCommand = "reset"

// PlaceFleet lets the player put every ship of lengths on a new board.
// Lines read "row col axis [length]" with axis h or v; without a length
// the longest ship left is placed. "reset" clears the board. The returned
// board is in play.
func (h *Human) PlaceFleet(size int, lengths []int) (*mb.Board, error) {
	c := h.console
	board, fleet := mb.NewBoard(size), mb.NewFleet(lengths)

	c.Say(separator)
	c.Say("%s, place your ships: row col h|v [length], or %s", h.name, resetCommand)

	for !fleet.Done() {
		if fleet.Stuck(board) {
			c.Say("No room left for the remaining ships, starting over")
			board, fleet = mb.NewBoard(size), mb.NewFleet(lengths)
		}

		c.Say("%s", RenderBoard(board))
		c.Say("%s", poolLine(board, fleet))
		c.Print(h.name + ", place a ship: ")

		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(strings.TrimSpace(line), resetCommand) {
			board, fleet = mb.NewBoard(size), mb.NewFleet(lengths)
			continue
		}

		ship, msg := parsePlacement(line, fleet.Lengths()[0])
		if msg != "" {
			c.Say("%s", msg)
			continue
		}

		if err := fleet.Place(board, ship); err != nil {
			if !errors.Is(err, cerr.ErrInvalidPlacement) {
				return nil, err
			}
			if fleet.Count(ship.Length()) == 0 {
				c.Say(" No ship of length %d left! ", ship.Length())
			} else {
				c.Say(" Ships must stay on the board and not touch! ")
			}
		}
	}

	if err := fleet.Finish(board); err != nil {
		return nil, err
	}
	c.Say("%s", RenderBoard(board))
	return board, nil
}

// Lists the ships left and where the longest one can start.
func poolLine(board *mb.Board, fleet *mb.Fleet) string {
	lengths := fleet.Lengths()

	parts := make([]string, 0, len(lengths))
	for _, length := range lengths {
		parts = append(parts, fmt.Sprintf("%d x%d", length, fleet.Count(length)))
	}

	next := lengths[0]
	return fmt.Sprintf("Ships left (length x count): %s | length %d fits at %d cells h, %d cells v",
		strings.Join(parts, ", "),
		next,
		len(mb.ValidAnchors(board, next, mb.AxisHorizontal)),
		len(mb.ValidAnchors(board, next, mb.AxisVertical)),
	)
}

// parsePlacement turns "x y axis [length]" into a ship anchored at the
// zero-based cell. A non-empty message means the line has to be asked
// again.
func parsePlacement(line string, defaultLength int) (*mb.Ship, string) {
	fields := strings.Fields(line)
	if len(fields) != 3 && len(fields) != 4 {
		return nil, " Enter row, column and h or v! "
	}

	row, errRow := strconv.Atoi(fields[0])
	col, errCol := strconv.Atoi(fields[1])
	if errRow != nil || errCol != nil || row < 0 || col < 0 {
		return nil, " Enter numbers! "
	}

	var axis mb.Axis
	switch strings.ToLower(fields[2]) {
	case "h":
		axis = mb.AxisHorizontal
	case "v":
		axis = mb.AxisVertical
	default:
		return nil, " Axis must be h or v! "
	}

	length := defaultLength
	if len(fields) == 4 {
		n, err := strconv.Atoi(fields[3])
		if err != nil || n < 1 {
			return nil, " Enter numbers! "
		}
		length = n
	}

	ship, err := mb.NewShip(mb.NewCell(row-1, col-1), length, axis)
	if err != nil {
		return nil, " Enter numbers! "
	}
	return ship, ""
}

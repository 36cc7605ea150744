package console

import (
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// Human asks a person at the console for "row col" coordinates, both
// 1-based.
type Human struct {
	name    string
	prompt  string
	console *Console
}

var _ mb.MoveChooser = (*Human)(nil)

func (c *Console) Human(name string) *Human {
	return &Human{
		name:    name,
		prompt:  name + ", your move: ",
		console: c,
	}
}

func (h *Human) Name() string {
	return h.name
}

func (h *Human) NextTarget(_ mb.TargetView) (mb.Cell, error) {
	for {
		h.console.Print(h.prompt)
		line, err := h.console.readLine()
		if err != nil {
			return mb.Cell{}, err
		}

		cell, msg := parseCell(line)
		if msg != "" {
			h.console.Say("%s", msg)
			continue
		}
		return cell, nil
	}
}

// The board itself tells the player about hits and misses.
func (h *Human) RecordOutcome(mb.Cell, mb.ShotOutcome) {}

// parseCell turns "x y" into a zero-based cell. A non-empty message means
// the line has to be asked again.
func parseCell(line string) (mb.Cell, string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mb.Cell{}, " Enter 2 coordinates! "
	}

	row, errRow := strconv.Atoi(fields[0])
	col, errCol := strconv.Atoi(fields[1])
	if errRow != nil || errCol != nil || row < 0 || col < 0 {
		return mb.Cell{}, " Enter numbers! "
	}

	return mb.NewCell(row-1, col-1), ""
}

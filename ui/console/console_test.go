package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(input), out)
	c.DisableClear()
	return c, out
}

func boardWithShip(t *testing.T, hidden bool) *mb.Board {
	t.Helper()
	board := mb.NewBoard(2, mb.WithHidden(hidden))
	ship, err := mb.NewShip(mb.NewCell(0, 1), 1, mb.AxisHorizontal)
	require.NoError(t, err)
	require.NoError(t, board.AddShip(ship))
	require.NoError(t, board.Begin())
	return board
}

func TestRenderBoard(t *testing.T) {
	board := boardWithShip(t, false)

	expected := "  | 1 | 2 |\n" +
		"1 | O | ■ |\n" +
		"2 | O | O |"
	require.Equal(t, expected, RenderBoard(board))

	_, _, err := board.Shot(mb.NewCell(1, 0))
	require.NoError(t, err)
	expected = "  | 1 | 2 |\n" +
		"1 | O | ■ |\n" +
		"2 | . | O |"
	require.Equal(t, expected, RenderBoard(board))
}

func TestRenderBoardHidesShips(t *testing.T) {
	board := boardWithShip(t, true)
	require.NotContains(t, RenderBoard(board), symbolShip)

	// sinking reveals the wreck and the water around it
	_, outcome, err := board.Shot(mb.NewCell(0, 1))
	require.NoError(t, err)
	require.Equal(t, mb.ShotSunk, outcome)

	expected := "  | 1 | 2 |\n" +
		"1 | . | X |\n" +
		"2 | . | . |"
	require.Equal(t, expected, RenderBoard(board))
}

func TestRenderHiddenRestoresFlag(t *testing.T) {
	board := boardWithShip(t, false)

	rendered := renderHidden(board, func() string { return RenderBoard(board) })
	require.NotContains(t, rendered, symbolShip)
	require.False(t, board.Hidden())
}

func TestRenderSideBySide(t *testing.T) {
	left := boardWithShip(t, false)
	right := boardWithShip(t, true)

	lines := strings.Split(RenderSideBySide(left, right, "A:", "B:"), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "A:"))
	require.True(t, strings.HasSuffix(lines[0], boardGap+"B:"))
	require.Equal(t, "1 | O | ■ |"+boardGap+"1 | O | O |", lines[2])
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		name string
		line string
		cell mb.Cell
		msg  string
	}{
		{name: "valid", line: "3 4", cell: mb.NewCell(2, 3)},
		{name: "extra spaces", line: "  1   1 ", cell: mb.NewCell(0, 0)},
		{name: "one number", line: "3", msg: " Enter 2 coordinates! "},
		{name: "three numbers", line: "1 2 3", msg: " Enter 2 coordinates! "},
		{name: "letters", line: "a b", msg: " Enter numbers! "},
		{name: "negative", line: "-1 2", msg: " Enter numbers! "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cell, msg := parseCell(test.line)
			require.Equal(t, test.msg, msg)
			if test.msg == "" {
				require.Equal(t, test.cell, cell)
			}
		})
	}
}

func TestHumanAsksAgainUntilValid(t *testing.T) {
	c, out := newTestConsole("5\nx y\n2 6\n")
	h := c.Human("Player")

	cell, err := h.NextTarget(nil)
	require.NoError(t, err)
	require.Equal(t, mb.NewCell(1, 5), cell)

	require.Equal(t, 3, strings.Count(out.String(), "Player, your move: "))
	require.Contains(t, out.String(), " Enter 2 coordinates! ")
	require.Contains(t, out.String(), " Enter numbers! ")
}

func TestHumanInputClosed(t *testing.T) {
	c, _ := newTestConsole("")
	_, err := c.Human("Player").NextTarget(nil)
	require.ErrorIs(t, err, cerr.ErrInputClosed)
}

func TestReportShotAndInvalidShot(t *testing.T) {
	c, out := newTestConsole("")
	attacker := mb.NewSeat("Player", boardWithShip(t, false), nil)
	defender := mb.NewSeat("Computer", boardWithShip(t, true), nil)

	ev := mb.NewEvent(mb.CodeShot, mb.ModePvE, attacker, defender)
	ev.AddShot(mb.NewCell(0, 1), mb.ShotSunk, false)
	c.Report(ev)

	ev = mb.NewEvent(mb.CodeInvalidShot, mb.ModePvE, attacker, defender)
	ev.AddError(mb.NewCell(5, 5), cerr.ErrCellOutOfBounds(5, 5))
	c.Report(ev)

	ev = mb.NewEvent(mb.CodeInvalidShot, mb.ModePvE, attacker, defender)
	ev.AddError(mb.NewCell(0, 1), cerr.ErrCellAlreadyTargeted(0, 1))
	c.Report(ev)

	require.Equal(t,
		"Player fires at 1 2: Ship destroyed!\n"+
			"You are trying to shoot outside the board!\n"+
			"You already fired at this cell\n",
		out.String())
}

func TestReportPvETurnShowsBothBoards(t *testing.T) {
	c, out := newTestConsole("")
	human := mb.NewSeat("Player", boardWithShip(t, false), nil)
	computer := mb.NewSeat("Computer", boardWithShip(t, true), nil)

	c.Report(mb.NewEvent(mb.CodeStartGame, mb.ModePvE, human, computer))
	out.Reset()

	c.Report(mb.NewEvent(mb.CodeTurn, mb.ModePvE, human, computer))
	text := out.String()
	require.Contains(t, text, "Player board:\n"+RenderBoard(human.Board))
	require.Contains(t, text, "Computer board:\n"+RenderBoard(computer.Board))
	require.Equal(t, 1, strings.Count(text, symbolShip))
	require.True(t, strings.HasSuffix(text, "Player moves!\n"))
}

func TestReportPvPTurnHidesDefender(t *testing.T) {
	c, out := newTestConsole("\n")
	first := mb.NewSeat("Player 1", boardWithShip(t, false), nil)
	second := mb.NewSeat("Player 2", boardWithShip(t, false), nil)

	c.Report(mb.NewEvent(mb.CodeTurn, mb.ModePvP, first, second))
	require.Equal(t, 1, strings.Count(out.String(), symbolShip))
	require.Contains(t, out.String(), "Turn: Player 1")
	require.False(t, second.Board.Hidden())

	out.Reset()
	c.Report(mb.NewEvent(mb.CodePassTurn, mb.ModePvP, second, first))
	require.Equal(t, "Pass the turn to Player 2 and press Enter\n", out.String())
	require.False(t, c.in.Scan())
}

func TestReportEndGamePrintsStats(t *testing.T) {
	c, out := newTestConsole("")
	winner := mb.NewSeat("Player", boardWithShip(t, false), nil)
	loser := mb.NewSeat("Computer", boardWithShip(t, true), nil)

	c.Report(mb.NewEvent(mb.CodeStartGame, mb.ModePvE, winner, loser))
	out.Reset()

	_, _, err := loser.Board.Shot(mb.NewCell(0, 1))
	require.NoError(t, err)
	winner.Stats = mb.Stats{Shots: 3, Hits: 1, Sunk: 1}

	c.Report(mb.NewEvent(mb.CodeEndGame, mb.ModePvE, winner, loser))
	require.Equal(t,
		separator+"\n"+
			"Player won!\n"+
			"Player: 3 shots, 1 hits, 33% | sunk 1/1, remaining 0\n"+
			"Computer: 0 shots, 0 hits, 0% | sunk 0/1, remaining 1\n",
		out.String())
}

func TestPlaceFleetAsksAgainUntilValid(t *testing.T) {
	c, out := newTestConsole(strings.Join([]string{
		"1 1",     // missing axis
		"1 1 x",   // unknown axis
		"1 1 h 3", // no ship of that length
		"1 1 h",   // longest ship left, length 2
		"2 1 h 1", // touches the first ship
		"3 3 v",   // last ship, length 1
	}, "\n") + "\n")

	board, err := c.Human("Player").PlaceFleet(3, []int{2, 1})
	require.NoError(t, err)
	require.True(t, board.InPlay())

	ships := board.Ships()
	require.Len(t, ships, 2)
	require.Equal(t, []mb.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, ships[0].Cells())
	require.Equal(t, []mb.Cell{{Row: 2, Col: 2}}, ships[1].Cells())

	text := out.String()
	require.Equal(t, 6, strings.Count(text, "Player, place a ship: "))
	require.Contains(t, text, " Enter row, column and h or v! ")
	require.Contains(t, text, " Axis must be h or v! ")
	require.Contains(t, text, " No ship of length 3 left! ")
	require.Contains(t, text, " Ships must stay on the board and not touch! ")
	require.Contains(t, text, "length 2 fits at 6 cells h, 6 cells v")
}

func TestPlaceFleetReset(t *testing.T) {
	c, _ := newTestConsole("1 1 h\nreset\n1 1 v\n3 3 h\n")

	board, err := c.Human("Player").PlaceFleet(3, []int{2, 1})
	require.NoError(t, err)
	require.Equal(t, []mb.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, board.Ships()[0].Cells())
}

func TestPlaceFleetStartsOverWhenStuck(t *testing.T) {
	// a ship in the middle of a 3x3 board leaves no room for another
	c, out := newTestConsole("2 2 h\n1 1 h\n3 3 h\n")

	board, err := c.Human("Player").PlaceFleet(3, []int{1, 1})
	require.NoError(t, err)
	require.Len(t, board.Ships(), 2)
	require.Contains(t, out.String(), "No room left for the remaining ships, starting over")
}

func TestPlaceFleetInputClosed(t *testing.T) {
	c, _ := newTestConsole("1 1 h\n")
	_, err := c.Human("Player").PlaceFleet(3, []int{2, 1})
	require.ErrorIs(t, err, cerr.ErrInputClosed)
}

func TestChooseMenus(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		mode       mb.Mode
		difficulty mb.Difficulty
	}{
		{name: "defaults", input: "\n\n", mode: mb.ModePvE, difficulty: mb.GameDifficultyEasy},
		{name: "pvp on the largest board", input: "2\n3\n", mode: mb.ModePvP, difficulty: mb.GameDifficultyHard},
		{name: "unknown answers", input: "7\nabc\n", mode: mb.ModePvE, difficulty: mb.GameDifficultyEasy},
		{name: "normal", input: " 1 \n 2 \n", mode: mb.ModePvE, difficulty: mb.GameDifficultyNormal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, out := newTestConsole(test.input)

			mode, err := c.ChooseMode()
			require.NoError(t, err)
			require.Equal(t, test.mode, mode)

			difficulty, err := c.ChooseDifficulty()
			require.NoError(t, err)
			require.Equal(t, test.difficulty, difficulty)

			require.Contains(t, out.String(), " 3) 10x10")
		})
	}

	c, _ := newTestConsole("")
	_, err := c.ChooseMode()
	require.ErrorIs(t, err, cerr.ErrInputClosed)
}

func TestPassTurnReadError(t *testing.T) {
	readErr := errors.New("terminal gone")
	logs := &bytes.Buffer{}
	out := &bytes.Buffer{}
	c := NewConsole(iotest.ErrReader(readErr), out, WithLogger(log.New(logs)))

	require.ErrorIs(t, c.PassTurn("Player 2"), readErr)
	require.NotContains(t, out.String(), clearSeq)

	first := mb.NewSeat("Player 1", boardWithShip(t, false), nil)
	second := mb.NewSeat("Player 2", boardWithShip(t, false), nil)
	c.Report(mb.NewEvent(mb.CodePassTurn, mb.ModePvP, second, first))
	require.Contains(t, logs.String(), "terminal gone")

	// the next move prompt fails the same way
	_, err := c.Human("Player 2").NextTarget(nil)
	require.ErrorIs(t, err, readErr)
}

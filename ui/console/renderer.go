package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

const (
	symbolEmpty = "O"
	symbolShip  = "■"
	symbolHit   = "X"
	symbolMiss  = "."

	separator = "--------------------"
	boardGap  = "    "
	clearSeq  = "\033[H\033[2J"
)

// Console draws boards and game events to out and reads human moves and
// pass-turn confirmations from in.
type Console struct {
	out     io.Writer
	in      *bufio.Scanner
	seats   []*mb.Seat
	clearOn bool
	logger  *log.Logger
}

var _ mb.Reporter = (*Console)(nil)

type Option func(*Console)

func WithLogger(logger *log.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

func NewConsole(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:     out,
		in:      bufio.NewScanner(in),
		clearOn: true,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DisableClear stops the console from clearing the screen between pvp
// turns.
func (c *Console) DisableClear() {
	c.clearOn = false
}

func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) Print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", cerr.ErrInputClosed
	}
	return c.in.Text(), nil
}

func symbol(state mb.CellState) string {
	switch state {
	case mb.CellStateShip:
		return symbolShip
	case mb.CellStateHit:
		return symbolHit
	case mb.CellStateMiss:
		return symbolMiss
	default:
		return symbolEmpty
	}
}

// RenderBoard draws b with 1-based row and column numbers. Hidden boards
// show their unsunk ships as empty water.
func RenderBoard(b *mb.Board) string {
	size := b.Size()
	width := len(fmt.Sprint(size))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width) + " |")
	for col := 1; col <= size; col++ {
		fmt.Fprintf(&sb, " %*d |", width, col)
	}

	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "\n%*d |", width, row+1)
		for col := 0; col < size; col++ {
			fmt.Fprintf(&sb, " %*s |", width, symbol(b.RenderCell(mb.NewCell(row, col))))
		}
	}
	return sb.String()
}

// RenderSideBySide draws two boards next to each other under their
// titles.
func RenderSideBySide(left, right *mb.Board, leftTitle, rightTitle string) string {
	leftLines := strings.Split(RenderBoard(left), "\n")
	rightLines := strings.Split(RenderBoard(right), "\n")

	leftWidth := len([]rune(leftTitle))
	for _, l := range leftLines {
		leftWidth = max(leftWidth, len([]rune(l)))
	}

	var sb strings.Builder
	sb.WriteString(padRight(leftTitle, leftWidth) + boardGap + rightTitle)
	for i := 0; i < len(leftLines) && i < len(rightLines); i++ {
		sb.WriteString("\n" + padRight(leftLines[i], leftWidth) + boardGap + rightLines[i])
	}
	return sb.String()
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// Renders a defender board with its ships hidden and restores the flag.
func renderHidden(b *mb.Board, render func() string) string {
	prev := b.Hidden()
	b.SetHidden(true)
	defer b.SetHidden(prev)
	return render()
}

func (c *Console) Report(e mb.Event) {
	switch e.Code {
	case mb.CodeStartGame:
		c.seats = []*mb.Seat{e.Attacker, e.Defender}
		c.greet(e)

	case mb.CodeTurn:
		c.showTurn(e)

	case mb.CodeShot:
		c.Say("%s fires at %d %d: %s", e.Attacker.Name, e.Cell.Row+1, e.Cell.Col+1, outcomeMessage(e.Outcome))

	case mb.CodeInvalidShot:
		c.Say("%s", invalidShotMessage(e.Error))

	case mb.CodePassTurn:
		// a broken input also fails the next move prompt, which stops the game
		if err := c.PassTurn(e.Attacker.Name); err != nil {
			c.logger.Warn("console [Report] pass turn failed", "next", e.Attacker.Name, "err", err)
		}

	case mb.CodeEndGame:
		c.Say(separator)
		c.Say("%s won!", e.Attacker.Name)
		for _, s := range c.seats {
			c.Say("%s", StatsLine(s, c.opponentOf(s)))
		}
	}
}

func (c *Console) greet(e mb.Event) {
	c.Say(separator)
	c.Say("     Battleship     ")
	c.Say(separator)
	c.Say(" input format: x y ")
	c.Say(" x - row number    ")
	c.Say(" y - column number ")
	c.Say("mode: %s, board %dx%d", e.Mode, e.Attacker.Board.Size(), e.Attacker.Board.Size())
}

func (c *Console) showTurn(e mb.Event) {
	if e.Mode == mb.ModePvP {
		// the defender's ships stay hidden from the player at the device
		c.Say("%s", renderHidden(e.Defender.Board, func() string {
			return RenderSideBySide(e.Attacker.Board, e.Defender.Board, e.Attacker.Name+" board:", e.Defender.Name+" board:")
		}))
		c.Say("Turn: %s", e.Attacker.Name)
		return
	}

	if len(c.seats) == 2 {
		c.Say(separator)
		c.Say("%s board:", c.seats[0].Name)
		c.Say("%s", RenderBoard(c.seats[0].Board))
		c.Say(separator)
		c.Say("%s board:", c.seats[1].Name)
		c.Say("%s", RenderBoard(c.seats[1].Board))
	}
	c.Say(separator)
	c.Say("%s moves!", e.Attacker.Name)
}

// PassTurn waits for Enter before the device goes to next, then clears
// the screen.
func (c *Console) PassTurn(next string) error {
	c.Say("Pass the turn to %s and press Enter", next)
	if _, err := c.readLine(); err != nil {
		return err
	}
	if c.clearOn {
		fmt.Fprint(c.out, clearSeq)
	}
	return nil
}

func (c *Console) opponentOf(s *mb.Seat) *mb.Seat {
	for _, other := range c.seats {
		if other != s {
			return other
		}
	}
	return nil
}

// StatsLine summarises a seat's shooting against its opponent's board.
func StatsLine(s, opponent *mb.Seat) string {
	line := fmt.Sprintf("%s: %d shots, %d hits, %d%%", s.Name, s.Stats.Shots, s.Stats.Hits, s.Stats.Accuracy())
	if opponent == nil {
		return line
	}

	total := len(opponent.Board.Ships())
	sunk := opponent.Board.SunkCount()
	return fmt.Sprintf("%s | sunk %d/%d, remaining %d", line, sunk, total, max(total-sunk, 0))
}

func outcomeMessage(o mb.ShotOutcome) string {
	switch o {
	case mb.ShotHit:
		return "Ship hit!"
	case mb.ShotSunk:
		return "Ship destroyed!"
	default:
		return "Miss!"
	}
}

func invalidShotMessage(err error) string {
	switch {
	case errors.Is(err, cerr.ErrOutOfBounds):
		return "You are trying to shoot outside the board!"
	case errors.Is(err, cerr.ErrAlreadyTargeted):
		return "You already fired at this cell"
	default:
		return err.Error()
	}
}
